package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const uniqueViolation = "23505"

// IsUniqueViolation reports whether err came from a unique constraint.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

// checkID rejects identifiers that cannot be a stored key. Ids are UUID
// columns, so a malformed one is reported as a missing row.
func checkID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return sql.ErrNoRows
	}
	return nil
}

// conditions accumulates AND-ed WHERE clauses with positional arguments.
type conditions struct {
	clauses []string
	args    []interface{}
}

func (c *conditions) bind(value interface{}) string {
	c.args = append(c.args, value)
	return fmt.Sprintf("$%d", len(c.args))
}

func (c *conditions) add(clause string) {
	c.clauses = append(c.clauses, clause)
}

// department scopes to one department. A malformed id can never match a row,
// so it empties the result instead of failing the query.
func (c *conditions) department(column, id string) {
	id = strings.TrimSpace(id)
	if id == "" {
		return
	}
	if _, err := uuid.Parse(id); err != nil {
		c.add("FALSE")
		return
	}
	c.add(column + " = " + c.bind(id))
}

// search matches term case-insensitively as a substring of any column.
func (c *conditions) search(term string, columns ...string) {
	term = strings.TrimSpace(term)
	if term == "" || len(columns) == 0 {
		return
	}
	placeholder := c.bind("%" + escapeLike(term) + "%")
	parts := make([]string, 0, len(columns))
	for _, column := range columns {
		parts = append(parts, column+" ILIKE "+placeholder)
	}
	c.add("(" + strings.Join(parts, " OR ") + ")")
}

func (c *conditions) equals(column string, value string) {
	if value == "" {
		return
	}
	c.add(column + " = " + c.bind(value))
}

func (c *conditions) flag(column string, only bool) {
	if only {
		c.add(column + " = TRUE")
	}
}

func (c *conditions) where() string {
	if len(c.clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(c.clauses, " AND ")
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
