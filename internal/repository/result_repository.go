package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/noticeboard/internal/models"
)

const resultSelect = `SELECT r.id, r.session, r.semester, r.department_id, r.level, r.course_code, r.course_title,
r.file_url, r.description, r.is_published, r.created_by, r.created_at, d.name AS department_name, d.code AS department_code
FROM results r JOIN departments d ON d.id = r.department_id`

// ResultRepository provides persistence for result notices.
type ResultRepository struct {
	db *sqlx.DB
}

// NewResultRepository creates the repository.
func NewResultRepository(db *sqlx.DB) *ResultRepository {
	return &ResultRepository{db: db}
}

func resultConditions(filter models.ResultFilter) *conditions {
	c := &conditions{}
	c.department("r.department_id", filter.DepartmentID)
	c.equals("r.session", filter.Session)
	c.flag("r.is_published", filter.PublishedOnly)
	return c
}

// List returns results newest first.
func (r *ResultRepository) List(ctx context.Context, filter models.ResultFilter) ([]models.Result, error) {
	c := resultConditions(filter)
	var results []models.Result
	if err := r.db.SelectContext(ctx, &results, resultSelect+c.where()+" ORDER BY r.created_at DESC", c.args...); err != nil {
		return nil, fmt.Errorf("list results: %w", err)
	}
	return results, nil
}

// Count returns the number of results matching filter.
func (r *ResultRepository) Count(ctx context.Context, filter models.ResultFilter) (int, error) {
	c := resultConditions(filter)
	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM results r"+c.where(), c.args...); err != nil {
		return 0, fmt.Errorf("count results: %w", err)
	}
	return total, nil
}

// DistinctSessions returns every session label in use, unpublished results included.
func (r *ResultRepository) DistinctSessions(ctx context.Context) ([]string, error) {
	var sessions []string
	if err := r.db.SelectContext(ctx, &sessions, "SELECT DISTINCT session FROM results ORDER BY session ASC"); err != nil {
		return nil, fmt.Errorf("distinct result sessions: %w", err)
	}
	return sessions, nil
}

// GetByID returns a result by identifier.
func (r *ResultRepository) GetByID(ctx context.Context, id string) (*models.Result, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	var result models.Result
	if err := r.db.GetContext(ctx, &result, resultSelect+" WHERE r.id = $1", id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("get result: %w", err)
	}
	return &result, nil
}

// Create inserts a new result.
func (r *ResultRepository) Create(ctx context.Context, result *models.Result) error {
	if result.ID == "" {
		result.ID = uuid.NewString()
	}
	if result.CreatedAt.IsZero() {
		result.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO results (id, session, semester, department_id, level, course_code, course_title, file_url, description, is_published, created_by, created_at)
VALUES (:id, :session, :semester, :department_id, :level, :course_code, :course_title, :file_url, :description, :is_published, :created_by, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, result); err != nil {
		return fmt.Errorf("create result: %w", err)
	}
	return nil
}

// Update modifies an existing result.
func (r *ResultRepository) Update(ctx context.Context, result *models.Result) error {
	const query = `UPDATE results SET session = :session, semester = :semester, department_id = :department_id, level = :level,
course_code = :course_code, course_title = :course_title, file_url = :file_url, description = :description,
is_published = :is_published WHERE id = :id`
	if _, err := r.db.NamedExecContext(ctx, query, result); err != nil {
		return fmt.Errorf("update result: %w", err)
	}
	return nil
}

// Delete removes a result.
func (r *ResultRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM results WHERE id = $1", id); err != nil {
		return fmt.Errorf("delete result: %w", err)
	}
	return nil
}
