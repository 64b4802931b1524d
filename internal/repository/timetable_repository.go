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

const timetableSelect = `SELECT t.id, t.department_id, t.day_of_week, t.course_code, t.course_title, t.lecturer, t.venue,
to_char(t.start_time, 'HH24:MI') AS start_time, to_char(t.end_time, 'HH24:MI') AS end_time,
t.level, t.semester, t.is_active, t.created_by, t.created_at, d.name AS department_name, d.code AS department_code
FROM timetables t JOIN departments d ON d.id = t.department_id`

// TimetableRepository provides persistence for timetable slots.
type TimetableRepository struct {
	db *sqlx.DB
}

// NewTimetableRepository creates the repository.
func NewTimetableRepository(db *sqlx.DB) *TimetableRepository {
	return &TimetableRepository{db: db}
}

func timetableConditions(filter models.TimetableFilter) *conditions {
	c := &conditions{}
	c.department("t.department_id", filter.DepartmentID)
	c.equals("t.level", filter.Level)
	c.flag("t.is_active", filter.ActiveOnly)
	return c
}

// List returns timetable slots ordered by start time.
func (r *TimetableRepository) List(ctx context.Context, filter models.TimetableFilter) ([]models.Timetable, error) {
	c := timetableConditions(filter)
	query := timetableSelect + c.where() + " ORDER BY t.start_time ASC, t.course_code ASC"
	var entries []models.Timetable
	if err := r.db.SelectContext(ctx, &entries, query, c.args...); err != nil {
		return nil, fmt.Errorf("list timetables: %w", err)
	}
	return entries, nil
}

// Count returns the number of slots matching filter.
func (r *TimetableRepository) Count(ctx context.Context, filter models.TimetableFilter) (int, error) {
	c := timetableConditions(filter)
	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM timetables t"+c.where(), c.args...); err != nil {
		return 0, fmt.Errorf("count timetables: %w", err)
	}
	return total, nil
}

// DistinctLevels returns every level in use, inactive slots included.
func (r *TimetableRepository) DistinctLevels(ctx context.Context) ([]string, error) {
	var levels []string
	if err := r.db.SelectContext(ctx, &levels, "SELECT DISTINCT level FROM timetables ORDER BY level ASC"); err != nil {
		return nil, fmt.Errorf("distinct timetable levels: %w", err)
	}
	return levels, nil
}

// GetByID returns a timetable slot by identifier.
func (r *TimetableRepository) GetByID(ctx context.Context, id string) (*models.Timetable, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	var entry models.Timetable
	if err := r.db.GetContext(ctx, &entry, timetableSelect+" WHERE t.id = $1", id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("get timetable: %w", err)
	}
	return &entry, nil
}

// Create inserts a new timetable slot.
func (r *TimetableRepository) Create(ctx context.Context, entry *models.Timetable) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO timetables (id, department_id, day_of_week, course_code, course_title, lecturer, venue, start_time, end_time, level, semester, is_active, created_by, created_at)
VALUES (:id, :department_id, :day_of_week, :course_code, :course_title, :lecturer, :venue, :start_time, :end_time, :level, :semester, :is_active, :created_by, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, entry); err != nil {
		return fmt.Errorf("create timetable: %w", err)
	}
	return nil
}

// Update modifies an existing timetable slot.
func (r *TimetableRepository) Update(ctx context.Context, entry *models.Timetable) error {
	const query = `UPDATE timetables SET department_id = :department_id, day_of_week = :day_of_week, course_code = :course_code,
course_title = :course_title, lecturer = :lecturer, venue = :venue, start_time = :start_time, end_time = :end_time,
level = :level, semester = :semester, is_active = :is_active WHERE id = :id`
	if _, err := r.db.NamedExecContext(ctx, query, entry); err != nil {
		return fmt.Errorf("update timetable: %w", err)
	}
	return nil
}

// Delete removes a timetable slot.
func (r *TimetableRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM timetables WHERE id = $1", id); err != nil {
		return fmt.Errorf("delete timetable: %w", err)
	}
	return nil
}
