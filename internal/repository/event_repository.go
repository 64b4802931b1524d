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

const eventSelect = `SELECT e.id, e.title, e.description, e.department_id, e.event_type, e.venue, e.start_date, e.end_date,
e.is_active, e.created_by, e.created_at, e.updated_at, d.name AS department_name, d.code AS department_code
FROM events e JOIN departments d ON d.id = e.department_id`

// EventRepository provides persistence for events.
type EventRepository struct {
	db *sqlx.DB
}

// NewEventRepository creates the repository.
func NewEventRepository(db *sqlx.DB) *EventRepository {
	return &EventRepository{db: db}
}

func eventConditions(filter models.EventFilter) *conditions {
	c := &conditions{}
	c.search(filter.Search, "e.title", "e.description")
	c.department("e.department_id", filter.DepartmentID)
	c.flag("e.is_active", filter.ActiveOnly)
	if filter.StartsFrom != nil {
		c.add("e.start_date >= " + c.bind(*filter.StartsFrom))
	}
	return c
}

// List returns events in start order.
func (r *EventRepository) List(ctx context.Context, filter models.EventFilter) ([]models.Event, error) {
	c := eventConditions(filter)
	query := eventSelect + c.where() + " ORDER BY e.start_date ASC"
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", filter.Limit)
	}
	var events []models.Event
	if err := r.db.SelectContext(ctx, &events, query, c.args...); err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

// Count returns the number of events matching filter.
func (r *EventRepository) Count(ctx context.Context, filter models.EventFilter) (int, error) {
	c := eventConditions(filter)
	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM events e"+c.where(), c.args...); err != nil {
		return 0, fmt.Errorf("count events: %w", err)
	}
	return total, nil
}

// GetByID returns an event by identifier.
func (r *EventRepository) GetByID(ctx context.Context, id string) (*models.Event, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	var event models.Event
	if err := r.db.GetContext(ctx, &event, eventSelect+" WHERE e.id = $1", id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return &event, nil
}

// Create inserts a new event.
func (r *EventRepository) Create(ctx context.Context, event *models.Event) error {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if event.CreatedAt.IsZero() {
		event.CreatedAt = now
	}
	event.UpdatedAt = now
	const query = `INSERT INTO events (id, title, description, department_id, event_type, venue, start_date, end_date, is_active, created_by, created_at, updated_at)
VALUES (:id, :title, :description, :department_id, :event_type, :venue, :start_date, :end_date, :is_active, :created_by, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, event); err != nil {
		return fmt.Errorf("create event: %w", err)
	}
	return nil
}

// Update modifies an existing event.
func (r *EventRepository) Update(ctx context.Context, event *models.Event) error {
	event.UpdatedAt = time.Now().UTC()
	const query = `UPDATE events SET title = :title, description = :description, department_id = :department_id,
event_type = :event_type, venue = :venue, start_date = :start_date, end_date = :end_date, is_active = :is_active,
updated_at = :updated_at WHERE id = :id`
	if _, err := r.db.NamedExecContext(ctx, query, event); err != nil {
		return fmt.Errorf("update event: %w", err)
	}
	return nil
}

// Delete removes an event.
func (r *EventRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM events WHERE id = $1", id); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}
