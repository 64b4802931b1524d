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

const announcementSelect = `SELECT a.id, a.title, a.content, a.department_id, a.priority, a.is_active, a.created_by,
a.created_at, a.updated_at, a.expires_at, d.name AS department_name, d.code AS department_code
FROM announcements a JOIN departments d ON d.id = a.department_id`

// AnnouncementRepository provides persistence for announcements.
type AnnouncementRepository struct {
	db *sqlx.DB
}

// NewAnnouncementRepository creates the repository.
func NewAnnouncementRepository(db *sqlx.DB) *AnnouncementRepository {
	return &AnnouncementRepository{db: db}
}

func announcementConditions(filter models.AnnouncementFilter) *conditions {
	c := &conditions{}
	c.search(filter.Search, "a.title", "a.content")
	c.department("a.department_id", filter.DepartmentID)
	c.flag("a.is_active", filter.ActiveOnly)
	return c
}

// List returns announcements newest first. Limit 0 returns every match.
func (r *AnnouncementRepository) List(ctx context.Context, filter models.AnnouncementFilter) ([]models.Announcement, error) {
	c := announcementConditions(filter)
	query := announcementSelect + c.where() + " ORDER BY a.created_at DESC"
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", filter.Limit, filter.Offset)
	}
	var announcements []models.Announcement
	if err := r.db.SelectContext(ctx, &announcements, query, c.args...); err != nil {
		return nil, fmt.Errorf("list announcements: %w", err)
	}
	return announcements, nil
}

// Count returns the number of announcements matching filter, ignoring Limit and Offset.
func (r *AnnouncementRepository) Count(ctx context.Context, filter models.AnnouncementFilter) (int, error) {
	c := announcementConditions(filter)
	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM announcements a"+c.where(), c.args...); err != nil {
		return 0, fmt.Errorf("count announcements: %w", err)
	}
	return total, nil
}

// GetByID returns an announcement by identifier.
func (r *AnnouncementRepository) GetByID(ctx context.Context, id string) (*models.Announcement, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	var announcement models.Announcement
	if err := r.db.GetContext(ctx, &announcement, announcementSelect+" WHERE a.id = $1", id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("get announcement: %w", err)
	}
	return &announcement, nil
}

// Create inserts a new announcement.
func (r *AnnouncementRepository) Create(ctx context.Context, announcement *models.Announcement) error {
	if announcement.ID == "" {
		announcement.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if announcement.CreatedAt.IsZero() {
		announcement.CreatedAt = now
	}
	announcement.UpdatedAt = now
	const query = `INSERT INTO announcements (id, title, content, department_id, priority, is_active, created_by, created_at, updated_at, expires_at)
VALUES (:id, :title, :content, :department_id, :priority, :is_active, :created_by, :created_at, :updated_at, :expires_at)`
	if _, err := r.db.NamedExecContext(ctx, query, announcement); err != nil {
		return fmt.Errorf("create announcement: %w", err)
	}
	return nil
}

// Update modifies an existing announcement and refreshes updated_at.
func (r *AnnouncementRepository) Update(ctx context.Context, announcement *models.Announcement) error {
	announcement.UpdatedAt = time.Now().UTC()
	const query = `UPDATE announcements SET title = :title, content = :content, department_id = :department_id,
priority = :priority, is_active = :is_active, expires_at = :expires_at, updated_at = :updated_at
WHERE id = :id`
	if _, err := r.db.NamedExecContext(ctx, query, announcement); err != nil {
		return fmt.Errorf("update announcement: %w", err)
	}
	return nil
}

// Delete removes an announcement.
func (r *AnnouncementRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM announcements WHERE id = $1", id); err != nil {
		return fmt.Errorf("delete announcement: %w", err)
	}
	return nil
}
