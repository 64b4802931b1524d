package models

import "time"

// AnnouncementPriority ranks how prominently an announcement is shown.
type AnnouncementPriority string

const (
	AnnouncementPriorityLow    AnnouncementPriority = "low"
	AnnouncementPriorityMedium AnnouncementPriority = "medium"
	AnnouncementPriorityHigh   AnnouncementPriority = "high"
	AnnouncementPriorityUrgent AnnouncementPriority = "urgent"
)

// AnnouncementPriorities lists valid priorities in ascending order.
var AnnouncementPriorities = []AnnouncementPriority{
	AnnouncementPriorityLow,
	AnnouncementPriorityMedium,
	AnnouncementPriorityHigh,
	AnnouncementPriorityUrgent,
}

// Announcement represents a persisted announcement row.
type Announcement struct {
	ID           string               `db:"id" json:"id"`
	Title        string               `db:"title" json:"title"`
	Content      string               `db:"content" json:"content"`
	DepartmentID string               `db:"department_id" json:"department_id"`
	Priority     AnnouncementPriority `db:"priority" json:"priority"`
	IsActive     bool                 `db:"is_active" json:"is_active"`
	CreatedBy    string               `db:"created_by" json:"created_by"`
	CreatedAt    time.Time            `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time            `db:"updated_at" json:"updated_at"`
	ExpiresAt    *time.Time           `db:"expires_at" json:"expires_at,omitempty"`
	DepartmentRef
}

// IsExpired reports whether an expiry is set and already passed at now.
func (a *Announcement) IsExpired(now time.Time) bool {
	return a.ExpiresAt != nil && a.ExpiresAt.Before(now)
}

// AnnouncementFilter narrows announcement listings. Zero value lists everything.
type AnnouncementFilter struct {
	Search       string
	DepartmentID string
	ActiveOnly   bool
	Limit        int
	Offset       int
}
