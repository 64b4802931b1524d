package models

import "time"

// EventType categorises an event.
type EventType string

const (
	EventTypeLecture  EventType = "lecture"
	EventTypeExam     EventType = "exam"
	EventTypeMeeting  EventType = "meeting"
	EventTypeWorkshop EventType = "workshop"
	EventTypeSeminar  EventType = "seminar"
	EventTypeOther    EventType = "other"
)

// EventTypes lists every valid event type.
var EventTypes = []EventType{
	EventTypeLecture,
	EventTypeExam,
	EventTypeMeeting,
	EventTypeWorkshop,
	EventTypeSeminar,
	EventTypeOther,
}

// Event represents a scheduled departmental event.
type Event struct {
	ID           string    `db:"id" json:"id"`
	Title        string    `db:"title" json:"title"`
	Description  string    `db:"description" json:"description"`
	DepartmentID string    `db:"department_id" json:"department_id"`
	EventType    EventType `db:"event_type" json:"event_type"`
	Venue        string    `db:"venue" json:"venue"`
	StartDate    time.Time `db:"start_date" json:"start_date"`
	EndDate      time.Time `db:"end_date" json:"end_date"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	CreatedBy    string    `db:"created_by" json:"created_by"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
	DepartmentRef
}

// IsToday reports whether now's calendar date lies within the event's date span.
func (e *Event) IsToday(now time.Time) bool {
	today := civilDate(now, now.Location())
	start := civilDate(e.StartDate, now.Location())
	end := civilDate(e.EndDate, now.Location())
	return !today.Before(start) && !today.After(end)
}

// IsUpcoming reports whether the event starts on a later calendar date than now.
func (e *Event) IsUpcoming(now time.Time) bool {
	return civilDate(e.StartDate, now.Location()).After(civilDate(now, now.Location()))
}

// EventFilter narrows event listings. StartsFrom keeps events starting at or after it.
type EventFilter struct {
	Search       string
	DepartmentID string
	ActiveOnly   bool
	StartsFrom   *time.Time
	Limit        int
}

// civilDate truncates t to midnight of its date as observed in loc.
func civilDate(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
