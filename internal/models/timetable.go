package models

import "time"

// Weekday names a timetable day.
type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
)

// Weekdays is the fixed display order of timetable buckets.
var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

const (
	DefaultTimetableLevel    = "100L"
	DefaultTimetableSemester = "First"
)

// Timetable is one scheduled class slot. Overlapping slots are allowed.
type Timetable struct {
	ID           string    `db:"id" json:"id"`
	DepartmentID string    `db:"department_id" json:"department_id"`
	DayOfWeek    Weekday   `db:"day_of_week" json:"day_of_week"`
	CourseCode   string    `db:"course_code" json:"course_code"`
	CourseTitle  string    `db:"course_title" json:"course_title"`
	Lecturer     string    `db:"lecturer" json:"lecturer"`
	Venue        string    `db:"venue" json:"venue"`
	StartTime    string    `db:"start_time" json:"start_time"`
	EndTime      string    `db:"end_time" json:"end_time"`
	Level        string    `db:"level" json:"level"`
	Semester     string    `db:"semester" json:"semester"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	CreatedBy    string    `db:"created_by" json:"created_by"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	DepartmentRef
}

// TimetableFilter narrows timetable listings.
type TimetableFilter struct {
	DepartmentID string
	Level        string
	ActiveOnly   bool
}
