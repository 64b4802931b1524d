package models

import "time"

// ResultSemester is the half of the academic session a result belongs to.
type ResultSemester string

const (
	ResultSemesterFirst  ResultSemester = "first"
	ResultSemesterSecond ResultSemester = "second"
)

// Result announces the availability of examination results for one course.
type Result struct {
	ID           string         `db:"id" json:"id"`
	Session      string         `db:"session" json:"session"`
	Semester     ResultSemester `db:"semester" json:"semester"`
	DepartmentID string         `db:"department_id" json:"department_id"`
	Level        string         `db:"level" json:"level"`
	CourseCode   string         `db:"course_code" json:"course_code"`
	CourseTitle  string         `db:"course_title" json:"course_title"`
	FileURL      string         `db:"file_url" json:"file_url"`
	Description  string         `db:"description" json:"description"`
	IsPublished  bool           `db:"is_published" json:"is_published"`
	CreatedBy    string         `db:"created_by" json:"created_by"`
	CreatedAt    time.Time      `db:"created_at" json:"created_at"`
	DepartmentRef
}

// ResultFilter narrows result listings.
type ResultFilter struct {
	DepartmentID  string
	Session       string
	PublishedOnly bool
}
