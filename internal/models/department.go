package models

import "time"

// Department groups every other record kind; deleting one cascades to its dependents.
type Department struct {
	ID          string    `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Code        string    `db:"code" json:"code"`
	Description string    `db:"description" json:"description"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// DepartmentRef is the display portion of a department joined onto dependent rows.
type DepartmentRef struct {
	DepartmentName string `db:"department_name" json:"department_name"`
	DepartmentCode string `db:"department_code" json:"department_code"`
}
