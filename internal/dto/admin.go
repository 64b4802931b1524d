package dto

import "github.com/noah-isme/noticeboard/internal/models"

// DashboardStats summarises every record kind for the admin landing page.
type DashboardStats struct {
	TotalAnnouncements  int `json:"total_announcements"`
	ActiveAnnouncements int `json:"active_announcements"`
	TotalEvents         int `json:"total_events"`
	UpcomingEvents      int `json:"upcoming_events"`
	TotalTimetables     int `json:"total_timetables"`
	ActiveTimetables    int `json:"active_timetables"`
	TotalResults        int `json:"total_results"`
	PublishedResults    int `json:"published_results"`
	TotalDepartments    int `json:"total_departments"`
}

// AdminList is the unfiltered admin listing of one kind.
type AdminList struct {
	Kind  string      `json:"kind"`
	Items interface{} `json:"items"`
}

// FormView describes an add or edit form, with field errors after a failed submit.
type FormView struct {
	Kind        string              `json:"kind"`
	Title       string              `json:"title"`
	Values      interface{}         `json:"values,omitempty"`
	Errors      map[string]string   `json:"errors,omitempty"`
	Departments []models.Department `json:"departments,omitempty"`
	Choices     map[string][]string `json:"choices,omitempty"`
}

// DeleteConfirm asks the operator to confirm a deletion.
type DeleteConfirm struct {
	Kind   string      `json:"kind"`
	ID     string      `json:"id"`
	Record interface{} `json:"record"`
}

// LoginView is the admin sign-in form.
type LoginView struct {
	Username string            `json:"username,omitempty"`
	Error    string            `json:"error,omitempty"`
	Errors   map[string]string `json:"errors,omitempty"`
}
