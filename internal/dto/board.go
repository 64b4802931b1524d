package dto

import "github.com/noah-isme/noticeboard/internal/models"

// BoardFilters echoes the filters applied to a public view.
type BoardFilters struct {
	Search     string `json:"search"`
	Department string `json:"department"`
	Level      string `json:"level,omitempty"`
	Session    string `json:"session,omitempty"`
}

// AnnouncementItem is an announcement with its derived expiry state.
type AnnouncementItem struct {
	models.Announcement
	IsExpired bool `json:"is_expired"`
}

// EventItem is an event with its derived calendar state.
type EventItem struct {
	models.Event
	IsToday    bool `json:"is_today"`
	IsUpcoming bool `json:"is_upcoming"`
}

// HomeView feeds the landing page.
type HomeView struct {
	Announcements  []AnnouncementItem  `json:"announcements"`
	UpcomingEvents []EventItem         `json:"upcoming_events"`
	Departments    []models.Department `json:"departments"`
	Filters        BoardFilters        `json:"filters"`
}

// AnnouncementPage is one page of the public announcement listing.
type AnnouncementPage struct {
	Announcements []AnnouncementItem  `json:"announcements"`
	Departments   []models.Department `json:"departments"`
	Filters       BoardFilters        `json:"filters"`
	Pagination    models.Pagination   `json:"-"`
}

// Paging exposes page metadata to the renderer.
func (p *AnnouncementPage) Paging() *models.Pagination {
	return &p.Pagination
}

// EventsView lists public events.
type EventsView struct {
	Events      []EventItem         `json:"events"`
	Departments []models.Department `json:"departments"`
	Filters     BoardFilters        `json:"filters"`
}

// DayBucket holds the slots of one weekday.
type DayBucket struct {
	Day     models.Weekday     `json:"day"`
	Entries []models.Timetable `json:"entries"`
}

// TimetableView groups public timetable slots by weekday.
type TimetableView struct {
	Days        []DayBucket         `json:"days"`
	Levels      []string            `json:"levels"`
	Departments []models.Department `json:"departments"`
	Filters     BoardFilters        `json:"filters"`
}

// ResultsView lists published results.
type ResultsView struct {
	Results     []models.Result     `json:"results"`
	Sessions    []string            `json:"sessions"`
	Departments []models.Department `json:"departments"`
	Filters     BoardFilters        `json:"filters"`
}
