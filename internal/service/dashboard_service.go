package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/noticeboard/internal/dto"
	"github.com/noah-isme/noticeboard/internal/models"
)

type announcementCounter interface {
	Count(ctx context.Context, filter models.AnnouncementFilter) (int, error)
}

type eventCounter interface {
	Count(ctx context.Context, filter models.EventFilter) (int, error)
}

type timetableCounter interface {
	Count(ctx context.Context, filter models.TimetableFilter) (int, error)
}

type resultCounter interface {
	Count(ctx context.Context, filter models.ResultFilter) (int, error)
}

type departmentCounter interface {
	Count(ctx context.Context) (int, error)
}

// DashboardService composes the admin landing page statistics.
type DashboardService struct {
	announcements announcementCounter
	events        eventCounter
	timetables    timetableCounter
	results       resultCounter
	departments   departmentCounter
	now           func() time.Time
	logger        *zap.Logger
}

// NewDashboardService constructs the dashboard service.
func NewDashboardService(announcements announcementCounter, events eventCounter, timetables timetableCounter, results resultCounter, departments departmentCounter, logger *zap.Logger) *DashboardService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardService{
		announcements: announcements,
		events:        events,
		timetables:    timetables,
		results:       results,
		departments:   departments,
		now:           time.Now,
		logger:        logger,
	}
}

// Stats counts every record kind. Upcoming events are those starting from now on,
// whatever their active flag.
func (s *DashboardService) Stats(ctx context.Context, caller models.Caller) (*dto.DashboardStats, error) {
	if err := Authorize(caller); err != nil {
		return nil, err
	}
	now := s.now()
	stats := &dto.DashboardStats{}

	counts := []struct {
		target *int
		label  string
		count  func() (int, error)
	}{
		{&stats.TotalAnnouncements, "announcements", func() (int, error) {
			return s.announcements.Count(ctx, models.AnnouncementFilter{})
		}},
		{&stats.ActiveAnnouncements, "active announcements", func() (int, error) {
			return s.announcements.Count(ctx, models.AnnouncementFilter{ActiveOnly: true})
		}},
		{&stats.TotalEvents, "events", func() (int, error) {
			return s.events.Count(ctx, models.EventFilter{})
		}},
		{&stats.UpcomingEvents, "upcoming events", func() (int, error) {
			return s.events.Count(ctx, models.EventFilter{StartsFrom: &now})
		}},
		{&stats.TotalTimetables, "timetable entries", func() (int, error) {
			return s.timetables.Count(ctx, models.TimetableFilter{})
		}},
		{&stats.ActiveTimetables, "active timetable entries", func() (int, error) {
			return s.timetables.Count(ctx, models.TimetableFilter{ActiveOnly: true})
		}},
		{&stats.TotalResults, "results", func() (int, error) {
			return s.results.Count(ctx, models.ResultFilter{})
		}},
		{&stats.PublishedResults, "published results", func() (int, error) {
			return s.results.Count(ctx, models.ResultFilter{PublishedOnly: true})
		}},
		{&stats.TotalDepartments, "departments", func() (int, error) {
			return s.departments.Count(ctx)
		}},
	}
	for _, c := range counts {
		n, err := c.count()
		if err != nil {
			return nil, internal(err, "failed to count "+c.label)
		}
		*c.target = n
	}
	return stats, nil
}
