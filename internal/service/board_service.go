package service

import (
	"context"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/noticeboard/internal/dto"
	"github.com/noah-isme/noticeboard/internal/models"
)

const (
	announcementPageSize = 10
	homeAnnouncements    = 10
	homeUpcomingEvents   = 5
)

type boardDepartmentReader interface {
	List(ctx context.Context) ([]models.Department, error)
}

type boardAnnouncementReader interface {
	List(ctx context.Context, filter models.AnnouncementFilter) ([]models.Announcement, error)
	Count(ctx context.Context, filter models.AnnouncementFilter) (int, error)
}

type boardEventReader interface {
	List(ctx context.Context, filter models.EventFilter) ([]models.Event, error)
}

type boardTimetableReader interface {
	List(ctx context.Context, filter models.TimetableFilter) ([]models.Timetable, error)
	DistinctLevels(ctx context.Context) ([]string, error)
}

type boardResultReader interface {
	List(ctx context.Context, filter models.ResultFilter) ([]models.Result, error)
	DistinctSessions(ctx context.Context) ([]string, error)
}

// BoardQuery carries the optional public filter parameters.
type BoardQuery struct {
	Search     string `form:"search"`
	Department string `form:"department"`
	Level      string `form:"level"`
	Session    string `form:"session"`
	Page       string `form:"page"`
}

func (q BoardQuery) filters() dto.BoardFilters {
	return dto.BoardFilters{
		Search:     strings.TrimSpace(q.Search),
		Department: strings.TrimSpace(q.Department),
		Level:      strings.TrimSpace(q.Level),
		Session:    strings.TrimSpace(q.Session),
	}
}

// page parses the requested page; anything unparsable is the first page.
func (q BoardQuery) page() int {
	n, err := strconv.Atoi(strings.TrimSpace(q.Page))
	if err != nil {
		return 1
	}
	return n
}

// BoardService builds the public views. Every query it issues is restricted
// to active or published records.
type BoardService struct {
	departments   boardDepartmentReader
	announcements boardAnnouncementReader
	events        boardEventReader
	timetables    boardTimetableReader
	results       boardResultReader
	location      *time.Location
	now           func() time.Time
	logger        *zap.Logger
}

// NewBoardService constructs the public query service.
func NewBoardService(departments boardDepartmentReader, announcements boardAnnouncementReader, events boardEventReader, timetables boardTimetableReader, results boardResultReader, location *time.Location, logger *zap.Logger) *BoardService {
	if location == nil {
		location = time.UTC
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BoardService{
		departments:   departments,
		announcements: announcements,
		events:        events,
		timetables:    timetables,
		results:       results,
		location:      location,
		now:           time.Now,
		logger:        logger,
	}
}

func (s *BoardService) clock() time.Time {
	return s.now().In(s.location)
}

// Home returns recent matching announcements and the next upcoming events.
func (s *BoardService) Home(ctx context.Context, q BoardQuery) (*dto.HomeView, error) {
	filters := q.filters()
	departments, err := s.listDepartments(ctx)
	if err != nil {
		return nil, err
	}
	announcements, err := s.announcements.List(ctx, models.AnnouncementFilter{
		Search:       filters.Search,
		DepartmentID: filters.Department,
		ActiveOnly:   true,
		Limit:        homeAnnouncements,
	})
	if err != nil {
		return nil, internal(err, "failed to list announcements")
	}
	now := s.clock()
	events, err := s.events.List(ctx, models.EventFilter{
		ActiveOnly: true,
		StartsFrom: &now,
		Limit:      homeUpcomingEvents,
	})
	if err != nil {
		return nil, internal(err, "failed to list upcoming events")
	}
	return &dto.HomeView{
		Announcements:  s.announcementItems(announcements, now),
		UpcomingEvents: eventItems(events, now),
		Departments:    departments,
		Filters:        dto.BoardFilters{Search: filters.Search, Department: filters.Department},
	}, nil
}

// Announcements returns one page of matching active announcements. The page
// number is clamped into the valid range.
func (s *BoardService) Announcements(ctx context.Context, q BoardQuery) (*dto.AnnouncementPage, error) {
	filters := q.filters()
	departments, err := s.listDepartments(ctx)
	if err != nil {
		return nil, err
	}
	filter := models.AnnouncementFilter{
		Search:       filters.Search,
		DepartmentID: filters.Department,
		ActiveOnly:   true,
	}
	total, err := s.announcements.Count(ctx, filter)
	if err != nil {
		return nil, internal(err, "failed to count announcements")
	}
	pagination := models.NewPagination(q.page(), announcementPageSize, total)
	filter.Limit = pagination.PageSize
	filter.Offset = pagination.Offset()
	announcements, err := s.announcements.List(ctx, filter)
	if err != nil {
		return nil, internal(err, "failed to list announcements")
	}
	return &dto.AnnouncementPage{
		Announcements: s.announcementItems(announcements, s.clock()),
		Departments:   departments,
		Filters:       dto.BoardFilters{Search: filters.Search, Department: filters.Department},
		Pagination:    pagination,
	}, nil
}

// Events returns all matching active events in start order.
func (s *BoardService) Events(ctx context.Context, q BoardQuery) (*dto.EventsView, error) {
	filters := q.filters()
	departments, err := s.listDepartments(ctx)
	if err != nil {
		return nil, err
	}
	events, err := s.events.List(ctx, models.EventFilter{
		Search:       filters.Search,
		DepartmentID: filters.Department,
		ActiveOnly:   true,
	})
	if err != nil {
		return nil, internal(err, "failed to list events")
	}
	return &dto.EventsView{
		Events:      eventItems(events, s.clock()),
		Departments: departments,
		Filters:     dto.BoardFilters{Search: filters.Search, Department: filters.Department},
	}, nil
}

// Timetable groups matching active slots into seven weekday buckets. The
// level facet spans every slot regardless of filters or visibility.
func (s *BoardService) Timetable(ctx context.Context, q BoardQuery) (*dto.TimetableView, error) {
	filters := q.filters()
	departments, err := s.listDepartments(ctx)
	if err != nil {
		return nil, err
	}
	entries, err := s.timetables.List(ctx, models.TimetableFilter{
		DepartmentID: filters.Department,
		Level:        filters.Level,
		ActiveOnly:   true,
	})
	if err != nil {
		return nil, internal(err, "failed to list timetable")
	}
	levels, err := s.timetables.DistinctLevels(ctx)
	if err != nil {
		return nil, internal(err, "failed to list timetable levels")
	}
	return &dto.TimetableView{
		Days:        GroupByWeekday(entries),
		Levels:      nonNil(levels),
		Departments: departments,
		Filters:     dto.BoardFilters{Department: filters.Department, Level: filters.Level},
	}, nil
}

// Results returns matching published results. The session facet spans every
// result regardless of filters or visibility.
func (s *BoardService) Results(ctx context.Context, q BoardQuery) (*dto.ResultsView, error) {
	filters := q.filters()
	departments, err := s.listDepartments(ctx)
	if err != nil {
		return nil, err
	}
	results, err := s.results.List(ctx, models.ResultFilter{
		DepartmentID:  filters.Department,
		Session:       filters.Session,
		PublishedOnly: true,
	})
	if err != nil {
		return nil, internal(err, "failed to list results")
	}
	sessions, err := s.results.DistinctSessions(ctx)
	if err != nil {
		return nil, internal(err, "failed to list result sessions")
	}
	if results == nil {
		results = []models.Result{}
	}
	return &dto.ResultsView{
		Results:     results,
		Sessions:    nonNil(sessions),
		Departments: departments,
		Filters:     dto.BoardFilters{Department: filters.Department, Session: filters.Session},
	}, nil
}

// GroupByWeekday partitions entries into one bucket per weekday, Monday first,
// keeping the input order inside each bucket.
func GroupByWeekday(entries []models.Timetable) []dto.DayBucket {
	buckets := make([]dto.DayBucket, len(models.Weekdays))
	index := make(map[models.Weekday]int, len(models.Weekdays))
	for i, day := range models.Weekdays {
		buckets[i] = dto.DayBucket{Day: day, Entries: []models.Timetable{}}
		index[day] = i
	}
	for _, entry := range entries {
		if i, ok := index[entry.DayOfWeek]; ok {
			buckets[i].Entries = append(buckets[i].Entries, entry)
		}
	}
	return buckets
}

func (s *BoardService) listDepartments(ctx context.Context) ([]models.Department, error) {
	departments, err := s.departments.List(ctx)
	if err != nil {
		return nil, internal(err, "failed to list departments")
	}
	if departments == nil {
		departments = []models.Department{}
	}
	return departments, nil
}

func (s *BoardService) announcementItems(announcements []models.Announcement, now time.Time) []dto.AnnouncementItem {
	items := make([]dto.AnnouncementItem, 0, len(announcements))
	for _, ann := range announcements {
		items = append(items, dto.AnnouncementItem{Announcement: ann, IsExpired: ann.IsExpired(now)})
	}
	return items
}

func eventItems(events []models.Event, now time.Time) []dto.EventItem {
	items := make([]dto.EventItem, 0, len(events))
	for _, ev := range events {
		items = append(items, dto.EventItem{Event: ev, IsToday: ev.IsToday(now), IsUpcoming: ev.IsUpcoming(now)})
	}
	return items
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
