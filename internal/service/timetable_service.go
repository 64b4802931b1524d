package service

import (
	"context"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/noticeboard/internal/models"
)

type timetableRepository interface {
	List(ctx context.Context, filter models.TimetableFilter) ([]models.Timetable, error)
	GetByID(ctx context.Context, id string) (*models.Timetable, error)
	Create(ctx context.Context, entry *models.Timetable) error
	Update(ctx context.Context, entry *models.Timetable) error
	Delete(ctx context.Context, id string) error
}

// TimetableForm is the add/edit payload for timetable slots.
type TimetableForm struct {
	Department  string    `form:"department" json:"department" validate:"required"`
	DayOfWeek   string    `form:"day_of_week" json:"day_of_week" validate:"required,oneof=monday tuesday wednesday thursday friday saturday sunday"`
	CourseCode  string    `form:"course_code" json:"course_code" validate:"required,max=20"`
	CourseTitle string    `form:"course_title" json:"course_title" validate:"required,max=200"`
	Lecturer    string    `form:"lecturer" json:"lecturer" validate:"required,max=100"`
	Venue       string    `form:"venue" json:"venue" validate:"required,max=100"`
	StartTime   string    `form:"start_time" json:"start_time" validate:"required,clock"`
	EndTime     string    `form:"end_time" json:"end_time" validate:"required,clock"`
	Level       string    `form:"level" json:"level" validate:"max=20"`
	Semester    string    `form:"semester" json:"semester" validate:"max=20"`
	IsActive    *Checkbox `form:"is_active" json:"is_active"`
}

func (f *TimetableForm) normalize() {
	f.Department = strings.TrimSpace(f.Department)
	f.DayOfWeek = strings.ToLower(strings.TrimSpace(f.DayOfWeek))
	f.CourseCode = strings.TrimSpace(f.CourseCode)
	f.CourseTitle = strings.TrimSpace(f.CourseTitle)
	f.Lecturer = strings.TrimSpace(f.Lecturer)
	f.Venue = strings.TrimSpace(f.Venue)
	f.StartTime = strings.TrimSpace(f.StartTime)
	f.EndTime = strings.TrimSpace(f.EndTime)
	f.Level = strings.TrimSpace(f.Level)
	f.Semester = strings.TrimSpace(f.Semester)
}

// TimetableService handles the admin timetable workflows.
type TimetableService struct {
	repo        timetableRepository
	departments departmentLookup
	validator   *validator.Validate
	metrics     mutationRecorder
	logger      *zap.Logger
}

// NewTimetableService constructs the service.
func NewTimetableService(repo timetableRepository, departments departmentLookup, validate *validator.Validate, metrics mutationRecorder, logger *zap.Logger) *TimetableService {
	if validate == nil {
		validate = NewValidator()
	}
	if metrics == nil {
		metrics = noopRecorder{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TimetableService{repo: repo, departments: departments, validator: validate, metrics: metrics, logger: logger}
}

// List returns every slot ordered by weekday then start time.
func (s *TimetableService) List(ctx context.Context, caller models.Caller) ([]models.Timetable, error) {
	if err := Authorize(caller); err != nil {
		return nil, err
	}
	entries, err := s.repo.List(ctx, models.TimetableFilter{})
	if err != nil {
		return nil, internal(err, "failed to list timetable entries")
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return weekdayIndex(entries[i].DayOfWeek) < weekdayIndex(entries[j].DayOfWeek)
	})
	return entries, nil
}

// Get returns a slot by id.
func (s *TimetableService) Get(ctx context.Context, caller models.Caller, id string) (*models.Timetable, error) {
	if err := Authorize(caller); err != nil {
		return nil, err
	}
	entry, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "timetable entry not found", "failed to get timetable entry")
	}
	return entry, nil
}

// Create registers a new slot attributed to caller. Overlapping slots are accepted.
func (s *TimetableService) Create(ctx context.Context, caller models.Caller, form TimetableForm) (*models.Timetable, error) {
	if err := Authorize(caller); err != nil {
		return nil, err
	}
	entry := &models.Timetable{CreatedBy: caller.UserID}
	if err := s.apply(ctx, entry, form, true); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, internal(err, "failed to create timetable entry")
	}
	s.metrics.RecordMutation("timetable", "create")
	return entry, nil
}

// Update replaces the editable fields of a slot.
func (s *TimetableService) Update(ctx context.Context, caller models.Caller, id string, form TimetableForm) (*models.Timetable, error) {
	entry, err := s.Get(ctx, caller, id)
	if err != nil {
		return nil, err
	}
	if err := s.apply(ctx, entry, form, false); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, entry); err != nil {
		return nil, internal(err, "failed to update timetable entry")
	}
	s.metrics.RecordMutation("timetable", "update")
	return entry, nil
}

// Delete removes a slot.
func (s *TimetableService) Delete(ctx context.Context, caller models.Caller, id string) error {
	if _, err := s.Get(ctx, caller, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return internal(err, "failed to delete timetable entry")
	}
	s.metrics.RecordMutation("timetable", "delete")
	return nil
}

// FormFor prefills the edit form from a stored slot. Nil yields defaults.
func (s *TimetableService) FormFor(entry *models.Timetable) TimetableForm {
	if entry == nil {
		return TimetableForm{Level: models.DefaultTimetableLevel, Semester: models.DefaultTimetableSemester, IsActive: checked(true)}
	}
	active := entry.IsActive
	return TimetableForm{
		Department:  entry.DepartmentID,
		DayOfWeek:   string(entry.DayOfWeek),
		CourseCode:  entry.CourseCode,
		CourseTitle: entry.CourseTitle,
		Lecturer:    entry.Lecturer,
		Venue:       entry.Venue,
		StartTime:   entry.StartTime,
		EndTime:     entry.EndTime,
		Level:       entry.Level,
		Semester:    entry.Semester,
		IsActive:    checked(active),
	}
}

func (s *TimetableService) apply(ctx context.Context, entry *models.Timetable, form TimetableForm, creating bool) error {
	form.normalize()
	if err := validateForm(s.validator, form); err != nil {
		return err
	}
	if err := ensureDepartment(ctx, s.departments, form.Department); err != nil {
		return err
	}
	start, _ := parseClock(form.StartTime)
	end, _ := parseClock(form.EndTime)
	level := form.Level
	if level == "" {
		level = models.DefaultTimetableLevel
	}
	semester := form.Semester
	if semester == "" {
		semester = models.DefaultTimetableSemester
	}

	entry.DepartmentID = form.Department
	entry.DayOfWeek = models.Weekday(form.DayOfWeek)
	entry.CourseCode = form.CourseCode
	entry.CourseTitle = form.CourseTitle
	entry.Lecturer = form.Lecturer
	entry.Venue = form.Venue
	entry.StartTime = start
	entry.EndTime = end
	entry.Level = level
	entry.Semester = semester
	entry.IsActive = flagOr(form.IsActive, creating || entry.IsActive)
	return nil
}

func weekdayIndex(day models.Weekday) int {
	for i, d := range models.Weekdays {
		if d == day {
			return i
		}
	}
	return len(models.Weekdays)
}
