package service

import (
	"context"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/noticeboard/internal/models"
)

type eventRepository interface {
	List(ctx context.Context, filter models.EventFilter) ([]models.Event, error)
	GetByID(ctx context.Context, id string) (*models.Event, error)
	Create(ctx context.Context, event *models.Event) error
	Update(ctx context.Context, event *models.Event) error
	Delete(ctx context.Context, id string) error
}

// EventForm is the add/edit payload for events.
type EventForm struct {
	Title       string    `form:"title" json:"title" validate:"required,max=200"`
	Description string    `form:"description" json:"description" validate:"required"`
	Department  string    `form:"department" json:"department" validate:"required"`
	EventType   string    `form:"event_type" json:"event_type" validate:"omitempty,oneof=lecture exam meeting workshop seminar other"`
	Venue       string    `form:"venue" json:"venue" validate:"required,max=200"`
	StartDate   string    `form:"start_date" json:"start_date" validate:"required,datetime_input"`
	EndDate     string    `form:"end_date" json:"end_date" validate:"required,datetime_input"`
	IsActive    *Checkbox `form:"is_active" json:"is_active"`
}

func (f *EventForm) normalize() {
	f.Title = strings.TrimSpace(f.Title)
	f.Description = strings.TrimSpace(f.Description)
	f.Department = strings.TrimSpace(f.Department)
	f.EventType = strings.ToLower(strings.TrimSpace(f.EventType))
	f.Venue = strings.TrimSpace(f.Venue)
	f.StartDate = strings.TrimSpace(f.StartDate)
	f.EndDate = strings.TrimSpace(f.EndDate)
}

// EventService handles the admin event workflows.
type EventService struct {
	repo        eventRepository
	departments departmentLookup
	validator   *validator.Validate
	metrics     mutationRecorder
	location    *time.Location
	logger      *zap.Logger
}

// NewEventService constructs the service.
func NewEventService(repo eventRepository, departments departmentLookup, validate *validator.Validate, metrics mutationRecorder, location *time.Location, logger *zap.Logger) *EventService {
	if validate == nil {
		validate = NewValidator()
	}
	if metrics == nil {
		metrics = noopRecorder{}
	}
	if location == nil {
		location = time.UTC
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EventService{repo: repo, departments: departments, validator: validate, metrics: metrics, location: location, logger: logger}
}

// List returns every event, inactive ones included.
func (s *EventService) List(ctx context.Context, caller models.Caller) ([]models.Event, error) {
	if err := Authorize(caller); err != nil {
		return nil, err
	}
	events, err := s.repo.List(ctx, models.EventFilter{})
	if err != nil {
		return nil, internal(err, "failed to list events")
	}
	return events, nil
}

// Get returns an event by id.
func (s *EventService) Get(ctx context.Context, caller models.Caller, id string) (*models.Event, error) {
	if err := Authorize(caller); err != nil {
		return nil, err
	}
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "event not found", "failed to get event")
	}
	return event, nil
}

// Create registers a new event attributed to caller.
func (s *EventService) Create(ctx context.Context, caller models.Caller, form EventForm) (*models.Event, error) {
	if err := Authorize(caller); err != nil {
		return nil, err
	}
	event := &models.Event{CreatedBy: caller.UserID}
	if err := s.apply(ctx, event, form, true); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, event); err != nil {
		return nil, internal(err, "failed to create event")
	}
	s.metrics.RecordMutation("event", "create")
	return event, nil
}

// Update replaces the editable fields of an event.
func (s *EventService) Update(ctx context.Context, caller models.Caller, id string, form EventForm) (*models.Event, error) {
	event, err := s.Get(ctx, caller, id)
	if err != nil {
		return nil, err
	}
	if err := s.apply(ctx, event, form, false); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, event); err != nil {
		return nil, internal(err, "failed to update event")
	}
	s.metrics.RecordMutation("event", "update")
	return event, nil
}

// Delete removes an event.
func (s *EventService) Delete(ctx context.Context, caller models.Caller, id string) error {
	if _, err := s.Get(ctx, caller, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return internal(err, "failed to delete event")
	}
	s.metrics.RecordMutation("event", "delete")
	return nil
}

// FormFor prefills the edit form from a stored event. Nil yields defaults.
func (s *EventService) FormFor(event *models.Event) EventForm {
	if event == nil {
		return EventForm{EventType: string(models.EventTypeOther), IsActive: checked(true)}
	}
	active := event.IsActive
	return EventForm{
		Title:       event.Title,
		Description: event.Description,
		Department:  event.DepartmentID,
		EventType:   string(event.EventType),
		Venue:       event.Venue,
		StartDate:   formatDateTime(event.StartDate, s.location),
		EndDate:     formatDateTime(event.EndDate, s.location),
		IsActive:    checked(active),
	}
}

func (s *EventService) apply(ctx context.Context, event *models.Event, form EventForm, creating bool) error {
	form.normalize()
	if err := validateForm(s.validator, form); err != nil {
		return err
	}
	if err := ensureDepartment(ctx, s.departments, form.Department); err != nil {
		return err
	}
	start, err := parseDateTime(form.StartDate, s.location)
	if err != nil {
		return fieldError("start_date", "start_date must be a date and time such as 2024-03-10T09:30")
	}
	end, err := parseDateTime(form.EndDate, s.location)
	if err != nil {
		return fieldError("end_date", "end_date must be a date and time such as 2024-03-10T09:30")
	}
	eventType := models.EventType(form.EventType)
	if eventType == "" {
		eventType = models.EventTypeOther
	}

	event.Title = form.Title
	event.Description = form.Description
	event.DepartmentID = form.Department
	event.EventType = eventType
	event.Venue = form.Venue
	event.StartDate = start.UTC()
	event.EndDate = end.UTC()
	event.IsActive = flagOr(form.IsActive, creating || event.IsActive)
	return nil
}
