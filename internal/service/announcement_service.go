package service

import (
	"context"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/noticeboard/internal/models"
)

type announcementRepository interface {
	List(ctx context.Context, filter models.AnnouncementFilter) ([]models.Announcement, error)
	GetByID(ctx context.Context, id string) (*models.Announcement, error)
	Create(ctx context.Context, announcement *models.Announcement) error
	Update(ctx context.Context, announcement *models.Announcement) error
	Delete(ctx context.Context, id string) error
}

// AnnouncementForm is the add/edit payload for announcements.
type AnnouncementForm struct {
	Title      string    `form:"title" json:"title" validate:"required,max=200"`
	Content    string    `form:"content" json:"content" validate:"required"`
	Department string    `form:"department" json:"department" validate:"required"`
	Priority   string    `form:"priority" json:"priority" validate:"omitempty,oneof=low medium high urgent"`
	ExpiresAt  string    `form:"expires_at" json:"expires_at" validate:"omitempty,datetime_input"`
	IsActive   *Checkbox `form:"is_active" json:"is_active"`
}

func (f *AnnouncementForm) normalize() {
	f.Title = strings.TrimSpace(f.Title)
	f.Content = strings.TrimSpace(f.Content)
	f.Department = strings.TrimSpace(f.Department)
	f.Priority = strings.ToLower(strings.TrimSpace(f.Priority))
	f.ExpiresAt = strings.TrimSpace(f.ExpiresAt)
}

// AnnouncementService handles the admin announcement workflows.
type AnnouncementService struct {
	repo        announcementRepository
	departments departmentLookup
	validator   *validator.Validate
	metrics     mutationRecorder
	location    *time.Location
	logger      *zap.Logger
}

// NewAnnouncementService constructs the service.
func NewAnnouncementService(repo announcementRepository, departments departmentLookup, validate *validator.Validate, metrics mutationRecorder, location *time.Location, logger *zap.Logger) *AnnouncementService {
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
	return &AnnouncementService{repo: repo, departments: departments, validator: validate, metrics: metrics, location: location, logger: logger}
}

// List returns every announcement, inactive ones included.
func (s *AnnouncementService) List(ctx context.Context, caller models.Caller) ([]models.Announcement, error) {
	if err := Authorize(caller); err != nil {
		return nil, err
	}
	items, err := s.repo.List(ctx, models.AnnouncementFilter{})
	if err != nil {
		return nil, internal(err, "failed to list announcements")
	}
	return items, nil
}

// Get returns an announcement by id.
func (s *AnnouncementService) Get(ctx context.Context, caller models.Caller, id string) (*models.Announcement, error) {
	if err := Authorize(caller); err != nil {
		return nil, err
	}
	ann, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "announcement not found", "failed to get announcement")
	}
	return ann, nil
}

// Create registers a new announcement attributed to caller.
func (s *AnnouncementService) Create(ctx context.Context, caller models.Caller, form AnnouncementForm) (*models.Announcement, error) {
	if err := Authorize(caller); err != nil {
		return nil, err
	}
	ann := &models.Announcement{CreatedBy: caller.UserID}
	if err := s.apply(ctx, ann, form, true); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, ann); err != nil {
		return nil, internal(err, "failed to create announcement")
	}
	s.metrics.RecordMutation("announcement", "create")
	return ann, nil
}

// Update replaces the editable fields of an announcement. The creator is kept.
func (s *AnnouncementService) Update(ctx context.Context, caller models.Caller, id string, form AnnouncementForm) (*models.Announcement, error) {
	ann, err := s.Get(ctx, caller, id)
	if err != nil {
		return nil, err
	}
	if err := s.apply(ctx, ann, form, false); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, ann); err != nil {
		return nil, internal(err, "failed to update announcement")
	}
	s.metrics.RecordMutation("announcement", "update")
	return ann, nil
}

// Delete removes an announcement.
func (s *AnnouncementService) Delete(ctx context.Context, caller models.Caller, id string) error {
	if _, err := s.Get(ctx, caller, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return internal(err, "failed to delete announcement")
	}
	s.metrics.RecordMutation("announcement", "delete")
	return nil
}

// FormFor prefills the edit form from a stored announcement. Nil yields defaults.
func (s *AnnouncementService) FormFor(ann *models.Announcement) AnnouncementForm {
	if ann == nil {
		return AnnouncementForm{Priority: string(models.AnnouncementPriorityMedium), IsActive: checked(true)}
	}
	active := ann.IsActive
	form := AnnouncementForm{
		Title:      ann.Title,
		Content:    ann.Content,
		Department: ann.DepartmentID,
		Priority:   string(ann.Priority),
		IsActive:   checked(active),
	}
	if ann.ExpiresAt != nil {
		form.ExpiresAt = formatDateTime(*ann.ExpiresAt, s.location)
	}
	return form
}

func (s *AnnouncementService) apply(ctx context.Context, ann *models.Announcement, form AnnouncementForm, creating bool) error {
	form.normalize()
	if err := validateForm(s.validator, form); err != nil {
		return err
	}
	if err := ensureDepartment(ctx, s.departments, form.Department); err != nil {
		return err
	}
	var expiresAt *time.Time
	if form.ExpiresAt != "" {
		t, err := parseDateTime(form.ExpiresAt, s.location)
		if err != nil {
			return fieldError("expires_at", "expires_at must be a date and time such as 2024-03-10T09:30")
		}
		t = t.UTC()
		expiresAt = &t
	}
	priority := models.AnnouncementPriority(form.Priority)
	if priority == "" {
		priority = models.AnnouncementPriorityMedium
	}

	ann.Title = form.Title
	ann.Content = form.Content
	ann.DepartmentID = form.Department
	ann.Priority = priority
	ann.ExpiresAt = expiresAt
	ann.IsActive = flagOr(form.IsActive, creating || ann.IsActive)
	return nil
}
