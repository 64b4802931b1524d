package service

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/noticeboard/internal/models"
)

type resultRepository interface {
	List(ctx context.Context, filter models.ResultFilter) ([]models.Result, error)
	GetByID(ctx context.Context, id string) (*models.Result, error)
	Create(ctx context.Context, result *models.Result) error
	Update(ctx context.Context, result *models.Result) error
	Delete(ctx context.Context, id string) error
}

// ResultForm is the add/edit payload for result notices.
type ResultForm struct {
	Session     string    `form:"session" json:"session" validate:"required,max=20"`
	Semester    string    `form:"semester" json:"semester" validate:"required,oneof=first second"`
	Department  string    `form:"department" json:"department" validate:"required"`
	Level       string    `form:"level" json:"level" validate:"required,max=20"`
	CourseCode  string    `form:"course_code" json:"course_code" validate:"required,max=20"`
	CourseTitle string    `form:"course_title" json:"course_title" validate:"required,max=200"`
	FileURL     string    `form:"file_url" json:"file_url" validate:"omitempty,max=200,http_url"`
	Description string    `form:"description" json:"description"`
	IsPublished *Checkbox `form:"is_published" json:"is_published"`
}

func (f *ResultForm) normalize() {
	f.Session = strings.TrimSpace(f.Session)
	f.Semester = strings.ToLower(strings.TrimSpace(f.Semester))
	f.Department = strings.TrimSpace(f.Department)
	f.Level = strings.TrimSpace(f.Level)
	f.CourseCode = strings.TrimSpace(f.CourseCode)
	f.CourseTitle = strings.TrimSpace(f.CourseTitle)
	f.FileURL = strings.TrimSpace(f.FileURL)
	f.Description = strings.TrimSpace(f.Description)
}

// ResultService handles the admin result workflows.
type ResultService struct {
	repo        resultRepository
	departments departmentLookup
	validator   *validator.Validate
	metrics     mutationRecorder
	logger      *zap.Logger
}

// NewResultService constructs the service.
func NewResultService(repo resultRepository, departments departmentLookup, validate *validator.Validate, metrics mutationRecorder, logger *zap.Logger) *ResultService {
	if validate == nil {
		validate = NewValidator()
	}
	if metrics == nil {
		metrics = noopRecorder{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ResultService{repo: repo, departments: departments, validator: validate, metrics: metrics, logger: logger}
}

// List returns every result, unpublished ones included.
func (s *ResultService) List(ctx context.Context, caller models.Caller) ([]models.Result, error) {
	if err := Authorize(caller); err != nil {
		return nil, err
	}
	results, err := s.repo.List(ctx, models.ResultFilter{})
	if err != nil {
		return nil, internal(err, "failed to list results")
	}
	return results, nil
}

// Get returns a result by id.
func (s *ResultService) Get(ctx context.Context, caller models.Caller, id string) (*models.Result, error) {
	if err := Authorize(caller); err != nil {
		return nil, err
	}
	result, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "result not found", "failed to get result")
	}
	return result, nil
}

// Create registers a new result attributed to caller. It stays unpublished unless asked.
func (s *ResultService) Create(ctx context.Context, caller models.Caller, form ResultForm) (*models.Result, error) {
	if err := Authorize(caller); err != nil {
		return nil, err
	}
	result := &models.Result{CreatedBy: caller.UserID}
	if err := s.apply(ctx, result, form); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, result); err != nil {
		return nil, internal(err, "failed to create result")
	}
	s.metrics.RecordMutation("result", "create")
	return result, nil
}

// Update replaces the editable fields of a result.
func (s *ResultService) Update(ctx context.Context, caller models.Caller, id string, form ResultForm) (*models.Result, error) {
	result, err := s.Get(ctx, caller, id)
	if err != nil {
		return nil, err
	}
	if err := s.apply(ctx, result, form); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, result); err != nil {
		return nil, internal(err, "failed to update result")
	}
	s.metrics.RecordMutation("result", "update")
	return result, nil
}

// Delete removes a result.
func (s *ResultService) Delete(ctx context.Context, caller models.Caller, id string) error {
	if _, err := s.Get(ctx, caller, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return internal(err, "failed to delete result")
	}
	s.metrics.RecordMutation("result", "delete")
	return nil
}

// FormFor prefills the edit form from a stored result. Nil yields defaults.
func (s *ResultService) FormFor(result *models.Result) ResultForm {
	published := false
	if result == nil {
		return ResultForm{Semester: string(models.ResultSemesterFirst), IsPublished: checked(published)}
	}
	published = result.IsPublished
	return ResultForm{
		Session:     result.Session,
		Semester:    string(result.Semester),
		Department:  result.DepartmentID,
		Level:       result.Level,
		CourseCode:  result.CourseCode,
		CourseTitle: result.CourseTitle,
		FileURL:     result.FileURL,
		Description: result.Description,
		IsPublished: checked(published),
	}
}

func (s *ResultService) apply(ctx context.Context, result *models.Result, form ResultForm) error {
	form.normalize()
	if err := validateForm(s.validator, form); err != nil {
		return err
	}
	if err := ensureDepartment(ctx, s.departments, form.Department); err != nil {
		return err
	}
	result.Session = form.Session
	result.Semester = models.ResultSemester(form.Semester)
	result.DepartmentID = form.Department
	result.Level = form.Level
	result.CourseCode = form.CourseCode
	result.CourseTitle = form.CourseTitle
	result.FileURL = form.FileURL
	result.Description = form.Description
	result.IsPublished = flagOr(form.IsPublished, result.IsPublished)
	return nil
}
