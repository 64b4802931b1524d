package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/noticeboard/internal/models"
	"github.com/noah-isme/noticeboard/internal/repository"
)

type departmentRepository interface {
	List(ctx context.Context) ([]models.Department, error)
	GetByID(ctx context.Context, id string) (*models.Department, error)
	FindByCode(ctx context.Context, code string) (*models.Department, error)
	Create(ctx context.Context, department *models.Department) error
	Update(ctx context.Context, department *models.Department) error
	Delete(ctx context.Context, id string) error
}

const duplicateCode = "Department with this code already exists."

// DepartmentForm is the add/edit payload for departments.
type DepartmentForm struct {
	Name        string `form:"name" json:"name" validate:"required,max=100"`
	Code        string `form:"code" json:"code" validate:"required,max=10"`
	Description string `form:"description" json:"description"`
}

func (f *DepartmentForm) normalize() {
	f.Name = strings.TrimSpace(f.Name)
	f.Code = strings.ToUpper(strings.TrimSpace(f.Code))
	f.Description = strings.TrimSpace(f.Description)
}

// DepartmentService handles the admin department workflows.
type DepartmentService struct {
	repo      departmentRepository
	validator *validator.Validate
	metrics   mutationRecorder
	logger    *zap.Logger
}

// NewDepartmentService constructs the service.
func NewDepartmentService(repo departmentRepository, validate *validator.Validate, metrics mutationRecorder, logger *zap.Logger) *DepartmentService {
	if validate == nil {
		validate = NewValidator()
	}
	if metrics == nil {
		metrics = noopRecorder{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DepartmentService{repo: repo, validator: validate, metrics: metrics, logger: logger}
}

// List returns every department ordered by name.
func (s *DepartmentService) List(ctx context.Context, caller models.Caller) ([]models.Department, error) {
	if err := Authorize(caller); err != nil {
		return nil, err
	}
	departments, err := s.repo.List(ctx)
	if err != nil {
		return nil, internal(err, "failed to list departments")
	}
	return departments, nil
}

// Get returns a department by id.
func (s *DepartmentService) Get(ctx context.Context, caller models.Caller, id string) (*models.Department, error) {
	if err := Authorize(caller); err != nil {
		return nil, err
	}
	department, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "department not found", "failed to get department")
	}
	return department, nil
}

// Create registers a new department with a unique code.
func (s *DepartmentService) Create(ctx context.Context, caller models.Caller, form DepartmentForm) (*models.Department, error) {
	if err := Authorize(caller); err != nil {
		return nil, err
	}
	department := &models.Department{}
	if err := s.apply(ctx, department, form); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, department); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, fieldError("code", duplicateCode)
		}
		return nil, internal(err, "failed to create department")
	}
	s.metrics.RecordMutation("department", "create")
	return department, nil
}

// Update replaces the editable fields of a department.
func (s *DepartmentService) Update(ctx context.Context, caller models.Caller, id string, form DepartmentForm) (*models.Department, error) {
	department, err := s.Get(ctx, caller, id)
	if err != nil {
		return nil, err
	}
	if err := s.apply(ctx, department, form); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, department); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, fieldError("code", duplicateCode)
		}
		return nil, internal(err, "failed to update department")
	}
	s.metrics.RecordMutation("department", "update")
	return department, nil
}

// Delete removes a department together with its announcements, events,
// timetable entries and results.
func (s *DepartmentService) Delete(ctx context.Context, caller models.Caller, id string) error {
	department, err := s.Get(ctx, caller, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return internal(err, "failed to delete department")
	}
	s.logger.Info("department deleted with dependents", zap.String("department_id", id), zap.String("code", department.Code))
	s.metrics.RecordMutation("department", "delete")
	return nil
}

// FormFor prefills the edit form from a stored department.
func (s *DepartmentService) FormFor(department *models.Department) DepartmentForm {
	if department == nil {
		return DepartmentForm{}
	}
	return DepartmentForm{Name: department.Name, Code: department.Code, Description: department.Description}
}

func (s *DepartmentService) apply(ctx context.Context, department *models.Department, form DepartmentForm) error {
	form.normalize()
	if err := validateForm(s.validator, form); err != nil {
		return err
	}
	existing, err := s.repo.FindByCode(ctx, form.Code)
	switch {
	case err == nil && existing.ID != department.ID:
		return fieldError("code", duplicateCode)
	case err != nil && !errors.Is(err, sql.ErrNoRows):
		return internal(err, "failed to check department code")
	}
	department.Name = form.Name
	department.Code = form.Code
	department.Description = form.Description
	return nil
}
