package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/noah-isme/noticeboard/internal/models"
	appErrors "github.com/noah-isme/noticeboard/pkg/errors"
)

// Authorize admits callers that are signed in and hold the staff flag.
func Authorize(caller models.Caller) error {
	if caller.Authenticated && caller.IsStaff {
		return nil
	}
	return appErrors.Clone(appErrors.ErrForbidden, "")
}

type departmentLookup interface {
	GetByID(ctx context.Context, id string) (*models.Department, error)
}

type mutationRecorder interface {
	RecordMutation(kind, action string)
}

type noopRecorder struct{}

func (noopRecorder) RecordMutation(string, string) {}

const invalidDepartment = "Select a valid department."

// ensureDepartment turns a missing or malformed department reference into a field error.
func ensureDepartment(ctx context.Context, departments departmentLookup, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fieldError("department", invalidDepartment)
	}
	if _, err := departments.GetByID(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fieldError("department", invalidDepartment)
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load department")
	}
	return nil
}

func notFoundOr(err error, message, action string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return appErrors.Clone(appErrors.ErrNotFound, message)
	}
	return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, action)
}

func internal(err error, action string) error {
	return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, action)
}
