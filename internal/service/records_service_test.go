package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/noticeboard/internal/models"
	appErrors "github.com/noah-isme/noticeboard/pkg/errors"
)

func TestEventCreateDefaultsAndLocation(t *testing.T) {
	store := newMemoryStore()
	dept := store.seedDepartment("Computer Science", "CSC")
	lagos := time.FixedZone("WAT", 3600)
	recorder := &fakeRecorder{}
	svc := NewEventService(fakeEventRepo{store}, fakeDepartmentRepo{store}, nil, recorder, lagos, nil)

	event, err := svc.Create(context.Background(), staff, EventForm{
		Title:       "Faculty week",
		Description: "Talks and exhibitions",
		Department:  dept.ID,
		Venue:       "Main hall",
		StartDate:   "2024-03-10T09:30",
		EndDate:     "2024-03-10T12:00",
	})
	require.NoError(t, err)
	assert.Equal(t, models.EventTypeOther, event.EventType)
	assert.True(t, event.IsActive)
	assert.Equal(t, time.Date(2024, 3, 10, 8, 30, 0, 0, time.UTC), event.StartDate)
	assert.Equal(t, staff.UserID, event.CreatedBy)
	assert.Equal(t, []string{"event:create"}, recorder.calls)

	form := svc.FormFor(event)
	assert.Equal(t, "2024-03-10T09:30", form.StartDate)
}

func TestEventRejectsUnparseableDates(t *testing.T) {
	store := newMemoryStore()
	dept := store.seedDepartment("Computer Science", "CSC")
	svc := NewEventService(fakeEventRepo{store}, fakeDepartmentRepo{store}, nil, nil, time.UTC, nil)

	_, err := svc.Create(context.Background(), staff, EventForm{
		Title: "Faculty week", Description: "x", Department: dept.ID, Venue: "Hall",
		StartDate: "next tuesday", EndDate: "2024-03-10T12:00", EventType: "party",
	})
	require.ErrorIs(t, err, appErrors.ErrValidation)
	fields := appErrors.FromError(err).Fields
	assert.Contains(t, fields, "start_date")
	assert.Contains(t, fields, "event_type")
	assert.Empty(t, store.events)
}

func TestTimetableDefaultsAndClockNormalised(t *testing.T) {
	store := newMemoryStore()
	dept := store.seedDepartment("Computer Science", "CSC")
	svc := NewTimetableService(fakeTimetableRepo{store}, fakeDepartmentRepo{store}, nil, nil, nil)
	ctx := context.Background()

	form := TimetableForm{
		Department: dept.ID, DayOfWeek: " Wednesday ", CourseCode: "CSC 201", CourseTitle: "Data Structures",
		Lecturer: "Dr. Ade", Venue: "LT1", StartTime: "08:00:00", EndTime: "10:00",
	}
	entry, err := svc.Create(ctx, staff, form)
	require.NoError(t, err)
	assert.Equal(t, models.Wednesday, entry.DayOfWeek)
	assert.Equal(t, "08:00", entry.StartTime)
	assert.Equal(t, models.DefaultTimetableLevel, entry.Level)
	assert.Equal(t, models.DefaultTimetableSemester, entry.Semester)
	assert.True(t, entry.IsActive)

	// The same slot again is accepted.
	_, err = svc.Create(ctx, staff, form)
	require.NoError(t, err)

	monday := form
	monday.DayOfWeek = "monday"
	monday.StartTime = "14:00"
	_, err = svc.Create(ctx, staff, monday)
	require.NoError(t, err)

	entries, err := svc.List(ctx, staff)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, models.Monday, entries[0].DayOfWeek)

	bad := form
	bad.StartTime = "25:00"
	bad.DayOfWeek = "funday"
	_, err = svc.Create(ctx, staff, bad)
	require.ErrorIs(t, err, appErrors.ErrValidation)
	fields := appErrors.FromError(err).Fields
	assert.Contains(t, fields, "start_time")
	assert.Contains(t, fields, "day_of_week")
	assert.Len(t, store.timetables, 3)
}

func TestResultPublishedDefaultsFalse(t *testing.T) {
	store := newMemoryStore()
	dept := store.seedDepartment("Computer Science", "CSC")
	svc := NewResultService(fakeResultRepo{store}, fakeDepartmentRepo{store}, nil, nil, nil)
	ctx := context.Background()

	result, err := svc.Create(ctx, staff, ResultForm{
		Session: "2023/2024", Semester: "First", Department: dept.ID, Level: "200L",
		CourseCode: "CSC 201", CourseTitle: "Data Structures", FileURL: "https://files.example.edu/csc201.pdf",
	})
	require.NoError(t, err)
	assert.False(t, result.IsPublished)
	assert.Equal(t, models.ResultSemester("first"), result.Semester)

	form := svc.FormFor(result)
	form.IsPublished = checked(true)
	updated, err := svc.Update(ctx, staff, result.ID, form)
	require.NoError(t, err)
	assert.True(t, updated.IsPublished)

	form.IsPublished = nil
	updated, err = svc.Update(ctx, staff, result.ID, form)
	require.NoError(t, err)
	assert.True(t, updated.IsPublished, "omitted flag keeps stored value")

	form.FileURL = "not a url"
	_, err = svc.Update(ctx, staff, result.ID, form)
	require.ErrorIs(t, err, appErrors.ErrValidation)
	assert.Contains(t, appErrors.FromError(err).Fields, "file_url")
	require.Len(t, store.results, 1)
	assert.Equal(t, "https://files.example.edu/csc201.pdf", store.results[result.ID].FileURL)
}

func TestRecordCreateMissingRequiredCreatesNothing(t *testing.T) {
	store := newMemoryStore()
	dept := store.seedDepartment("Computer Science", "CSC")
	ctx := context.Background()
	events := NewEventService(fakeEventRepo{store}, fakeDepartmentRepo{store}, nil, nil, time.UTC, nil)
	timetables := NewTimetableService(fakeTimetableRepo{store}, fakeDepartmentRepo{store}, nil, nil, nil)
	results := NewResultService(fakeResultRepo{store}, fakeDepartmentRepo{store}, nil, nil, nil)

	_, err := events.Create(ctx, staff, EventForm{Department: dept.ID, Venue: "Hall", StartDate: "2024-03-10T09:30"})
	require.ErrorIs(t, err, appErrors.ErrValidation)
	assert.Contains(t, appErrors.FromError(err).Fields, "title")
	assert.Empty(t, store.events)

	_, err = timetables.Create(ctx, staff, TimetableForm{Department: dept.ID, DayOfWeek: "monday", StartTime: "08:00", EndTime: "10:00"})
	require.ErrorIs(t, err, appErrors.ErrValidation)
	assert.Contains(t, appErrors.FromError(err).Fields, "course_code")
	assert.Empty(t, store.timetables)

	_, err = results.Create(ctx, staff, ResultForm{Session: "2023/2024", Department: dept.ID, Level: "200L", CourseTitle: "Data Structures"})
	require.ErrorIs(t, err, appErrors.ErrValidation)
	assert.Contains(t, appErrors.FromError(err).Fields, "course_code")
	assert.Empty(t, store.results)
}

func TestRecordServicesRequireStaff(t *testing.T) {
	store := newMemoryStore()
	ctx := context.Background()
	events := NewEventService(fakeEventRepo{store}, fakeDepartmentRepo{store}, nil, nil, time.UTC, nil)
	timetables := NewTimetableService(fakeTimetableRepo{store}, fakeDepartmentRepo{store}, nil, nil, nil)
	results := NewResultService(fakeResultRepo{store}, fakeDepartmentRepo{store}, nil, nil, nil)

	_, err := events.List(ctx, nonStaff)
	assert.ErrorIs(t, err, appErrors.ErrForbidden)
	_, err = timetables.Create(ctx, models.Anonymous, TimetableForm{})
	assert.ErrorIs(t, err, appErrors.ErrForbidden)
	assert.ErrorIs(t, results.Delete(ctx, nonStaff, "missing"), appErrors.ErrForbidden)
	assert.ErrorIs(t, results.Delete(ctx, staff, "missing"), appErrors.ErrNotFound)
}
