package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/noticeboard/internal/models"
)

func TestTimetableRepositoryListByLevel(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewTimetableRepository(db)

	cols := []string{"id", "department_id", "day_of_week", "course_code", "course_title", "lecturer", "venue",
		"start_time", "end_time", "level", "semester", "is_active", "created_by", "created_at", "department_name", "department_code"}
	rows := sqlmock.NewRows(cols).
		AddRow("t-1", deptID, "monday", "CSC101", "Intro", "Dr. Ade", "LT1", "08:00", "10:00", "100L", "First", true, "u-1", time.Now(), "Computer Science", "CSC")
	mock.ExpectQuery(regexp.QuoteMeta("WHERE t.level = $1 AND t.is_active = TRUE ORDER BY t.start_time ASC")).
		WithArgs("100L").
		WillReturnRows(rows)

	entries, err := repo.List(context.Background(), models.TimetableFilter{Level: "100L", ActiveOnly: true})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, models.Monday, entries[0].DayOfWeek)
	assert.Equal(t, "08:00", entries[0].StartTime)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTimetableRepositoryDistinctLevels(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewTimetableRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT DISTINCT level FROM timetables ORDER BY level ASC")).
		WillReturnRows(sqlmock.NewRows([]string{"level"}).AddRow("100L").AddRow("200L"))

	levels, err := repo.DistinctLevels(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"100L", "200L"}, levels)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResultRepositoryPublishedBySession(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewResultRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM results r WHERE r.session = $1 AND r.is_published = TRUE")).
		WithArgs("2023/2024").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	total, err := repo.Count(context.Background(), models.ResultFilter{Session: "2023/2024", PublishedOnly: true})
	require.NoError(t, err)
	assert.Equal(t, 4, total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepositoryUpcoming(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewEventRepository(db)

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("WHERE e.is_active = TRUE AND e.start_date >= $1 ORDER BY e.start_date ASC LIMIT 5")).
		WithArgs(now).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	events, err := repo.List(context.Background(), models.EventFilter{ActiveOnly: true, StartsFrom: &now, Limit: 5})
	require.NoError(t, err)
	assert.Empty(t, events)
	assert.NoError(t, mock.ExpectationsWereMet())
}
