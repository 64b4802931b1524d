package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/noticeboard/internal/models"
)

func newBoardFixture() (*BoardService, *memoryStore) {
	store := newMemoryStore()
	svc := NewBoardService(fakeDepartmentRepo{store}, fakeAnnouncementRepo{store}, fakeEventRepo{store},
		fakeTimetableRepo{store}, fakeResultRepo{store}, time.UTC, nil)
	svc.now = func() time.Time { return time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC) }
	return svc, store
}

func addAnnouncement(store *memoryStore, dept, title string, active bool) {
	a := models.Announcement{ID: uuid.NewString(), Title: title, Content: "body", DepartmentID: dept, IsActive: active, CreatedAt: store.tick()}
	store.announcements[a.ID] = a
}

func TestBoardAnnouncementsPaginationClamps(t *testing.T) {
	svc, store := newBoardFixture()
	dept := store.seedDepartment("Computer Science", "CSC")
	for i := 0; i < 25; i++ {
		addAnnouncement(store, dept.ID, fmt.Sprintf("Notice %02d", i), true)
	}
	addAnnouncement(store, dept.ID, "Hidden", false)

	page, err := svc.Announcements(context.Background(), BoardQuery{})
	require.NoError(t, err)
	assert.Equal(t, 3, page.Pagination.TotalPages)
	assert.Equal(t, 25, page.Pagination.TotalCount)
	assert.Len(t, page.Announcements, 10)
	assert.Equal(t, "Notice 24", page.Announcements[0].Title, "newest first")

	page, err = svc.Announcements(context.Background(), BoardQuery{Page: "99"})
	require.NoError(t, err)
	assert.Equal(t, 3, page.Pagination.Page)
	assert.Len(t, page.Announcements, 5)

	for _, raw := range []string{"0", "-3", "abc", ""} {
		page, err = svc.Announcements(context.Background(), BoardQuery{Page: raw})
		require.NoError(t, err)
		assert.Equal(t, 1, page.Pagination.Page, raw)
	}
}

func TestBoardPublicViewsHideInactive(t *testing.T) {
	svc, store := newBoardFixture()
	ctx := context.Background()
	dept := store.seedDepartment("Computer Science", "CSC")
	now := svc.now()

	addAnnouncement(store, dept.ID, "Visible", true)
	addAnnouncement(store, dept.ID, "Hidden", false)
	store.events["e1"] = models.Event{ID: "e1", Title: "Open day", DepartmentID: dept.ID, IsActive: true, StartDate: now.Add(time.Hour), EndDate: now.Add(2 * time.Hour)}
	store.events["e2"] = models.Event{ID: "e2", Title: "Cancelled", DepartmentID: dept.ID, IsActive: false, StartDate: now.Add(time.Hour), EndDate: now.Add(2 * time.Hour)}
	store.timetables["t1"] = models.Timetable{ID: "t1", DepartmentID: dept.ID, DayOfWeek: models.Monday, Level: "100L", StartTime: "08:00", IsActive: true}
	store.timetables["t2"] = models.Timetable{ID: "t2", DepartmentID: dept.ID, DayOfWeek: models.Monday, Level: "300L", StartTime: "09:00", IsActive: false}
	store.results["r1"] = models.Result{ID: "r1", Session: "2022/2023", DepartmentID: dept.ID, IsPublished: true}
	store.results["r2"] = models.Result{ID: "r2", Session: "2023/2024", DepartmentID: dept.ID, IsPublished: false}

	home, err := svc.Home(ctx, BoardQuery{})
	require.NoError(t, err)
	require.Len(t, home.Announcements, 1)
	assert.Equal(t, "Visible", home.Announcements[0].Title)
	require.Len(t, home.UpcomingEvents, 1)
	assert.Equal(t, "e1", home.UpcomingEvents[0].ID)
	assert.True(t, home.UpcomingEvents[0].IsToday)

	events, err := svc.Events(ctx, BoardQuery{Search: "cancel"})
	require.NoError(t, err)
	assert.Empty(t, events.Events)

	tt, err := svc.Timetable(ctx, BoardQuery{})
	require.NoError(t, err)
	assert.Len(t, tt.Days[0].Entries, 1)
	assert.Equal(t, []string{"100L", "300L"}, tt.Levels, "levels include inactive slots")

	results, err := svc.Results(ctx, BoardQuery{})
	require.NoError(t, err)
	require.Len(t, results.Results, 1)
	assert.Equal(t, "r1", results.Results[0].ID)
	assert.Equal(t, []string{"2022/2023", "2023/2024"}, results.Sessions, "sessions include unpublished results")

	results, err = svc.Results(ctx, BoardQuery{Session: "2023/2024"})
	require.NoError(t, err)
	assert.Empty(t, results.Results)
	assert.Equal(t, "2023/2024", results.Filters.Session)
}

func TestBoardTimetableAlwaysHasSevenDays(t *testing.T) {
	svc, store := newBoardFixture()
	dept := store.seedDepartment("Computer Science", "CSC")
	store.timetables["a"] = models.Timetable{ID: "a", DepartmentID: dept.ID, DayOfWeek: models.Friday, Level: "100L", StartTime: "10:00", IsActive: true}
	store.timetables["b"] = models.Timetable{ID: "b", DepartmentID: dept.ID, DayOfWeek: models.Friday, Level: "100L", StartTime: "08:00", IsActive: true}

	view, err := svc.Timetable(context.Background(), BoardQuery{Level: "500L"})
	require.NoError(t, err)
	require.Len(t, view.Days, 7)
	for i, day := range view.Days {
		assert.Equal(t, models.Weekdays[i], day.Day)
		assert.Empty(t, day.Entries)
	}

	view, err = svc.Timetable(context.Background(), BoardQuery{Department: dept.ID})
	require.NoError(t, err)
	friday := view.Days[4]
	require.Len(t, friday.Entries, 2)
	assert.Equal(t, "b", friday.Entries[0].ID)
	for _, day := range view.Days {
		for _, entry := range day.Entries {
			assert.Equal(t, day.Day, entry.DayOfWeek)
		}
	}
}

func TestBoardHomeLimits(t *testing.T) {
	svc, store := newBoardFixture()
	dept := store.seedDepartment("Computer Science", "CSC")
	now := svc.now()
	for i := 0; i < 12; i++ {
		addAnnouncement(store, dept.ID, fmt.Sprintf("Notice %d", i), true)
	}
	for i := 0; i < 7; i++ {
		id := fmt.Sprintf("e%d", i)
		store.events[id] = models.Event{ID: id, DepartmentID: dept.ID, IsActive: true, StartDate: now.AddDate(0, 0, i+1), EndDate: now.AddDate(0, 0, i+1)}
	}
	store.events["past"] = models.Event{ID: "past", DepartmentID: dept.ID, IsActive: true, StartDate: now.AddDate(0, 0, -1), EndDate: now.AddDate(0, 0, -1)}

	home, err := svc.Home(context.Background(), BoardQuery{})
	require.NoError(t, err)
	assert.Len(t, home.Announcements, 10)
	require.Len(t, home.UpcomingEvents, 5)
	assert.Equal(t, "e0", home.UpcomingEvents[0].ID)
	assert.True(t, home.UpcomingEvents[0].IsUpcoming)
}
