package service

import (
	"context"
	"database/sql"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/noah-isme/noticeboard/internal/models"
)

// memoryStore backs every fake repository so department deletes can cascade.
type memoryStore struct {
	mu            sync.Mutex
	departments   map[string]models.Department
	announcements map[string]models.Announcement
	events        map[string]models.Event
	timetables    map[string]models.Timetable
	results       map[string]models.Result
	seq           int
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		departments:   map[string]models.Department{},
		announcements: map[string]models.Announcement{},
		events:        map[string]models.Event{},
		timetables:    map[string]models.Timetable{},
		results:       map[string]models.Result{},
	}
}

// tick hands out strictly increasing timestamps so ordering is deterministic.
func (s *memoryStore) tick() time.Time {
	s.seq++
	return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(s.seq) * time.Minute)
}

func (s *memoryStore) seedDepartment(name, code string) models.Department {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := models.Department{ID: uuid.NewString(), Name: name, Code: code, CreatedAt: s.tick()}
	s.departments[d.ID] = d
	return d
}

func matchesSearch(term string, fields ...string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

func matchesDepartment(filter, id string) bool {
	return filter == "" || filter == id
}

type fakeDepartmentRepo struct{ store *memoryStore }

func (r fakeDepartmentRepo) List(ctx context.Context) ([]models.Department, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []models.Department
	for _, d := range r.store.departments {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r fakeDepartmentRepo) GetByID(ctx context.Context, id string) (*models.Department, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	d, ok := r.store.departments[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &d, nil
}

func (r fakeDepartmentRepo) FindByCode(ctx context.Context, code string) (*models.Department, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, d := range r.store.departments {
		if d.Code == code {
			found := d
			return &found, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (r fakeDepartmentRepo) Count(ctx context.Context) (int, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return len(r.store.departments), nil
}

func (r fakeDepartmentRepo) Create(ctx context.Context, d *models.Department) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	d.ID = uuid.NewString()
	d.CreatedAt = r.store.tick()
	r.store.departments[d.ID] = *d
	return nil
}

func (r fakeDepartmentRepo) Update(ctx context.Context, d *models.Department) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.departments[d.ID] = *d
	return nil
}

func (r fakeDepartmentRepo) Delete(ctx context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for k, v := range r.store.announcements {
		if v.DepartmentID == id {
			delete(r.store.announcements, k)
		}
	}
	for k, v := range r.store.events {
		if v.DepartmentID == id {
			delete(r.store.events, k)
		}
	}
	for k, v := range r.store.timetables {
		if v.DepartmentID == id {
			delete(r.store.timetables, k)
		}
	}
	for k, v := range r.store.results {
		if v.DepartmentID == id {
			delete(r.store.results, k)
		}
	}
	delete(r.store.departments, id)
	return nil
}

type fakeAnnouncementRepo struct{ store *memoryStore }

func (r fakeAnnouncementRepo) matching(filter models.AnnouncementFilter) []models.Announcement {
	var out []models.Announcement
	for _, a := range r.store.announcements {
		if filter.ActiveOnly && !a.IsActive {
			continue
		}
		if !matchesDepartment(filter.DepartmentID, a.DepartmentID) || !matchesSearch(filter.Search, a.Title, a.Content) {
			continue
		}
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (r fakeAnnouncementRepo) List(ctx context.Context, filter models.AnnouncementFilter) ([]models.Announcement, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	out := r.matching(filter)
	if filter.Limit > 0 {
		if filter.Offset >= len(out) {
			return nil, nil
		}
		out = out[filter.Offset:]
		if len(out) > filter.Limit {
			out = out[:filter.Limit]
		}
	}
	return out, nil
}

func (r fakeAnnouncementRepo) Count(ctx context.Context, filter models.AnnouncementFilter) (int, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return len(r.matching(filter)), nil
}

func (r fakeAnnouncementRepo) GetByID(ctx context.Context, id string) (*models.Announcement, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	a, ok := r.store.announcements[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &a, nil
}

func (r fakeAnnouncementRepo) Create(ctx context.Context, a *models.Announcement) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	a.CreatedAt = r.store.tick()
	a.UpdatedAt = a.CreatedAt
	r.store.announcements[a.ID] = *a
	return nil
}

func (r fakeAnnouncementRepo) Update(ctx context.Context, a *models.Announcement) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	a.UpdatedAt = r.store.tick()
	r.store.announcements[a.ID] = *a
	return nil
}

func (r fakeAnnouncementRepo) Delete(ctx context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.announcements, id)
	return nil
}

type fakeEventRepo struct{ store *memoryStore }

func (r fakeEventRepo) matching(filter models.EventFilter) []models.Event {
	var out []models.Event
	for _, e := range r.store.events {
		if filter.ActiveOnly && !e.IsActive {
			continue
		}
		if filter.StartsFrom != nil && e.StartDate.Before(*filter.StartsFrom) {
			continue
		}
		if !matchesDepartment(filter.DepartmentID, e.DepartmentID) || !matchesSearch(filter.Search, e.Title, e.Description) {
			continue
		}
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartDate.Before(out[j].StartDate) })
	return out
}

func (r fakeEventRepo) List(ctx context.Context, filter models.EventFilter) ([]models.Event, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	out := r.matching(filter)
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (r fakeEventRepo) Count(ctx context.Context, filter models.EventFilter) (int, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return len(r.matching(filter)), nil
}

func (r fakeEventRepo) GetByID(ctx context.Context, id string) (*models.Event, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	e, ok := r.store.events[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &e, nil
}

func (r fakeEventRepo) Create(ctx context.Context, e *models.Event) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	e.CreatedAt = r.store.tick()
	r.store.events[e.ID] = *e
	return nil
}

func (r fakeEventRepo) Update(ctx context.Context, e *models.Event) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.events[e.ID] = *e
	return nil
}

func (r fakeEventRepo) Delete(ctx context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.events, id)
	return nil
}

type fakeTimetableRepo struct{ store *memoryStore }

func (r fakeTimetableRepo) matching(filter models.TimetableFilter) []models.Timetable {
	var out []models.Timetable
	for _, t := range r.store.timetables {
		if filter.ActiveOnly && !t.IsActive {
			continue
		}
		if !matchesDepartment(filter.DepartmentID, t.DepartmentID) || (filter.Level != "" && filter.Level != t.Level) {
			continue
		}
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime < out[j].StartTime })
	return out
}

func (r fakeTimetableRepo) List(ctx context.Context, filter models.TimetableFilter) ([]models.Timetable, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.matching(filter), nil
}

func (r fakeTimetableRepo) Count(ctx context.Context, filter models.TimetableFilter) (int, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return len(r.matching(filter)), nil
}

func (r fakeTimetableRepo) DistinctLevels(ctx context.Context) ([]string, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	seen := map[string]bool{}
	var out []string
	for _, t := range r.store.timetables {
		if !seen[t.Level] {
			seen[t.Level] = true
			out = append(out, t.Level)
		}
	}
	sort.Strings(out)
	return out, nil
}

func (r fakeTimetableRepo) GetByID(ctx context.Context, id string) (*models.Timetable, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	t, ok := r.store.timetables[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &t, nil
}

func (r fakeTimetableRepo) Create(ctx context.Context, t *models.Timetable) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	t.CreatedAt = r.store.tick()
	r.store.timetables[t.ID] = *t
	return nil
}

func (r fakeTimetableRepo) Update(ctx context.Context, t *models.Timetable) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.timetables[t.ID] = *t
	return nil
}

func (r fakeTimetableRepo) Delete(ctx context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.timetables, id)
	return nil
}

type fakeResultRepo struct{ store *memoryStore }

func (r fakeResultRepo) matching(filter models.ResultFilter) []models.Result {
	var out []models.Result
	for _, res := range r.store.results {
		if filter.PublishedOnly && !res.IsPublished {
			continue
		}
		if !matchesDepartment(filter.DepartmentID, res.DepartmentID) || (filter.Session != "" && filter.Session != res.Session) {
			continue
		}
		out = append(out, res)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (r fakeResultRepo) List(ctx context.Context, filter models.ResultFilter) ([]models.Result, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.matching(filter), nil
}

func (r fakeResultRepo) Count(ctx context.Context, filter models.ResultFilter) (int, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return len(r.matching(filter)), nil
}

func (r fakeResultRepo) DistinctSessions(ctx context.Context) ([]string, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	seen := map[string]bool{}
	var out []string
	for _, res := range r.store.results {
		if !seen[res.Session] {
			seen[res.Session] = true
			out = append(out, res.Session)
		}
	}
	sort.Strings(out)
	return out, nil
}

func (r fakeResultRepo) GetByID(ctx context.Context, id string) (*models.Result, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	res, ok := r.store.results[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &res, nil
}

func (r fakeResultRepo) Create(ctx context.Context, res *models.Result) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if res.ID == "" {
		res.ID = uuid.NewString()
	}
	res.CreatedAt = r.store.tick()
	r.store.results[res.ID] = *res
	return nil
}

func (r fakeResultRepo) Update(ctx context.Context, res *models.Result) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.results[res.ID] = *res
	return nil
}

func (r fakeResultRepo) Delete(ctx context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.results, id)
	return nil
}

type fakeRecorder struct {
	mu    sync.Mutex
	calls []string
}

func (r *fakeRecorder) RecordMutation(kind, action string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, kind+":"+action)
}

var (
	staff    = models.Caller{UserID: "staff-1", Username: "registrar", Authenticated: true, IsStaff: true}
	nonStaff = models.Caller{UserID: "user-2", Username: "student", Authenticated: true}
)
