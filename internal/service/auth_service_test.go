package service

import (
	"context"
	"database/sql"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/noah-isme/noticeboard/internal/models"
	appErrors "github.com/noah-isme/noticeboard/pkg/errors"
)

type fakeUserRepo struct {
	users     map[string]*models.User
	lastLogin map[string]time.Time
}

func (r *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id string) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	copied := *u
	return &copied, nil
}

func (r *fakeUserRepo) UpdateLastLogin(ctx context.Context, id string, ts time.Time) error {
	r.lastLogin[id] = ts
	return nil
}

type fakeSessionStore struct {
	mu       sync.Mutex
	sessions map[string]string
}

func (s *fakeSessionStore) Create(ctx context.Context, id, userID string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = userID
	return nil
}

func (s *fakeSessionStore) Exists(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.sessions[id]
	return ok, nil
}

func (s *fakeSessionStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

func newAuthFixture(t *testing.T) (*AuthService, *fakeUserRepo, *fakeSessionStore) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	users := &fakeUserRepo{
		users: map[string]*models.User{
			"u-staff":    {ID: "u-staff", Username: "registrar", PasswordHash: string(hash), IsStaff: true, IsActive: true},
			"u-student":  {ID: "u-student", Username: "student", PasswordHash: string(hash), IsActive: true},
			"u-inactive": {ID: "u-inactive", Username: "retired", PasswordHash: string(hash), IsStaff: true},
		},
		lastLogin: map[string]time.Time{},
	}
	sessions := &fakeSessionStore{sessions: map[string]string{}}
	svc := NewAuthService(users, sessions, nil, nil, AuthConfig{SessionSecret: "test-secret", SessionTTL: time.Hour})
	svc.now = func() time.Time { return time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC) }
	return svc, users, sessions
}

func TestLoginStaffThenAuthorized(t *testing.T) {
	svc, users, sessions := newAuthFixture(t)
	ctx := context.Background()

	session, err := svc.Login(ctx, models.LoginRequest{Username: "  registrar ", Password: "s3cret"})
	require.NoError(t, err)
	assert.NotEmpty(t, session.Token)
	assert.Equal(t, svc.now().Add(time.Hour), session.ExpiresAt)
	assert.Len(t, sessions.sessions, 1)
	assert.Contains(t, users.lastLogin, "u-staff")

	caller := svc.Resolve(ctx, session.Token)
	assert.True(t, caller.Authenticated)
	assert.Equal(t, "registrar", caller.Username)
	assert.NoError(t, Authorize(caller))
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	svc, _, sessions := newAuthFixture(t)

	cases := map[string]models.LoginRequest{
		"non staff":      {Username: "student", Password: "s3cret"},
		"wrong password": {Username: "registrar", Password: "guess"},
		"inactive":       {Username: "retired", Password: "s3cret"},
		"unknown":        {Username: "ghost", Password: "s3cret"},
	}
	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			session, err := svc.Login(context.Background(), req)
			assert.Nil(t, session)
			assert.ErrorIs(t, err, appErrors.ErrInvalidCredentials)
			assert.Equal(t, appErrors.ErrInvalidCredentials.Message, appErrors.FromError(err).Message)
		})
	}
	assert.Empty(t, sessions.sessions)
}

func TestLoginRequiresFields(t *testing.T) {
	svc, _, _ := newAuthFixture(t)

	_, err := svc.Login(context.Background(), models.LoginRequest{Username: " "})
	require.ErrorIs(t, err, appErrors.ErrValidation)
	fields := appErrors.FromError(err).Fields
	assert.Contains(t, fields, "username")
	assert.Contains(t, fields, "password")
}

func TestResolveRejectsBadTokens(t *testing.T) {
	svc, users, _ := newAuthFixture(t)
	ctx := context.Background()

	session, err := svc.Login(ctx, models.LoginRequest{Username: "registrar", Password: "s3cret"})
	require.NoError(t, err)

	assert.Equal(t, models.Anonymous, svc.Resolve(ctx, ""))
	assert.Equal(t, models.Anonymous, svc.Resolve(ctx, session.Token+"x"))

	other := NewAuthService(users, &fakeSessionStore{sessions: map[string]string{}}, nil, nil, AuthConfig{SessionSecret: "other-secret"})
	assert.Equal(t, models.Anonymous, other.Resolve(ctx, session.Token))

	later := svc.now().Add(2 * time.Hour)
	svc.now = func() time.Time { return later }
	assert.Equal(t, models.Anonymous, svc.Resolve(ctx, session.Token), "expired")
}

func TestResolveDropsDeactivatedUser(t *testing.T) {
	svc, users, _ := newAuthFixture(t)
	ctx := context.Background()

	session, err := svc.Login(ctx, models.LoginRequest{Username: "registrar", Password: "s3cret"})
	require.NoError(t, err)
	users.users["u-staff"].IsActive = false

	assert.Equal(t, models.Anonymous, svc.Resolve(ctx, session.Token))
}

func TestLogoutRevokesSession(t *testing.T) {
	svc, _, sessions := newAuthFixture(t)
	ctx := context.Background()

	assert.ErrorIs(t, svc.Logout(ctx, models.Anonymous), appErrors.ErrUnauthorized)

	session, err := svc.Login(ctx, models.LoginRequest{Username: "registrar", Password: "s3cret"})
	require.NoError(t, err)
	require.NoError(t, svc.Logout(ctx, session.Caller))

	assert.Empty(t, sessions.sessions)
	assert.Equal(t, models.Anonymous, svc.Resolve(ctx, session.Token))
}
