package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/noah-isme/noticeboard/internal/models"
	appErrors "github.com/noah-isme/noticeboard/pkg/errors"
)

const sessionIssuer = "noticeboard"

type authUserRepository interface {
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	UpdateLastLogin(ctx context.Context, id string, ts time.Time) error
}

type sessionStore interface {
	Create(ctx context.Context, id, userID string, ttl time.Duration) error
	Exists(ctx context.Context, id string) (bool, error)
	Delete(ctx context.Context, id string) error
}

// AuthConfig defines configuration for admin sessions.
type AuthConfig struct {
	SessionSecret string
	SessionTTL    time.Duration
}

// Session is a freshly issued admin session.
type Session struct {
	Token     string
	ExpiresAt time.Time
	Caller    models.Caller
}

// AuthService signs staff in and out and resolves session cookies into callers.
type AuthService struct {
	repo      authUserRepository
	sessions  sessionStore
	validator *validator.Validate
	logger    *zap.Logger
	config    AuthConfig
	now       func() time.Time
}

// NewAuthService constructs an AuthService instance.
func NewAuthService(repo authUserRepository, sessions sessionStore, validate *validator.Validate, logger *zap.Logger, config AuthConfig) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = NewValidator()
	}
	if config.SessionTTL <= 0 {
		config.SessionTTL = 14 * 24 * time.Hour
	}
	return &AuthService{repo: repo, sessions: sessions, validator: validate, logger: logger, config: config, now: time.Now}
}

// Login verifies credentials and opens a session. Unknown, inactive and
// non-staff accounts fail exactly like a wrong password.
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*Session, error) {
	req.Username = strings.TrimSpace(req.Username)
	if err := validateForm(s.validator, req); err != nil {
		return nil, err
	}

	user, err := s.repo.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrInvalidCredentials, "")
		}
		return nil, internal(err, "failed to fetch user")
	}
	if !user.IsActive {
		return nil, appErrors.Clone(appErrors.ErrInvalidCredentials, "")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, appErrors.Clone(appErrors.ErrInvalidCredentials, "")
	}
	if !user.IsStaff {
		return nil, appErrors.Clone(appErrors.ErrInvalidCredentials, "")
	}

	issuedAt := s.now().UTC()
	sessionID := uuid.NewString()
	if err := s.sessions.Create(ctx, sessionID, user.ID, s.config.SessionTTL); err != nil {
		return nil, internal(err, "failed to persist session")
	}
	token, expiresAt, err := s.signSession(sessionID, user, issuedAt)
	if err != nil {
		return nil, internal(err, "failed to sign session")
	}

	if err := s.repo.UpdateLastLogin(ctx, user.ID, issuedAt); err != nil {
		s.logger.Warn("failed to update last login", zap.Error(err))
	}
	s.logger.Info("staff signed in", zap.String("user_id", user.ID), zap.String("ip", req.IP))

	return &Session{
		Token:     token,
		ExpiresAt: expiresAt,
		Caller: models.Caller{
			UserID:        user.ID,
			Username:      user.Username,
			SessionID:     sessionID,
			Authenticated: true,
			IsStaff:       user.IsStaff,
		},
	}, nil
}

// Logout revokes the caller's session. Only signed-in callers can log out.
func (s *AuthService) Logout(ctx context.Context, caller models.Caller) error {
	if !caller.Authenticated {
		return appErrors.Clone(appErrors.ErrUnauthorized, "")
	}
	if caller.SessionID != "" {
		if err := s.sessions.Delete(ctx, caller.SessionID); err != nil {
			s.logger.Warn("failed to revoke session", zap.String("user_id", caller.UserID), zap.Error(err))
		}
	}
	return nil
}

// Resolve maps a session token to its caller. Any invalid, expired or revoked
// token, or an account that was deactivated since, yields the anonymous caller.
func (s *AuthService) Resolve(ctx context.Context, token string) models.Caller {
	if token == "" {
		return models.Anonymous
	}
	claims, err := s.parseSession(token)
	if err != nil {
		return models.Anonymous
	}
	live, err := s.sessions.Exists(ctx, claims.SessionID)
	if err != nil {
		s.logger.Warn("failed to check session", zap.Error(err))
		return models.Anonymous
	}
	if !live {
		return models.Anonymous
	}
	user, err := s.repo.FindByID(ctx, claims.UserID)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			s.logger.Warn("failed to load session user", zap.Error(err))
		}
		return models.Anonymous
	}
	if !user.IsActive {
		return models.Anonymous
	}
	return models.Caller{
		UserID:        user.ID,
		Username:      user.Username,
		SessionID:     claims.SessionID,
		Authenticated: true,
		IsStaff:       user.IsStaff,
	}
}

func (s *AuthService) signSession(sessionID string, user *models.User, issuedAt time.Time) (string, time.Time, error) {
	expiresAt := issuedAt.Add(s.config.SessionTTL)
	claims := &models.SessionClaims{
		SessionID: sessionID,
		UserID:    user.ID,
		Username:  user.Username,
		IsStaff:   user.IsStaff,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    sessionIssuer,
			Subject:   user.ID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			NotBefore: jwt.NewNumericDate(issuedAt),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.config.SessionSecret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

func (s *AuthService) parseSession(tokenString string) (*models.SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.SessionSecret), nil
	}, jwt.WithIssuer(sessionIssuer), jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*models.SessionClaims)
	if !ok || !token.Valid || claims.SessionID == "" {
		return nil, fmt.Errorf("invalid session claims")
	}
	return claims, nil
}
