package models

import "github.com/golang-jwt/jwt/v5"

// Caller is the identity behind the current request. The zero value is an
// anonymous visitor.
type Caller struct {
	UserID        string `json:"user_id,omitempty"`
	Username      string `json:"username,omitempty"`
	SessionID     string `json:"-"`
	Authenticated bool   `json:"authenticated"`
	IsStaff       bool   `json:"is_staff"`
}

// Anonymous is the caller with no session.
var Anonymous = Caller{}

// LoginRequest holds credentials submitted on the admin login form.
type LoginRequest struct {
	Username  string `form:"username" json:"username" validate:"required,max=150"`
	Password  string `form:"password" json:"password" validate:"required"`
	IP        string `form:"-" json:"-"`
	UserAgent string `form:"-" json:"-"`
}

// SessionClaims is the signed payload of the session cookie.
type SessionClaims struct {
	SessionID string `json:"sid"`
	UserID    string `json:"user_id"`
	Username  string `json:"username"`
	IsStaff   bool   `json:"is_staff"`
	jwt.RegisteredClaims
}
