package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/noticeboard/internal/dto"
	"github.com/noah-isme/noticeboard/internal/models"
	"github.com/noah-isme/noticeboard/internal/service"
	appErrors "github.com/noah-isme/noticeboard/pkg/errors"
	"github.com/noah-isme/noticeboard/pkg/flash"
	"github.com/noah-isme/noticeboard/pkg/response"
)

const (
	dashboardPath = "/admin/"
	loginPath     = "/admin/login/"
)

type authService interface {
	Login(ctx context.Context, req models.LoginRequest) (*service.Session, error)
	Logout(ctx context.Context, caller models.Caller) error
}

// CookieConfig describes the session cookie.
type CookieConfig struct {
	Name   string
	Secure bool
}

// AuthHandler serves the admin sign-in and sign-out endpoints.
type AuthHandler struct {
	service  authService
	renderer response.Renderer
	flash    *flash.Store
	cookie   CookieConfig
}

// NewAuthHandler creates a new handler.
func NewAuthHandler(svc authService, renderer response.Renderer, notices *flash.Store, cookie CookieConfig) *AuthHandler {
	return &AuthHandler{service: svc, renderer: renderer, flash: notices, cookie: cookie}
}

// LoginPage godoc
// @Summary Staff sign-in form
// @Tags Admin
// @Produce json
// @Success 200 {object} response.Envelope
// @Success 302 "Already signed in"
// @Router /admin/login/ [get]
func (h *AuthHandler) LoginPage(c *gin.Context) {
	if callerFromContext(c).Authenticated {
		response.Redirect(c, dashboardPath)
		return
	}
	h.renderer.Render(c, http.StatusOK, "admin/login", dto.LoginView{})
}

// Login godoc
// @Summary Authenticate staff
// @Description Only active staff accounts may sign in; every other failure reads the same.
// @Tags Admin
// @Accept x-www-form-urlencoded
// @Produce json
// @Param username formData string true "Username"
// @Param password formData string true "Password"
// @Success 303 "Signed in"
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /admin/login/ [post]
func (h *AuthHandler) Login(c *gin.Context) {
	if callerFromContext(c).Authenticated {
		response.Redirect(c, dashboardPath)
		return
	}
	var req models.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		h.renderer.Render(c, http.StatusBadRequest, "admin/login", dto.LoginView{Error: "The submitted form could not be read."})
		return
	}
	req.IP = c.ClientIP()
	req.UserAgent = c.GetHeader("User-Agent")

	session, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		view := dto.LoginView{Username: req.Username}
		switch {
		case errors.Is(err, appErrors.ErrInvalidCredentials):
			view.Error = appErrors.FromError(err).Message
			h.renderer.Render(c, http.StatusUnauthorized, "admin/login", view)
		case errors.Is(err, appErrors.ErrValidation):
			view.Errors, _ = fieldErrors(err)
			h.renderer.Render(c, http.StatusBadRequest, "admin/login", view)
		default:
			response.Error(c, err)
		}
		return
	}

	h.setCookie(c, session.Token, session.ExpiresAt)
	h.flash.Success(c, "Logged in successfully!")
	response.Redirect(c, dashboardPath)
}

// Logout godoc
// @Summary Sign out
// @Tags Admin
// @Success 303 "Signed out"
// @Router /admin/logout/ [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.service.Logout(c.Request.Context(), callerFromContext(c)); err != nil {
		if errors.Is(err, appErrors.ErrUnauthorized) {
			response.Redirect(c, loginPath)
			return
		}
		response.Error(c, err)
		return
	}
	h.clearCookie(c)
	h.flash.Success(c, "Logged out successfully!")
	response.Redirect(c, "/")
}

func (h *AuthHandler) setCookie(c *gin.Context, token string, expires time.Time) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     h.cookie.Name,
		Value:    token,
		Path:     "/",
		Expires:  expires,
		MaxAge:   int(time.Until(expires).Seconds()),
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) clearCookie(c *gin.Context) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     h.cookie.Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}
