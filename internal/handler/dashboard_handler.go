package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/noticeboard/internal/dto"
	"github.com/noah-isme/noticeboard/internal/models"
	"github.com/noah-isme/noticeboard/pkg/flash"
	"github.com/noah-isme/noticeboard/pkg/response"
)

type dashboardService interface {
	Stats(ctx context.Context, caller models.Caller) (*dto.DashboardStats, error)
}

// DashboardHandler exposes the admin landing page.
type DashboardHandler struct {
	service  dashboardService
	renderer response.Renderer
	flash    *flash.Store
}

// NewDashboardHandler constructs a dashboard handler.
func NewDashboardHandler(svc dashboardService, renderer response.Renderer, notices *flash.Store) *DashboardHandler {
	return &DashboardHandler{service: svc, renderer: renderer, flash: notices}
}

// Dashboard godoc
// @Summary Admin dashboard
// @Description Record counts per kind. Staff only.
// @Tags Admin
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /admin/ [get]
func (h *DashboardHandler) Dashboard(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context(), callerFromContext(c))
	if err != nil {
		fail(c, h.flash, err)
		return
	}
	h.renderer.Render(c, http.StatusOK, "admin/dashboard", stats)
}
