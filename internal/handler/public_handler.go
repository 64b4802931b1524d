package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/noticeboard/internal/dto"
	"github.com/noah-isme/noticeboard/internal/service"
	"github.com/noah-isme/noticeboard/pkg/response"
)

type boardService interface {
	Home(ctx context.Context, q service.BoardQuery) (*dto.HomeView, error)
	Announcements(ctx context.Context, q service.BoardQuery) (*dto.AnnouncementPage, error)
	Events(ctx context.Context, q service.BoardQuery) (*dto.EventsView, error)
	Timetable(ctx context.Context, q service.BoardQuery) (*dto.TimetableView, error)
	Results(ctx context.Context, q service.BoardQuery) (*dto.ResultsView, error)
}

// PublicHandler serves the anonymous notice board pages.
type PublicHandler struct {
	board    boardService
	renderer response.Renderer
}

// NewPublicHandler constructs the public handler.
func NewPublicHandler(board boardService, renderer response.Renderer) *PublicHandler {
	return &PublicHandler{board: board, renderer: renderer}
}

func boardQuery(c *gin.Context) service.BoardQuery {
	var q service.BoardQuery
	_ = c.ShouldBindQuery(&q)
	return q
}

// Home godoc
// @Summary Landing page
// @Description Ten newest active announcements and the next five upcoming events.
// @Tags Board
// @Produce json
// @Param search query string false "Text search over title and content"
// @Param department query string false "Department id"
// @Success 200 {object} response.Envelope
// @Router / [get]
func (h *PublicHandler) Home(c *gin.Context) {
	view, err := h.board.Home(c.Request.Context(), boardQuery(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	h.renderer.Render(c, http.StatusOK, "board/home", view)
}

// Announcements godoc
// @Summary Active announcements
// @Tags Board
// @Produce json
// @Param search query string false "Text search over title and content"
// @Param department query string false "Department id"
// @Param page query integer false "Page number, clamped to the valid range"
// @Success 200 {object} response.Envelope
// @Router /announcements/ [get]
func (h *PublicHandler) Announcements(c *gin.Context) {
	view, err := h.board.Announcements(c.Request.Context(), boardQuery(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	h.renderer.Render(c, http.StatusOK, "board/announcements", view)
}

// Events godoc
// @Summary Active events
// @Tags Board
// @Produce json
// @Param search query string false "Text search over title and description"
// @Param department query string false "Department id"
// @Success 200 {object} response.Envelope
// @Router /events/ [get]
func (h *PublicHandler) Events(c *gin.Context) {
	view, err := h.board.Events(c.Request.Context(), boardQuery(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	h.renderer.Render(c, http.StatusOK, "board/events", view)
}

// Timetable godoc
// @Summary Weekly timetable
// @Description Active slots grouped into seven weekday buckets.
// @Tags Board
// @Produce json
// @Param department query string false "Department id"
// @Param level query string false "Level, e.g. 200L"
// @Success 200 {object} response.Envelope
// @Router /timetable/ [get]
func (h *PublicHandler) Timetable(c *gin.Context) {
	view, err := h.board.Timetable(c.Request.Context(), boardQuery(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	h.renderer.Render(c, http.StatusOK, "board/timetable", view)
}

// Results godoc
// @Summary Published results
// @Tags Board
// @Produce json
// @Param department query string false "Department id"
// @Param session query string false "Academic session, e.g. 2023/2024"
// @Success 200 {object} response.Envelope
// @Router /results/ [get]
func (h *PublicHandler) Results(c *gin.Context) {
	view, err := h.board.Results(c.Request.Context(), boardQuery(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	h.renderer.Render(c, http.StatusOK, "board/results", view)
}
