package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/noticeboard/internal/service"
	"github.com/noah-isme/noticeboard/pkg/response"
)

type exportService interface {
	TimetablePDF(ctx context.Context, q service.BoardQuery) (*service.ExportFile, error)
	ResultsCSV(ctx context.Context, q service.BoardQuery) (*service.ExportFile, error)
}

// ExportHandler streams downloadable renditions of the public views.
type ExportHandler struct {
	exports exportService
}

// NewExportHandler constructs the export handler.
func NewExportHandler(exports exportService) *ExportHandler {
	return &ExportHandler{exports: exports}
}

// Timetable godoc
// @Summary Timetable PDF
// @Tags Board
// @Produce application/pdf
// @Param department query string false "Department id"
// @Param level query string false "Level"
// @Success 200 {file} file
// @Router /timetable/export/ [get]
func (h *ExportHandler) Timetable(c *gin.Context) {
	h.send(c, h.exports.TimetablePDF)
}

// Results godoc
// @Summary Published results CSV
// @Tags Board
// @Produce text/csv
// @Param department query string false "Department id"
// @Param session query string false "Academic session"
// @Success 200 {file} file
// @Router /results/export/ [get]
func (h *ExportHandler) Results(c *gin.Context) {
	h.send(c, h.exports.ResultsCSV)
}

func (h *ExportHandler) send(c *gin.Context, render func(context.Context, service.BoardQuery) (*service.ExportFile, error)) {
	file, err := render(c.Request.Context(), boardQuery(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Attachment(c, file.Filename, file.ContentType, file.Body)
}
