package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/noticeboard/internal/models"
	appErrors "github.com/noah-isme/noticeboard/pkg/errors"
	"github.com/noah-isme/noticeboard/pkg/flash"
)

// Envelope represents the common response contract.
type Envelope struct {
	View       string             `json:"view,omitempty"`
	Data       interface{}        `json:"data,omitempty"`
	Error      *appErrors.Error   `json:"error,omitempty"`
	Pagination *models.Pagination `json:"pagination,omitempty"`
	Notices    []flash.Message    `json:"notices,omitempty"`
}

// Renderer turns a named view and its context into a response body.
type Renderer interface {
	Render(c *gin.Context, status int, view string, data interface{})
}

// paginated is implemented by view data that carries page metadata.
type paginated interface {
	Paging() *models.Pagination
}

// JSONRenderer renders views as JSON envelopes, draining pending notices.
type JSONRenderer struct {
	flash *flash.Store
}

// NewJSONRenderer constructs the renderer.
func NewJSONRenderer(store *flash.Store) *JSONRenderer {
	return &JSONRenderer{flash: store}
}

// Render implements Renderer.
func (r *JSONRenderer) Render(c *gin.Context, status int, view string, data interface{}) {
	envelope := Envelope{View: view, Data: data}
	if p, ok := data.(paginated); ok {
		envelope.Pagination = p.Paging()
	}
	if r.flash != nil {
		envelope.Notices = r.flash.Pop(c)
	}
	noStore(c)
	c.JSON(status, envelope)
}

// Error sends an error response converting the error to the common structure.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	if appErr.Status >= http.StatusInternalServerError && appErr.Err != nil {
		_ = c.Error(appErr.Err)
	}
	noStore(c)
	c.JSON(appErr.Status, Envelope{Error: appErr})
}

// Redirect sends the browser to location; POSTs get 303 so the follow-up is a GET.
func Redirect(c *gin.Context, location string) {
	status := http.StatusFound
	if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
		status = http.StatusSeeOther
	}
	c.Redirect(status, location)
}

// Attachment streams a generated file download.
func Attachment(c *gin.Context, filename, contentType string, body []byte) {
	noStore(c)
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, contentType, body)
}

func noStore(c *gin.Context) {
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
}
