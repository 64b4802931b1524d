package handler

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/noticeboard/internal/middleware"
	"github.com/noah-isme/noticeboard/internal/models"
	"github.com/noah-isme/noticeboard/pkg/flash"
	"github.com/noah-isme/noticeboard/pkg/response"
)

const flashCookie = "test_flash"

var (
	staffCaller    = models.Caller{UserID: "staff-1", Username: "registrar", SessionID: "sid-1", Authenticated: true, IsStaff: true}
	nonStaffCaller = models.Caller{UserID: "user-2", Username: "student", SessionID: "sid-2", Authenticated: true}
)

type responseEnvelope struct {
	View       string                 `json:"view"`
	Data       map[string]interface{} `json:"data"`
	Error      map[string]interface{} `json:"error"`
	Pagination map[string]interface{} `json:"pagination"`
	Notices    []flash.Message        `json:"notices"`
}

func newTestRouter(caller models.Caller) (*gin.Engine, response.Renderer, *flash.Store) {
	gin.SetMode(gin.TestMode)
	notices := flash.NewStore(flashCookie, false)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.ContextCallerKey, caller)
		c.Next()
	})
	return r, response.NewJSONRenderer(notices), notices
}

func perform(r http.Handler, method, target string, form url.Values) *httptest.ResponseRecorder {
	var body *strings.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	} else {
		body = strings.NewReader("")
	}
	req := httptest.NewRequest(method, target, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) responseEnvelope {
	t.Helper()
	var envelope responseEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return envelope
}

// queuedNotices reads the flash cookie set on a redirect.
func queuedNotices(t *testing.T, rec *httptest.ResponseRecorder) []flash.Message {
	t.Helper()
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name != flashCookie || cookie.Value == "" {
			continue
		}
		payload, err := base64.RawURLEncoding.DecodeString(cookie.Value)
		require.NoError(t, err)
		var messages []flash.Message
		require.NoError(t, json.Unmarshal(payload, &messages))
		return messages
	}
	return nil
}

func findCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}
