package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/noah-isme/noticeboard/internal/models"
)

type fakeResolver struct {
	tokens map[string]models.Caller
	seen   []string
}

func (f *fakeResolver) Resolve(_ context.Context, token string) models.Caller {
	f.seen = append(f.seen, token)
	if caller, ok := f.tokens[token]; ok {
		return caller
	}
	return models.Anonymous
}

func sessionRouter(resolver *fakeResolver) (*gin.Engine, *models.Caller) {
	gin.SetMode(gin.TestMode)
	var got models.Caller
	r := gin.New()
	r.Use(Session(resolver, "sid"))
	r.GET("/", func(c *gin.Context) {
		got = CallerFrom(c)
		c.Status(http.StatusOK)
	})
	return r, &got
}

func TestSessionResolvesCookie(t *testing.T) {
	staff := models.Caller{UserID: "u1", Username: "registrar", Authenticated: true, IsStaff: true}
	resolver := &fakeResolver{tokens: map[string]models.Caller{"good": staff}}
	r, got := sessionRouter(resolver)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "sid", Value: "good"})
	r.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, staff, *got)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "sid", Value: "forged"})
	r.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, models.Anonymous, *got)
}

func TestSessionWithoutCookieSkipsResolver(t *testing.T) {
	resolver := &fakeResolver{}
	r, got := sessionRouter(resolver)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.Anonymous, *got)
	assert.Empty(t, resolver.seen)
}

func TestCallerFromEmptyContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Equal(t, models.Anonymous, CallerFrom(c))
	c.Set(ContextCallerKey, "not a caller")
	assert.Equal(t, models.Anonymous, CallerFrom(c))
}

type recordedRequest struct {
	method, path string
	status       int
}

type fakeObserver struct{ requests []recordedRequest }

func (f *fakeObserver) ObserveHTTPRequest(method, path string, status int, _ time.Duration) {
	f.requests = append(f.requests, recordedRequest{method, path, status})
}

func TestMetricsLabelsRoutePattern(t *testing.T) {
	gin.SetMode(gin.TestMode)
	obs := &fakeObserver{}
	r := gin.New()
	r.Use(Metrics(obs))
	r.GET("/admin/events/edit/:id/", func(c *gin.Context) { c.Status(http.StatusOK) })

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/admin/events/edit/42/", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	assert.Equal(t, []recordedRequest{
		{http.MethodGet, "/admin/events/edit/:id/", http.StatusOK},
		{http.MethodGet, "unmatched", http.StatusNotFound},
	}, obs.requests)
}

func TestAuditLogsSuccessfulWrites(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zap.InfoLevel)
	staff := models.Caller{UserID: "u1", Username: "registrar", Authenticated: true, IsStaff: true}

	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set(ContextCallerKey, staff) })
	r.Use(Audit(zap.New(core)))
	r.POST("/admin/events/delete/:id/", func(c *gin.Context) { c.Status(http.StatusSeeOther) })
	r.POST("/admin/events/add/", func(c *gin.Context) { c.Status(http.StatusBadRequest) })
	r.GET("/admin/events/", func(c *gin.Context) { c.Status(http.StatusOK) })

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/admin/events/delete/42/", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/admin/events/add/", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/admin/events/", nil))

	entries := logs.FilterMessage("admin_write").All()
	if assert.Len(t, entries, 1) {
		fields := entries[0].ContextMap()
		assert.Equal(t, "u1", fields["user_id"])
		assert.Equal(t, "42", fields["id"])
	}
}
