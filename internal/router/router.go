package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/noah-isme/noticeboard/internal/handler"
	"github.com/noah-isme/noticeboard/internal/models"
	"github.com/noah-isme/noticeboard/internal/service"
	"github.com/noah-isme/noticeboard/pkg/flash"
	"github.com/noah-isme/noticeboard/pkg/response"
)

// Resource is a handler set that mounts its own routes.
type Resource interface {
	Register(group *gin.RouterGroup)
}

// Handlers bundles every HTTP handler mounted by Setup.
type Handlers struct {
	Public    *handler.PublicHandler
	Export    *handler.ExportHandler
	Auth      *handler.AuthHandler
	Dashboard *handler.DashboardHandler
	Metrics   *handler.MetricsHandler
	Resources []Resource
}

// Options toggles optional surfaces.
type Options struct {
	Docs  bool
	Audit gin.HandlerFunc
}

// Services are the admin services backing the generic CRUD resources.
type Services struct {
	Announcements *service.AnnouncementService
	Events        *service.EventService
	Timetables    *service.TimetableService
	Results       *service.ResultService
	Departments   *service.DepartmentService
}

// AdminResources builds the five admin CRUD resources.
func AdminResources(svc Services, renderer response.Renderer, notices *flash.Store) []Resource {
	return []Resource{
		handler.NewAdminResource[models.Announcement, service.AnnouncementForm](svc.Announcements, svc.Departments, renderer, notices, handler.ResourceOptions{
			Kind:        "announcements",
			Label:       "Announcement",
			Choices:     map[string][]string{"priority": names(models.AnnouncementPriorities)},
			Departments: true,
		}),
		handler.NewAdminResource[models.Event, service.EventForm](svc.Events, svc.Departments, renderer, notices, handler.ResourceOptions{
			Kind:        "events",
			Label:       "Event",
			Choices:     map[string][]string{"event_type": names(models.EventTypes)},
			Departments: true,
		}),
		handler.NewAdminResource[models.Timetable, service.TimetableForm](svc.Timetables, svc.Departments, renderer, notices, handler.ResourceOptions{
			Kind:        "timetables",
			Label:       "Timetable entry",
			Choices:     map[string][]string{"day_of_week": names(models.Weekdays)},
			Departments: true,
		}),
		handler.NewAdminResource[models.Result, service.ResultForm](svc.Results, svc.Departments, renderer, notices, handler.ResourceOptions{
			Kind:  "results",
			Label: "Result",
			Choices: map[string][]string{"semester": names([]models.ResultSemester{
				models.ResultSemesterFirst, models.ResultSemesterSecond,
			})},
			Departments: true,
		}),
		handler.NewAdminResource[models.Department, service.DepartmentForm](svc.Departments, nil, renderer, notices, handler.ResourceOptions{
			Kind:  "departments",
			Label: "Department",
		}),
	}
}

// Setup mounts the public board, the admin area and the operational endpoints.
func Setup(r *gin.Engine, h Handlers, opts Options) {
	r.GET("/", h.Public.Home)
	r.GET("/announcements/", h.Public.Announcements)
	r.GET("/events/", h.Public.Events)
	r.GET("/timetable/", h.Public.Timetable)
	r.GET("/timetable/export/", h.Export.Timetable)
	r.GET("/results/", h.Public.Results)
	r.GET("/results/export/", h.Export.Results)

	r.GET("/ping/", h.Metrics.Ping)
	r.GET("/metrics", h.Metrics.Prometheus)

	admin := r.Group("/admin")
	if opts.Audit != nil {
		admin.Use(opts.Audit)
	}
	admin.GET("/", h.Dashboard.Dashboard)
	admin.GET("/login/", h.Auth.LoginPage)
	admin.POST("/login/", h.Auth.Login)
	admin.POST("/logout/", h.Auth.Logout)
	for _, res := range h.Resources {
		res.Register(admin)
	}

	if opts.Docs {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
}

func names[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}
