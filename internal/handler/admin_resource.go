package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/noticeboard/internal/dto"
	"github.com/noah-isme/noticeboard/internal/models"
	"github.com/noah-isme/noticeboard/internal/service"
	"github.com/noah-isme/noticeboard/pkg/flash"
	"github.com/noah-isme/noticeboard/pkg/response"
)

// adminService is the shape shared by every admin-managed record kind.
type adminService[T any, F any] interface {
	List(ctx context.Context, caller models.Caller) ([]T, error)
	Get(ctx context.Context, caller models.Caller, id string) (*T, error)
	Create(ctx context.Context, caller models.Caller, form F) (*T, error)
	Update(ctx context.Context, caller models.Caller, id string, form F) (*T, error)
	Delete(ctx context.Context, caller models.Caller, id string) error
	FormFor(record *T) F
}

type departmentLister interface {
	List(ctx context.Context, caller models.Caller) ([]models.Department, error)
}

// ResourceOptions describes how one record kind appears in the admin.
type ResourceOptions struct {
	// Kind is the URL segment and view prefix, e.g. "announcements".
	Kind string
	// Label names a single record in notices, e.g. "Announcement".
	Label string
	// Choices lists the allowed values of enumerated fields.
	Choices map[string][]string
	// Departments adds the department list to forms for the selector.
	Departments bool
}

// AdminResource serves list, add, edit and delete for one record kind.
type AdminResource[T any, F any] struct {
	service     adminService[T, F]
	departments departmentLister
	renderer    response.Renderer
	flash       *flash.Store
	opts        ResourceOptions
}

// NewAdminResource constructs the handler set for one kind.
func NewAdminResource[T any, F any](svc adminService[T, F], departments departmentLister, renderer response.Renderer, notices *flash.Store, opts ResourceOptions) *AdminResource[T, F] {
	return &AdminResource[T, F]{service: svc, departments: departments, renderer: renderer, flash: notices, opts: opts}
}

// Register mounts the kind's routes below group.
func (h *AdminResource[T, F]) Register(group *gin.RouterGroup) {
	g := group.Group("/" + h.opts.Kind)
	g.GET("/", h.List)
	g.GET("/add/", h.Add)
	g.POST("/add/", h.Add)
	g.GET("/edit/:id/", h.Edit)
	g.POST("/edit/:id/", h.Edit)
	g.GET("/delete/:id/", h.Delete)
	g.POST("/delete/:id/", h.Delete)
}

func (h *AdminResource[T, F]) view(name string) string {
	return "admin/" + h.opts.Kind + "/" + name
}

func (h *AdminResource[T, F]) listPath() string {
	return "/admin/" + h.opts.Kind + "/"
}

// List renders every record of the kind, including inactive and unpublished ones.
func (h *AdminResource[T, F]) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context(), callerFromContext(c))
	if err != nil {
		fail(c, h.flash, err)
		return
	}
	if items == nil {
		items = []T{}
	}
	h.renderer.Render(c, http.StatusOK, h.view("list"), dto.AdminList{Kind: h.opts.Kind, Items: items})
}

// Add renders an empty form on GET and creates a record on POST.
func (h *AdminResource[T, F]) Add(c *gin.Context) {
	caller := callerFromContext(c)
	if err := service.Authorize(caller); err != nil {
		fail(c, h.flash, err)
		return
	}
	title := "Add " + h.opts.Label
	if c.Request.Method != http.MethodPost {
		h.renderForm(c, http.StatusOK, title, h.service.FormFor(nil), nil)
		return
	}

	var form F
	if err := c.ShouldBind(&form); err != nil {
		h.renderForm(c, http.StatusBadRequest, title, form, map[string]string{"__all__": "The submitted form could not be read."})
		return
	}
	if _, err := h.service.Create(c.Request.Context(), caller, form); err != nil {
		h.formFailure(c, title, form, err)
		return
	}
	h.flash.Success(c, h.opts.Label+" created successfully!")
	response.Redirect(c, h.listPath())
}

// Edit renders the prefilled form on GET and updates the record on POST.
func (h *AdminResource[T, F]) Edit(c *gin.Context) {
	caller := callerFromContext(c)
	id := c.Param("id")
	record, err := h.service.Get(c.Request.Context(), caller, id)
	if err != nil {
		fail(c, h.flash, err)
		return
	}
	title := "Edit " + h.opts.Label
	if c.Request.Method != http.MethodPost {
		h.renderForm(c, http.StatusOK, title, h.service.FormFor(record), nil)
		return
	}

	var form F
	if err := c.ShouldBind(&form); err != nil {
		h.renderForm(c, http.StatusBadRequest, title, form, map[string]string{"__all__": "The submitted form could not be read."})
		return
	}
	if _, err := h.service.Update(c.Request.Context(), caller, id, form); err != nil {
		h.formFailure(c, title, form, err)
		return
	}
	h.flash.Success(c, h.opts.Label+" updated successfully!")
	response.Redirect(c, h.listPath())
}

// Delete asks for confirmation on GET and deletes on POST.
func (h *AdminResource[T, F]) Delete(c *gin.Context) {
	caller := callerFromContext(c)
	id := c.Param("id")
	record, err := h.service.Get(c.Request.Context(), caller, id)
	if err != nil {
		fail(c, h.flash, err)
		return
	}
	if c.Request.Method != http.MethodPost {
		h.renderer.Render(c, http.StatusOK, h.view("confirm_delete"), dto.DeleteConfirm{Kind: h.opts.Kind, ID: id, Record: record})
		return
	}
	if err := h.service.Delete(c.Request.Context(), caller, id); err != nil {
		fail(c, h.flash, err)
		return
	}
	h.flash.Success(c, h.opts.Label+" deleted successfully!")
	response.Redirect(c, h.listPath())
}

func (h *AdminResource[T, F]) formFailure(c *gin.Context, title string, form F, err error) {
	fields, ok := fieldErrors(err)
	if !ok {
		fail(c, h.flash, err)
		return
	}
	h.renderForm(c, http.StatusBadRequest, title, form, fields)
}

func (h *AdminResource[T, F]) renderForm(c *gin.Context, status int, title string, values F, errs map[string]string) {
	view := dto.FormView{
		Kind:    h.opts.Kind,
		Title:   title,
		Values:  values,
		Errors:  errs,
		Choices: h.opts.Choices,
	}
	if h.opts.Departments && h.departments != nil {
		departments, err := h.departments.List(c.Request.Context(), callerFromContext(c))
		if err != nil {
			response.Error(c, err)
			return
		}
		view.Departments = departments
	}
	h.renderer.Render(c, status, h.view("form"), view)
}
