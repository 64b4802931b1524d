package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/noticeboard/internal/middleware"
	"github.com/noah-isme/noticeboard/internal/models"
	appErrors "github.com/noah-isme/noticeboard/pkg/errors"
	"github.com/noah-isme/noticeboard/pkg/flash"
	"github.com/noah-isme/noticeboard/pkg/response"
)

func callerFromContext(c *gin.Context) models.Caller {
	return middleware.CallerFrom(c)
}

// fail answers a failed request. Denied access is recoverable: the caller is
// sent home with a notice. Everything else becomes an error response.
func fail(c *gin.Context, notices *flash.Store, err error) {
	if errors.Is(err, appErrors.ErrForbidden) {
		if notices != nil {
			notices.Error(c, appErrors.FromError(err).Message)
		}
		response.Redirect(c, "/")
		return
	}
	response.Error(c, err)
}

// fieldErrors extracts the field map of a validation failure.
func fieldErrors(err error) (map[string]string, bool) {
	if !errors.Is(err, appErrors.ErrValidation) {
		return nil, false
	}
	appErr := appErrors.FromError(err)
	if len(appErr.Fields) == 0 {
		return map[string]string{"__all__": appErr.Message}, true
	}
	return appErr.Fields, true
}
