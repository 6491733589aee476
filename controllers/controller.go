package controllers

import (
	"errors"
	"net/http"

	"apptransaction/logging"
	"apptransaction/services"
	"apptransaction/tools"

	"github.com/gin-gonic/gin"
)

// Controller holds what the handlers need for the lifetime of the process.
type Controller struct {
	svc  *services.Services
	logs *logging.Set
}

func New(svc *services.Services, logs *logging.Set) *Controller {
	tools.RegisterValidators()
	return &Controller{svc: svc, logs: logs}
}

func RespondError(c *gin.Context, msg string, code int) {
	c.JSON(code, gin.H{"error": msg})
}

func RespondSuccess(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

// respondServiceError maps domain errors to status codes: not-found is 404
// with the entity message, everything else an opaque 500.
func (ctl *Controller) respondServiceError(c *gin.Context, err error) {
	var nf *services.NotFoundError
	if errors.As(err, &nf) {
		RespondError(c, nf.Error(), http.StatusNotFound)
		return
	}
	if !errors.Is(err, services.ErrInternal) {
		ctl.logs.For("api").Error.WithError(err).
			WithField("path", c.Request.URL.Path).
			Error("Request failed")
	}
	RespondError(c, services.ErrInternal.Error(), http.StatusInternalServerError)
}
