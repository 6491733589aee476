package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"apptransaction/tools"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// ParamID reads a positive integer path parameter, answering 422 otherwise.
func (ctl *Controller) ParamID(c *gin.Context, name string) (int64, bool) {
	v := c.Param(name)
	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil || id <= 0 {
		ctl.respondValidation(c, []tools.FieldError{{
			Type: "int_parsing",
			Loc:  []string{"path", name},
			Msg:  "Input should be a valid positive integer",
		}}, nil)
		return 0, false
	}
	return id, true
}

// bindJSON decodes and validates the request body into obj.
func (ctl *Controller) bindJSON(c *gin.Context, obj any) bool {
	raw, err := c.GetRawData()
	if err == nil && len(raw) == 0 {
		err = tools.ErrEmptyBody
	}
	if err == nil {
		err = binding.JSON.BindBody(raw, obj)
	}
	if err != nil {
		ctl.respondValidation(c, tools.ValidationDetails(err, "body"), echo(raw))
		return false
	}
	return true
}

// bindQuery decodes and validates the query string into obj.
func (ctl *Controller) bindQuery(c *gin.Context, obj any) bool {
	if err := c.ShouldBindQuery(obj); err != nil {
		ctl.respondValidation(c, tools.ValidationDetails(err, "query"), nil)
		return false
	}
	return true
}

func (ctl *Controller) respondValidation(c *gin.Context, details []tools.FieldError, body any) {
	ctl.logs.For("api").Error.
		WithField("path", c.Request.URL.Path).
		WithField("errors", details).
		WithField("body", logBody(body)).
		Error("Validation error")
	c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": details, "body": body})
}

// echo returns the payload as sent: parsed JSON when possible, the raw text
// otherwise.
func echo(raw []byte) any {
	if len(raw) == 0 {
		return nil
	}
	if json.Valid(raw) {
		return json.RawMessage(raw)
	}
	return string(raw)
}

func logBody(body any) any {
	if raw, ok := body.(json.RawMessage); ok {
		return string(raw)
	}
	return body
}
