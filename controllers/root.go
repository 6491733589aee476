package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GET / (basic auth)
func Root(c *gin.Context) {
	user := c.MustGet(gin.AuthUserKey).(string)
	RespondSuccess(c, gin.H{"message": "Hello, " + user + "!"})
}

// GET /health
func Health(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

func NotFound(c *gin.Context) {
	RespondError(c, "not found", http.StatusNotFound)
}
