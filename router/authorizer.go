package router

import (
	"apptransaction/config"

	"github.com/gin-gonic/gin"
)

// Authorizer guards the demo root route with HTTP basic auth; a wrong or
// missing credential gets 401.
func Authorizer(cfg config.Configuration) gin.HandlerFunc {
	return gin.BasicAuthForRealm(gin.Accounts{
		cfg.Auth.Username: cfg.Auth.Password,
	}, "apptransaction")
}
