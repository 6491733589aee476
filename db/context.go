package db

import (
	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
)

const dbKey = "db"

// SetDBtoContext makes the connection available to every handler.
func SetDBtoContext(database *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(dbKey, database)
		c.Next()
	}
}

func DBInstance(c *gin.Context) *gorm.DB {
	v, ok := c.Get(dbKey)
	if !ok {
		return nil
	}
	db, _ := v.(*gorm.DB)
	return db
}

// Scoped runs fn inside a transaction bound to the request.
func Scoped(c *gin.Context, fn func(tx *gorm.DB) error) error {
	database := DBInstance(c)
	if database == nil {
		return ErrNoDatabase
	}
	return WithTx(c.Request.Context(), database, fn)
}
