package middleware

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pageza/healthlog/backend/internal/observability"
)

// ErrorResponse is the body of every error the API returns
type ErrorResponse struct {
	Message string `json:"message"`
}

// InternalError is the only detail a client ever sees about a server failure
var InternalError = ErrorResponse{Message: "Internal Server Error"}

// Recovery turns a panic into a logged 500 with the generic body
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("[recovery] panic in %s %s: %v", c.Request.Method, c.Request.URL.Path, recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, InternalError)
	})
}

// Metrics records the status and latency of every request against its route template
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		observability.ObserveRequest(c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start))
	}
}
