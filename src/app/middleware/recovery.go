package middleware

import (
	"log/slog"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"raidmaster/src/app/http/response"
)

// Recovery turns a handler panic into a 500 envelope and logs the stack.
// Register it first so it wraps everything else.
func Recovery(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			r := recover()
			if r == nil {
				return
			}
			requestID := GetRequestID(c)
			log.Error("panic recovered",
				"request_id", requestID,
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
				"panic", r,
				"stack", string(debug.Stack()),
			)
			response.InternalError(c, requestID)
			c.Abort()
		}()

		c.Next()
	}
}
