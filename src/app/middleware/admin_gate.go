package middleware

import (
	"github.com/gin-gonic/gin"

	"raidmaster/src/app/http/response"
	"raidmaster/src/core/domain"
	"raidmaster/src/core/usecase"
)

// AdminSecretHeader carries the local-session gate value.
const AdminSecretHeader = "X-Admin-Secret"

// AdminGate rejects requests whose X-Admin-Secret header does not match
// the stored gate value. It is a shared-string check, not authentication.
func AdminGate(gate *usecase.AdminGate) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := GetRequestID(c)

		secret := c.GetHeader(AdminSecretHeader)
		if secret == "" {
			response.Unauthorized(c, "missing "+AdminSecretHeader+" header", requestID)
			c.Abort()
			return
		}

		if err := gate.Verify(c.Request.Context(), secret); err != nil {
			if domain.IsUnauthorized(err) {
				response.Unauthorized(c, "invalid admin secret", requestID)
			} else {
				c.Error(err)
				response.InternalError(c, requestID)
			}
			c.Abort()
			return
		}

		c.Next()
	}
}
