package webhook

import (
	"crypto/subtle"
	"net/http"

	"varniya_crm_backend/internal/http/response"
	"varniya_crm_backend/platform/config"

	"github.com/gin-gonic/gin"
)

const tokenHeader = "X-Webhook-Token"

// TokenAuthMiddleware guards webhook routes with a shared secret header.
// Requests are rejected when no token is configured at all, so a missing
// env var never silently opens the endpoints.
func TokenAuthMiddleware(cfg config.WebhookConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		expected := cfg.GetWebhookToken()
		if expected == "" {
			response.Error(c, http.StatusServiceUnavailable, "webhook ingestion disabled", nil)
			c.Abort()
			return
		}

		provided := c.GetHeader(tokenHeader)
		if subtle.ConstantTimeCompare([]byte(provided), []byte(expected)) != 1 {
			response.Error(c, http.StatusUnauthorized, "invalid webhook token", nil)
			c.Abort()
			return
		}

		c.Next()
	}
}
