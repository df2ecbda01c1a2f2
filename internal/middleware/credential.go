package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"lexasta/internal/domain"
	"lexasta/internal/port"
)

// HeaderModelAPIKey carries an optional per-request model credential.
const HeaderModelAPIKey = "X-Model-API-Key"

// ValidCredential reports whether key has the shape the provider issues.
func ValidCredential(provider, key string) bool {
	switch provider {
	case "claude":
		return strings.HasPrefix(key, "sk-ant")
	case "openai":
		return strings.HasPrefix(key, "sk-")
	default:
		return key != ""
	}
}

// ModelCredential moves the X-Model-API-Key header onto the request context.
// A key that does not match the primary provider's format is rejected with 400.
// Requests without the header use the configured key.
func ModelCredential(provider string) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := strings.TrimSpace(c.GetHeader(HeaderModelAPIKey))
		if key == "" {
			c.Next()
			return
		}
		if !ValidCredential(provider, key) {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "INVALID_CREDENTIAL",
					"message": domain.ErrInvalidCredential.Error(),
				},
			})
			return
		}
		c.Request = c.Request.WithContext(port.WithAPIKey(c.Request.Context(), key))
		c.Next()
	}
}
