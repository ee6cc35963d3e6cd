package middleware

import (
	"net/http" // HTTP status codes

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// apiKeyHeader is the request header carrying the shared secret
const apiKeyHeader = "X-API-Key"

// APIKeyAuthMiddleware validates the X-API-Key header against the configured secret
func APIKeyAuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		provided := c.GetHeader(apiKeyHeader) // Get API key header
		// Check if the header is present
		if provided == "" {
			logrus.Warn("API Key missing in request") // Audit the missing key
			// Abort with unauthorized status
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "API Key requerida. Incluir header: X-API-Key"})
			return
		}
		// Exact, case-sensitive match against the configured secret
		if provided != secret {
			// Log only a truncated prefix of the offending key, never the full value
			logrus.WithFields(logrus.Fields{
				"provided_key_prefix": maskKey(provided), // First 4 characters plus ellipsis
			}).Warn("Invalid API Key attempt")
			// Abort with forbidden status
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"detail": "API Key inválida"})
			return
		}
		c.Next() // Proceed to the next handler
	}
}

// maskKey truncates a key to its first 4 characters plus ellipsis
func maskKey(key string) string {
	if len(key) > 4 {
		key = key[:4] // Keep only the prefix
	}
	return key + "..."
}
