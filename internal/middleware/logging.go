package middleware

import (
	"time" // Request timing

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// RequestLoggerMiddleware records every request and its completion
// (method, path, status, elapsed time, client) as a structured log event
func RequestLoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()         // Request entry time
		path := c.Request.URL.Path  // Capture before handlers can rewrite it
		method := c.Request.Method  // HTTP method
		c.Next()                    // Run the handler chain
		status := c.Writer.Status() // Final response status
		entry := logrus.WithFields(logrus.Fields{
			"method":  method,                     // HTTP method
			"path":    path,                       // Request path
			"status":  status,                     // Response status code
			"elapsed": time.Since(start).String(), // Handling duration
			"client":  c.ClientIP(),               // Client address
		})
		// Raise the level for error responses
		switch {
		case status >= 500:
			entry.Error("Request completed")
		case status >= 400:
			entry.Warn("Request completed")
		default:
			entry.Info("Request completed")
		}
	}
}
