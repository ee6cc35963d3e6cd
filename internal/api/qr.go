package api

import (
	"context"               // Context for Redis operations
	"net/http"              // HTTP status codes
	"qr_api/internal/qr"    // QR image generator
	"qr_api/internal/utils" // Utility functions
	"time"                  // Time durations

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
)

// Defaults for the QR endpoints
const (
	defaultQrData   = "https://google.com" // Default payload when no data is given
	defaultFilename = "codigo_qr.png"      // Default download filename
	pngContentType  = "image/png"          // Content type of generated images
)

// GenerateQrHandler generates a QR code and returns it as a raw PNG image
func GenerateQrHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		data := c.DefaultQuery("data", defaultQrData) // Payload to encode
		png, err := qr.Generate(data)                 // Generate the PNG bytes
		if err != nil {
			// Surface the generator failure with its cause
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "Error generando QR: " + err.Error()})
			return
		}
		c.Data(http.StatusOK, pngContentType, png) // Return the raw image
	}
}

// QrBase64Response is the JSON delivery mode payload
type QrBase64Response struct {
	DataOriginal string `json:"data_original"` // The encoded input, echoed back
	QrBase64     string `json:"qr_base64"`     // Base64 of the PNG bytes
	MediaType    string `json:"media_type"`    // Always image/png
}

// GenerateQrBase64Handler generates a QR code and returns it as base64 inside JSON.
// Generation is pure, so responses are cached by input text.
func GenerateQrBase64Handler(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		data := c.DefaultQuery("data", defaultQrData) // Payload to encode
		ctx := context.Background()                   // Context for Redis operations
		cacheKey := "qr:b64:" + data                  // Cache key for this payload
		var cached QrBase64Response                   // Struct to hold cached data
		found, err := utils.GetCache(ctx, rdb, cacheKey, &cached)
		// If found in cache, return it
		if err == nil && found {
			c.JSON(http.StatusOK, cached)
			return
		}
		b64, err := qr.GenerateBase64(data) // Generate the base64 string
		if err != nil {
			// Surface the generator failure with its cause
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "Error generando QR Base64: " + err.Error()})
			return
		}
		resp := QrBase64Response{
			DataOriginal: data,           // Echo the input
			QrBase64:     b64,            // Base64 image
			MediaType:    pngContentType, // Media type of the decoded bytes
		}
		_ = utils.SetCache(ctx, rdb, cacheKey, resp, time.Hour) // Cache the response
		c.JSON(http.StatusOK, resp)                             // Return the JSON payload
	}
}

// DownloadQrHandler generates a QR code and returns it as a downloadable attachment
func DownloadQrHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		data := c.DefaultQuery("data", defaultQrData)             // Payload to encode
		filename := c.DefaultQuery("filename", defaultFilename)   // Download filename
		png, err := qr.Generate(data)                             // Generate the PNG bytes
		if err != nil {
			// Surface the generator failure with its cause
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "Error descargando QR: " + err.Error()})
			return
		}
		// Tell the browser to download the file instead of rendering it
		c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
		c.Data(http.StatusOK, pngContentType, png) // Return the raw image
	}
}
