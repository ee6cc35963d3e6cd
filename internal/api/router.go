package api

import (
	"qr_api/internal/config"     // Application configuration
	"qr_api/internal/middleware" // Request logging and API-key auth
	"qr_api/internal/store"      // User persistence

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"gorm.io/gorm"                 // GORM ORM library
)

// NewRouter assembles the Gin engine with all routes and middleware.
// rdb may be nil, which disables caching.
func NewRouter(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	r := gin.New()                                              // Bare engine, no default middleware
	r.Use(middleware.RequestLoggerMiddleware(), gin.Recovery()) // Structured request log + panic recovery
	users := store.NewUserStore(db)                             // User store shared by the user routes

	// QR routes (public)
	r.GET("/GenerateQr/", GenerateQrHandler())                 // Raw PNG endpoint
	r.GET("/GenerateQrBase64/", GenerateQrBase64Handler(rdb)) // Base64 JSON endpoint
	r.GET("/DownloadQr/", DownloadQrHandler())                 // Attachment endpoint

	// User routes (creation protected by API key)
	userGroup := r.Group("/users")
	userGroup.POST("/", middleware.APIKeyAuthMiddleware(cfg.APIKey), CreateUserHandler(users, rdb)) // Create endpoint
	userGroup.GET("/", ListUsersHandler(users))                                                     // List endpoint
	userGroup.GET("/:cedula", GetUserHandler(users, rdb))                                           // Lookup endpoint

	return r
}
