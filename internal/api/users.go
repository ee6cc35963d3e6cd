package api

import (
	"context"                // Context for Redis operations
	"errors"                 // Domain outcome checks
	"net/http"               // HTTP status codes
	"qr_api/internal/domain" // Importing domain models
	"qr_api/internal/store"  // User persistence
	"qr_api/internal/utils"  // Utility functions
	"strconv"                // String conversion
	"time"                   // Time durations

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logging library
)

// CreateUserRequest is the JSON body for user creation
type CreateUserRequest struct {
	Cedula string  `json:"cedula" binding:"required"` // Cedula must be provided
	Nombre string  `json:"nombre" binding:"required"` // Nombre must be provided
	Email  *string `json:"email"`                     // Email is optional
}

// userCacheKey builds the cache key for a user lookup by cedula
func userCacheKey(cedula string) string {
	return "user:cedula:" + cedula
}

// CreateUserHandler registers a new user, rejecting duplicate cedulas
func CreateUserHandler(users *store.UserStore, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateUserRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request with the field-level detail
			c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
			return
		}
		user, err := users.Create(req.Cedula, req.Nombre, req.Email) // Insert the user
		if err != nil {
			// Duplicate cedula is an expected domain outcome
			if errors.Is(err, store.ErrCedulaExists) {
				c.JSON(http.StatusBadRequest, gin.H{"detail": "La cédula ya está registrada"})
				return
			}
			// Log the unexpected failure with context
			logrus.WithFields(logrus.Fields{
				"cedula": req.Cedula,  // Natural key
				"error":  err.Error(), // Error message
			}).Error("User creation failed")
			// Return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "Error creando usuario"})
			return
		}
		// Invalidate any cached lookup for this cedula
		_ = utils.DeleteCache(context.Background(), rdb, userCacheKey(req.Cedula))
		c.JSON(http.StatusOK, user) // Return the created user including its ID
	}
}

// ListUsersHandler returns users in insertion order with skip/limit pagination
func ListUsersHandler(users *store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		skip := 0    // Default offset
		limit := 100 // Default page size
		// If skip exists in query
		if s := c.Query("skip"); s != "" {
			// Convert skip to integer
			if v, err := strconv.Atoi(s); err == nil && v >= 0 {
				skip = v // Set skip if valid
			}
		}
		// If limit exists in query
		if l := c.Query("limit"); l != "" {
			// Convert limit to integer
			if v, err := strconv.Atoi(l); err == nil && v > 0 {
				limit = v // Set limit if valid
			}
		}
		list, err := users.List(skip, limit) // Fetch the page
		if err != nil {
			// Log the failure with context
			logrus.WithFields(logrus.Fields{
				"skip":  skip,        // Page offset
				"limit": limit,       // Page size
				"error": err.Error(), // Error message
			}).Error("User listing failed")
			// Return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "Error listando usuarios"})
			return
		}
		c.JSON(http.StatusOK, list) // Return the JSON array
	}
}

// GetUserHandler returns a single user looked up by cedula
func GetUserHandler(users *store.UserStore, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		cedula := c.Param("cedula")       // Path parameter
		ctx := context.Background()       // Context for Redis operations
		cacheKey := userCacheKey(cedula)  // Cache key for this cedula
		var cached domain.User            // User struct to hold cached data
		found, err := utils.GetCache(ctx, rdb, cacheKey, &cached)
		// If found in cache, return it
		if err == nil && found {
			c.JSON(http.StatusOK, cached)
			return
		}
		user, err := users.GetByCedula(cedula) // Fetch from the database
		if err != nil {
			// Missing user is an expected domain outcome
			if errors.Is(err, store.ErrUserNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"detail": "Usuario no encontrado"})
				return
			}
			// Log the unexpected failure with context
			logrus.WithFields(logrus.Fields{
				"cedula": cedula,      // Natural key
				"error":  err.Error(), // Error message
			}).Error("User lookup failed")
			// Return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "Error consultando usuario"})
			return
		}
		_ = utils.SetCache(ctx, rdb, cacheKey, user, 60*time.Second) // Cache the user for 60 seconds
		c.JSON(http.StatusOK, user)                                  // Return the user
	}
}
