package config

import (
	"os"      // For environment variables
	"strconv" // For string to int conversion

	"github.com/joho/godotenv" // For loading .env files
)

// Config holds the application configuration
type Config struct {
	AppPort    string // Application port
	DBUser     string // Database user
	DBPassword string // Database password
	DBHost     string // Database host
	DBPort     string // Database port
	DBName     string // Database name
	APIKey     string // Static API key for protected endpoints
	RedisAddr  string // Redis server address (empty disables caching)
	RedisPass  string // Redis password
	RedisDB    int    // Redis database number
	LogLevel   string // Log level (debug, info, warn, error)
	LogFormat  string // Log format: text or json
	IsProd     bool   // Is production environment
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	return &Config{
		AppPort:    getEnv("APP_PORT", "8000"),        // Application port
		DBUser:     getEnv("DB_USER", "postgres"),     // Database user
		DBPassword: getEnv("DB_PASSWORD", "postgres"), // Database password
		DBHost:     getEnv("DB_HOST", "localhost"),    // Database host
		DBPort:     getEnv("DB_PORT", "5432"),         // Database port
		DBName:     getEnv("DB_NAME", "qrdb"),         // Database name
		APIKey:     os.Getenv("API_KEY"),              // API key secret
		RedisAddr:  os.Getenv("REDIS_ADDR"),           // Redis server address
		RedisPass:  os.Getenv("REDIS_PASS"),           // Redis password
		RedisDB:    redisDB,                           // Redis database number
		LogLevel:   getEnv("LOG_LEVEL", "info"),       // Log level
		LogFormat:  getEnv("LOG_FORMAT", "text"),      // Log format
		IsProd:     os.Getenv("IS_PROD") == "true",    // Is production environment
	}
}

// DatabaseDSN builds the PostgreSQL connection string from the configuration
func (c *Config) DatabaseDSN() string {
	return "host=" + c.DBHost +
		" user=" + c.DBUser +
		" password=" + c.DBPassword +
		" dbname=" + c.DBName +
		" port=" + c.DBPort +
		" sslmode=disable"
}

// getEnv reads an environment variable with a fallback default
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v // Value set in environment
	}
	return fallback // Fall back to default
}
