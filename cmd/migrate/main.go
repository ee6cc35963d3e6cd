package main

import (
	"qr_api/internal/config" // Custom import path (Config)
	"qr_api/internal/db"     // Custom import path (Database)
)

// Main entry point for migration
func main() {
	cfg := config.LoadConfig() // Load configuration

	db.Migrate(cfg.DatabaseDSN()) // Create the users table and its indexes
}
