// Package storage provides the shared MongoDB connection for the application.
package storage

// Config holds MongoDB connection configuration
type Config struct {
	// URL is the connection string (e.g., mongodb://localhost:27017)
	URL string

	// Database is the database name (default: gostarter)
	Database string
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() Config {
	return Config{
		URL:      "mongodb://localhost:27017",
		Database: "gostarter",
	}
}
