package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config is the explicit configuration passed into BootDB. Business logic
// never reads the process environment directly.
type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Seeded into the admins table when it is empty.
	AdminID     string
	AdminSecret string

	AppEnv string
}

func get(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// Load reads .env if present, then assembles the config from the
// environment with the legacy defaults.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg(".env file not found, using system environment variables")
	}

	return &Config{
		DBHost:      get("DB_HOST", "localhost"),
		DBPort:      get("DB_PORT", "5432"),
		DBUser:      get("DB_USER", "postgres"),
		DBPassword:  get("DB_PASSWORD", ""),
		DBName:      get("DB_NAME", "bvp_student_office"),
		DBSSLMode:   get("DB_SSLMODE", "disable"),
		AdminID:     get("ADMIN_ID", "ADMIN001"),
		AdminSecret: get("ADMIN_SECRET", ""),
		AppEnv:      get("APP_ENV", "production"),
	}
}

func (c *Config) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode,
	)
}
