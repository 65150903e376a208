package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port string

	ApiBaseURL string // Base URL of the upstream LMS REST API
	ApiTimeout time.Duration

	JWTKey     string // Secret used to sign the session cookie
	CookieName string

	SessionDBDriver string // sqlite, postgres or mysql
	SessionDBName   string
	SessionTTL      time.Duration
	SweepInterval   time.Duration

	NotifyPollInterval time.Duration

	CorsOrigins string
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port: getEnv("PORT", "3000"),

		ApiBaseURL: getEnv("API_BASE_URL", "http://localhost:8080/api"),
		ApiTimeout: getEnvDuration("API_TIMEOUT", 15*time.Second),

		JWTKey:     getEnv("JWT_SECRET_KEY", "defaultSecret"),
		CookieName: getEnv("SESSION_COOKIE_NAME", "sb_session"),

		SessionDBDriver: getEnv("SESSION_DB_DRIVER", "sqlite"),
		SessionDBName:   getEnv("SESSION_DB_NAME", "sessions.db"),
		SessionTTL:      getEnvDuration("SESSION_TTL", 24*time.Hour),
		SweepInterval:   getEnvDuration("SESSION_SWEEP_INTERVAL", 10*time.Minute),

		NotifyPollInterval: getEnvDuration("NOTIFY_POLL_INTERVAL", 30*time.Second),

		CorsOrigins: getEnv("CORS_ORIGINS", "*"),
	}

	// Validate critical configuration
	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvDuration retrieves an environment variable as a duration or returns the default
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to duration: %v", key, err)
		return defaultValue
	}
	return d
}
