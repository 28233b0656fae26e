package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env         string
	DBType      string
	PostgresURL string
	MongoURL    string
	Port        string
	JWTSecret   string
	JWTTTL      time.Duration
	CORSOrigin  string
	PDFSavePath string
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := &Config{
		Env:         getEnv("ENV", "development"),
		DBType:      getEnv("DB_TYPE", "postgres"),
		PostgresURL: postgresURL(),
		MongoURL:    os.Getenv("MONGO_URL"),
		Port:        getEnv("PORT", "4000"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		CORSOrigin:  os.Getenv("CORS_ORIGIN"),
		PDFSavePath: getEnv("PDF_SAVE_PATH", "./pdfs"),
	}

	// Tokens are signed with a server-held secret; there is no compiled-in
	// fallback, every deployment must inject its own.
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET not set in environment")
	}

	ttl, err := time.ParseDuration(getEnv("JWT_TTL", "1h"))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_TTL: %w", err)
	}
	cfg.JWTTTL = ttl

	return cfg, nil
}

// postgresURL composes the connection URL from the discrete DB_* variables,
// unless POSTGRES_URL is given directly.
func postgresURL() string {
	if url := os.Getenv("POSTGRES_URL"); url != "" {
		return url
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASS"),
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_PORT", "5432"),
		os.Getenv("DB_NAME"),
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
