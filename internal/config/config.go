// Package config loads process configuration. Everything is read once in
// Load; components receive the resulting Config at construction instead of
// reaching into the environment themselves.
package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config is the full, immutable runtime configuration.
type Config struct {
	Port        string
	CORSOrigins string

	DatabaseURL string
	DB          DBPool

	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int

	JWTSecret     string
	JWTAlgorithm  string
	JWTExpiresMin int

	// UploadDir is the legacy on-disk location, kept for serving files
	// uploaded before blob storage was introduced.
	UploadDir    string
	BlobToken    string
	BlobEndpoint string
}

// DBPool holds connection pool limits for the SQL database.
type DBPool struct {
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime string
	ConnMaxIdleTime string
}

// LoadEnv loads variables from a .env file if present.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file found: %v", err)
	}
}

// Load reads the environment into a Config. Call LoadEnv first if a .env
// file should be honored.
func Load() *Config {
	return &Config{
		Port:        GetEnv("PORT", "8000"),
		CORSOrigins: GetEnv("CORS_ORIGINS", "http://localhost:5173,http://localhost:5174"),

		DatabaseURL: GetEnv("DATABASE_URL", "host=localhost user=postgres password=postgres dbname=standsreg port=5432 sslmode=disable"),
		DB: DBPool{
			MaxIdleConns:    GetIntEnv("DB_MAX_IDLE_CONNS", 10),
			MaxOpenConns:    GetIntEnv("DB_MAX_OPEN_CONNS", 100),
			ConnMaxLifetime: GetEnv("DB_CONN_MAX_LIFETIME", "1h"),
			ConnMaxIdleTime: GetEnv("DB_CONN_MAX_IDLE_TIME", "30m"),
		},

		RedisHost:     GetEnv("REDIS_HOST", "localhost"),
		RedisPort:     GetEnv("REDIS_PORT", "6379"),
		RedisPassword: GetEnv("REDIS_PASSWORD", ""),
		RedisDB:       GetIntEnv("REDIS_DB", 0),

		JWTSecret:     GetEnv("JWT_SECRET", "change-me"),
		JWTAlgorithm:  GetEnv("JWT_ALGORITHM", "HS256"),
		JWTExpiresMin: GetIntEnv("JWT_EXPIRES_MIN", 60),

		UploadDir:    GetEnv("UPLOAD_DIR", "./uploads"),
		BlobToken:    GetEnv("BLOB_READ_WRITE_TOKEN", ""),
		BlobEndpoint: GetEnv("BLOB_API_URL", "https://blob.vercel-storage.com/upload"),
	}
}

// GetEnv returns an environment variable or a default value.
func GetEnv(key, defaultVal string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return defaultVal
}

// GetIntEnv returns an int environment variable or a default value.
func GetIntEnv(key string, defaultVal int) int {
	if val, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

// IsProduction checks if the app runs in production mode.
func IsProduction() bool {
	return GetEnv("ENV", "development") == "production"
}
