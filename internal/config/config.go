package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort string
	MySQLDSN   string
	RedisAddr  string
	RedisDB    int
	RedisPass  string
	JWTSecret  string

	// AdminSignupCodes gates the admin role at signup. It is a secret loaded
	// from the environment, never a compiled-in literal.
	AdminSignupCodes []string

	// Outbound email (reminder notifications). Email sending is disabled when
	// SESFromEmail is empty.
	AWSRegion    string
	SESFromEmail string
	SESFromName  string

	SwaggerHost string
}

// Load builds Config from environment with sensible defaults. A .env file in
// the working directory is applied first if present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort:       getEnv("SERVER_PORT", "8080"),
		MySQLDSN:         getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/careconnect?charset=utf8mb4&parseTime=True&loc=Local"),
		RedisAddr:        getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:          getEnvInt("REDIS_DB", 0),
		RedisPass:        os.Getenv("REDIS_PASSWORD"),
		JWTSecret:        getEnv("JWT_SECRET", "change-me"),
		AdminSignupCodes: getEnvList("ADMIN_SIGNUP_CODES"),
		AWSRegion:        getEnv("AWS_REGION", "us-east-1"),
		SESFromEmail:     os.Getenv("SES_FROM_EMAIL"),
		SESFromName:      getEnv("SES_FROM_NAME", "CareConnect"),
		SwaggerHost:      os.Getenv("SWAGGER_HOST"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvList(key string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
