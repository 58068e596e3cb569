package config

import (
	"os"
	"strconv"
	"strings"
)

type AppConfig struct {
	// Server
	HTTPAddr string

	// Backend the gateway forwards to
	BackendURL string

	// Session store (written by the identity provider, read here)
	RedisAddrs    []string
	RedisPass     string
	RedisDB       int
	RedisCluster  bool
	SessionCookie string

	// CORS
	CORSAllowOrigins []string
}

// Load loads environment variables into AppConfig.
func Load() AppConfig {
	return AppConfig{
		HTTPAddr: getEnv("HTTP_ADDR", ":3000"),

		BackendURL: getEnv("BACKEND_URL", "http://localhost:8080"),

		RedisAddrs:    getEnvSlice("REDIS_ADDR", []string{"localhost:6379"}),
		RedisPass:     getEnv("REDIS_PASS", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),
		RedisCluster:  getEnvBool("REDIS_CLUSTER", false),
		SessionCookie: getEnv("SESSION_COOKIE", "app_session"),

		CORSAllowOrigins: getEnvSlice("CORS_ALLOW_ORIGINS", []string{"http://localhost:3000"}),
	}
}

// --- Helper functions ---

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvSlice(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		return strings.Split(value, ",")
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if v := os.Getenv(key); v != "" {
		return strings.ToLower(v) == "true"
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return defaultValue
}
