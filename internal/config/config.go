package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Env        string
	ServerPort string
	JWTSecret  string

	// API clínica remota (fuente autoritativa de datos)
	BackendURL   string
	BackendToken string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	ListCacheTTL time.Duration
}

func Load() *Config {
	return &Config{
		Env:        getEnv("APP_ENV", "development"),
		ServerPort: getEnv("SERVER_PORT", "8080"),
		JWTSecret:  getEnv("JWT_SECRET", "changeme"),

		BackendURL:   getEnv("CLINIC_API_URL", "http://localhost:9000"),
		BackendToken: getEnv("CLINIC_API_TOKEN", ""),

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),

		ListCacheTTL: time.Duration(getEnvInt("LIST_CACHE_TTL_SECONDS", 60)) * time.Second,
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
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
