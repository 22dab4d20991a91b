package config

import (
	"log"
	"os"
	"strconv"
	"sync"
	"time"
)

type AppConfig struct {
	Name           string
	Env            string
	Port           string
	BaseURL        string
	SessionTTL     time.Duration
	UploadDir      string
	AdminEmail     string
	AdminPassword  string
	AdminName      string
	RateLimitMax   int
	RateLimitEvery time.Duration
}

var (
	appConfig *AppConfig
	appOnce   sync.Once
)

func LoadAppConfig() *AppConfig {
	appOnce.Do(func() {
		env := os.Getenv("APP_ENV")
		if env == "" {
			env = "development"
			log.Printf("Warning: APP_ENV not set, defaulting to %s", env)
		}
		port := os.Getenv("APP_PORT")
		if port == "" {
			port = ":8080"
		}
		uploadDir := os.Getenv("UPLOAD_DIR")
		if uploadDir == "" {
			uploadDir = "./uploads"
		}
		appConfig = &AppConfig{
			Name:           envOr("APP_NAME", "JobNexus"),
			Env:            env,
			Port:           port,
			BaseURL:        os.Getenv("APP_URL"),
			SessionTTL:     envDuration("SESSION_TTL", 24*time.Hour),
			UploadDir:      uploadDir,
			AdminEmail:     os.Getenv("ADMIN_EMAIL"),
			AdminPassword:  os.Getenv("ADMIN_PASSWORD"),
			AdminName:      envOr("ADMIN_NAME", "Administrator"),
			RateLimitMax:   envInt("RATE_LIMIT_MAX", 100),
			RateLimitEvery: envDuration("RATE_LIMIT_WINDOW", time.Minute),
		}
	})
	return appConfig
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("Warning: %s is not a number, defaulting to %d", key, fallback)
		return fallback
	}
	return n
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("Warning: %s is not a duration, defaulting to %s", key, fallback)
		return fallback
	}
	return d
}
