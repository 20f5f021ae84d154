// Package config reads process settings from the environment, after loading
// an optional .env file.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/ukydev/premier-motors/internal/models"
)

// Config holds all configuration values.
type Config struct {
	Host string
	Port string

	JWTSecret string
	JWTExpiry time.Duration

	MongoURI string
	MongoDB  string

	PrefsFile   string
	SystemTheme models.Theme

	LogLevel  string
	LogFormat string

	SeedDemo bool

	RateLimitRequests int
	RateLimitWindow   int // seconds
	TrustProxyHeaders bool
}

// Load reads .env files (missing files are ignored) and then the environment.
func Load(files ...string) Config {
	_ = godotenv.Load(files...)
	return FromEnv()
}

// FromEnv builds a Config from environment variables with defaults.
func FromEnv() Config {
	return Config{
		Host:              getEnv("HOST", "127.0.0.1"),
		Port:              getEnv("PORT", "8080"),
		JWTSecret:         getEnv("JWT_SECRET", "default-secret-key-change-in-production"),
		JWTExpiry:         getDuration("JWT_EXPIRY", 24*time.Hour),
		MongoURI:          os.Getenv("MONGO_URI"),
		MongoDB:           getEnv("MONGO_DB", "premier_motors"),
		PrefsFile:         getEnv("PREFS_FILE", "premier-motors-prefs.json"),
		SystemTheme:       models.Theme(strings.ToLower(os.Getenv("SYSTEM_THEME"))),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		LogFormat:         getEnv("LOG_FORMAT", "text"),
		SeedDemo:          getBool("SEED_DEMO", true),
		RateLimitRequests: getInt("RATE_LIMIT_REQUESTS", 120),
		RateLimitWindow:   getInt("RATE_LIMIT_WINDOW_SECONDS", 60),
		TrustProxyHeaders: getBool("TRUST_PROXY_HEADERS", false),
	}
}

// Addr is the listen address.
func (c Config) Addr() string {
	return c.Host + ":" + c.Port
}

// NewLogger builds the process logger. Unknown levels fall back to info.
func NewLogger(c Config) *logrus.Logger {
	logger := logrus.New()
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)
	if strings.EqualFold(c.LogFormat, "json") {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return logger
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func getDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
