package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukydev/premier-motors/internal/models"
)

var keys = []string{
	"HOST", "PORT", "JWT_SECRET", "JWT_EXPIRY", "MONGO_URI", "MONGO_DB", "PREFS_FILE",
	"SYSTEM_THEME", "LOG_LEVEL", "LOG_FORMAT", "SEED_DEMO", "RATE_LIMIT_REQUESTS",
	"RATE_LIMIT_WINDOW_SECONDS", "TRUST_PROXY_HEADERS",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)
	cfg := FromEnv()

	assert.Equal(t, "127.0.0.1:8080", cfg.Addr())
	assert.NotEmpty(t, cfg.JWTSecret)
	assert.Equal(t, 24*time.Hour, cfg.JWTExpiry)
	assert.Empty(t, cfg.MongoURI)
	assert.Equal(t, "premier_motors", cfg.MongoDB)
	assert.Equal(t, "premier-motors-prefs.json", cfg.PrefsFile)
	assert.Equal(t, models.Theme(""), cfg.SystemTheme)
	assert.True(t, cfg.SeedDemo)
	assert.Equal(t, 120, cfg.RateLimitRequests)
	assert.Equal(t, 60, cfg.RateLimitWindow)
	assert.False(t, cfg.TrustProxyHeaders)
}

func TestFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("HOST", "0.0.0.0")
	t.Setenv("PORT", "9090")
	t.Setenv("JWT_EXPIRY", "2h")
	t.Setenv("SYSTEM_THEME", "DARK")
	t.Setenv("SEED_DEMO", "false")
	t.Setenv("RATE_LIMIT_REQUESTS", "5")
	t.Setenv("TRUST_PROXY_HEADERS", "true")

	cfg := FromEnv()
	assert.Equal(t, "0.0.0.0:9090", cfg.Addr())
	assert.Equal(t, 2*time.Hour, cfg.JWTExpiry)
	assert.Equal(t, models.ThemeDark, cfg.SystemTheme)
	assert.False(t, cfg.SeedDemo)
	assert.Equal(t, 5, cfg.RateLimitRequests)
	assert.True(t, cfg.TrustProxyHeaders)
}

func TestFromEnv_InvalidValuesUseDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_EXPIRY", "forever")
	t.Setenv("SEED_DEMO", "maybe")
	t.Setenv("RATE_LIMIT_WINDOW_SECONDS", "soon")

	cfg := FromEnv()
	assert.Equal(t, 24*time.Hour, cfg.JWTExpiry)
	assert.True(t, cfg.SeedDemo)
	assert.Equal(t, 60, cfg.RateLimitWindow)
}

func TestLoad_DotEnvFile(t *testing.T) {
	clearEnv(t)
	os.Unsetenv("MONGO_DB")
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("MONGO_DB=from_dotenv\n"), 0o644))

	cfg := Load(path)
	assert.Equal(t, "from_dotenv", cfg.MongoDB)
	os.Unsetenv("MONGO_DB")
}

func TestLoad_MissingFileIgnored(t *testing.T) {
	clearEnv(t)
	cfg := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Equal(t, "8080", cfg.Port)
}

func TestNewLogger(t *testing.T) {
	logger := NewLogger(Config{LogLevel: "debug", LogFormat: "json"})
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)

	logger = NewLogger(Config{LogLevel: "loud"})
	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, logger.Formatter)
}
