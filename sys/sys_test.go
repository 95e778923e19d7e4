package sys

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLoadDefaults(t *testing.T) {
	c := Load(zap.NewNop().Sugar())

	assert.Equal(t, "5000", c.Http.Port)
	assert.Equal(t, []string{"127.0.0.1", "::1"}, c.Http.TrustedProxies)
	assert.Equal(t, "http://localhost:5173", c.Cors.AllowedOrigin)
	assert.True(t, c.RateLimit.Enabled)
	assert.Equal(t, 100, c.RateLimit.Requests)
	assert.Equal(t, time.Minute, c.RateLimit.Window)
	assert.Equal(t, "localhost:5000", c.Swagger.Host)
	assert.Equal(t, "mongodb://localhost:27017", c.Database.ConnectionURL)
	assert.Empty(t, c.Cache.ConnectionURL)
	assert.False(t, c.NewRelic.Enabled)
	assert.Equal(t, "http://localhost:5000", c.Web.ApiURL)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "8081")
	t.Setenv("RATE_LIMIT_REQUESTS", "5")
	t.Setenv("RATE_LIMIT_ENABLED", "false")
	t.Setenv("DATABASE_CONNECTION_URL", "memory://")
	t.Setenv("HTTP_TRUSTED_PROXIES", "10.0.0.9")

	c := Load(zap.NewNop().Sugar())

	assert.Equal(t, "8081", c.Http.Port)
	assert.Equal(t, "localhost:8081", c.Swagger.Host)
	assert.Equal(t, 5, c.RateLimit.Requests)
	assert.False(t, c.RateLimit.Enabled)
	assert.Equal(t, "memory://", c.Database.ConnectionURL)
	assert.Equal(t, []string{"10.0.0.9"}, c.Http.TrustedProxies)
}

func TestBootstrapEnvFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(file, []byte("NOTES_SYS_TEST_PORT=9999\n"), 0o600))
	t.Setenv("CONFIG_ENV_FILE", file)
	t.Setenv("CONFIG_SSM_PATH", "")
	t.Cleanup(func() { _ = os.Unsetenv("NOTES_SYS_TEST_PORT") })

	require.NoError(t, Bootstrap(context.Background(), zap.NewNop().Sugar()))
	assert.Equal(t, "9999", os.Getenv("NOTES_SYS_TEST_PORT"))
}
