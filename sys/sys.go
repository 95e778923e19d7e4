package sys

import (
	"context"
	"fmt"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/ribgsilva/notes/platform/env"
	"go.uber.org/zap"
	"os"
	"time"
)

// Config contains all the configs gathered from env vars
type Config struct {
	Http struct {
		Port            string
		ShutdownTimeout time.Duration
		ReadTimeout     time.Duration
		WriteTimeout    time.Duration
		IdleTimeout     time.Duration
		TrustedProxies  []string
	}
	Cors struct {
		AllowedOrigin string
	}
	RateLimit struct {
		Enabled  bool
		Requests int
		Window   time.Duration
	}
	Swagger struct {
		Protocol string
		Host     string
	}
	Database struct {
		ConnectionURL    string
		Name             string
		PingTimeout      time.Duration
		OperationTimeout time.Duration
	}
	Cache struct {
		ConnectionURL    string
		User             string
		Pass             string
		PingTimeout      time.Duration
		OperationTimeout time.Duration
		CacheTTL         time.Duration
	}
	Messaging struct {
		QueueURL        string
		MaxWorkers      int
		WaitTime        time.Duration
		ShutdownTimeout time.Duration
	}
	NewRelic struct {
		AppName           string
		Licence           string
		Enabled           bool
		ConnectionTimeout time.Duration
		ShutdownTimeout   time.Duration
	}
	Web struct {
		Port       string
		ApiURL     string
		ApiTimeout time.Duration
	}
}

// Bootstrap exports the optional .env file and, when CONFIG_SSM_PATH is set, every parameter under that SSM path.
// It must run before Load.
func Bootstrap(ctx context.Context, log *zap.SugaredLogger) error {
	if err := env.LoadFile(log, env.OrDefault(log, "CONFIG_ENV_FILE", ".env")); err != nil {
		return err
	}

	path := os.Getenv("CONFIG_SSM_PATH")
	if path == "" {
		return nil
	}
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return fmt.Errorf("loading aws config: %w", err)
	}
	if _, err := env.ExportSSM(ctx, log, ssm.NewFromConfig(cfg), path); err != nil {
		return err
	}
	return nil
}

// Load reads the process config from env vars, falling back to defaults
func Load(log *zap.SugaredLogger) Config {
	var c Config
	c.Http.Port = env.OrDefault(log, "HTTP_PORT", "5000")
	c.Http.ReadTimeout = env.DurationDefault(log, "HTTP_READ_TIMEOUT", "5s")
	c.Http.IdleTimeout = env.DurationDefault(log, "HTTP_IDLE_TIMEOUT", "120s")
	c.Http.WriteTimeout = env.DurationDefault(log, "HTTP_WRITE_TIMEOUT", "10s")
	c.Http.ShutdownTimeout = env.DurationDefault(log, "HTTP_SHUTDOWN_TIMEOUT", "60s")
	c.Http.TrustedProxies = env.ListDefault(log, "HTTP_TRUSTED_PROXIES", "127.0.0.1,::1")
	c.Cors.AllowedOrigin = env.OrDefault(log, "CORS_ALLOWED_ORIGIN", "http://localhost:5173")
	c.RateLimit.Enabled = env.BoolDefault(log, "RATE_LIMIT_ENABLED", "t")
	c.RateLimit.Requests = env.IntDefault(log, "RATE_LIMIT_REQUESTS", "100")
	c.RateLimit.Window = env.DurationDefault(log, "RATE_LIMIT_WINDOW", "1m")
	c.Swagger.Protocol = env.OrDefault(log, "SWAGGER_PROTOCOL", "http")
	c.Swagger.Host = env.OrDefault(log, "SWAGGER_HOST", "localhost:"+c.Http.Port)
	c.Database.ConnectionURL = env.OrDefault(log, "DATABASE_CONNECTION_URL", "mongodb://localhost:27017")
	c.Database.Name = env.OrDefault(log, "DATABASE_NAME", "notes")
	c.Database.PingTimeout = env.DurationDefault(log, "DATABASE_PING_TIMEOUT", "2s")
	c.Database.OperationTimeout = env.DurationDefault(log, "DATABASE_OPERATION_TIMEOUT", "5s")
	c.Cache.ConnectionURL = env.OrDefault(log, "CACHE_CONNECTION_URL", "")
	c.Cache.User = env.OrDefault(log, "CACHE_USER", "")
	c.Cache.Pass = env.OrDefault(log, "CACHE_PASS", "")
	c.Cache.PingTimeout = env.DurationDefault(log, "CACHE_PING_TIMEOUT", "2s")
	c.Cache.OperationTimeout = env.DurationDefault(log, "CACHE_OPERATION_TIMEOUT", "1s")
	c.Cache.CacheTTL = env.DurationDefault(log, "CACHE_CACHE_TTL", "24h")
	c.Messaging.MaxWorkers = env.IntDefault(log, "MESSAGING_MAX_WORKERS", "10")
	c.Messaging.WaitTime = env.DurationDefault(log, "MESSAGING_WAIT_TIME", "10s")
	c.Messaging.ShutdownTimeout = env.DurationDefault(log, "MESSAGING_SHUTDOWN_TIMEOUT", "30s")
	c.NewRelic.AppName = env.OrDefault(log, "NEW_RELIC_APP_NAME", "notes-api")
	c.NewRelic.Licence = env.OrDefault(log, "NEW_RELIC_LICENCE", "")
	c.NewRelic.Enabled = env.BoolDefault(log, "NEW_RELIC_ENABLED", "f")
	c.NewRelic.ConnectionTimeout = env.DurationDefault(log, "NEW_RELIC_CONNECTION_TIMEOUT", "10s")
	c.NewRelic.ShutdownTimeout = env.DurationDefault(log, "NEW_RELIC_SHUTDOWN_TIMEOUT", "10s")
	c.Web.Port = env.OrDefault(log, "WEB_PORT", "5173")
	c.Web.ApiURL = env.OrDefault(log, "API_URL", "http://localhost:5000")
	c.Web.ApiTimeout = env.DurationDefault(log, "API_TIMEOUT", "10s")
	return c
}
