package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App   AppConfig
	WSS   WSSConfig
	Redis RedisConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"STORAGEFRONT_APP_ENV" required:"true"`
	Port         string `envconfig:"STORAGEFRONT_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"STORAGEFRONT_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"STORAGEFRONT_LOG_WARN_STACK" default:"false"`

	// Extra CORS origins on top of the built-in storefront list,
	// comma-separated.
	CORSOrigins []string `envconfig:"STORAGEFRONT_CORS_ORIGINS"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// WSSConfig carries the WebSelfStorage credentials and the deployment's
// location identity. APIKey and LocationID are validated by the WSS client
// constructor rather than here so their absence surfaces as a configuration
// error distinct from env parsing.
type WSSConfig struct {
	BaseURL    string        `envconfig:"STORAGEFRONT_WSS_BASE_URL" default:"https://api.webselfstorage.com/v3"`
	APIKey     string        `envconfig:"STORAGEFRONT_WSS_API_KEY"`
	LocationID string        `envconfig:"STORAGEFRONT_WSS_LOCATION_ID"`
	Timeout    time.Duration `envconfig:"STORAGEFRONT_WSS_TIMEOUT" default:"15s"`

	// Optional hosted move-in portal overrides for the rendered rent links.
	MoveInPortalURL      string `envconfig:"STORAGEFRONT_WSS_MOVE_IN_URL"`
	MoveInPortalTemplate string `envconfig:"STORAGEFRONT_WSS_MOVE_IN_URL_TEMPLATE"`
}

// RedisConfig backs the idempotency middleware. Leaving URL and Address empty
// disables idempotency rather than failing startup; the WSS API remains the
// arbiter of duplicate bookings either way.
type RedisConfig struct {
	URL          string        `envconfig:"STORAGEFRONT_REDIS_URL"`
	Address      string        `envconfig:"STORAGEFRONT_REDIS_ADDR"`
	Password     string        `envconfig:"STORAGEFRONT_REDIS_PASSWORD"`
	DB           int           `envconfig:"STORAGEFRONT_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"STORAGEFRONT_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"STORAGEFRONT_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"STORAGEFRONT_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"STORAGEFRONT_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"STORAGEFRONT_REDIS_WRITE_TIMEOUT" default:"5s"`
}

func (r RedisConfig) Enabled() bool {
	return r.URL != "" || r.Address != ""
}
