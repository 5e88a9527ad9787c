package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	// EnvPrefix is intentionally empty; every field carries its full
	// SAREECENTER_* variable name in its tag.
	EnvPrefix = ""

	AppEnvDev  = "development"
	AppEnvProd = "production"

	EnvAppEnv    = "SAREECENTER_APP_ENV"
	EnvDBDriver  = "SAREECENTER_DB_DRIVER"
	EnvDBDSN     = "SAREECENTER_DB_DSN"
	EnvRedisURL  = "SAREECENTER_REDIS_URL"
	EnvStorage   = "SAREECENTER_STORAGE_BACKEND"
	EnvAdminUser = "SAREECENTER_ADMIN_USERNAME"
	EnvAdminPass = "SAREECENTER_ADMIN_PASSWORD"
)

type Config struct {
	App      AppConfig
	Storage  StorageConfig
	DB       DBConfig
	Redis    RedisConfig
	Admin    AdminConfig
	Checkout CheckoutConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Storage.Backend {
	case StorageBackendSQLite, StorageBackendPostgres:
		if c.DB.DSN == "" {
			return fmt.Errorf("%s is required for the %s backend", EnvDBDSN, c.Storage.Backend)
		}
	case StorageBackendRedis:
		if c.Redis.URL == "" && c.Redis.Address == "" {
			return fmt.Errorf("%s is required for the redis backend", EnvRedisURL)
		}
	default:
		return fmt.Errorf("unknown storage backend %q", c.Storage.Backend)
	}
	return nil
}

type AppConfig struct {
	Env          string `envconfig:"SAREECENTER_APP_ENV" default:"development"`
	Port         string `envconfig:"SAREECENTER_APP_PORT" default:"3000"`
	LogLevel     string `envconfig:"SAREECENTER_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"SAREECENTER_LOG_WARN_STACK" default:"false"`

	CORSOrigins []string `envconfig:"SAREECENTER_CORS_ORIGINS" default:"http://localhost:3000"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// Storage backends supported by the persistence gateway.
const (
	StorageBackendSQLite   = "sqlite"
	StorageBackendPostgres = "postgres"
	StorageBackendRedis    = "redis"
)

type StorageConfig struct {
	Backend     string `envconfig:"SAREECENTER_STORAGE_BACKEND" default:"sqlite"`
	AutoMigrate bool   `envconfig:"SAREECENTER_AUTO_MIGRATE" default:"true"`
}

type DBConfig struct {
	// DSN is the sqlite file path (or file::memory:) for the sqlite driver
	// and a postgres connection string for the postgres driver.
	DSN    string `envconfig:"SAREECENTER_DB_DSN" default:"sareecenter.db"`
	Driver string `envconfig:"SAREECENTER_DB_DRIVER" default:"sqlite"`

	MaxOpenConns    int           `envconfig:"SAREECENTER_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"SAREECENTER_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"SAREECENTER_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"SAREECENTER_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"SAREECENTER_REDIS_URL"`
	Address      string        `envconfig:"SAREECENTER_REDIS_ADDR"`
	Password     string        `envconfig:"SAREECENTER_REDIS_PASSWORD"`
	DB           int           `envconfig:"SAREECENTER_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"SAREECENTER_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"SAREECENTER_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"SAREECENTER_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"SAREECENTER_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"SAREECENTER_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// AdminConfig carries the credentials for the admin panel gate. There is a
// single admin identity and no session model; every admin request re-checks
// the credentials. PasswordHash, when set, takes precedence over Password
// and must be a bcrypt hash.
type AdminConfig struct {
	Username     string `envconfig:"SAREECENTER_ADMIN_USERNAME" default:"admin"`
	Password     string `envconfig:"SAREECENTER_ADMIN_PASSWORD" default:"admin123"`
	PasswordHash string `envconfig:"SAREECENTER_ADMIN_PASSWORD_HASH"`
}

type CheckoutConfig struct {
	// RevalidatePrices controls whether checkout refreshes cart line prices
	// from the catalog before totaling. The default keeps the snapshot
	// taken at add-to-cart time.
	RevalidatePrices bool `envconfig:"SAREECENTER_CHECKOUT_REVALIDATE_PRICES" default:"false"`
}
