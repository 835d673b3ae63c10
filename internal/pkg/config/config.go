package config

import (
	"context"
	"fmt"
	"time"
	_ "time/tzdata"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET, required"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	Datastore DatastoreConfig
	Mongo     MongoConfig
	Redis     RedisConfig
	Notify    NotifyConfig
	AMQP      AMQPConfig
	Booking   BookingConfig
	Auth      AuthConfig
}

// Datastore drivers.
const (
	DriverREST  = "rest"
	DriverMongo = "mongo"
)

type DatastoreConfig struct {
	Driver      string        `env:"DATASTORE_DRIVER,       default=rest"`
	URL         string        `env:"DATASTORE_URL,          default=http://localhost:5000"`
	Timeout     time.Duration `env:"DATASTORE_TIMEOUT,      default=10s"`
	ReadRetries int           `env:"DATASTORE_READ_RETRIES, default=2"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=booking_portal"`
}

// RedisConfig configures notification dedup. An empty Addr disables it.
type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// NotifyConfig points at the email relay. An empty URL disables confirmation
// emails.
type NotifyConfig struct {
	URL     string        `env:"NOTIFY_URL,     default=http://localhost:5000"`
	Timeout time.Duration `env:"NOTIFY_TIMEOUT, default=10s"`
}

// AMQPConfig enables booking.confirmed events when URL is set.
type AMQPConfig struct {
	URL      string `env:"AMQP_URL"`
	Exchange string `env:"AMQP_EXCHANGE, default=booking.events"`
}

type BookingConfig struct {
	Timezone      string        `env:"BOOKING_TIMEZONE,       default=Local"`
	RedirectPath  string        `env:"BOOKING_REDIRECT_PATH,  default=/pcaccess"`
	RedirectDelay time.Duration `env:"BOOKING_REDIRECT_DELAY, default=2s"`
	HookWorkers   int           `env:"HOOK_WORKERS,           default=4"`
}

type AuthConfig struct {
	LocalEnabled bool          `env:"AUTH_LOCAL_ENABLED, default=true"`
	LoginURL     string        `env:"LOGIN_URL,          default=/login"`
	TokenTTL     time.Duration `env:"AUTH_TOKEN_TTL,     default=24h"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	cfg, err := LoadWith(context.Background(), envconfig.OsLookuper())
	if err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return cfg
}

// LoadWith reads configuration through l and validates it.
func LoadWith(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Location resolves BOOKING_TIMEZONE.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Booking.Timezone)
	if err != nil {
		return nil, fmt.Errorf("config: BOOKING_TIMEZONE: %w", err)
	}
	return loc, nil
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c *Config) validate() error {
	switch c.Datastore.Driver {
	case DriverREST, DriverMongo:
	default:
		return fmt.Errorf("config: DATASTORE_DRIVER %q: want %q or %q", c.Datastore.Driver, DriverREST, DriverMongo)
	}
	if c.Booking.HookWorkers <= 0 {
		return fmt.Errorf("config: HOOK_WORKERS must be positive, got %d", c.Booking.HookWorkers)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}
