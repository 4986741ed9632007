package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Supported values for STORE_DRIVER.
const (
	DriverMongoDB  = "mongodb"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Config holds the runtime settings of the service.
type Config struct {
	AppPort        string
	StoreDriver    string
	MongoURI       string
	DatabaseName   string
	DatabaseDSN    string
	RabbitMQURL    string // Empty disables event publishing
	LogEvents      bool   // Consume and log published events; for local debugging only
	RequestTimeout time.Duration
	ConnectTimeout time.Duration
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", ":8080")
	v.SetDefault("STORE_DRIVER", DriverMongoDB)
	v.SetDefault("MONGODB_URI", "mongodb://localhost:27017")
	v.SetDefault("DATABASE_NAME", "messages")
	v.SetDefault("DATABASE_DSN", "file:messages.db?cache=shared")
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("RABBITMQ_LOG_EVENTS", false)
	v.SetDefault("REQUEST_TIMEOUT", "10s")
	v.SetDefault("CONNECT_TIMEOUT", "10s")
}

// Load reads an optional .env file into the process environment and then
// builds a Config from v, which should have AutomaticEnv enabled.
func Load(v *viper.Viper, envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load env file: %w", err)
	}

	SetDefaults(v)
	v.AutomaticEnv()

	cfg := &Config{
		AppPort:        v.GetString("APP_PORT"),
		StoreDriver:    v.GetString("STORE_DRIVER"),
		MongoURI:       v.GetString("MONGODB_URI"),
		DatabaseName:   v.GetString("DATABASE_NAME"),
		DatabaseDSN:    v.GetString("DATABASE_DSN"),
		RabbitMQURL:    v.GetString("RABBITMQ_URL"),
		LogEvents:      v.GetBool("RABBITMQ_LOG_EVENTS"),
		RequestTimeout: v.GetDuration("REQUEST_TIMEOUT"),
		ConnectTimeout: v.GetDuration("CONNECT_TIMEOUT"),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration can be used to start the service.
func (c *Config) Validate() error {
	switch c.StoreDriver {
	case DriverMongoDB:
		if c.MongoURI == "" {
			return fmt.Errorf("MONGODB_URI is required for the %s driver", c.StoreDriver)
		}
		if c.DatabaseName == "" {
			return fmt.Errorf("DATABASE_NAME is required for the %s driver", c.StoreDriver)
		}
	case DriverSQLite, DriverPostgres:
		if c.DatabaseDSN == "" {
			return fmt.Errorf("DATABASE_DSN is required for the %s driver", c.StoreDriver)
		}
	case DriverMemory:
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.StoreDriver)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("REQUEST_TIMEOUT must be positive, got %s", c.RequestTimeout)
	}
	if c.ConnectTimeout <= 0 {
		return fmt.Errorf("CONNECT_TIMEOUT must be positive, got %s", c.ConnectTimeout)
	}
	return nil
}
