package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
	httpapi "github.com/tastyhub/dashboard-manager/internal/api/http"
	"github.com/tastyhub/dashboard-manager/internal/apisrv/auth"
	"github.com/tastyhub/dashboard-manager/internal/cache"
	"github.com/tastyhub/dashboard-manager/internal/dashboard"
	"github.com/tastyhub/dashboard-manager/internal/events"
	"github.com/tastyhub/dashboard-manager/internal/store"
	"github.com/tastyhub/dashboard-manager/internal/warmup"
	"github.com/tastyhub/dashboard-manager/log"
)

const (
	StorageMySQL  = "mysql"
	StorageMemory = "memory"
)

// StorageConfig selects the repository backing the dashboard.
// Seed fills a memory store with demo data on start.
type StorageConfig struct {
	Type string `mapstructure:"type"`
	Seed bool   `mapstructure:"seed"`
}

// Config represents the global configuration for the service.
type Config struct {
	Storage   StorageConfig    `mapstructure:"storage"`
	DB        store.Config     `mapstructure:"mysql"`
	Logger    log.Config       `mapstructure:"logger"`
	HTTP      httpapi.Config   `mapstructure:"http"`
	Auth      auth.Config      `mapstructure:"auth"`
	Dashboard dashboard.Config `mapstructure:"dashboard"`
	Redis     cache.Config     `mapstructure:"redis"`
	NATS      events.Config    `mapstructure:"nats"`
	Warmup    warmup.Config    `mapstructure:"warmup"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("storage.type", StorageMySQL)
	v.SetDefault("http.port", "8081")
	v.SetDefault("http.request_timeout", "30s")
	v.SetDefault("http.rate_window", "1m")
	v.SetDefault("auth.jwt_ttl", "24h")
	v.SetDefault("dashboard.timezone", "UTC")
	v.SetDefault("redis.ttl", "1m")
	v.SetDefault("nats.subject", events.DefaultSubject)
	dw := warmup.DefaultConfig()
	v.SetDefault("warmup.worker_interval", dw.WorkerInterval.String())
	v.SetDefault("warmup.periods", dw.Periods)
}

// LoadConfig loads the configuration from a file and/or environment variables.
// Environment variables take precedence over config file values. A .env file
// in the working directory is loaded first unless APP_ENV is production.
func LoadConfig(cfgFile string) (*Config, error) {
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.AutomaticEnv()
	// mysql.dsn -> MYSQL__DSN
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "__", "-", "__"))
	setDefaults(v)
	bindEnvVars(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config file: %v", err)
			}
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath("./config")
		v.AddConfigPath("$HOME/config/dashboard-manager")
		v.AddConfigPath("/etc/dashboard-manager")
		if err := v.ReadInConfig(); err != nil {
			var nf viper.ConfigFileNotFoundError
			if !errors.As(err, &nf) {
				return nil, fmt.Errorf("failed to read config file: %v", err)
			}
		}
	}

	var config Config
	err := v.Unmarshal(&config, viper.DecoderConfigOption(func(dc *mapstructure.DecoderConfig) {
		dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		)
	}))
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal config into struct: %v", err)
	}

	if config.DB.DSN == "" {
		config.DB.DSN = dsnFromEnv()
	}

	if err := config.validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) validate() error {
	c.Storage.Type = strings.ToLower(strings.TrimSpace(c.Storage.Type))
	switch c.Storage.Type {
	case StorageMemory:
	case StorageMySQL:
		if c.DB.DSN == "" {
			return fmt.Errorf("mysql storage requires mysql.dsn")
		}
		if c.Storage.Seed {
			return fmt.Errorf("storage.seed is only supported with memory storage, use the seed command")
		}
	default:
		return fmt.Errorf("unknown storage type %q", c.Storage.Type)
	}
	return nil
}

// RequirePersistent fails when the configured storage does not outlive the
// process. op names the command for the error message.
func (c *Config) RequirePersistent(op string) error {
	if c.Storage.Type != StorageMySQL {
		return fmt.Errorf("%s needs mysql storage, got %q", op, c.Storage.Type)
	}
	return nil
}

// dsnFromEnv builds a DSN from MYSQL_HOST, MYSQL_PORT, MYSQL_USER,
// MYSQL_PASSWORD and MYSQL_DATABASE. Empty when any required part is missing.
func dsnFromEnv() string {
	host := os.Getenv("MYSQL_HOST")
	user := os.Getenv("MYSQL_USER")
	password := os.Getenv("MYSQL_PASSWORD")
	database := os.Getenv("MYSQL_DATABASE")
	if host == "" || user == "" || database == "" {
		return ""
	}
	port := os.Getenv("MYSQL_PORT")
	if port == "" {
		port = "3306"
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true",
		user, password, host, port, database)
}

// bindEnvVars binds flat environment variable names to config keys
// in addition to the nested form (MYSQL__DSN).
func bindEnvVars(v *viper.Viper) {
	// Storage
	v.BindEnv("storage.type", "STORAGE_TYPE")
	v.BindEnv("storage.seed", "STORAGE_SEED")

	// MySQL
	v.BindEnv("mysql.dsn", "MYSQL_DSN")
	v.BindEnv("mysql.automigrate", "MYSQL_AUTOMIGRATE")
	v.BindEnv("mysql.max_open_connections", "MYSQL_MAX_OPEN_CONNECTIONS")
	v.BindEnv("mysql.max_idle_connections", "MYSQL_MAX_IDLE_CONNECTIONS")
	v.BindEnv("mysql.tls_ca_path", "MYSQL_TLS_CA_PATH")

	// Logger
	v.BindEnv("logger.level", "LOG_LEVEL")
	v.BindEnv("logger.add_source", "LOG_ADD_SOURCE")

	// HTTP
	v.BindEnv("http.port", "HTTP_PORT")
	v.BindEnv("http.address", "HTTP_ADDRESS")
	v.BindEnv("http.allowed_origins", "HTTP_ALLOWED_ORIGINS")
	v.BindEnv("http.request_timeout", "HTTP_REQUEST_TIMEOUT")
	v.BindEnv("http.rate_limit", "HTTP_RATE_LIMIT")
	v.BindEnv("http.rate_window", "HTTP_RATE_WINDOW")

	// Auth
	v.BindEnv("auth.jwt_secret", "AUTH_JWT_SECRET")
	v.BindEnv("auth.jwt_ttl", "AUTH_JWT_TTL")

	// Dashboard
	v.BindEnv("dashboard.timezone", "DASHBOARD_TIMEZONE")

	// Redis
	v.BindEnv("redis.addr", "REDIS_ADDR")
	v.BindEnv("redis.password", "REDIS_PASSWORD")
	v.BindEnv("redis.db", "REDIS_DB")
	v.BindEnv("redis.ttl", "REDIS_TTL")

	// NATS
	v.BindEnv("nats.url", "NATS_URL")
	v.BindEnv("nats.subject", "NATS_SUBJECT")

	// Warm-up worker
	v.BindEnv("warmup.worker_interval", "WARMUP_WORKER_INTERVAL")
	v.BindEnv("warmup.periods", "WARMUP_PERIODS")
}
