package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

const defaultJWTSecret = "your-secret-key-change-in-production"

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// JWT configuration for the admin API
	JWTSecret      string `mapstructure:"JWT_SECRET"`
	APITokenTTLMin int    `mapstructure:"API_TOKEN_TTL_MIN"`

	// Telegram configuration
	TelegramBotToken    string `mapstructure:"TELEGRAM_BOT_TOKEN"`
	TelegramAPIEndpoint string `mapstructure:"TELEGRAM_API_ENDPOINT"`
	OwnerUserID         int64  `mapstructure:"OWNER_USER_ID"`
	PollTimeoutSec      int    `mapstructure:"POLL_TIMEOUT_SEC"`

	// Dispatch configuration
	DispatchWorkers     int     `mapstructure:"DISPATCH_WORKERS"`
	MaxConcurrentEvents int     `mapstructure:"MAX_CONCURRENT_EVENTS"`
	PlatformRatePerSec  float64 `mapstructure:"PLATFORM_RATE_PER_SEC"`
	PlatformBurst       int     `mapstructure:"PLATFORM_BURST"`
	PlatformTimeoutSec  int     `mapstructure:"PLATFORM_TIMEOUT_SEC"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	setDefaults(v)

	// Read config file if it exists
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("PORT", "7008")
	v.SetDefault("LOG_LEVEL", "info")

	// Database defaults
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "channel_relay")
	v.SetDefault("DB_SSL_MODE", "disable")

	// JWT defaults
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("API_TOKEN_TTL_MIN", 60)

	// Telegram defaults
	v.SetDefault("TELEGRAM_BOT_TOKEN", "")
	v.SetDefault("TELEGRAM_API_ENDPOINT", "")
	v.SetDefault("OWNER_USER_ID", 0)
	v.SetDefault("POLL_TIMEOUT_SEC", 60)

	// Dispatch defaults. Telegram allows roughly 30 messages per second per bot.
	v.SetDefault("DISPATCH_WORKERS", 8)
	v.SetDefault("MAX_CONCURRENT_EVENTS", 32)
	v.SetDefault("PLATFORM_RATE_PER_SEC", 25.0)
	v.SetDefault("PLATFORM_BURST", 5)
	v.SetDefault("PLATFORM_TIMEOUT_SEC", 10)
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func validate(config *Config) error {
	if config.Environment == "production" {
		if config.JWTSecret == defaultJWTSecret {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
	}

	if config.DatabaseName == "" {
		return fmt.Errorf("database name is required")
	}

	if config.Environment != "test" {
		if config.TelegramBotToken == "" {
			return fmt.Errorf("TELEGRAM_BOT_TOKEN is required")
		}
		if config.OwnerUserID == 0 {
			return fmt.Errorf("OWNER_USER_ID is required")
		}
	}

	if config.DispatchWorkers <= 0 {
		return fmt.Errorf("DISPATCH_WORKERS must be positive")
	}
	if config.MaxConcurrentEvents <= 0 {
		return fmt.Errorf("MAX_CONCURRENT_EVENTS must be positive")
	}
	if config.PlatformRatePerSec <= 0 || config.PlatformBurst <= 0 {
		return fmt.Errorf("PLATFORM_RATE_PER_SEC and PLATFORM_BURST must be positive")
	}

	return nil
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// PollTimeout is the long-polling timeout for inbound updates
func (c *Config) PollTimeout() time.Duration {
	return time.Duration(c.PollTimeoutSec) * time.Second
}

// PlatformTimeout bounds a single platform API call
func (c *Config) PlatformTimeout() time.Duration {
	return time.Duration(c.PlatformTimeoutSec) * time.Second
}

// APITokenTTL is the lifetime of tokens minted for the admin API
func (c *Config) APITokenTTL() time.Duration {
	return time.Duration(c.APITokenTTLMin) * time.Minute
}
