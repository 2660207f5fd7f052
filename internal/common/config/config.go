package config

import (
	"fmt"
	"time"
)

// Config is the main application configuration struct.
type Config struct {
	App           AppConfig          `mapstructure:"app"`
	Logging       LoggingConfig      `mapstructure:"logging"`
	Latency       LatencyConfig      `mapstructure:"latency"`
	Session       SessionConfig      `mapstructure:"session"`
	Notifications NotificationConfig `mapstructure:"notifications"`
	Metrics       MetricsConfig      `mapstructure:"metrics"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Environment string `mapstructure:"environment"`
	Demo        bool   `mapstructure:"demo"` // run the seeded walkthrough at startup
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// LatencyConfig controls the simulated network delay applied before each
// mutation. Zero disables the pause entirely.
type LatencyConfig struct {
	Delay time.Duration `mapstructure:"delay"`
}

type SessionConfig struct {
	Backend string      `mapstructure:"backend"` // "redis" or "memory"
	Key     string      `mapstructure:"key"`
	Redis   RedisConfig `mapstructure:"redis"`
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type NotificationConfig struct {
	SNS SNSConfig `mapstructure:"sns"`
}

type SNSConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Region   string `mapstructure:"region"`
	TopicARN string `mapstructure:"topic_arn"`
}

type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Address string `mapstructure:"address"`
}

func validateConfig(cfg *Config) error {
	switch cfg.Session.Backend {
	case "redis":
		if cfg.Session.Redis.Address == "" {
			return fmt.Errorf("session.redis.address required for redis backend")
		}
	case "memory":
	default:
		return fmt.Errorf("unknown session backend %q", cfg.Session.Backend)
	}
	if cfg.Session.Key == "" {
		return fmt.Errorf("session.key must not be empty")
	}
	if cfg.Notifications.SNS.Enabled && cfg.Notifications.SNS.TopicARN == "" {
		return fmt.Errorf("notifications.sns.topic_arn required when sns is enabled")
	}
	return nil
}

func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "gigmatch"
	}
	if cfg.App.Environment == "" {
		cfg.App.Environment = "development"
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "console"
	}
	if cfg.Session.Backend == "" {
		cfg.Session.Backend = "memory"
	}
	if cfg.Session.Key == "" {
		cfg.Session.Key = "gigmatch:session"
	}
	if cfg.Metrics.Address == "" {
		cfg.Metrics.Address = ":9102"
	}
}
