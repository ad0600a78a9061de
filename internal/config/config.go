package config

import (
	"time"

	"github.com/spf13/viper"

	"github.com/clubpulse/service-membership/pkg/config"
)

// ServiceConfig holds all configuration for the membership service.
type ServiceConfig struct {
	Port          string
	AppEnv        string
	DBConfig      config.DatabaseConfig
	JWTConfig     config.JWTConfig
	KafkaConfig   config.KafkaConfig
	SweepInterval time.Duration
}

// Load reads configuration from environment variables and returns a
// ServiceConfig.
func Load() (*ServiceConfig, error) {
	v, err := config.Load("membership")
	if err != nil {
		return nil, err
	}

	return &ServiceConfig{
		Port:          config.GetServicePort(v, "SERVICE_PORT"),
		AppEnv:        config.GetAppEnv(v),
		DBConfig:      config.LoadDatabaseConfig(v, "DB_NAME"),
		JWTConfig:     config.LoadJWTConfig(v),
		KafkaConfig:   config.LoadKafkaConfig(v),
		SweepInterval: loadSweepInterval(v),
	}, nil
}

// loadSweepInterval extracts the expiry sweep interval, defaulting to hourly.
func loadSweepInterval(v *viper.Viper) time.Duration {
	interval := v.GetDuration("SWEEP_INTERVAL")
	if interval <= 0 {
		interval = time.Hour
	}
	return interval
}
