package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Environment string
	Host        string `toml:"host"`
	Port        int    `toml:"port"`
	// logging
	LogLevel    string `toml:"log_level"`
	LogsPath    string `toml:"logs_path"`
	LogToStdout bool   `toml:"log_to_stdout"`
	// sentry
	SentryEnabled bool `toml:"sentry_enabled"`
	// postgres
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresDBName string `toml:"postgres_db_name"`
	// prometheus
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`
	// bot behavior
	SchedulerEnabled       bool `toml:"scheduler_enabled"`
	StartupGreetingEnabled bool `toml:"startup_greeting_enabled"`

	Timezone            string `toml:"timezone"`
	SnoozeMinutes       int    `toml:"snooze_minutes"`
	NudgeCheckMinutes   int    `toml:"nudge_check_minutes"`
	MorningGreetingHour int    `toml:"morning_greeting_hour"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	switch strings.ToLower(env) {
	case "dev", "development":
		return t.Development, nil
	case "prod", "production":
		return t.Production, nil
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
}

func tableName(env string) string {
	switch strings.ToLower(env) {
	case "dev", "development":
		return "development"
	default:
		return "production"
	}
}

func Load(env, path string) (*Config, error) {
	var tomlFile Toml
	md, err := toml.DecodeFile(path, &tomlFile)
	if err != nil {
		return nil, fmt.Errorf("decode toml config file: %w", err)
	}

	cfg, err := tomlFile.Get(env)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, fmt.Errorf("config for env [%s] not present in %s", env, path)
	}

	cfg.Environment = env

	if cfg.Timezone == "" {
		cfg.Timezone = "America/Los_Angeles"
	}
	if cfg.SnoozeMinutes <= 0 {
		cfg.SnoozeMinutes = 60
	}
	if cfg.NudgeCheckMinutes <= 0 {
		cfg.NudgeCheckMinutes = 5
	}
	if cfg.MorningGreetingHour <= 0 {
		cfg.MorningGreetingHour = 8
	}
	// on unless explicitly switched off
	if !md.IsDefined(tableName(env), "startup_greeting_enabled") {
		cfg.StartupGreetingEnabled = true
	}

	return cfg, nil
}
