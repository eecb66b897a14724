package config

import "time"

// SetDefaults sets default values for all configuration fields
func SetDefaults(cfg *Config) {
	// Database defaults
	if cfg.Database.Type == "" {
		cfg.Database.Type = "postgres"
	}
	if cfg.Database.Host == "" {
		cfg.Database.Host = "localhost"
	}
	if cfg.Database.Port == 0 {
		cfg.Database.Port = 5432
	}
	if cfg.Database.User == "" {
		cfg.Database.User = "galaxyofdrones"
	}
	if cfg.Database.Name == "" {
		cfg.Database.Name = "galaxyofdrones"
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Database.Path == "" {
		cfg.Database.Path = "galaxyofdrones.db"
	}
	if cfg.Database.Pool.MaxOpen == 0 {
		cfg.Database.Pool.MaxOpen = 25
	}
	if cfg.Database.Pool.MaxIdle == 0 {
		cfg.Database.Pool.MaxIdle = 5
	}
	if cfg.Database.Pool.MaxLifetime == 0 {
		cfg.Database.Pool.MaxLifetime = 5 * time.Minute
	}

	// Scheduler defaults
	if cfg.Scheduler.Interval == 0 {
		cfg.Scheduler.Interval = 10 * time.Second
	}
	if cfg.Scheduler.Rate == 0 {
		cfg.Scheduler.Rate = 2
	}
	if cfg.Scheduler.Burst == 0 {
		cfg.Scheduler.Burst = 5
	}
	if cfg.Scheduler.PIDFile == "" {
		cfg.Scheduler.PIDFile = "/tmp/galaxy-daemon.pid"
	}

	// Metrics defaults
	if cfg.Metrics.Address == "" {
		cfg.Metrics.Address = "localhost:9190"
	}

	// Logging defaults
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "text"
	}
	if cfg.Logging.Output == "" {
		cfg.Logging.Output = "stdout"
	}
}
