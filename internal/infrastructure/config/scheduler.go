package config

import "time"

// SchedulerConfig holds completion scheduler configuration
type SchedulerConfig struct {
	// Interval between due-operation sweeps
	Interval time.Duration `mapstructure:"interval"`

	// Rate limits batch dispatches per second, Burst allows catch-up
	// after a stall
	Rate  float64 `mapstructure:"rate" validate:"omitempty,gt=0"`
	Burst int     `mapstructure:"burst" validate:"omitempty,min=1"`

	// PIDFile enforces a single scheduler instance
	PIDFile string `mapstructure:"pid_file"`
}

// MetricsConfig holds metrics endpoint configuration
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Address string `mapstructure:"address"`
}
