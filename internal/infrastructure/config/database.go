package config

import "time"

// DatabaseConfig selects the store and its connection settings. A
// non-empty URL wins over the individual postgres fields; Path only
// applies to sqlite.
type DatabaseConfig struct {
	Type string `mapstructure:"type" validate:"required,oneof=postgres sqlite"`
	URL  string `mapstructure:"url"`

	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port" validate:"omitempty,min=1,max=65535"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode" validate:"omitempty,oneof=disable require verify-ca verify-full"`

	Path string `mapstructure:"path"`

	Pool PoolConfig `mapstructure:"pool"`
}

// PoolConfig bounds the sql connection pool.
type PoolConfig struct {
	MaxOpen     int           `mapstructure:"max_open" validate:"min=1"`
	MaxIdle     int           `mapstructure:"max_idle" validate:"min=1"`
	MaxLifetime time.Duration `mapstructure:"max_lifetime"`
}
