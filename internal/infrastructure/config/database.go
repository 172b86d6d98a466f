package config

import "time"

// DatabaseConfig holds database connection settings for sqlite or postgres
type DatabaseConfig struct {
	Type     string     `mapstructure:"type" validate:"required,oneof=sqlite postgres"`
	Path     string     `mapstructure:"path"` // sqlite file path or ":memory:"
	URL      string     `mapstructure:"url"`  // full postgres connection string
	Host     string     `mapstructure:"host"`
	Port     int        `mapstructure:"port"`
	User     string     `mapstructure:"user"`
	Password string     `mapstructure:"password"`
	Name     string     `mapstructure:"name"`
	SSLMode  string     `mapstructure:"sslmode"`
	Pool     PoolConfig `mapstructure:"pool"`
}

// PoolConfig holds connection pool settings (postgres only)
type PoolConfig struct {
	MaxOpen     int           `mapstructure:"max_open"`
	MaxIdle     int           `mapstructure:"max_idle"`
	MaxLifetime time.Duration `mapstructure:"max_lifetime"`
}
