package types

import "time"

// FigmaConfig configures the upstream design API client.
type FigmaConfig struct {
	Token          string        `mapstructure:"token"`
	APIBaseURL     string        `mapstructure:"apiBaseUrl"`
	RequestTimeout time.Duration `mapstructure:"requestTimeout"`
	RequestsPerSec float64       `mapstructure:"requestsPerSec"`
}

// CacheConfig bounds the in-memory extraction cache.
type CacheConfig struct {
	MaxEntries int           `mapstructure:"maxEntries"`
	DefaultTTL time.Duration `mapstructure:"defaultTtl"`
}

// SessionConfig bounds working-file sessions.
type SessionConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

// AppConfig is the unified application configuration loaded through viper.
type AppConfig struct {
	Figma   FigmaConfig   `mapstructure:"figma"`
	Cache   CacheConfig   `mapstructure:"cache"`
	Session SessionConfig `mapstructure:"session"`
	Verbose bool          `mapstructure:"verbose"`
}
