package config

import "time"

// Config represents the application configuration
type Config struct {
	Data      DataConfig      `toml:"data"`
	Cache     CacheConfig     `toml:"cache"`
	Recommend RecommendConfig `toml:"recommend"`
}

// DataConfig locates the JSON datasets
type DataConfig struct {
	Dir string `toml:"dir"`
}

// CacheConfig controls the local dataset cache
type CacheConfig struct {
	Enabled  bool   `toml:"enabled"`
	Path     string `toml:"path"`
	TTLHours int    `toml:"ttl_hours"`
}

// TTL returns the cache freshness window as a duration
func (c CacheConfig) TTL() time.Duration {
	return time.Duration(c.TTLHours) * time.Hour
}

// RecommendConfig contains recommendation engine defaults
type RecommendConfig struct {
	TopN int `toml:"top_n"`
}

// Default returns a Config with sensible defaults
func Default() *Config {
	return &Config{
		Data: DataConfig{
			Dir: "~/.local/share/dentalref/data",
		},
		Cache: CacheConfig{
			Enabled:  true,
			Path:     "~/.local/share/dentalref/dentalref.db",
			TTLHours: 24,
		},
		Recommend: RecommendConfig{
			TopN: 6,
		},
	}
}
