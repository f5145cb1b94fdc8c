package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all CLI configuration. Flags override environment
// variables, which override the config file.
type Config struct {
	APIKey        string         `mapstructure:"api_key"`
	LogLevel      string         `mapstructure:"log_level"`
	Timeout       int            `mapstructure:"timeout"`
	PlacesBaseURL string         `mapstructure:"places_base_url"`
	RoutesBaseURL string         `mapstructure:"routes_base_url"`
	Location      LocationConfig `mapstructure:"location"`
	Cache         CacheConfig    `mapstructure:"cache"`
	Tracing       TracingConfig  `mapstructure:"tracing"`
}

// LocationConfig is the saved default location. Lat and Lng are pointers
// so an absent location is distinguishable from 0,0.
type LocationConfig struct {
	Lat    *float64 `mapstructure:"lat"`
	Lng    *float64 `mapstructure:"lng"`
	Radius *float64 `mapstructure:"radius"`
	Label  string   `mapstructure:"label"`
}

type CacheConfig struct {
	Addr string `mapstructure:"addr"`
}

type TracingConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Endpoint string `mapstructure:"endpoint"`
}

// Path returns the config file location. ZUPO_CONFIG_DIR overrides the
// platform default directory.
func Path() (string, error) {
	if dir := os.Getenv("ZUPO_CONFIG_DIR"); dir != "" {
		return filepath.Join(dir, "config.toml"), nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "zupo", "config.toml"), nil
}

// Load reads configuration from the config file and environment variables.
// A missing file is fine; defaults and environment still apply.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("log_level", "info")
	v.SetDefault("timeout", 10)
	v.SetDefault("tracing.endpoint", "localhost:4317")

	if path, err := Path(); err == nil {
		v.SetConfigFile(path)
		v.SetConfigType("toml")
		_ = v.ReadInConfig() // OK if missing
	}

	// Environment variables: ZUPO_LOG_LEVEL → log_level, etc.
	v.SetEnvPrefix("ZUPO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// The API key also arrives via the conventional Google variable.
	_ = v.BindEnv("api_key", "GOOGLE_PLACES_API_KEY", "ZUPO_API_KEY")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}

// HasLocation reports whether a default location is saved.
func (c *Config) HasLocation() bool {
	return c.Location.Lat != nil && c.Location.Lng != nil
}

// SetLocation stores a default location in memory. SaveLocation persists it.
func (c *Config) SetLocation(lat, lng float64, radius *float64, label string) {
	c.Location = LocationConfig{Lat: &lat, Lng: &lng, Radius: radius, Label: label}
}

// ClearLocation removes the default location in memory.
func (c *Config) ClearLocation() {
	c.Location = LocationConfig{}
}

// SaveLocation rewrites the location block of the config file, preserving
// every other setting already present. Only the location block is managed
// by the CLI; other fields are hand-edited.
func (c *Config) SaveLocation() error {
	path, err := Path()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	_ = v.ReadInConfig() // OK if missing

	loc := map[string]any{}
	if c.Location.Lat != nil && c.Location.Lng != nil {
		loc["lat"] = *c.Location.Lat
		loc["lng"] = *c.Location.Lng
		if c.Location.Radius != nil {
			loc["radius"] = *c.Location.Radius
		}
		if c.Location.Label != "" {
			loc["label"] = c.Location.Label
		}
	}
	v.Set("location", loc)

	return v.WriteConfigAs(path)
}
