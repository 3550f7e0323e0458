package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server     ServerConfig
	Log        LogConfig
	App        AppConfig
	Registry   RegistryConfig
	Geocode    GeocodeConfig
	Directions DirectionsConfig
	Heat       HeatConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port    int
	GinMode string // debug, release, test
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, text
}

// AppConfig holds query defaults
type AppConfig struct {
	DefaultLatitude  float64 // map center when the user gives no location
	DefaultLongitude float64
	MaxRadiusMiles   float64 // hard cap on the radius a query may request
	DefaultLimit     int
}

// RegistryConfig holds the center data source settings. An empty Path means
// the bundled Seattle dataset.
type RegistryConfig struct {
	Path            string
	RefreshInterval time.Duration // 0 disables periodic refresh
}

// GeocodeConfig holds geocoding provider settings
type GeocodeConfig struct {
	UserAgent string
	Timeout   time.Duration
	CacheTTL  time.Duration
}

// DirectionsConfig holds routing provider settings
type DirectionsConfig struct {
	BaseURL string // empty means the public OSRM demo server
	Timeout time.Duration
}

// HeatConfig holds weather provider settings for heat conditions
type HeatConfig struct {
	UserAgent string // the NWS API requires an identifying User-Agent
	Timeout   time.Duration
	CacheTTL  time.Duration
}

// Load reads configuration from file and environment variables
func Load() (*Config, error) {
	// Set config file name and paths
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("$HOME/.cool-finder")

	// Set defaults
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.ginmode", "release")
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "text")
	viper.SetDefault("app.defaultLatitude", 47.6062) // Seattle downtown
	viper.SetDefault("app.defaultLongitude", -122.3321)
	viper.SetDefault("app.maxRadiusMiles", 10)
	viper.SetDefault("app.defaultLimit", 25)
	viper.SetDefault("registry.path", "")
	viper.SetDefault("registry.refreshInterval", 0)
	viper.SetDefault("geocode.userAgent", "cool-finder/1.0 (cooling center finder)")
	viper.SetDefault("geocode.timeout", "10s")
	viper.SetDefault("geocode.cacheTTL", "24h")
	viper.SetDefault("directions.baseURL", "")
	viper.SetDefault("directions.timeout", "15s")
	viper.SetDefault("heat.userAgent", "cool-finder/1.0 (cooling center finder)")
	viper.SetDefault("heat.timeout", "10s")
	viper.SetDefault("heat.cacheTTL", "10m")

	// Read from environment variables
	viper.SetEnvPrefix("COOL_FINDER")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err != nil {
		// It's okay if config file doesn't exist, we have defaults
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Unmarshal into config struct
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.App.MaxRadiusMiles <= 0 {
		return nil, fmt.Errorf("app.maxRadiusMiles must be positive, got %f", cfg.App.MaxRadiusMiles)
	}

	return &cfg, nil
}

// GetServerAddr returns the server address in the format ":port"
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

// NewLogger creates a new slog.Logger based on the configuration
func (c *Config) NewLogger() *slog.Logger {
	// Parse log level
	var level slog.Level
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	// Create handler options
	opts := &slog.HandlerOptions{
		Level: level,
	}

	// Choose handler based on format
	var handler slog.Handler
	switch strings.ToLower(c.Log.Format) {
	case "json":
		handler = slog.NewJSONHandler(os.Stdout, opts)
	default: // "text" or anything else
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
