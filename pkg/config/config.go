package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Data source modes.
const (
	ModeDemo = "demo"
	ModeLive = "live"
)

// Cache backends.
const (
	CacheNone      = "none"
	CacheMemory    = "memory"
	CacheRedis     = "redis"
	CacheMemcached = "memcached"
)

// Config holds all configuration options for the influencer finder
type Config struct {
	// Mode selects the profile source: demo serves the built-in catalog,
	// live queries RapidAPI.
	Mode string `yaml:"mode" json:"mode" env:"MODE"`

	Server     ServerConfig     `yaml:"server" json:"server"`
	RapidAPI   RapidAPIConfig   `yaml:"rapidapi" json:"rapidapi"`
	RateLimit  RateLimitConfig  `yaml:"rate_limit" json:"rate_limit"`
	Cache      CacheConfig      `yaml:"cache" json:"cache"`
	Enrichment EnrichmentConfig `yaml:"enrichment" json:"enrichment"`
	Storage    StorageConfig    `yaml:"storage" json:"storage"`
	Metrics    MetricsConfig    `yaml:"metrics" json:"metrics"`
	Logging    LoggingConfig    `yaml:"logging" json:"logging"`
}

// ServerConfig holds HTTP API settings
type ServerConfig struct {
	Port            int           `yaml:"port" json:"port" env:"PORT"`
	Origins         []string      `yaml:"origins" json:"origins" env:"CORS_ORIGINS" envSeparator:","`
	ReadTimeout     time.Duration `yaml:"read_timeout" json:"read_timeout" env:"SERVER_READ_TIMEOUT"`
	WriteTimeout    time.Duration `yaml:"write_timeout" json:"write_timeout" env:"SERVER_WRITE_TIMEOUT"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" json:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT"`
}

// RapidAPIConfig holds the live data source settings
type RapidAPIConfig struct {
	Key               string        `yaml:"key" json:"-" env:"RAPIDAPI_KEY"`
	Host              string        `yaml:"host" json:"host" env:"RAPIDAPI_HOST"`
	Timeout           time.Duration `yaml:"timeout" json:"timeout" env:"RAPIDAPI_TIMEOUT"`
	MaxProfiles       int           `yaml:"max_profiles" json:"max_profiles" env:"RAPIDAPI_MAX_PROFILES"`
	MaxHashtags       int           `yaml:"max_hashtags" json:"max_hashtags" env:"RAPIDAPI_MAX_HASHTAGS"`
	PostsPerProfile   int           `yaml:"posts_per_profile" json:"posts_per_profile" env:"RAPIDAPI_POSTS_PER_PROFILE"`
	RequestsPerSecond float64       `yaml:"requests_per_second" json:"requests_per_second" env:"RAPIDAPI_RPS"`
	Burst             int           `yaml:"burst" json:"burst" env:"RAPIDAPI_BURST"`
	MaxRetries        int           `yaml:"max_retries" json:"max_retries" env:"RAPIDAPI_MAX_RETRIES"`
}

// RateLimitConfig holds the per-client request limit of the HTTP API
type RateLimitConfig struct {
	WindowMS int64 `yaml:"window_ms" json:"window_ms" env:"RATE_LIMIT_WINDOW_MS"`
	Max      int   `yaml:"max" json:"max" env:"RATE_LIMIT_MAX"`
}

// Window returns the rate limit window as a duration.
func (r RateLimitConfig) Window() time.Duration {
	return time.Duration(r.WindowMS) * time.Millisecond
}

// CacheConfig holds the live response cache settings
type CacheConfig struct {
	Backend  string        `yaml:"backend" json:"backend" env:"CACHE_BACKEND"`
	Addr     string        `yaml:"addr" json:"addr" env:"CACHE_ADDR"`
	Password string        `yaml:"password" json:"-" env:"CACHE_PASSWORD"`
	DB       int           `yaml:"db" json:"db" env:"CACHE_DB"`
	TTL      time.Duration `yaml:"ttl" json:"ttl" env:"CACHE_TTL"`
}

// EnrichmentConfig controls concurrent post fetching in live mode
type EnrichmentConfig struct {
	Workers int `yaml:"workers" json:"workers" env:"ENRICH_WORKERS"`
}

// StorageConfig holds local file locations
type StorageConfig struct {
	DataDir     string `yaml:"data_dir" json:"data_dir" env:"DATA_DIR"`
	ShortlistDB string `yaml:"shortlist_db" json:"shortlist_db" env:"SHORTLIST_DB"`
	ExportDir   string `yaml:"export_dir" json:"export_dir" env:"EXPORT_DIR"`
}

// MetricsConfig controls the Prometheus endpoint
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled" json:"enabled" env:"METRICS_ENABLED"`
	Addr    string `yaml:"addr" json:"addr" env:"METRICS_ADDR"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level      string `yaml:"level" json:"level" env:"LOG_LEVEL"`
	Format     string `yaml:"format" json:"format" env:"LOG_FORMAT"`
	File       string `yaml:"file" json:"file" env:"LOG_FILE"`
	MaxSize    int    `yaml:"max_size" json:"max_size"`
	MaxBackups int    `yaml:"max_backups" json:"max_backups"`
	MaxAge     int    `yaml:"max_age" json:"max_age"`
	Compress   bool   `yaml:"compress" json:"compress"`
	NoColor    bool   `yaml:"no_color" json:"no_color" env:"NO_COLOR"`
}

// DefaultConfig returns a Config instance with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Mode: ModeDemo,
		Server: ServerConfig{
			Port:            3000,
			Origins:         []string{"*"},
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    60 * time.Second,
			ShutdownTimeout: 30 * time.Second,
		},
		RapidAPI: RapidAPIConfig{
			Timeout:           10 * time.Second,
			MaxProfiles:       20,
			MaxHashtags:       1,
			PostsPerProfile:   12,
			RequestsPerSecond: 5,
			Burst:             5,
			MaxRetries:        2,
		},
		RateLimit: RateLimitConfig{
			WindowMS: 15 * 60 * 1000,
			Max:      100,
		},
		Cache: CacheConfig{
			Backend: CacheNone,
			TTL:     10 * time.Minute,
		},
		Enrichment: EnrichmentConfig{
			Workers: 4,
		},
		Storage: StorageConfig{
			DataDir:   defaultDataDir(),
			ExportDir: ".",
		},
		Metrics: MetricsConfig{
			Enabled: true,
		},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "console",
			File:       "",
			MaxSize:    100,
			MaxBackups: 3,
			MaxAge:     7,
			Compress:   false,
		},
	}
}

func defaultDataDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "influencerfinder")
	}
	return ".influencerfinder"
}

// ShortlistPath returns the SQLite database path, defaulting to a file in
// the data directory.
func (c *Config) ShortlistPath() string {
	if c.Storage.ShortlistDB != "" {
		return c.Storage.ShortlistDB
	}
	return filepath.Join(c.Storage.DataDir, "shortlists.db")
}

// IsLive reports whether the live RapidAPI source is selected.
func (c *Config) IsLive() bool {
	return strings.EqualFold(c.Mode, ModeLive)
}

// RequireLiveCredentials checks that the RapidAPI key and host are set.
func (c *Config) RequireLiveCredentials() error {
	if c.RapidAPI.Key == "" || c.RapidAPI.Host == "" {
		return errors.New("RapidAPI credentials not configured. Please set RAPIDAPI_KEY and RAPIDAPI_HOST")
	}
	return nil
}

// LoadFromEnv loads configuration from environment variables. Only
// variables that are set override the current values.
func (c *Config) LoadFromEnv() error {
	if err := env.Parse(c); err != nil {
		return fmt.Errorf("failed to parse environment: %w", err)
	}
	c.Mode = strings.ToLower(strings.TrimSpace(c.Mode))
	return nil
}

// LoadFromFile loads configuration from a YAML file
func (c *Config) LoadFromFile(path string) error {
	if path == "" {
		path = c.findConfigFile()
		if path == "" {
			return nil // No config file found, not an error
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	return nil
}

// findConfigFile searches for config file in standard locations
func (c *Config) findConfigFile() string {
	home := os.Getenv("HOME")
	locations := []string{
		".influencerfinder.yaml",
		".influencerfinder.yml",
		filepath.Join(home, ".config", "influencerfinder", "config.yaml"),
		filepath.Join(home, ".config", "influencerfinder", "config.yml"),
		filepath.Join(home, ".influencerfinder.yaml"),
	}

	for _, loc := range locations {
		if _, err := os.Stat(loc); err == nil {
			return loc
		}
	}

	return ""
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	var errs []error

	if c.Mode != ModeDemo && c.Mode != ModeLive {
		errs = append(errs, fmt.Errorf("mode must be %q or %q, got %q", ModeDemo, ModeLive, c.Mode))
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, errors.New("server port must be between 1 and 65535"))
	}
	if c.Server.ShutdownTimeout < 0 {
		errs = append(errs, errors.New("shutdown timeout cannot be negative"))
	}

	if c.RapidAPI.Timeout <= 0 {
		errs = append(errs, errors.New("RapidAPI timeout must be positive"))
	}
	if c.RapidAPI.MaxProfiles <= 0 {
		errs = append(errs, errors.New("max profiles must be positive"))
	}
	if c.RapidAPI.MaxHashtags <= 0 {
		errs = append(errs, errors.New("max hashtags must be positive"))
	}
	if c.RapidAPI.PostsPerProfile <= 0 {
		errs = append(errs, errors.New("posts per profile must be positive"))
	}
	if c.RapidAPI.RequestsPerSecond <= 0 {
		errs = append(errs, errors.New("requests per second must be positive"))
	}
	if c.RapidAPI.Burst <= 0 {
		errs = append(errs, errors.New("burst must be positive"))
	}
	if c.RapidAPI.MaxRetries < 0 {
		errs = append(errs, errors.New("max retries cannot be negative"))
	}

	if c.RateLimit.WindowMS <= 0 {
		errs = append(errs, errors.New("rate limit window must be positive"))
	}
	if c.RateLimit.Max <= 0 {
		errs = append(errs, errors.New("rate limit max must be positive"))
	}

	switch c.Cache.Backend {
	case CacheNone, CacheMemory, "":
	case CacheRedis, CacheMemcached:
		if c.Cache.Addr == "" {
			errs = append(errs, fmt.Errorf("cache address is required for the %s backend", c.Cache.Backend))
		}
	default:
		errs = append(errs, fmt.Errorf("invalid cache backend %q", c.Cache.Backend))
	}
	if c.Cache.TTL < 0 {
		errs = append(errs, errors.New("cache TTL cannot be negative"))
	}

	if c.Enrichment.Workers <= 0 {
		errs = append(errs, errors.New("enrichment workers must be positive"))
	}
	if c.Enrichment.Workers > 32 {
		errs = append(errs, errors.New("enrichment workers should not exceed 32"))
	}

	validLogLevels := map[string]bool{
		"debug": true, "info": true, "warn": true, "error": true,
	}
	if !validLogLevels[strings.ToLower(c.Logging.Level)] {
		errs = append(errs, errors.New("invalid log level"))
	}
	switch strings.ToLower(c.Logging.Format) {
	case "", "console", "json":
	default:
		errs = append(errs, errors.New("log format must be console or json"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// Save saves the configuration to a file
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// MergeCommandLineFlags merges command line flags into the configuration.
// Zero values are ignored so unset flags never clobber other sources.
func (c *Config) MergeCommandLineFlags(flags map[string]interface{}) {
	if mode, ok := flags["mode"].(string); ok && mode != "" {
		c.Mode = strings.ToLower(mode)
	}
	if port, ok := flags["port"].(int); ok && port > 0 {
		c.Server.Port = port
	}
	if host, ok := flags["rapidapi-host"].(string); ok && host != "" {
		c.RapidAPI.Host = host
	}
	if workers, ok := flags["workers"].(int); ok && workers > 0 {
		c.Enrichment.Workers = workers
	}
	if output, ok := flags["output"].(string); ok && output != "" {
		c.Storage.ExportDir = output
	}
	if db, ok := flags["db"].(string); ok && db != "" {
		c.Storage.ShortlistDB = db
	}
	if backend, ok := flags["cache"].(string); ok && backend != "" {
		c.Cache.Backend = backend
	}
	if logLevel, ok := flags["log-level"].(string); ok && logLevel != "" {
		c.Logging.Level = logLevel
	}
	if logFormat, ok := flags["log-format"].(string); ok && logFormat != "" {
		c.Logging.Format = logFormat
	}
	if noColor, ok := flags["no-color"].(bool); ok && noColor {
		c.Logging.NoColor = true
	}
}

// Load loads configuration from all sources with proper precedence
// Precedence order: Command line flags > Environment variables > .env file > Config file > Defaults
func Load(configPath string, flags map[string]interface{}) (*Config, error) {
	// .env files are optional
	_ = godotenv.Load(".env")
	_ = godotenv.Load(filepath.Join(os.Getenv("HOME"), ".influencerfinder.env"))

	config := DefaultConfig()

	if err := config.LoadFromFile(configPath); err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	if err := config.LoadFromEnv(); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	config.MergeCommandLineFlags(flags)

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}
