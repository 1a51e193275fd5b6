package model

import "time"

// Config is the complete claimscope configuration.
// Built once at startup from defaults, config file, env vars and flags,
// then passed by reference into the components that need it.
type Config struct {
	Server  ServerConfig  `yaml:"server" mapstructure:"server"`
	Verify  VerifyConfig  `yaml:"verify" mapstructure:"verify"`
	Cache   CacheConfig   `yaml:"cache" mapstructure:"cache"`
	Rewrite RewriteConfig `yaml:"rewrite" mapstructure:"rewrite"`
	Social  SocialConfig  `yaml:"social" mapstructure:"social"`
	Log     LogConfig     `yaml:"log" mapstructure:"log"`
}

// ServerConfig controls the HTTP server
type ServerConfig struct {
	Addr            string        `yaml:"addr" mapstructure:"addr"`
	ReadTimeout     time.Duration `yaml:"read_timeout" mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout" mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" mapstructure:"shutdown_timeout"`
}

// VerifyConfig controls the verification pipeline
type VerifyConfig struct {
	SourceTimeout time.Duration `yaml:"source_timeout" mapstructure:"source_timeout"` // Per-source query budget (fail-open)
	SourceDelay   time.Duration `yaml:"source_delay" mapstructure:"source_delay"`     // Simulated lookup latency
	Workers       int           `yaml:"workers" mapstructure:"workers"`               // Concurrent claim verifications
}

// CacheConfig controls the verification result cache
type CacheConfig struct {
	Enabled bool          `yaml:"enabled" mapstructure:"enabled"`
	TTL     time.Duration `yaml:"ttl" mapstructure:"ttl"`
}

// RewriteConfig controls the tone-rewriting subsystem
type RewriteConfig struct {
	Provider  string `yaml:"provider" mapstructure:"provider"` // "openai" or "" (disabled)
	Model     string `yaml:"model" mapstructure:"model"`
	APIKey    string `yaml:"-" mapstructure:"api_key"` // Never serialized; env var preferred
	BaseURL   string `yaml:"base_url" mapstructure:"base_url"`
	Timeout   int    `yaml:"timeout" mapstructure:"timeout"` // Seconds
	MaxTokens int    `yaml:"max_tokens" mapstructure:"max_tokens"`
}

// SocialConfig controls the social scraping glue
type SocialConfig struct {
	UserAgent         string        `yaml:"user_agent" mapstructure:"user_agent"`
	Timeout           time.Duration `yaml:"timeout" mapstructure:"timeout"`
	MaxBodyBytes      int64         `yaml:"max_body_bytes" mapstructure:"max_body_bytes"`
	RequestsPerSecond float64       `yaml:"requests_per_second" mapstructure:"requests_per_second"`
	Burst             int           `yaml:"burst" mapstructure:"burst"`
	HTTPProxy         string        `yaml:"http_proxy" mapstructure:"http_proxy"`
	HTTPSProxy        string        `yaml:"https_proxy" mapstructure:"https_proxy"`
	NoProxy           string        `yaml:"no_proxy" mapstructure:"no_proxy"`
}

// LogConfig controls structured logging
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`   // debug, info, warn, error
	Format string `yaml:"format" mapstructure:"format"` // json or console
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:            ":8000",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Verify: VerifyConfig{
			SourceTimeout: 2 * time.Second,
			SourceDelay:   200 * time.Millisecond,
			Workers:       8,
		},
		Cache: CacheConfig{
			Enabled: true,
			TTL:     10 * time.Minute,
		},
		Rewrite: RewriteConfig{
			Provider:  "",
			Model:     "",
			Timeout:   30,
			MaxTokens: 500,
		},
		Social: SocialConfig{
			UserAgent:         "Claimscope/0.1 (+https://github.com/claimscope/claimscope)",
			Timeout:           10 * time.Second,
			MaxBodyBytes:      2_000_000,
			RequestsPerSecond: 2,
			Burst:             5,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
