package model

import "time"

// Config is the full runtime configuration. Values come from flags,
// OPPSCOUT_* environment variables, ~/.oppscout/config.yaml, then the
// defaults below, in that priority order.
type Config struct {
	HTTP        HTTPConfig        `yaml:"http" mapstructure:"http"`
	Cache       CacheConfig       `yaml:"cache" mapstructure:"cache"`
	RateLimit   RateLimitConfig   `yaml:"rate_limit" mapstructure:"rate_limit"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" mapstructure:"concurrency"`
	Data        DataConfig        `yaml:"data" mapstructure:"data"`
	Digest      DigestConfig      `yaml:"digest" mapstructure:"digest"`
	SMTP        SMTPConfig        `yaml:"smtp" mapstructure:"smtp"`
	LLM         LLMConfig         `yaml:"llm" mapstructure:"llm"`
	Output      OutputConfig      `yaml:"output" mapstructure:"output"`
}

// HTTPConfig controls the shared page fetcher.
type HTTPConfig struct {
	Timeout       time.Duration `yaml:"timeout" mapstructure:"timeout"`
	UserAgent     string        `yaml:"user_agent" mapstructure:"user_agent"`
	MaxBodyBytes  int64         `yaml:"max_body_bytes" mapstructure:"max_body_bytes"`
	RespectRobots bool          `yaml:"respect_robots" mapstructure:"respect_robots"`
}

// CacheConfig controls page caching between runs.
type CacheConfig struct {
	Enabled bool          `yaml:"enabled" mapstructure:"enabled"`
	Backend string        `yaml:"backend" mapstructure:"backend"` // memory, disk, layered
	Dir     string        `yaml:"dir" mapstructure:"dir"`
	TTL     time.Duration `yaml:"ttl" mapstructure:"ttl"`
}

// RateLimitConfig controls per-domain request pacing.
type RateLimitConfig struct {
	RequestsPerSecond float64 `yaml:"requests_per_second" mapstructure:"requests_per_second"`
	Burst             int     `yaml:"burst" mapstructure:"burst"`
}

// ConcurrencyConfig controls fan-out widths.
type ConcurrencyConfig struct {
	CollectWorkers int `yaml:"collect_workers" mapstructure:"collect_workers"`
	CheckWorkers   int `yaml:"check_workers" mapstructure:"check_workers"`
}

// DataConfig locates the flat-file snapshots.
type DataConfig struct {
	Dir string `yaml:"dir" mapstructure:"dir"`
}

// DigestConfig controls digest selection windows and delivery.
type DigestConfig struct {
	SiteURL         string `yaml:"site_url" mapstructure:"site_url"`
	ClosingSoonDays int    `yaml:"closing_soon_days" mapstructure:"closing_soon_days"`
	NewWithinDays   int    `yaml:"new_within_days" mapstructure:"new_within_days"`
}

// SMTPConfig holds mail delivery settings. The password is normally
// supplied via OPPSCOUT_SMTP_PASSWORD or a .env file, not the yaml file.
type SMTPConfig struct {
	Host     string   `yaml:"host" mapstructure:"host"`
	Port     int      `yaml:"port" mapstructure:"port"`
	Username string   `yaml:"username" mapstructure:"username"`
	Password string   `yaml:"password" mapstructure:"password"`
	From     string   `yaml:"from" mapstructure:"from"`
	To       []string `yaml:"to" mapstructure:"to"`
}

// LLMConfig controls the optional digest intro summary. It never
// affects filtering, deduplication, or scoring.
type LLMConfig struct {
	Enabled bool   `yaml:"enabled" mapstructure:"enabled"`
	Model   string `yaml:"model" mapstructure:"model"`
	APIKey  string `yaml:"api_key" mapstructure:"api_key"`
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`
}

// OutputConfig controls CLI output.
type OutputConfig struct {
	Verbose bool `yaml:"verbose" mapstructure:"verbose"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Timeout:       30 * time.Second,
			UserAgent:     "Oppscout/0.3 (+https://github.com/ewagner/oppscout)",
			MaxBodyBytes:  2_000_000,
			RespectRobots: true,
		},
		Cache: CacheConfig{
			Enabled: true,
			Backend: "layered",
			Dir:     ".oppscout-cache",
			TTL:     6 * time.Hour,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 1,
			Burst:             3,
		},
		Concurrency: ConcurrencyConfig{
			CollectWorkers: 4,
			CheckWorkers:   10,
		},
		Data: DataConfig{
			Dir: "data",
		},
		Digest: DigestConfig{
			SiteURL:         "",
			ClosingSoonDays: 14,
			NewWithinDays:   14,
		},
		SMTP: SMTPConfig{
			Host: "smtp.gmail.com",
			Port: 587,
		},
		LLM: LLMConfig{
			Enabled: false,
			Model:   "gpt-4o-mini",
		},
		Output: OutputConfig{},
	}
}
