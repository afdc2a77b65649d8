package internal

import (
	"log/slog"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Config represents the application configuration.
type Config struct {
	App     ApplicationConfig `yaml:"app"`
	Forum   ForumConfig       `yaml:"forum"`
	Extract ExtractConfig     `yaml:"extract"`
	Output  OutputConfig      `yaml:"output"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.App.Validate(); err != nil {
		return err
	}
	if err := c.Forum.Validate(); err != nil {
		return err
	}
	if err := c.Extract.Validate(); err != nil {
		return err
	}
	return c.Output.Validate()
}

// ApplicationConfig holds application-level configuration.
type ApplicationConfig struct {
	LogLevel string `yaml:"log_level"`
}

// Validate validates the application configuration.
func (c *ApplicationConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.LogLevel, validation.Required, validation.In("debug", "info", "warn", "error")),
	)
}

// Level returns the configured slog level, defaulting to info on anything
// unparseable.
func (c *ApplicationConfig) Level() slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return l
}

// ForumConfig holds the forum endpoints and fetch behaviour.
type ForumConfig struct {
	ListingURL        string  `yaml:"listing_url"`
	RawURL            string  `yaml:"raw_url"`
	TimeoutSeconds    int     `yaml:"timeout_seconds"`
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	Concurrency       int     `yaml:"concurrency"`
}

// Validate validates the forum configuration.
func (c *ForumConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.ListingURL, validation.Required, is.URL),
		validation.Field(&c.RawURL, validation.Required, is.URL),
		validation.Field(&c.TimeoutSeconds, validation.Min(1)),
		validation.Field(&c.RequestsPerSecond, validation.Min(0.0)),
		validation.Field(&c.Concurrency, validation.Min(1)),
	)
}

// Timeout returns the per-request timeout.
func (c *ForumConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// ExtractConfig holds the mention-extraction keyword set.
type ExtractConfig struct {
	Keywords []string `yaml:"keywords"`
}

// Validate validates the extraction configuration.
func (c *ExtractConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Keywords, validation.Required, validation.Each(validation.Required)),
	)
}

// OutputConfig holds the report output directory.
type OutputConfig struct {
	Dir string `yaml:"dir"`
}

// Validate validates the output configuration.
func (c *OutputConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Dir, validation.Required),
	)
}

// NewDefaultConfig returns a new Config with sensible default values.
func NewDefaultConfig() *Config {
	return &Config{
		App: ApplicationConfig{
			LogLevel: "info",
		},
		Forum: ForumConfig{
			ListingURL:        "https://forum.ansible.com/c/news-bullhorn/17/l/latest.json",
			RawURL:            "https://forum.ansible.com/raw",
			TimeoutSeconds:    30,
			RequestsPerSecond: 4,
			Concurrency:       1,
		},
		Extract: ExtractConfig{
			Keywords: []string{"shared", "said", "contributed"},
		},
		Output: OutputConfig{
			Dir: "./reports",
		},
	}
}
