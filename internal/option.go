package internal

import "github.com/starford/bullhorn/internal/pipeline"

// Option is a functional option for configuring the application.
type Option func(*application)

type application struct {
	config *Config
	source pipeline.Source
}

// WithConfig sets the application configuration.
func WithConfig(cfg *Config) Option {
	return func(a *application) {
		a.config = cfg
	}
}

// WithSource overrides the forum source, mainly for tests.
func WithSource(src pipeline.Source) Option {
	return func(a *application) {
		a.source = src
	}
}
