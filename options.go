package springnative

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/albertocavalcante/go-springnative/nativetools"
)

// Option configures a Customizer.
type Option func(*config) error

// Resolver maps a Spring Native version to a native build tools version.
// *nativetools.Table implements it.
type Resolver interface {
	Resolve(springNativeVersion string) (string, bool)
}

// config holds all customizer configuration.
type config struct {
	resolver  Resolver
	classpath string
	order     int

	// logger is the structured logger for debug/info output.
	// If nil, logging is disabled (silent mode).
	logger *slog.Logger
}

// DefaultClasspath is the classpath argument literal given to the nativeBuild
// task so that it picks up AOT generated sources and resources.
const DefaultClasspath = `"$buildDir/resources/aot", "$buildDir/classes/java/aot"`

// WithResolver replaces the version resolver. Defaults to nativetools.Default().
func WithResolver(r Resolver) Option {
	return func(c *config) error {
		if r == nil {
			return errors.New("resolver must not be nil")
		}
		c.resolver = r
		return nil
	}
}

// WithTable uses a custom compatibility table.
func WithTable(t *nativetools.Table) Option {
	return func(c *config) error {
		if t == nil {
			return errors.New("compatibility table must not be nil")
		}
		c.resolver = t
		return nil
	}
}

// WithClasspath overrides the argument literal of the nativeBuild classpath
// invocation. The literal is passed through verbatim.
func WithClasspath(literal string) Option {
	return func(c *config) error {
		if strings.TrimSpace(literal) == "" {
			return errors.New("classpath must not be empty")
		}
		c.classpath = literal
		return nil
	}
}

// WithOrder overrides the order reported to a customizer chain.
func WithOrder(order int) Option {
	return func(c *config) error {
		c.order = order
		return nil
	}
}

// WithLogger sets a structured logger for customization diagnostics.
// If not set, logging is disabled (silent mode).
//
// Example:
//
//	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil)).With("component", "springnative")
//	c, err := springnative.New(springnative.GroovyDSL{}, springnative.WithLogger(logger))
func WithLogger(l *slog.Logger) Option {
	return func(c *config) error {
		c.logger = l
		return nil
	}
}

// validate checks the configuration for logical consistency.
func (c *config) validate() error {
	if c.resolver == nil {
		return errors.New("resolver is required")
	}
	if c.classpath == "" {
		return errors.New("classpath is required")
	}
	return nil
}

// log returns the configured logger, or a no-op logger if none was set.
func (c *config) log() *slog.Logger {
	if c.logger != nil {
		return c.logger
	}
	return slog.New(discardHandler{})
}

// discardHandler is a slog.Handler that discards all log records.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (d discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discardHandler) WithGroup(string) slog.Handler           { return d }

// newConfig creates a configuration with defaults, applies the given
// options and validates the result.
func newConfig(opts ...Option) (*config, error) {
	c := &config{
		resolver:  nativetools.Default(),
		classpath: DefaultClasspath,
		order:     Order,
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	if err := c.validate(); err != nil {
		return nil, err
	}

	return c, nil
}
