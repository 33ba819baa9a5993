package pumlgen

import (
	"github.com/0xalexb/pumlgen/preview"

	"go.uber.org/fx"
)

// Options holds configuration settings for the application.
type Options struct {
	Modules   []fx.Option
	LogLevel  string
	LogFormat string
}

// Option defines a function type for applying configuration options.
type Option func(*Options)

// WithModules adds Fx modules to the application.
func WithModules(modules ...fx.Option) Option {
	return func(opts *Options) {
		opts.Modules = append(opts.Modules, modules...)
	}
}

// WithPipeline adds the generation pipeline module: icons are scanned,
// options resolved, and artifacts written (or, in synchronize mode, the
// configuration file rewritten) once the application starts; the
// application shuts itself down when the run completes.
func WithPipeline(cfg RunConfig) Option {
	return func(opts *Options) {
		opts.Modules = append(opts.Modules, NewPipelineModule(cfg))
	}
}

// WithPreview adds an HTTP preview server over dir, so generated files can
// be consumed with !includeurl during diagram development.
func WithPreview(addr, dir string) Option {
	return func(opts *Options) {
		opts.Modules = append(opts.Modules, preview.NewModule(addr, dir))
	}
}

// WithLogLevel sets the log level for the application.
// Valid levels are: "debug", "info", "warn", "error".
// If not set or invalid, defaults to "info".
func WithLogLevel(level string) Option {
	return func(opts *Options) {
		opts.LogLevel = level
	}
}

// WithLogFormat sets the log handler format, "text" or "json".
// Defaults to "text".
func WithLogFormat(format string) Option {
	return func(opts *Options) {
		opts.LogFormat = format
	}
}
