package pumlgen

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/0xalexb/pumlgen/config"
	yamlcodec "github.com/0xalexb/pumlgen/config/codec/yaml"
	filefetcher "github.com/0xalexb/pumlgen/config/fetcher/file"
	"github.com/0xalexb/pumlgen/generate"
	"github.com/0xalexb/pumlgen/icon"
	"github.com/0xalexb/pumlgen/sprite"
	"github.com/0xalexb/pumlgen/template"

	"go.uber.org/fx"
)

// ErrNoIconsPath is returned when the pipeline is configured without an
// icons directory.
var ErrNoIconsPath = errors.New("icons path must not be empty")

// Defaults for the run configuration.
const (
	DefaultConfigPath = "pumlgen.yaml"
	DefaultOutputPath = "dist"
)

// RunConfig holds the validated inputs of one generator run, as supplied by
// the CLI collaborator.
type RunConfig struct {
	IconsPath      string
	ConfigPath     string
	OutputPath     string
	GenerateConfig bool
	SpriteShift    int
}

// SetDefaults sets default values for the RunConfig.
func (c *RunConfig) SetDefaults() {
	if c.ConfigPath == "" {
		c.ConfigPath = DefaultConfigPath
	}

	if c.OutputPath == "" {
		c.OutputPath = DefaultOutputPath
	}
}

// Validate validates the RunConfig.
func (c *RunConfig) Validate() error {
	if c.IconsPath == "" {
		return ErrNoIconsPath
	}

	return nil
}

// NewPipelineModule creates an Fx module that executes one generator run on
// startup and then shuts the application down, propagating a non-zero exit
// code on failure.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewPipelineModule(cfg RunConfig) fx.Option {
	cfg.SetDefaults()

	if err := cfg.Validate(); err != nil {
		return fx.Error(err)
	}

	return fx.Module("pipeline",
		fx.Supply(cfg),
		fx.Provide(
			yamlcodec.NewCodec,
			template.NewRegistry,
			newStore,
			func(cfg RunConfig) *icon.Scanner {
				return icon.NewScanner(os.DirFS(cfg.IconsPath))
			},
			func(cfg RunConfig) generate.SpriteEncoder {
				return sprite.NewEncoder(os.DirFS(cfg.IconsPath), sprite.WithShift(cfg.SpriteShift))
			},
			func(store *config.Store, registry *template.Registry, enc generate.SpriteEncoder) *generate.Generator {
				return generate.NewGenerator(store, registry, enc)
			},
			func(cfg RunConfig) *generate.Sink {
				return generate.NewSink(cfg.OutputPath)
			},
		),
		fx.Invoke(runPipeline),
	)
}

// newStore loads the configuration store. A missing configuration file is
// valid and yields an empty store.
func newStore(cfg RunConfig, codec *yamlcodec.Codec) (*config.Store, error) {
	fetcher, err := filefetcher.NewFetcher(cfg.ConfigPath)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Info("no configuration file, built-in defaults apply", "path", cfg.ConfigPath)

		return config.Load(nil)
	}

	if err != nil {
		return nil, err
	}

	return config.FromSource(fetcher, codec)
}

// pipelineParams collects the pipeline collaborators from the container.
type pipelineParams struct {
	fx.In

	Config    RunConfig
	Scanner   *icon.Scanner
	Store     *config.Store
	Codec     *yamlcodec.Codec
	Generator *generate.Generator
	Sink      *generate.Sink
}

// runPipeline schedules the run on application start. The run executes in a
// background goroutine and triggers shutdown on completion, mirroring a
// batch process under a lifecycle-managed container.
func runPipeline(lifecycle fx.Lifecycle, shutdowner fx.Shutdowner, params pipelineParams) {
	lifecycle.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				err := execute(params)
				if err != nil {
					slog.Error("run failed", "error", err)

					if shutdownErr := shutdowner.Shutdown(fx.ExitCode(1)); shutdownErr != nil {
						slog.Error("failed to trigger shutdown", "error", shutdownErr)
					}

					return
				}

				if shutdownErr := shutdowner.Shutdown(); shutdownErr != nil {
					slog.Error("failed to trigger shutdown", "error", shutdownErr)
				}
			}()

			return nil
		},
		OnStop: nil,
	})
}

// execute performs one full run: scan, then either synchronize the
// configuration or generate and write the artifact tree. All artifacts are
// assembled in memory before the write phase, so failures never leave
// partial output.
func execute(params pipelineParams) error {
	keys, err := params.Scanner.Scan()
	if err != nil {
		return err
	}

	slog.Info("discovered icons", "count", len(keys), "path", params.Config.IconsPath)

	if params.Config.GenerateConfig {
		return synchronize(params, keys)
	}

	artifacts, err := params.Generator.Generate(keys)
	if err != nil {
		return err
	}

	if err := params.Sink.WriteAll(artifacts); err != nil {
		return err
	}

	slog.Info("generation complete", "artifacts", len(artifacts), "output", params.Config.OutputPath)

	return nil
}

// synchronize reconciles the configuration sections against the discovered
// icon set and rewrites the configuration file atomically.
func synchronize(params pipelineParams, keys []icon.Key) error {
	reconciled := config.Reconcile(params.Store, config.Discover(keys))

	data, err := params.Codec.Encode(reconciled.Raw())
	if err != nil {
		return err
	}

	if err := generate.WriteFileAtomic(params.Config.ConfigPath, data); err != nil {
		return fmt.Errorf("rewriting configuration: %w", err)
	}

	slog.Info("configuration synchronized", "path", params.Config.ConfigPath)

	return nil
}
