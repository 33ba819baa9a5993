// Command pumlgen generates PlantUML macro, skinparam, and sprite files
// from a directory tree of icon images.
package main

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/cobra"

	"github.com/0xalexb/pumlgen"
	"github.com/0xalexb/pumlgen/preview"
)

// envConfig holds defaults taken from the environment; command-line flags
// override them.
type envConfig struct {
	ConfigPath string `env:"PUMLGEN_CONFIG"`
	OutputPath string `env:"PUMLGEN_OUTPUT"`
	Address    string `env:"PUMLGEN_ADDRESS"`
	LogLevel   string `env:"PUMLGEN_LOG_LEVEL"  envDefault:"info"`
	LogFormat  string `env:"PUMLGEN_LOG_FORMAT" envDefault:"text"`
}

var (
	configPath     string
	outputPath     string
	generateConfig bool
	spriteShift    int
	address        string
	logLevel       string
	logFormat      string
)

var rootCmd = &cobra.Command{ //nolint:exhaustruct
	Use:   "pumlgen <icons_path>",
	Short: "Generate PlantUML entity macros and sprites from icon images",
	Long: `pumlgen walks a directory tree of icon images named
Category_Service_Component.png, resolves each icon's appearance from a
cascading YAML configuration, and emits per-icon macro, skinparam, and
sprite files plus per-directory aggregators.

Run with -g to reconcile the configuration file with the icon tree instead
of generating artifacts: stale sections are dropped, missing ones added.`,
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		app := pumlgen.NewApp(
			pumlgen.WithLogLevel(logLevel),
			pumlgen.WithLogFormat(logFormat),
			pumlgen.WithPipeline(pumlgen.RunConfig{
				IconsPath:      args[0],
				ConfigPath:     configPath,
				OutputPath:     outputPath,
				GenerateConfig: generateConfig,
				SpriteShift:    spriteShift,
			}),
		)

		app.Run()

		return nil
	},
}

var serveCmd = &cobra.Command{ //nolint:exhaustruct
	Use:   "serve",
	Short: "Serve generated artifacts over HTTP",
	Long: `Serve the output directory over HTTP so diagrams can reference the
generated files with !includeurl during development.`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		dir := outputPath
		if dir == "" {
			dir = pumlgen.DefaultOutputPath
		}

		addr := address
		if addr == "" {
			addr = preview.DefaultAddress
		}

		app := pumlgen.NewApp(
			pumlgen.WithLogLevel(logLevel),
			pumlgen.WithLogFormat(logFormat),
			pumlgen.WithPreview(addr, dir),
		)

		app.Run()

		return nil
	},
}

var versionCmd = &cobra.Command{ //nolint:exhaustruct
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Printf("pumlgen %s (compiled %s)\n", pumlgen.Version, pumlgen.CompiledAt)
	},
}

func main() {
	var envCfg envConfig

	if err := env.Parse(&envCfg); err != nil {
		fmt.Fprintln(os.Stderr, "parse env:", err)
		os.Exit(1)
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", envCfg.ConfigPath,
		"configuration file (default \""+pumlgen.DefaultConfigPath+"\")")
	rootCmd.PersistentFlags().StringVarP(&outputPath, "output", "o", envCfg.OutputPath,
		"output directory (default \""+pumlgen.DefaultOutputPath+"\")")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", envCfg.LogLevel,
		"log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", envCfg.LogFormat,
		"log format: text or json")

	rootCmd.Flags().BoolVarP(&generateConfig, "generate-config", "g", false,
		"reconcile the configuration file with the icon tree instead of generating artifacts")
	rootCmd.Flags().IntVar(&spriteShift, "sprite-shift", 0,
		"brighten sprites by the given number of gray levels (0 = auto)")

	serveCmd.Flags().StringVarP(&address, "address", "a", envCfg.Address,
		"address to listen on (default \""+preview.DefaultAddress+"\")")

	rootCmd.AddCommand(serveCmd, versionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
