package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/inkship/inkship/internal/cliconfig"
	"github.com/inkship/inkship/internal/convert"
	"github.com/inkship/inkship/internal/watch"
	"github.com/inkship/inkship/pkg/log"
	"github.com/inkship/inkship/pkg/state"
)

const longHelp = `
Convert digitizer-pen capture files (.wpi) into drawings.

Each capture is decoded into strokes and written next to the input as
<file>.svg (and optionally .png / .json). A capture with a malformed block
produces no output at all and a non-zero exit status.

Configuration is read from $HOME/.inkship/config.toml, then INKSHIP_*
environment variables, then flags.
`

var exampleUsage = strings.TrimSpace(`
  inkship SKETCH1.WPI
  inkship --format svg,png --out-dir ./drawings /media/INKLING/*.WPI
  inkship watch /media/INKLING --state-dir ~/.inkship
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

// run executes the command line and returns the process exit status.
func run(args []string, stderr io.Writer) int {
	root, logger := newRootCommand(stderr)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		logger().Error().Err(err).Msg("inkship")
		return 1
	}
	return 0
}

// newRootCommand builds the command tree. The returned func yields the
// logger as configured by the last run.
func newRootCommand(stderr io.Writer) (*cobra.Command, func() *zerolog.Logger) {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	logger := log.NewConsoleLogger(stderr, zerolog.InfoLevel)

	// loadConfig applies file and environment configuration under the flags
	// that were set explicitly, then validates.
	loadConfig := func(cmd *cobra.Command, args []string) error {
		cfgFile := cfgPath
		if cfgFile == "" {
			cfgFile = cliconfig.DefaultConfigPath()
		}

		changed := map[string]bool{}
		cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

		if cfgFile != "" && cliconfig.FileExists(cfgFile) {
			fc, err := cliconfig.LoadFileConfig(cfgFile)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if err := cliconfig.ApplyFileConfig(&cfg, fc, changed); err != nil {
				return err
			}
		}

		if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
			return err
		}

		if err := cfg.Validate(); err != nil {
			return err
		}

		l, err := cliconfig.NewLogger(stderr, cfg)
		if err != nil {
			return err
		}
		logger = l
		logger.Debug().Interface("config", cfg).Msg("configuration")
		return nil
	}

	newConverter := func() (*convert.Converter, error) {
		return convert.New(convert.Config{
			Formats:       cfg.RenderFormats(),
			Render:        cfg.RenderOptions(),
			OutDir:        cfg.OutDir,
			StrictStrokes: cfg.StrictStrokes,
		}, log.NewZerologAdapterWithLogger(logger))
	}

	root := &cobra.Command{
		Use:               "inkship FILE...",
		Short:             "Convert digitizer-pen capture files into drawings",
		Long:              strings.TrimSpace(longHelp),
		Example:           exampleUsage,
		Version:           fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		Args:              cobra.MinimumNArgs(1),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: loadConfig,
		RunE: func(cmd *cobra.Command, args []string) error {
			conv, err := newConverter()
			if err != nil {
				return err
			}
			for _, in := range args {
				if _, err := conv.Convert(in); err != nil {
					return err
				}
			}
			return nil
		},
	}

	watchCmd := &cobra.Command{
		Use:   "watch DIR",
		Short: "Convert capture files as they appear in DIR",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conv, err := newConverter()
			if err != nil {
				return err
			}

			stateDir := cfg.StateDir
			if stateDir == "" {
				stateDir = args[0]
			}

			// Setup signal handling for graceful shutdown
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			w := watch.New(watch.Config{
				Dir:           args[0],
				Debounce:      cfg.Debounce,
				RetryInterval: cfg.RetryInterval,
				RetryMax:      cfg.RetryMax,
			}, conv, state.NewFileRepository(stateDir), log.NewZerologAdapterWithLogger(logger))

			if err := w.Run(ctx); err != nil {
				return err
			}
			logger.Info().Msg("stopped")
			return nil
		},
	}
	root.AddCommand(watchCmd)

	// Flags
	pf := root.PersistentFlags()
	pf.StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.inkship/config.toml)")
	pf.StringSliceVar(&cfg.Formats, "format", cfg.Formats, "output formats: svg, png, json")
	pf.StringVar(&cfg.OutDir, "out-dir", cfg.OutDir, "directory for output files (default: next to the input)")
	pf.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: trace, debug, info, warn, error")

	pf.StringVar(&cfg.StrokeColor, "stroke-color", cfg.StrokeColor, "stroke color (name or #rrggbb)")
	pf.Float64Var(&cfg.StrokeWidth, "stroke-width", cfg.StrokeWidth, "stroke width in plane units")
	pf.StringVar(&cfg.PageWidth, "page-width", cfg.PageWidth, "SVG page width")
	pf.StringVar(&cfg.PageHeight, "page-height", cfg.PageHeight, "SVG page height")
	pf.IntVar(&cfg.PNGWidth, "png-width", cfg.PNGWidth, "PNG width in pixels")
	pf.IntVar(&cfg.PNGHeight, "png-height", cfg.PNGHeight, "PNG height in pixels")
	pf.BoolVar(&cfg.GroupLayers, "group-layers", cfg.GroupLayers, "group SVG strokes by layer")
	pf.BoolVar(&cfg.StrictStrokes, "strict", cfg.StrictStrokes, "drop points that arrive outside a stroke")

	wf := watchCmd.Flags()
	wf.StringVar(&cfg.StateDir, "state-dir", cfg.StateDir, "directory for status.json (defaults to DIR)")
	wf.DurationVar(&cfg.Debounce, "debounce", cfg.Debounce, "quiet period before a changed file is converted")
	wf.DurationVar(&cfg.RetryInterval, "retry-interval", cfg.RetryInterval, "first retry delay for files still being written")
	wf.IntVar(&cfg.RetryMax, "retry-max", cfg.RetryMax, "retries for files still being written")

	return root, func() *zerolog.Logger { return &logger }
}
