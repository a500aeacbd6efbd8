// Package cmd implements the filterctl commands.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"thirdcoast.systems/filtergraph/internal/config"
	"thirdcoast.systems/filtergraph/internal/observability"
	"thirdcoast.systems/filtergraph/pkg/filters"
)

// app carries the state shared by every subcommand.
type app struct {
	v        *viper.Viper
	conf     *config.Config
	registry *filters.Registry
}

// flagKeys maps persistent flags to configuration keys.
var flagKeys = map[string]string{
	"log-level":  "LOG_LEVEL",
	"log-format": "LOG_FORMAT",
	"ffmpeg":     "FFMPEG_PATH",
	"ffprobe":    "FFPROBE_PATH",
}

func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for flag, key := range flagKeys {
		if err := v.BindPFlag(key, fs.Lookup(flag)); err != nil {
			return fmt.Errorf("bind flag %s: %w", flag, err)
		}
	}
	return nil
}

// NewRootCmd builds the filterctl command tree.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New(), registry: filters.Default()}

	root := &cobra.Command{
		Use:   "filterctl",
		Short: "Inspect ffmpeg filters and compile filter recipes",
		Long: `filterctl exposes the filter catalog and recipe compiler from the command line.

Configuration is read from the environment and can be overridden by flags:
  FFMPEG_PATH   - ffmpeg executable (--ffmpeg)
  FFPROBE_PATH  - ffprobe executable (--ffprobe)
  LOG_LEVEL     - debug, info, warn, error (--log-level)
  LOG_FORMAT    - text or json (--log-format)

Example:
  filterctl catalog scale
  filterctl compile -f chain.yaml -i in.mp4 -o out.mp4
  filterctl run -f chain.yaml -i in.mp4 -o out.mp4 --progress`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd.Context())
		},
	}

	fs := root.PersistentFlags()
	fs.String("log-level", "info", "log level (debug, info, warn, error)")
	fs.String("log-format", "text", "log format (text, json)")
	fs.String("ffmpeg", "ffmpeg", "ffmpeg executable")
	fs.String("ffprobe", "ffprobe", "ffprobe executable")
	if err := bindFlags(a.v, fs); err != nil {
		panic(err)
	}

	root.AddCommand(
		newCatalogCmd(a),
		newCompileCmd(a),
		newRunCmd(a),
		newProbeCmd(a),
	)
	return root
}

// setup loads the configuration and installs the logger.
func (a *app) setup(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	conf, err := config.Load(ctx, a.v)
	if err != nil {
		return err
	}
	a.conf = conf
	observability.SetDefault(observability.NewLoggerWithWriter(conf, os.Stderr))
	return nil
}

// Execute runs the filterctl command tree.
func Execute() error {
	if err := NewRootCmd().Execute(); err != nil {
		return fmt.Errorf("executing root command: %w", err)
	}
	return nil
}
