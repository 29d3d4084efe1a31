// Package commands implements the mks CLI subcommands.
package commands

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/c360studio/mks/config"
	"github.com/c360studio/mks/dimension"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
)

// options carries the settings shared by every subcommand, resolved
// from flags and the layered config before any command runs.
type options struct {
	cfg   *config.Config
	style dimension.Style
}

// NewRootCmd builds the mks root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	var (
		configPath string
		logLevel   string
		ascii      bool
	)
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "mks",
		Short: "Dimensional analysis for SI quantities",
		Long: `mks carries units through calculations so that mismatched
operations fail loudly instead of silently producing wrong numbers.

Quantities pair a number with integer exponents over the seven SI base
dimensions. Arithmetic propagates the exponents; printing folds known
combinations back into derived-unit symbols like N, J or W.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			switch strings.ToLower(logLevel) {
			case "debug":
				level = slog.LevelDebug
			case "warn":
				level = slog.LevelWarn
			case "error":
				level = slog.LevelError
			}
			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
			slog.SetDefault(logger)

			cfg, err := loadConfig(configPath, logger)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			opts.cfg = cfg
			opts.style = cfg.Style()
			if ascii {
				opts.style = dimension.ASCII
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (YAML)")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().BoolVar(&ascii, "ascii", false, "Render exponents as ^n instead of superscripts")

	cmd.AddCommand(
		newUnitsCmd(opts),
		newDimCmd(opts),
		newConvertCmd(opts),
		newEvalCmd(opts),
		newVersionCmd(),
	)
	return cmd
}

// loadConfig reads an explicit config file when given one, otherwise
// runs the layered loader.
func loadConfig(path string, logger *slog.Logger) (*config.Config, error) {
	if path != "" {
		cfg := config.DefaultConfig()
		fileCfg, err := config.LoadFromFile(path)
		if err != nil {
			return nil, err
		}
		cfg.Merge(fileCfg)
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	return config.NewLoader(logger).Load()
}
