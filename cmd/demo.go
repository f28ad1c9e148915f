package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gabe/togglebar/internal/config"
	"github.com/gabe/togglebar/internal/logging"
	"github.com/gabe/togglebar/internal/tui"
)

var watchConfig bool

var demoCmd = &cobra.Command{
	Use:   "demo [values...]",
	Short: "Launch the interactive toggle demo",
	Long: `Launch a full-screen demo of the toggle group. Click an option or use the
arrow keys. Values given as arguments replace toggle.values from the config.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, path, err := loadConfig()
		if err != nil {
			return err
		}
		if len(args) > 0 {
			cfg.Toggle.Values = args
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		closer, err := setupLogging(cfg, path, true)
		if err != nil {
			return err
		}
		defer closer.Close()

		var updates <-chan *config.Config
		if watchConfig {
			if _, err := os.Stat(path); err != nil {
				return fmt.Errorf("--watch needs an existing config file (try 'togglebar config init'): %w", err)
			}
			ctx := logging.WithContext(cmd.Context(), logging.Component("config"))
			ctx, cancel := context.WithCancel(ctx)
			defer cancel()
			updates, err = config.Watch(ctx, path)
			if err != nil {
				return err
			}
		}

		logging.Logger.Info().Strs("values", cfg.Toggle.Values).Bool("watch", watchConfig).Msg("starting demo")
		return tui.Run(cfg, updates)
	},
}

func init() {
	demoCmd.Flags().BoolVarP(&watchConfig, "watch", "w", false, "reload the theme when the config file changes")
	rootCmd.AddCommand(demoCmd)
}
