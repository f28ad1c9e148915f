package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gabe/togglebar/internal/theme"
	"github.com/gabe/togglebar/internal/togglegroup"
)

var (
	renderSelect int
	renderWidth  int
)

var renderCmd = &cobra.Command{
	Use:   "render [values...]",
	Short: "Print the toggle bar at rest",
	Long: `Print a single frame of the toggle bar with the highlight settled on
--select. Useful in scripts and for previewing a theme.`,
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
		if renderSelect < 0 || renderSelect >= len(cfg.Toggle.Values) {
			return fmt.Errorf("--select %d out of range for %d values", renderSelect, len(cfg.Toggle.Values))
		}

		closer, err := setupLogging(cfg, path, false)
		if err != nil {
			return err
		}
		defer closer.Close()

		opts, err := theme.GroupOptions(cfg)
		if err != nil {
			return err
		}
		group := togglegroup.New(cfg.Toggle.Values, append(opts, togglegroup.WithDuration(0))...)
		group.SetWidth(renderWidth)

		// with no duration the first frame settles the highlight
		if frame := group.Select(renderSelect); frame != nil {
			group, _ = group.Update(frame())
		}

		_, err = fmt.Fprintln(cmd.OutOrStdout(), group.View())
		return err
	},
}

func init() {
	renderCmd.Flags().IntVarP(&renderSelect, "select", "s", 0, "index of the selected option")
	renderCmd.Flags().IntVar(&renderWidth, "width", 0, "total width in columns (0 fits the labels)")
	rootCmd.AddCommand(renderCmd)
}
