package cmd

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/gabe/togglebar/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the togglebar config file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default config if none exists",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := resolveConfigPath()
		_, statErr := os.Stat(path)

		if _, err := config.LoadOrCreate(path); err != nil {
			return err
		}

		if os.IsNotExist(statErr) {
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote default config to %s\n", path)
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "Config already exists at %s\n", path)
		}
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the resolved config as TOML",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadConfig()
		if err != nil {
			return err
		}
		return toml.NewEncoder(cmd.OutOrStdout()).Encode(cfg)
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)
}
