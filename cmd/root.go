package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gabe/togglebar/internal/config"
	"github.com/gabe/togglebar/internal/logging"
)

var (
	configPath string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "togglebar",
	Short: "Togglebar - animated segmented toggle for the terminal",
	Long: `A segmented toggle group for Bubble Tea programs. Options sit side by side
and a highlight panel slides to the one you pick.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default ~/.config/togglebar/config.toml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override logging.level (debug, info, warn, error)")
}

// resolveConfigPath returns the --config value or the default location
func resolveConfigPath() string {
	if configPath != "" {
		return configPath
	}
	return config.DefaultPath()
}

// loadConfig loads the resolved config. A missing file is only an error when
// it was named explicitly; otherwise the defaults apply.
func loadConfig() (*config.Config, string, error) {
	path := resolveConfigPath()

	if _, err := os.Stat(path); os.IsNotExist(err) && configPath == "" {
		return config.DefaultConfig(), path, nil
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, path, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, path, nil
}

// setupLogging initializes the global logger. With toFile, output goes to
// logging.file (or demo.log beside the config) since the terminal is taken.
func setupLogging(cfg *config.Config, path string, toFile bool) (io.Closer, error) {
	level := cfg.Logging.Level
	if logLevel != "" {
		level = logLevel
	}

	if !toFile {
		logging.Init(logging.Config{Level: level, Format: cfg.Logging.Format, Output: os.Stderr})
		return io.NopCloser(nil), nil
	}

	file := cfg.Logging.File
	if file == "" {
		file = filepath.Join(filepath.Dir(path), "demo.log")
	}
	f, err := logging.OpenFile(file)
	if err != nil {
		return nil, err
	}
	logging.Init(logging.Config{Level: level, Format: cfg.Logging.Format, Output: f})
	return f, nil
}
