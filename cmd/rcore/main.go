// rcore opens a window driven by the rcore frame loop and reports the
// input it receives.
//
// Usage:
//
//	rcore run               - Open the demo window
//	rcore monitors          - List connected monitors
//	rcore config            - Print the effective configuration
//
// Global flags:
//
//	--config <path>  - Config file (default: ~/.config/rcore/config.yaml)
//	-v               - More verbose logging, repeat for trace output
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/charmbracelet/log"
	"github.com/oliverbestmann/rcore/orion/config"
	"github.com/oliverbestmann/rcore/rcore"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfigPath string
	flagVerbosity  int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "rcore",
	Short: "Window and input core demo",
	Long: `rcore opens a native window and runs a frame loop on it,
logging keyboard, mouse, gamepad and window events.

Examples:
  rcore run
  rcore run --remember --profile cpu
  rcore monitors
  rcore config > ~/.config/rcore/config.yaml`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging(flagVerbosity)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "Path to the config file")
	rootCmd.PersistentFlags().CountVarP(&flagVerbosity, "verbose", "v", "Increase log verbosity")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(monitorsCmd)
	rootCmd.AddCommand(configCmd)
}

// setupLogging installs a charm logger as handler of the default slog logger
func setupLogging(verbosity int) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "rcore",
	})

	switch {
	case verbosity >= 2:
		logger.SetLevel(log.Level(rcore.LevelTrace))
	case verbosity == 1:
		logger.SetLevel(log.DebugLevel)
	default:
		logger.SetLevel(log.InfoLevel)
	}

	slog.SetDefault(slog.New(logger))
}

func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfigPath)
	if err != nil {
		return config.Config{}, err
	}

	return cfg, nil
}
