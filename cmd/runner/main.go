// runner is a terminal runner game: dodge the obstacle, jump it to score.
//
// Usage:
//
//	runner play              - Play in the terminal
//	runner demo              - Watch the autopilot play headless, logging events
//	runner config            - Print the effective configuration as YAML
//
// Global flags:
//
//	--config <path>     - Config file (default: search ~/.runner/configs, ./configs)
//	--fps <rate>        - Terminal frame rate (default: 60)
//	--log-file <path>   - Write logs to a file
//	--log-level <lvl>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runner",
	Short: "Runner - jump the obstacle in your terminal",
	Long: `Runner is a small terminal game: run left and right across the field,
jump over the obstacle in the middle and score a point every time you clear it.
Touching the obstacle ends the game.

Available commands:
  play     - Play in the terminal
  demo     - Let the autopilot play headless and log what happens
  config   - Print the effective configuration

Examples:
  runner play
  runner play --config ./runner.yaml --watch
  runner demo --duration 30s
  runner config > ~/.runner/configs/runner.yaml`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Terminal frame rate")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig resolves the configuration or exits.
func loadConfig() (config.RunnerConfig, string) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg, source
}
