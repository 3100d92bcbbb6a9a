package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/platform/tui"
)

var flagWatch bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal. A short countdown runs before the
first frame.

Controls (input.scheme selects arrows, wasd or both):
  Left/A, Right/D   - Run (hold; the key's auto-repeat keeps you running)
  Up/W/Space        - Jump
  R/Enter           - Retry after game over
  ?                 - Toggle help
  Q/Ctrl+C          - Quit

With --watch the config file is reloaded whenever it changes; new player
and physics settings take effect at the next retry.

Examples:
  runner play
  runner play --config ./runner.yaml --watch --log-file runner.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the config file when it changes")
}

func runPlay(_ *cobra.Command, _ []string) {
	if err := play(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func play() error {
	cfg, source := loadConfig()

	// Logs never go to the terminal the game is drawing on.
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()
	logger.Info("config loaded", "source", source)

	rt := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}
	if flagFPS > 0 {
		rt.FrameRate = flagFPS
	}

	opts := tui.Options{
		Config:  cfg,
		Runtime: rt,
		Logger:  logger,
	}

	if flagWatch {
		if source == config.EmbeddedSource {
			fmt.Fprintln(os.Stderr, "Warning: --watch needs a config file; using built-in defaults without reload")
		} else {
			watcher, watchErr := config.Watch(source)
			if watchErr != nil {
				fmt.Fprintf(os.Stderr, "Warning: %v\n", watchErr)
			} else {
				defer watcher.Close()
				opts.Watcher = watcher
				logger.Info("watching config", "path", watcher.Path())
			}
		}
	}

	if err := tui.Run(opts); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
