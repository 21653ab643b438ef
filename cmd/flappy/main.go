// flappy is a terminal Flappy Bird with local high scores, SSH hosting and
// a websocket spectator feed.
//
// Usage:
//
//	flappy                     - Pick a difficulty, then play
//	flappy play                - Play directly (difficulty picked in game)
//	flappy serve               - Start SSH server for remote play
//	flappy scores [difficulty] - Show high scores
//	flappy list                - List difficulty levels
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.arcade/scores.db)
//	--log-file <path>    - Write logs to a rotated file
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/logging"
	"github.com/vovakirdan/tui-flappy/internal/platform/watch"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

const gameID = "flappy"

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogFile  string
	flagLogLevel string

	// Game flags shared by menu and play
	flagConfig     string
	flagDifficulty string
	flagWatch      string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy Bird in your terminal",
	Long: `Flappy Bird for the terminal. Flap through the pipe throats and pick up
the coin in each one to score.

Available commands:
  menu     - Difficulty picker, then play (default)
  play     - Play directly
  serve    - Start SSH server for remote play
  scores   - View high scores
  list     - Show difficulty levels

Examples:
  flappy
  flappy play --difficulty hard
  flappy play --watch :8080
  flappy serve --ssh :2222
  flappy scores nightmare`,
	SilenceUsage: true,
	RunE:         runMenu,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (rotated)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	addGameFlags(rootCmd)

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// addGameFlags registers the flags of commands that run the game locally.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Starting difficulty: easy, medium, hard, nightmare")
	cmd.Flags().StringVar(&flagWatch, "watch", "", "Serve a websocket spectator feed on this address (e.g. :8080)")
}

// newLogger builds the logger for a command. Commands that own the
// terminal log nowhere unless --log-file is set, since stderr would
// draw over the game.
func newLogger(prefix string, ownsTerminal bool) (*log.Logger, io.Closer, error) {
	if ownsTerminal && flagLogFile == "" {
		return logging.New(logging.Options{Output: io.Discard})
	}
	return logging.New(logging.Options{
		File:   flagLogFile,
		Level:  flagLogLevel,
		Prefix: prefix,
	})
}

// runtimeConfig sizes the screen from the terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the score database. Play continues without one.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// startWatch serves the spectator feed when --watch is set.
// The returned hub is nil when the feed is disabled.
func startWatch(ctx context.Context, logger *log.Logger) *watch.Hub {
	if flagWatch == "" {
		return nil
	}

	hub := watch.NewHub(logger)
	go func() {
		if err := hub.ListenAndServe(ctx, flagWatch); err != nil {
			logger.Error("spectator feed stopped", "error", err)
		}
	}()
	return hub
}

// configureGame hands file-level settings to the game before creation.
func configureGame() {
	flappy.SetConfigPath(flagConfig)
	flappy.SetDifficultyPreset(flagDifficulty)
}
