package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play directly",
	Long: `Start the game on its own title screen.

Controls:
  Left/Right     - Change difficulty (title screen)
  Enter          - Start
  Space/Up/Click - Flap
  P              - Pause
  R              - Restart (after game over)
  B/Esc          - Leave (after game over or while paused)
  Ctrl+S         - Save a text screenshot
  Q/Ctrl+C       - Quit

Difficulty options:
  easy       - Widest throat
  medium     - Default
  hard       - Narrower throat, night sky
  nightmare  - Narrowest throat

Examples:
  flappy play
  flappy play --difficulty hard
  flappy play --seed 42
  flappy play --config ./my-flappy.yaml
  flappy play --watch :8080`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addGameFlags(playCmd)
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, closer, err := newLogger("flappy", true)
	if err != nil {
		return err
	}
	defer closer.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	hub := startWatch(ctx, logger)

	configureGame()
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	// Continue without storage if it cannot be opened
	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	if _, err := tui.Run(game, runtimeConfig(), tui.Options{
		Store:  store,
		Logger: logger,
		Hub:    hub,
	}); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
