package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a difficulty, then play",
	Long: `Start with the difficulty picker. The picker shows the throat gap and
your best score for each level. After a round, B or Esc returns here.

Controls:
  Up/Down/j/k  - Choose difficulty
  Enter/Space  - Play
  Tab          - High scores
  Q            - Quit

Examples:
  flappy menu
  flappy menu --fps 30
  flappy menu --db ./scores.db`,
	RunE: runMenu,
}

func init() {
	addGameFlags(menuCmd)
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closer, err := newLogger("flappy", true)
	if err != nil {
		return err
	}
	defer closer.Close()

	start := config.DifficultyMedium
	if flagDifficulty != "" {
		start, err = config.ParseDifficulty(flagDifficulty)
		if err != nil {
			return err
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	hub := startWatch(ctx, logger)

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	configureGame()
	cfg := runtimeConfig()

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(store, gameID, "Flappy Bird", start, cfg)
		if err != nil {
			return err
		}

		// Update config with any size changes
		cfg = menuResult.Config
		start = menuResult.Difficulty

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, err := tui.RunScoreboard(store, gameID, start, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
			if goBack {
				continue // Back to menu
			}
			return nil // User quit from scoreboard
		}

		game, err := registry.Create(gameID)
		if err != nil {
			return err
		}

		// Fresh seed for each round unless pinned
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		difficulty := start
		logger.Info("round started", "difficulty", difficulty, "seed", cfg.Seed)
		back, err := tui.Run(game, cfg, tui.Options{
			Store:      store,
			Logger:     logger,
			Hub:        hub,
			Difficulty: &difficulty,
		})
		if err != nil {
			return fmt.Errorf("running game: %w", err)
		}
		if !back {
			return nil
		}

		// The player may have changed level in game
		if d, err := config.ParseDifficulty(game.State().Mode); err == nil {
			start = d
		}
	}
}
