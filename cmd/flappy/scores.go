package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var flagScoresLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores [difficulty]",
	Short: "Show high scores",
	Long: `Display the top high scores, optionally for one difficulty.
Without a difficulty, a per-level summary is printed first.

Examples:
  flappy scores
  flappy scores hard
  flappy scores --limit 25`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
}

func runScores(cmd *cobra.Command, args []string) error {
	mode := storage.AnyMode
	title := "High Scores - Flappy Bird"
	if len(args) == 1 {
		d, err := config.ParseDifficulty(args[0])
		if err != nil {
			return err
		}
		mode = d.String()
		title = fmt.Sprintf("High Scores - Flappy Bird (%s)", d.Title())
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	if mode == storage.AnyMode {
		stats, err := store.Stats(gameID)
		if err != nil {
			return err
		}
		if len(stats) > 0 {
			fmt.Fprintln(out, "Summary")
			fmt.Fprintln(out)
			fmt.Fprintf(out, "  %-10s  %-6s  %-6s  %-7s  %s\n", "Level", "Runs", "Best", "Avg", "Last played")
			fmt.Fprintf(out, "  %-10s  %-6s  %-6s  %-7s  %s\n", "-----", "----", "----", "---", "-----------")
			for _, st := range stats {
				fmt.Fprintf(out, "  %-10s  %-6d  %-6d  %-7.1f  %s\n",
					st.Mode, st.GamesCount, st.HighScore, st.AvgScore, st.LastPlayed.Format("2006-01-02 15:04"))
			}
			fmt.Fprintln(out)
		}
	}

	scores, err := store.TopScores(gameID, mode, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Fprintln(out, title)
	fmt.Fprintln(out)

	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'flappy' to set the first high score!")
		return nil
	}

	// Print header
	fmt.Fprintf(out, "  %-4s  %-10s  %-10s  %s\n", "Rank", "Score", "Level", "Date")
	fmt.Fprintf(out, "  %-4s  %-10s  %-10s  %s\n", "----", "-----", "-----", "----")

	for i, entry := range scores {
		fmt.Fprintf(out, "  %-4d  %-10d  %-10s  %s\n", i+1, entry.Score, entry.Mode, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Best: %d\n", scores[0].Score)
	return nil
}
