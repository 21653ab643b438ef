package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List difficulty levels",
	Long:  `Shows each difficulty with its pipe throat gap and sky.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(cmd *cobra.Command, _ []string) {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Difficulty levels:")
	fmt.Fprintln(out)

	fmt.Fprintf(out, "  %-10s  %-4s  %s\n", "Level", "Gap", "Sky")
	fmt.Fprintf(out, "  %-10s  %-4s  %s\n", "-----", "---", "---")

	for _, d := range config.Difficulties() {
		fmt.Fprintf(out, "  %-10s  %-4.0f  %s\n", d, d.ThroatGap(), d.Background())
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'flappy play --difficulty <level>' to start on a level.")
}
