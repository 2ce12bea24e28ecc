package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/openstate/internal/games/stealth"
	"github.com/vovakirdan/openstate/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show best runs and per-level results",
	Long: `Display the best runs (total stars) and the results of every level
that has been attempted.

Examples:
  openstate scores
  openstate scores --limit 20
  openstate scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded runs")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(stealth.ID); err != nil {
			return err
		}
		fmt.Println("Runs cleared.")
		return nil
	}

	scores, err := store.TopScores(stealth.ID, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Println("Best Runs")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'openstate play' to set the first score!")
	} else {
		fmt.Printf("  %-4s  %-6s  %s\n", "Rank", "Stars", "Date")
		fmt.Printf("  %-4s  %-6s  %s\n", "----", "-----", "----")
		for i, entry := range scores {
			fmt.Printf("  %-4d  %-6d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
		}

		if stats, err := store.GetGameStats(stealth.ID); err == nil {
			fmt.Println()
			fmt.Printf("Runs: %d  Best: %d  Average: %.1f\n", stats.GamesCount, stats.HighScore, stats.AvgScore)
		}
	}

	levels, err := store.AllLevelStats()
	if err != nil {
		return err
	}
	if len(levels) == 0 {
		return nil
	}

	fmt.Println()
	fmt.Println("Levels")
	fmt.Println()
	fmt.Printf("  %-5s  %-5s  %-6s  %-6s  %-4s  %s\n", "Level", "Tries", "Clears", "Caught", "Best", "Fastest")
	fmt.Printf("  %-5s  %-5s  %-6s  %-6s  %-4s  %s\n", "-----", "-----", "------", "------", "----", "-------")
	for _, ls := range levels {
		fastest := "-"
		if ls.FastestTicks > 0 {
			secs := float64(ls.FastestTicks) / float64(max(1, flagFPS))
			fastest = fmt.Sprintf("%.1fs", secs)
		}
		fmt.Printf("  %-5d  %-5d  %-6d  %-6d  %-4d  %s\n",
			ls.Level, ls.Attempts, ls.Clears, ls.Captures, ls.BestStars, fastest)
	}

	return nil
}
