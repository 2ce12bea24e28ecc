package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/openstate/internal/config"
	"github.com/vovakirdan/openstate/internal/storage"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Show the level progression table",
	Long: `Print how many scrolls, guards and moving walls each level has and
how fast its guards move, as derived from the current config. The best
stars earned on each level are shown when a scores database exists.

Examples:
  openstate levels
  openstate levels --config ./my-stealth.yaml`,
	Args: cobra.NoArgs,
	RunE: runLevels,
}

func runLevels(_ *cobra.Command, _ []string) error {
	cfg, err := config.LoadStealth(flagConfig)
	if err != nil {
		return err
	}

	best := make(map[int]int)
	if store, err := storage.Open(flagDBPath); err == nil {
		if stats, err := store.AllLevelStats(); err == nil {
			for _, s := range stats {
				best[s.Level] = s.BestStars
			}
		}
		store.Close()
	}

	gw, gh := cfg.World.GridSize()
	fmt.Printf("Grid %dx%d cells, %d levels\n", gw, gh, cfg.World.MaxLevels)
	fmt.Println()
	fmt.Printf("  %-5s  %-7s  %-6s  %-5s  %-11s  %s\n", "Level", "Scrolls", "Guards", "Walls", "Guard speed", "Best")
	fmt.Printf("  %-5s  %-7s  %-6s  %-5s  %-11s  %s\n", "-----", "-------", "------", "-----", "-----------", "----")

	for _, lp := range cfg.Progression.Table(cfg.World.MaxLevels) {
		speed := cfg.Guard.BaseSpeed * lp.GuardSpeedFactor
		fmt.Printf("  %-5d  %-7d  %-6d  %-5d  %-11s  %d\n",
			lp.Level, lp.Scrolls, lp.Guards, lp.MovingWalls, fmt.Sprintf("%.2f px", speed), best[lp.Level])
	}

	return nil
}
