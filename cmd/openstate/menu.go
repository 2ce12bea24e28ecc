package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/openstate/internal/config"
	"github.com/vovakirdan/openstate/internal/games/stealth"
	"github.com/vovakirdan/openstate/internal/platform/tui"
	"github.com/vovakirdan/openstate/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the game with a menu",
	Long: `Start in interactive menu mode.

Pick Play to start at level 1 or Select Level to start anywhere; each
level shows the best stars earned on it. Leaving a game returns to the
menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - High scores
  Q            - Quit

Examples:
  openstate menu
  openstate menu --mute
  openstate menu --db ./scores.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	gameCfg, err := config.LoadStealth(flagConfig)
	if err != nil {
		return err
	}
	stealth.SetConfigPath(flagConfig)
	levels := gameCfg.Progression.Table(gameCfg.World.MaxLevels)

	logger := newLogger()
	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}
	sink := openAudio(logger)
	cfg := runtimeConfig()

	for {
		result, err := tui.RunMenu(store, cfg, levels, sink)
		if err != nil {
			return fmt.Errorf("running menu: %w", err)
		}
		cfg = result.Config

		if result.Quit {
			return nil
		}

		if result.WantsScoreboard {
			goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH, cfg.TickRate)
			if err != nil {
				return fmt.Errorf("running scoreboard: %w", err)
			}
			if !goBack {
				return nil
			}
			continue
		}

		game, err := registry.Create(stealth.ID)
		if err != nil {
			return err
		}
		stealth.SetStartLevel(result.StartLevel)
		cfg.Seed = seed()

		back, err := tui.Run(game, store, cfg, sink)
		if err != nil {
			return fmt.Errorf("running game: %w", err)
		}
		if !back {
			return nil
		}
	}
}
