package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/openstate/internal/config"
	"github.com/vovakirdan/openstate/internal/games/stealth"
	"github.com/vovakirdan/openstate/internal/platform/tui"
	"github.com/vovakirdan/openstate/internal/registry"
)

var flagLevel int

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play the game",
	Long: `Start playing right away.

Controls:
  WASD/Arrows  - Move (hold)
  C/Space      - Crouch (hide on ░ tiles)
  P/Esc        - Pause (Esc again leaves)
  R            - Retry the level after capture
  M            - Toggle sound
  Ctrl+S       - Save a text screenshot
  Q/Ctrl+C     - Quit

Examples:
  openstate play
  openstate play --level 5
  openstate play --seed 42 --fps 30
  openstate play --config ./my-stealth.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagLevel, "level", 1, "Level to start on")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := stealth.ID
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q", gameID)
	}

	gameCfg, err := config.LoadStealth(flagConfig)
	if err != nil {
		return err
	}
	if flagLevel < 1 || flagLevel > gameCfg.World.MaxLevels {
		return fmt.Errorf("level must be between 1 and %d", gameCfg.World.MaxLevels)
	}

	stealth.SetConfigPath(flagConfig)
	stealth.SetStartLevel(flagLevel)

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	logger := newLogger()
	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	if _, err := tui.Run(game, store, runtimeConfig(), openAudio(logger)); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
