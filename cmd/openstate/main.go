// openstate is a top-down stealth game for the terminal.
//
// Usage:
//
//	openstate play           - Play from level 1 (or --level N)
//	openstate menu           - Start the menu (level select, scores, sound)
//	openstate scores         - Show best runs and per-level results
//	openstate levels         - Show the level progression table
//	openstate serve          - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 60)
//	--seed <value>   - Set RNG seed for reproducible levels
//	--db <path>      - Set database path (default: ~/.openstate/scores.db)
//	--config <path>  - Use a custom game config YAML
//	--mute           - Start with sound off
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/openstate/internal/audio"
	"github.com/vovakirdan/openstate/internal/core"
	"github.com/vovakirdan/openstate/internal/storage"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagConfig string
	flagMute   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "openstate",
	Short: "Openstate - a stealth game in your terminal",
	Long: `Openstate is a top-down stealth game played in the terminal.

Sneak through a generated maze, collect the scrolls and reach the exit
without being seen by the guards. Crouch on hiding spots to vanish.

Available commands:
  play     - Play directly
  menu     - Interactive menu with level select and scores
  scores   - View best runs and per-level results
  levels   - Show how each level scales
  serve    - Start SSH server for remote play

Examples:
  openstate play
  openstate play --level 4
  openstate menu --mute
  openstate serve --ssh :2222
  openstate scores`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.openstate/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Start with sound off")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(serveCmd)
}

func newLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "openstate",
	})
}

// openStore opens the score database. The game runs without one when it
// cannot be opened.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

func openAudio(logger *log.Logger) audio.Sink {
	return audio.NewBeepSink(logger, !flagMute)
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     seed(),
	}
}

func seed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}
