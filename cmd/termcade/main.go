// termcade is a TUI arcade platform for playing retro-style games in the
// terminal.
//
// Usage:
//
//	termcade list              - List available games
//	termcade play <game>       - Play a game
//	termcade menu              - Start menu to pick games interactively
//	termcade serve             - Start SSH server for remote play
//	termcade scores <game>     - Show high scores for a game
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.termcade/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/termcade/termcade/internal/config"

	// Import games to register them
	_ "github.com/termcade/termcade/internal/games/asteroids"
	_ "github.com/termcade/termcade/internal/games/breakout"
	_ "github.com/termcade/termcade/internal/games/flappy"
	_ "github.com/termcade/termcade/internal/games/frogger"
	_ "github.com/termcade/termcade/internal/games/invaders"
	_ "github.com/termcade/termcade/internal/games/pacman"
	_ "github.com/termcade/termcade/internal/games/pong"
	_ "github.com/termcade/termcade/internal/games/rogue"
	_ "github.com/termcade/termcade/internal/games/snake"
	_ "github.com/termcade/termcade/internal/games/tetris"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "termcade",
	Short: "Termcade - Play retro games in your terminal",
	Long: `Termcade is a terminal-based gaming platform that lets you play
classic-style games directly in your terminal.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  termcade list
  termcade play snake
  termcade menu
  termcade serve --ssh :2222
  termcade scores tetris`,
	PersistentPreRun: applyArcadeDefaults,
}

// applyArcadeDefaults fills flags the user did not set from the shell-wide
// arcade.yaml, so a config file can change the defaults without flags.
func applyArcadeDefaults(cmd *cobra.Command, _ []string) {
	arcade, err := config.LoadArcade("")
	if err != nil {
		return
	}

	if !cmd.Flags().Changed("fps") && arcade.TickRate > 0 {
		flagFPS = arcade.TickRate
	}
	if !cmd.Flags().Changed("db") && arcade.DBPath != "" {
		flagDBPath = arcade.DBPath
	}
	if flagDifficulty == "" {
		flagDifficulty = arcade.Difficulty
	}
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.termcade/scores.db", "Path to scores database")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
