// snaketui is a terminal snake game with a wrap-around board.
//
// Usage:
//
//	snaketui play [variant]  - Play the game (default: snake)
//	snaketui list            - List available game variants
//	snaketui serve           - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 10)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--config <path> - Path to custom game config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game package to register its variants
	_ "github.com/akulenkov/snaketui/internal/games/snake"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snaketui",
	Short: "Snake in your terminal",
	Long: `snaketui is a terminal snake game. The snake wraps around the board
edges and only stops for itself: running into your own body restarts
the run from a single segment.

Available commands:
  play     - Play the game directly
  list     - Show all game variants
  serve    - Start SSH server for remote play

Examples:
  snaketui play
  snaketui play snake_fair
  snaketui play --seed 42 --fps 15
  snaketui serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 10, "Tick rate (ticks per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
}
