package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/akulenkov/snaketui/internal/config"
	"github.com/akulenkov/snaketui/internal/core"
	"github.com/akulenkov/snaketui/internal/games/snake"
	"github.com/akulenkov/snaketui/internal/platform/tui"
	"github.com/akulenkov/snaketui/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play the game",
	Long: `Start playing the specified game variant (default: snake).

Controls:
  Arrows/WASD - Steer the snake
  Q/Ctrl+C    - Quit

Variants:
  snake       - Classic rules: apples may spawn under the snake
  snake_fair  - Apples only spawn on free cells

Examples:
  snaketui play
  snaketui play snake_fair
  snaketui play --seed 42
  snaketui play --config ./my-snake.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	variant := "snake"
	if len(args) > 0 {
		variant = args[0]
	}

	// Check if variant exists
	if !registry.Exists(variant) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", variant)
		fmt.Fprintln(os.Stderr, "Run 'snaketui list' to see available variants.")
		os.Exit(1)
	}

	// Surface config problems before entering the alt screen, where
	// stderr is invisible.
	if flagConfig != "" {
		if _, err := config.LoadSnake(flagConfig); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
	snake.SetConfigPath(flagConfig)

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Create game instance
	game, err := registry.Create(variant)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Run the game
	if runErr := tui.Run(game, cfg); runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
