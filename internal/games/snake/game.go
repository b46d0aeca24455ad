package snake

import (
	"fmt"
	"math/rand"

	"github.com/akulenkov/snaketui/internal/config"
	"github.com/akulenkov/snaketui/internal/core"
	"github.com/akulenkov/snaketui/internal/registry"
)

// Game drives the snake simulation: one Move per tick, apple pickup, and
// rendering. All state lives here; there are no package-level game objects.
type Game struct {
	fair bool // Fair variant forces free-cell apple placement
	rng  *rand.Rand
	tick uint64

	board  core.Board
	snake  *Snake
	apple  *Apple
	apples int // Apples eaten since the last reset

	excludeOccupied bool

	// Layout
	hudHeight int
	offsetX   int
	offsetY   int
	screenW   int
	screenH   int
	tooSmall  bool
}

// configPath is set by the CLI before the game is created.
var configPath string

// SetConfigPath sets the config file path used on the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// New creates the classic game: apples may spawn under the snake.
func New() *Game {
	return &Game{}
}

// NewFair creates the fair variant: apples spawn on free cells only.
func NewFair() *Game {
	return &Game{fair: true}
}

func init() {
	registry.Register("snake", func() registry.Game {
		return New()
	})
	registry.Register("snake_fair", func() registry.Game {
		return NewFair()
	})
}

// ID returns the variant identifier.
func (g *Game) ID() string {
	if g.fair {
		return "snake_fair"
	}
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.fair {
		return "Snake (Fair Apples)"
	}
	return "Snake"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	gameCfg, err := config.LoadSnake(configPath)
	if err != nil {
		gameCfg = config.DefaultSnakeConfig()
	}

	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.apples = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.hudHeight = 2

	g.board = core.Board{W: gameCfg.Board.Width, H: gameCfg.Board.Height}
	g.excludeOccupied = g.fair || gameCfg.Rules.ExcludeOccupiedCells

	// The playfield needs room for its border plus the HUD.
	requiredW := g.board.W + 2
	requiredH := g.board.H + g.hudHeight + 2
	if g.screenW < requiredW || g.screenH < requiredH {
		g.tooSmall = true
		return
	}
	g.tooSmall = false

	// Center the playfield below the HUD.
	g.offsetX = (g.screenW - g.board.W) / 2
	g.offsetY = g.hudHeight + 1

	g.snake = NewSnake(g.board)
	g.apple = NewApple()
	g.relocateApple()
}

// relocateApple places the apple according to the active placement rule.
func (g *Game) relocateApple() {
	if g.excludeOccupied {
		g.apple.RandomizeFree(g.rng, g.board, g.snake.Occupies)
	} else {
		g.apple.Randomize(g.rng, g.board)
	}
}

// Step advances the game by one tick: apply input, move, check the apple.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.applyInput(input)

	if g.snake.Move() == MoveReset {
		// The move was abandoned; the run starts over from the center.
		g.apples = 0
		return core.StepResult{State: g.State()}
	}

	if g.snake.Head() == g.apple.Pos() {
		g.snake.Grow()
		g.apples++
		g.relocateApple()
	}

	return core.StepResult{State: g.State()}
}

// applyInput forwards directional actions to the snake. Reversal requests
// are dropped inside Steer; all other actions are ignored here.
func (g *Game) applyInput(input core.InputFrame) {
	switch {
	case input.Has(core.ActionUp):
		g.snake.Steer(DirUp)
	case input.Has(core.ActionDown):
		g.snake.Steer(DirDown)
	case input.Has(core.ActionLeft):
		g.snake.Steer(DirLeft)
	case input.Has(core.ActionRight):
		g.snake.Steer(DirRight)
	}
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	dst.DrawBorder(g.offsetX-1, g.offsetY-1, g.board.W+2, g.board.H+2, core.ColorGray)

	if g.board.Contains(g.apple.Pos()) {
		g.drawCell(dst, g.apple.Pos(), '●', core.ColorRed)
	}

	for i, seg := range g.snake.Body() {
		if i == 0 {
			g.drawCell(dst, seg, 'O', core.ColorBrightGreen)
		} else {
			g.drawCell(dst, seg, 'o', core.ColorGreen)
		}
	}
}

// drawCell draws a rune at a board cell, translated to screen coordinates.
func (g *Game) drawCell(dst *core.Screen, c core.Cell, r rune, color core.Color) {
	dst.SetColored(g.offsetX+c.X, g.offsetY+c.Y, r, color)
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" %s — Length: %d  Apples: %d", g.Title(), g.State().Length, g.apples)
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(line1), len(line2)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	for y := boxY + 1; y < boxY+boxH-1; y++ {
		for x := boxX + 1; x < boxX+boxW-1; x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBorder(boxX, boxY, boxW, boxH, core.ColorWhite)
	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}

// State returns the current game state. There is no game-over flag: the
// loop runs until the player quits, and self-collision merely resets the
// snake.
func (g *Game) State() core.GameState {
	length := 0
	if g.snake != nil {
		length = g.snake.Target()
	}
	return core.GameState{
		Length: length,
		Apples: g.apples,
	}
}
