package snake

import (
	"strings"
	"testing"

	"github.com/akulenkov/snaketui/internal/core"
)

func testRuntimeConfig(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		Seed:     seed,
		ScreenW:  80,
		ScreenH:  30,
		TickRate: 10,
	}
}

func TestDeterminism(t *testing.T) {
	cfg := testRuntimeConfig(12345)

	g1 := New()
	g1.Reset(cfg)
	g2 := New()
	g2.Reset(cfg)

	input := core.NewInputFrame()
	for i := 0; i < 100; i++ {
		input.Clear()
		if i == 20 {
			input.Set(core.ActionDown)
		}
		if i == 40 {
			input.Set(core.ActionLeft)
		}

		g1.Step(input)
		g2.Step(input)
	}

	snap1 := g1.Snapshot()
	snap2 := g2.Snapshot()

	if snap1 != snap2 {
		t.Errorf("snapshots diverged:\n%+v\n%+v", snap1, snap2)
	}
}

func TestStepMovesOneCellPerTick(t *testing.T) {
	g := New()
	g.Reset(testRuntimeConfig(1))

	start := g.snake.Head()
	g.Step(core.NewInputFrame())

	want := g.board.Wrap(start.Add(DirRight.Vec()))
	if g.snake.Head() != want {
		t.Errorf("head = %v, expected %v", g.snake.Head(), want)
	}
	if g.State().Length != 1 {
		t.Errorf("length = %d, expected 1", g.State().Length)
	}
}

func TestStepIgnoresReversalInput(t *testing.T) {
	g := New()
	g.Reset(testRuntimeConfig(2))

	input := core.NewInputFrame()
	input.Set(core.ActionLeft) // Opposite of the initial rightward direction
	g.Step(input)

	if g.snake.Direction() != DirRight {
		t.Errorf("direction = %v, reversal should have been dropped", g.snake.Direction())
	}

	input.Clear()
	input.Set(core.ActionUp)
	g.Step(input)

	if g.snake.Direction() != DirUp {
		t.Errorf("direction = %v, expected up", g.snake.Direction())
	}
}

func TestEatingGrowsAndRelocatesApple(t *testing.T) {
	g := New()
	g.Reset(testRuntimeConfig(3))

	// Put the apple directly in the snake's path.
	g.apple.pos = g.board.Wrap(g.snake.Head().Add(DirRight.Vec()))

	g.Step(core.NewInputFrame())

	if g.State().Length != 2 {
		t.Errorf("length = %d, expected 2 after eating", g.State().Length)
	}
	if g.State().Apples != 1 {
		t.Errorf("apples = %d, expected 1", g.State().Apples)
	}
	if !g.board.Contains(g.apple.Pos()) {
		t.Errorf("relocated apple %v is off the board", g.apple.Pos())
	}
}

func TestFairVariantRelocatesOffSnake(t *testing.T) {
	g := NewFair()
	g.Reset(testRuntimeConfig(4))

	for i := 0; i < 50; i++ {
		eaten := g.apple.Pos()
		g.apple.pos = g.board.Wrap(g.snake.Head().Add(g.snake.Direction().Vec()))

		g.Step(core.NewInputFrame())

		if g.snake.Occupies(g.apple.Pos()) {
			t.Fatalf("fair variant placed the apple on the snake at %v", g.apple.Pos())
		}
		if g.apple.Pos() == g.snake.Head() {
			t.Fatalf("apple did not move off the eaten cell %v", eaten)
		}
	}
}

func TestSelfCollisionResetsRun(t *testing.T) {
	g := New()
	g.Reset(testRuntimeConfig(5))
	g.apples = 3

	// Force a 2x2 loop about to bite its own tail.
	g.snake.body = []core.Cell{
		{X: 5, Y: 5},
		{X: 5, Y: 6},
		{X: 6, Y: 6},
		{X: 6, Y: 5},
	}
	g.snake.target = 4
	g.snake.dir = DirRight

	g.Step(core.NewInputFrame())

	if g.State().Length != 1 {
		t.Errorf("length = %d, expected 1 after reset", g.State().Length)
	}
	if g.State().Apples != 0 {
		t.Errorf("apples = %d, expected 0 after reset", g.State().Apples)
	}
	if g.snake.Head() != g.board.Center() {
		t.Errorf("head = %v, expected center %v", g.snake.Head(), g.board.Center())
	}
}

func TestWindowTooSmall(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{Seed: 6, ScreenW: 10, ScreenH: 5, TickRate: 10})

	if !g.tooSmall {
		t.Fatal("game should detect that the window is too small")
	}

	// Ticks are inert while too small.
	before := g.Snapshot()
	g.Step(core.NewInputFrame())
	after := g.Snapshot()
	if after.HeadX != before.HeadX || after.HeadY != before.HeadY {
		t.Error("snake should not move while the window is too small")
	}

	screen := core.NewScreen(40, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), "small") {
		t.Error("render should show the too-small overlay")
	}
}

func TestRenderShowsHUDAndEntities(t *testing.T) {
	g := New()
	g.Reset(testRuntimeConfig(7))

	screen := core.NewScreen(80, 30)
	g.Render(screen)

	content := screen.String()
	if !strings.Contains(content, "Snake") {
		t.Error("HUD should contain the game title")
	}
	if !strings.Contains(content, "Length: 1") {
		t.Error("HUD should show the snake length")
	}
	if !strings.Contains(content, "O") {
		t.Error("render should draw the snake head")
	}
	if !strings.Contains(content, "●") {
		t.Error("render should draw the apple")
	}

	// Head is bright green, apple red.
	head := g.snake.Head()
	if screen.ColorAt(g.offsetX+head.X, g.offsetY+head.Y) != core.ColorBrightGreen {
		t.Error("head should be rendered bright green")
	}
	apple := g.apple.Pos()
	if screen.ColorAt(g.offsetX+apple.X, g.offsetY+apple.Y) != core.ColorRed {
		t.Error("apple should be rendered red")
	}
}

func TestVariantIDsAndTitles(t *testing.T) {
	classic := New()
	if classic.ID() != "snake" || classic.Title() != "Snake" {
		t.Errorf("classic variant = %q / %q", classic.ID(), classic.Title())
	}

	fair := NewFair()
	if fair.ID() != "snake_fair" || fair.Title() != "Snake (Fair Apples)" {
		t.Errorf("fair variant = %q / %q", fair.ID(), fair.Title())
	}
}
