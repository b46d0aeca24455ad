package snake

import (
	"math/rand"

	"github.com/akulenkov/snaketui/internal/core"
)

// Apple is the single collectible on the board. It is constructed once and
// relocated in place whenever the snake's head reaches it.
type Apple struct {
	pos core.Cell
}

// NewApple creates an apple with no position; callers place it with one of
// the Randomize methods before the first tick.
func NewApple() *Apple {
	return &Apple{pos: core.Cell{X: -1, Y: -1}}
}

// Pos returns the apple's current cell.
func (a *Apple) Pos() core.Cell {
	return a.pos
}

// Randomize places the apple on a cell drawn uniformly and independently
// on each axis over the whole board. The snake's body is deliberately not
// consulted: the apple may land under the snake, silently blocking scoring
// until the body slides off it. This matches the classic behavior.
func (a *Apple) Randomize(rng *rand.Rand, b core.Board) {
	a.pos = core.Cell{
		X: rng.Intn(b.W),
		Y: rng.Intn(b.H),
	}
}

// RandomizeFree places the apple on a cell drawn uniformly from the cells
// for which occupied returns false. If no free cell exists the apple is
// parked off-board until the next relocation.
func (a *Apple) RandomizeFree(rng *rand.Rand, b core.Board, occupied func(core.Cell) bool) {
	free := make([]core.Cell, 0, b.CellCount())
	for y := 0; y < b.H; y++ {
		for x := 0; x < b.W; x++ {
			c := core.Cell{X: x, Y: y}
			if !occupied(c) {
				free = append(free, c)
			}
		}
	}

	if len(free) == 0 {
		a.pos = core.Cell{X: -1, Y: -1}
		return
	}
	a.pos = free[rng.Intn(len(free))]
}
