package snake

// Snapshot captures the observable game state for determinism testing.
type Snapshot struct {
	Tick    uint64
	Variant string
	Length  int // Target body length
	BodyLen int // Segments currently on the board
	HeadX   int
	HeadY   int
	Dir     Direction
	AppleX  int
	AppleY  int
	Apples  int
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:    g.tick,
		Variant: g.ID(),
		Apples:  g.apples,
	}

	if g.snake != nil {
		snap.Length = g.snake.Target()
		snap.BodyLen = g.snake.Len()
		snap.HeadX = g.snake.Head().X
		snap.HeadY = g.snake.Head().Y
		snap.Dir = g.snake.Direction()
	}
	if g.apple != nil {
		snap.AppleX = g.apple.Pos().X
		snap.AppleY = g.apple.Pos().Y
	}
	return snap
}
