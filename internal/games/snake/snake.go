package snake

import "github.com/akulenkov/snaketui/internal/core"

// MoveOutcome describes what happened during one Move call.
type MoveOutcome int

const (
	// MoveSlid means the head advanced and the tail was trimmed.
	MoveSlid MoveOutcome = iota
	// MoveGrew means the head advanced without trimming, because the body
	// has not yet reached the target length.
	MoveGrew
	// MoveReset means the head would have entered the snake's own body;
	// the snake was reset to its start state and no head was inserted.
	MoveReset
)

func (o MoveOutcome) String() string {
	switch o {
	case MoveSlid:
		return "slid"
	case MoveGrew:
		return "grew"
	case MoveReset:
		return "reset"
	default:
		return "unknown"
	}
}

// Snake holds the body segments and movement state.
//
// The body is an ordered sequence of cells, head first. The target length
// and the actual body length differ transiently while the snake grows:
// Grow raises the target, and subsequent moves stop trimming the tail
// until the body catches up. After every completed move the body length
// never exceeds the target.
type Snake struct {
	board  core.Board
	body   []core.Cell // Head at index 0
	target int         // Target body length
	dir    Direction
}

// NewSnake creates a snake in the start state: length 1, centered on the
// board, moving right.
func NewSnake(board core.Board) *Snake {
	s := &Snake{board: board}
	s.Reset()
	return s
}

// Reset restores the start state in place. Called at construction and
// whenever the snake runs into its own body; self-collision is the sole
// loss condition and is never surfaced beyond this reset.
func (s *Snake) Reset() {
	s.target = 1
	s.body = []core.Cell{s.board.Center()}
	s.dir = DirRight
}

// Head returns the current head cell.
func (s *Snake) Head() core.Cell {
	return s.body[0]
}

// Body returns the body segments, head first. The slice is the snake's
// own storage; callers must not mutate it.
func (s *Snake) Body() []core.Cell {
	return s.body
}

// Len returns the number of body segments currently on the board.
func (s *Snake) Len() int {
	return len(s.body)
}

// Target returns the target body length (the "length" score).
func (s *Snake) Target() int {
	return s.target
}

// Direction returns the current movement direction.
func (s *Snake) Direction() Direction {
	return s.dir
}

// Steer requests a direction change. A request that exactly reverses the
// current direction is silently ignored (the snake cannot fold back onto
// its neck); any other direction takes effect immediately. Returns whether
// the request was accepted.
func (s *Snake) Steer(req Direction) bool {
	if req.IsOpposite(s.dir) {
		return false
	}
	s.dir = req
	return true
}

// Grow raises the target length by one. The body grows over the following
// moves as tail trimming pauses. Growth is unbounded; on a board smaller
// than the target the snake eventually collides with itself and resets.
func (s *Snake) Grow() {
	s.target++
}

// Move advances the snake one cell in its current direction, wrapping
// around the board edges.
//
// Invariant: the self-collision scan starts at body index 2. Index 0 is
// the head being replaced, and index 1 — the neck — is geometrically
// unreachable in one step because Steer rejects reversals. Everything
// behind the neck, including the current tail cell, is a collision.
//
// On collision the snake resets and the move is abandoned: no head is
// inserted for this tick.
func (s *Snake) Move() MoveOutcome {
	newHead := s.board.Wrap(s.Head().Add(s.dir.Vec()))

	if len(s.body) > 2 {
		for _, seg := range s.body[2:] {
			if seg == newHead {
				s.Reset()
				return MoveReset
			}
		}
	}

	s.body = append([]core.Cell{newHead}, s.body...)
	if len(s.body) > s.target {
		s.body = s.body[:len(s.body)-1]
		return MoveSlid
	}
	return MoveGrew
}

// Occupies reports whether any body segment is at the given cell.
func (s *Snake) Occupies(c core.Cell) bool {
	for _, seg := range s.body {
		if seg == c {
			return true
		}
	}
	return false
}
