package snake

import "github.com/akulenkov/snaketui/internal/core"

// Direction is a unit step vector on the grid.
type Direction struct {
	DX, DY int
}

// The four movement directions. Y grows downward, matching screen rows.
var (
	DirUp    = Direction{DX: 0, DY: -1}
	DirDown  = Direction{DX: 0, DY: 1}
	DirLeft  = Direction{DX: -1, DY: 0}
	DirRight = Direction{DX: 1, DY: 0}
)

// Vec returns the direction as a core offset vector.
func (d Direction) Vec() core.Vec {
	return core.Vec{DX: d.DX, DY: d.DY}
}

// Opposite returns the component-wise negation of the direction.
func (d Direction) Opposite() Direction {
	return Direction{DX: -d.DX, DY: -d.DY}
}

// IsOpposite reports whether other is the exact reversal of d.
func (d Direction) IsOpposite(other Direction) bool {
	return d.Opposite() == other
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}
