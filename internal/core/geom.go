// Package core provides fundamental types and utilities for the snake game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Cell is one discrete grid position on the board.
type Cell struct {
	X, Y int
}

// Add returns the cell offset by the given vector.
// The result is not normalized; callers wrap it through Board.Wrap.
func (c Cell) Add(v Vec) Cell {
	return Cell{X: c.X + v.DX, Y: c.Y + v.DY}
}

// Vec is an integer offset between cells.
type Vec struct {
	DX, DY int
}

// Neg returns the component-wise negation of the vector.
func (v Vec) Neg() Vec {
	return Vec{DX: -v.DX, DY: -v.DY}
}

// Board describes the playing field dimensions in cells.
// The board is a torus: coordinates wrap on both axes, so there are no
// walls and no out-of-bounds positions after normalization.
type Board struct {
	W, H int
}

// Wrap maps any integer-coordinate cell to canonical board coordinates
// by independent floored modulo on each axis. The result is always in
// [0, W) x [0, H) for positive dimensions, regardless of the input sign.
func (b Board) Wrap(c Cell) Cell {
	return Cell{
		X: mod(c.X, b.W),
		Y: mod(c.Y, b.H),
	}
}

// mod is the floored modulo: the result takes the sign of the divisor.
func mod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}

// Contains reports whether the cell lies within the canonical bounds.
func (b Board) Contains(c Cell) bool {
	return c.X >= 0 && c.X < b.W && c.Y >= 0 && c.Y < b.H
}

// Center returns the cell at the middle of the board.
func (b Board) Center() Cell {
	return Cell{X: b.W / 2, Y: b.H / 2}
}

// CellCount returns the total number of cells on the board.
func (b Board) CellCount() int {
	return b.W * b.H
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
