// Package engine provides the board model, fleet placement and turn logic for Sea Battle.
// This package is UI-agnostic and deterministic for a given RNG seed.
package engine

import (
	"errors"
	"fmt"
)

// Coord is a cell position on a board. Row and Col are 0-indexed.
type Coord struct {
	Row int
	Col int
}

// C is a convenience constructor for Coord.
func C(row, col int) Coord {
	return Coord{Row: row, Col: col}
}

// String renders the coordinate 1-indexed, the way players type it.
func (c Coord) String() string {
	return fmt.Sprintf("%d %d", c.Row+1, c.Col+1)
}

// Add returns a new Coord offset by (dr, dc).
func (c Coord) Add(dr, dc int) Coord {
	return Coord{Row: c.Row + dr, Col: c.Col + dc}
}

// neighbourhood lists the offsets of a cell and its 8 neighbours.
var neighbourhood = [9][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 0}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// ShotResult is the outcome of a valid shot.
type ShotResult int

const (
	Miss ShotResult = iota
	Hit
	Destroyed
)

// String returns a human-readable name for the result.
func (r ShotResult) String() string {
	switch r {
	case Miss:
		return "Miss"
	case Hit:
		return "Hit"
	case Destroyed:
		return "Destroyed"
	default:
		return "Unknown"
	}
}

// GrantsExtraShot reports whether the shooter keeps the turn.
func (r ShotResult) GrantsExtraShot() bool {
	return r == Hit || r == Destroyed
}

// Errors returned by Board. All of them are recoverable at the call site.
var (
	ErrOutOfBounds      = errors.New("coordinate is outside the board")
	ErrAlreadyShot      = errors.New("cell was already shot")
	ErrInvalidPlacement = errors.New("ship does not fit here")
)

// IsShotError reports whether err means the shot should be asked for again.
func IsShotError(err error) bool {
	return errors.Is(err, ErrOutOfBounds) || errors.Is(err, ErrAlreadyShot)
}

// CellState is what a board cell shows when rendered.
type CellState uint8

const (
	CellEmpty    CellState = iota // Water, or a hidden ship on a concealed board
	CellShip                      // Intact ship body
	CellHit                       // Ship body that was shot
	CellMiss                      // Shot into water
	CellRevealed                  // Water next to a sunk ship
)

// String returns a human-readable name for the cell state.
func (s CellState) String() string {
	switch s {
	case CellEmpty:
		return "Empty"
	case CellShip:
		return "Ship"
	case CellHit:
		return "Hit"
	case CellMiss:
		return "Miss"
	case CellRevealed:
		return "Revealed"
	default:
		return "Unknown"
	}
}
