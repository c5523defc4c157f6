package engine

import "fmt"

// DefaultBoardSize is the side length used when none is configured.
const DefaultBoardSize = 6

// Board is one side's square grid with its fleet and shot history.
//
// The occupied set serves two phases. While ships are placed it holds ship
// bodies and their buffer contours, so it rejects overlapping or touching
// ships. ResetShotHistory must then run exactly once, after which the set
// only records shots. Skipping the reset makes shots at buffer cells fail
// with ErrAlreadyShot.
type Board struct {
	size      int
	cells     []CellState // Row-major render grid, length size*size
	occupied  map[Coord]struct{}
	ships     []*Ship
	destroyed int
	concealed bool
}

// NewBoard creates an empty board with the given side length.
// A size below 1 yields a DefaultBoardSize board.
func NewBoard(size int) *Board {
	if size < 1 {
		size = DefaultBoardSize
	}
	return &Board{
		size:     size,
		cells:    make([]CellState, size*size),
		occupied: make(map[Coord]struct{}),
	}
}

// Size returns the side length of the board.
func (b *Board) Size() int {
	return b.size
}

// IsOutOfBounds reports whether c lies outside the grid.
func (b *Board) IsOutOfBounds(c Coord) bool {
	return c.Row < 0 || c.Row >= b.size || c.Col < 0 || c.Col >= b.size
}

// isOccupied reports whether c is a ship, buffer or already shot cell.
func (b *Board) isOccupied(c Coord) bool {
	_, ok := b.occupied[c]
	return ok
}

func (b *Board) set(c Coord, s CellState) {
	b.cells[c.Row*b.size+c.Col] = s
}

func (b *Board) get(c Coord) CellState {
	return b.cells[c.Row*b.size+c.Col]
}

// PlaceShip adds a ship to the board and reserves the cells around it.
// Returns ErrInvalidPlacement if the ship leaves the grid or touches an
// occupied cell; the board is unchanged in that case.
func (b *Board) PlaceShip(s *Ship) error {
	cells := s.Cells()
	for _, c := range cells {
		if b.IsOutOfBounds(c) || b.isOccupied(c) {
			return fmt.Errorf("%w: %s ship at %s", ErrInvalidPlacement, s.Orientation(), s.Origin())
		}
	}

	for _, c := range cells {
		b.set(c, CellShip)
		b.occupied[c] = struct{}{}
	}
	b.ships = append(b.ships, s)
	b.contour(s, false)
	return nil
}

// contour occupies the free in-bounds cells around a ship. When reveal is
// set those cells are also shown as confirmed water.
func (b *Board) contour(s *Ship, reveal bool) {
	for _, c := range s.Cells() {
		for _, d := range neighbourhood {
			n := c.Add(d[0], d[1])
			if b.IsOutOfBounds(n) || b.isOccupied(n) {
				continue
			}
			if reveal {
				b.set(n, CellRevealed)
			}
			b.occupied[n] = struct{}{}
		}
	}
}

// Shoot fires at c and returns the outcome.
// Returns ErrOutOfBounds or ErrAlreadyShot without recording anything.
func (b *Board) Shoot(c Coord) (ShotResult, error) {
	if b.IsOutOfBounds(c) {
		return Miss, fmt.Errorf("%w: %s", ErrOutOfBounds, c)
	}
	if b.isOccupied(c) {
		return Miss, fmt.Errorf("%w: %s", ErrAlreadyShot, c)
	}
	b.occupied[c] = struct{}{}

	// Ships never overlap, so at most one can match.
	for _, s := range b.ships {
		if !s.IsHitBy(c) {
			continue
		}
		b.set(c, CellHit)
		if s.damage() {
			b.destroyed++
			b.contour(s, true)
			return Destroyed, nil
		}
		return Hit, nil
	}

	b.set(c, CellMiss)
	return Miss, nil
}

// ResetShotHistory empties the occupied set once placement is finished.
func (b *Board) ResetShotHistory() {
	clear(b.occupied)
}

// WasShot reports whether c can no longer be targeted.
func (b *Board) WasShot(c Coord) bool {
	return b.isOccupied(c)
}

// Cell returns the render state of a single cell, honouring concealment.
// Out-of-bounds cells are reported as empty.
func (b *Board) Cell(c Coord) CellState {
	if b.IsOutOfBounds(c) {
		return CellEmpty
	}
	s := b.get(c)
	if b.concealed && s == CellShip {
		return CellEmpty
	}
	return s
}

// Rows returns the render grid row by row. Hidden ships show as empty on a
// concealed board; hits, misses and revealed water are always visible.
func (b *Board) Rows() [][]CellState {
	rows := make([][]CellState, b.size)
	for r := range b.size {
		rows[r] = make([]CellState, b.size)
		for c := range b.size {
			rows[r][c] = b.Cell(C(r, c))
		}
	}
	return rows
}

// Ships returns the placed ships in placement order.
func (b *Board) Ships() []*Ship {
	out := make([]*Ship, len(b.ships))
	copy(out, b.ships)
	return out
}

// DestroyedCount returns the number of sunk ships.
func (b *Board) DestroyedCount() int {
	return b.destroyed
}

// IsFleetDestroyed reports whether every placed ship has sunk.
func (b *Board) IsFleetDestroyed() bool {
	return b.destroyed == len(b.ships)
}

// ShipCellsRemaining returns the number of ship cells not yet hit.
func (b *Board) ShipCellsRemaining() int {
	n := 0
	for _, s := range b.ships {
		n += s.HitPoints()
	}
	return n
}

// SetConcealed controls whether intact ship cells are hidden in Rows.
func (b *Board) SetConcealed(concealed bool) {
	b.concealed = concealed
}

// Concealed reports whether the board hides its ships.
func (b *Board) Concealed() bool {
	return b.concealed
}
