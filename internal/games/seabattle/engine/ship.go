package engine

// Orientation is the direction a ship extends from its origin.
type Orientation uint8

const (
	Horizontal Orientation = iota // Extends along columns
	Vertical                      // Extends along rows
)

// String returns the string representation of an orientation.
func (o Orientation) String() string {
	if o == Vertical {
		return "Vertical"
	}
	return "Horizontal"
}

// Ship is a straight run of cells. Its shape never changes after creation;
// only the owning Board lowers its hit points.
type Ship struct {
	origin      Coord
	length      int
	orientation Orientation
	hitPoints   int
}

// NewShip creates an undamaged ship. A length below 1 is raised to 1;
// callers validate fleet lengths before building ships.
func NewShip(origin Coord, length int, o Orientation) *Ship {
	if length < 1 {
		length = 1
	}
	return &Ship{
		origin:      origin,
		length:      length,
		orientation: o,
		hitPoints:   length,
	}
}

// Origin returns the first cell of the ship.
func (s *Ship) Origin() Coord { return s.origin }

// Length returns the number of cells the ship covers.
func (s *Ship) Length() int { return s.length }

// Orientation returns the ship's orientation.
func (s *Ship) Orientation() Orientation { return s.orientation }

// HitPoints returns the number of cells not yet hit.
func (s *Ship) HitPoints() int { return s.hitPoints }

// IsDestroyed reports whether every cell has been hit.
func (s *Ship) IsDestroyed() bool { return s.hitPoints == 0 }

// Cells returns the cells covered by the ship, starting at the origin.
func (s *Ship) Cells() []Coord {
	cells := make([]Coord, s.length)
	for i := range s.length {
		if s.orientation == Vertical {
			cells[i] = s.origin.Add(i, 0)
		} else {
			cells[i] = s.origin.Add(0, i)
		}
	}
	return cells
}

// IsHitBy reports whether c is one of the ship's cells.
func (s *Ship) IsHitBy(c Coord) bool {
	for _, cell := range s.Cells() {
		if cell == c {
			return true
		}
	}
	return false
}

// damage removes one hit point. Returns true if the ship just sank.
func (s *Ship) damage() bool {
	if s.hitPoints == 0 {
		return false
	}
	s.hitPoints--
	return s.hitPoints == 0
}
