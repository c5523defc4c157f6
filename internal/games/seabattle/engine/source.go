package engine

import (
	"errors"
	"math/rand"
)

// ErrAwaitingInput is returned by a CoordinateInput that has no shot ready yet.
var ErrAwaitingInput = errors.New("waiting for input")

// ShotSource supplies target coordinates for one side.
// own is the shooting side's own board, for display or strategy.
type ShotSource interface {
	ProduceShot(own *Board) (Coord, error)
}

// CoordinateInput is the boundary to whatever reads a human's target.
// Implementations validate raw input and only return well-formed coordinates.
type CoordinateInput interface {
	NextCoordinate(own *Board) (Coord, error)
}

// Human is the shot source for the human side.
type Human struct {
	Input CoordinateInput
}

// NewHuman creates a human shot source reading from in.
func NewHuman(in CoordinateInput) *Human {
	return &Human{Input: in}
}

// ProduceShot asks the input collaborator for the next target.
func (h *Human) ProduceShot(own *Board) (Coord, error) {
	return h.Input.NextCoordinate(own)
}

// Targeting selects how the automated side picks targets.
type Targeting int

const (
	// TargetRandom picks any in-bounds cell uniformly, shot or not.
	TargetRandom Targeting = iota
	// TargetHunt skips known cells and probes around damaged ships.
	TargetHunt
)

// String returns the config name of the targeting mode.
func (t Targeting) String() string {
	if t == TargetHunt {
		return "hunt"
	}
	return "random"
}

// ParseTargeting converts a config name to a Targeting. Unknown names map to random.
func ParseTargeting(s string) Targeting {
	if s == "hunt" {
		return TargetHunt
	}
	return TargetRandom
}

// Automated is the shot source for the computer side.
type Automated struct {
	rng       *rand.Rand
	targeting Targeting
	enemy     *Board // Board being shot at, needed only for hunting
}

// NewAutomated creates a computer shot source.
func NewAutomated(rng *rand.Rand, t Targeting) *Automated {
	return &Automated{rng: rng, targeting: t}
}

// Watch tells the source which board it is shooting at.
func (a *Automated) Watch(enemy *Board) {
	a.enemy = enemy
}

// ProduceShot returns the next target.
func (a *Automated) ProduceShot(own *Board) (Coord, error) {
	size := own.Size()
	if a.targeting == TargetHunt && a.enemy != nil {
		return a.hunt(), nil
	}
	return C(a.rng.Intn(size), a.rng.Intn(size)), nil
}

// hunt finishes off damaged ships first, then picks a random unshot cell.
func (a *Automated) hunt() Coord {
	b := a.enemy
	var follow []Coord
	for r := range b.Size() {
		for c := range b.Size() {
			if b.Cell(C(r, c)) != CellHit {
				continue
			}
			for _, d := range [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
				n := C(r, c).Add(d[0], d[1])
				if !b.IsOutOfBounds(n) && !b.WasShot(n) {
					follow = append(follow, n)
				}
			}
		}
	}
	if len(follow) > 0 {
		return follow[a.rng.Intn(len(follow))]
	}

	var open []Coord
	for r := range b.Size() {
		for c := range b.Size() {
			if !b.WasShot(C(r, c)) {
				open = append(open, C(r, c))
			}
		}
	}
	if len(open) == 0 {
		return C(0, 0)
	}
	return open[a.rng.Intn(len(open))]
}

// ShotQueue is a CoordinateInput fed by a cursor-driven UI.
type ShotQueue struct {
	pending []Coord
}

// Push queues a target chosen by the player.
func (q *ShotQueue) Push(c Coord) {
	q.pending = append(q.pending, c)
}

// Len returns the number of queued targets.
func (q *ShotQueue) Len() int {
	return len(q.pending)
}

// Clear drops all queued targets.
func (q *ShotQueue) Clear() {
	q.pending = q.pending[:0]
}

// NextCoordinate pops the oldest queued target, or ErrAwaitingInput.
func (q *ShotQueue) NextCoordinate(_ *Board) (Coord, error) {
	if len(q.pending) == 0 {
		return Coord{}, ErrAwaitingInput
	}
	c := q.pending[0]
	q.pending = q.pending[1:]
	return c, nil
}
