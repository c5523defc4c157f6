package engine

import (
	"errors"
	"math/rand"
)

// Fleet is the fixed fleet each side receives, longest ship first.
var Fleet = []int{3, 2, 2, 1, 1, 1, 1}

// ErrPlacementExhausted is returned when MaxBoardRetries is set and every
// board attempt ran out of candidates.
var ErrPlacementExhausted = errors.New("could not place the fleet")

// PlacerParams configures random fleet placement.
type PlacerParams struct {
	Size            int // Board side length
	MaxAttempts     int // Candidates tried per ship before the board is abandoned
	MaxBoardRetries int // Whole-board restarts allowed; 0 means unlimited
}

// DefaultPlacerParams returns the classic 6x6 settings.
func DefaultPlacerParams() PlacerParams {
	return PlacerParams{
		Size:            DefaultBoardSize,
		MaxAttempts:     2000,
		MaxBoardRetries: 0,
	}
}

// Placer fills boards with the fleet at random.
type Placer struct {
	params PlacerParams
	rng    *rand.Rand

	// Retries counts abandoned boards during the last RandomBoard call.
	Retries int
}

// NewPlacer creates a placer drawing from rng.
func NewPlacer(p PlacerParams, rng *rand.Rand) *Placer {
	if p.Size < 1 {
		p.Size = DefaultBoardSize
	}
	if p.MaxAttempts < 1 {
		p.MaxAttempts = DefaultPlacerParams().MaxAttempts
	}
	return &Placer{params: p, rng: rng}
}

// RandomBoard builds a complete board, restarting from an empty board each
// time a ship cannot be placed within MaxAttempts candidates.
func (p *Placer) RandomBoard() (*Board, error) {
	p.Retries = 0
	for {
		if b, ok := p.tryBoard(); ok {
			return b, nil
		}
		p.Retries++
		if p.params.MaxBoardRetries > 0 && p.Retries >= p.params.MaxBoardRetries {
			return nil, ErrPlacementExhausted
		}
	}
}

// tryBoard makes a single attempt at placing the fleet.
func (p *Placer) tryBoard() (*Board, bool) {
	b := NewBoard(p.params.Size)
	for _, length := range Fleet {
		if !p.placeOne(b, length) {
			return nil, false
		}
	}
	b.ResetShotHistory()
	return b, true
}

// placeOne tries random candidates until one fits or attempts run out.
// Origins are drawn from [0, size] so ships can reach every edge; candidates
// that fall off the board are simply rejected.
func (p *Placer) placeOne(b *Board, length int) bool {
	for range p.params.MaxAttempts {
		origin := C(p.rng.Intn(p.params.Size+1), p.rng.Intn(p.params.Size+1))
		o := Orientation(p.rng.Intn(2))
		if err := b.PlaceShip(NewShip(origin, length, o)); err == nil {
			return true
		}
	}
	return false
}
