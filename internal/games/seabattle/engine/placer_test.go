package engine_test

import (
	"errors"
	"math/rand"
	"slices"
	"testing"

	"github.com/vovakirdan/tui-seabattle/internal/games/seabattle/engine"
)

func chebyshev(a, b engine.Coord) int {
	dr := a.Row - b.Row
	if dr < 0 {
		dr = -dr
	}
	dc := a.Col - b.Col
	if dc < 0 {
		dc = -dc
	}
	return max(dr, dc)
}

func TestRandomBoardFleet(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		p := engine.NewPlacer(engine.DefaultPlacerParams(), rand.New(rand.NewSource(seed)))
		b, err := p.RandomBoard()
		if err != nil {
			t.Fatalf("seed %d: RandomBoard failed: %v", seed, err)
		}

		ships := b.Ships()
		if len(ships) != len(engine.Fleet) {
			t.Fatalf("seed %d: got %d ships, expected %d", seed, len(ships), len(engine.Fleet))
		}

		var lengths []int
		for _, s := range ships {
			lengths = append(lengths, s.Length())
		}
		expected := slices.Clone(engine.Fleet)
		slices.Sort(lengths)
		slices.Sort(expected)
		if !slices.Equal(lengths, expected) {
			t.Errorf("seed %d: lengths %v, expected %v", seed, lengths, expected)
		}

		for i, a := range ships {
			for _, c := range a.Cells() {
				if b.IsOutOfBounds(c) {
					t.Errorf("seed %d: ship cell %v out of bounds", seed, c)
				}
			}
			for _, other := range ships[i+1:] {
				for _, ca := range a.Cells() {
					for _, cb := range other.Cells() {
						if chebyshev(ca, cb) <= 1 {
							t.Errorf("seed %d: ships touch at %v and %v", seed, ca, cb)
						}
					}
				}
			}
		}

		for r := range b.Size() {
			for c := range b.Size() {
				if b.WasShot(engine.C(r, c)) {
					t.Fatalf("seed %d: shot history not reset at (%d, %d)", seed, r, c)
				}
			}
		}

		if p.Retries >= 50 {
			t.Errorf("seed %d: took %d board retries", seed, p.Retries)
		}
	}
}

func TestRandomBoardDeterministic(t *testing.T) {
	build := func() []engine.Coord {
		p := engine.NewPlacer(engine.DefaultPlacerParams(), rand.New(rand.NewSource(7)))
		b, err := p.RandomBoard()
		if err != nil {
			t.Fatalf("RandomBoard failed: %v", err)
		}
		var cells []engine.Coord
		for _, s := range b.Ships() {
			cells = append(cells, s.Cells()...)
		}
		return cells
	}

	first, second := build(), build()
	if !slices.Equal(first, second) {
		t.Errorf("same seed produced different boards:\n%v\n%v", first, second)
	}
}

func TestRandomBoardLargerSizes(t *testing.T) {
	for _, size := range []int{7, 8, 10} {
		params := engine.DefaultPlacerParams()
		params.Size = size
		p := engine.NewPlacer(params, rand.New(rand.NewSource(int64(size))))
		b, err := p.RandomBoard()
		if err != nil {
			t.Fatalf("size %d: RandomBoard failed: %v", size, err)
		}
		if b.Size() != size {
			t.Errorf("board size = %d, expected %d", b.Size(), size)
		}
		if len(b.Ships()) != len(engine.Fleet) {
			t.Errorf("size %d: got %d ships", size, len(b.Ships()))
		}
	}
}

func TestRandomBoardExhausted(t *testing.T) {
	// The length-3 ship cannot fit on a 2x2 grid.
	p := engine.NewPlacer(engine.PlacerParams{
		Size:            2,
		MaxAttempts:     10,
		MaxBoardRetries: 3,
	}, rand.New(rand.NewSource(1)))

	_, err := p.RandomBoard()
	if !errors.Is(err, engine.ErrPlacementExhausted) {
		t.Fatalf("expected ErrPlacementExhausted, got %v", err)
	}
	if p.Retries != 3 {
		t.Errorf("Retries = %d, expected 3", p.Retries)
	}
}

func TestFleetDestroyedOnlyAfterLastShip(t *testing.T) {
	p := engine.NewPlacer(engine.DefaultPlacerParams(), rand.New(rand.NewSource(3)))
	b, err := p.RandomBoard()
	if err != nil {
		t.Fatalf("RandomBoard failed: %v", err)
	}

	ships := b.Ships()
	for i, s := range ships {
		for _, c := range s.Cells() {
			if _, err := b.Shoot(c); err != nil {
				t.Fatalf("Shoot(%v) failed: %v", c, err)
			}
		}
		last := i == len(ships)-1
		if b.IsFleetDestroyed() != last {
			t.Errorf("after ship %d: IsFleetDestroyed() = %v, expected %v", i+1, b.IsFleetDestroyed(), last)
		}
		if b.DestroyedCount() != i+1 {
			t.Errorf("DestroyedCount() = %d, expected %d", b.DestroyedCount(), i+1)
		}
	}
}
