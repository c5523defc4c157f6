package seabattle

import "github.com/vovakirdan/tui-seabattle/internal/games/seabattle/engine"

// Snapshot is the observable game state in primitive types, for
// determinism tests.
type Snapshot struct {
	Tick      uint64
	Score     int
	Turn      int
	Current   int
	Over      bool
	Winner    int
	CursorRow int
	CursorCol int

	// Row-major cell states; the opponent board is captured as the player sees it
	PlayerCells   []int
	OpponentCells []int
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:      g.tick,
		Score:     g.score,
		CursorRow: g.cursor.Row,
		CursorCol: g.cursor.Col,
	}
	if g.match == nil {
		return snap
	}
	snap.Turn = g.match.Turn()
	snap.Current = int(g.match.Current())
	snap.Over = g.match.Over()
	snap.Winner = int(g.match.Winner())
	snap.PlayerCells = flatten(g.match.OwnBoard(engine.Player))
	snap.OpponentCells = flatten(g.match.OwnBoard(engine.Opponent))
	return snap
}

func flatten(b *engine.Board) []int {
	out := make([]int, 0, b.Size()*b.Size())
	for _, row := range b.Rows() {
		for _, s := range row {
			out = append(out, int(s))
		}
	}
	return out
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Score)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Turn)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Current)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Winner)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.CursorRow) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.CursorCol) //#nosec G115 -- hash computation
	if snap.Over {
		h = h*31 + 1
	}

	for _, v := range snap.PlayerCells {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.OpponentCells {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	return h
}
