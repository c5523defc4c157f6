package engine_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-seabattle/internal/games/seabattle/engine"
)

// scripted replays a fixed list of targets.
type scripted struct {
	shots []engine.Coord
}

func (s *scripted) ProduceShot(_ *engine.Board) (engine.Coord, error) {
	if len(s.shots) == 0 {
		return engine.Coord{}, errors.New("script exhausted")
	}
	c := s.shots[0]
	s.shots = s.shots[1:]
	return c, nil
}

func script(shots ...engine.Coord) *scripted {
	return &scripted{shots: shots}
}

func TestTurnAlternation(t *testing.T) {
	playerBoard := boardWith(t, 6, engine.NewShip(engine.C(5, 5), 1, engine.Horizontal))
	opponentBoard := boardWith(t, 6, engine.NewShip(engine.C(0, 0), 2, engine.Horizontal))

	m := engine.NewMatch(playerBoard, opponentBoard,
		script(engine.C(0, 0), engine.C(3, 3)),
		script(engine.C(2, 2)),
	)

	expected := []struct {
		side   engine.Side
		result engine.ShotResult
		again  bool
		turn   int
	}{
		{engine.Player, engine.Hit, true, 1},
		{engine.Player, engine.Miss, false, 1},
		{engine.Opponent, engine.Miss, false, 2},
	}

	for i, want := range expected {
		if m.Current() != want.side {
			t.Fatalf("step %d: current side = %v, expected %v", i+1, m.Current(), want.side)
		}
		rep, err := m.Step()
		if err != nil {
			t.Fatalf("step %d: %v", i+1, err)
		}
		if rep.Side != want.side || rep.Result != want.result || rep.Again != want.again || rep.Turn != want.turn {
			t.Errorf("step %d: got %+v, expected side=%v result=%v again=%v turn=%d",
				i+1, rep, want.side, want.result, want.again, want.turn)
		}
	}

	if m.Current() != engine.Player || m.Turn() != 3 {
		t.Errorf("after script: current=%v turn=%d, expected Player turn 3", m.Current(), m.Turn())
	}
}

func TestRejectedShotsAreAskedAgain(t *testing.T) {
	playerBoard := boardWith(t, 6, engine.NewShip(engine.C(5, 5), 1, engine.Horizontal))
	opponentBoard := boardWith(t, 6, engine.NewShip(engine.C(0, 0), 2, engine.Horizontal))

	m := engine.NewMatch(playerBoard, opponentBoard,
		script(engine.C(3, 3), engine.C(6, 0), engine.C(3, 3), engine.C(4, 4)),
		script(engine.C(0, 0)),
	)

	var rejected []error
	m.Listener = func(e engine.Event) {
		if e.Kind == engine.EventRejected {
			rejected = append(rejected, e.Err)
		}
	}

	if _, err := m.Step(); err != nil {
		t.Fatalf("first step: %v", err)
	}
	// Opponent misses, handing the turn back.
	if _, err := m.Step(); err != nil {
		t.Fatalf("opponent step: %v", err)
	}

	turn := m.Turn()
	rep, err := m.Step()
	if err != nil {
		t.Fatalf("player step: %v", err)
	}
	if rep.Target != engine.C(4, 4) {
		t.Errorf("resolved target = %v, expected (4, 4)", rep.Target)
	}
	if rep.Turn != turn {
		t.Errorf("rejections consumed the turn: report turn %d, expected %d", rep.Turn, turn)
	}

	if len(rejected) != 2 {
		t.Fatalf("got %d rejections, expected 2", len(rejected))
	}
	if !errors.Is(rejected[0], engine.ErrOutOfBounds) {
		t.Errorf("first rejection = %v, expected ErrOutOfBounds", rejected[0])
	}
	if !errors.Is(rejected[1], engine.ErrAlreadyShot) {
		t.Errorf("second rejection = %v, expected ErrAlreadyShot", rejected[1])
	}
	if got := m.Stats(engine.Player).Rejected; got != 2 {
		t.Errorf("Rejected stat = %d, expected 2", got)
	}
	if got := m.Stats(engine.Player).Shots; got != 2 {
		t.Errorf("Shots stat = %d, expected 2", got)
	}
}

func TestWinEndsMatchWithoutExtraShot(t *testing.T) {
	playerBoard := boardWith(t, 6, engine.NewShip(engine.C(5, 5), 1, engine.Horizontal))
	opponentBoard := boardWith(t, 6, engine.NewShip(engine.C(2, 2), 1, engine.Horizontal))

	m := engine.NewMatch(playerBoard, opponentBoard, script(engine.C(2, 2)), script())

	var over int
	m.Listener = func(e engine.Event) {
		if e.Kind == engine.EventOver {
			over++
		}
	}

	rep, err := m.Step()
	if err != nil {
		t.Fatalf("Step failed: %v", err)
	}
	if rep.Result != engine.Destroyed || !rep.Over || rep.Again {
		t.Errorf("report = %+v, expected Destroyed, Over, no extra shot", rep)
	}
	if !m.Over() || m.Winner() != engine.Player || m.Phase() != engine.PhaseOver {
		t.Errorf("match should be won by Player, over=%v winner=%v", m.Over(), m.Winner())
	}

	// Further steps must not touch either source.
	rep, err = m.Step()
	if err != nil || !rep.Over {
		t.Errorf("Step after end = %+v, %v", rep, err)
	}
	if over != 1 {
		t.Errorf("EventOver fired %d times, expected 1", over)
	}
}

func TestSinkingShipKeepsTurn(t *testing.T) {
	playerBoard := boardWith(t, 6, engine.NewShip(engine.C(5, 5), 1, engine.Horizontal))
	opponentBoard := boardWith(t, 6,
		engine.NewShip(engine.C(0, 0), 1, engine.Horizontal),
		engine.NewShip(engine.C(0, 2), 1, engine.Horizontal),
	)

	m := engine.NewMatch(playerBoard, opponentBoard, script(engine.C(0, 0)), script())

	rep, err := m.Step()
	if err != nil {
		t.Fatalf("Step failed: %v", err)
	}
	if rep.Result != engine.Destroyed || !rep.Again || rep.Over {
		t.Errorf("got %+v, expected Destroyed with another shot and match still running", rep)
	}
	if m.Current() != engine.Player || m.Turn() != 1 {
		t.Errorf("current=%v turn=%d, expected Player turn 1", m.Current(), m.Turn())
	}
}

func TestAwaitingInputLeavesMatchUntouched(t *testing.T) {
	playerBoard := boardWith(t, 6, engine.NewShip(engine.C(5, 5), 1, engine.Horizontal))
	opponentBoard := boardWith(t, 6, engine.NewShip(engine.C(0, 0), 1, engine.Horizontal))

	queue := &engine.ShotQueue{}
	m := engine.NewMatch(playerBoard, opponentBoard, engine.NewHuman(queue),
		engine.NewAutomated(rand.New(rand.NewSource(1)), engine.TargetRandom))

	_, err := m.Step()
	if !errors.Is(err, engine.ErrAwaitingInput) {
		t.Fatalf("expected ErrAwaitingInput, got %v", err)
	}
	if m.Current() != engine.Player || m.Turn() != 1 || m.Stats(engine.Player).Shots != 0 {
		t.Error("waiting for input should not change the match")
	}

	queue.Push(engine.C(0, 0))
	rep, err := m.Step()
	if err != nil {
		t.Fatalf("Step failed: %v", err)
	}
	if !rep.Over || m.Winner() != engine.Player {
		t.Errorf("queued shot should win, got %+v", rep)
	}
	if queue.Len() != 0 {
		t.Errorf("queue should be drained, has %d", queue.Len())
	}
}

func TestAutomatedMatchTerminates(t *testing.T) {
	for _, targeting := range []engine.Targeting{engine.TargetRandom, engine.TargetHunt} {
		t.Run(targeting.String(), func(t *testing.T) {
			rng := rand.New(rand.NewSource(11))
			placer := engine.NewPlacer(engine.DefaultPlacerParams(), rng)
			a, err := placer.RandomBoard()
			if err != nil {
				t.Fatal(err)
			}
			b, err := placer.RandomBoard()
			if err != nil {
				t.Fatal(err)
			}

			m := engine.NewMatch(a, b,
				engine.NewAutomated(rng, targeting),
				engine.NewAutomated(rng, targeting),
			)
			winner, err := m.Run()
			if err != nil {
				t.Fatalf("Run failed: %v", err)
			}
			if !m.TargetBoard(winner).IsFleetDestroyed() {
				t.Error("winner's target fleet should be destroyed")
			}
			if m.OwnBoard(winner).IsFleetDestroyed() {
				t.Error("winner's own fleet should survive")
			}
			if targeting == engine.TargetHunt {
				for _, side := range []engine.Side{engine.Player, engine.Opponent} {
					if r := m.Stats(side).Rejected; r != 0 {
						t.Errorf("%v: hunt targeting produced %d rejected shots", side, r)
					}
				}
			}
		})
	}
}

func TestAutomatedRandomStaysInBounds(t *testing.T) {
	own := engine.NewBoard(6)
	src := engine.NewAutomated(rand.New(rand.NewSource(5)), engine.TargetRandom)
	for range 500 {
		c, err := src.ProduceShot(own)
		if err != nil {
			t.Fatal(err)
		}
		if own.IsOutOfBounds(c) {
			t.Fatalf("random shot %v out of bounds", c)
		}
	}
}

func TestHuntFollowsDamagedShip(t *testing.T) {
	enemy := boardWith(t, 6, engine.NewShip(engine.C(2, 2), 3, engine.Horizontal))
	if res, _ := enemy.Shoot(engine.C(2, 3)); res != engine.Hit {
		t.Fatalf("setup shot = %v, expected Hit", res)
	}

	src := engine.NewAutomated(rand.New(rand.NewSource(9)), engine.TargetHunt)
	src.Watch(enemy)

	neighbours := map[engine.Coord]bool{
		engine.C(1, 3): true, engine.C(3, 3): true,
		engine.C(2, 2): true, engine.C(2, 4): true,
	}
	for range 20 {
		c, _ := src.ProduceShot(engine.NewBoard(6))
		if !neighbours[c] {
			t.Fatalf("hunt picked %v, expected a neighbour of the hit", c)
		}
	}
}

func TestParseTargeting(t *testing.T) {
	tests := []struct {
		in       string
		expected engine.Targeting
	}{
		{"hunt", engine.TargetHunt},
		{"random", engine.TargetRandom},
		{"", engine.TargetRandom},
		{"bogus", engine.TargetRandom},
	}
	for _, tc := range tests {
		if got := engine.ParseTargeting(tc.in); got != tc.expected {
			t.Errorf("ParseTargeting(%q) = %v, expected %v", tc.in, got, tc.expected)
		}
	}
}
