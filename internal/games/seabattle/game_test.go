package seabattle

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-seabattle/internal/config"
	"github.com/vovakirdan/tui-seabattle/internal/core"
	"github.com/vovakirdan/tui-seabattle/internal/games/seabattle/engine"
	"github.com/vovakirdan/tui-seabattle/internal/registry"
)

func newTestGame(t *testing.T, think int) *Game {
	t.Helper()
	cfg := config.DefaultSeaBattleConfig()
	cfg.Opponent.ThinkTicks = think
	g := New(cfg, "normal")
	g.Reset(core.RuntimeConfig{Seed: 42, ScreenW: 80, ScreenH: 24})
	if g.Match() == nil {
		t.Fatal("Reset should start a match")
	}
	return g
}

func fire() core.InputFrame {
	in := core.NewInputFrame()
	in.Set(core.ActionFire)
	return in
}

// shipCell returns a cell of the longest enemy ship.
func shipCell(g *Game) engine.Coord {
	return g.Match().OwnBoard(engine.Opponent).Ships()[0].Cells()[0]
}

// waterCell returns an enemy cell that holds no ship.
func waterCell(t *testing.T, g *Game) engine.Coord {
	t.Helper()
	b := g.Match().OwnBoard(engine.Opponent)
	for r := range b.Size() {
		for c := range b.Size() {
			target := engine.C(r, c)
			hit := false
			for _, s := range b.Ships() {
				if s.IsHitBy(target) {
					hit = true
				}
			}
			if !hit && !b.WasShot(target) {
				return target
			}
		}
	}
	t.Fatal("no open water left")
	return engine.Coord{}
}

func TestDeterminism(t *testing.T) {
	cfg := core.RuntimeConfig{Seed: 12345, ScreenW: 80, ScreenH: 24}

	g1 := New(config.DefaultSeaBattleConfig(), "normal")
	g1.Reset(cfg)
	g2 := New(config.DefaultSeaBattleConfig(), "normal")
	g2.Reset(cfg)

	script := map[int]core.Action{
		3: core.ActionLeft, 5: core.ActionFire, 40: core.ActionUp,
		41: core.ActionFire, 90: core.ActionRight, 91: core.ActionFire,
	}

	input := core.NewInputFrame()
	for i := range 200 {
		input.Clear()
		if a, ok := script[i]; ok {
			input.Set(a)
		}
		g1.Step(input)
		g2.Step(input)
	}

	s1, s2 := g1.Snapshot(), g2.Snapshot()
	if s1.Hash() != s2.Hash() {
		t.Errorf("same seed and input diverged: %+v vs %+v", s1, s2)
	}
}

func TestDifferentSeedsDifferentFleets(t *testing.T) {
	g1 := New(config.DefaultSeaBattleConfig(), "")
	g1.Reset(core.RuntimeConfig{Seed: 1, ScreenW: 80, ScreenH: 24})
	g2 := New(config.DefaultSeaBattleConfig(), "")
	g2.Reset(core.RuntimeConfig{Seed: 2, ScreenW: 80, ScreenH: 24})

	a := g1.Snapshot().PlayerCells
	b := g2.Snapshot().PlayerCells
	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds should deal different fleets")
	}
}

func TestCursorWraps(t *testing.T) {
	g := newTestGame(t, 0)
	g.cursor = engine.C(0, 0)

	in := core.NewInputFrame()
	in.Set(core.ActionUp)
	g.Step(in)
	if g.Cursor() != engine.C(5, 0) {
		t.Errorf("cursor after Up from top = %v, expected row 6", g.Cursor())
	}

	in.Clear()
	in.Set(core.ActionLeft)
	g.Step(in)
	if g.Cursor() != engine.C(5, 5) {
		t.Errorf("cursor after Left from edge = %v, expected col 6", g.Cursor())
	}
}

func TestHitKeepsTurnAndScores(t *testing.T) {
	g := newTestGame(t, 0)
	g.cursor = shipCell(g)

	res := g.Step(fire())

	if g.Match().Current() != engine.Player {
		t.Error("a hit should keep the turn")
	}
	if res.State.Score != g.cfg.Scoring.Hit {
		t.Errorf("score = %d, expected %d", res.State.Score, g.cfg.Scoring.Hit)
	}
	if len(res.Messages) == 0 || res.Messages[len(res.Messages)-1] != "Ship injured!" {
		t.Errorf("messages = %v, expected Ship injured!", res.Messages)
	}
}

func TestRepeatedShotIsRejected(t *testing.T) {
	g := newTestGame(t, 0)
	g.cursor = shipCell(g)
	g.Step(fire())

	res := g.Step(fire())

	stats := g.Match().Stats(engine.Player)
	if stats.Rejected != 1 || stats.Shots != 1 {
		t.Errorf("stats = %+v, expected 1 shot and 1 rejection", stats)
	}
	if g.Match().Current() != engine.Player {
		t.Error("a rejected shot should not pass the turn")
	}
	found := false
	for _, m := range res.Messages {
		if strings.Contains(m, "already shot") {
			found = true
		}
	}
	if !found {
		t.Errorf("messages = %v, expected a rejection line", res.Messages)
	}
}

func TestComputerWaitsThinkTicks(t *testing.T) {
	g := newTestGame(t, 3)
	g.cursor = waterCell(t, g)
	g.Step(fire())

	if g.Match().Current() != engine.Opponent {
		t.Fatal("a miss should pass the turn")
	}

	idle := core.NewInputFrame()
	for i := range 3 {
		g.Step(idle)
		if got := g.Match().Stats(engine.Opponent).Shots; got != 0 {
			t.Fatalf("computer shot after %d ticks, expected to wait 3", i+1)
		}
	}

	res := g.Step(idle)
	if got := g.Match().Stats(engine.Opponent).Shots; got != 1 {
		t.Errorf("computer shots = %d, expected 1", got)
	}
	if len(res.Messages) == 0 || !strings.HasPrefix(res.Messages[0], "Computer's turn: ") {
		t.Errorf("messages = %v, expected the computer's shot", res.Messages)
	}
}

func TestPlayerInputIgnoredOnComputerTurn(t *testing.T) {
	g := newTestGame(t, 5)
	g.cursor = waterCell(t, g)
	g.Step(fire())

	before := g.Cursor()
	in := core.NewInputFrame()
	in.Set(core.ActionRight)
	in.Set(core.ActionFire)
	g.Step(in)

	if g.Cursor() != before || g.Match().Stats(engine.Player).Shots != 1 {
		t.Error("player input should be ignored while the computer moves")
	}
}

func TestPauseStopsComputer(t *testing.T) {
	g := newTestGame(t, 0)
	g.cursor = waterCell(t, g)
	g.Step(fire())

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	if !g.Step(pause).State.Paused {
		t.Fatal("game should be paused")
	}

	idle := core.NewInputFrame()
	for range 5 {
		g.Step(idle)
	}
	if g.Match().Stats(engine.Opponent).Shots != 0 {
		t.Error("computer should not shoot while paused")
	}
}

func firstOpen(b *engine.Board) engine.Coord {
	for r := range b.Size() {
		for c := range b.Size() {
			if !b.WasShot(engine.C(r, c)) {
				return engine.C(r, c)
			}
		}
	}
	return engine.C(0, 0)
}

// playOut fires at every open enemy cell in order until the match ends.
func playOut(t *testing.T, g *Game) core.StepResult {
	t.Helper()
	var res core.StepResult
	target := g.Match().OwnBoard(engine.Opponent)
	idle := core.NewInputFrame()
	for range 10000 {
		if g.State().GameOver {
			return res
		}
		if g.Match().Current() != engine.Player {
			res = g.Step(idle)
			continue
		}
		g.cursor = firstOpen(target)
		res = g.Step(fire())
	}
	t.Fatal("match did not finish")
	return res
}

func TestFullMatch(t *testing.T) {
	g := newTestGame(t, 0)
	res := playOut(t, g)

	if !res.State.GameOver {
		t.Fatal("match should be over")
	}
	sum := g.Summary()
	if sum.Winner != "player" && sum.Winner != "computer" {
		t.Errorf("summary winner = %q", sum.Winner)
	}
	if sum.BoardSize != 6 || sum.Difficulty != "normal" {
		t.Errorf("summary = %+v", sum)
	}
	if sum.Ticks == 0 {
		t.Error("summary should record match length")
	}

	p := g.Match().Stats(engine.Player)
	expected := g.cfg.Scoring.Score(p.Hits, p.Sunk, res.State.Won)
	if res.State.Score != expected {
		t.Errorf("score = %d, expected %d", res.State.Score, expected)
	}

	if g.Match().OwnBoard(engine.Opponent).Concealed() {
		t.Error("enemy fleet should be revealed after the match")
	}

	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)
	res = g.Step(restart)
	if res.State.GameOver || res.State.Score != 0 {
		t.Errorf("restart should start a fresh match, got %+v", res.State)
	}
}

func TestPlacementFailure(t *testing.T) {
	cfg := config.DefaultSeaBattleConfig()
	cfg.Board.Size = 2
	cfg.Placement.MaxAttempts = 5
	cfg.Placement.MaxBoardRetries = 2
	g := New(cfg, "")
	g.Reset(core.RuntimeConfig{Seed: 1, ScreenW: 80, ScreenH: 24})

	if !g.State().GameOver || g.Match() != nil {
		t.Error("a fleet that cannot be placed should end the game")
	}
	g.Step(fire())
}

func TestRender(t *testing.T) {
	g := newTestGame(t, 0)
	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	for _, want := range []string{"Your fleet", "Enemy waters", "Score: 0", "Sea Battle [normal]", "Your turn!"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q", want)
		}
	}

	small := core.NewScreen(20, 10)
	g.Render(small)
	if !strings.Contains(small.String(), "Window too small") {
		t.Error("small screen should show a size hint")
	}
}

func TestHUDShipCells(t *testing.T) {
	g := newTestGame(t, 0)
	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	for _, want := range []string{"You: 11", "Enemy: 11"} {
		if !strings.Contains(out, want) {
			t.Errorf("HUD missing %q", want)
		}
	}
}

func TestRegistryFactory(t *testing.T) {
	g, err := registry.Create(GameID, registry.Options{Difficulty: "hard"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	sb, ok := g.(*Game)
	if !ok {
		t.Fatalf("Create returned %T", g)
	}
	if sb.Config().Opponent.Targeting != "hunt" {
		t.Errorf("hard preset should hunt, got %q", sb.Config().Opponent.Targeting)
	}

	if _, err := registry.Create(GameID, registry.Options{Difficulty: "impossible"}); err == nil {
		t.Error("unknown difficulty should fail")
	}
}
