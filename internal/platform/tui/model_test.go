package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-seabattle/internal/core"
	"github.com/vovakirdan/tui-seabattle/internal/storage"
)

// finishingGame ends after a fixed number of ticks and restarts on demand.
type finishingGame struct {
	ticks  int
	length int
	resets int
	fired  int
}

func (g *finishingGame) ID() string    { return "stub" }
func (g *finishingGame) Title() string { return "Stub" }

func (g *finishingGame) Reset(core.RuntimeConfig) {
	g.ticks = 0
	g.resets++
}

func (g *finishingGame) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) && g.over() {
		g.Reset(core.RuntimeConfig{})
	}
	if in.Has(core.ActionFire) {
		g.fired++
	}
	g.ticks++
	return core.StepResult{State: g.State()}
}

func (g *finishingGame) Render(dst *core.Screen) {
	dst.DrawText(0, 0, "stub game")
}

func (g *finishingGame) State() core.GameState {
	return core.GameState{Score: 120, GameOver: g.over(), Won: g.over()}
}

func (g *finishingGame) over() bool { return g.ticks >= g.length }

func (g *finishingGame) Summary() core.MatchSummary {
	return core.MatchSummary{
		Winner:      "player",
		Turns:       9,
		BoardSize:   6,
		Difficulty:  "normal",
		PlayerShots: 20,
		PlayerHits:  11,
		PlayerSunk:  7,
		Ticks:       60,
	}
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	next, _ := m.Update(TickMsg(time.Now()))
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm
}

func press(t *testing.T, m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func TestModelRecordsFinishedMatchOnce(t *testing.T) {
	store := openStore(t)
	game := &finishingGame{length: 3}
	m := NewModel(game, store, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 30, Seed: 1})
	m.Init()

	for range 6 {
		m = tick(t, m)
	}

	if m.LastMatchID() == "" {
		t.Fatal("finished match should be recorded")
	}

	matches, err := store.RecentMatches("stub", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) != 1 {
		t.Fatalf("got %d matches, expected 1", len(matches))
	}
	rec := matches[0]
	if rec.Winner != "player" || rec.Turns != 9 || rec.Score != 120 || rec.Duration != 2 {
		t.Errorf("record = %+v", rec)
	}

	scores, err := store.TopScores("stub", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(scores) != 1 || scores[0].Score != 120 {
		t.Errorf("scores = %+v, expected one 120", scores)
	}
}

func TestModelRestartRecordsAgain(t *testing.T) {
	store := openStore(t)
	game := &finishingGame{length: 2}
	m := NewModel(game, store, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 30, Seed: 1})
	m.Init()

	for range 3 {
		m = tick(t, m)
	}
	m, _ = press(t, m, runeKey('r'))
	for range 3 {
		m = tick(t, m)
	}

	matches, err := store.RecentMatches("stub", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) != 2 {
		t.Errorf("got %d matches after a restart, expected 2", len(matches))
	}
}

func TestModelKeysReachGame(t *testing.T) {
	game := &finishingGame{length: 100}
	m := NewModel(game, nil, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 30, Seed: 1})
	m.Init()

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m = tick(t, m)
	m = tick(t, m)

	if game.fired != 1 {
		t.Errorf("fire reached the game %d times, expected 1", game.fired)
	}
}

func TestModelBackOnlyWhenIdle(t *testing.T) {
	game := &finishingGame{length: 2}
	m := NewModel(game, nil, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 30, Seed: 1})
	m.embedded = true
	m.Init()

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.BackToMenu() {
		t.Fatal("back should be ignored mid-match")
	}

	m = tick(t, m)
	m = tick(t, m)
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() {
		t.Error("back should leave a finished game")
	}
	if cmd != nil {
		t.Error("an embedded model should not quit the program")
	}
}

func TestModelQuit(t *testing.T) {
	m := NewModel(&finishingGame{length: 5}, nil, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 30, Seed: 1})
	m.Init()

	m, cmd := press(t, m, runeKey('q'))
	if !m.IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("a quitting model renders nothing")
	}
}

func TestModelView(t *testing.T) {
	m := NewModel(&finishingGame{length: 5}, nil, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 30, Seed: 1})
	m.Init()
	if !strings.Contains(m.View(), "stub game") {
		t.Errorf("View = %q", m.View())
	}
}
