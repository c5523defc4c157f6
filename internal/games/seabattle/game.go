// Package seabattle adapts the Sea Battle engine to the platform's fixed-tick
// game loop: a cursor over the enemy grid, a delayed computer opponent and
// score keeping.
package seabattle

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-seabattle/internal/config"
	"github.com/vovakirdan/tui-seabattle/internal/core"
	"github.com/vovakirdan/tui-seabattle/internal/games/seabattle/engine"
	"github.com/vovakirdan/tui-seabattle/internal/registry"
)

// GameID is the registry and storage identifier.
const GameID = "seabattle"

const maxLogLines = 4

// Game implements registry.Game for a match against the computer.
type Game struct {
	cfg        config.SeaBattleConfig
	difficulty string
	rng        *rand.Rand
	tick       uint64
	endTick    uint64 // Tick the match ended on

	match  *engine.Match
	queue  *engine.ShotQueue
	cursor engine.Coord
	think  int // Ticks left before the computer shoots

	score   int
	paused  bool
	failed  error // Set when the fleet could not be placed
	log     []string
	pending []string // Lines produced during the current tick

	screenW int
	screenH int
	glyphs  map[engine.CellState]rune
}

// New creates a game with the given configuration.
// difficulty is only recorded for the match history.
func New(cfg config.SeaBattleConfig, difficulty string) *Game {
	g := &Game{
		cfg:        cfg,
		difficulty: difficulty,
		queue:      &engine.ShotQueue{},
	}
	g.glyphs = map[engine.CellState]rune{
		engine.CellEmpty:    config.Rune(cfg.Symbols.Empty, '·'),
		engine.CellShip:     config.Rune(cfg.Symbols.Ship, '■'),
		engine.CellHit:      config.Rune(cfg.Symbols.Hit, 'X'),
		engine.CellMiss:     config.Rune(cfg.Symbols.Miss, 'T'),
		engine.CellRevealed: config.Rune(cfg.Symbols.Revealed, '~'),
	}
	return g
}

var (
	_ registry.Game       = (*Game)(nil)
	_ registry.Summarizer = (*Game)(nil)
)

func init() {
	registry.Register(GameID, "Sea Battle", func(opts registry.Options) (registry.Game, error) {
		cfg, err := config.LoadSeaBattle(opts.ConfigPath)
		if err != nil {
			return nil, err
		}
		difficulty := string(config.DifficultyFixed)
		if opts.Difficulty != "" {
			preset, err := config.ParsePreset(opts.Difficulty)
			if err != nil {
				return nil, err
			}
			config.ApplySeaBattlePreset(&cfg, preset)
			difficulty = string(preset)
		}
		return New(cfg, difficulty), nil
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return GameID }

// Title returns the display name.
func (g *Game) Title() string { return "Sea Battle" }

// Config returns the configuration the game was created with.
func (g *Game) Config() config.SeaBattleConfig { return g.cfg }

// Reset deals two fresh fleets and starts a new match.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.tick = 0
	g.endTick = 0
	g.score = 0
	g.paused = false
	g.failed = nil
	g.log = nil
	g.pending = nil
	g.queue.Clear()
	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH

	size := g.cfg.Board.Size
	g.cursor = engine.C(size/2, size/2)
	g.think = g.cfg.Opponent.ThinkTicks

	placer := engine.NewPlacer(engine.PlacerParams{
		Size:            size,
		MaxAttempts:     g.cfg.Placement.MaxAttempts,
		MaxBoardRetries: g.cfg.Placement.MaxBoardRetries,
	}, g.rng)

	playerBoard, err := placer.RandomBoard()
	if err != nil {
		g.fail(err)
		return
	}
	opponentBoard, err := placer.RandomBoard()
	if err != nil {
		g.fail(err)
		return
	}
	opponentBoard.SetConcealed(true)

	g.match = engine.NewMatch(playerBoard, opponentBoard,
		engine.NewHuman(g.queue),
		engine.NewAutomated(g.rng, engine.ParseTargeting(g.cfg.Opponent.Targeting)),
	)
	g.match.Listener = g.onEvent
	g.say("Your turn! Move with arrows, fire with space.")
}

func (g *Game) fail(err error) {
	g.failed = err
	g.match = nil
	g.say(fmt.Sprintf("Could not place the fleets: %v", err))
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	g.pending = nil

	if in.Has(core.ActionRestart) && g.over() {
		g.Reset(core.RuntimeConfig{
			Seed:    g.rng.Int63(),
			ScreenW: g.screenW,
			ScreenH: g.screenH,
		})
		return g.result()
	}

	if in.Has(core.ActionPause) && !g.over() {
		g.paused = !g.paused
	}
	if g.over() || g.paused {
		return g.result()
	}

	if g.match.Current() == engine.Player {
		g.playerTick(in)
	} else {
		g.opponentTick()
	}

	return g.result()
}

func (g *Game) playerTick(in core.InputFrame) {
	size := g.cfg.Board.Size
	switch {
	case in.Has(core.ActionUp):
		g.cursor.Row = core.Wrap(g.cursor.Row-1, size)
	case in.Has(core.ActionDown):
		g.cursor.Row = core.Wrap(g.cursor.Row+1, size)
	case in.Has(core.ActionLeft):
		g.cursor.Col = core.Wrap(g.cursor.Col-1, size)
	case in.Has(core.ActionRight):
		g.cursor.Col = core.Wrap(g.cursor.Col+1, size)
	}

	if in.Has(core.ActionFire) {
		g.queue.Push(g.cursor)
		g.advance()
	}
}

func (g *Game) opponentTick() {
	if g.think > 0 {
		g.think--
		return
	}
	g.advance()
	g.think = g.cfg.Opponent.ThinkTicks
}

// advance resolves one shot if the current side has one ready.
func (g *Game) advance() {
	rep, err := g.match.Step()
	if errors.Is(err, engine.ErrAwaitingInput) {
		return
	}
	if err != nil {
		g.fail(err)
		return
	}
	if rep.Over {
		g.endTick = g.tick
		g.match.OwnBoard(engine.Opponent).SetConcealed(false)
	}
}

// onEvent turns match events into score and status lines.
func (g *Game) onEvent(e engine.Event) {
	switch e.Kind {
	case engine.EventShot:
		if e.Side == engine.Opponent {
			g.say(fmt.Sprintf("Computer's turn: %s", e.Target))
		} else if e.Result != engine.Miss {
			g.score += g.cfg.Scoring.Hit
			if e.Result == engine.Destroyed {
				g.score += g.cfg.Scoring.Sink
			}
		}
		g.say(outcomeLine(e.Result))
	case engine.EventRejected:
		if e.Side == engine.Player {
			g.say(rejectLine(e.Err))
		}
	case engine.EventOver:
		if e.Side == engine.Player {
			g.score += g.cfg.Scoring.WinBonus
			g.say("You won!")
		} else {
			g.say("Computer won!")
		}
	}
}

func outcomeLine(r engine.ShotResult) string {
	switch r {
	case engine.Destroyed:
		return "Ship destroyed!"
	case engine.Hit:
		return "Ship injured!"
	default:
		return "Miss!"
	}
}

func rejectLine(err error) string {
	switch {
	case errors.Is(err, engine.ErrAlreadyShot):
		return "You already shot at that cell!"
	case errors.Is(err, engine.ErrOutOfBounds):
		return "You are trying to shoot off the board!"
	default:
		return err.Error()
	}
}

func (g *Game) say(line string) {
	g.pending = append(g.pending, line)
	g.log = append(g.log, line)
	if len(g.log) > maxLogLines {
		g.log = g.log[len(g.log)-maxLogLines:]
	}
}

func (g *Game) over() bool {
	return g.failed != nil || (g.match != nil && g.match.Over())
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State(), Messages: g.pending}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	won := g.match != nil && g.match.Over() && g.match.Winner() == engine.Player
	return core.GameState{
		Score:    g.score,
		GameOver: g.over(),
		Won:      won,
		Paused:   g.paused,
	}
}

// Match exposes the running match. Nil if placement failed.
func (g *Game) Match() *engine.Match { return g.match }

// Cursor returns the targeted enemy cell.
func (g *Game) Cursor() engine.Coord { return g.cursor }

// Summary describes the finished match for the history table.
func (g *Game) Summary() core.MatchSummary {
	s := core.MatchSummary{
		BoardSize:  g.cfg.Board.Size,
		Difficulty: g.difficulty,
		Ticks:      int(g.endTick),
	}
	if g.match == nil {
		return s
	}
	if g.match.Winner() == engine.Player {
		s.Winner = "player"
	} else {
		s.Winner = "computer"
	}
	p, c := g.match.Stats(engine.Player), g.match.Stats(engine.Opponent)
	s.Turns = g.match.Turn()
	s.PlayerShots, s.PlayerHits, s.PlayerSunk = p.Shots, p.Hits, p.Sunk
	s.CPUShots, s.CPUHits, s.CPUSunk = c.Shots, c.Hits, c.Sunk
	return s
}
