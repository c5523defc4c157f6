package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-seabattle/internal/config"
	"github.com/vovakirdan/tui-seabattle/internal/core"
	"github.com/vovakirdan/tui-seabattle/internal/games/seabattle/engine"
	"github.com/vovakirdan/tui-seabattle/internal/storage"
)

// GameID is the storage identifier shared with the TUI front end.
const GameID = "seabattle"

const banner = `**********************
       Welcome
     to the game
      sea battle
**********************
  input format: x y
   x - line number
   y - column number`

var separator = strings.Repeat("-", 20)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	hitStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	shipStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	waterStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("24"))
	missStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// Runner plays one match between a line-reading human and the computer.
type Runner struct {
	Config     config.SeaBattleConfig
	Difficulty string
	Seed       int64
	Out        io.Writer
	Logger     *log.Logger
	Store      *storage.Store // Optional; finished matches are recorded when set

	glyphs map[engine.CellState]string
}

// Result describes a finished console match.
type Result struct {
	Summary core.MatchSummary
	Score   int
	MatchID string
}

// Run deals both fleets and plays until one side is sunk, ctx is cancelled
// or in runs dry.
func (r *Runner) Run(ctx context.Context, in io.Reader) (Result, error) {
	logger := r.Logger
	if logger == nil {
		logger = log.Default()
	}
	r.glyphs = map[engine.CellState]string{
		engine.CellEmpty:    string(config.Rune(r.Config.Symbols.Empty, '·')),
		engine.CellShip:     string(config.Rune(r.Config.Symbols.Ship, '■')),
		engine.CellHit:      string(config.Rune(r.Config.Symbols.Hit, 'X')),
		engine.CellMiss:     string(config.Rune(r.Config.Symbols.Miss, 'T')),
		engine.CellRevealed: string(config.Rune(r.Config.Symbols.Revealed, '~')),
	}

	rng := rand.New(rand.NewSource(r.Seed))
	placer := engine.NewPlacer(engine.PlacerParams{
		Size:            r.Config.Board.Size,
		MaxAttempts:     r.Config.Placement.MaxAttempts,
		MaxBoardRetries: r.Config.Placement.MaxBoardRetries,
	}, rng)

	boards := make([]*engine.Board, 2)
	for i, side := range []engine.Side{engine.Player, engine.Opponent} {
		b, err := placer.RandomBoard()
		if err != nil {
			return Result{}, fmt.Errorf("deal %s fleet: %w", side, err)
		}
		logger.Debug("fleet placed", "side", side, "retries", placer.Retries)
		boards[i] = b
	}
	boards[1].SetConcealed(true)

	targeting := engine.ParseTargeting(r.Config.Opponent.Targeting)
	m := engine.NewMatch(boards[0], boards[1],
		engine.NewHuman(NewLineInput(in, r.Out)),
		engine.NewAutomated(rng, targeting),
	)
	m.Listener = func(e engine.Event) { r.announce(logger, e) }

	fmt.Fprintln(r.Out, banner)
	start := time.Now()

	for !m.Over() {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		r.printBoards(m)
		if m.Current() == engine.Player {
			fmt.Fprintln(r.Out, "User move!")
		} else {
			fmt.Fprintln(r.Out, "Computer move!")
		}
		if _, err := m.Step(); err != nil {
			return Result{}, fmt.Errorf("turn %d: %w", m.Turn(), err)
		}
	}

	boards[1].SetConcealed(false)
	r.printBoards(m)
	fmt.Fprintln(r.Out, separator)
	if m.Winner() == engine.Player {
		fmt.Fprintln(r.Out, "User won!")
	} else {
		fmt.Fprintln(r.Out, "Computer won!")
	}

	res := r.result(m)
	logger.Info("match over",
		"winner", res.Summary.Winner,
		"turns", res.Summary.Turns,
		"score", res.Score,
		"targeting", targeting,
	)

	if r.Store != nil {
		rec := storage.MatchFromSummary(GameID, res.Summary, res.Score, int(time.Since(start).Seconds()))
		id, err := r.Store.SaveMatch(rec)
		if err != nil {
			logger.Warn("failed to save match", "err", err)
		} else {
			res.MatchID = id
		}
		if res.Score > 0 {
			if _, err := r.Store.SaveScore(GameID, res.Score); err != nil {
				logger.Warn("failed to save score", "err", err)
			}
		}
	}

	return res, nil
}

func (r *Runner) result(m *engine.Match) Result {
	p, c := m.Stats(engine.Player), m.Stats(engine.Opponent)
	won := m.Winner() == engine.Player

	sum := core.MatchSummary{
		Winner:      "computer",
		Turns:       m.Turn(),
		BoardSize:   r.Config.Board.Size,
		Difficulty:  r.Difficulty,
		PlayerShots: p.Shots,
		PlayerHits:  p.Hits,
		PlayerSunk:  p.Sunk,
		CPUShots:    c.Shots,
		CPUHits:     c.Hits,
		CPUSunk:     c.Sunk,
	}
	if won {
		sum.Winner = "player"
	}

	return Result{Summary: sum, Score: r.Config.Scoring.Score(p.Hits, p.Sunk, won)}
}

// announce prints one line per match event.
func (r *Runner) announce(logger *log.Logger, e engine.Event) {
	switch e.Kind {
	case engine.EventShot:
		if e.Side == engine.Opponent {
			fmt.Fprintf(r.Out, "Computer's turn: %s\n", e.Target)
		}
		switch e.Result {
		case engine.Destroyed:
			fmt.Fprintln(r.Out, "Ship destroyed!")
		case engine.Hit:
			fmt.Fprintln(r.Out, "Ship injured!")
		default:
			fmt.Fprintln(r.Out, "Miss!")
		}
	case engine.EventRejected:
		if e.Side != engine.Player {
			logger.Debug("computer shot rejected", "target", e.Target, "err", e.Err)
			return
		}
		switch {
		case errors.Is(e.Err, engine.ErrAlreadyShot):
			fmt.Fprintln(r.Out, "You already shot at that cell!")
		case errors.Is(e.Err, engine.ErrOutOfBounds):
			fmt.Fprintln(r.Out, "You are trying to shoot off the board!")
		default:
			fmt.Fprintln(r.Out, e.Err)
		}
	}
}

func (r *Runner) printBoards(m *engine.Match) {
	fmt.Fprintln(r.Out, separator)
	fmt.Fprintln(r.Out, "User Board")
	fmt.Fprintln(r.Out, r.renderBoard(m.OwnBoard(engine.Player)))
	fmt.Fprintln(r.Out, separator)
	fmt.Fprintln(r.Out, "Computer board")
	fmt.Fprintln(r.Out, r.renderBoard(m.OwnBoard(engine.Opponent)))
	fmt.Fprintln(r.Out, separator)
}

// renderBoard draws a bordered grid with 1-based row and column numbers.
func (r *Runner) renderBoard(b *engine.Board) string {
	headers := make([]string, 0, b.Size()+1)
	headers = append(headers, "")
	for c := range b.Size() {
		headers = append(headers, strconv.Itoa(c+1))
	}

	states := b.Rows()
	rows := make([][]string, len(states))
	for i, row := range states {
		cells := make([]string, 0, len(row)+1)
		cells = append(cells, strconv.Itoa(i+1))
		for _, s := range row {
			cells = append(cells, r.glyphs[s])
		}
		rows[i] = cells
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderColumn(false).
		BorderHeader(true).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row < 0 || row >= len(states) || col == 0 {
				return headerStyle.Padding(0, 1)
			}
			return cellStyle(states[row][col-1]).Padding(0, 1)
		})
	return t.String()
}

func cellStyle(s engine.CellState) lipgloss.Style {
	switch s {
	case engine.CellHit:
		return hitStyle
	case engine.CellShip:
		return shipStyle
	case engine.CellMiss, engine.CellRevealed:
		return missStyle
	default:
		return waterStyle
	}
}
