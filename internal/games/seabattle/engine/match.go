package engine

// Side identifies one of the two participants.
type Side int

const (
	Player Side = iota
	Opponent
)

// Other returns the opposing side.
func (s Side) Other() Side {
	if s == Player {
		return Opponent
	}
	return Player
}

// String returns a human-readable name for the side.
func (s Side) String() string {
	if s == Opponent {
		return "Computer"
	}
	return "Player"
}

// Phase is the state of the turn controller.
type Phase int

const (
	PhaseAwaitingShot Phase = iota
	PhaseOver
)

// EventKind classifies match events.
type EventKind int

const (
	EventShot     EventKind = iota // A valid shot was resolved
	EventRejected                  // A shot was refused and will be asked for again
	EventOver                      // The match was won
)

// Event is emitted to the listener for every shot attempt and at match end.
type Event struct {
	Kind   EventKind
	Side   Side // Side that acted
	Target Coord
	Result ShotResult // EventShot only
	Err    error      // EventRejected only
	Turn   int
}

// ShotReport describes the shot resolved by Step.
type ShotReport struct {
	Side   Side
	Target Coord
	Result ShotResult
	Turn   int  // Turn number the shot was taken in
	Again  bool // The same side shoots next
	Over   bool // The shot ended the match
}

// SideStats counts one side's shooting.
type SideStats struct {
	Shots    int
	Hits     int
	Sunk     int
	Rejected int
}

// Match alternates shots between two sides until one fleet is destroyed.
type Match struct {
	boards  [2]*Board     // Each side's own board
	sources [2]ShotSource // Each side's shot source
	stats   [2]SideStats
	current Side
	turn    int
	phase   Phase
	winner  Side

	// Listener, if set, receives every event synchronously.
	Listener func(Event)
}

// NewMatch creates a match where the player shoots first.
func NewMatch(playerBoard, opponentBoard *Board, playerSrc, opponentSrc ShotSource) *Match {
	m := &Match{
		boards:  [2]*Board{playerBoard, opponentBoard},
		sources: [2]ShotSource{playerSrc, opponentSrc},
		current: Player,
		turn:    1,
		phase:   PhaseAwaitingShot,
	}
	if a, ok := opponentSrc.(*Automated); ok {
		a.Watch(playerBoard)
	}
	if a, ok := playerSrc.(*Automated); ok {
		a.Watch(opponentBoard)
	}
	return m
}

// Current returns the side about to shoot.
func (m *Match) Current() Side { return m.current }

// Turn returns the current turn number, starting at 1.
func (m *Match) Turn() int { return m.turn }

// Phase returns the controller state.
func (m *Match) Phase() Phase { return m.phase }

// Over reports whether the match has a winner.
func (m *Match) Over() bool { return m.phase == PhaseOver }

// Winner returns the winning side. Only meaningful when Over is true.
func (m *Match) Winner() Side { return m.winner }

// OwnBoard returns the board belonging to side.
func (m *Match) OwnBoard(side Side) *Board { return m.boards[side] }

// TargetBoard returns the board side shoots at.
func (m *Match) TargetBoard(side Side) *Board { return m.boards[side.Other()] }

// Stats returns the shooting statistics of side.
func (m *Match) Stats(side Side) SideStats { return m.stats[side] }

// Step resolves one valid shot by the current side.
//
// Rejected shots are reported to the listener and asked for again without
// using up the turn. Any other error from the shot source is returned as is
// and leaves the match untouched.
func (m *Match) Step() (ShotReport, error) {
	if m.phase == PhaseOver {
		return ShotReport{Side: m.winner, Over: true, Turn: m.turn}, nil
	}

	side := m.current
	own := m.boards[side]
	target := m.boards[side.Other()]

	for {
		c, err := m.sources[side].ProduceShot(own)
		if err != nil {
			return ShotReport{}, err
		}

		result, err := target.Shoot(c)
		if err != nil {
			if !IsShotError(err) {
				return ShotReport{}, err
			}
			m.stats[side].Rejected++
			m.emit(Event{Kind: EventRejected, Side: side, Target: c, Err: err, Turn: m.turn})
			continue
		}

		return m.resolve(side, c, result), nil
	}
}

// resolve records a valid shot and moves the turn state machine.
func (m *Match) resolve(side Side, c Coord, result ShotResult) ShotReport {
	st := &m.stats[side]
	st.Shots++
	if result != Miss {
		st.Hits++
	}
	if result == Destroyed {
		st.Sunk++
	}

	report := ShotReport{Side: side, Target: c, Result: result, Turn: m.turn}
	m.emit(Event{Kind: EventShot, Side: side, Target: c, Result: result, Turn: m.turn})

	// The win check comes before the extra-shot grant.
	if m.boards[side.Other()].IsFleetDestroyed() {
		m.phase = PhaseOver
		m.winner = side
		report.Over = true
		m.emit(Event{Kind: EventOver, Side: side, Turn: m.turn})
		return report
	}

	if result.GrantsExtraShot() {
		report.Again = true
		return report
	}

	m.current = side.Other()
	m.turn++
	return report
}

// Run steps the match until it ends or the shot source returns an error.
func (m *Match) Run() (Side, error) {
	for !m.Over() {
		if _, err := m.Step(); err != nil {
			return m.current, err
		}
	}
	return m.winner, nil
}

func (m *Match) emit(e Event) {
	if m.Listener != nil {
		m.Listener(e)
	}
}
