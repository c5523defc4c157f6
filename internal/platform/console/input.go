// Package console plays Sea Battle over plain text streams: boards are
// printed after every shot and the player types "row col" targets.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-seabattle/internal/games/seabattle/engine"
)

// LineInput reads 1-indexed "row col" targets, one per line.
// Malformed lines are answered with a hint and read again; only
// well-formed coordinates reach the engine.
type LineInput struct {
	reader *bufio.Reader
	out    io.Writer
	Prompt string
}

var _ engine.CoordinateInput = (*LineInput)(nil)

// NewLineInput creates an input reading from r and writing prompts to w.
func NewLineInput(r io.Reader, w io.Writer) *LineInput {
	return &LineInput{
		reader: bufio.NewReader(r),
		out:    w,
		Prompt: "Your turn: ",
	}
}

// NextCoordinate blocks until a well-formed line arrives.
// Returns io.EOF when the input is exhausted.
func (in *LineInput) NextCoordinate(_ *engine.Board) (engine.Coord, error) {
	for {
		fmt.Fprint(in.out, in.Prompt)
		line, err := in.reader.ReadString('\n')
		if line == "" && err != nil {
			if errors.Is(err, io.EOF) {
				return engine.Coord{}, io.EOF
			}
			return engine.Coord{}, fmt.Errorf("read target: %w", err)
		}

		c, hint := ParseCoord(line)
		if hint != "" {
			fmt.Fprintln(in.out, hint)
			continue
		}
		return c, nil
	}
}

// ParseCoord converts a "row col" line to a zero-based coordinate.
// A non-empty hint describes why the line was refused.
// Range is not checked here; the board rejects off-grid shots.
func ParseCoord(line string) (engine.Coord, string) {
	fields := strings.Fields(strings.ReplaceAll(line, ",", " "))
	if len(fields) != 2 {
		return engine.Coord{}, "Enter 2 coordinates!"
	}

	row, ok := parseNumber(fields[0])
	if !ok {
		return engine.Coord{}, "Enter numbers!"
	}
	col, ok := parseNumber(fields[1])
	if !ok {
		return engine.Coord{}, "Enter numbers!"
	}
	return engine.C(row-1, col-1), ""
}

// parseNumber accepts unsigned decimal digits only.
func parseNumber(field string) (int, bool) {
	if field == "" || field[0] < '0' || field[0] > '9' {
		return 0, false
	}
	n, err := strconv.Atoi(field)
	return n, err == nil
}
