package notation

import (
	"strings"

	"github.com/SeamusWaldron/cubesim/internal/cube"
)

// Describe returns a spoken description of a move, as printed in the help
// text and the replay viewer.
//
// Mapping:
//
//	R  -> "Right face clockwise turn"
//	R' -> "Right face counterclockwise turn"
//	R2 -> "Two right face turns"
func Describe(m cube.Move) string {
	if !m.Valid() {
		return "unknown move"
	}

	name := m.Face().Name()
	if m.Face() == cube.Up {
		name = "upper"
	}
	title := strings.ToUpper(name[:1]) + name[1:]

	switch m.Turn() {
	case cube.CounterClockwise:
		return title + " face counterclockwise turn"
	case cube.Double:
		return "Two " + name + " face turns"
	default:
		return title + " face clockwise turn"
	}
}

// HelpLines returns one "token - description" line per move.
func HelpLines() []string {
	lines := make([]string, 0, cube.MoveCount)
	for _, m := range cube.AllMoves() {
		lines = append(lines, m.Notation()+" - "+Describe(m))
	}
	return lines
}
