package cubesim

import (
	"github.com/SeamusWaldron/cubesim/internal/cube"
	"github.com/SeamusWaldron/cubesim/internal/notation"
)

// Face identifies a side of the cube.
type Face = cube.Face

// Face constants.
const (
	FaceF = cube.Front
	FaceU = cube.Up
	FaceR = cube.Right
	FaceD = cube.Down
	FaceL = cube.Left
	FaceB = cube.Back
)

// Color is the logical color of a sticker.
type Color = cube.Color

// Turn is the direction and magnitude of a face turn.
type Turn = cube.Turn

// Turn constants.
const (
	CW     = cube.Clockwise
	CCW    = cube.CounterClockwise
	Double = cube.Double
)

// Move is one of the 18 face turns.
type Move = cube.Move

// NewMove returns the move turning face by t.
func NewMove(face Face, t Turn) Move {
	return cube.NewMove(face, t)
}

// ParseMove parses a single notation token such as R, U' or F2.
func ParseMove(s string) (Move, error) {
	return notation.Parse(s)
}

// ParseMoves parses a space-separated sequence of moves. If any token is
// invalid no moves are returned.
func ParseMoves(s string) ([]Move, error) {
	return notation.ParseSequence(s)
}

// FormatMoves formats a slice of moves as a space-separated string.
func FormatMoves(moves []Move) string {
	return notation.FormatSequence(moves)
}

// InvertMoves returns the sequence that undoes moves.
func InvertMoves(moves []Move) []Move {
	return cube.Invert(moves)
}
