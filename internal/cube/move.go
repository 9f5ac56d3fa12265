package cube

import "fmt"

// Turn represents the direction and magnitude of a face turn.
type Turn int

const (
	Clockwise        Turn = 1  // Quarter turn, clockwise seen from outside the face
	CounterClockwise Turn = -1 // Quarter turn, reverse direction
	Double           Turn = 2  // Half turn
)

// Turns lists the three turn amounts in notation order.
var Turns = [3]Turn{Clockwise, CounterClockwise, Double}

func (t Turn) String() string {
	switch t {
	case Clockwise:
		return "clockwise"
	case CounterClockwise:
		return "counter-clockwise"
	case Double:
		return "double"
	default:
		return "unknown"
	}
}

// Suffix returns the notation suffix for the turn: "", "'" or "2".
func (t Turn) Suffix() string {
	switch t {
	case CounterClockwise:
		return "'"
	case Double:
		return "2"
	default:
		return ""
	}
}

// Inverse returns the turn that undoes t.
func (t Turn) Inverse() Turn {
	if t == Double {
		return Double
	}
	return -t
}

// Move is one of the 18 face turns. Values are ordered
// R R' R2 L L' L2 U U' U2 D D' D2 F F' F2 B B' B2.
type Move uint8

const (
	R Move = iota
	RPrime
	R2
	L
	LPrime
	L2
	U
	UPrime
	U2
	D
	DPrime
	D2
	F
	FPrime
	F2
	B
	BPrime
	B2
)

// MoveCount is the number of distinct moves.
const MoveCount = 18

// moveFaces is the face order used by the Move encoding.
var moveFaces = [NumFaces]Face{Right, Left, Up, Down, Front, Back}

// AllMoves returns the 18 moves in encoding order.
func AllMoves() []Move {
	moves := make([]Move, MoveCount)
	for i := range moves {
		moves[i] = Move(i)
	}
	return moves
}

// NewMove builds the move that turns face by t. It panics on a face or
// turn outside the closed enumerations.
func NewMove(face Face, t Turn) Move {
	var faceCode int
	switch face {
	case Right:
		faceCode = 0
	case Left:
		faceCode = 1
	case Up:
		faceCode = 2
	case Down:
		faceCode = 3
	case Front:
		faceCode = 4
	case Back:
		faceCode = 5
	default:
		panic(fmt.Errorf("%w: face %d", ErrIndexOutOfRange, int(face)))
	}

	var turnCode int
	switch t {
	case Clockwise:
		turnCode = 0
	case CounterClockwise:
		turnCode = 1
	case Double:
		turnCode = 2
	default:
		panic(fmt.Errorf("%w: turn %d", ErrIndexOutOfRange, int(t)))
	}

	return Move(faceCode*3 + turnCode)
}

// Valid reports whether m is one of the 18 moves.
func (m Move) Valid() bool {
	return m < MoveCount
}

// Face returns the face turned by the move.
func (m Move) Face() Face {
	m.check()
	return moveFaces[m/3]
}

// Turn returns the direction and magnitude of the move.
func (m Move) Turn() Turn {
	m.check()
	return Turns[m%3]
}

// Inverse returns the move that undoes m.
// R becomes R', R' becomes R, R2 stays R2.
func (m Move) Inverse() Move {
	return NewMove(m.Face(), m.Turn().Inverse())
}

// Notation returns the standard token for this move: R, R', R2, ...
func (m Move) Notation() string {
	return m.Face().String() + m.Turn().Suffix()
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	if !m.Valid() {
		return fmt.Sprintf("Move(%d)", uint8(m))
	}
	return m.Notation()
}

func (m Move) check() {
	if !m.Valid() {
		panic(fmt.Errorf("%w: move %d", ErrIndexOutOfRange, uint8(m)))
	}
}

// CheckerPattern turns a solved cube into a checkerboard.
var CheckerPattern = []Move{R2, L2, U2, D2, F2, B2}

// Invert returns the sequence that undoes moves: each move inverted, in
// reverse order.
func Invert(moves []Move) []Move {
	inv := make([]Move, len(moves))
	for i, m := range moves {
		inv[len(moves)-1-i] = m.Inverse()
	}
	return inv
}
