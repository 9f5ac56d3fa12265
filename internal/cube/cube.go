// Package cube provides the facelet model of a 3x3x3 cube and the move
// engine that permutes it.
package cube

import (
	"errors"
	"fmt"
	"strings"
)

// ErrIndexOutOfRange is the panic value (wrapped) raised when a face or
// position outside the closed ranges reaches the model. It marks a
// programming error in the caller, not a user condition.
var ErrIndexOutOfRange = errors.New("cube: index out of range")

// Face identifies one of the six sides of the cube.
type Face int

const (
	Front Face = 0
	Up    Face = 1
	Right Face = 2
	Down  Face = 3
	Left  Face = 4
	Back  Face = 5
)

// NumFaces is the number of faces on the cube.
const NumFaces = 6

// FaceletsPerFace is the number of stickers on one face.
const FaceletsPerFace = 9

// Center is the grid position of a face's center sticker.
const Center = 4

// Faces lists every face in index order.
var Faces = [NumFaces]Face{Front, Up, Right, Down, Left, Back}

func (f Face) String() string {
	switch f {
	case Front:
		return "F"
	case Up:
		return "U"
	case Right:
		return "R"
	case Down:
		return "D"
	case Left:
		return "L"
	case Back:
		return "B"
	default:
		return "?"
	}
}

// Name returns the long name of the face.
func (f Face) Name() string {
	switch f {
	case Front:
		return "front"
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	case Back:
		return "back"
	default:
		return "unknown"
	}
}

// Valid reports whether f is one of the six faces.
func (f Face) Valid() bool {
	return f >= Front && f <= Back
}

// Color is the logical color of a sticker. In the solved state every
// sticker of a face carries the color whose value equals the face index,
// so the center color doubles as the face's identity.
type Color uint8

// SolvedColor returns the color a face carries when the cube is solved.
func SolvedColor(f Face) Color {
	return Color(f)
}

// Face returns the face whose center carries this color.
func (c Color) Face() Face {
	return Face(c)
}

func (c Color) String() string {
	return c.Face().String()
}

// State is the 6x9 grid of sticker colors. Each face has 9 facelets
// indexed as seen in the unfolded net (Up above Front, Down below it,
// Left Front Right Back in a row):
//
//	0 1 2
//	3 4 5
//	6 7 8
//
// Up's top row borders Back and Down's top row borders Front.
// The center (index 4) never moves.
//
// Only the move engine writes to a State after construction.
type State struct {
	// facelets[face][position] = color
	facelets [NumFaces][FaceletsPerFace]Color
}

// New creates a solved state.
func New() *State {
	s := &State{}
	s.SetSolved()
	return s
}

// SetSolved resets every facelet to the solved configuration.
func (s *State) SetSolved() {
	for _, face := range Faces {
		color := SolvedColor(face)
		for i := 0; i < FaceletsPerFace; i++ {
			s.facelets[face][i] = color
		}
	}
}

// Clone creates an independent deep copy of the state.
func (s *State) Clone() *State {
	clone := *s
	return &clone
}

// Get returns the color at (face, position). It panics with an error
// wrapping ErrIndexOutOfRange if either index is outside its range.
func (s *State) Get(face Face, pos int) Color {
	checkIndex(face, pos)
	return s.facelets[face][pos]
}

// FaceColors returns a copy of the nine colors on a face.
func (s *State) FaceColors(face Face) [FaceletsPerFace]Color {
	checkIndex(face, Center)
	return s.facelets[face]
}

// Equal reports whether two states hold the same colors everywhere.
func (s *State) Equal(other *State) bool {
	return s.facelets == other.facelets
}

// IsSolved reports whether every face is a single color. Centers never
// move, so this matches each sticker against its face's center rather
// than against the original layout.
func (s *State) IsSolved() bool {
	for face := range s.facelets {
		center := s.facelets[face][Center]
		for _, c := range s.facelets[face] {
			if c != center {
				return false
			}
		}
	}
	return true
}

// SolvedFaces returns how many faces are currently a single color.
func (s *State) SolvedFaces() int {
	n := 0
	for face := range s.facelets {
		center := s.facelets[face][Center]
		mono := true
		for _, c := range s.facelets[face] {
			if c != center {
				mono = false
				break
			}
		}
		if mono {
			n++
		}
	}
	return n
}

// Counts returns how many stickers carry each color.
func (s *State) Counts() [NumFaces]int {
	var counts [NumFaces]int
	for face := range s.facelets {
		for _, c := range s.facelets[face] {
			if int(c) < NumFaces {
				counts[c]++
			}
		}
	}
	return counts
}

// Key returns the 54 facelets as a string of face letters, face by face
// in index order (F U R D L B).
func (s *State) Key() string {
	var b strings.Builder
	b.Grow(NumFaces * FaceletsPerFace)
	for face := range s.facelets {
		for _, c := range s.facelets[face] {
			b.WriteString(c.String())
		}
	}
	return b.String()
}

// Bytes returns the 54 color values in the same order as Key.
func (s *State) Bytes() []byte {
	out := make([]byte, 0, NumFaces*FaceletsPerFace)
	for face := range s.facelets {
		for _, c := range s.facelets[face] {
			out = append(out, byte(c))
		}
	}
	return out
}

// String returns a text representation of the unfolded net.
func (s *State) String() string {
	var b strings.Builder

	// U face (indented)
	for row := 0; row < 3; row++ {
		b.WriteString("      ")
		for col := 0; col < 3; col++ {
			b.WriteString(s.facelets[Up][row*3+col].String() + " ")
		}
		b.WriteString("\n")
	}

	// L, F, R, B faces (side by side)
	for row := 0; row < 3; row++ {
		for _, face := range []Face{Left, Front, Right, Back} {
			for col := 0; col < 3; col++ {
				b.WriteString(s.facelets[face][row*3+col].String() + " ")
			}
		}
		b.WriteString("\n")
	}

	// D face (indented)
	for row := 0; row < 3; row++ {
		b.WriteString("      ")
		for col := 0; col < 3; col++ {
			b.WriteString(s.facelets[Down][row*3+col].String() + " ")
		}
		b.WriteString("\n")
	}

	return b.String()
}

func checkIndex(face Face, pos int) {
	if !face.Valid() || pos < 0 || pos >= FaceletsPerFace {
		panic(fmt.Errorf("%w: face %d position %d", ErrIndexOutOfRange, int(face), pos))
	}
}
