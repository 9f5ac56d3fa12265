package cubesim

import "github.com/SeamusWaldron/cubesim/internal/cube"

// Tracker wraps a cube state and reports progress as faces become solved.
// It is not safe for concurrent use; use Cube for that.
type Tracker struct {
	state        *cube.State
	moves        int
	highestFaces int // Monotonic - never goes backwards
	progressCb   func(faces int)
}

// NewTracker creates a new tracker starting from a solved state.
func NewTracker() *Tracker {
	return &Tracker{
		state:        cube.New(),
		highestFaces: cube.NumFaces,
	}
}

// NewTrackerFrom creates a tracker starting from a copy of s. Progress is
// measured from the faces already solved in s.
func NewTrackerFrom(s *cube.State) *Tracker {
	c := s.Clone()
	return &Tracker{
		state:        c,
		highestFaces: c.SolvedFaces(),
	}
}

// SetProgressCallback sets a callback that fires when more faces are
// solved than ever before.
func (t *Tracker) SetProgressCallback(cb func(faces int)) {
	t.progressCb = cb
}

// Reset resets the tracker to a solved cube state.
func (t *Tracker) Reset() {
	t.state.SetSolved()
	t.moves = 0
	t.highestFaces = cube.NumFaces
}

// ApplyMove applies a move and checks for progress.
func (t *Tracker) ApplyMove(m Move) {
	cube.Apply(t.state, m)
	t.moves++
	t.checkProgress()
}

// ApplyMoves applies multiple moves.
func (t *Tracker) ApplyMoves(moves []Move) {
	for _, m := range moves {
		t.ApplyMove(m)
	}
}

func (t *Tracker) checkProgress() {
	faces := t.state.SolvedFaces()
	if faces > t.highestFaces {
		t.highestFaces = faces
		if t.progressCb != nil {
			t.progressCb(faces)
		}
	}
}

// SolvedFaces returns the number of faces solved right now.
func (t *Tracker) SolvedFaces() int {
	return t.state.SolvedFaces()
}

// HighestFaces returns the most faces solved at once since the start.
func (t *Tracker) HighestFaces() int {
	return t.highestFaces
}

// MoveCount returns the number of moves applied since the last reset.
func (t *Tracker) MoveCount() int {
	return t.moves
}

// IsSolved returns true if the cube is solved.
func (t *Tracker) IsSolved() bool {
	return t.state.IsSolved()
}

// State returns a copy of the tracked state.
func (t *Tracker) State() *cube.State {
	return t.state.Clone()
}

// CubeString returns a string representation of the cube.
func (t *Tracker) CubeString() string {
	return t.state.String()
}
