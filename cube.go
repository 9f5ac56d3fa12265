package cubesim

import (
	"fmt"
	"sync"

	"github.com/SeamusWaldron/cubesim/internal/cube"
	"github.com/SeamusWaldron/cubesim/internal/scramble"
)

// Cube is a 3x3x3 cube that can be shared between goroutines. Every
// mutation runs under a single lock; callbacks run after it is released.
type Cube struct {
	mu           sync.RWMutex
	state        *cube.State
	gen          *scramble.Generator
	length       int
	lastScramble []Move

	onMove   func(Move)
	onSolved func()
}

// NewCube creates a solved cube.
func NewCube(opts ...Option) *Cube {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.generator == nil {
		cfg.generator = scramble.New()
	}

	return &Cube{
		state:    cube.New(),
		gen:      cfg.generator,
		length:   cfg.scrambleLength,
		onMove:   cfg.onMove,
		onSolved: cfg.onSolved,
	}
}

// event is a move applied under the lock, reported once it is released.
type event struct {
	move   Move
	solved bool
}

// Apply applies moves in order. It panics, before changing anything, if any
// value is not one of the 18 moves.
func (c *Cube) Apply(moves ...Move) {
	for _, m := range moves {
		if !m.Valid() {
			panic(fmt.Errorf("%w: move %d", cube.ErrIndexOutOfRange, uint8(m)))
		}
	}

	c.mu.Lock()
	events := c.applyLocked(moves)
	c.mu.Unlock()

	c.notify(events)
}

// ApplyNotation parses and applies a sequence such as "R U R' U'". Nothing
// is applied if any token is invalid.
func (c *Cube) ApplyNotation(s string) error {
	moves, err := ParseMoves(s)
	if err != nil {
		return err
	}
	c.Apply(moves...)
	return nil
}

func (c *Cube) applyLocked(moves []Move) []event {
	if c.onMove == nil && c.onSolved == nil {
		cube.ApplyAll(c.state, moves)
		return nil
	}

	events := make([]event, len(moves))
	for i, m := range moves {
		cube.Apply(c.state, m)
		events[i] = event{move: m, solved: c.state.IsSolved()}
	}
	return events
}

func (c *Cube) notify(events []event) {
	for _, e := range events {
		if c.onMove != nil {
			c.onMove(e.move)
		}
		if e.solved && c.onSolved != nil {
			c.onSolved()
		}
	}
}

// Reset returns the cube to the solved state and forgets the last scramble.
func (c *Cube) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.SetSolved()
	c.lastScramble = nil
}

// Scramble applies a random sequence of the configured length and returns it.
func (c *Cube) Scramble() []Move {
	return c.ScrambleN(c.length)
}

// ScrambleN applies a random sequence of n moves and returns it. The
// sequence is remembered so Unscramble can undo it.
func (c *Cube) ScrambleN(n int) []Move {
	moves := c.gen.Generate(n)

	c.mu.Lock()
	events := c.applyLocked(moves)
	c.lastScramble = moves
	c.mu.Unlock()

	c.notify(events)
	return append([]Move(nil), moves...)
}

// Unscramble applies the inverse of the last scramble. The cube returns to
// the state it had before Scramble only if no other moves came in between.
func (c *Cube) Unscramble() ([]Move, error) {
	c.mu.Lock()
	if c.lastScramble == nil {
		c.mu.Unlock()
		return nil, ErrNoScramble
	}
	inv := cube.Invert(c.lastScramble)
	events := c.applyLocked(inv)
	c.lastScramble = nil
	c.mu.Unlock()

	c.notify(events)
	return inv, nil
}

// LastScramble returns a copy of the remembered scramble, or nil.
func (c *Cube) LastScramble() []Move {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.lastScramble == nil {
		return nil
	}
	return append([]Move(nil), c.lastScramble...)
}

// ApplyPattern applies the checker pattern. The cube must be solved.
func (c *Cube) ApplyPattern() error {
	c.mu.Lock()
	if !c.state.IsSolved() {
		c.mu.Unlock()
		return ErrNotSolved
	}
	events := c.applyLocked(CheckerPattern)
	c.mu.Unlock()

	c.notify(events)
	return nil
}

// Solve is not implemented and always returns ErrNotImplemented.
func (c *Cube) Solve() error {
	return ErrNotImplemented
}

// Snapshot returns an independent copy of the current state.
func (c *Cube) Snapshot() *cube.State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state.Clone()
}

// Get returns the color at (face, position). It panics on indices out of
// range.
func (c *Cube) Get(face Face, pos int) Color {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state.Get(face, pos)
}

// IsSolved returns true if every face is a single color.
func (c *Cube) IsSolved() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state.IsSolved()
}

// SolvedFaces returns how many faces are a single color.
func (c *Cube) SolvedFaces() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state.SolvedFaces()
}

// Key returns the 54 facelets as face letters.
func (c *Cube) Key() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state.Key()
}

// String returns a text representation of the unfolded net.
func (c *Cube) String() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state.String()
}
