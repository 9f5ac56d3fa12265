// Package scramble draws random move sequences for mixing a cube.
package scramble

import (
	"math/rand"
	"sync"
	"time"

	"github.com/SeamusWaldron/cubesim/internal/cube"
)

// DefaultLength is the number of moves in a scramble when none is given.
const DefaultLength = 25

// Generator draws moves uniformly, with replacement, from the 18 face
// turns. It makes no attempt to avoid redundant or cancelling neighbours.
// A Generator is safe for concurrent use.
type Generator struct {
	mu   sync.Mutex
	rng  *rand.Rand
	seed int64
}

// New creates a generator seeded from the clock.
func New() *Generator {
	return NewSeeded(time.Now().UnixNano())
}

// NewSeeded creates a generator whose output is fully determined by seed.
func NewSeeded(seed int64) *Generator {
	g := NewWithSource(rand.NewSource(seed))
	g.seed = seed
	return g
}

// NewWithSource creates a generator drawing from src. Seed reports 0 for
// generators built this way.
func NewWithSource(src rand.Source) *Generator {
	return &Generator{rng: rand.New(src)}
}

// Seed returns the seed the generator was created with.
func (g *Generator) Seed() int64 {
	return g.seed
}

// Generate returns count moves in draw order. A count of zero or less
// yields an empty sequence.
func (g *Generator) Generate(count int) []cube.Move {
	if count <= 0 {
		return []cube.Move{}
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	moves := make([]cube.Move, count)
	for i := range moves {
		moves[i] = cube.Move(g.rng.Intn(cube.MoveCount))
	}
	return moves
}

// Apply generates count moves, applies them to s in order and returns them.
func (g *Generator) Apply(s *cube.State, count int) []cube.Move {
	moves := g.Generate(count)
	cube.ApplyAll(s, moves)
	return moves
}

// Sequence regenerates the scramble produced by a fresh generator seeded
// with seed. Equal arguments always give equal sequences.
func Sequence(seed int64, count int) []cube.Move {
	return NewSeeded(seed).Generate(count)
}
