package cubesim

import (
	"math/rand"

	"github.com/SeamusWaldron/cubesim/internal/scramble"
)

// Option configures Cube behavior.
type Option func(*config)

type config struct {
	generator      *scramble.Generator
	scrambleLength int
	onMove         func(Move)
	onSolved       func()
}

func defaultConfig() *config {
	return &config{
		scrambleLength: scramble.DefaultLength,
	}
}

// WithSeed makes scrambles reproducible: two cubes built with the same seed
// produce the same scramble sequences.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.generator = scramble.NewSeeded(seed)
	}
}

// WithSource draws scramble moves from src.
func WithSource(src rand.Source) Option {
	return func(c *config) {
		c.generator = scramble.NewWithSource(src)
	}
}

// WithScrambleLength sets the number of moves Scramble draws.
// Values below zero are treated as zero.
func WithScrambleLength(n int) Option {
	return func(c *config) {
		if n < 0 {
			n = 0
		}
		c.scrambleLength = n
	}
}

// WithMoveCallback registers a function called after every applied move.
func WithMoveCallback(cb func(Move)) Option {
	return func(c *config) {
		c.onMove = cb
	}
}

// WithSolvedCallback registers a function called when a move leaves the
// cube solved.
func WithSolvedCallback(cb func()) Option {
	return func(c *config) {
		c.onSolved = cb
	}
}
