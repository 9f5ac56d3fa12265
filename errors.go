package cubesim

import (
	"errors"

	"github.com/SeamusWaldron/cubesim/internal/notation"
)

// Sentinel errors for the cubesim package.
var (
	// Parsing errors
	ErrInvalidNotation = notation.ErrInvalidToken

	// State errors
	ErrNoScramble     = errors.New("cubesim: no scramble to undo")
	ErrNotSolved      = errors.New("cubesim: cube must be solved first")
	ErrNotImplemented = errors.New("cubesim: solving is not implemented")
)
