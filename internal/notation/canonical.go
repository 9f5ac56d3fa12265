// Package notation converts between move tokens (R, R', R2, ...) and moves.
package notation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/SeamusWaldron/cubesim/internal/cube"
)

// ErrInvalidToken is returned when text does not name one of the 18 moves.
var ErrInvalidToken = errors.New("notation: invalid move token")

// TokenError reports the first token of a sequence that failed to parse.
type TokenError struct {
	Token string
	Index int
}

func (e *TokenError) Error() string {
	return fmt.Sprintf("notation: invalid move token %q at position %d", e.Token, e.Index+1)
}

func (e *TokenError) Unwrap() error {
	return ErrInvalidToken
}

var tokens = func() map[string]cube.Move {
	m := make(map[string]cube.Move, cube.MoveCount)
	for _, mv := range cube.AllMoves() {
		m[mv.Notation()] = mv
	}
	return m
}()

// Parse converts a single token into a Move. Tokens are case-sensitive and
// must match exactly: "r" and "R3" are rejected.
func Parse(token string) (cube.Move, error) {
	m, ok := tokens[token]
	if !ok {
		return 0, &TokenError{Token: token, Index: 0}
	}
	return m, nil
}

// ParseSequence parses a whitespace-separated list of tokens. If any token
// is invalid no moves are returned and the error names the first one.
func ParseSequence(s string) ([]cube.Move, error) {
	parts := strings.Fields(s)
	moves := make([]cube.Move, 0, len(parts))

	for i, part := range parts {
		m, ok := tokens[part]
		if !ok {
			return nil, &TokenError{Token: part, Index: i}
		}
		moves = append(moves, m)
	}

	return moves, nil
}

// FormatSequence formats moves as a space-separated string.
func FormatSequence(moves []cube.Move) string {
	if len(moves) == 0 {
		return ""
	}

	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}

	return strings.Join(parts, " ")
}

// Tokens returns the accepted tokens in move encoding order.
func Tokens() []string {
	out := make([]string, 0, cube.MoveCount)
	for _, m := range cube.AllMoves() {
		out = append(out, m.Notation())
	}
	return out
}
