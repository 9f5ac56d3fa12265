package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/SeamusWaldron/cubesim/internal/cube"
	"github.com/SeamusWaldron/cubesim/internal/notation"
)

// ErrEmptyPrefix is returned by FindByPrefix when the prefix has no
// characters left to match.
var ErrEmptyPrefix = errors.New("storage: empty scramble id prefix")

// timeFormat has fixed width so created_at sorts as text.
const timeFormat = "2006-01-02T15:04:05.000000000Z"

// Scramble is a generated scramble as stored in the database.
type Scramble struct {
	ScrambleID string
	CreatedAt  time.Time
	Seed       int64
	Length     int
	Notation   string
	Digest     string
	Label      *string
}

// Moves parses the stored notation back into moves.
func (s *Scramble) Moves() ([]cube.Move, error) {
	moves, err := notation.ParseSequence(s.Notation)
	if err != nil {
		return nil, fmt.Errorf("failed to parse scramble %s: %w", s.ScrambleID, err)
	}
	return moves, nil
}

// ScrambleMove is one row of a scramble's move list.
type ScrambleMove struct {
	MoveID     int64
	ScrambleID string
	MoveIndex  int
	Face       string
	Turn       int
	Notation   string
}

// ScrambleRepository provides CRUD operations for scrambles.
type ScrambleRepository struct {
	db *DB
}

// NewScrambleRepository creates a new scramble repository.
func NewScrambleRepository(db *DB) *ScrambleRepository {
	return &ScrambleRepository{db: db}
}

// Create stores a scramble generated from seed together with the digest of
// the state it produces from solved, and returns the new ID.
func (r *ScrambleRepository) Create(seed int64, moves []cube.Move, label string) (string, error) {
	id := uuid.New().String()
	createdAt := time.Now().UTC()

	s := cube.New()
	cube.ApplyAll(s, moves)
	digest := Digest(s)

	var labelPtr *string
	if label != "" {
		labelPtr = &label
	}

	err := r.db.Transaction(func(tx *sql.Tx) error {
		_, err := tx.Exec(`
			INSERT INTO scrambles (scramble_id, created_at, seed, length, notation, digest, label)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, id, createdAt.Format(timeFormat), seed, len(moves), notation.FormatSequence(moves), digest, labelPtr)
		if err != nil {
			return fmt.Errorf("failed to insert scramble: %w", err)
		}

		for i, m := range moves {
			_, err := tx.Exec(`
				INSERT INTO scramble_moves (scramble_id, move_index, face, turn, notation)
				VALUES (?, ?, ?, ?, ?)
			`, id, i, m.Face().String(), int(m.Turn()), m.Notation())
			if err != nil {
				return fmt.Errorf("failed to insert move %d: %w", i, err)
			}
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to create scramble: %w", err)
	}

	return id, nil
}

const scrambleColumns = `scramble_id, created_at, seed, length, notation, digest, label`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanScramble(row rowScanner) (*Scramble, error) {
	var s Scramble
	var createdAtStr string
	err := row.Scan(&s.ScrambleID, &createdAtStr, &s.Seed, &s.Length, &s.Notation, &s.Digest, &s.Label)
	if err != nil {
		return nil, err
	}
	s.CreatedAt, _ = time.Parse(timeFormat, createdAtStr)
	return &s, nil
}

// Get retrieves a scramble by ID. It returns nil, nil when none exists.
func (r *ScrambleRepository) Get(scrambleID string) (*Scramble, error) {
	s, err := scanScramble(r.db.QueryRow(`
		SELECT `+scrambleColumns+`
		FROM scrambles
		WHERE scramble_id = ?
	`, scrambleID))

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get scramble: %w", err)
	}
	return s, nil
}

// FindByPrefix retrieves the single scramble whose ID starts with prefix.
// It returns nil, nil when nothing matches, an error when more than one
// scramble matches, and ErrEmptyPrefix when the prefix is blank or made only
// of LIKE wildcards.
func (r *ScrambleRepository) FindByPrefix(prefix string) (*Scramble, error) {
	if s, err := r.Get(prefix); s != nil || err != nil {
		return s, err
	}

	prefix = strings.NewReplacer("%", "", "_", "").Replace(strings.TrimSpace(prefix))
	if prefix == "" {
		return nil, ErrEmptyPrefix
	}
	pattern := prefix + "%"
	rows, err := r.db.Query(`
		SELECT `+scrambleColumns+`
		FROM scrambles
		WHERE scramble_id LIKE ?
		LIMIT 2
	`, pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to find scramble: %w", err)
	}
	defer rows.Close()

	var found []*Scramble
	for rows.Next() {
		s, err := scanScramble(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan scramble: %w", err)
		}
		found = append(found, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to find scramble: %w", err)
	}

	switch len(found) {
	case 0:
		return nil, nil
	case 1:
		return found[0], nil
	default:
		return nil, fmt.Errorf("scramble id prefix %q is ambiguous", prefix)
	}
}

// GetLast retrieves the most recent scramble.
func (r *ScrambleRepository) GetLast() (*Scramble, error) {
	s, err := scanScramble(r.db.QueryRow(`
		SELECT ` + scrambleColumns + `
		FROM scrambles
		ORDER BY created_at DESC, rowid DESC
		LIMIT 1
	`))

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get last scramble: %w", err)
	}
	return s, nil
}

// List retrieves recent scrambles, newest first.
func (r *ScrambleRepository) List(limit int) ([]Scramble, error) {
	rows, err := r.db.Query(`
		SELECT `+scrambleColumns+`
		FROM scrambles
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list scrambles: %w", err)
	}
	defer rows.Close()

	var scrambles []Scramble
	for rows.Next() {
		s, err := scanScramble(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan scramble: %w", err)
		}
		scrambles = append(scrambles, *s)
	}

	return scrambles, rows.Err()
}

// GetMoves retrieves the move rows of a scramble in order.
func (r *ScrambleRepository) GetMoves(scrambleID string) ([]ScrambleMove, error) {
	rows, err := r.db.Query(`
		SELECT move_id, scramble_id, move_index, face, turn, notation
		FROM scramble_moves
		WHERE scramble_id = ?
		ORDER BY move_index
	`, scrambleID)
	if err != nil {
		return nil, fmt.Errorf("failed to get moves: %w", err)
	}
	defer rows.Close()

	var moves []ScrambleMove
	for rows.Next() {
		var m ScrambleMove
		if err := rows.Scan(&m.MoveID, &m.ScrambleID, &m.MoveIndex, &m.Face, &m.Turn, &m.Notation); err != nil {
			return nil, fmt.Errorf("failed to scan move: %w", err)
		}
		moves = append(moves, m)
	}

	return moves, rows.Err()
}

// Delete deletes a scramble and its moves. It reports whether a row existed.
func (r *ScrambleRepository) Delete(scrambleID string) (bool, error) {
	result, err := r.db.Exec("DELETE FROM scrambles WHERE scramble_id = ?", scrambleID)
	if err != nil {
		return false, fmt.Errorf("failed to delete scramble: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to delete scramble: %w", err)
	}
	return n > 0, nil
}

// Count returns the number of stored scrambles.
func (r *ScrambleRepository) Count() (int, error) {
	var count int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM scrambles").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count scrambles: %w", err)
	}
	return count, nil
}
