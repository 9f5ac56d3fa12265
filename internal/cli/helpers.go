package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/SeamusWaldron/cubesim/internal/cube"
	"github.com/SeamusWaldron/cubesim/internal/render"
	"github.com/SeamusWaldron/cubesim/internal/scheme"
	"github.com/SeamusWaldron/cubesim/internal/storage"
)

// ErrScrambleNotFound is returned when a scramble ID or --last finds nothing.
var ErrScrambleNotFound = errors.New("cubesim: scramble not found")

func openDB() (*storage.DB, error) {
	path := getDBPath()
	var db *storage.DB
	var err error

	if path == "" {
		db, err = storage.OpenDefault()
	} else {
		db, err = storage.Open(path)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.MigrateUp(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return db, nil
}

// resolveScramble finds a scramble by full ID, unique ID prefix, or the
// most recent one when last is set.
func resolveScramble(repo *storage.ScrambleRepository, args []string, last bool) (*storage.Scramble, error) {
	var s *storage.Scramble
	var err error

	switch {
	case last:
		s, err = repo.GetLast()
	case len(args) > 0:
		s, err = repo.FindByPrefix(args[0])
	default:
		return nil, fmt.Errorf("please provide a scramble ID or use --last")
	}

	if err != nil {
		return nil, err
	}
	if s == nil {
		if last {
			return nil, fmt.Errorf("%w: no scrambles stored yet", ErrScrambleNotFound)
		}
		return nil, fmt.Errorf("%w: %s", ErrScrambleNotFound, args[0])
	}
	return s, nil
}

// activeScheme returns the scheme named by override, or the configured one.
func activeScheme(override string) (scheme.Scheme, error) {
	name := override
	if name == "" && cfg != nil {
		name = cfg.Settings().Scheme
	}
	if name == "" {
		name = scheme.Default
	}
	return scheme.Lookup(name)
}

// writeState prints the net, in color unless plain is set.
func writeState(w io.Writer, s *cube.State, sc scheme.Scheme, plain bool) {
	if plain {
		fmt.Fprintln(w, render.Plain(s))
		return
	}
	fmt.Fprintln(w, render.New(sc).Net(s))
}

// wrapMoves groups notation into lines of at most width characters.
func wrapMoves(moves []cube.Move, width int) []string {
	var lines []string
	var line strings.Builder
	for _, m := range moves {
		tok := m.Notation()
		if line.Len() > 0 && line.Len()+1+len(tok) > width {
			lines = append(lines, line.String())
			line.Reset()
		}
		if line.Len() > 0 {
			line.WriteByte(' ')
		}
		line.WriteString(tok)
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return lines
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func formatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
	mins := int(d.Minutes())
	secs := d.Seconds() - float64(mins*60)
	return fmt.Sprintf("%dm%.1fs", mins, secs)
}
