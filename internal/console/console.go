// Package console interprets the line commands of the interactive cube
// console.
package console

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/SeamusWaldron/cubesim/internal/cube"
	"github.com/SeamusWaldron/cubesim/internal/notation"
	"github.com/SeamusWaldron/cubesim/internal/scheme"
	"github.com/SeamusWaldron/cubesim/internal/scramble"
)

// ErrBusy is reported when a command needs the cube while turns are still
// queued.
var ErrBusy = errors.New("console: turns still in progress")

// Messages printed by the console.
const (
	MsgSolved         = "Cube solved!"
	MsgReset          = "Cube reset."
	MsgNotImplemented = "Feature not yet implemented."
	MsgUnknown        = "Command not recognized!"
	MsgUnknownHint    = `Type "help" to display a list of valid commands.`
	MsgBadScheme      = "Please enter a valid color scheme! Possible options include:"
	MsgNotSolved      = "Please make sure the cube is solved before attempting to make the pattern."
	MsgNoScramble     = "There is no scramble to undo."
	MsgBusy           = "Please wait for the current turns to finish."
	MsgTerminated     = "Program terminated."
)

// Result describes what a command did.
type Result struct {
	Lines  []string
	Queued int  // Moves added to the turn queue
	Clear  bool // Caller should clear the screen
	Quit   bool // Caller should exit
}

func (r *Result) add(lines ...string) {
	r.Lines = append(r.Lines, lines...)
}

// Console owns a cube state and a queue of turns waiting to be applied.
// Commands are accepted whole; turns are applied one at a time by Step so
// a caller can pace them.
type Console struct {
	mu           sync.RWMutex
	state        *cube.State
	gen          *scramble.Generator
	length       int
	scheme       scheme.Scheme
	pending      []cube.Move
	lastScramble []cube.Move
}

// New creates a console over a solved cube.
func New(gen *scramble.Generator, length int, sc scheme.Scheme) *Console {
	if gen == nil {
		gen = scramble.New()
	}
	return &Console{
		state:  cube.New(),
		gen:    gen,
		length: length,
		scheme: sc,
	}
}

// State returns a copy of the current cube state.
func (c *Console) State() *cube.State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state.Clone()
}

// Scheme returns the active color scheme.
func (c *Console) Scheme() scheme.Scheme {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.scheme
}

// Pending returns the number of queued turns.
func (c *Console) Pending() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.pending)
}

// Execute runs one input line. Command words ignore case; turn tokens do
// not. A line of turns is queued only if every token is valid.
func (c *Console) Execute(line string) Result {
	var res Result
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return res
	}

	cmd := strings.ToLower(fields[0])
	slog.Debug("console command", "line", line)

	c.mu.Lock()
	defer c.mu.Unlock()

	switch {
	case cmd == "reset" && len(fields) == 1:
		c.state.SetSolved()
		c.pending = nil
		c.lastScramble = nil
		res.add(MsgReset)

	case cmd == "solve" && len(fields) == 1:
		res.add(MsgNotImplemented)

	case cmd == "clear" && len(fields) == 1:
		res.Clear = true

	case cmd == "help" && len(fields) == 1:
		res.add(HelpText()...)

	case cmd == "quit" && len(fields) == 1:
		c.pending = nil
		res.add(MsgTerminated)
		res.Quit = true

	case cmd == "scramble" && len(fields) == 1:
		if c.busy(&res) {
			break
		}
		moves := c.gen.Generate(c.length)
		c.lastScramble = moves
		c.enqueue(&res, moves)

	case cmd == "unscramble" && len(fields) == 1:
		if c.busy(&res) {
			break
		}
		if c.lastScramble == nil {
			res.add(MsgNoScramble)
			break
		}
		c.enqueue(&res, cube.Invert(c.lastScramble))
		c.lastScramble = nil

	case cmd == "pattern" && len(fields) == 1:
		if c.busy(&res) {
			break
		}
		if !c.state.IsSolved() {
			res.add(MsgNotSolved)
			break
		}
		c.enqueue(&res, cube.CheckerPattern)

	case cmd == "color":
		c.color(&res, fields)

	default:
		c.turns(&res, line)
	}

	return res
}

func (c *Console) busy(res *Result) bool {
	if len(c.pending) == 0 {
		return false
	}
	res.add(MsgBusy)
	return true
}

func (c *Console) enqueue(res *Result, moves []cube.Move) {
	c.pending = append(c.pending, moves...)
	res.Queued += len(moves)
	if len(moves) > 0 {
		res.add(notation.FormatSequence(moves))
	}
}

func (c *Console) color(res *Result, fields []string) {
	if len(fields) != 2 {
		res.add(MsgBadScheme, strings.Join(scheme.Names(), "\t"))
		return
	}
	sc, err := scheme.Lookup(fields[1])
	if err != nil {
		res.add(MsgBadScheme, strings.Join(scheme.Names(), "\t"))
		return
	}
	c.scheme = sc
	res.add(fmt.Sprintf("Color scheme set to %s.", sc.Name))
}

func (c *Console) turns(res *Result, line string) {
	moves, err := notation.ParseSequence(line)
	if err != nil {
		slog.Debug("rejected turn line", "error", err)
		res.add(MsgUnknown, MsgUnknownHint)
		return
	}
	if c.busy(res) {
		return
	}
	c.pending = append(c.pending, moves...)
	res.Queued += len(moves)
}

// Step applies the next queued turn. It returns false when the queue is
// empty. The lines hold MsgSolved when the turn left the cube solved.
func (c *Console) Step() (cube.Move, []string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.pending) == 0 {
		return 0, nil, false
	}
	m := c.pending[0]
	c.pending = c.pending[1:]
	cube.Apply(c.state, m)

	if c.state.IsSolved() {
		return m, []string{MsgSolved}, true
	}
	return m, nil, true
}

// Drain applies every queued turn without pacing and returns the output.
func (c *Console) Drain() []string {
	var out []string
	for {
		_, lines, ok := c.Step()
		if !ok {
			return out
		}
		out = append(out, lines...)
	}
}

// HelpText returns the help screen.
func HelpText() []string {
	lines := []string{
		"Commands:",
		"reset - Reset the cube to solved",
		"scramble - Apply a random scramble",
		"unscramble - Undo the last scramble",
		"pattern - Make a checker pattern (cube must be solved)",
		"color <" + strings.Join(scheme.Names(), "|") + "> - Change the color scheme",
		"solve - Solve the cube (not implemented)",
		"clear - Clear the screen",
		"help - Show this help",
		"quit - Exit",
		"",
		"Turns (case sensitive, separated by spaces):",
	}
	return append(lines, notation.HelpLines()...)
}
