package console

import (
	"testing"

	"github.com/SeamusWaldron/cubesim/internal/cube"
	"github.com/SeamusWaldron/cubesim/internal/scheme"
	"github.com/SeamusWaldron/cubesim/internal/scramble"
)

func newTestConsole() *Console {
	return New(scramble.NewSeeded(1), scramble.DefaultLength, scheme.MustLookup("basic"))
}

func contains(lines []string, want string) bool {
	for _, l := range lines {
		if l == want {
			return true
		}
	}
	return false
}

func TestTurnsAreQueuedThenStepped(t *testing.T) {
	c := newTestConsole()
	res := c.Execute("R U R' U'")
	if res.Queued != 4 || c.Pending() != 4 {
		t.Fatalf("queued %d, pending %d, want 4", res.Queued, c.Pending())
	}
	if !c.State().IsSolved() {
		t.Error("turns should not apply before Step")
	}

	m, _, ok := c.Step()
	if !ok || m != cube.R {
		t.Errorf("first Step = %v, %v", m, ok)
	}
	c.Drain()
	if c.Pending() != 0 {
		t.Error("Drain should empty the queue")
	}
	if _, _, ok := c.Step(); ok {
		t.Error("Step on empty queue should report false")
	}
}

func TestInvalidTokenRejectsWholeLine(t *testing.T) {
	c := newTestConsole()
	res := c.Execute("R U r")
	if res.Queued != 0 || c.Pending() != 0 {
		t.Errorf("nothing should be queued, got %d", c.Pending())
	}
	if !contains(res.Lines, MsgUnknown) {
		t.Errorf("lines = %v, want %q", res.Lines, MsgUnknown)
	}
}

func TestSolvedMessageAfterSolvingTurn(t *testing.T) {
	c := newTestConsole()
	c.Execute("F F'")
	if _, lines, _ := c.Step(); contains(lines, MsgSolved) {
		t.Error("F alone should not report solved")
	}
	if _, lines, _ := c.Step(); !contains(lines, MsgSolved) {
		t.Error("F F' should report solved")
	}
}

func TestCommandsIgnoreCase(t *testing.T) {
	c := newTestConsole()
	c.Execute("R")
	c.Drain()
	res := c.Execute("RESET")
	if !contains(res.Lines, MsgReset) || !c.State().IsSolved() {
		t.Errorf("RESET should reset, got %v", res.Lines)
	}
	if res := c.Execute("Solve"); !contains(res.Lines, MsgNotImplemented) {
		t.Errorf("Solve lines = %v", res.Lines)
	}
	if res := c.Execute("Clear"); !res.Clear {
		t.Error("Clear should request a clear screen")
	}
	if res := c.Execute("QUIT"); !res.Quit {
		t.Error("QUIT should request exit")
	}
}

func TestScrambleAndUnscramble(t *testing.T) {
	c := newTestConsole()
	if res := c.Execute("unscramble"); !contains(res.Lines, MsgNoScramble) {
		t.Errorf("unscramble lines = %v", res.Lines)
	}

	res := c.Execute("scramble")
	if res.Queued != scramble.DefaultLength {
		t.Fatalf("scramble queued %d", res.Queued)
	}
	if res := c.Execute("R"); !contains(res.Lines, MsgBusy) {
		t.Error("turns should be refused while a scramble is pending")
	}
	c.Drain()

	c.Execute("unscramble")
	c.Drain()
	if !c.State().IsSolved() {
		t.Error("unscramble should restore the solved state")
	}
}

func TestPatternRequiresSolved(t *testing.T) {
	c := newTestConsole()
	res := c.Execute("pattern")
	if res.Queued != 6 {
		t.Fatalf("pattern queued %d, want 6", res.Queued)
	}
	c.Drain()
	want := "FBFBFBFBFUDUDUDUDURLRLRLRLRDUDUDUDUDLRLRLRLRLBFBFBFBFB"
	if got := c.State().Key(); got != want {
		t.Errorf("pattern state = %s", got)
	}

	if res := c.Execute("pattern"); !contains(res.Lines, MsgNotSolved) || res.Queued != 0 {
		t.Errorf("pattern on unsolved cube = %+v", res)
	}
}

func TestColorCommand(t *testing.T) {
	c := newTestConsole()
	c.Execute("color DODO")
	if c.Scheme().Name != "dodo" {
		t.Errorf("scheme = %s, want dodo", c.Scheme().Name)
	}
	for _, line := range []string{"color", "color neon", "color basic extra"} {
		res := c.Execute(line)
		if !contains(res.Lines, MsgBadScheme) {
			t.Errorf("%q lines = %v", line, res.Lines)
		}
	}
	if c.Scheme().Name != "dodo" {
		t.Error("bad color commands should not change the scheme")
	}
}

func TestResetClearsQueue(t *testing.T) {
	c := newTestConsole()
	c.Execute("R U F")
	c.Execute("reset")
	if c.Pending() != 0 || !c.State().IsSolved() {
		t.Error("reset should clear pending turns")
	}
}

func TestBlankLineIsIgnored(t *testing.T) {
	res := newTestConsole().Execute("   ")
	if len(res.Lines) != 0 || res.Queued != 0 {
		t.Errorf("blank line result = %+v", res)
	}
}

func TestHelpListsAllTurns(t *testing.T) {
	res := newTestConsole().Execute("help")
	if !contains(res.Lines, "R' - Right face counterclockwise turn") {
		t.Errorf("help missing turn descriptions: %v", res.Lines)
	}
}
