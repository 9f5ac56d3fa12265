package cli

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/SeamusWaldron/cubesim/internal/console"
	"github.com/SeamusWaldron/cubesim/internal/cube"
	"github.com/SeamusWaldron/cubesim/internal/notation"
	"github.com/SeamusWaldron/cubesim/internal/scheme"
	"github.com/SeamusWaldron/cubesim/internal/scramble"
)

func typeLine(m *playModel, line string) tea.Cmd {
	for _, r := range line {
		if r == ' ' {
			m.Update(tea.KeyMsg{Type: tea.KeySpace})
			continue
		}
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return cmd
}

func newTestPlayModel() *playModel {
	c := console.New(scramble.NewSeeded(1), scramble.DefaultLength, scheme.MustLookup("basic"))
	return newPlayModel(c, time.Millisecond)
}

func TestPlayModelPacesTurns(t *testing.T) {
	m := newTestPlayModel()

	cmd := typeLine(m, "R U")
	if cmd == nil {
		t.Fatal("expected a tick to be scheduled for the second turn")
	}
	if m.lastMove != "R" {
		t.Errorf("first turn should apply immediately, last move is %q", m.lastMove)
	}
	if got := m.console.Pending(); got != 1 {
		t.Errorf("expected 1 pending turn, got %d", got)
	}

	_, cmd = m.Update(turnTickMsg(time.Now()))
	if cmd != nil {
		t.Error("no tick expected once the queue is empty")
	}
	if m.lastMove != "U" || m.turning {
		t.Errorf("expected U applied and idle, got last=%q turning=%v", m.lastMove, m.turning)
	}

	want := cube.New()
	cube.ApplyAll(want, []cube.Move{cube.R, cube.U})
	if !m.console.State().Equal(want) {
		t.Errorf("state mismatch:\n%s", m.console.State())
	}

	typeLine(m, "U' R'")
	m.Update(turnTickMsg(time.Now()))
	if !m.console.State().IsSolved() {
		t.Fatal("expected solved cube after undoing the turns")
	}
	if m.log[len(m.log)-1] != console.MsgSolved {
		t.Errorf("expected %q at end of log, got %q", console.MsgSolved, m.log[len(m.log)-1])
	}
	if !strings.Contains(m.View(), "SOLVED") {
		t.Error("view should show SOLVED")
	}
}

func TestPlayModelRejectsBadLine(t *testing.T) {
	m := newTestPlayModel()

	if cmd := typeLine(m, "R X"); cmd != nil {
		t.Error("nothing should be scheduled for a rejected line")
	}
	if m.console.Pending() != 0 || !m.console.State().IsSolved() {
		t.Error("a rejected line must not change the cube")
	}

	found := false
	for _, line := range m.log {
		if line == console.MsgUnknown {
			found = true
		}
	}
	if !found {
		t.Errorf("expected %q in log, got %v", console.MsgUnknown, m.log)
	}
}

func TestPlayModelEditing(t *testing.T) {
	m := newTestPlayModel()

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("R2x")})
	m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	if m.input != "R2" {
		t.Errorf("expected input R2, got %q", m.input)
	}

	if cmd := typeLine(m, ""); cmd != nil {
		t.Error("single turn should not schedule a tick")
	}
	if m.input != "" {
		t.Errorf("input should be cleared after Enter, got %q", m.input)
	}
	if m.lastMove != "R2" {
		t.Errorf("expected R2 applied, got %q", m.lastMove)
	}
}

func TestPlayModelQuit(t *testing.T) {
	m := newTestPlayModel()

	if cmd := typeLine(m, "quit"); cmd == nil {
		t.Fatal("expected quit command")
	}
	if !m.quitting {
		t.Error("model should be quitting")
	}
	if m.View() != "Goodbye!\n" {
		t.Errorf("unexpected view: %q", m.View())
	}
}

func TestPlayModelLogLimit(t *testing.T) {
	m := newTestPlayModel()
	for i := 0; i < maxLogLines*2; i++ {
		typeLine(m, "bogus")
	}
	if len(m.log) != maxLogLines {
		t.Errorf("expected %d log lines, got %d", maxLogLines, len(m.log))
	}
}

func TestReplayModelStepping(t *testing.T) {
	// A commutator followed by its inverse returns to solved.
	moves, err := notation.ParseSequence("R U R' U' U R U' R'")
	if err != nil {
		t.Fatal(err)
	}
	m := newReplayModel("test", cube.New(), moves, scheme.MustLookup("basic"), time.Millisecond)

	if m.Init() == nil {
		t.Fatal("replay should start playing")
	}

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")})
	if m.playing || m.index != 1 {
		t.Errorf("n should pause and step, got playing=%v index=%d", m.playing, m.index)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("b")})
	if m.index != 0 || !m.tracker.IsSolved() {
		t.Errorf("back should return to the start, got index=%d", m.index)
	}

	// Ticks are ignored while paused.
	m.Update(replayTickMsg(time.Now()))
	if m.index != 0 {
		t.Errorf("paused replay advanced to %d", m.index)
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("p")})
	if cmd == nil {
		t.Fatal("play should schedule a tick")
	}
	for i := 0; i < len(moves); i++ {
		_, cmd = m.Update(replayTickMsg(time.Now()))
	}
	if cmd != nil {
		t.Error("no tick expected at the end of the sequence")
	}
	if m.index != len(moves) || !m.tracker.IsSolved() {
		t.Errorf("expected solved cube after %d moves, index=%d", len(moves), m.index)
	}
	if m.playing {
		t.Error("playback should stop at the end of the sequence")
	}

	view := m.View()
	if !strings.Contains(view, "Move 8/8") || !strings.Contains(view, "SOLVED") || !strings.Contains(view, "[PAUSED]") {
		t.Errorf("unexpected view:\n%s", view)
	}

	// Play at the end starts over.
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("p")})
	if cmd == nil || !m.playing || m.index != 0 {
		t.Errorf("play at the end should restart, got playing=%v index=%d", m.playing, m.index)
	}
}

func TestReplayModelPartialIsUnsolved(t *testing.T) {
	moves, err := notation.ParseSequence("R U R' U'")
	if err != nil {
		t.Fatal(err)
	}
	m := newReplayModel("sexy", cube.New(), moves, scheme.MustLookup("basic"), time.Millisecond)
	for range moves {
		m.Update(replayTickMsg(time.Now()))
	}

	if m.index != len(moves) || m.tracker.IsSolved() {
		t.Errorf("one sexy move should leave the cube unsolved, index=%d", m.index)
	}
	if !strings.Contains(m.View(), "Move 4/4") {
		t.Errorf("unexpected view:\n%s", m.View())
	}
}

func TestReplayModelInverse(t *testing.T) {
	moves := scramble.Sequence(99, 20)
	start := cube.New()
	cube.ApplyAll(start, moves)

	m := newReplayModel("inverse", start, cube.Invert(moves), scheme.MustLookup("dodo"), time.Millisecond)
	if m.tracker.IsSolved() {
		t.Fatal("replay should start scrambled")
	}

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("p")})
	for i := 0; i < len(moves); i++ {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")})
	}
	if !m.tracker.IsSolved() {
		t.Error("replaying the inverse should solve the cube")
	}

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	if m.index != 0 || !m.tracker.State().Equal(start) {
		t.Error("restart should return to the scrambled start")
	}
}
