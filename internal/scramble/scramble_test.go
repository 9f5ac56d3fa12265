package scramble

import (
	"math/rand"
	"testing"

	"github.com/SeamusWaldron/cubesim/internal/cube"
)

func TestSeededGeneratorsAgree(t *testing.T) {
	a := NewSeeded(1234).Generate(DefaultLength)
	b := NewSeeded(1234).Generate(DefaultLength)

	if len(a) != DefaultLength || len(b) != DefaultLength {
		t.Fatalf("lengths = %d, %d, want %d", len(a), len(b), DefaultLength)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("move %d differs: %v vs %v", i, a[i], b[i])
		}
	}

	// The resulting states must match too.
	s1, s2 := cube.New(), cube.New()
	cube.ApplyAll(s1, a)
	cube.ApplyAll(s2, b)
	if !s1.Equal(s2) {
		t.Error("same seed produced different states")
	}
}

func TestSequenceMatchesGenerator(t *testing.T) {
	want := NewSeeded(99).Generate(40)
	got := Sequence(99, 40)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Sequence()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestGenerateNonPositiveCount(t *testing.T) {
	g := NewSeeded(1)
	for _, n := range []int{0, -1, -25} {
		moves := g.Generate(n)
		if moves == nil || len(moves) != 0 {
			t.Errorf("Generate(%d) = %v, want empty sequence", n, moves)
		}
	}
}

func TestGenerateDrawsOnlyValidMoves(t *testing.T) {
	g := NewWithSource(rand.NewSource(5))
	seen := make(map[cube.Move]int)
	for _, m := range g.Generate(5000) {
		if !m.Valid() {
			t.Fatalf("invalid move %d", m)
		}
		seen[m]++
	}
	// 5000 uniform draws over 18 moves hit every move.
	if len(seen) != cube.MoveCount {
		t.Errorf("saw %d distinct moves, want %d", len(seen), cube.MoveCount)
	}
}

func TestApplyThenInverseRestores(t *testing.T) {
	g := NewSeeded(2024)
	s := cube.New()
	moves := g.Apply(s, DefaultLength)
	if s.IsSolved() {
		t.Log("scramble happened to leave the cube solved")
	}

	cube.ApplyAll(s, cube.Invert(moves))
	if !s.IsSolved() {
		t.Error("inverse scramble should restore the solved state")
		t.Log(s.String())
	}
}

func TestSeed(t *testing.T) {
	if got := NewSeeded(77).Seed(); got != 77 {
		t.Errorf("Seed() = %d, want 77", got)
	}
	if got := NewWithSource(rand.NewSource(3)).Seed(); got != 0 {
		t.Errorf("Seed() = %d, want 0 for a bare source", got)
	}
}
