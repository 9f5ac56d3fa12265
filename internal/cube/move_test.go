package cube

import (
	"errors"
	"testing"
)

func TestMoveNotation(t *testing.T) {
	want := []string{
		"R", "R'", "R2",
		"L", "L'", "L2",
		"U", "U'", "U2",
		"D", "D'", "D2",
		"F", "F'", "F2",
		"B", "B'", "B2",
	}
	for i, m := range AllMoves() {
		if m.Notation() != want[i] {
			t.Errorf("Move(%d).Notation() = %q, want %q", i, m.Notation(), want[i])
		}
	}
	if got := Move(18).String(); got != "Move(18)" {
		t.Errorf("invalid move String() = %q", got)
	}
}

func TestNewMoveRoundTrip(t *testing.T) {
	for _, m := range AllMoves() {
		if got := NewMove(m.Face(), m.Turn()); got != m {
			t.Errorf("NewMove(%v, %v) = %v, want %v", m.Face(), m.Turn(), got, m)
		}
	}
}

func TestMoveInverse(t *testing.T) {
	cases := map[Move]Move{
		R: RPrime, RPrime: R, R2: R2,
		U: UPrime, UPrime: U, U2: U2,
		B: BPrime, BPrime: B, B2: B2,
	}
	for m, want := range cases {
		if got := m.Inverse(); got != want {
			t.Errorf("%v.Inverse() = %v, want %v", m, got, want)
		}
	}
	for _, m := range AllMoves() {
		if m.Inverse().Inverse() != m {
			t.Errorf("%v inverse is not an involution", m)
		}
	}
}

func TestInvert(t *testing.T) {
	got := Invert([]Move{R, U, FPrime, D2})
	want := []Move{D2, F, UPrime, RPrime}
	if len(got) != len(want) {
		t.Fatalf("Invert() returned %d moves, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Invert()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	if len(Invert(nil)) != 0 {
		t.Error("Invert(nil) should be empty")
	}
}

func TestCheckerPattern(t *testing.T) {
	if got := len(CheckerPattern); got != 6 {
		t.Fatalf("CheckerPattern has %d moves, want 6", got)
	}
	s := New()
	ApplyAll(s, CheckerPattern)
	if s.IsSolved() || s.SolvedFaces() != 0 {
		t.Errorf("checker pattern should leave no face solved:\n%s", s)
	}
	for f := Face(0); f < NumFaces; f++ {
		if s.Get(f, 1) == s.Get(f, Center) {
			t.Errorf("%v: edge sticker should not match the center", f)
		}
		if s.Get(f, 0) != s.Get(f, Center) {
			t.Errorf("%v: corner sticker should match the center", f)
		}
	}
	ApplyAll(s, CheckerPattern)
	if !s.IsSolved() {
		t.Error("checker pattern twice should be solved")
	}
}

func TestNewMoveRejectsBadInput(t *testing.T) {
	cases := []struct {
		name string
		face Face
		turn Turn
	}{
		{"bad face", Face(7), Clockwise},
		{"bad turn", Front, Turn(3)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				err, ok := recover().(error)
				if !ok || !errors.Is(err, ErrIndexOutOfRange) {
					t.Errorf("expected ErrIndexOutOfRange panic, got %v", err)
				}
			}()
			NewMove(tc.face, tc.turn)
		})
	}
}

func TestTurnSuffix(t *testing.T) {
	if Clockwise.Suffix() != "" || CounterClockwise.Suffix() != "'" || Double.Suffix() != "2" {
		t.Error("unexpected turn suffixes")
	}
	if Clockwise.Inverse() != CounterClockwise || Double.Inverse() != Double {
		t.Error("unexpected turn inverses")
	}
}
