package cube

import (
	"errors"
	"testing"
)

func TestNewStateIsSolved(t *testing.T) {
	s := New()
	if !s.IsSolved() {
		t.Error("New state should be solved")
	}
	for _, face := range Faces {
		for pos := 0; pos < FaceletsPerFace; pos++ {
			if got := s.Get(face, pos); got != SolvedColor(face) {
				t.Errorf("Get(%v, %d) = %v, want %v", face, pos, got, SolvedColor(face))
			}
		}
	}
}

func TestRightFaceSolvedColors(t *testing.T) {
	s := New()
	ApplyAll(s, []Move{R, U, F2})
	s.SetSolved()
	if s.Get(Right, Center) != Color(Right) {
		t.Errorf("Right center = %v, want %v", s.Get(Right, Center), Color(Right))
	}
	for pos := 0; pos < FaceletsPerFace; pos++ {
		if s.Get(Right, pos) != Color(Right) {
			t.Errorf("Right[%d] = %v, want R", pos, s.Get(Right, pos))
		}
	}
}

func TestSetSolvedIsIdempotent(t *testing.T) {
	s := New()
	ApplyAll(s, []Move{F, UPrime, R2})
	s.SetSolved()
	first := s.Key()
	s.SetSolved()
	if s.Key() != first || !s.IsSolved() {
		t.Errorf("SetSolved not idempotent: %s then %s", first, s.Key())
	}
}

func TestCloneIsIndependent(t *testing.T) {
	s := New()
	Apply(s, R)
	c := s.Clone()
	if !c.Equal(s) {
		t.Fatal("clone should equal its source")
	}

	Apply(c, U)
	if c.Equal(s) {
		t.Error("mutating the clone changed the source")
	}

	before := c.Key()
	Apply(s, D2)
	if c.Key() != before {
		t.Error("mutating the source changed the clone")
	}
}

func TestGetOutOfRangePanics(t *testing.T) {
	cases := []struct {
		name string
		face Face
		pos  int
	}{
		{"negative face", Face(-1), 0},
		{"face too large", Face(6), 0},
		{"negative position", Front, -1},
		{"position too large", Back, 9},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				r := recover()
				if r == nil {
					t.Fatal("expected panic")
				}
				err, ok := r.(error)
				if !ok || !errors.Is(err, ErrIndexOutOfRange) {
					t.Errorf("panic value %v does not wrap ErrIndexOutOfRange", r)
				}
			}()
			New().Get(tc.face, tc.pos)
		})
	}
}

func TestIsSolvedIgnoresColorAssignment(t *testing.T) {
	// A state whose faces are monochrome with permuted colors is solved.
	s := New()
	for face := range s.facelets {
		for i := range s.facelets[face] {
			s.facelets[face][i] = Color((face + 1) % NumFaces)
		}
	}
	if !s.IsSolved() {
		t.Error("monochrome faces should count as solved")
	}

	s.facelets[Left][0] = Color(Left)
	if s.IsSolved() {
		t.Error("a face with two colors is not solved")
	}
}

func TestSolvedFaces(t *testing.T) {
	s := New()
	if n := s.SolvedFaces(); n != 6 {
		t.Errorf("SolvedFaces() = %d on solved state, want 6", n)
	}
	Apply(s, R)
	// R leaves only Right and Left monochrome.
	if n := s.SolvedFaces(); n != 2 {
		t.Errorf("SolvedFaces() = %d after R, want 2", n)
	}
}

func TestKeyAndBytes(t *testing.T) {
	s := New()
	want := "FFFFFFFFFUUUUUUUUURRRRRRRRRDDDDDDDDDLLLLLLLLLBBBBBBBBB"
	if s.Key() != want {
		t.Errorf("Key() = %s, want %s", s.Key(), want)
	}
	b := s.Bytes()
	if len(b) != 54 {
		t.Fatalf("len(Bytes()) = %d, want 54", len(b))
	}
	for i, v := range b {
		if int(v) != i/9 {
			t.Errorf("Bytes()[%d] = %d, want %d", i, v, i/9)
		}
	}
}

func TestStringShowsNet(t *testing.T) {
	want := "" +
		"      U U U \n" +
		"      U U U \n" +
		"      U U U \n" +
		"L L L F F F R R R B B B \n" +
		"L L L F F F R R R B B B \n" +
		"L L L F F F R R R B B B \n" +
		"      D D D \n" +
		"      D D D \n" +
		"      D D D \n"
	if got := New().String(); got != want {
		t.Errorf("String() =\n%s\nwant\n%s", got, want)
	}
}

func TestFaceNames(t *testing.T) {
	want := map[Face]string{Front: "F", Up: "U", Right: "R", Down: "D", Left: "L", Back: "B"}
	for f, s := range want {
		if f.String() != s {
			t.Errorf("%d.String() = %q, want %q", int(f), f.String(), s)
		}
		if SolvedColor(f).Face() != f {
			t.Errorf("SolvedColor(%v).Face() = %v", f, SolvedColor(f).Face())
		}
	}
	if Face(9).String() != "?" || Face(9).Valid() {
		t.Error("Face(9) should be invalid")
	}
}
