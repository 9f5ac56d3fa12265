package cube

import "fmt"

// strip is a run of three facelets on a face bordering a turning face.
type strip struct {
	face Face
	pos  [3]int
}

// borders lists, for each face, the four strips around it in the order a
// clockwise quarter turn carries them: the sticker at borders[f][i].pos[k]
// moves to borders[f][i+1].pos[k].
var borders = [NumFaces][4]strip{
	Front: {
		{Up, [3]int{6, 7, 8}},
		{Right, [3]int{0, 3, 6}},
		{Down, [3]int{2, 1, 0}},
		{Left, [3]int{8, 5, 2}},
	},
	Up: {
		{Front, [3]int{0, 1, 2}},
		{Left, [3]int{0, 1, 2}},
		{Back, [3]int{0, 1, 2}},
		{Right, [3]int{0, 1, 2}},
	},
	Right: {
		{Front, [3]int{2, 5, 8}},
		{Up, [3]int{2, 5, 8}},
		{Back, [3]int{6, 3, 0}},
		{Down, [3]int{2, 5, 8}},
	},
	Down: {
		{Front, [3]int{6, 7, 8}},
		{Right, [3]int{6, 7, 8}},
		{Back, [3]int{6, 7, 8}},
		{Left, [3]int{6, 7, 8}},
	},
	Left: {
		{Front, [3]int{0, 3, 6}},
		{Down, [3]int{0, 3, 6}},
		{Back, [3]int{8, 5, 2}},
		{Up, [3]int{0, 3, 6}},
	},
	Back: {
		{Up, [3]int{0, 1, 2}},
		{Left, [3]int{6, 3, 0}},
		{Down, [3]int{8, 7, 6}},
		{Right, [3]int{2, 5, 8}},
	},
}

// Clockwise face rotation, shared by every face:
// corners 0->2->8->6->0, edges 1->5->7->3->1.
var (
	cornerCycle = [4]int{0, 2, 8, 6}
	edgeCycle   = [4]int{1, 5, 7, 3}
)

// movedPerTurn is the number of facelets every move relocates: the 8
// non-center stickers of the turning face plus 4 strips of 3.
const movedPerTurn = 8 + 4*3

const numFacelets = NumFaces * FaceletsPerFace

// mapping is a full permutation in gather form: after applying it, the
// facelet at index i holds what was at mapping[i]. Indices are
// face*9+position.
type mapping [numFacelets]uint8

func identity() mapping {
	var p mapping
	for i := range p {
		p[i] = uint8(i)
	}
	return p
}

// inverse returns the permutation that undoes p.
func (p mapping) inverse() mapping {
	var q mapping
	for dst, src := range p {
		q[src] = uint8(dst)
	}
	return q
}

// then returns the permutation equal to applying p and then next.
func (p mapping) then(next mapping) mapping {
	var q mapping
	for i := range q {
		q[i] = p[next[i]]
	}
	return q
}

// cell moves one facelet.
type cell struct {
	dst, src uint8
}

// permutation is the compiled, sparse form of a move.
type permutation [movedPerTurn]cell

var moveTable [MoveCount]permutation

func init() {
	for _, face := range Faces {
		cw := clockwise(face)
		compiled := map[Turn]mapping{
			Clockwise:        cw,
			CounterClockwise: cw.inverse(),
			Double:           cw.then(cw),
		}
		for t, p := range compiled {
			moveTable[NewMove(face, t)] = compile(face, t, p)
		}
	}
}

// clockwise builds the full permutation of a clockwise quarter turn of face.
func clockwise(face Face) mapping {
	p := identity()
	cycle := func(from [4]int) {
		for i := 0; i < 4; i++ {
			p[from[(i+1)%4]] = uint8(from[i])
		}
	}

	base := int(face) * FaceletsPerFace
	var corners, edges [4]int
	for i := 0; i < 4; i++ {
		corners[i] = base + cornerCycle[i]
		edges[i] = base + edgeCycle[i]
	}
	cycle(corners)
	cycle(edges)

	ring := borders[face]
	for k := 0; k < 3; k++ {
		var from [4]int
		for i, s := range ring {
			from[i] = int(s.face)*FaceletsPerFace + s.pos[k]
		}
		cycle(from)
	}
	return p
}

// compile reduces a full permutation to the facelets it moves.
func compile(face Face, t Turn, p mapping) permutation {
	var out permutation
	n := 0
	for dst, src := range p {
		if int(src) == dst {
			continue
		}
		if n == movedPerTurn || dst%FaceletsPerFace == Center {
			panic(fmt.Sprintf("cube: bad move table for %s %s", face, t))
		}
		out[n] = cell{dst: uint8(dst), src: src}
		n++
	}
	if n != movedPerTurn {
		panic(fmt.Sprintf("cube: move %s %s moves %d facelets", face, t, n))
	}
	return out
}

// Apply performs move m on the state in place. It panics, before touching
// the state, if m is not one of the 18 moves.
func Apply(s *State, m Move) {
	m.check()
	prev := s.facelets
	for _, c := range &moveTable[m] {
		s.facelets[c.dst/FaceletsPerFace][c.dst%FaceletsPerFace] =
			prev[c.src/FaceletsPerFace][c.src%FaceletsPerFace]
	}
}

// ApplyAll applies a sequence of moves in order.
func ApplyAll(s *State, moves []Move) {
	for _, m := range moves {
		Apply(s, m)
	}
}
