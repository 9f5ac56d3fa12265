package cubesim

import "github.com/SeamusWaldron/cubesim/internal/cube"

// Predefined moves for convenience.
//
// Example:
//
//	cube.Apply(cubesim.R, cubesim.U, cubesim.RPrime, cubesim.UPrime)
const (
	// Right face moves
	R      = cube.R      // Right clockwise
	RPrime = cube.RPrime // Right counter-clockwise
	R2     = cube.R2     // Right 180

	// Left face moves
	L      = cube.L
	LPrime = cube.LPrime
	L2     = cube.L2

	// Up face moves
	U      = cube.U
	UPrime = cube.UPrime
	U2     = cube.U2

	// Down face moves
	D      = cube.D
	DPrime = cube.DPrime
	D2     = cube.D2

	// Front face moves
	F      = cube.F
	FPrime = cube.FPrime
	F2     = cube.F2

	// Back face moves
	B      = cube.B
	BPrime = cube.BPrime
	B2     = cube.B2
)

// Sexy move: R U R' U' - one of the most common algorithms
var SexyMove = []Move{R, U, RPrime, UPrime}

// Inverse sexy move: U R U' R'
var InverseSexyMove = []Move{U, R, UPrime, RPrime}

// T-perm algorithm
var TPerm = []Move{R, U, RPrime, UPrime, RPrime, F, R2, UPrime, RPrime, UPrime, R, U, RPrime, FPrime}

// CheckerPattern turns a solved cube into a checkerboard.
var CheckerPattern = cube.CheckerPattern
