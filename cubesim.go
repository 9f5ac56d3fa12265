// Package cubesim simulates a 3x3x3 twisty cube at the sticker level.
//
// # Features
//
//   - 54-facelet state with the 18 standard face turns
//   - Solved detection
//   - Seeded, reproducible scrambles and their inverses
//   - Concurrency-safe Cube with move and solve callbacks
//
// # Quick Start
//
//	cube := cubesim.NewCube()
//
//	// Apply moves using predefined constants
//	cube.Apply(cubesim.R, cubesim.U, cubesim.RPrime, cubesim.UPrime)
//
//	// Or from notation
//	if err := cube.ApplyNotation("F B2 L' D"); err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Solved:", cube.IsSolved())
//	fmt.Print(cube)
//
// # Scrambles
//
// A cube created with WithSeed produces the same scrambles on every run:
//
//	cube := cubesim.NewCube(cubesim.WithSeed(42))
//	moves := cube.Scramble()         // 25 moves by default
//	cube.Unscramble()                // applies the inverse, back to solved
//
// # Predefined Moves
//
// The package provides predefined moves for convenience:
//
//	cubesim.R      // Right clockwise
//	cubesim.RPrime // Right counter-clockwise
//	cubesim.R2     // Right 180
//	// ... and similarly for L, U, D, F, B
//
// # Notation
//
// Tokens are case-sensitive: R R' R2 L L' L2 U U' U2 D D' D2 F F' F2 B B' B2.
// ParseMoves rejects a whole sequence if any token is invalid.
package cubesim
