// cubesim - sticker-level simulator for the 3x3x3 twisty cube.
package main

import (
	"github.com/SeamusWaldron/cubesim/internal/cli"
)

func main() {
	cli.Execute()
}
