package storage

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"

	"github.com/SeamusWaldron/cubesim/internal/cube"
)

// Digest returns the hex SHA3-256 of the state's 54 color values. Equal
// states always have equal digests.
func Digest(s *cube.State) string {
	sum := sha3.Sum256(s.Bytes())
	return hex.EncodeToString(sum[:])
}
