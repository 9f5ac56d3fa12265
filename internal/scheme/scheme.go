// Package scheme maps logical sticker colors to display colors.
package scheme

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/cubesim/internal/cube"
)

// ErrUnknownScheme is returned by Lookup for names that are not registered.
var ErrUnknownScheme = errors.New("scheme: unknown color scheme")

// Default is the scheme used when none is configured.
const Default = "basic"

// Scheme is a cosmetic palette: one display color per logical color plus
// the color of the plastic between stickers.
type Scheme struct {
	Name    string
	Plastic lipgloss.Color
	Faces   [cube.NumFaces]lipgloss.Color
}

// Color returns the display color for a logical color. Values outside the
// six logical colors render as the plastic color.
func (s Scheme) Color(c cube.Color) lipgloss.Color {
	if int(c) >= cube.NumFaces {
		return s.Plastic
	}
	return s.Faces[c]
}

// Faces are indexed F U R D L B.
var schemes = map[string]Scheme{
	"basic": {
		Name:    "basic",
		Plastic: lipgloss.Color("#000000"),
		Faces: [cube.NumFaces]lipgloss.Color{
			cube.Front: "#FFFFFF",
			cube.Up:    "#0000FF",
			cube.Right: "#FF0000",
			cube.Down:  "#00FF00",
			cube.Left:  "#FF8C00",
			cube.Back:  "#FFFF00",
		},
	},
	"white": {
		Name:    "white",
		Plastic: lipgloss.Color("#FFFFFF"),
		Faces: [cube.NumFaces]lipgloss.Color{
			cube.Front: "#000000",
			cube.Up:    "#0000FF",
			cube.Right: "#FF0000",
			cube.Down:  "#008000",
			cube.Left:  "#FF8C00",
			cube.Back:  "#D2D200",
		},
	},
	"dodo": {
		Name:    "dodo",
		Plastic: lipgloss.Color("#000000"),
		Faces: [cube.NumFaces]lipgloss.Color{
			"#FFD700", "#FFD700", "#FFD700", "#FFD700", "#FFD700", "#FFD700",
		},
	},
}

// Lookup returns the scheme registered under name. Matching ignores case.
func Lookup(name string) (Scheme, error) {
	s, ok := schemes[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Scheme{}, fmt.Errorf("%w: %q (options: %s)", ErrUnknownScheme, name, strings.Join(Names(), ", "))
	}
	return s, nil
}

// MustLookup is Lookup for names known at compile time.
func MustLookup(name string) Scheme {
	s, err := Lookup(name)
	if err != nil {
		panic(err)
	}
	return s
}

// Names returns the registered scheme names in sorted order.
func Names() []string {
	names := make([]string, 0, len(schemes))
	for n := range schemes {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
