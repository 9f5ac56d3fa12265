// Package render draws a cube state as an unfolded net in the terminal.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/cubesim/internal/cube"
	"github.com/SeamusWaldron/cubesim/internal/scheme"
)

// FaceWidth is the printed width of one face block.
const FaceWidth = 1 + 3*3

// Renderer draws states through a color scheme.
type Renderer struct {
	scheme  scheme.Scheme
	plastic lipgloss.Style
}

// New creates a renderer for the given scheme.
func New(sc scheme.Scheme) *Renderer {
	return &Renderer{
		scheme:  sc,
		plastic: lipgloss.NewStyle().Background(sc.Plastic),
	}
}

// Scheme returns the scheme the renderer draws with.
func (r *Renderer) Scheme() scheme.Scheme {
	return r.scheme
}

// Face renders the three rows of one face.
func (r *Renderer) Face(s *cube.State, f cube.Face) string {
	colors := s.FaceColors(f)
	rows := make([]string, 3)
	for row := 0; row < 3; row++ {
		var b strings.Builder
		b.WriteString(r.plastic.Render(" "))
		for col := 0; col < 3; col++ {
			sticker := lipgloss.NewStyle().Background(r.scheme.Color(colors[row*3+col]))
			b.WriteString(sticker.Render("  "))
			b.WriteString(r.plastic.Render(" "))
		}
		rows[row] = b.String()
	}
	return strings.Join(rows, "\n")
}

// Net renders the whole state: Up above Front, Left Front Right Back in a
// row, Down below Front.
func (r *Renderer) Net(s *cube.State) string {
	pad := strings.Repeat(" ", FaceWidth)
	indent := func(block string) string {
		lines := strings.Split(block, "\n")
		for i, l := range lines {
			lines[i] = pad + l
		}
		return strings.Join(lines, "\n")
	}

	middle := lipgloss.JoinHorizontal(lipgloss.Top,
		r.Face(s, cube.Left),
		r.Face(s, cube.Front),
		r.Face(s, cube.Right),
		r.Face(s, cube.Back),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		indent(r.Face(s, cube.Up)),
		middle,
		indent(r.Face(s, cube.Down)),
	)
}

// Plain renders the net as face letters, for output without color.
func Plain(s *cube.State) string {
	return strings.TrimRight(s.String(), "\n")
}
