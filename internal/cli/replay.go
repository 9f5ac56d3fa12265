package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubesim"
	"github.com/SeamusWaldron/cubesim/internal/cube"
	"github.com/SeamusWaldron/cubesim/internal/notation"
	"github.com/SeamusWaldron/cubesim/internal/render"
	"github.com/SeamusWaldron/cubesim/internal/scheme"
	"github.com/SeamusWaldron/cubesim/internal/storage"
)

var replayCmd = &cobra.Command{
	Use:   "replay [scramble-id]",
	Short: "Step through a stored scramble",
	Long: `Replay a stored scramble move by move on a solved cube.

Usage:
  cubesim replay --last              # Replay the most recent scramble
  cubesim replay <id>                # Replay a specific scramble
  cubesim replay <id> --inverse      # Start scrambled and replay the undo
  cubesim replay <id> --speed 2.0    # Play at 2x speed

Keys:
  SPACE/n - Next move (pauses playback)
  b       - Previous move
  p       - Play/pause
  r       - Restart
  q/Esc   - Quit`,
	RunE: runReplay,
}

var (
	replaySpeed   float64
	replayLast    bool
	replayInverse bool
)

func init() {
	rootCmd.AddCommand(replayCmd)
	replayCmd.Flags().Float64VarP(&replaySpeed, "speed", "s", 1.0, "Playback speed multiplier")
	replayCmd.Flags().BoolVar(&replayLast, "last", false, "Replay the most recent scramble")
	replayCmd.Flags().BoolVar(&replayInverse, "inverse", false, "Start from the scrambled state and replay the inverse")
}

func runReplay(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	s, err := resolveScramble(storage.NewScrambleRepository(db), args, replayLast)
	if err != nil {
		return err
	}
	moves, err := s.Moves()
	if err != nil {
		return err
	}

	sc, err := activeScheme("")
	if err != nil {
		return err
	}

	start := cube.New()
	if replayInverse {
		cube.ApplyAll(start, moves)
		moves = cube.Invert(moves)
	}

	if replaySpeed <= 0 {
		replaySpeed = 1.0
	}
	delay := time.Duration(float64(cfg.Settings().Delay()) / replaySpeed)

	model := newReplayModel(shortID(s.ScrambleID), start, moves, sc, delay)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("replay error: %w", err)
	}

	return nil
}

// Replay model
type replayModel struct {
	title    string
	start    *cube.State
	moves    []cube.Move
	index    int
	tracker  *cubesim.Tracker
	scheme   scheme.Scheme
	delay    time.Duration
	playing  bool
	quitting bool
}

func newReplayModel(title string, start *cube.State, moves []cube.Move, sc scheme.Scheme, delay time.Duration) *replayModel {
	return &replayModel{
		title:   title,
		start:   start.Clone(),
		moves:   moves,
		tracker: cubesim.NewTrackerFrom(start),
		scheme:  sc,
		delay:   delay,
		playing: true,
	}
}

type replayTickMsg time.Time

func (m *replayModel) Init() tea.Cmd {
	return m.scheduleNext()
}

func (m *replayModel) scheduleNext() tea.Cmd {
	if !m.playing || m.index >= len(m.moves) {
		return nil
	}
	return tea.Tick(m.delay, func(t time.Time) tea.Msg {
		return replayTickMsg(t)
	})
}

func (m *replayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case " ", "n":
			m.playing = false
			m.advance()

		case "b":
			m.playing = false
			m.seek(m.index - 1)

		case "p":
			if !m.playing && m.index >= len(m.moves) {
				m.seek(0)
			}
			m.playing = !m.playing
			return m, m.scheduleNext()

		case "r":
			m.seek(0)
			return m, m.scheduleNext()
		}

	case replayTickMsg:
		if m.playing {
			m.advance()
			return m, m.scheduleNext()
		}
	}

	return m, nil
}

// advance applies the next move, if any. Playback stops at the end.
func (m *replayModel) advance() {
	if m.index < len(m.moves) {
		m.tracker.ApplyMove(m.moves[m.index])
		m.index++
	}
	if m.index >= len(m.moves) {
		m.playing = false
	}
}

// seek rebuilds the state after the first n moves.
func (m *replayModel) seek(n int) {
	if n < 0 {
		n = 0
	}
	if n > len(m.moves) {
		n = len(m.moves)
	}
	m.tracker = cubesim.NewTrackerFrom(m.start)
	m.tracker.ApplyMoves(m.moves[:n])
	m.index = n
}

func (m *replayModel) View() string {
	if m.quitting {
		return "Replay ended.\n"
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Scramble Replay: " + m.title))
	b.WriteString("\n\n")

	b.WriteString(render.New(m.scheme).Net(m.tracker.State()))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("Move %d/%d", m.index, len(m.moves)))
	if m.index > 0 {
		last := m.moves[m.index-1]
		b.WriteString("  ")
		b.WriteString(moveStyle.Render(last.Notation()))
		b.WriteString(statusStyle.Render("  " + notation.Describe(last)))
	}
	b.WriteString("\n")

	if m.tracker.IsSolved() {
		b.WriteString(solvedStyle.Render("SOLVED"))
	} else {
		b.WriteString(statusStyle.Render(fmt.Sprintf("%d/%d faces solved (best %d)",
			m.tracker.SolvedFaces(), cube.NumFaces, m.tracker.HighestFaces())))
	}
	b.WriteString("\n\n")

	// Upcoming moves
	if m.index < len(m.moves) {
		end := m.index + 12
		if end > len(m.moves) {
			end = len(m.moves)
		}
		b.WriteString("Next: ")
		b.WriteString(moveStyle.Render(notation.FormatSequence(m.moves[m.index:end])))
		if end < len(m.moves) {
			b.WriteString(" ...")
		}
		b.WriteString("\n")
	} else {
		b.WriteString(statusStyle.Render("End of sequence"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	status := "PAUSED"
	if m.playing {
		status = "PLAYING"
	}
	b.WriteString(helpStyle.Render(fmt.Sprintf("[%s] SPACE/n=next b=back p=play/pause r=restart q=quit", status)))
	b.WriteString("\n")

	return b.String()
}
