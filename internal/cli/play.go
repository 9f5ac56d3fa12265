package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubesim/internal/console"
	"github.com/SeamusWaldron/cubesim/internal/cube"
	"github.com/SeamusWaldron/cubesim/internal/render"
	"github.com/SeamusWaldron/cubesim/internal/scramble"
)

var (
	playSeed  int64
	playDelay time.Duration
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Interactive cube console",
	Long: `Start an interactive console showing the cube as an unfolded net.

Type turns such as "R U R' U'" and press Enter. Turns are case-sensitive and
are applied one at a time with a short pause between them. Other commands:
reset, scramble, unscramble, pattern, color <scheme>, solve, clear, help, quit.

Keys:
  Enter   - Run the typed line
  Esc     - Quit`,
	RunE: runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
	playCmd.Flags().Int64Var(&playSeed, "seed", 0, "Seed for reproducible scrambles (default: random)")
	playCmd.Flags().DurationVar(&playDelay, "delay", 0, "Pause between turns (default: turn_delay from config)")
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	solvedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	moveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// maxLogLines is how many output lines the console keeps on screen.
const maxLogLines = 12

// Messages
type turnTickMsg time.Time

// Model
type playModel struct {
	console *console.Console
	delay   time.Duration

	input    string
	log      []string
	lastMove string
	turning  bool
	quitting bool
}

func newPlayModel(c *console.Console, delay time.Duration) *playModel {
	return &playModel{
		console: c,
		delay:   delay,
		log:     []string{`Type "help" to display a list of valid commands.`},
	}
}

func (m *playModel) Init() tea.Cmd {
	return nil
}

func (m *playModel) tickCmd() tea.Cmd {
	return tea.Tick(m.delay, func(t time.Time) tea.Msg {
		return turnTickMsg(t)
	})
}

func (m *playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit

		case tea.KeyEnter:
			return m, m.submit()

		case tea.KeyBackspace:
			if len(m.input) > 0 {
				r := []rune(m.input)
				m.input = string(r[:len(r)-1])
			}

		case tea.KeySpace:
			m.input += " "

		case tea.KeyRunes:
			m.input += string(msg.Runes)
		}

	case turnTickMsg:
		return m, m.step()
	}

	return m, nil
}

// submit runs the typed line through the console.
func (m *playModel) submit() tea.Cmd {
	line := m.input
	m.input = ""
	if strings.TrimSpace(line) == "" {
		return nil
	}

	m.appendLog("> " + line)
	res := m.console.Execute(line)
	if res.Clear {
		m.log = nil
	}
	m.appendLog(res.Lines...)

	if res.Quit {
		m.quitting = true
		return tea.Quit
	}
	if res.Queued > 0 && !m.turning {
		return m.step()
	}
	return nil
}

// step applies one queued turn and schedules the next.
func (m *playModel) step() tea.Cmd {
	mv, lines, ok := m.console.Step()
	if !ok {
		m.turning = false
		return nil
	}
	m.lastMove = mv.Notation()
	m.appendLog(lines...)

	if m.console.Pending() == 0 {
		m.turning = false
		return nil
	}
	m.turning = true
	return m.tickCmd()
}

func (m *playModel) appendLog(lines ...string) {
	m.log = append(m.log, lines...)
	if len(m.log) > maxLogLines {
		m.log = m.log[len(m.log)-maxLogLines:]
	}
}

func (m *playModel) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}

	var b strings.Builder
	state := m.console.State()
	sc := m.console.Scheme()

	b.WriteString(titleStyle.Render("cubesim"))
	b.WriteString("  ")
	b.WriteString(statusStyle.Render("scheme: " + sc.Name))
	b.WriteString("\n\n")

	b.WriteString(render.New(sc).Net(state))
	b.WriteString("\n\n")

	if state.IsSolved() {
		b.WriteString(solvedStyle.Render("SOLVED"))
	} else {
		b.WriteString(statusStyle.Render(fmt.Sprintf("%d/%d faces solved", state.SolvedFaces(), cube.NumFaces)))
	}
	if m.lastMove != "" {
		b.WriteString("  Last: ")
		b.WriteString(moveStyle.Render(m.lastMove))
	}
	if n := m.console.Pending(); n > 0 {
		b.WriteString(statusStyle.Render(fmt.Sprintf("  (%d turns queued)", n)))
	}
	b.WriteString("\n\n")

	for _, line := range m.log {
		switch line {
		case console.MsgUnknown, console.MsgBadScheme, console.MsgNotSolved, console.MsgBusy:
			b.WriteString(errorStyle.Render(line))
		case console.MsgSolved:
			b.WriteString(solvedStyle.Render(line))
		default:
			b.WriteString(line)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n> ")
	b.WriteString(m.input)
	b.WriteString("_\n\n")
	b.WriteString(helpStyle.Render("Enter=run  Esc=quit  help=commands"))
	b.WriteString("\n")

	return b.String()
}

func runPlay(cmd *cobra.Command, args []string) error {
	settings := cfg.Settings()

	sc, err := activeScheme("")
	if err != nil {
		return err
	}

	gen := scramble.New()
	if cmd.Flags().Changed("seed") {
		gen = scramble.NewSeeded(playSeed)
	}

	delay := settings.Delay()
	if cmd.Flags().Changed("delay") {
		delay = playDelay
	}

	c := console.New(gen, settings.ScrambleLength, sc)
	model := newPlayModel(c, delay)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
