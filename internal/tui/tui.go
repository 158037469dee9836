package tui

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tatianab/deadly-dice/internal/engine"
	"github.com/tatianab/deadly-dice/internal/models"
)

// Epiloguer writes a closing narrative for a finished session.
type Epiloguer interface {
	Epilogue(ctx context.Context, s models.Session) (string, error)
}

// Options tunes the presentation. Zero delays fall back to the defaults.
type Options struct {
	RollDelay     time.Duration
	FrameInterval time.Duration
	Narrator      Epiloguer
}

type screen int

const (
	screenTitle screen = iota
	screenPlaying
	screenOver
)

type keyMap struct {
	Start key.Binding
	Roll  key.Binding
	Quit  key.Binding
}

func (k keyMap) ShortHelp() []key.Binding { return []key.Binding{k.Start, k.Roll, k.Quit} }
func (k keyMap) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }

var keys = keyMap{
	Start: key.NewBinding(key.WithKeys("enter", "s"), key.WithHelp("enter", "start / restart")),
	Roll:  key.NewBinding(key.WithKeys(" ", "space", "r"), key.WithHelp("space", "roll")),
	Quit:  key.NewBinding(key.WithKeys("ctrl+c", "esc", "q"), key.WithHelp("q", "quit")),
}

var faces = [...]string{"⚀", "⚁", "⚂", "⚃", "⚄", "⚅"}

type model struct {
	screen   screen
	engine   *engine.Engine
	opts     Options
	viewport viewport.Model
	progress progress.Model
	help     help.Model
	face     int
	// shown is how many log lines are revealed; lines of a roll still
	// being animated stay hidden.
	shown    int
	pending  *engine.Turn
	// before is the session as it was when the pending roll started; the
	// panels show it until the roll is revealed.
	before   models.Session
	game     int
	roll     int
	epilogue string
	err      error
	width    int
	height   int
}

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Bold(true).
			Underline(true)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#3C3C3C")).
			Padding(0, 1)

	diceStyle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			Padding(0, 2).
			Bold(true)

	rollingStyle = diceStyle.
			BorderForeground(lipgloss.Color("#FFA500"))

	wonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#5FD75F")).
			Bold(true)

	lostStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5F5F")).
			Bold(true)

	logStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#DDDDDD"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true)
)

func NewModel(eng *engine.Engine, opts Options) model {
	if opts.RollDelay <= 0 {
		opts.RollDelay = time.Second
	}
	if opts.FrameInterval <= 0 {
		opts.FrameInterval = 50 * time.Millisecond
	}
	return model{
		screen:   screenTitle,
		engine:   eng,
		opts:     opts,
		viewport: viewport.New(60, 10),
		progress: progress.New(progress.WithDefaultGradient()),
		help:     help.New(),
		face:     1,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

type frameMsg struct {
	roll int
}

type revealMsg struct{}

type epilogueMsg struct {
	game int
	text string
	err  error
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, keys.Start):
			if m.screen == screenPlaying {
				return m, nil
			}
			m.engine.StartSession()
			m.game++
			m.screen = screenPlaying
			m.pending = nil
			m.epilogue = ""
			m.err = nil
			m.face = 1
			m.shown = len(m.engine.Snapshot().Log)
			m.refreshLog()
			return m, nil

		case key.Matches(msg, keys.Roll):
			if m.screen != screenPlaying || !m.engine.CanRoll() {
				return m, nil
			}
			before := m.engine.Snapshot()
			turn, ok := m.engine.RollDice()
			if !ok {
				return m, nil
			}
			m.engine.Hold()
			m.before = before
			m.pending = &turn
			m.roll++
			return m, tea.Batch(m.nextFrame(), m.reveal())
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = max(msg.Width-4, 20)
		m.viewport.Height = max(msg.Height-16, 5)
		m.progress.Width = max(msg.Width/2-8, 10)
		m.refreshLog()

	case frameMsg:
		if m.pending == nil || msg.roll != m.roll {
			return m, nil
		}
		m.face = rand.IntN(len(faces)) + 1
		return m, m.nextFrame()

	case revealMsg:
		if m.pending == nil {
			return m, nil
		}
		m.face = m.pending.Roll
		m.pending = nil
		m.engine.Release()
		s := m.engine.Snapshot()
		m.shown = len(s.Log)
		m.refreshLog()
		if s.Status.Terminal() {
			m.screen = screenOver
			return m, m.narrate(s)
		}
		return m, nil

	case epilogueMsg:
		if msg.game != m.game {
			return m, nil
		}
		m.epilogue = msg.text
		m.err = msg.err
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *model) refreshLog() {
	lines := m.engine.Snapshot().Log
	if m.shown < len(lines) {
		lines = lines[:m.shown]
	}
	m.viewport.SetContent(logStyle.Render(strings.Join(lines, "\n")))
	m.viewport.GotoBottom()
}

func (m model) View() string {
	if m.screen == screenTitle {
		return "\n" + titleStyle.Render("DEADLY DICE RPG") + "\n\n" +
			"Roll your way down a cursed track of 200 to 300 cells.\n\n" +
			helpStyle.Render(m.help.View(keys)) + "\n"
	}

	s := m.engine.Snapshot()
	if m.pending != nil {
		s = m.before
	}
	stats := panelStyle.Render(titleStyle.Render("PLAYER") + "\n" + fmt.Sprintf(
		"HP: %d\nAttack: %d\nKills: %d\nTreasures: %d",
		s.Player.HP, s.Player.Attack, s.Player.MonstersKilled, s.Player.TreasuresFound))
	track := panelStyle.Render(titleStyle.Render("PROGRESS") + "\n" +
		fmt.Sprintf("%d/%d (%d%%)\n", s.Position, s.BoardLength, int(s.Progress()*100)) +
		m.progress.ViewAs(s.Progress()))

	die := diceStyle
	if m.pending != nil {
		die = rollingStyle
	}
	dice := die.Render(faces[m.face-1])

	top := lipgloss.JoinHorizontal(lipgloss.Top, stats, track, dice)
	parts := []string{top}
	if m.screen == screenOver {
		parts = append(parts, m.summary(s))
	}
	parts = append(parts,
		titleStyle.Render("LOG"),
		m.viewport.View(),
		helpStyle.Render(m.help.View(keys)),
	)
	return "\n" + lipgloss.JoinVertical(lipgloss.Left, parts...) + "\n"
}

func (m model) summary(s models.Session) string {
	var b strings.Builder
	if s.Status == models.Won {
		b.WriteString(wonStyle.Render("VICTORY!") + "\n")
		fmt.Fprintf(&b, "Track: %d cells\nMonsters slain: %d\nTreasures found: %d\nDice rolls: %d",
			s.BoardLength, s.Player.MonstersKilled, s.Player.TreasuresFound, s.DiceRollCount)
	} else {
		b.WriteString(lostStyle.Render("GAME OVER") + "\n")
		fmt.Fprintf(&b, "You fell on cell %d...", s.Position)
	}
	switch {
	case m.err != nil:
		fmt.Fprintf(&b, "\n\n%s", helpStyle.Render("The bard is silent: "+m.err.Error()))
	case m.epilogue != "":
		fmt.Fprintf(&b, "\n\n%s", m.epilogue)
	}
	return panelStyle.Render(b.String())
}

func (m model) nextFrame() tea.Cmd {
	roll := m.roll
	return tea.Tick(m.opts.FrameInterval, func(time.Time) tea.Msg { return frameMsg{roll} })
}

func (m model) reveal() tea.Cmd {
	return tea.Tick(m.opts.RollDelay, func(time.Time) tea.Msg { return revealMsg{} })
}

func (m model) narrate(s models.Session) tea.Cmd {
	if m.opts.Narrator == nil {
		return nil
	}
	game := m.game
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		text, err := m.opts.Narrator.Epilogue(ctx, s)
		return epilogueMsg{game, text, err}
	}
}

func Run(eng *engine.Engine, opts Options) error {
	p := tea.NewProgram(NewModel(eng, opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
