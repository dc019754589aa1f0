package ui

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"github.com/five82/smartpager/internal/config"
	"github.com/five82/smartpager/internal/logging"
	"github.com/five82/smartpager/internal/viewport"
)

// Screen rows taken by everything but document lines: header, the two box
// borders and the status line.
const (
	chromeHeight = 4
	chromeOffset = 2 // header + top border
)

// Options configures the UI.
type Options struct {
	Context    context.Context
	Lines      []string
	FileName   string
	Config     config.Config
	ConfigPath string // empty uses config.DefaultPath()
	Logger     *logrus.Entry
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx        context.Context
	fileName   string
	config     config.Config
	configPath string
	log        *logrus.Entry

	// Document state
	pager *viewport.Controller

	// UI state
	keys     keyMap
	help     help.Model
	theme    Theme
	width    int
	height   int
	ready    bool
	showHelp bool

	// "gg" handling
	pendingG bool
	gSeq     int
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	cfg := opts.Config
	if cfg.GGTimeout <= 0 {
		cfg.GGTimeout = config.Default().GGTimeout
	}

	configPath := opts.ConfigPath
	if configPath == "" {
		configPath = config.DefaultPath()
	}

	log := opts.Logger
	if log == nil {
		log = logging.Discard()
	}

	pager := viewport.New(viewport.Options{ChromeOffset: chromeOffset})
	pager.Load(opts.Lines)

	m := Model{
		ctx:        ctx,
		fileName:   opts.FileName,
		config:     cfg,
		configPath: configPath,
		log:        log,
		pager:      pager,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		theme:      GetTheme(cfg.Theme),
	}
	m.applyHelpStyles()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("smartpager - " + m.fileName)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.pager.SetViewportHeight(m.height - chromeHeight)
		m.ready = true
		m.log.WithFields(logrus.Fields{
			"width":  msg.Width,
			"height": msg.Height,
			"rows":   m.pager.Height(),
		}).Debug("window resized")
		return m, nil

	case gTimeoutMsg:
		if msg.seq == m.gSeq {
			m.pendingG = false
		}
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Any key closes help
	if m.showHelp {
		m.showHelp = false
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		return m, nil
	}

	// Second half of "gg". Any other key cancels the pending g and is then
	// handled on its own.
	if m.pendingG {
		m.pendingG = false
		if key.Matches(msg, m.keys.Top) {
			m.pager.MoveToTop()
			return m, nil
		}
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.log.Debug("quit requested")
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true

	case key.Matches(msg, m.keys.CycleTheme):
		m.cycleTheme()

	case key.Matches(msg, m.keys.Down):
		m.pager.MoveDown()

	case key.Matches(msg, m.keys.Up):
		m.pager.MoveUp()

	case key.Matches(msg, m.keys.Top):
		m.pendingG = true
		m.gSeq++
		return m, gTimeoutCmd(m.gSeq, m.config.GGTimeout)

	case key.Matches(msg, m.keys.Bottom):
		m.pager.MoveToBottom()

	case key.Matches(msg, m.keys.HalfPageDown):
		m.pager.PageDown()

	case key.Matches(msg, m.keys.HalfPageUp):
		m.pager.PageUp()

	case key.Matches(msg, m.keys.Expand):
		m.pager.ToggleExpansion()
		_, expanded := m.pager.ExpandedLine()
		m.log.WithFields(logrus.Fields{
			"line":     m.pager.Cursor() + 1,
			"expanded": expanded,
		}).Debug("toggle expansion")
	}

	return m, nil
}

// handleMouse maps clicks to lines and wheel motion to cursor moves.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.showHelp || msg.Action != tea.MouseActionPress {
		return m, nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.pager.MoveUp()
	case tea.MouseButtonWheelDown:
		m.pager.MoveDown()
	case tea.MouseButtonLeft:
		if row, ok := m.clickRow(msg.Y); ok {
			m.pager.JumpToRow(row)
		}
	}
	return m, nil
}

// clickRow turns a screen row into the row JumpToRow expects. Rows outside
// the content box are rejected, and when a line is expanded the rows of the
// expansion block are skipped over.
func (m Model) clickRow(y int) (int, bool) {
	if y < chromeOffset || y >= chromeOffset+m.pager.Height() {
		return 0, false
	}

	line, expanded := m.pager.ExpandedLine()
	if !expanded {
		return y, true
	}

	block := len(m.pager.VisibleContent().Expansion)
	cursorRow := chromeOffset + line - m.pager.ScrollOffset()
	switch {
	case y <= cursorRow:
		return y, true
	case y <= cursorRow+block:
		return 0, false
	default:
		return y - block, true
	}
}

// cycleTheme switches to the next theme and persists the choice. Only the
// theme is written back; command-line overrides stay out of the file.
func (m *Model) cycleTheme() {
	m.theme = GetTheme(NextTheme(m.theme.Name))
	m.config.Theme = m.theme.Name
	m.applyHelpStyles()

	stored, err := config.Load(m.configPath)
	if err != nil {
		m.log.WithError(err).Warn("load config for theme")
		return
	}
	stored.Theme = m.theme.Name
	if err := config.Save(m.configPath, stored); err != nil {
		m.log.WithError(err).Warn("save theme")
		return
	}
	m.log.WithField("theme", m.theme.Name).Info("theme changed")
}

func (m *Model) applyHelpStyles() {
	styles := m.theme.Styles()
	m.help.Styles.ShortKey = styles.AccentText
	m.help.Styles.ShortDesc = styles.FaintText
	m.help.Styles.ShortSeparator = styles.FaintText
	m.help.Styles.Ellipsis = styles.FaintText
	m.help.Styles.FullKey = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Warning))
	m.help.Styles.FullDesc = styles.Text
	m.help.Styles.FullSeparator = styles.FaintText
}

// Messages

type gTimeoutMsg struct {
	seq int
}

// Commands

func gTimeoutCmd(seq int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return gTimeoutMsg{seq: seq}
	})
}

// Run starts the Bubble Tea program and blocks until the user quits or the
// context is cancelled.
func Run(opts Options) error {
	m := New(opts)

	programOpts := []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithContext(m.ctx),
	}
	if m.config.Mouse {
		programOpts = append(programOpts, tea.WithMouseCellMotion())
	}

	p := tea.NewProgram(m, programOpts...)
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && m.ctx.Err() != nil {
		return nil
	}
	return err
}
