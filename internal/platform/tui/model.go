package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/termcade/termcade/internal/core"
	"github.com/termcade/termcade/internal/registry"
	"github.com/termcade/termcade/internal/storage"
)

// Model is the Bubble Tea model for running a single arcade game.
// It owns the fixed-timestep loop: each TickMsg drains real elapsed time
// into whole simulation steps, shifts the input frame, and renders once.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	store     *storage.Store
	config    core.RuntimeConfig
	loop      *core.Loop
	input     core.InputFrame
	keyMapper *KeyMapper
	gameState core.GameState

	nameEntry bool
	nameInput textinput.Model

	quitting   bool
	backToMenu bool
	scoreSaved bool
	wasOver    bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	ti := textinput.New()
	ti.Placeholder = "AAA"
	ti.CharLimit = 3
	ti.Width = 3

	return Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     store,
		config:    cfg,
		loop:      core.NewLoop(cfg.TickRate),
		input:     core.NewInputFrame(),
		keyMapper: NewKeyMapper(),
		nameInput: ti,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.loop.Start(time.Now())
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.FocusMsg:
		m.loop.Resume(time.Now())
		return m, nil

	case tea.BlurMsg:
		m.loop.Pause(time.Now())
		return m, nil

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.nameEntry {
		return m.handleNameEntryKey(msg)
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.input) {
		m.quitting = true
		return m, tea.Quit
	}

	// B or Esc returns to the menu once play has stopped.
	action := m.keyMapper.MapKeyToMenuAction(msg)
	if action == MenuActionBack && (m.gameState.GameOver || m.gameState.Paused) {
		m.backToMenu = true
		return m, nil
	}

	return m, nil
}

// handleNameEntryKey routes keys to the high-score name prompt.
func (m Model) handleNameEntryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "enter":
		m.saveScore(m.nameInput.Value())
		m.nameEntry = false
		return m, nil
	case "esc":
		// Skip the prompt; the run still goes on the board under the
		// default tag so a streak of games is never silently lost.
		m.saveScore("")
		m.nameEntry = false
		return m, nil
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

// saveScore persists the finished run once. Best-effort: a storage error
// never interrupts play.
func (m *Model) saveScore(name string) {
	if m.scoreSaved || m.store == nil {
		return
	}
	m.scoreSaved = true
	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.SaveScore(m.game.ID(), name, m.gameState.Score)
}

// handleResize processes window resize events. The running game restarts
// with the new dimensions; a finished game keeps its game-over screen.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick drains the loop and runs the owed simulation steps.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if m.nameEntry {
		// Simulation holds while the prompt is up; keep the tick chain
		// alive so play resumes instantly after the name is entered.
		return m, tickCmd(m.config.TickRate)
	}

	steps := m.loop.Advance(time.Time(msg))
	for i := 0; i < steps; i++ {
		result := m.game.Step(m.input)
		m.gameState = result.State
		m.input.Shift()
	}

	if m.gameState.GameOver && !m.wasOver {
		m.wasOver = true
		if m.gameState.Score > 0 && m.store != nil {
			m.nameEntry = true
			m.nameInput.SetValue("")
			m.nameInput.Focus()
			return m, tickCmd(m.config.TickRate)
		}
	}

	// The game restarted itself; arm the next save.
	if !m.gameState.GameOver && m.wasOver {
		m.wasOver = false
		m.scoreSaved = false
	}

	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.nameEntry {
		return m.nameEntryView()
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// nameEntryView renders the high-score name prompt as a centered panel.
func (m Model) nameEntryView() string {
	panelStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("229")).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))

	hintStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	content := lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render("GAME OVER"),
		fmt.Sprintf("Score: %d", m.gameState.Score),
		"",
		"Enter your name:",
		m.nameInput.View(),
		"",
		hintStyle.Render("Enter: save  |  Esc: skip"),
	)

	return lipgloss.Place(
		m.config.ScreenW, m.config.ScreenH,
		lipgloss.Center, lipgloss.Center,
		panelStyle.Render(content),
	)
}

// IsQuitting returns true if the user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user requested to go back to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a Bubble Tea program for the given game and blocks until the
// session ends.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithReportFocus(),
	)

	_, err := p.Run()
	return err
}
