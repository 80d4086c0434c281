package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/jet-defender/internal/core"
	"github.com/vovakirdan/jet-defender/internal/games/jet"
	"github.com/vovakirdan/jet-defender/internal/platform/driver"
)

// Model is the Bubble Tea model for playing in a terminal.
type Model struct {
	driver   *driver.Driver
	screen   *core.Screen
	config   core.RuntimeConfig
	clock    core.Clock
	keys     *KeyMapper
	hold     *HoldState
	drag     *float64 // Pending pointer target, consumed by the next tick
	state    core.GameState
	quitting bool
}

// NewModel creates a model around a driver. The driver's game is adapted to
// the screen size in cfg.
func NewModel(d *driver.Driver, cfg core.RuntimeConfig) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	d.Resize(cfg)
	return Model{
		driver: d,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config: cfg,
		clock:  core.SystemClock{},
		keys:   NewKeyMapper(),
		hold:   NewHoldState(),
		state:  d.Game().State(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, quit := m.keys.MapKey(msg)
	if quit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionLeft, core.ActionRight, core.ActionFire:
		m.hold.Press(action, m.clock.Now())
		// Fire only leaves the title screen. A held trigger must not skip
		// the game over screen.
		if action == core.ActionFire && m.driver.Game().Phase() == jet.StateIdle {
			m.startOrRestart()
		}
	case core.ActionStart:
		m.startOrRestart()
	case core.ActionRestart:
		if m.state.Running || m.state.GameOver {
			m.driver.Restart()
			m.hold.Release()
		}
	case core.ActionPause:
		m.driver.TogglePause()
		m.hold.Release()
	}

	return m, nil
}

func (m Model) startOrRestart() {
	if m.driver.Start() {
		m.hold.Release()
	}
}

// handleMouse steers the craft to the pointer column while a button is held.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Button != tea.MouseButtonLeft || msg.Action == tea.MouseActionRelease {
		return m, nil
	}
	if m.screen.Width() <= 0 {
		return m, nil
	}
	vp := m.driver.Game().Viewport()
	x := (float64(msg.X) + 0.5) / float64(m.screen.Width()) * vp.W
	m.drag = &x
	return m, nil
}

// handleResize keeps the session going on the new screen size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.driver.Resize(m.config)
	return m, nil
}

// handleTick advances the simulation by one frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	in := m.hold.Frame(m.clock.Now())
	if m.drag != nil {
		in.SetDrag(*m.drag)
		m.drag = nil
	}

	res := m.driver.Frame(jet.IntentsFrom(in))
	m.state = res.State

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a text file.
func (m *Model) saveScreenshot() {
	m.driver.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".jet", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	filename := fmt.Sprintf("jet_%s.txt", time.Now().Format("20060102_150405"))
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.driver.Render(m.screen)
	return RenderFrame(m.screen, jet.HUDRows)
}

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool {
	return m.quitting
}

// Run plays in the local terminal until the user quits. A game still in
// progress is recorded on the way out.
func Run(d *driver.Driver, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewModel(d, cfg),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	d.Finish()
	return err
}
