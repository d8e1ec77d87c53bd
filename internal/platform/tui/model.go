package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-life/internal/config"
	"github.com/vovakirdan/tui-life/internal/core"
	"github.com/vovakirdan/tui-life/internal/life"
	"github.com/vovakirdan/tui-life/internal/registry"
)

// Rows reserved below the board: status line and help line.
const chromeRows = 2

// Bounds for the generation rate adjusted with +/-.
const (
	minTickRate     = 1
	maxGensPerFrame = 8
)

// Options configures a life board session.
type Options struct {
	Runtime core.RuntimeConfig
	Render  config.RenderConfig
	Pattern string // registry id stamped at the center; empty for a random soup
}

// Model is the Bubble Tea model for the interactive life board.
//
// The board owns exactly one Universe. After a generation only the cells
// listed in the universe diff are repainted; every other mutation
// repaints the whole board.
type Model struct {
	universe   *life.Universe
	screen     *core.Screen
	config     core.RuntimeConfig
	pattern    life.Pattern
	hasPattern bool
	inputFrame core.InputFrame
	keyMapper  *KeyMapper
	help       help.Model

	liveRune    rune
	deadRune    rune
	liveColor   core.Color
	cursorColor core.Color

	cursor   life.Coord
	running  bool
	stable   bool
	living   int
	peak     int
	lastGen  time.Time
	sized    bool
	message  string
	quitting bool
}

// NewModel creates a board sized to the runtime screen.
// Returns an error if Pattern names an unregistered pattern.
func NewModel(opts Options) (Model, error) {
	cfg := opts.Runtime
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	cfg.TickRate = core.Clamp(cfg.TickRate, minTickRate, config.MaxTickRate)

	m := Model{
		config:      cfg,
		inputFrame:  core.NewInputFrame(),
		keyMapper:   NewKeyMapper(),
		help:        help.New(),
		liveRune:    firstRune(opts.Render.LiveRune, '█'),
		deadRune:    firstRune(opts.Render.DeadRune, ' '),
		liveColor:   parseColor(opts.Render.LiveColor, core.ColorBrightGreen),
		cursorColor: parseColor(opts.Render.CursorColor, core.ColorYellow),
	}

	if opts.Pattern != "" {
		p, err := registry.Lookup(opts.Pattern)
		if err != nil {
			return Model{}, fmt.Errorf("tui: %w", err)
		}
		m.pattern = p
		m.hasPattern = true
	}

	w, h := boardSize(cfg.ScreenW, cfg.ScreenH)
	m.universe = life.NewEmpty(w, h, life.WithSeed(cfg.Seed))
	m.screen = core.NewScreen(w, h+1)
	m.populate()
	m.cursor = life.C(h/2, w/2)
	m.redraw()
	return m, nil
}

func firstRune(s string, fallback rune) rune {
	for _, r := range s {
		return r
	}
	return fallback
}

func parseColor(name string, fallback core.Color) core.Color {
	if c, ok := core.ParseColor(name); ok {
		return c
	}
	return fallback
}

// boardSize derives the universe dimensions from the terminal size.
func boardSize(screenW, screenH int) (int, int) {
	return max(screenW, 1), max(screenH-chromeRows, 1)
}

// populate fills a fresh grid with the configured start.
func (m *Model) populate() {
	if m.hasPattern {
		m.universe.Clear()
		m.universe.InsertPattern(m.pattern, m.universe.Height()/2, m.universe.Width()/2)
	} else {
		m.universe.Randomize()
	}
	m.resetStats()
}

func (m *Model) resetStats() {
	m.living = m.universe.Living()
	m.peak = m.living
	m.stable = false
}

// Universe exposes the simulated grid.
func (m Model) Universe() *life.Universe {
	return m.universe
}

// Cursor returns the cursor position on the board.
func (m Model) Cursor() life.Coord {
	return m.cursor
}

// State summarizes the session for status displays.
func (m Model) State() core.SimState {
	return core.SimState{
		Generation: m.universe.Generation(),
		Living:     m.living,
		Running:    m.running,
		Stable:     m.stable,
	}
}

// TickRate returns the current generations per second.
func (m Model) TickRate() int {
	return m.config.TickRate
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(frameRate)
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
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input. Actions are buffered until the next frame.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleMouse moves the cursor to a left click and toggles that cell.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	board := core.NewRect(0, 0, m.universe.Width(), m.universe.Height())
	if !board.Contains(msg.X, msg.Y) {
		return m, nil
	}
	m.moveCursor(life.C(msg.Y, msg.X))
	m.inputFrame.Set(core.ActionToggleCell)
	return m, nil
}

// handleResize reallocates the universe to fit the terminal.
// Resizing empties the grid; the first size message refills it so the
// session still opens on its configured start.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width

	w, h := boardSize(msg.Width, msg.Height)
	if w == m.universe.Width() && h == m.universe.Height() {
		m.sized = true
		return m, nil
	}

	m.universe.Resize(w, h)
	m.screen.Resize(w, h+1)
	if !m.sized {
		m.populate()
		m.sized = true
	} else {
		m.resetStats()
	}
	m.cursor = life.C(core.Clamp(m.cursor.Row, 0, h-1), core.Clamp(m.cursor.Col, 0, w-1))
	m.redraw()
	return m, nil
}

// handleTick applies buffered input and advances the universe when due.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRunToggle) {
		m.running = !m.running
		m.lastGen = now
	}
	m.applyEdits()

	if m.inputFrame.Has(core.ActionStep) && !m.running {
		m.advance()
	}

	if m.running {
		interval := time.Second / time.Duration(m.config.TickRate)
		for n := 0; now.Sub(m.lastGen) >= interval && n < maxGensPerFrame; n++ {
			m.advance()
			m.lastGen = m.lastGen.Add(interval)
		}
		if now.Sub(m.lastGen) >= interval {
			// Drop the backlog instead of spiraling
			m.lastGen = now
		}
	}

	if m.inputFrame.Has(core.ActionScreenshot) {
		if path, err := m.saveScreenshot(); err != nil {
			m.message = "screenshot failed: " + err.Error()
		} else {
			m.message = "saved " + path
		}
	}

	m.inputFrame.Clear()
	m.drawStatus()
	return m, tickCmd(frameRate)
}

// applyEdits performs the non-generation actions of the current frame.
func (m *Model) applyEdits() {
	f := m.inputFrame
	rows, cols := m.universe.Height(), m.universe.Width()

	switch {
	case f.Has(core.ActionUp):
		m.moveCursor(life.C(core.Wrap(m.cursor.Row-1, rows), m.cursor.Col))
	case f.Has(core.ActionDown):
		m.moveCursor(life.C(core.Wrap(m.cursor.Row+1, rows), m.cursor.Col))
	}
	switch {
	case f.Has(core.ActionLeft):
		m.moveCursor(life.C(m.cursor.Row, core.Wrap(m.cursor.Col-1, cols)))
	case f.Has(core.ActionRight):
		m.moveCursor(life.C(m.cursor.Row, core.Wrap(m.cursor.Col+1, cols)))
	}

	if f.Has(core.ActionFaster) {
		m.config.TickRate = core.Clamp(m.config.TickRate+1, minTickRate, config.MaxTickRate)
	}
	if f.Has(core.ActionSlower) {
		m.config.TickRate = core.Clamp(m.config.TickRate-1, minTickRate, config.MaxTickRate)
	}

	edited := true
	switch {
	case f.Has(core.ActionClear):
		m.universe.Clear()
	case f.Has(core.ActionRandomize):
		m.universe.Randomize()
	default:
		edited = false
	}
	if f.Has(core.ActionToggleCell) {
		m.universe.ToggleCell(m.cursor.Row, m.cursor.Col)
		edited = true
	}
	if f.Has(core.ActionGlider) {
		m.universe.InsertGlider(m.cursor.Row, m.cursor.Col)
		edited = true
	}
	if f.Has(core.ActionPulsar) {
		m.universe.InsertPulsar(m.cursor.Row, m.cursor.Col)
		edited = true
	}

	if edited {
		m.resetStats()
		m.redraw()
	}
}

// advance runs one generation and repaints the cells it changed.
func (m *Model) advance() {
	m.universe.Tick()

	changes := m.universe.Changes()
	cells := m.universe.Cells()
	width := m.universe.Width()
	for _, idx := range changes {
		if cells[idx] == life.Alive {
			m.living++
		} else {
			m.living--
		}
		m.paintCell(idx/width, idx%width)
	}
	m.peak = max(m.peak, m.living)
	m.stable = len(changes) == 0
}

// moveCursor repaints the old and new cursor cells.
func (m *Model) moveCursor(to life.Coord) {
	from := m.cursor
	m.cursor = to
	m.paintCell(from.Row, from.Col)
	m.paintCell(to.Row, to.Col)
}

// paintCell draws one board cell into the screen buffer.
func (m *Model) paintCell(row, col int) {
	cell := core.Cell{Rune: m.deadRune, Color: core.ColorDefault}
	alive := m.universe.Cell(row, col) == life.Alive
	if alive {
		cell = core.Cell{Rune: m.liveRune, Color: m.liveColor}
	}
	if row == m.cursor.Row && col == m.cursor.Col {
		cell.Color = m.cursorColor
		if !alive {
			cell.Rune = '+'
		}
	}
	m.screen.SetCell(col, row, cell)
}

// redraw repaints the whole board and the status line.
func (m *Model) redraw() {
	for row := 0; row < m.universe.Height(); row++ {
		for col := 0; col < m.universe.Width(); col++ {
			m.paintCell(row, col)
		}
	}
	m.drawStatus()
}

// drawStatus fills the row below the board.
func (m *Model) drawStatus() {
	y := m.universe.Height()
	for x := 0; x < m.screen.Width(); x++ {
		m.screen.SetCell(x, y, core.Cell{Rune: ' '})
	}

	state := "paused"
	color := core.ColorYellow
	switch {
	case m.stable:
		state, color = "stable", core.ColorCyan
	case m.running:
		state, color = "running", core.ColorGreen
	}

	status := fmt.Sprintf("gen %d  living %d  peak %d  %d gen/s  ",
		m.universe.Generation(), m.living, m.peak, m.config.TickRate)
	m.screen.DrawText(0, y, status, core.ColorWhite)
	m.screen.DrawText(len(status), y, state, color)
	if m.message != "" {
		m.screen.DrawText(len(status)+len(state)+2, y, m.message, core.ColorGray)
	}
}

// saveScreenshot writes the board to ~/.life/screenshots.
func (m *Model) saveScreenshot() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".life", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	filename := fmt.Sprintf("life_%s_gen%d.txt", time.Now().Format("20060102_150405"), m.universe.Generation())
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.universe.String()), 0o600); err != nil {
		return "", err
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keyMapper.Keys()))
}

// Run starts the Bubble Tea program with a new board.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err = p.Run()
	return err
}
