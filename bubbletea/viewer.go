// Package bubbletea provides a terminal UI for browsing document comparisons
// using the Bubble Tea framework.
package bubbletea

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fwojciec/docdiff"
	themes "github.com/fwojciec/docdiff/lipgloss"
)

// Model is the Bubble Tea model for browsing a comparison side by side.
type Model struct {
	result *docdiff.Result

	viewport    viewport.Model
	keymap      KeyMap
	styles      docdiff.Styles
	renderer    *lipgloss.Renderer
	width       int
	ready       bool
	pendingKey  string
	changeLines []int
}

// ModelOption configures a Model.
type ModelOption func(*modelConfig)

type modelConfig struct {
	renderer *lipgloss.Renderer
	theme    docdiff.Theme
}

// WithRenderer sets a custom lipgloss renderer for the model.
func WithRenderer(r *lipgloss.Renderer) ModelOption {
	return func(cfg *modelConfig) {
		cfg.renderer = r
	}
}

// WithTheme sets the theme for the model.
func WithTheme(t docdiff.Theme) ModelOption {
	return func(cfg *modelConfig) {
		cfg.theme = t
	}
}

// NewModel creates a new Model with the given comparison result.
func NewModel(result *docdiff.Result, opts ...ModelOption) Model {
	cfg := &modelConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	theme := cfg.theme
	if theme == nil {
		theme = themes.DefaultTheme()
	}

	return Model{
		result:   result,
		keymap:   DefaultKeyMap(),
		styles:   theme.Styles(),
		renderer: cfg.renderer,
	}
}

// ChangeLines returns the content line offsets of the changed rows. They are
// computed on the first window size message.
func (m Model) ChangeLines() []int {
	return m.changeLines
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Handle multi-key sequences (gg for go to top)
		if m.pendingKey == "g" && key.Matches(msg, m.keymap.GotoTop) {
			m.viewport.GotoTop()
			m.pendingKey = ""
			return m, nil
		}

		if key.Matches(msg, m.keymap.GotoTop) {
			m.pendingKey = "g"
			return m, nil
		}

		// Clear pending key on any other key press
		m.pendingKey = ""

		switch {
		case key.Matches(msg, m.keymap.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keymap.GotoBottom):
			m.viewport.GotoBottom()
			return m, nil
		case key.Matches(msg, m.keymap.HalfPageUp):
			m.viewport.HalfViewUp()
			return m, nil
		case key.Matches(msg, m.keymap.HalfPageDown):
			m.viewport.HalfViewDown()
			return m, nil
		case key.Matches(msg, m.keymap.Up):
			m.viewport.LineUp(1)
			return m, nil
		case key.Matches(msg, m.keymap.Down):
			m.viewport.LineDown(1)
			return m, nil
		case key.Matches(msg, m.keymap.NextChange):
			m.gotoNextChange()
			return m, nil
		case key.Matches(msg, m.keymap.PrevChange):
			m.gotoPrevChange()
			return m, nil
		}
	case tea.WindowSizeMsg:
		statusBarHeight := 1
		widthChanged := m.width != msg.Width
		m.width = msg.Width

		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-statusBarHeight)
			m.setContent()
			m.ready = true
		} else if widthChanged {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - statusBarHeight
			m.setContent()
		} else {
			m.viewport.Height = msg.Height - statusBarHeight
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.viewport.View(), m.statusBarView())
}

func (m *Model) setContent() {
	content, changeLines := renderResult(renderConfig{
		result:   m.result,
		styles:   m.styles,
		renderer: m.renderer,
		width:    m.width,
	})
	m.changeLines = changeLines
	m.viewport.SetContent(content)
}

// gotoNextChange scrolls to the first changed row below the current offset.
func (m *Model) gotoNextChange() {
	for _, line := range m.changeLines {
		if line > m.viewport.YOffset {
			m.viewport.SetYOffset(line)
			return
		}
	}
}

// gotoPrevChange scrolls to the last changed row above the current offset.
func (m *Model) gotoPrevChange() {
	for i := len(m.changeLines) - 1; i >= 0; i-- {
		if m.changeLines[i] < m.viewport.YOffset {
			m.viewport.SetYOffset(m.changeLines[i])
			return
		}
	}
}

// statusBarView renders the status bar with position info and key hints.
func (m Model) statusBarView() string {
	barStyle := styleFromColorPair(m.styles.Summary, m.renderer)
	dimStyle := styleFromColorPair(m.styles.Context, m.renderer)

	current, total := m.currentChange()
	changePos := fmt.Sprintf("change %d/%d", current, total)

	sep := dimStyle.Render(" │ ")
	content := barStyle.Render(changePos) + sep +
		barStyle.Render(m.scrollPosition()) + sep +
		dimStyle.Render("j/k:scroll  n/N:change  q:quit") +
		barStyle.Render("  ")

	// Right-align by padding the left side
	contentWidth := lipgloss.Width(content)
	if m.width > contentWidth {
		content = strings.Repeat(" ", m.width-contentWidth) + content
	}
	return content
}

// currentChange returns the 1-based index of the changed row at or above the
// current offset, and the total change count.
func (m Model) currentChange() (current, total int) {
	total = len(m.changeLines)
	if total == 0 {
		return 0, 0
	}

	current = 1
	for i, line := range m.changeLines {
		if line <= m.viewport.YOffset {
			current = i + 1
		} else {
			break
		}
	}
	return current, total
}

// scrollPosition returns a string indicating the scroll position.
func (m Model) scrollPosition() string {
	if m.viewport.AtTop() {
		return "Top"
	}
	if m.viewport.AtBottom() {
		return "Bot"
	}
	return fmt.Sprintf("%2d%%", int(m.viewport.ScrollPercent()*100))
}

// Compile-time interface verification.
var _ docdiff.Viewer = (*Viewer)(nil)

// Viewer implements docdiff.Viewer using a Bubble Tea TUI.
type Viewer struct {
	modelOpts   []ModelOption
	programOpts []tea.ProgramOption
}

// ViewerOption configures a Viewer.
type ViewerOption func(*Viewer)

// WithProgramOptions appends options passed to the Bubble Tea program. Tests
// use this to redirect IO away from the terminal.
func WithProgramOptions(opts ...tea.ProgramOption) ViewerOption {
	return func(v *Viewer) {
		v.programOpts = append(v.programOpts, opts...)
	}
}

// WithViewerTheme sets the theme used by the viewer's model.
func WithViewerTheme(t docdiff.Theme) ViewerOption {
	return func(v *Viewer) {
		v.modelOpts = append(v.modelOpts, WithTheme(t))
	}
}

// NewViewer creates a new Viewer.
func NewViewer(opts ...ViewerOption) *Viewer {
	v := &Viewer{}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// View displays the comparison and blocks until the user exits or ctx is
// cancelled.
func (v *Viewer) View(ctx context.Context, result *docdiff.Result) error {
	m := NewModel(result, v.modelOpts...)
	opts := append([]tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	}, v.programOpts...)

	p := tea.NewProgram(m, opts...)
	if _, err := p.Run(); err != nil {
		// Cancellation surfaces as a program kill; report the context error.
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}
	return nil
}
