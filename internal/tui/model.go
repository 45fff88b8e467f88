package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jbonatakis/dayboard/internal/dashboard"
	"github.com/jbonatakis/dayboard/internal/i18n"
	"go.uber.org/zap"
)

type ActivePane int

const (
	PaneNow ActivePane = iota
	PaneTimeline
)

type Model struct {
	scheduler *dashboard.Scheduler
	tr        *i18n.Translator
	logger    *zap.Logger
	keys      keyMap

	snapshot    dashboard.Snapshot
	hasSnapshot bool

	activePane   ActivePane
	windowWidth  int
	windowHeight int
	timeline     viewport.Model
	progress     progress.Model
	help         help.Model

	// followActive keeps the timeline centred on the active item; manual
	// scrolling turns it off until the active item changes.
	followActive bool
	centeredID   string
	quitting     bool
}

func NewModel(scheduler *dashboard.Scheduler, tr *i18n.Translator, logger *zap.Logger) Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	return Model{
		scheduler:    scheduler,
		tr:           tr,
		logger:       logger,
		keys:         newKeyMap(tr),
		activePane:   PaneNow,
		timeline:     viewport.New(0, 0),
		progress:     progress.New(progress.WithGradient("#7c3aed", "#c084fc"), progress.WithoutPercentage()),
		help:         help.New(),
		followActive: true,
	}
}

func (m Model) Init() tea.Cmd {
	return tickNowCmd()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.windowWidth = typed.Width
		m.windowHeight = typed.Height
		m.resize()
		m.syncTimeline()
		return m, nil
	case tickMsg:
		if m.quitting || m.scheduler == nil {
			return m, nil
		}
		m.snapshot = m.scheduler.Step()
		m.hasSnapshot = true
		m.syncTimeline()
		return m, TickCmd(m.scheduler.Interval())
	case tea.KeyMsg:
		return m.handleKey(typed)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.logger.Info("dashboard closed")
		return m, tea.Quit
	case key.Matches(msg, m.keys.Complete), key.Matches(msg, m.keys.Next):
		// The new offset is picked up by the next tick.
		if m.hasSnapshot && m.scheduler != nil {
			m.scheduler.Skip(m.snapshot)
		}
		m.followActive = true
		return m, nil
	case key.Matches(msg, m.keys.Pane):
		if m.activePane == PaneNow {
			m.activePane = PaneTimeline
		} else {
			m.activePane = PaneNow
		}
		return m, nil
	case key.Matches(msg, m.keys.Up):
		m.timeline.LineUp(1)
		m.followActive = false
	case key.Matches(msg, m.keys.Down):
		m.timeline.LineDown(1)
		m.followActive = false
	case key.Matches(msg, m.keys.PageUp):
		m.timeline.ViewUp()
		m.followActive = false
	case key.Matches(msg, m.keys.PageDown):
		m.timeline.ViewDown()
		m.followActive = false
	}
	return m, nil
}

func (m Model) activeID() string {
	if m.snapshot.State.Active == nil {
		return ""
	}
	return m.snapshot.State.Active.ID
}

func (m *Model) resize() {
	height := m.availableHeight()
	if m.windowWidth <= 0 {
		m.timeline.Width = 0
		m.timeline.Height = height
		return
	}
	leftWidth, rightWidth := splitPaneWidths(m.windowWidth)
	m.timeline.Width = rightWidth - 2
	m.timeline.Height = height
	m.progress.Width = leftWidth - 8
	m.help.Width = m.windowWidth
}

// syncTimeline re-renders the timeline and, while following, centres the
// active item.
func (m *Model) syncTimeline() {
	if m.scheduler == nil {
		return
	}
	content, activeLine := RenderTimeline(m.scheduler.Items(), m.snapshot.State.ActiveIndex, m.timeline.Width, m.tr)
	m.timeline.SetContent(content)

	id := m.activeID()
	if id != m.centeredID {
		m.followActive = true
		m.centeredID = id
	}
	if !m.followActive || activeLine < 0 {
		return
	}
	offset := activeLine - m.timeline.Height/2
	if offset < 0 {
		offset = 0
	}
	m.timeline.SetYOffset(offset)
}

// availableHeight reserves space so total output is strictly less than
// windowHeight: each pane adds two border lines, plus a newline and the bar.
func (m Model) availableHeight() int {
	h := m.windowHeight - 5
	if h < 0 {
		return 0
	}
	return h
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	availableHeight := m.availableHeight()
	if availableHeight == 0 {
		return RenderBottomBar(m)
	}

	var content string
	if m.windowWidth <= 0 {
		timeline, _ := RenderTimeline(m.scheduler.Items(), m.snapshot.State.ActiveIndex, 0, m.tr)
		content = RenderActivePanel(m, 0) + "\n\n" + timeline
	} else {
		leftWidth, rightWidth := splitPaneWidths(m.windowWidth)
		left := renderPane(RenderActivePanel(m, leftWidth), leftWidth, availableHeight, m.tr.T(i18n.MsgNow), m.activePane == PaneNow)
		right := renderPane(m.timeline.View(), rightWidth, availableHeight, m.tr.T(i18n.MsgTimeline), m.activePane == PaneTimeline)
		content = lipgloss.JoinHorizontal(lipgloss.Top, left, right)
	}

	if m.windowHeight > 1 {
		return content + "\n" + RenderBottomBar(m)
	}
	return content
}

// splitPaneWidths gives the active panel three fifths of the screen. Each
// pane's rendered width is content width + 2 borders.
func splitPaneWidths(total int) (int, int) {
	if total <= 0 {
		return 0, 0
	}
	minLeft := 30
	minRight := 24
	available := total - 4
	if available < 0 {
		available = 0
	}
	left := available * 3 / 5
	if left < minLeft {
		left = minLeft
	}
	if available-left < minRight {
		left = available - minRight
		if left < minLeft {
			left = available / 2
		}
	}
	right := available - left
	if right < 0 {
		right = 0
	}
	return left, right
}

func renderPane(content string, width int, height int, title string, active bool) string {
	borderColor := lipgloss.Color("240")
	titleColor := lipgloss.Color("240")
	if active {
		borderColor = lipgloss.Color("135")
		titleColor = lipgloss.Color("135")
	}

	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Width(width).
		Height(height).
		MaxHeight(height+2).
		Padding(0, 1)

	rendered := style.Render(content)
	if title == "" {
		return rendered
	}

	// Rebuild the top border line so its display width matches the pane; the
	// original line holds ANSI codes, so runes cannot be replaced in place.
	lines := strings.Split(rendered, "\n")
	if len(lines) < 2 {
		return rendered
	}
	targetWidth := lipgloss.Width(lines[1])
	borderStyle := lipgloss.NewStyle().Foreground(borderColor)
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(titleColor)
	nMiddle := targetWidth - 5 - lipgloss.Width(title)
	if nMiddle < 0 {
		nMiddle = 0
	}
	topLine := borderStyle.Render("╭ ") +
		titleStyle.Render(" "+title+" ") +
		borderStyle.Render(strings.Repeat("─", nMiddle)+"╮")
	if w := lipgloss.Width(topLine); w < targetWidth {
		nMiddle += targetWidth - w
		topLine = borderStyle.Render("╭ ") +
			titleStyle.Render(" "+title+" ") +
			borderStyle.Render(strings.Repeat("─", nMiddle)+"╮")
	}
	lines[0] = topLine
	return strings.Join(lines, "\n")
}
