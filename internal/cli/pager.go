package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/farmtrip/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// pagerModel shows long command output in a scrollable viewport.
type pagerModel struct {
	title   string
	content string
	vp      viewport.Model
	ready   bool
	keys    pagerKeyMap
}

type pagerKeyMap struct {
	Quit key.Binding
	Top  key.Binding
	End  key.Binding
}

func newPagerModel(title, content string) pagerModel {
	return pagerModel{
		title:   title,
		content: content,
		keys: pagerKeyMap{
			Quit: key.NewBinding(key.WithKeys("q", "esc", "ctrl+c")),
			Top:  key.NewBinding(key.WithKeys("g", "home")),
			End:  key.NewBinding(key.WithKeys("G", "end")),
		},
	}
}

func (m pagerModel) Init() tea.Cmd {
	return nil
}

func (m pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		height := max(msg.Height-pagerChromeLines, 1)
		if !m.ready {
			m.vp = viewport.New(msg.Width, height)
			m.vp.MouseWheelEnabled = true
			m.vp.MouseWheelDelta = 3
			m.vp.SetContent(m.content)
			m.ready = true
		} else {
			m.vp.Width = msg.Width
			m.vp.Height = height
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Top):
			m.vp.GotoTop()
			return m, nil
		case key.Matches(msg, m.keys.End):
			m.vp.GotoBottom()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

// pagerChromeLines is the title line plus the separator and status bar.
const pagerChromeLines = 3

func (m pagerModel) View() string {
	if !m.ready {
		return "Loading…"
	}
	sep := lipgloss.NewStyle().Foreground(formatter.ColorDim).Render(strings.Repeat("─", max(m.vp.Width, 20)))
	status := strings.Join([]string{
		scrollIndicator(m.vp),
		formatter.Dim("↑/↓ pgup/pgdn: scroll"),
		formatter.Dim("g/G: top/end"),
		formatter.Dim("q: quit"),
	}, "  ")
	return formatter.StyleHeader.Render(m.title) + "\n" + m.vp.View() + "\n" + sep + "\n" + status
}

// scrollIndicator returns a dim scroll position string for the status bar.
func scrollIndicator(vp viewport.Model) string {
	if vp.AtTop() {
		return formatter.Dim("[TOP]")
	}
	if vp.AtBottom() {
		return formatter.Dim("[END]")
	}
	return formatter.Dim(fmt.Sprintf("[%d%%]", int(vp.ScrollPercent()*100)))
}

// runPager blocks until the user leaves the pager.
func runPager(title, content string) error {
	p := tea.NewProgram(newPagerModel(title, content), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
