package teatest

import (
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

type bumpMsg struct{}

type counter struct {
	width, n int
}

func (c counter) Init() tea.Cmd { return func() tea.Msg { return bumpMsg{} } }

func (c counter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		c.width = msg.Width
	case bumpMsg:
		c.n++
	case tea.KeyMsg:
		switch msg.String() {
		case "+":
			return c, tea.Batch(bump, bump)
		case "q":
			return c, tea.Quit
		}
	}
	return c, nil
}

func (c counter) View() string { return fmt.Sprintf("%d@%d", c.n, c.width) }

func bump() tea.Msg { return bumpMsg{} }

func TestDriver(t *testing.T) {
	d := New(t, counter{}, 40, 10)
	assert.Equal(t, "1@40", d.View())

	d.Press("+")
	assert.Equal(t, "3@40", d.View())

	d.Press("q", "+")
	assert.True(t, d.Quit)
	assert.Equal(t, "3@40", d.View())
}
