package teatest

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

type pingMsg struct{}

// recorder counts what it sees and chains one pingMsg per key press.
type recorder struct {
	keys   []string
	mouse  []tea.MouseMsg
	pings  int
	width  int
	inited bool
}

type initMsg struct{}

func (r recorder) Init() tea.Cmd {
	return func() tea.Msg { return initMsg{} }
}

func (r recorder) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case initMsg:
		r.inited = true
	case tea.WindowSizeMsg:
		r.width = msg.Width
	case tea.KeyMsg:
		r.keys = append(r.keys, msg.String())
		if msg.String() == "x" {
			return r, tea.Quit
		}
		return r, tea.Batch(func() tea.Msg { return pingMsg{} }, nil)
	case tea.MouseMsg:
		r.mouse = append(r.mouse, msg)
	case pingMsg:
		r.pings++
	}
	return r, nil
}

func (r recorder) View() string { return "" }

func TestDriver_DrainsCommands(t *testing.T) {
	d := New(t, recorder{}, WithSize(80, 24))
	d.DrainInit()
	d.Type("ab")
	d.PressEnter()

	r := d.Model.(recorder)
	assert.True(t, r.inited)
	assert.Equal(t, 80, r.width)
	assert.Equal(t, []string{"a", "b", "enter"}, r.keys)
	assert.Equal(t, 3, r.pings)
}

func TestDriver_StopsAfterQuit(t *testing.T) {
	d := New(t, recorder{})
	d.PressKey('x')
	d.PressKey('y')

	assert.True(t, d.Quitting)
	assert.Equal(t, []string{"x"}, d.Model.(recorder).keys)
}

func TestDriver_MouseHelpers(t *testing.T) {
	d := New(t, recorder{})
	d.Drag(1, 2, 5, 6, tea.MouseButtonRight)

	mouse := d.Model.(recorder).mouse
	if assert.Len(t, mouse, 3) {
		assert.Equal(t, tea.MouseActionPress, mouse[0].Action)
		assert.Equal(t, tea.MouseButtonRight, mouse[0].Button)
		assert.Equal(t, tea.MouseActionMotion, mouse[1].Action)
		assert.Equal(t, 5, mouse[2].X)
		assert.Equal(t, tea.MouseActionRelease, mouse[2].Action)
	}
}
