package cli

import (
	"context"
	"testing"

	"github.com/alexanderramin/swimadmin/internal/mapeditor"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// openLevelMap drives from the program list into the map of level l1.
// l1's stored nodes: mi1 at (50,50), mi2 at (250,150), mi3 at (450,50),
// all 150x80, chained by c1 and c2.
func openLevelMap(t *testing.T, app *App) *TestDriver {
	t.Helper()
	d := NewTestDriver(t, app)
	d.PressEnter()
	d.PressKey('m')
	require.Equal(t, ViewLevelMap, d.ActiveViewID())
	require.NotNil(t, d.MapView().editor, "map did not load")
	return d
}

func TestLevelMap_Renders(t *testing.T) {
	d := openLevelMap(t, testApp(t))

	out := d.View()
	assert.Contains(t, out, "Water Confidence map")
	assert.Contains(t, out, "Water Entry")
	assert.Contains(t, out, "Front Float")
	assert.Contains(t, out, "┌")
	assert.Contains(t, out, "idle")
	assert.NotContains(t, out, "unsaved")
}

func TestLevelMap_DragMovesNode(t *testing.T) {
	d := openLevelMap(t, testApp(t))

	d.MousePress(6, canvasTop+3, tea.MouseButtonLeft)
	assert.Equal(t, "dragging", mapeditor.InteractionName(d.MapView().editor.Interaction()))
	d.MouseMove(6, canvasTop+13, tea.MouseButtonLeft)
	d.MouseRelease(6, canvasTop+13)

	e := d.MapView().editor
	n, ok := e.Node("mi1")
	require.True(t, ok)
	assert.Equal(t, 50.0, n.X)
	assert.Equal(t, 250.0, n.Y)
	assert.Equal(t, "idle", mapeditor.InteractionName(e.Interaction()))
	assert.True(t, e.Dirty())
	assert.Contains(t, d.View(), "unsaved")
}

func TestLevelMap_RightDragConnects(t *testing.T) {
	d := openLevelMap(t, testApp(t))

	d.Drag(6, canvasTop+3, 46, canvasTop+3, tea.MouseButtonRight)

	conns := d.MapView().editor.Connections()
	require.Len(t, conns, 3)
	assert.Equal(t, "mi1", conns[2].SourceID)
	assert.Equal(t, "mi3", conns[2].TargetID)
}

func TestLevelMap_LeavingCanvasCancelsConnection(t *testing.T) {
	d := openLevelMap(t, testApp(t))

	d.MousePress(6, canvasTop+3, tea.MouseButtonRight)
	d.MouseMove(6, 0, tea.MouseButtonRight)
	d.MouseRelease(46, canvasTop+3)

	e := d.MapView().editor
	assert.Len(t, e.Connections(), 2)
	assert.Equal(t, "idle", mapeditor.InteractionName(e.Interaction()))
}

func TestLevelMap_ClickDeletesConnection(t *testing.T) {
	d := openLevelMap(t, testApp(t))

	// Cell (20,6) is centered on (205,130), which lies on c1 between mi1 and mi2.
	d.Click(20, canvasTop+6)

	conns := d.MapView().editor.Connections()
	require.Len(t, conns, 1)
	assert.Equal(t, "c2", conns[0].ID)
}

func TestLevelMap_SaveReturnsToLevelList(t *testing.T) {
	app := testApp(t)
	d := openLevelMap(t, app)
	d.Drag(6, canvasTop+3, 46, canvasTop+3, tea.MouseButtonRight)

	d.PressKey('s')

	require.Equal(t, ViewLevelList, d.ActiveViewID())
	assert.Equal(t, "Saved map for Water Confidence", d.State().Notice)
	assert.False(t, d.State().NoticeFailed)

	stored, err := app.Maps.Get(context.Background(), "l1")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Len(t, stored.Connections, 3)
}

func TestLevelMap_RegenerateUsesDefaultLayout(t *testing.T) {
	d := openLevelMap(t, testApp(t))

	d.PressKey('g')

	e := d.MapView().editor
	assert.True(t, e.Generated())
	assert.True(t, e.Dirty())
	_, ok := e.Node("mi-s1")
	assert.True(t, ok)
	assert.Len(t, e.Connections(), 2)
	assert.Contains(t, d.View(), "default layout")
}

func TestLevelMap_UnknownLevelReturnsHome(t *testing.T) {
	d := NewTestDriver(t, testApp(t))
	d.PressEnter()

	d.Send(pushViewMsg{view: newLevelMapView(d.State(), "ghost", "Ghost")})

	assert.Equal(t, []ViewID{ViewProgramList}, d.ViewStackIDs())
	assert.True(t, d.State().NoticeFailed)
	assert.Contains(t, d.State().Notice, "not found")
}
