package cli

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/alexanderramin/swimadmin/internal/cli/formatter"
	"github.com/alexanderramin/swimadmin/internal/domain"
	"github.com/alexanderramin/swimadmin/internal/mapeditor"
	"github.com/alexanderramin/swimadmin/internal/service"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// canvasTop is the screen row of the first canvas row: the app header
// plus the view's own status line.
const canvasTop = headerLines + 1

const defaultSaveTimeout = 5 * time.Second

type levelMapLoadedMsg struct {
	levelID string
	lc      *service.LevelMapContext
	err     error
}

type levelMapSavedMsg struct {
	levelID string
	res     mapeditor.SaveResult
	err     error
}

// levelMapView is the mouse-driven map editor for one level. Terminal
// cells map to canvas pixels at formatter.CellWidthPx by CellHeightPx.
type levelMapView struct {
	state     *SharedState
	levelID   string
	levelName string

	editor  *mapeditor.Editor
	saver   *mapeditor.Saver
	skills  []domain.SkillSummary
	loading bool
	saving  int
	err     error
}

func newLevelMapView(state *SharedState, levelID, levelName string) *levelMapView {
	return &levelMapView{state: state, levelID: levelID, levelName: levelName, loading: true}
}

func (v *levelMapView) ID() ViewID    { return ViewLevelMap }
func (v *levelMapView) Title() string { return v.levelName + " map" }

func (v *levelMapView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save")),
		key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "default layout")),
		key.NewBinding(key.WithHelp("drag", "move")),
		key.NewBinding(key.WithHelp("right-drag", "connect")),
		key.NewBinding(key.WithHelp("click line", "delete")),
	}
}

func (v *levelMapView) Init() tea.Cmd {
	app, levelID := v.state.App, v.levelID
	return func() tea.Msg {
		lc, err := app.Maps.Load(context.Background(), levelID)
		return levelMapLoadedMsg{levelID: levelID, lc: lc, err: err}
	}
}

func (v *levelMapView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case levelMapLoadedMsg:
		if msg.levelID != v.levelID {
			return v, nil
		}
		return v, v.loaded(msg)
	case levelMapSavedMsg:
		if msg.levelID != v.levelID {
			return v, nil
		}
		return v, v.saved(msg)
	case tea.MouseMsg:
		v.handleMouse(msg)
	case tea.KeyMsg:
		return v, v.handleKey(msg)
	}
	return v, nil
}

func (v *levelMapView) loaded(msg levelMapLoadedMsg) tea.Cmd {
	v.loading = false
	if errors.Is(msg.err, domain.ErrNotFound) {
		return tea.Batch(
			func() tea.Msg { return noticeMsg{text: "Level " + v.levelID + " not found", failed: true} },
			popToRoot(),
		)
	}
	if msg.err != nil {
		v.err = msg.err
		return nil
	}
	if msg.lc.Level != nil {
		v.levelName = msg.lc.Level.Name
	}
	v.skills = msg.lc.Skills
	v.editor = mapeditor.Open(v.levelID, msg.lc.Map, msg.lc.Skills)
	v.saver = mapeditor.NewSaver(v.state.App.Maps, v.levelID)
	return nil
}

func (v *levelMapView) saved(msg levelMapSavedMsg) tea.Cmd {
	v.saving--
	if msg.err != nil {
		return failure(msg.err)
	}
	if msg.res.Superseded {
		return nil
	}
	v.editor.MarkSaved(msg.res.Revision)
	return tea.Batch(popView(), notice("Saved map for "+v.levelName), refreshViews())
}

func (v *levelMapView) canvasSize() (cols, rows int) {
	return max(v.state.Width, 1), max(v.state.ContentHeight()-1, 1)
}

// handleMouse turns terminal mouse events into editor gestures.
func (v *levelMapView) handleMouse(msg tea.MouseMsg) {
	e := v.editor
	if e == nil {
		return
	}
	cols, rows := v.canvasSize()
	col, row := msg.X, msg.Y-canvasTop
	inside := col >= 0 && col < cols && row >= 0 && row < rows
	p := formatter.CellToPoint(col, row)

	switch msg.Action {
	case tea.MouseActionPress:
		if !inside {
			return
		}
		n, onNode := e.NodeAt(p)
		switch msg.Button {
		case tea.MouseButtonLeft:
			if onNode {
				e.BeginDrag(n.ID, p)
			} else {
				e.ClickConnection(p)
			}
		case tea.MouseButtonRight:
			if onNode {
				e.BeginConnect(n.ID)
			}
		}
	case tea.MouseActionMotion:
		if !inside {
			e.Leave()
			return
		}
		e.ContinueDrag(p)
	case tea.MouseActionRelease:
		if !inside {
			e.Leave()
			return
		}
		e.Release(p)
	}
}

func (v *levelMapView) handleKey(msg tea.KeyMsg) tea.Cmd {
	if v.editor == nil {
		return nil
	}
	switch msg.String() {
	case "s":
		return v.saveCmd()
	case "g":
		if v.editor.Regenerate(v.skills) {
			return notice("Default layout restored; press s to keep it")
		}
	}
	return nil
}

// saveCmd snapshots the editor now and persists it in the background.
func (v *levelMapView) saveCmd() tea.Cmd {
	save := v.saver.Queue(v.editor)
	v.saving++
	timeout := v.state.App.Config.SaveTimeout()
	if timeout <= 0 {
		timeout = defaultSaveTimeout
	}
	levelID := v.levelID
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		res, err := save(ctx)
		return levelMapSavedMsg{levelID: levelID, res: res, err: err}
	}
}

func (v *levelMapView) View() string {
	if v.loading {
		return loadingView("map")
	}
	if v.err != nil {
		return errorView(v.err)
	}
	e := v.editor

	status := []string{formatter.Bold(v.levelName), mapeditor.InteractionName(e.Interaction())}
	if e.Dirty() {
		status = append(status, formatter.StyleYellow.Render("unsaved"))
	}
	if e.Generated() {
		status = append(status, "default layout")
	}
	if v.saving > 0 {
		status = append(status, "saving…")
	}

	cols, rows := v.canvasSize()
	return " " + strings.Join(status, formatter.Dim(" · ")) + "\n" + buildCanvas(e, cols, rows).Render()
}

// buildCanvas lays out the editor's state for drawing. The node being
// dragged, or the one a connection is drawn from, is highlighted.
func buildCanvas(e *mapeditor.Editor, cols, rows int) formatter.Canvas {
	var active string
	switch in := e.Interaction().(type) {
	case mapeditor.Dragging:
		active = in.NodeID
	case mapeditor.Connecting:
		active = in.From
	}

	c := formatter.Canvas{Cols: cols, Rows: rows}
	for _, n := range e.Nodes() {
		label := n.SkillID
		if sk, ok := e.Skill(n.SkillID); ok {
			label = sk.Name
		}
		c.Nodes = append(c.Nodes, formatter.CanvasNode{Node: n, Label: label, Active: n.ID == active})
	}
	for _, s := range e.Segments() {
		c.Edges = append(c.Edges, formatter.CanvasEdge{From: s.From, To: s.To})
	}
	return c
}
