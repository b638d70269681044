package mapeditor

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/alexanderramin/swimadmin/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pt(x, y float64) domain.Point { return domain.Point{X: x, Y: y} }

func node(id string, x, y float64) domain.MapNode {
	return domain.MapNode{ID: id, SkillID: "s-" + id, Rect: domain.Rect{X: x, Y: y, Width: NodeWidth, Height: NodeHeight}}
}

// twoNodeEditor opens a saved map with nodes a at (0,0) and b at (200,0).
func twoNodeEditor(t *testing.T) *Editor {
	t.Helper()
	stored := &domain.LevelMap{Nodes: []domain.MapNode{node("a", 0, 0), node("b", 200, 0)}}
	return Open("l1", stored, nil, WithIDGenerator(&SequenceGenerator{Prefix: "con-"}))
}

func TestConnectThenClickDeletes(t *testing.T) {
	e := twoNodeEditor(t)

	require.True(t, e.BeginConnect("a"))
	conn, ok := e.Release(pt(250, 40))
	require.True(t, ok)
	assert.Equal(t, "a", conn.SourceID)
	assert.Equal(t, "b", conn.TargetID)
	assert.Equal(t, []domain.Connection{conn}, e.Connections())
	assert.IsType(t, Idle{}, e.Interaction())

	// The segment runs from (75,40) to (275,40); click just off the line.
	id, ok := e.ClickConnection(pt(175, 43))
	require.True(t, ok)
	assert.Equal(t, conn.ID, id)
	assert.Empty(t, e.Connections())

	a, _ := e.Node("a")
	b, _ := e.Node("b")
	assert.Equal(t, node("a", 0, 0), a)
	assert.Equal(t, node("b", 200, 0), b)
}

func TestConnectEndingOnOriginOrEmptySpaceIsDiscarded(t *testing.T) {
	e := twoNodeEditor(t)

	require.True(t, e.BeginConnect("a"))
	_, ok := e.Release(pt(10, 10))
	assert.False(t, ok, "released on origin")

	require.True(t, e.BeginConnect("a"))
	_, ok = e.Release(pt(900, 900))
	assert.False(t, ok, "released on empty canvas")

	require.True(t, e.BeginConnect("a"))
	e.Leave()

	require.True(t, e.BeginConnect("a"))
	_, ok = e.EndInteraction("ghost")
	assert.False(t, ok, "target does not exist")

	assert.Empty(t, e.Connections())
	assert.IsType(t, Idle{}, e.Interaction())
	assert.False(t, e.Dirty())
}

func TestParallelConnectionsAreKept(t *testing.T) {
	e := twoNodeEditor(t)

	for i := 0; i < 2; i++ {
		require.True(t, e.BeginConnect("a"))
		_, ok := e.EndInteraction("b")
		require.True(t, ok)
	}
	conns := e.Connections()
	require.Len(t, conns, 2)
	assert.NotEqual(t, conns[0].ID, conns[1].ID)
}

func TestFreshIDSkipsTakenIDs(t *testing.T) {
	stored := &domain.LevelMap{
		Nodes:       []domain.MapNode{node("a", 0, 0), node("b", 200, 0)},
		Connections: []domain.Connection{{ID: "con-1", SourceID: "a", TargetID: "b"}},
	}
	e := Open("l1", stored, nil, WithIDGenerator(&SequenceGenerator{Prefix: "con-"}))

	require.True(t, e.BeginConnect("b"))
	conn, ok := e.EndInteraction("a")
	require.True(t, ok)
	assert.Equal(t, "con-2", conn.ID)
}

func TestNanoIDGeneratorPrefix(t *testing.T) {
	id := NanoIDGenerator{}.NewID()
	assert.Regexp(t, `^con-[A-Za-z0-9_-]{12}$`, id)
}

func TestDragKeepsGrabOffset(t *testing.T) {
	e := twoNodeEditor(t)

	require.True(t, e.BeginDrag("b", pt(210, 20)))
	assert.Equal(t, Dragging{NodeID: "b", Offset: pt(10, 20)}, e.Interaction())

	require.True(t, e.ContinueDrag(pt(310, 120)))
	b, _ := e.Node("b")
	assert.Equal(t, 300.0, b.X)
	assert.Equal(t, 100.0, b.Y)

	_, ok := e.Release(pt(310, 120))
	assert.False(t, ok)
	assert.IsType(t, Idle{}, e.Interaction())
	assert.True(t, e.Dirty())
}

func TestDragClampsToCanvas(t *testing.T) {
	e := twoNodeEditor(t)

	require.True(t, e.BeginDrag("b", pt(250, 40)))
	e.ContinueDrag(pt(-500, 10))
	b, _ := e.Node("b")
	assert.Equal(t, 0.0, b.X)
	assert.Equal(t, 0.0, b.Y)
}

func TestGesturesAreMutuallyExclusive(t *testing.T) {
	e := twoNodeEditor(t)

	require.True(t, e.BeginDrag("a", pt(5, 5)))
	assert.False(t, e.BeginConnect("b"), "no connect while dragging")
	assert.False(t, e.BeginDrag("b", pt(205, 5)), "one drag at a time")
	assert.False(t, e.Regenerate(nil))
	e.Leave()

	require.True(t, e.BeginConnect("a"))
	assert.False(t, e.BeginDrag("b", pt(205, 5)), "no drag while connecting")
	assert.False(t, e.ContinueDrag(pt(50, 50)))
	a, _ := e.Node("a")
	assert.Equal(t, 0.0, a.X, "connecting never moves nodes")
}

func TestUnknownNodesAreIgnored(t *testing.T) {
	e := twoNodeEditor(t)

	assert.False(t, e.BeginDrag("ghost", pt(0, 0)))
	assert.False(t, e.BeginConnect("ghost"))
	assert.False(t, e.DeleteConnection("ghost"))
	assert.IsType(t, Idle{}, e.Interaction())
}

func TestBeginDragRaisesNode(t *testing.T) {
	stored := &domain.LevelMap{Nodes: []domain.MapNode{node("a", 0, 0), node("b", 100, 0)}}
	e := Open("l1", stored, nil)

	// The overlap at x=120 belongs to b, which is on top.
	top, ok := e.NodeAt(pt(120, 10))
	require.True(t, ok)
	assert.Equal(t, "b", top.ID)

	require.True(t, e.BeginDrag("a", pt(120, 10)))
	e.Leave()
	top, _ = e.NodeAt(pt(120, 10))
	assert.Equal(t, "a", top.ID)
	assert.Equal(t, "a", e.Nodes()[1].ID)

	// Raising changes paint order only; the saved order is untouched.
	assert.Equal(t, "a", e.Snapshot().Nodes[0].ID)
}

func TestDeleteConnectionRemovesExactlyOne(t *testing.T) {
	stored := &domain.LevelMap{
		Nodes: []domain.MapNode{node("a", 0, 0), node("b", 200, 0), node("c", 400, 0)},
		Connections: []domain.Connection{
			{ID: "c1", SourceID: "a", TargetID: "b"},
			{ID: "c2", SourceID: "b", TargetID: "c"},
			{ID: "c3", SourceID: "a", TargetID: "c"},
		},
	}
	e := Open("l1", stored, nil)

	require.True(t, e.DeleteConnection("c2"))
	assert.Equal(t, []domain.Connection{stored.Connections[0], stored.Connections[2]}, e.Connections())
	assert.False(t, e.DeleteConnection("c2"))
	assert.Len(t, e.Connections(), 2)
}

func TestSegmentsSkipMissingEndpoints(t *testing.T) {
	stored := &domain.LevelMap{
		Nodes: []domain.MapNode{node("a", 0, 0), node("b", 200, 100)},
		Connections: []domain.Connection{
			{ID: "ok", SourceID: "a", TargetID: "b"},
			{ID: "dangling", SourceID: "a", TargetID: "gone"},
		},
	}
	e := Open("l1", stored, nil)

	segs := e.Segments()
	require.Len(t, segs, 1)
	assert.Equal(t, Segment{ConnectionID: "ok", From: pt(75, 40), To: pt(275, 140)}, segs[0])

	_, ok := e.ConnectionAt(pt(400, 400))
	assert.False(t, ok)
}

func TestHitSlopBoundary(t *testing.T) {
	e := twoNodeEditor(t)
	require.True(t, e.BeginConnect("a"))
	_, ok := e.EndInteraction("b")
	require.True(t, ok)

	_, ok = e.ConnectionAt(pt(175, 40+HitSlop))
	assert.True(t, ok)
	_, ok = e.ConnectionAt(pt(175, 40+HitSlop+0.5))
	assert.False(t, ok)

	tight := Open("l1", &domain.LevelMap{
		Nodes:       []domain.MapNode{node("a", 0, 0), node("b", 200, 0)},
		Connections: []domain.Connection{{ID: "c", SourceID: "a", TargetID: "b"}},
	}, nil, WithHitSlop(1))
	_, ok = tight.ConnectionAt(pt(175, 43))
	assert.False(t, ok)
}

func TestSnapshotIsDeepCopy(t *testing.T) {
	e := twoNodeEditor(t)
	snap := e.Snapshot()

	require.True(t, e.BeginDrag("a", pt(0, 0)))
	e.ContinueDrag(pt(60, 60))
	e.Leave()

	assert.Equal(t, 0.0, snap.Nodes[0].X)
}

func TestDirtyTracksRevisions(t *testing.T) {
	e := twoNodeEditor(t)
	assert.False(t, e.Dirty())

	require.True(t, e.BeginConnect("a"))
	e.EndInteraction("b")
	rev := e.Revision()
	assert.True(t, e.Dirty())

	require.True(t, e.BeginDrag("a", pt(0, 0)))
	e.ContinueDrag(pt(30, 30))
	e.Leave()

	e.MarkSaved(rev)
	assert.True(t, e.Dirty(), "drag after the snapshot is still unsaved")
	e.MarkSaved(e.Revision())
	assert.False(t, e.Dirty())
}

func TestOpenWithoutStoredMapUsesDefaultLayout(t *testing.T) {
	skills := []domain.SkillSummary{{ID: "s1", Name: "Water Entry"}, {ID: "s2", Name: "Bubble Blowing"}}
	e := Open("l1", nil, skills)

	assert.True(t, e.Generated())
	assert.Len(t, e.Nodes(), 2)
	assert.Len(t, e.Connections(), 1)
	sk, ok := e.Skill("s2")
	require.True(t, ok)
	assert.Equal(t, "Bubble Blowing", sk.Name)
}

func TestRegenerateResetsLayout(t *testing.T) {
	e := twoNodeEditor(t)
	skills := []domain.SkillSummary{{ID: "x"}, {ID: "y"}, {ID: "z"}}

	require.True(t, e.Regenerate(skills))
	assert.True(t, e.Generated())
	assert.True(t, e.Dirty())
	assert.Equal(t, DefaultLayout(skills), e.Snapshot())
}

// Random gesture sequences never push a node off the canvas, never move a
// node other than the one being dragged, and never rewrite endpoints.
func TestRandomGesturesKeepInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	stored := &domain.LevelMap{Nodes: []domain.MapNode{
		node("a", 0, 0), node("b", 200, 0), node("c", 400, 0), node("d", 50, 170),
	}}
	e := Open("l1", stored, nil, WithIDGenerator(&SequenceGenerator{Prefix: "r"}))
	ids := []string{"a", "b", "c", "d"}
	randPoint := func() domain.Point {
		return pt(rng.Float64()*800-200, rng.Float64()*600-200)
	}

	for step := 0; step < 2000; step++ {
		before := e.Snapshot()
		switch rng.Intn(6) {
		case 0:
			e.BeginDrag(ids[rng.Intn(len(ids))], randPoint())
		case 1:
			e.ContinueDrag(randPoint())
		case 2:
			e.BeginConnect(ids[rng.Intn(len(ids))])
		case 3:
			e.Release(randPoint())
		case 4:
			e.ClickConnection(randPoint())
		case 5:
			e.Leave()
		}
		after := e.Snapshot()

		moved := 0
		for i := range after.Nodes {
			n := after.Nodes[i]
			require.GreaterOrEqual(t, n.X, 0.0, "step %d", step)
			require.GreaterOrEqual(t, n.Y, 0.0, "step %d", step)
			if n.Rect != before.Nodes[i].Rect {
				moved++
				d, ok := e.Interaction().(Dragging)
				require.True(t, ok, "only drags move nodes")
				require.Equal(t, d.NodeID, n.ID)
			}
		}
		require.LessOrEqual(t, moved, 1)

		existing := make(map[string]domain.Connection, len(after.Connections))
		for _, c := range after.Connections {
			require.NotEqual(t, c.SourceID, c.TargetID, "step %d", step)
			_, dup := existing[c.ID]
			require.False(t, dup, fmt.Sprintf("duplicate id %s", c.ID))
			existing[c.ID] = c
		}
		for _, c := range before.Connections {
			if got, ok := existing[c.ID]; ok {
				require.Equal(t, c, got)
			}
		}
	}
}
