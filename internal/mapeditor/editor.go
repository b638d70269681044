package mapeditor

import (
	"math"

	"github.com/alexanderramin/swimadmin/internal/domain"
)

// Editor holds the local editing state of one level's map. Nothing it does
// touches the store; Snapshot hands the result to a Saver.
//
// An Editor is not safe for concurrent use. Each view or session owns one
// and drives it from a single goroutine.
type Editor struct {
	levelID     string
	nodes       []domain.MapNode
	stack       []string // node ids, bottom to top
	connections []domain.Connection
	skills      map[string]domain.SkillSummary
	interaction Interaction
	ids         IDGenerator
	hitSlop     float64
	generated   bool
	rev         uint64
	savedRev    uint64
}

// Option configures an Editor.
type Option func(*Editor)

// WithIDGenerator overrides the connection id source.
func WithIDGenerator(g IDGenerator) Option {
	return func(e *Editor) {
		e.ids = g
	}
}

// WithHitSlop overrides how close a click must land to a connection line.
func WithHitSlop(px float64) Option {
	return func(e *Editor) {
		e.hitSlop = px
	}
}

// Open starts editing levelID. A nil stored map means the level was never
// saved; the editor then starts from the default layout for skills.
func Open(levelID string, stored *domain.LevelMap, skills []domain.SkillSummary, opts ...Option) *Editor {
	e := &Editor{
		levelID:     levelID,
		interaction: Idle{},
		ids:         NanoIDGenerator{},
		hitSlop:     HitSlop,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.setSkills(skills)

	var m domain.LevelMap
	if stored != nil {
		m = stored.Clone()
	} else {
		m = DefaultLayout(skills)
		e.generated = true
	}
	e.load(m)
	return e
}

func (e *Editor) setSkills(skills []domain.SkillSummary) {
	e.skills = make(map[string]domain.SkillSummary, len(skills))
	for _, sk := range skills {
		e.skills[sk.ID] = sk
	}
}

func (e *Editor) load(m domain.LevelMap) {
	e.nodes = m.Nodes
	e.connections = m.Connections
	if e.nodes == nil {
		e.nodes = []domain.MapNode{}
	}
	if e.connections == nil {
		e.connections = []domain.Connection{}
	}
	e.stack = make([]string, len(e.nodes))
	for i, n := range e.nodes {
		e.stack[i] = n.ID
	}
}

func (e *Editor) LevelID() string { return e.levelID }

// Generated reports whether the current map came from the default layout
// rather than a saved map.
func (e *Editor) Generated() bool { return e.generated }

func (e *Editor) Interaction() Interaction { return e.interaction }

// Dirty reports whether there are edits not yet covered by a committed save.
func (e *Editor) Dirty() bool { return e.rev != e.savedRev }

// Revision identifies the current local state. Pass it to MarkSaved once
// the snapshot taken at that revision has been committed.
func (e *Editor) Revision() uint64 { return e.rev }

// MarkSaved records that the state at rev is stored. Edits made after rev
// keep the editor dirty.
func (e *Editor) MarkSaved(rev uint64) {
	if rev > e.savedRev {
		e.savedRev = rev
	}
	e.generated = false
}

func (e *Editor) touch() { e.rev++ }

// Skill returns the summary for a node's skill.
func (e *Editor) Skill(skillID string) (domain.SkillSummary, bool) {
	sk, ok := e.skills[skillID]
	return sk, ok
}

// Nodes returns the nodes in paint order, bottom to top.
func (e *Editor) Nodes() []domain.MapNode {
	out := make([]domain.MapNode, 0, len(e.stack))
	for _, id := range e.stack {
		if i := e.nodeIndex(id); i >= 0 {
			out = append(out, e.nodes[i])
		}
	}
	return out
}

func (e *Editor) Connections() []domain.Connection {
	out := make([]domain.Connection, len(e.connections))
	copy(out, e.connections)
	return out
}

// Node returns the node with the given id.
func (e *Editor) Node(id string) (domain.MapNode, bool) {
	if i := e.nodeIndex(id); i >= 0 {
		return e.nodes[i], true
	}
	return domain.MapNode{}, false
}

func (e *Editor) nodeIndex(id string) int {
	for i := range e.nodes {
		if e.nodes[i].ID == id {
			return i
		}
	}
	return -1
}

// NodeAt returns the top-most node containing p.
func (e *Editor) NodeAt(p domain.Point) (domain.MapNode, bool) {
	for i := len(e.stack) - 1; i >= 0; i-- {
		n, ok := e.Node(e.stack[i])
		if ok && n.Contains(p) {
			return n, true
		}
	}
	return domain.MapNode{}, false
}

// BeginDrag starts moving nodeID. It only works from Idle and raises the
// node to the top of the stacking order.
func (e *Editor) BeginDrag(nodeID string, pointer domain.Point) bool {
	if _, idle := e.interaction.(Idle); !idle {
		return false
	}
	n, ok := e.Node(nodeID)
	if !ok {
		return false
	}
	e.interaction = Dragging{NodeID: nodeID, Offset: pointer.Sub(n.Origin())}
	e.raise(nodeID)
	return true
}

func (e *Editor) raise(nodeID string) {
	for i, id := range e.stack {
		if id == nodeID {
			e.stack = append(e.stack[:i], e.stack[i+1:]...)
			break
		}
	}
	e.stack = append(e.stack, nodeID)
}

// ContinueDrag moves the dragged node so the pointer keeps its grab offset.
// Coordinates are clamped to the canvas.
func (e *Editor) ContinueDrag(pointer domain.Point) bool {
	d, ok := e.interaction.(Dragging)
	if !ok {
		return false
	}
	i := e.nodeIndex(d.NodeID)
	if i < 0 {
		return false
	}
	x := math.Max(0, pointer.X-d.Offset.X)
	y := math.Max(0, pointer.Y-d.Offset.Y)
	if x == e.nodes[i].X && y == e.nodes[i].Y {
		return true
	}
	e.nodes[i].X, e.nodes[i].Y = x, y
	e.touch()
	return true
}

// BeginConnect starts drawing a connection from nodeID. It only works from
// Idle.
func (e *Editor) BeginConnect(nodeID string) bool {
	if _, idle := e.interaction.(Idle); !idle {
		return false
	}
	if _, ok := e.Node(nodeID); !ok {
		return false
	}
	e.interaction = Connecting{From: nodeID}
	return true
}

// EndInteraction finishes whatever gesture is in progress. A connection
// draw ending on a different existing node adds a connection, which is
// returned. Parallel duplicates are allowed. The editor is Idle afterwards.
func (e *Editor) EndInteraction(targetNodeID string) (domain.Connection, bool) {
	c, ok := e.interaction.(Connecting)
	e.interaction = Idle{}
	if !ok || targetNodeID == "" || targetNodeID == c.From {
		return domain.Connection{}, false
	}
	if _, exists := e.Node(targetNodeID); !exists {
		return domain.Connection{}, false
	}
	conn := domain.Connection{
		ID:       e.freshConnectionID(),
		SourceID: c.From,
		TargetID: targetNodeID,
	}
	e.connections = append(e.connections, conn)
	e.touch()
	return conn, true
}

// Release ends the gesture with the pointer at p; the node under p, if any,
// is the connection target.
func (e *Editor) Release(pointer domain.Point) (domain.Connection, bool) {
	var target string
	if n, ok := e.NodeAt(pointer); ok {
		target = n.ID
	}
	return e.EndInteraction(target)
}

// Leave ends the gesture because the pointer left the canvas.
func (e *Editor) Leave() {
	e.EndInteraction("")
}

func (e *Editor) freshConnectionID() string {
	for {
		id := e.ids.NewID()
		if id != "" && !e.hasConnection(id) {
			return id
		}
	}
}

func (e *Editor) hasConnection(id string) bool {
	for _, c := range e.connections {
		if c.ID == id {
			return true
		}
	}
	return false
}

// DeleteConnection removes the connection with the given id. Unknown ids
// are ignored.
func (e *Editor) DeleteConnection(id string) bool {
	for i, c := range e.connections {
		if c.ID == id {
			e.connections = append(e.connections[:i], e.connections[i+1:]...)
			e.touch()
			return true
		}
	}
	return false
}

// Segments returns the drawable connections. Connections whose endpoints
// are missing are skipped.
func (e *Editor) Segments() []Segment {
	segs := make([]Segment, 0, len(e.connections))
	for _, c := range e.connections {
		src, ok := e.Node(c.SourceID)
		if !ok {
			continue
		}
		dst, ok := e.Node(c.TargetID)
		if !ok {
			continue
		}
		segs = append(segs, Segment{ConnectionID: c.ID, From: src.Center(), To: dst.Center()})
	}
	return segs
}

// ConnectionAt returns the connection whose line passes within the hit slop
// of p. The closest wins; on a tie the one drawn last does.
func (e *Editor) ConnectionAt(p domain.Point) (domain.Connection, bool) {
	best := -1
	bestDist := math.Inf(1)
	segs := e.Segments()
	for i, s := range segs {
		d := DistanceToSegment(p, s.From, s.To)
		if d <= e.hitSlop && d <= bestDist {
			best, bestDist = i, d
		}
	}
	if best < 0 {
		return domain.Connection{}, false
	}
	for _, c := range e.connections {
		if c.ID == segs[best].ConnectionID {
			return c, true
		}
	}
	return domain.Connection{}, false
}

// ClickConnection deletes the connection under p, if any.
func (e *Editor) ClickConnection(p domain.Point) (string, bool) {
	c, ok := e.ConnectionAt(p)
	if !ok {
		return "", false
	}
	return c.ID, e.DeleteConnection(c.ID)
}

// Snapshot returns a deep copy of the map in its stored order.
func (e *Editor) Snapshot() domain.LevelMap {
	return domain.LevelMap{Nodes: e.nodes, Connections: e.connections}.Clone()
}

// Regenerate replaces the map with the default layout for skills. It only
// works from Idle.
func (e *Editor) Regenerate(skills []domain.SkillSummary) bool {
	if _, idle := e.interaction.(Idle); !idle {
		return false
	}
	e.setSkills(skills)
	e.load(DefaultLayout(skills))
	e.generated = true
	e.touch()
	return true
}
