package domain

// Point is a position on a level map canvas, in pixels from the top-left corner.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Rect is an axis-aligned rectangle on the canvas.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Origin returns the top-left corner.
func (r Rect) Origin() Point {
	return Point{X: r.X, Y: r.Y}
}

// Center returns the midpoint of the rectangle. Connector lines are drawn
// between node centers.
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Contains reports whether p lies inside r (edges inclusive).
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.Width && p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// MapNode places one Skill on a Level's map.
type MapNode struct {
	ID      string `json:"id"`
	SkillID string `json:"skillId"`
	Rect
}

// Connection is a directed prerequisite edge between two map nodes.
type Connection struct {
	ID       string `json:"id"`
	SourceID string `json:"sourceId"`
	TargetID string `json:"targetId"`
}

// LevelMap is the full visual map of one Level. It is always stored and
// replaced as a whole.
type LevelMap struct {
	Nodes       []MapNode    `json:"nodes"`
	Connections []Connection `json:"connections"`
}

// Clone returns a deep copy so callers can keep editing the original.
func (m LevelMap) Clone() LevelMap {
	out := LevelMap{
		Nodes:       make([]MapNode, len(m.Nodes)),
		Connections: make([]Connection, len(m.Connections)),
	}
	copy(out.Nodes, m.Nodes)
	copy(out.Connections, m.Connections)
	return out
}

// Node returns the node with the given id.
func (m LevelMap) Node(id string) (MapNode, bool) {
	for _, n := range m.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return MapNode{}, false
}
