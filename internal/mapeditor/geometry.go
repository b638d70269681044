package mapeditor

import (
	"math"

	"github.com/alexanderramin/swimadmin/internal/domain"
)

// HitSlop is how far from a connection line a click still selects it:
// half the width of the 10px invisible hit stroke.
const HitSlop = 5.0

// Segment is a rendered connection: a straight line between the centers of
// its two nodes.
type Segment struct {
	ConnectionID string
	From         domain.Point
	To           domain.Point
}

// DistanceToSegment returns the shortest distance from p to the segment ab.
func DistanceToSegment(p, a, b domain.Point) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return math.Hypot(p.X-a.X, p.Y-a.Y)
	}
	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / lenSq
	t = math.Max(0, math.Min(1, t))
	cx, cy := a.X+t*dx, a.Y+t*dy
	return math.Hypot(p.X-cx, p.Y-cy)
}
