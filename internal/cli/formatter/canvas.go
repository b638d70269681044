package formatter

import (
	"math"
	"strings"

	"github.com/alexanderramin/swimadmin/internal/domain"
)

// Terminal cells are mapped to canvas pixels at a fixed scale.
const (
	CellWidthPx  = 10.0
	CellHeightPx = 20.0
)

// PointToCell returns the cell containing canvas point p.
func PointToCell(p domain.Point) (col, row int) {
	return int(math.Floor(p.X / CellWidthPx)), int(math.Floor(p.Y / CellHeightPx))
}

// CellToPoint returns the canvas point at the center of a cell.
func CellToPoint(col, row int) domain.Point {
	return domain.Point{
		X: float64(col)*CellWidthPx + CellWidthPx/2,
		Y: float64(row)*CellHeightPx + CellHeightPx/2,
	}
}

// CanvasSize returns the cell extent needed to show every node.
func CanvasSize(nodes []domain.MapNode) (cols, rows int) {
	for _, n := range nodes {
		c, r := PointToCell(domain.Point{X: n.X + n.Width, Y: n.Y + n.Height})
		cols, rows = max(cols, c+1), max(rows, r+1)
	}
	return cols, rows
}

// CanvasNode is a node as drawn; Active nodes are highlighted.
type CanvasNode struct {
	Node   domain.MapNode
	Label  string
	Active bool
}

// CanvasEdge is a connection line between two node centers. Lines carry no
// direction marker.
type CanvasEdge struct {
	From, To domain.Point
}

// Canvas is a character rendering of a level map.
type Canvas struct {
	Cols, Rows int
	Nodes      []CanvasNode // paint order, bottom to top
	Edges      []CanvasEdge
}

type cellClass uint8

const (
	classEmpty cellClass = iota
	classEdge
	classNode
	classActive
)

type cell struct {
	r     rune
	class cellClass
}

type grid [][]cell

func (g grid) set(col, row int, r rune, class cellClass) {
	if row < 0 || row >= len(g) || col < 0 || col >= len(g[row]) {
		return
	}
	g[row][col] = cell{r: r, class: class}
}

type cellRect struct{ c0, r0, c1, r1 int }

func rectCells(r domain.Rect) cellRect {
	c0, r0 := PointToCell(domain.Point{X: r.X, Y: r.Y})
	c1, r1 := PointToCell(domain.Point{X: r.X + r.Width, Y: r.Y + r.Height})
	cr := cellRect{c0: c0, r0: r0, c1: c1 - 1, r1: r1 - 1}
	cr.c1 = max(cr.c1, cr.c0+2)
	cr.r1 = max(cr.r1, cr.r0+2)
	return cr
}

// Render draws edges first, then nodes bottom to top.
func (c Canvas) Render() string {
	if c.Cols <= 0 || c.Rows <= 0 {
		return ""
	}
	g := make(grid, c.Rows)
	for i := range g {
		g[i] = make([]cell, c.Cols)
		for j := range g[i] {
			g[i][j] = cell{r: ' '}
		}
	}

	for _, e := range c.Edges {
		for _, p := range line(e.From, e.To) {
			g.set(p[0], p[1], '·', classEdge)
		}
	}
	for _, n := range c.Nodes {
		drawNode(g, n)
	}

	var b strings.Builder
	for i, row := range g {
		writeRow(&b, row)
		if i < len(g)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func drawNode(g grid, n CanvasNode) {
	cr := rectCells(n.Node.Rect)
	class := classNode
	if n.Active {
		class = classActive
	}
	for row := cr.r0; row <= cr.r1; row++ {
		for col := cr.c0; col <= cr.c1; col++ {
			r := ' '
			switch {
			case row == cr.r0 && col == cr.c0:
				r = '┌'
			case row == cr.r0 && col == cr.c1:
				r = '┐'
			case row == cr.r1 && col == cr.c0:
				r = '└'
			case row == cr.r1 && col == cr.c1:
				r = '┘'
			case row == cr.r0 || row == cr.r1:
				r = '─'
			case col == cr.c0 || col == cr.c1:
				r = '│'
			}
			g.set(col, row, r, class)
		}
	}
	label := []rune(Truncate(n.Label, cr.c1-cr.c0-1))
	for i, r := range label {
		g.set(cr.c0+1+i, cr.r0+1, r, class)
	}
}

// line returns the cells between two canvas points (Bresenham).
func line(from, to domain.Point) [][2]int {
	c0, r0 := PointToCell(from)
	c1, r1 := PointToCell(to)
	dc, dr := abs(c1-c0), -abs(r1-r0)
	sc, sr := sign(c1-c0), sign(r1-r0)
	errAcc := dc + dr

	var out [][2]int
	for {
		out = append(out, [2]int{c0, r0})
		if c0 == c1 && r0 == r1 {
			return out
		}
		e2 := 2 * errAcc
		if e2 >= dr {
			errAcc += dr
			c0 += sc
		}
		if e2 <= dc {
			errAcc += dc
			r0 += sr
		}
	}
}

func writeRow(b *strings.Builder, row []cell) {
	start := 0
	for i := 1; i <= len(row); i++ {
		if i < len(row) && row[i].class == row[start].class {
			continue
		}
		run := make([]rune, 0, i-start)
		for _, c := range row[start:i] {
			run = append(run, c.r)
		}
		b.WriteString(styleFor(row[start].class)(string(run)))
		start = i
	}
}

func styleFor(class cellClass) func(...string) string {
	switch class {
	case classEdge:
		return StyleAqua.Render
	case classNode:
		return StyleFg.Render
	case classActive:
		return StyleYellow.Render
	default:
		return func(strs ...string) string { return strings.Join(strs, "") }
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	default:
		return 0
	}
}
