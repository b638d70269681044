package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// TreeItem is one line of an indented tree. Depth 0 items are roots.
type TreeItem struct {
	Title  string
	Depth  int
	IsLast bool
	Badge  string
}

const (
	treeBranch = "├─ "
	treeCorner = "└─ "
	treePipe   = "│  "
	treeBlank  = "   "
)

// RenderTree draws items with box-drawing connectors and right-aligns their
// badges. Items must be in depth-first order.
func RenderTree(items []TreeItem) string {
	if len(items) == 0 {
		return ""
	}

	// open[d] reports whether the ancestor at depth d still has siblings
	// below it, which decides between a pipe and a blank.
	open := map[int]bool{}
	lines := make([]string, len(items))
	widest := 0
	for i, item := range items {
		var prefix strings.Builder
		for d := 1; d < item.Depth; d++ {
			if open[d] {
				prefix.WriteString(treePipe)
			} else {
				prefix.WriteString(treeBlank)
			}
		}
		if item.Depth > 0 {
			if item.IsLast {
				prefix.WriteString(treeCorner)
			} else {
				prefix.WriteString(treeBranch)
			}
		}
		open[item.Depth] = !item.IsLast

		title := item.Title
		if item.Depth == 0 {
			title = Bold(title)
		}
		lines[i] = Dim(prefix.String()) + title
		widest = max(widest, lipgloss.Width(lines[i]))
	}

	var b strings.Builder
	for i, item := range items {
		b.WriteString(lines[i])
		if item.Badge != "" {
			b.WriteString(strings.Repeat(" ", widest-lipgloss.Width(lines[i])+2))
			b.WriteString(StyleBlue.Render("[ " + item.Badge + " ]"))
		}
		b.WriteString("\n")
	}
	return b.String()
}
