package cli

import (
	"strings"

	"github.com/alexanderramin/swimadmin/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
)

// Bindings shared by the record lists.
var (
	keyAdd    = key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add"))
	keyEdit   = key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit"))
	keyDelete = key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete"))
	keyOpen   = key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open"))
	keyMap    = key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "level map"))
)

// listCursor is the selected row of a list view.
type listCursor int

// move handles the navigation keys and reports whether k was one of them.
func (c *listCursor) move(k string, n int) bool {
	switch k {
	case "up", "k":
		if *c > 0 {
			*c--
		}
	case "down", "j":
		if int(*c) < n-1 {
			*c++
		}
	case "home", "g":
		*c = 0
	case "end", "G":
		*c = listCursor(max(n-1, 0))
	default:
		return false
	}
	return true
}

func (c *listCursor) clamp(n int) {
	if int(*c) >= n {
		*c = listCursor(max(n-1, 0))
	}
}

// renderList draws rows with a marker on the selected one.
func renderList(rows []string, cursor listCursor, empty string) string {
	var b strings.Builder
	b.WriteString("\n")
	if len(rows) == 0 {
		b.WriteString("  " + formatter.Dim(empty) + "\n")
		return b.String()
	}
	for i, row := range rows {
		if i == int(cursor) {
			b.WriteString(formatter.StyleGreen.Render("▸ ") + formatter.StyleBold.Render(row) + "\n")
			continue
		}
		b.WriteString("  " + formatter.StyleFg.Render(row) + "\n")
	}
	return b.String()
}

func loadingView(what string) string {
	return "\n  " + formatter.Dim("Loading "+what+"...")
}

func errorView(err error) string {
	return "\n  " + formatter.StyleRed.Render("Error: "+err.Error())
}
