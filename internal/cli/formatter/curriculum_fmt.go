package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/swimadmin/internal/domain"
)

// CurriculumProgram is one program with everything below it, as printed by
// the seed command.
type CurriculumProgram struct {
	Program *domain.Program
	Levels  []CurriculumLevel
}

type CurriculumLevel struct {
	Level  *domain.Level
	Skills []domain.SkillSummary
	HasMap bool
}

// FormatCurriculum renders programs as a tree of levels and skills.
func FormatCurriculum(programs []CurriculumProgram) string {
	if len(programs) == 0 {
		return Dim("No programs.") + "\n"
	}
	var items []TreeItem
	for _, p := range programs {
		items = append(items, TreeItem{
			Title: p.Program.Name,
			Badge: plural(p.Program.StudentCount, "student"),
		})
		for li, l := range p.Levels {
			mapBadge := "default map"
			if l.HasMap {
				mapBadge = "saved map"
			}
			items = append(items, TreeItem{
				Title:  fmt.Sprintf("%d. %s", l.Level.Order, l.Level.Name),
				Depth:  1,
				IsLast: li == len(p.Levels)-1,
				Badge:  mapBadge,
			})
			for si, sk := range l.Skills {
				items = append(items, TreeItem{
					Title:  sk.Name,
					Depth:  2,
					IsLast: si == len(l.Skills)-1,
					Badge:  plural(sk.ProgressCount, "progress point"),
				})
			}
		}
	}
	return RenderTree(items)
}

// FormatLevelMap lists a map's nodes and connections. names maps skill ids
// to display names.
func FormatLevelMap(level *domain.Level, m domain.LevelMap, names map[string]string, generated bool) string {
	var b strings.Builder
	b.WriteString(Header(level.Name) + "\n")
	if generated {
		b.WriteString(Dim("No saved map; showing the default layout.") + "\n")
	}
	b.WriteString("\n")

	if len(m.Nodes) == 0 {
		b.WriteString(Dim("No skills on this level.") + "\n")
		return b.String()
	}
	nodeRows := make([][]string, 0, len(m.Nodes))
	for _, n := range m.Nodes {
		name := names[n.SkillID]
		if name == "" {
			name = n.SkillID
		}
		nodeRows = append(nodeRows, []string{
			n.ID, name,
			fmt.Sprintf("%g,%g", n.X, n.Y),
			fmt.Sprintf("%gx%g", n.Width, n.Height),
		})
	}
	b.WriteString(RenderTable([]string{"NODE", "SKILL", "POSITION", "SIZE"}, nodeRows))

	if len(m.Connections) > 0 {
		b.WriteString("\n")
		connRows := make([][]string, 0, len(m.Connections))
		for _, c := range m.Connections {
			connRows = append(connRows, []string{c.ID, c.SourceID + " → " + c.TargetID})
		}
		b.WriteString(RenderTable([]string{"CONNECTION", "PATH"}, connRows))
	}
	return b.String()
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
