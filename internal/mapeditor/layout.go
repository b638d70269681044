package mapeditor

import (
	"fmt"

	"github.com/alexanderramin/swimadmin/internal/domain"
)

// Default grid used when a level has no saved map.
const (
	LayoutColumns = 3
	LayoutOriginX = 50.0
	LayoutOriginY = 50.0
	LayoutStepX   = 200.0
	LayoutStepY   = 120.0
	NodeWidth     = 150.0
	NodeHeight    = 80.0
)

// DefaultLayout places one node per skill in a three-column grid, in skill
// order, and chains each node to the next.
func DefaultLayout(skills []domain.SkillSummary) domain.LevelMap {
	m := domain.LevelMap{
		Nodes:       make([]domain.MapNode, 0, len(skills)),
		Connections: []domain.Connection{},
	}
	for i, sk := range skills {
		m.Nodes = append(m.Nodes, domain.MapNode{
			ID:      "mi-" + sk.ID,
			SkillID: sk.ID,
			Rect: domain.Rect{
				X:      LayoutOriginX + float64(i%LayoutColumns)*LayoutStepX,
				Y:      LayoutOriginY + float64(i/LayoutColumns)*LayoutStepY,
				Width:  NodeWidth,
				Height: NodeHeight,
			},
		})
	}
	for i := 0; i+1 < len(m.Nodes); i++ {
		m.Connections = append(m.Connections, domain.Connection{
			ID:       fmt.Sprintf("con-%d", i),
			SourceID: m.Nodes[i].ID,
			TargetID: m.Nodes[i+1].ID,
		})
	}
	return m
}
