package domain

import (
	"fmt"
	"strings"
)

// MapValidationError lists every invariant a level map breaks.
type MapValidationError struct {
	Problems []string
}

func (e *MapValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInvalidMap, strings.Join(e.Problems, "; "))
}

func (e *MapValidationError) Unwrap() error {
	return ErrInvalidMap
}

// ValidateLevelMap checks m against the map invariants. skillIDs is the set
// of skills that belong to the owning Level; nodes may only place those.
func ValidateLevelMap(m LevelMap, skillIDs map[string]bool) error {
	var problems []string

	nodeIDs := make(map[string]bool, len(m.Nodes))
	for i, n := range m.Nodes {
		switch {
		case n.ID == "":
			problems = append(problems, fmt.Sprintf("node %d has no id", i))
		case nodeIDs[n.ID]:
			problems = append(problems, fmt.Sprintf("duplicate node id %q", n.ID))
		}
		nodeIDs[n.ID] = true

		if n.X < 0 || n.Y < 0 {
			problems = append(problems, fmt.Sprintf("node %q has negative position", n.ID))
		}
		if n.Width <= 0 || n.Height <= 0 {
			problems = append(problems, fmt.Sprintf("node %q has empty size", n.ID))
		}
		if !skillIDs[n.SkillID] {
			problems = append(problems, fmt.Sprintf("node %q references skill %q outside the level", n.ID, n.SkillID))
		}
	}

	connIDs := make(map[string]bool, len(m.Connections))
	for i, c := range m.Connections {
		switch {
		case c.ID == "":
			problems = append(problems, fmt.Sprintf("connection %d has no id", i))
		case connIDs[c.ID]:
			problems = append(problems, fmt.Sprintf("duplicate connection id %q", c.ID))
		}
		connIDs[c.ID] = true

		if !nodeIDs[c.SourceID] {
			problems = append(problems, fmt.Sprintf("connection %q has unknown source %q", c.ID, c.SourceID))
		}
		if !nodeIDs[c.TargetID] {
			problems = append(problems, fmt.Sprintf("connection %q has unknown target %q", c.ID, c.TargetID))
		}
		if c.SourceID == c.TargetID {
			problems = append(problems, fmt.Sprintf("connection %q loops on %q", c.ID, c.SourceID))
		}
	}

	if len(problems) > 0 {
		return &MapValidationError{Problems: problems}
	}
	return nil
}
