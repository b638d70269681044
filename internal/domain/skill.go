package domain

import (
	"fmt"
	"strings"
	"time"
)

type Skill struct {
	ID                    string    `json:"id"`
	LevelID               string    `json:"levelId"`
	Name                  string    `json:"name"`
	Description           string    `json:"description,omitempty"`
	VideoURL              string    `json:"videoUrl,omitempty"`
	AnimationURL          string    `json:"animationUrl,omitempty"`
	InstructorDescription string    `json:"instructorDescription,omitempty"`
	InstructorVideoURL    string    `json:"instructorVideoUrl,omitempty"`
	Order                 int       `json:"order"`
	CreatedAt             time.Time `json:"createdAt"`
	UpdatedAt             time.Time `json:"updatedAt"`
}

func (s *Skill) Validate() error {
	if s.LevelID == "" {
		return fmt.Errorf("skill level is required: %w", ErrValidation)
	}
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("skill name is required: %w", ErrValidation)
	}
	return nil
}

// SkillSummary is the slice of a Skill the map editor needs: enough to label
// a node with the skill name and its number of progress points.
type SkillSummary struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	ProgressCount int    `json:"progressCount"`
}
