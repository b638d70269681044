package domain

import (
	"fmt"
	"strings"
	"time"
)

// Progress is a single assessable progress point within a Skill.
type Progress struct {
	ID          string    `json:"id"`
	SkillID     string    `json:"skillId"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Criteria    string    `json:"criteria,omitempty"`
	PointValue  int       `json:"pointValue"`
	Order       int       `json:"order"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (p *Progress) Validate() error {
	if p.SkillID == "" {
		return fmt.Errorf("progress skill is required: %w", ErrValidation)
	}
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("progress name is required: %w", ErrValidation)
	}
	if p.PointValue < 0 {
		return fmt.Errorf("point value must not be negative: %w", ErrValidation)
	}
	return nil
}
