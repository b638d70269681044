package domain

import (
	"fmt"
	"strings"
	"time"
)

// Program is the top of the curriculum hierarchy (e.g. "SwimSafe").
type Program struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Logo         string    `json:"logo,omitempty"`
	Instructors  []string  `json:"instructors,omitempty"`
	StudentCount int       `json:"studentCount"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Validate checks the fields a Program needs before it is stored.
func (p *Program) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("program name is required: %w", ErrValidation)
	}
	if p.StudentCount < 0 {
		return fmt.Errorf("student count must not be negative: %w", ErrValidation)
	}
	return nil
}
