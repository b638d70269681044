package domain

import (
	"fmt"
	"strings"
	"time"
)

// Level belongs to a Program and groups Skills. Its map is stored separately
// and loaded through the level map service.
type Level struct {
	ID          string    `json:"id"`
	ProgramID   string    `json:"programId"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Cover       string    `json:"cover,omitempty"`
	Order       int       `json:"order"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (l *Level) Validate() error {
	if l.ProgramID == "" {
		return fmt.Errorf("level program is required: %w", ErrValidation)
	}
	if strings.TrimSpace(l.Name) == "" {
		return fmt.Errorf("level name is required: %w", ErrValidation)
	}
	return nil
}
