package repository

import (
	"context"

	"github.com/alexanderramin/swimadmin/internal/domain"
)

type ProgramRepo interface {
	Create(ctx context.Context, p *domain.Program) error
	GetByID(ctx context.Context, id string) (*domain.Program, error)
	List(ctx context.Context) ([]*domain.Program, error)
	Update(ctx context.Context, p *domain.Program) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

type LevelRepo interface {
	Create(ctx context.Context, l *domain.Level) error
	GetByID(ctx context.Context, id string) (*domain.Level, error)
	ListByProgram(ctx context.Context, programID string) ([]*domain.Level, error)
	NextOrder(ctx context.Context, programID string) (int, error)
	Update(ctx context.Context, l *domain.Level) error
	Touch(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

type SkillRepo interface {
	Create(ctx context.Context, s *domain.Skill) error
	GetByID(ctx context.Context, id string) (*domain.Skill, error)
	ListByLevel(ctx context.Context, levelID string) ([]*domain.Skill, error)
	ListSummariesByLevel(ctx context.Context, levelID string) ([]domain.SkillSummary, error)
	NextOrder(ctx context.Context, levelID string) (int, error)
	Update(ctx context.Context, s *domain.Skill) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

type ProgressRepo interface {
	Create(ctx context.Context, p *domain.Progress) error
	GetByID(ctx context.Context, id string) (*domain.Progress, error)
	ListBySkill(ctx context.Context, skillID string) ([]*domain.Progress, error)
	NextOrder(ctx context.Context, skillID string) (int, error)
	Update(ctx context.Context, p *domain.Progress) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

// LevelMapRepo stores level maps. Replace issues several statements and
// must run inside a unit of work.
type LevelMapRepo interface {
	// Get returns nil, nil when the level has no saved map.
	Get(ctx context.Context, levelID string) (*domain.LevelMap, error)
	Replace(ctx context.Context, levelID string, m domain.LevelMap) error
	Delete(ctx context.Context, levelID string) error
	// RemoveSkillNodes drops every node placing skillID, and with them their
	// connections, from whichever map holds them.
	RemoveSkillNodes(ctx context.Context, skillID string) error
}
