package service

import (
	"context"

	"github.com/alexanderramin/swimadmin/internal/domain"
)

type ProgramService interface {
	Create(ctx context.Context, p *domain.Program) error
	GetByID(ctx context.Context, id string) (*domain.Program, error)
	List(ctx context.Context) ([]*domain.Program, error)
	Update(ctx context.Context, p *domain.Program) error
	Delete(ctx context.Context, id string) error
}

type LevelService interface {
	Create(ctx context.Context, l *domain.Level) error
	GetByID(ctx context.Context, id string) (*domain.Level, error)
	ListByProgram(ctx context.Context, programID string) ([]*domain.Level, error)
	Update(ctx context.Context, l *domain.Level) error
	Delete(ctx context.Context, id string) error
}

type SkillService interface {
	Create(ctx context.Context, s *domain.Skill) error
	GetByID(ctx context.Context, id string) (*domain.Skill, error)
	ListByLevel(ctx context.Context, levelID string) ([]*domain.Skill, error)
	Update(ctx context.Context, s *domain.Skill) error
	Delete(ctx context.Context, id string) error
}

type ProgressService interface {
	Create(ctx context.Context, p *domain.Progress) error
	GetByID(ctx context.Context, id string) (*domain.Progress, error)
	ListBySkill(ctx context.Context, skillID string) ([]*domain.Progress, error)
	Update(ctx context.Context, p *domain.Progress) error
	Delete(ctx context.Context, id string) error
}

// LevelMapContext is everything the map editor needs to open a level.
// Map is nil when the level has never been saved.
type LevelMapContext struct {
	Level  *domain.Level
	Skills []domain.SkillSummary
	Map    *domain.LevelMap
}

type LevelMapService interface {
	SkillsForLevel(ctx context.Context, levelID string) ([]domain.SkillSummary, error)
	Load(ctx context.Context, levelID string) (*LevelMapContext, error)
	Get(ctx context.Context, levelID string) (*domain.LevelMap, error)
	// Replace validates m and swaps it in for the level's stored map in a
	// single transaction. It returns the level with its bumped UpdatedAt.
	Replace(ctx context.Context, levelID string, m domain.LevelMap) (*domain.Level, error)
}

// SeedResult reports what SeedDemo inserted.
type SeedResult struct {
	Skipped  bool
	Programs int
	Levels   int
	Skills   int
	Progress int
	Maps     int
}

type SeedService interface {
	SeedDemo(ctx context.Context) (*SeedResult, error)
}

// DashboardSummary holds the record counts shown on the dashboard.
type DashboardSummary struct {
	Programs int `json:"programs"`
	Levels   int `json:"levels"`
	Skills   int `json:"skills"`
	Progress int `json:"progress"`
}

type DashboardService interface {
	Summary(ctx context.Context) (*DashboardSummary, error)
}
