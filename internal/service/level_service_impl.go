package service

import (
	"context"
	"time"

	"github.com/alexanderramin/swimadmin/internal/domain"
	"github.com/alexanderramin/swimadmin/internal/repository"
	"github.com/google/uuid"
)

type levelService struct {
	levels   repository.LevelRepo
	programs repository.ProgramRepo
}

func NewLevelService(levels repository.LevelRepo, programs repository.ProgramRepo) LevelService {
	return &levelService{levels: levels, programs: programs}
}

func (s *levelService) Create(ctx context.Context, l *domain.Level) error {
	if err := l.Validate(); err != nil {
		return err
	}
	if _, err := s.programs.GetByID(ctx, l.ProgramID); err != nil {
		return err
	}
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	if l.Order == 0 {
		next, err := s.levels.NextOrder(ctx, l.ProgramID)
		if err != nil {
			return err
		}
		l.Order = next
	}
	now := time.Now().UTC()
	l.CreatedAt = now
	l.UpdatedAt = now
	return s.levels.Create(ctx, l)
}

func (s *levelService) GetByID(ctx context.Context, id string) (*domain.Level, error) {
	return s.levels.GetByID(ctx, id)
}

func (s *levelService) ListByProgram(ctx context.Context, programID string) ([]*domain.Level, error) {
	return s.levels.ListByProgram(ctx, programID)
}

func (s *levelService) Update(ctx context.Context, l *domain.Level) error {
	if err := l.Validate(); err != nil {
		return err
	}
	if _, err := s.programs.GetByID(ctx, l.ProgramID); err != nil {
		return err
	}
	l.UpdatedAt = time.Now().UTC()
	return s.levels.Update(ctx, l)
}

// Delete removes the level with its skills, progress points and map.
func (s *levelService) Delete(ctx context.Context, id string) error {
	return s.levels.Delete(ctx, id)
}
