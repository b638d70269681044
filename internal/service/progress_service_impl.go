package service

import (
	"context"
	"time"

	"github.com/alexanderramin/swimadmin/internal/domain"
	"github.com/alexanderramin/swimadmin/internal/repository"
	"github.com/google/uuid"
)

type progressService struct {
	progress repository.ProgressRepo
	skills   repository.SkillRepo
}

func NewProgressService(progress repository.ProgressRepo, skills repository.SkillRepo) ProgressService {
	return &progressService{progress: progress, skills: skills}
}

func (s *progressService) Create(ctx context.Context, p *domain.Progress) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if _, err := s.skills.GetByID(ctx, p.SkillID); err != nil {
		return err
	}
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if p.Order == 0 {
		next, err := s.progress.NextOrder(ctx, p.SkillID)
		if err != nil {
			return err
		}
		p.Order = next
	}
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	return s.progress.Create(ctx, p)
}

func (s *progressService) GetByID(ctx context.Context, id string) (*domain.Progress, error) {
	return s.progress.GetByID(ctx, id)
}

func (s *progressService) ListBySkill(ctx context.Context, skillID string) ([]*domain.Progress, error) {
	return s.progress.ListBySkill(ctx, skillID)
}

func (s *progressService) Update(ctx context.Context, p *domain.Progress) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if _, err := s.skills.GetByID(ctx, p.SkillID); err != nil {
		return err
	}
	p.UpdatedAt = time.Now().UTC()
	return s.progress.Update(ctx, p)
}

func (s *progressService) Delete(ctx context.Context, id string) error {
	return s.progress.Delete(ctx, id)
}
