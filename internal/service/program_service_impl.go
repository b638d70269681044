package service

import (
	"context"
	"time"

	"github.com/alexanderramin/swimadmin/internal/domain"
	"github.com/alexanderramin/swimadmin/internal/repository"
	"github.com/google/uuid"
)

type programService struct {
	programs repository.ProgramRepo
}

func NewProgramService(programs repository.ProgramRepo) ProgramService {
	return &programService{programs: programs}
}

func (s *programService) Create(ctx context.Context, p *domain.Program) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	return s.programs.Create(ctx, p)
}

func (s *programService) GetByID(ctx context.Context, id string) (*domain.Program, error) {
	return s.programs.GetByID(ctx, id)
}

func (s *programService) List(ctx context.Context) ([]*domain.Program, error) {
	return s.programs.List(ctx)
}

func (s *programService) Update(ctx context.Context, p *domain.Program) error {
	if err := p.Validate(); err != nil {
		return err
	}
	p.UpdatedAt = time.Now().UTC()
	return s.programs.Update(ctx, p)
}

// Delete removes the program and everything beneath it.
func (s *programService) Delete(ctx context.Context, id string) error {
	return s.programs.Delete(ctx, id)
}
