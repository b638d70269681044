package service

import (
	"context"

	"github.com/alexanderramin/swimadmin/internal/repository"
)

type dashboardService struct {
	programs repository.ProgramRepo
	levels   repository.LevelRepo
	skills   repository.SkillRepo
	progress repository.ProgressRepo
}

func NewDashboardService(
	programs repository.ProgramRepo,
	levels repository.LevelRepo,
	skills repository.SkillRepo,
	progress repository.ProgressRepo,
) DashboardService {
	return &dashboardService{programs: programs, levels: levels, skills: skills, progress: progress}
}

func (s *dashboardService) Summary(ctx context.Context) (*DashboardSummary, error) {
	var sum DashboardSummary
	var err error
	if sum.Programs, err = s.programs.Count(ctx); err != nil {
		return nil, err
	}
	if sum.Levels, err = s.levels.Count(ctx); err != nil {
		return nil, err
	}
	if sum.Skills, err = s.skills.Count(ctx); err != nil {
		return nil, err
	}
	if sum.Progress, err = s.progress.Count(ctx); err != nil {
		return nil, err
	}
	return &sum, nil
}
