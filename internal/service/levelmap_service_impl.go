package service

import (
	"context"
	"time"

	"github.com/alexanderramin/swimadmin/internal/db"
	"github.com/alexanderramin/swimadmin/internal/domain"
	"github.com/alexanderramin/swimadmin/internal/repository"
)

type levelMapService struct {
	levels   repository.LevelRepo
	skills   repository.SkillRepo
	maps     repository.LevelMapRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewLevelMapService(
	levels repository.LevelRepo,
	skills repository.SkillRepo,
	maps repository.LevelMapRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) LevelMapService {
	return &levelMapService{
		levels:   levels,
		skills:   skills,
		maps:     maps,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *levelMapService) SkillsForLevel(ctx context.Context, levelID string) ([]domain.SkillSummary, error) {
	if _, err := s.levels.GetByID(ctx, levelID); err != nil {
		return nil, err
	}
	return s.skills.ListSummariesByLevel(ctx, levelID)
}

func (s *levelMapService) Load(ctx context.Context, levelID string) (*LevelMapContext, error) {
	level, err := s.levels.GetByID(ctx, levelID)
	if err != nil {
		return nil, err
	}
	skills, err := s.skills.ListSummariesByLevel(ctx, levelID)
	if err != nil {
		return nil, err
	}
	m, err := s.maps.Get(ctx, levelID)
	if err != nil {
		return nil, err
	}
	return &LevelMapContext{Level: level, Skills: skills, Map: m}, nil
}

func (s *levelMapService) Get(ctx context.Context, levelID string) (*domain.LevelMap, error) {
	if _, err := s.levels.GetByID(ctx, levelID); err != nil {
		return nil, err
	}
	return s.maps.Get(ctx, levelID)
}

func (s *levelMapService) Replace(ctx context.Context, levelID string, m domain.LevelMap) (level *domain.Level, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{
		"level":       levelID,
		"nodes":       len(m.Nodes),
		"connections": len(m.Connections),
	}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "replace-level-map",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txLevels := repository.NewSQLiteLevelRepo(tx)
		txSkills := repository.NewSQLiteSkillRepo(tx)

		if _, err := txLevels.GetByID(ctx, levelID); err != nil {
			return err
		}
		skills, err := txSkills.ListByLevel(ctx, levelID)
		if err != nil {
			return err
		}
		skillIDs := make(map[string]bool, len(skills))
		for _, sk := range skills {
			skillIDs[sk.ID] = true
		}
		if err := domain.ValidateLevelMap(m, skillIDs); err != nil {
			return err
		}

		if err := repository.NewSQLiteLevelMapRepo(tx).Replace(ctx, levelID, m); err != nil {
			return err
		}
		if err := txLevels.Touch(ctx, levelID); err != nil {
			return err
		}
		level, err = txLevels.GetByID(ctx, levelID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return level, nil
}
