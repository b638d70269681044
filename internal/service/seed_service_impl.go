package service

import (
	"context"
	"sort"
	"time"

	"github.com/alexanderramin/swimadmin/internal/db"
	"github.com/alexanderramin/swimadmin/internal/repository"
)

type seedService struct {
	programs repository.ProgramRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewSeedService(programs repository.ProgramRepo, uow db.UnitOfWork, observers ...UseCaseObserver) SeedService {
	return &seedService{
		programs: programs,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

// SeedDemo loads the demo curriculum into an empty store. A store that
// already holds programs is left alone and the result is marked Skipped.
func (s *seedService) SeedDemo(ctx context.Context) (result *SeedResult, err error) {
	startedAt := time.Now().UTC()
	result = &SeedResult{}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "seed-demo",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields: map[string]any{
				"skipped":  result.Skipped,
				"programs": result.Programs,
				"levels":   result.Levels,
				"skills":   result.Skills,
			},
		})
	}()

	n, err := s.programs.Count(ctx)
	if err != nil {
		return result, err
	}
	if n > 0 {
		result.Skipped = true
		return result, nil
	}

	now := time.Now().UTC()
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		programs := repository.NewSQLiteProgramRepo(tx)
		levels := repository.NewSQLiteLevelRepo(tx)
		skills := repository.NewSQLiteSkillRepo(tx)
		progress := repository.NewSQLiteProgressRepo(tx)
		maps := repository.NewSQLiteLevelMapRepo(tx)

		for _, p := range demoPrograms {
			p.CreatedAt, p.UpdatedAt = now, now
			if err := programs.Create(ctx, &p); err != nil {
				return err
			}
			result.Programs++
		}
		for _, l := range demoLevels {
			l.CreatedAt, l.UpdatedAt = now, now
			if err := levels.Create(ctx, &l); err != nil {
				return err
			}
			result.Levels++
		}
		for _, sk := range demoSkills {
			sk.CreatedAt, sk.UpdatedAt = now, now
			if err := skills.Create(ctx, &sk); err != nil {
				return err
			}
			result.Skills++
		}
		for _, pr := range demoProgress {
			pr.CreatedAt, pr.UpdatedAt = now, now
			if err := progress.Create(ctx, &pr); err != nil {
				return err
			}
			result.Progress++
		}

		levelIDs := make([]string, 0, len(demoMaps))
		for id := range demoMaps {
			levelIDs = append(levelIDs, id)
		}
		sort.Strings(levelIDs)
		for _, id := range levelIDs {
			if err := maps.Replace(ctx, id, demoMaps[id].Clone()); err != nil {
				return err
			}
			result.Maps++
		}
		return nil
	})
	if err != nil {
		return &SeedResult{}, err
	}
	return result, nil
}
