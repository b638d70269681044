package service

import (
	"context"
	"time"

	"github.com/alexanderramin/swimadmin/internal/db"
	"github.com/alexanderramin/swimadmin/internal/domain"
	"github.com/alexanderramin/swimadmin/internal/repository"
	"github.com/google/uuid"
)

type skillService struct {
	skills repository.SkillRepo
	levels repository.LevelRepo
	uow    db.UnitOfWork
}

func NewSkillService(skills repository.SkillRepo, levels repository.LevelRepo, uow db.UnitOfWork) SkillService {
	return &skillService{skills: skills, levels: levels, uow: uow}
}

func (s *skillService) Create(ctx context.Context, sk *domain.Skill) error {
	if err := sk.Validate(); err != nil {
		return err
	}
	if _, err := s.levels.GetByID(ctx, sk.LevelID); err != nil {
		return err
	}
	if sk.ID == "" {
		sk.ID = uuid.New().String()
	}
	if sk.Order == 0 {
		next, err := s.skills.NextOrder(ctx, sk.LevelID)
		if err != nil {
			return err
		}
		sk.Order = next
	}
	now := time.Now().UTC()
	sk.CreatedAt = now
	sk.UpdatedAt = now
	return s.skills.Create(ctx, sk)
}

func (s *skillService) GetByID(ctx context.Context, id string) (*domain.Skill, error) {
	return s.skills.GetByID(ctx, id)
}

func (s *skillService) ListByLevel(ctx context.Context, levelID string) ([]*domain.Skill, error) {
	return s.skills.ListByLevel(ctx, levelID)
}

// Update stores sk. Moving a skill to another level takes its node (and the
// node's connections) off the old level's map in the same transaction.
func (s *skillService) Update(ctx context.Context, sk *domain.Skill) error {
	if err := sk.Validate(); err != nil {
		return err
	}
	sk.UpdatedAt = time.Now().UTC()

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txSkills := repository.NewSQLiteSkillRepo(tx)
		txLevels := repository.NewSQLiteLevelRepo(tx)

		current, err := txSkills.GetByID(ctx, sk.ID)
		if err != nil {
			return err
		}
		if current.LevelID != sk.LevelID {
			if _, err := txLevels.GetByID(ctx, sk.LevelID); err != nil {
				return err
			}
			if err := repository.NewSQLiteLevelMapRepo(tx).RemoveSkillNodes(ctx, sk.ID); err != nil {
				return err
			}
			next, err := txSkills.NextOrder(ctx, sk.LevelID)
			if err != nil {
				return err
			}
			sk.Order = next
		}
		return txSkills.Update(ctx, sk)
	})
}

// Delete removes the skill, its progress points and its map nodes.
func (s *skillService) Delete(ctx context.Context, id string) error {
	return s.skills.Delete(ctx, id)
}
