package service

import (
	"context"
	"sync"
	"testing"

	"github.com/alexanderramin/swimadmin/internal/db"
	"github.com/alexanderramin/swimadmin/internal/repository"
	"github.com/alexanderramin/swimadmin/internal/testutil"
)

type testRepos struct {
	programs repository.ProgramRepo
	levels   repository.LevelRepo
	skills   repository.SkillRepo
	progress repository.ProgressRepo
	maps     repository.LevelMapRepo
	uow      db.UnitOfWork
}

func setupRepos(t *testing.T) testRepos {
	t.Helper()
	database := testutil.NewTestDB(t)
	return testRepos{
		programs: repository.NewSQLiteProgramRepo(database),
		levels:   repository.NewSQLiteLevelRepo(database),
		skills:   repository.NewSQLiteSkillRepo(database),
		progress: repository.NewSQLiteProgressRepo(database),
		maps:     repository.NewSQLiteLevelMapRepo(database),
		uow:      testutil.NewTestUoW(database),
	}
}

// recordingObserver keeps every use-case event for assertions.
type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, event UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, event)
}

func (o *recordingObserver) last() UseCaseEvent {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.events[len(o.events)-1]
}
