package mapeditor

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/alexanderramin/swimadmin/internal/domain"
)

// Persister replaces a level's stored map. service.LevelMapService
// satisfies it.
type Persister interface {
	Replace(ctx context.Context, levelID string, m domain.LevelMap) (*domain.Level, error)
}

// SaveResult describes a finished save. A superseded save was dropped
// because a newer snapshot had already been committed.
type SaveResult struct {
	Ticket     uint64
	Revision   uint64
	Level      *domain.Level
	Superseded bool
}

// Saver serializes saves of one level's map. Tickets are taken when the
// snapshot is queued, so commit order follows snapshot order even if the
// persist calls start out of order.
type Saver struct {
	persister Persister
	levelID   string

	tickets   atomic.Uint64
	mu        sync.Mutex
	committed uint64
}

func NewSaver(p Persister, levelID string) *Saver {
	return &Saver{persister: p, levelID: levelID}
}

// SaveFunc performs a queued save.
type SaveFunc func(ctx context.Context) (SaveResult, error)

// Queue snapshots e now and returns the function that persists it. Call
// Queue on the goroutine that owns the editor; the returned function may
// run anywhere.
func (s *Saver) Queue(e *Editor) SaveFunc {
	snapshot := e.Snapshot()
	rev := e.Revision()
	ticket := s.tickets.Add(1)
	return func(ctx context.Context) (SaveResult, error) {
		return s.persist(ctx, ticket, rev, snapshot)
	}
}

// Save queues and persists e's current state in one step.
func (s *Saver) Save(ctx context.Context, e *Editor) (SaveResult, error) {
	return s.Queue(e)(ctx)
}

func (s *Saver) persist(ctx context.Context, ticket, rev uint64, m domain.LevelMap) (SaveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := SaveResult{Ticket: ticket, Revision: rev}
	if ticket < s.committed {
		res.Superseded = true
		return res, nil
	}
	level, err := s.persister.Replace(ctx, s.levelID, m)
	if err != nil {
		return res, fmt.Errorf("saving level map: %w", err)
	}
	s.committed = ticket
	res.Level = level
	return res, nil
}
