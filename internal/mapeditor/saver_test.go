package mapeditor

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/alexanderramin/swimadmin/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePersister struct {
	mu      sync.Mutex
	stored  map[string]domain.LevelMap
	history []domain.LevelMap
	calls   int
	failErr error
}

func newFakePersister() *fakePersister {
	return &fakePersister{stored: map[string]domain.LevelMap{}}
}

func (f *fakePersister) Replace(_ context.Context, levelID string, m domain.LevelMap) (*domain.Level, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.failErr != nil {
		return nil, f.failErr
	}
	f.stored[levelID] = m.Clone()
	f.history = append(f.history, m.Clone())
	return &domain.Level{ID: levelID}, nil
}

func TestSaver_RoundTripThroughPersister(t *testing.T) {
	e := twoNodeEditor(t)
	require.True(t, e.BeginConnect("a"))
	_, ok := e.EndInteraction("b")
	require.True(t, ok)

	p := newFakePersister()
	res, err := NewSaver(p, "l1").Save(context.Background(), e)
	require.NoError(t, err)
	assert.False(t, res.Superseded)
	assert.Equal(t, "l1", res.Level.ID)
	e.MarkSaved(res.Revision)
	assert.False(t, e.Dirty())

	stored := p.stored["l1"]
	reopened := Open("l1", &stored, nil)
	assert.Equal(t, e.Snapshot(), reopened.Snapshot())
}

func TestSaver_OlderSnapshotNeverOverwritesNewer(t *testing.T) {
	e := twoNodeEditor(t)
	p := newFakePersister()
	s := NewSaver(p, "l1")
	ctx := context.Background()

	older := s.Queue(e)

	require.True(t, e.BeginDrag("a", pt(0, 0)))
	e.ContinueDrag(pt(40, 40))
	e.Leave()
	newer := s.Queue(e)

	res, err := newer(ctx)
	require.NoError(t, err)
	assert.False(t, res.Superseded)

	res, err = older(ctx)
	require.NoError(t, err)
	assert.True(t, res.Superseded)
	assert.Equal(t, 1, p.calls, "superseded save never reaches the store")
	assert.Equal(t, 40.0, p.stored["l1"].Nodes[0].X)
}

func TestSaver_ConcurrentSavesCommitInTicketOrder(t *testing.T) {
	e := twoNodeEditor(t)
	p := newFakePersister()
	s := NewSaver(p, "l1")

	var saves []SaveFunc
	for i := 0; i < 10; i++ {
		n, ok := e.Node("a")
		require.True(t, ok)
		require.True(t, e.BeginDrag("a", n.Origin()))
		e.ContinueDrag(pt(float64(i), 0))
		e.Leave()
		saves = append(saves, s.Queue(e))
	}

	results := make([]SaveResult, len(saves))
	var wg sync.WaitGroup
	for i := len(saves) - 1; i >= 0; i-- {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			res, err := saves[i](context.Background())
			assert.NoError(t, err)
			results[i] = res
		}(i)
	}
	wg.Wait()

	last := results[len(results)-1]
	assert.False(t, last.Superseded, "the newest ticket is never superseded")
	assert.Equal(t, 9.0, p.stored["l1"].Nodes[0].X)

	committed := 0
	for _, res := range results {
		if !res.Superseded {
			committed++
		}
	}
	assert.Equal(t, p.calls, committed, "only committed saves reach the store")

	// Commits only ever move forward in snapshot order.
	for i := 1; i < len(p.history); i++ {
		assert.Greater(t, p.history[i].Nodes[0].X, p.history[i-1].Nodes[0].X)
	}
}

func TestSaver_FailureKeepsEditsAndAllowsRetry(t *testing.T) {
	e := twoNodeEditor(t)
	require.True(t, e.BeginConnect("a"))
	e.EndInteraction("b")

	p := newFakePersister()
	p.failErr = errors.New("disk on fire")
	s := NewSaver(p, "l1")

	_, err := s.Save(context.Background(), e)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk on fire")
	assert.True(t, e.Dirty())
	assert.Len(t, e.Connections(), 1)

	p.failErr = nil
	res, err := s.Save(context.Background(), e)
	require.NoError(t, err)
	assert.False(t, res.Superseded)
	assert.Len(t, p.stored["l1"].Connections, 1)
}
