package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/alexanderramin/swimadmin/internal/domain"
	"github.com/google/uuid"
)

var testOrderCounter atomic.Int64

func nextOrder() int {
	return int(testOrderCounter.Add(1))
}

// Program options
type ProgramOption func(*domain.Program)

func WithInstructors(names ...string) ProgramOption {
	return func(p *domain.Program) {
		p.Instructors = names
	}
}

func WithStudentCount(n int) ProgramOption {
	return func(p *domain.Program) {
		p.StudentCount = n
	}
}

func WithLogo(logo string) ProgramOption {
	return func(p *domain.Program) {
		p.Logo = logo
	}
}

func NewTestProgram(name string, opts ...ProgramOption) *domain.Program {
	now := time.Now().UTC()
	p := &domain.Program{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Level options
type LevelOption func(*domain.Level)

func WithLevelOrder(i int) LevelOption {
	return func(l *domain.Level) {
		l.Order = i
	}
}

func WithLevelDescription(d string) LevelOption {
	return func(l *domain.Level) {
		l.Description = d
	}
}

func NewTestLevel(programID, name string, opts ...LevelOption) *domain.Level {
	now := time.Now().UTC()
	l := &domain.Level{
		ID:        uuid.New().String(),
		ProgramID: programID,
		Name:      name,
		Order:     nextOrder(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Skill options
type SkillOption func(*domain.Skill)

func WithSkillOrder(i int) SkillOption {
	return func(s *domain.Skill) {
		s.Order = i
	}
}

func WithSkillDescription(d string) SkillOption {
	return func(s *domain.Skill) {
		s.Description = d
	}
}

func NewTestSkill(levelID, name string, opts ...SkillOption) *domain.Skill {
	now := time.Now().UTC()
	s := &domain.Skill{
		ID:        uuid.New().String(),
		LevelID:   levelID,
		Name:      name,
		Order:     nextOrder(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Progress options
type ProgressOption func(*domain.Progress)

func WithPointValue(v int) ProgressOption {
	return func(p *domain.Progress) {
		p.PointValue = v
	}
}

func WithProgressOrder(i int) ProgressOption {
	return func(p *domain.Progress) {
		p.Order = i
	}
}

func NewTestProgress(skillID, name string, opts ...ProgressOption) *domain.Progress {
	now := time.Now().UTC()
	p := &domain.Progress{
		ID:         uuid.New().String(),
		SkillID:    skillID,
		Name:       name,
		PointValue: 5,
		Order:      nextOrder(),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// NewTestNode places skillID on a map at (x, y) with the default node size.
func NewTestNode(id, skillID string, x, y float64) domain.MapNode {
	return domain.MapNode{
		ID:      id,
		SkillID: skillID,
		Rect:    domain.Rect{X: x, Y: y, Width: 150, Height: 80},
	}
}

// NewTestChainMap lays the skills out left to right and links each node to
// the next one.
func NewTestChainMap(skillIDs ...string) domain.LevelMap {
	m := domain.LevelMap{
		Nodes:       []domain.MapNode{},
		Connections: []domain.Connection{},
	}
	for i, id := range skillIDs {
		m.Nodes = append(m.Nodes, NewTestNode(fmt.Sprintf("n%d", i+1), id, float64(50+i*200), 50))
		if i > 0 {
			m.Connections = append(m.Connections, domain.Connection{
				ID:       fmt.Sprintf("c%d", i),
				SourceID: fmt.Sprintf("n%d", i),
				TargetID: fmt.Sprintf("n%d", i+1),
			})
		}
	}
	return m
}
