package mapeditor

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// IDGenerator produces candidate connection ids. The editor retries until a
// candidate is free, so generators need not track what is taken.
type IDGenerator interface {
	NewID() string
}

// NanoIDGenerator produces "con-" prefixed nanoids.
type NanoIDGenerator struct{}

func (NanoIDGenerator) NewID() string {
	id, err := gonanoid.New(12)
	if err != nil {
		return "con-" + uuid.NewString()
	}
	return "con-" + id
}

// SequenceGenerator yields Prefix1, Prefix2, ... and is meant for tests.
type SequenceGenerator struct {
	Prefix string
	n      atomic.Int64
}

func (g *SequenceGenerator) NewID() string {
	return fmt.Sprintf("%s%d", g.Prefix, g.n.Add(1))
}
