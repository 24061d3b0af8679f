package service

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

type IDGenerator interface {
	NewID() string
}

type UUIDGenerator struct{}

func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}

// SequenceGenerator hands out prefix1, prefix2, ... and is safe for concurrent use.
type SequenceGenerator struct {
	Prefix string
	next   atomic.Int64
}

func NewSequenceGenerator(prefix string) *SequenceGenerator {
	return &SequenceGenerator{Prefix: prefix}
}

func (g *SequenceGenerator) NewID() string {
	return g.Prefix + strconv.FormatInt(g.next.Add(1), 10)
}
