// Package identgen issues stable identifiers for resume entries. The
// allocator is injected everywhere ids are minted so tests can substitute a
// deterministic sequence.
package identgen

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

type Allocator interface {
	// Allocate returns a fresh id. Safe to call repeatedly within one import
	// batch; returned values never collide within a document's lifetime.
	Allocate() string
}

// UUID allocates random UUIDv4 strings.
type UUID struct{}

func NewUUID() UUID { return UUID{} }

func (UUID) Allocate() string { return uuid.NewString() }

// Sequential allocates "id-1", "id-2", ... for deterministic tests.
type Sequential struct {
	n atomic.Int64
}

func NewSequential() *Sequential { return &Sequential{} }

func (s *Sequential) Allocate() string {
	return fmt.Sprintf("id-%d", s.n.Add(1))
}
