// Package idprovider generates the opaque identifiers continuation points
// are named by. It mirrors the id-provider pattern absmach-magistrala's
// *_test.go files lean on (uuid.New() / uuid.NewMock() call sites): a
// real, random implementation for production and a deterministic one for
// tests that need stable ids.
package idprovider

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Provider hands out 16-byte identifiers. Implementations must return
// identifiers that are unique for the lifetime of whatever owns them.
type Provider interface {
	ID() ([16]byte, error)
}

type randomProvider struct{}

// New returns a Provider backed by a cryptographically random UUID
// generator. A UUID's bytes already have the 16-byte shape continuation
// point identifiers need, and this package never inspects version/variant
// bits.
func New() Provider {
	return randomProvider{}
}

func (randomProvider) ID() ([16]byte, error) {
	u, err := uuid.NewRandom()
	if err != nil {
		return [16]byte{}, errors.Wrap(err, "generating continuation point identifier")
	}
	return [16]byte(u), nil
}

// mockProvider returns sequential, predictable ids for tests that need to
// assert on continuation-point identity without caring about randomness.
type mockProvider struct {
	next uint64
}

// NewMock returns a Provider that counts up from 1, byte-packed into the
// low 8 bytes of the identifier. Two mock providers never collide with a
// randomProvider's output because the high 8 bytes stay zero, which
// uuid.NewRandom() essentially never produces.
func NewMock() Provider {
	return &mockProvider{}
}

func (m *mockProvider) ID() ([16]byte, error) {
	m.next++
	var id [16]byte
	n := m.next
	for i := 15; i >= 8; i-- {
		id[i] = byte(n)
		n >>= 8
	}
	return id, nil
}
