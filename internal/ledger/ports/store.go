package ports

import (
	"context"
	"errors"

	"github.com/dejobratic/ledger/internal/ledger/domain"
)

// Store abstracts the persisted ledger. The collection is read and written
// wholesale: Load returns everything, Save replaces everything. Backends must
// never expose a partially written collection to a subsequent Load.
type Store interface {
	Load(ctx context.Context) (domain.Collection, error)
	Save(ctx context.Context, col domain.Collection) error
}

var (
	// ErrOrderNotFound is returned when a status update targets an id that
	// does not exist in the ledger.
	ErrOrderNotFound = errors.New("order not found")
	// ErrUnauthorized is returned when the supplied admin credential does not
	// match the configured one.
	ErrUnauthorized = errors.New("unauthorized: invalid admin credential")
)
