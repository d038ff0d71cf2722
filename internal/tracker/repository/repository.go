package repository

import (
	"context"
	"errors"

	"github.com/Gurunath-S/Time-Management-Coach-backend/internal/tracker"
)

// ErrNotFound is returned when a record does not exist or belongs to a
// different owner. The two cases are deliberately indistinguishable so a
// caller cannot probe for records it does not own.
var ErrNotFound = errors.New("record not found")

// Repo is an owner-scoped repository over a single record kind.
// Reads and updates always filter on (id, owner); there is no delete.
type Repo[T tracker.Record] interface {
	Create(ctx context.Context, rec T) error
	ListOwned(ctx context.Context, owner string) ([]T, error)
	GetOwned(ctx context.Context, owner, id string) (T, error)
	UpdateOwned(ctx context.Context, owner, id string, rec T) error
}
