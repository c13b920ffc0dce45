// Package repository defines the interfaces for the remote data service.
// These interfaces act as a contract between the domain/application layers
// and the HTTP infrastructure layer; the aggregator depends on them, never on
// the concrete client.
package repository

import (
	"context"
	"errors"

	"gather/internal/domain/entity"
)

// ErrUserNotFound is returned when a single-user lookup resolves nothing.
var ErrUserNotFound = errors.New("user not found")

// UserRepository exposes bulk user lookups. The remote service omits
// unresolved ids from the response rather than signalling per-id errors.
type UserRepository interface {
	// FindByIDs retrieves the users for the given set of ids.
	FindByIDs(ctx context.Context, ids []int) ([]entity.User, error)
}
