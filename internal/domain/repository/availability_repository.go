package repository

import (
	"context"

	"gather/internal/domain/entity"
)

// AvailabilityRepository exposes a user's availability windows.
type AvailabilityRepository interface {
	ListByUser(ctx context.Context, userID int) ([]entity.UserAvailability, error)
}
