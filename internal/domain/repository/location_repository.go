package repository

import (
	"context"

	"gather/internal/domain/entity"
)

// LocationRepository covers lookups and creation of locations.
type LocationRepository interface {
	FindByIDs(ctx context.Context, ids []int) ([]entity.Location, error)
	Create(ctx context.Context, location entity.Location) (entity.Location, error)
}
