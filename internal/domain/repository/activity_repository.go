package repository

import (
	"context"

	"gather/internal/domain/entity"
)

// ActivityRepository covers lookups and creation of activity templates.
type ActivityRepository interface {
	FindByIDs(ctx context.Context, ids []int) ([]entity.Activity, error)

	// ListCatalog returns the full shared activity catalog.
	ListCatalog(ctx context.Context) ([]entity.Activity, error)

	// Create persists a new template and returns the server record.
	Create(ctx context.Context, activity entity.Activity) (entity.Activity, error)
}
