package repository

import (
	"context"

	"gather/internal/domain/entity"
)

// ParticipantRepository covers participation/invite records.
type ParticipantRepository interface {
	// ListByUser returns every participation record for one user.
	ListByUser(ctx context.Context, userID int) ([]entity.ActivityParticipant, error)

	// ListByScheduledActivities bulk-fetches the records for a set of
	// scheduled activity ids in one round-trip.
	ListByScheduledActivities(ctx context.Context, scheduledActivityIDs []int) ([]entity.ActivityParticipant, error)

	// Create persists a new participation record.
	Create(ctx context.Context, participant entity.ActivityParticipant) (entity.ActivityParticipant, error)

	// Update replaces the full record, typically to change the invite status.
	Update(ctx context.Context, participant entity.ActivityParticipant) (entity.ActivityParticipant, error)
}
