package repository

import (
	"context"

	"gather/internal/domain/entity"
)

// PreferenceRepository persists recurrence preferences and their participant
// lists. Instance generation from a stored preference lives on
// ScheduleRepository since it produces scheduled activities.
type PreferenceRepository interface {
	Create(ctx context.Context, pref entity.UserActivityPreference) (entity.UserActivityPreference, error)
	CreateParticipant(ctx context.Context, participant entity.UserActivityPreferenceParticipant) (entity.UserActivityPreferenceParticipant, error)
}
