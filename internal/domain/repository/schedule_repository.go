package repository

import (
	"context"
	"time"

	"gather/internal/domain/entity"
)

// CreateScheduleInput describes a batch of concrete occurrences to create for
// one activity: one occurrence per date, all sharing the start/end time of
// day interpreted in the given time zone.
type CreateScheduleInput struct {
	ActivityID int
	Dates      []time.Time
	StartTime  time.Time
	EndTime    time.Time
	TimeZone   *time.Location
}

// ScheduleRepository covers CRUD over scheduled activity instances.
type ScheduleRepository interface {
	// FindByIDs bulk-fetches scheduled activities; unresolved ids are absent
	// from the result.
	FindByIDs(ctx context.Context, ids []int) ([]entity.ScheduledActivity, error)

	// CreateBatch creates one instance per date and returns the server
	// records with assigned ids.
	CreateBatch(ctx context.Context, input CreateScheduleInput) ([]entity.ScheduledActivity, error)

	// Update replaces the full record and returns the stored version.
	Update(ctx context.Context, sa entity.ScheduledActivity) (entity.ScheduledActivity, error)

	// Delete removes the scheduled activity by id.
	Delete(ctx context.Context, id int) error

	// CreateFromPreference asks the service to materialize recurring
	// instances from a stored preference.
	CreateFromPreference(ctx context.Context, preferenceID int, start time.Time, tz *time.Location) ([]entity.ScheduledActivity, error)
}
