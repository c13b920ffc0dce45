// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"gather/internal/domain/entity"
)

// --- Input DTOs ---

// RepeatInput describes the recurrence rule for a repeating schedule. A nil
// RepeatInput on ScheduleActivityInput means a one-off schedule.
type RepeatInput struct {
	Frequency int    // Every N periods.
	Period    string // "day", "week" or "month".
	Days      []int  // Weekday numbers for weekly rules.
}

// ScheduleActivityInput carries everything needed to put a new activity on
// the calendar: the place, the activity template, the concrete dates, the
// time window, and who is invited.
type ScheduleActivityInput struct {
	Location     entity.Location
	Activity     entity.Activity
	Dates        []time.Time
	StartTime    time.Time
	EndTime      time.Time
	TimeZone     *time.Location
	Participants []entity.User
	Repeat       *RepeatInput
}

// AgendaEntry is one schedule row joined with its resolved activity and
// location for display.
type AgendaEntry struct {
	ScheduledActivity entity.ScheduledActivity
	Activity          entity.Activity
	Location          *entity.Location
	Participants      []entity.ActivityParticipant
}

// FreeWindow is a concrete dated stretch of free time derived from the
// user's availability rules.
type FreeWindow struct {
	Start time.Time
	End   time.Time
}

// SessionUsecase is the session data aggregator: it owns the authoritative
// in-memory snapshot of the current user's social/schedule state, keeps it
// consistent after mutations, and exposes read accessors over it.
type SessionUsecase interface {
	// LoadInitialData populates the snapshot for one user: the user record,
	// then concurrently the friend list, the schedule with its related
	// records, and the availability windows. A failing branch is logged and
	// skipped without failing its siblings.
	LoadInitialData(ctx context.Context, userID int) error

	// Reload re-runs LoadInitialData for the already-loaded session user.
	Reload(ctx context.Context) error

	// IsLoading reports whether an initial load is in flight.
	IsLoading() bool

	// FetchUser returns the user by id through the TTL cache. Concurrent
	// lookups for the same id share one remote call.
	FetchUser(ctx context.Context, id int) (entity.User, error)

	// ActivityCatalog fetches the shared activity catalog.
	ActivityCatalog(ctx context.Context) ([]entity.Activity, error)

	// Snapshot accessors. All return copies; an empty result means the data
	// is absent, not an error.
	CurrentUser() (entity.User, bool)
	Friends() []entity.User
	ScheduledActivities() []entity.ScheduledActivity
	Activities() []entity.Activity
	Locations() []entity.Location
	Availability() []entity.UserAvailability
	Invites() []entity.Invite
	ActivityParticipants(scheduledActivityID int) []entity.ActivityParticipant
	ActivityByID(id int) (entity.Activity, bool)
	LocationByID(id int) (entity.Location, bool)

	// SaveNewScheduledActivity resolves (or creates) the location and the
	// activity, instantiates one occurrence per date, writes participant
	// records, and optionally registers a recurrence preference whose
	// generated instances are merged into the snapshot.
	SaveNewScheduledActivity(ctx context.Context, input ScheduleActivityInput) ([]entity.ScheduledActivity, error)

	// CancelScheduledActivity deletes the occurrence remotely, then removes
	// it and its participant records from the snapshot.
	CancelScheduledActivity(ctx context.Context, scheduledActivityID int) error

	// RescheduleScheduledActivity moves one occurrence to a new time. Only
	// ScheduledAt changes; the schedule is re-sorted afterwards.
	RescheduleScheduledActivity(ctx context.Context, scheduledActivityID int, newDate time.Time) (entity.ScheduledActivity, error)

	// RespondToInvite accepts or declines a pending invite identified by its
	// scheduled activity id.
	RespondToInvite(ctx context.Context, scheduledActivityID int, status entity.InviteStatus) error
}
