package impl

import (
	"context"
	"log/slog"
	"time"

	"gather/internal/domain/entity"
	domainerrors "gather/internal/domain/errors"
	"gather/internal/domain/repository"
	"gather/internal/usecase"

	"github.com/pkg/errors"
)

// SaveNewScheduledActivity puts a new activity on the calendar. Location and
// activity are reused from the snapshot when a matching record already
// exists, otherwise created remotely. One occurrence is created per date, a
// participation record is written for every invited user, and when a repeat
// rule is present the generated recurring instances are merged in as well.
// Every new record lands in the snapshot before the call returns.
func (srv *sessionService) SaveNewScheduledActivity(ctx context.Context, input usecase.ScheduleActivityInput) ([]entity.ScheduledActivity, error) {
	currentUser, ok := srv.CurrentUser()
	if !ok {
		return nil, domainerrors.ErrSessionNotLoaded
	}
	if len(input.Dates) == 0 {
		return nil, errors.New("at least one date is required")
	}

	location, err := srv.resolveLocation(ctx, input.Location)
	if err != nil {
		return nil, err
	}

	activity, err := srv.resolveActivity(ctx, input.Activity, location.ID)
	if err != nil {
		return nil, err
	}

	created, err := srv.schedules.CreateBatch(ctx, repository.CreateScheduleInput{
		ActivityID: activity.ID,
		Dates:      input.Dates,
		StartTime:  input.StartTime,
		EndTime:    input.EndTime,
		TimeZone:   input.TimeZone,
	})
	if err != nil {
		return nil, errors.Wrap(err, "create scheduled activities")
	}

	participants, err := srv.createParticipants(ctx, currentUser.ID, created, input.Participants)
	if err != nil {
		return nil, err
	}

	var repeated []entity.ScheduledActivity
	if input.Repeat != nil {
		repeated, err = srv.registerRepeat(ctx, currentUser.ID, activity.ID, input)
		if err != nil {
			return nil, err
		}
	}

	srv.mu.Lock()
	srv.addLocationLocked(location)
	srv.addActivityLocked(activity)
	for _, sa := range created {
		srv.addScheduledActivityLocked(sa)
	}
	for _, sa := range repeated {
		srv.addScheduledActivityLocked(sa)
	}
	for _, p := range participants {
		srv.addParticipantLocked(p)
	}
	srv.mu.Unlock()

	return append(created, repeated...), nil
}

// resolveLocation reuses a snapshot location describing the same place, or
// creates the record remotely.
func (srv *sessionService) resolveLocation(ctx context.Context, loc entity.Location) (entity.Location, error) {
	srv.mu.RLock()
	for _, existing := range srv.state.locations {
		if existing.SamePlace(loc) {
			srv.mu.RUnlock()

			return existing, nil
		}
	}
	srv.mu.RUnlock()

	created, err := srv.locations.Create(ctx, loc)
	if err != nil {
		return entity.Location{}, errors.Wrap(err, "create location")
	}

	return created, nil
}

// resolveActivity reuses a snapshot activity with the same name and
// description, or creates the record remotely bound to the location.
func (srv *sessionService) resolveActivity(ctx context.Context, a entity.Activity, locationID int) (entity.Activity, error) {
	srv.mu.RLock()
	for _, existing := range srv.state.activities {
		if existing.SameActivity(a) {
			srv.mu.RUnlock()

			return existing, nil
		}
	}
	srv.mu.RUnlock()

	a.LocationID = &locationID
	a.UserCreated = true
	created, err := srv.activities.Create(ctx, a)
	if err != nil {
		return entity.Activity{}, errors.Wrap(err, "create activity")
	}

	return created, nil
}

// createParticipants writes one participation record per occurrence and
// invited user. The scheduling user is Accepted on their own event; everyone
// else starts Pending.
func (srv *sessionService) createParticipants(ctx context.Context, currentUserID int, created []entity.ScheduledActivity, invited []entity.User) ([]entity.ActivityParticipant, error) {
	userIDs := []int{currentUserID}
	for _, u := range invited {
		if u.ID == currentUserID {
			continue
		}
		userIDs = append(userIDs, u.ID)
	}

	participants := make([]entity.ActivityParticipant, 0, len(created)*len(userIDs))
	for _, sa := range created {
		for _, userID := range userIDs {
			status := entity.InviteStatusPending
			if userID == currentUserID {
				status = entity.InviteStatusAccepted
			}
			record, err := srv.participants.Create(ctx, entity.ActivityParticipant{
				UserID:              userID,
				ScheduledActivityID: sa.ID,
				InviteStatus:        status,
			})
			if err != nil {
				return nil, errors.Wrapf(err, "create participant for user %d on scheduled activity %d", userID, sa.ID)
			}
			participants = append(participants, record)
		}
	}

	return participants, nil
}

// registerRepeat persists the recurrence preference with its participant
// list and asks the service to materialize the recurring instances.
func (srv *sessionService) registerRepeat(ctx context.Context, currentUserID, activityID int, input usecase.ScheduleActivityInput) ([]entity.ScheduledActivity, error) {
	pref, err := srv.preferences.Create(ctx, entity.UserActivityPreference{
		UserID:          currentUserID,
		ActivityID:      activityID,
		Frequency:       input.Repeat.Frequency,
		FrequencyPeriod: input.Repeat.Period,
		DaysOfWeek:      entity.JoinDayNumbers(input.Repeat.Days),
	})
	if err != nil {
		return nil, errors.Wrap(err, "create recurrence preference")
	}

	for _, u := range input.Participants {
		if u.ID == currentUserID {
			continue
		}
		if _, err := srv.preferences.CreateParticipant(ctx, entity.UserActivityPreferenceParticipant{
			UserActivityPreferenceID: pref.ID,
			UserID:                   u.ID,
		}); err != nil {
			return nil, errors.Wrapf(err, "create preference participant for user %d", u.ID)
		}
	}

	generated, err := srv.schedules.CreateFromPreference(ctx, pref.ID, input.StartTime, input.TimeZone)
	if err != nil {
		return nil, errors.Wrap(err, "generate recurring instances")
	}

	return generated, nil
}

// CancelScheduledActivity deletes the occurrence remotely, then removes
// exactly that occurrence and its participant records from the snapshot.
func (srv *sessionService) CancelScheduledActivity(ctx context.Context, scheduledActivityID int) error {
	if !srv.hasScheduledActivity(scheduledActivityID) {
		return domainerrors.ErrScheduledActivityNotFound
	}

	if err := srv.schedules.Delete(ctx, scheduledActivityID); err != nil {
		return errors.Wrapf(err, "delete scheduled activity %d", scheduledActivityID)
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	kept := srv.state.schedule[:0]
	for _, sa := range srv.state.schedule {
		if sa.ID != scheduledActivityID {
			kept = append(kept, sa)
		}
	}
	srv.state.schedule = kept
	delete(srv.state.participantsBySA, scheduledActivityID)

	remaining := srv.state.invites[:0]
	for _, invite := range srv.state.invites {
		if invite.ID() != scheduledActivityID {
			remaining = append(remaining, invite)
		}
	}
	srv.state.invites = remaining

	return nil
}

// RescheduleScheduledActivity moves one occurrence to a new time. Only
// ScheduledAt changes; every other field is sent back unchanged, and the
// schedule ordering is restored afterwards.
func (srv *sessionService) RescheduleScheduledActivity(ctx context.Context, scheduledActivityID int, newDate time.Time) (entity.ScheduledActivity, error) {
	srv.mu.RLock()
	var current *entity.ScheduledActivity
	for i := range srv.state.schedule {
		if srv.state.schedule[i].ID == scheduledActivityID {
			sa := srv.state.schedule[i]
			current = &sa

			break
		}
	}
	srv.mu.RUnlock()

	if current == nil {
		return entity.ScheduledActivity{}, domainerrors.ErrScheduledActivityNotFound
	}

	moved := *current
	moved.ScheduledAt = newDate

	updated, err := srv.schedules.Update(ctx, moved)
	if err != nil {
		return entity.ScheduledActivity{}, errors.Wrapf(err, "reschedule scheduled activity %d", scheduledActivityID)
	}

	srv.mu.Lock()
	for i := range srv.state.schedule {
		if srv.state.schedule[i].ID == scheduledActivityID {
			srv.state.schedule[i] = updated

			break
		}
	}
	entity.SortSchedule(srv.state.schedule)
	srv.mu.Unlock()

	return updated, nil
}

// RespondToInvite accepts or declines a pending invite. The invite is
// removed from the projection either way; a missing underlying participation
// record is logged and treated as already resolved.
func (srv *sessionService) RespondToInvite(ctx context.Context, scheduledActivityID int, status entity.InviteStatus) error {
	if !status.Is(entity.InviteStatusAccepted) && !status.Is(entity.InviteStatusDeclined) {
		return domainerrors.ErrInvalidInviteStatus
	}

	srv.mu.RLock()
	var invite *entity.Invite
	for i := range srv.state.invites {
		if srv.state.invites[i].ID() == scheduledActivityID {
			found := srv.state.invites[i]
			invite = &found

			break
		}
	}
	srv.mu.RUnlock()

	if invite == nil {
		return domainerrors.ErrInviteNotFound
	}

	record := invite.Participant
	if record.ID == 0 {
		srv.logger.Warn("invite has no participation record, skipping update",
			slog.Int("scheduledActivityID", scheduledActivityID))
		srv.removeInvite(scheduledActivityID)

		return nil
	}

	record.InviteStatus = status
	updated, err := srv.participants.Update(ctx, record)
	if err != nil {
		return errors.Wrapf(err, "update invite status on scheduled activity %d", scheduledActivityID)
	}

	srv.mu.Lock()
	group := srv.state.participantsBySA[scheduledActivityID]
	for i := range group {
		if group[i].ID == updated.ID {
			group[i] = updated

			break
		}
	}
	if status.Is(entity.InviteStatusAccepted) {
		srv.addScheduledActivityLocked(invite.ScheduledActivity)
	}
	srv.mu.Unlock()

	srv.removeInvite(scheduledActivityID)

	return nil
}

func (srv *sessionService) removeInvite(scheduledActivityID int) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	kept := srv.state.invites[:0]
	for _, invite := range srv.state.invites {
		if invite.ID() != scheduledActivityID {
			kept = append(kept, invite)
		}
	}
	srv.state.invites = kept
}

func (srv *sessionService) hasScheduledActivity(id int) bool {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	for _, sa := range srv.state.schedule {
		if sa.ID == id {
			return true
		}
	}

	return false
}
