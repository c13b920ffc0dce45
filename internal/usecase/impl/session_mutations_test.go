package impl

import (
	"context"
	"testing"
	"time"

	"gather/internal/domain/entity"
	domainerrors "gather/internal/domain/errors"
	"gather/internal/domain/repository"
	"gather/internal/testfixtures"
	"gather/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// seedSnapshot installs a loaded session state without going through the
// remote layer.
func seedSnapshot(service *sessionService, state sessionState) {
	service.mu.Lock()
	defer service.mu.Unlock()

	if state.participantsBySA == nil {
		state.participantsBySA = make(map[int][]entity.ActivityParticipant)
	}
	if state.participantUsers == nil {
		state.participantUsers = make(map[int]entity.User)
	}
	service.state = state
}

func TestSessionService_SaveNewScheduledActivity_Success(t *testing.T) {
	service, mocks := newSessionService(t)
	ctx := context.Background()
	base := testfixtures.ReferenceTime()

	me := entity.User{ID: 3, Name: "Sam"}
	existingLocation := entity.Location{ID: 31, Name: "Downtown", Address: "1 Main St"}
	seedSnapshot(service, sessionState{
		currentUser: &me,
		locations:   []entity.Location{existingLocation},
	})

	// The location matches an existing record, so only the activity is
	// created remotely.
	mocks.activities.EXPECT().
		Create(ctx, mock.MatchedBy(func(a entity.Activity) bool {
			return a.Name == "Climbing" && a.LocationID != nil && *a.LocationID == 31 && a.UserCreated
		})).
		Return(entity.Activity{ID: 21, Name: "Climbing", LocationID: intPtr(31), UserCreated: true}, nil)

	// The server may hand back ids out of order relative to the dates.
	mocks.schedules.EXPECT().
		CreateBatch(ctx, mock.MatchedBy(func(input repository.CreateScheduleInput) bool {
			return input.ActivityID == 21 && len(input.Dates) == 2
		})).
		Return([]entity.ScheduledActivity{
			{ID: 11, ActivityID: 21, ScheduledAt: base.Add(48 * time.Hour), IsActive: true},
			{ID: 10, ActivityID: 21, ScheduledAt: base.Add(24 * time.Hour), IsActive: true},
		}, nil)

	// One record per occurrence and user: the scheduler is Accepted, the
	// invited friend starts Pending.
	var participantID int
	mocks.participants.EXPECT().
		Create(ctx, mock.Anything).
		RunAndReturn(func(ctx context.Context, p entity.ActivityParticipant) (entity.ActivityParticipant, error) {
			if p.UserID == 3 {
				assert.True(t, p.InviteStatus.Is(entity.InviteStatusAccepted))
			} else {
				assert.True(t, p.InviteStatus.Is(entity.InviteStatusPending))
			}
			participantID++
			p.ID = participantID

			return p, nil
		}).
		Times(4)

	created, err := service.SaveNewScheduledActivity(ctx, usecase.ScheduleActivityInput{
		Location:     entity.Location{Name: "Downtown", Address: "1 Main St"},
		Activity:     entity.Activity{Name: "Climbing"},
		Dates:        []time.Time{base.Add(24 * time.Hour), base.Add(48 * time.Hour)},
		StartTime:    base,
		EndTime:      base.Add(time.Hour),
		TimeZone:     time.UTC,
		Participants: []entity.User{{ID: 7}},
	})

	require.NoError(t, err)
	// The returned slice preserves the server's creation order.
	require.Len(t, created, 2)
	assert.Equal(t, 11, created[0].ID)
	assert.Equal(t, 10, created[1].ID)

	// The snapshot re-sorts by time regardless of id order.
	schedule := service.ScheduledActivities()
	require.Len(t, schedule, 2)
	assert.Equal(t, 10, schedule[0].ID)
	assert.Equal(t, 11, schedule[1].ID)

	assert.Len(t, service.ActivityParticipants(10), 2)
	assert.Len(t, service.ActivityParticipants(11), 2)

	// The reused location is not duplicated.
	assert.Len(t, service.Locations(), 1)
	_, ok := service.ActivityByID(21)
	assert.True(t, ok)
}

func TestSessionService_SaveNewScheduledActivity_WithRepeat(t *testing.T) {
	service, mocks := newSessionService(t)
	ctx := context.Background()
	base := testfixtures.ReferenceTime()

	me := entity.User{ID: 3}
	seedSnapshot(service, sessionState{
		currentUser: &me,
		locations:   []entity.Location{{ID: 31, Name: "Park", Address: "2 Elm St"}},
		activities:  []entity.Activity{{ID: 21, Name: "Run", LocationID: intPtr(31)}},
	})

	mocks.schedules.EXPECT().
		CreateBatch(ctx, mock.Anything).
		Return([]entity.ScheduledActivity{
			{ID: 10, ActivityID: 21, ScheduledAt: base.Add(24 * time.Hour)},
		}, nil)
	mocks.participants.EXPECT().
		Create(ctx, mock.Anything).
		RunAndReturn(func(ctx context.Context, p entity.ActivityParticipant) (entity.ActivityParticipant, error) {
			p.ID = 100 + p.UserID

			return p, nil
		}).
		Times(2)

	mocks.preferences.EXPECT().
		Create(ctx, mock.MatchedBy(func(pref entity.UserActivityPreference) bool {
			return pref.UserID == 3 && pref.ActivityID == 21 &&
				pref.Frequency == 1 && pref.FrequencyPeriod == "week" &&
				pref.DaysOfWeek == "1,3"
		})).
		Return(entity.UserActivityPreference{ID: 41, UserID: 3, ActivityID: 21}, nil)
	mocks.preferences.EXPECT().
		CreateParticipant(ctx, mock.MatchedBy(func(p entity.UserActivityPreferenceParticipant) bool {
			return p.UserActivityPreferenceID == 41 && p.UserID == 7
		})).
		Return(entity.UserActivityPreferenceParticipant{ID: 51}, nil)
	mocks.schedules.EXPECT().
		CreateFromPreference(ctx, 41, base, time.UTC).
		Return([]entity.ScheduledActivity{
			{ID: 12, ActivityID: 21, ScheduledAt: base.Add(8 * 24 * time.Hour)},
		}, nil)

	created, err := service.SaveNewScheduledActivity(ctx, usecase.ScheduleActivityInput{
		Location:     entity.Location{Name: "Park", Address: "2 Elm St"},
		Activity:     entity.Activity{Name: "Run"},
		Dates:        []time.Time{base.Add(24 * time.Hour)},
		StartTime:    base,
		EndTime:      base.Add(time.Hour),
		TimeZone:     time.UTC,
		Participants: []entity.User{{ID: 7}},
		Repeat: &usecase.RepeatInput{
			Frequency: 1,
			Period:    "week",
			Days:      []int{1, 3},
		},
	})

	require.NoError(t, err)
	assert.Len(t, created, 2)
	assert.Len(t, service.ScheduledActivities(), 2)
}

func TestSessionService_SaveNewScheduledActivity_NotLoaded(t *testing.T) {
	service, _ := newSessionService(t)

	_, err := service.SaveNewScheduledActivity(context.Background(), usecase.ScheduleActivityInput{
		Dates: []time.Time{testfixtures.ReferenceTime()},
	})

	require.ErrorIs(t, err, domainerrors.ErrSessionNotLoaded)
}

func TestSessionService_CancelScheduledActivity_RemovesExactly(t *testing.T) {
	service, mocks := newSessionService(t)
	ctx := context.Background()
	base := testfixtures.ReferenceTime()

	me := entity.User{ID: 3}
	seedSnapshot(service, sessionState{
		currentUser: &me,
		schedule: []entity.ScheduledActivity{
			{ID: 10, ScheduledAt: base},
			{ID: 11, ScheduledAt: base.Add(time.Hour)},
		},
		participantsBySA: map[int][]entity.ActivityParticipant{
			10: {{ID: 101, UserID: 3, ScheduledActivityID: 10}},
			11: {{ID: 102, UserID: 3, ScheduledActivityID: 11}},
		},
	})

	mocks.schedules.EXPECT().Delete(ctx, 10).Return(nil)

	err := service.CancelScheduledActivity(ctx, 10)

	require.NoError(t, err)
	schedule := service.ScheduledActivities()
	require.Len(t, schedule, 1)
	assert.Equal(t, 11, schedule[0].ID)
	assert.Empty(t, service.ActivityParticipants(10))
	assert.Len(t, service.ActivityParticipants(11), 1)
}

func TestSessionService_CancelScheduledActivity_NotFound(t *testing.T) {
	service, _ := newSessionService(t)
	seedSnapshot(service, sessionState{currentUser: &entity.User{ID: 3}})

	err := service.CancelScheduledActivity(context.Background(), 99)

	require.ErrorIs(t, err, domainerrors.ErrScheduledActivityNotFound)
}

func TestSessionService_CancelScheduledActivity_RemoteFailureKeepsState(t *testing.T) {
	service, mocks := newSessionService(t)
	ctx := context.Background()

	seedSnapshot(service, sessionState{
		currentUser: &entity.User{ID: 3},
		schedule:    []entity.ScheduledActivity{{ID: 10}},
	})

	mocks.schedules.EXPECT().Delete(ctx, 10).Return(errors.New("remote down"))

	err := service.CancelScheduledActivity(ctx, 10)

	require.Error(t, err)
	assert.Len(t, service.ScheduledActivities(), 1)
}

func TestSessionService_RescheduleScheduledActivity_OnlyMovesTime(t *testing.T) {
	service, mocks := newSessionService(t)
	ctx := context.Background()
	base := testfixtures.ReferenceTime()

	seedSnapshot(service, sessionState{
		currentUser: &entity.User{ID: 3},
		schedule: []entity.ScheduledActivity{
			{ID: 10, ActivityID: 20, ScheduledAt: base, IsActive: true},
			{ID: 11, ActivityID: 21, ScheduledAt: base.Add(time.Hour), IsActive: true},
		},
	})

	newDate := base.Add(-2 * time.Hour)
	mocks.schedules.EXPECT().
		Update(ctx, entity.ScheduledActivity{ID: 11, ActivityID: 21, ScheduledAt: newDate, IsActive: true}).
		Return(entity.ScheduledActivity{ID: 11, ActivityID: 21, ScheduledAt: newDate, IsActive: true}, nil)

	updated, err := service.RescheduleScheduledActivity(ctx, 11, newDate)

	require.NoError(t, err)
	assert.Equal(t, newDate, updated.ScheduledAt)
	assert.Equal(t, 21, updated.ActivityID)

	// The moved occurrence now sorts to the front.
	schedule := service.ScheduledActivities()
	require.Len(t, schedule, 2)
	assert.Equal(t, 11, schedule[0].ID)
	assert.Equal(t, 10, schedule[1].ID)
}

func TestSessionService_RescheduleScheduledActivity_NotFound(t *testing.T) {
	service, _ := newSessionService(t)
	seedSnapshot(service, sessionState{currentUser: &entity.User{ID: 3}})

	_, err := service.RescheduleScheduledActivity(context.Background(), 99, testfixtures.ReferenceTime())

	require.ErrorIs(t, err, domainerrors.ErrScheduledActivityNotFound)
}

func inviteFixture(base time.Time) (sessionState, entity.Invite) {
	sa := entity.ScheduledActivity{ID: 11, ActivityID: 21, ScheduledAt: base, IsActive: true}
	own := entity.ActivityParticipant{ID: 102, UserID: 3, ScheduledActivityID: 11, InviteStatus: entity.InviteStatusPending}
	invite := entity.Invite{
		ScheduledActivity: sa,
		Activity:          entity.Activity{ID: 21, Name: "Climbing", LocationID: intPtr(31)},
		Location:          entity.Location{ID: 31, Name: "Downtown"},
		Participant:       own,
		Participants:      []entity.ActivityParticipant{own},
	}

	state := sessionState{
		currentUser: &entity.User{ID: 3},
		schedule:    []entity.ScheduledActivity{sa},
		participantsBySA: map[int][]entity.ActivityParticipant{
			11: {own},
		},
		invites: []entity.Invite{invite},
	}

	return state, invite
}

func TestSessionService_RespondToInvite_Accept(t *testing.T) {
	service, mocks := newSessionService(t)
	ctx := context.Background()
	state, invite := inviteFixture(testfixtures.ReferenceTime())
	seedSnapshot(service, state)

	updated := invite.Participant
	updated.InviteStatus = entity.InviteStatusAccepted
	mocks.participants.EXPECT().Update(ctx, updated).Return(updated, nil)

	err := service.RespondToInvite(ctx, 11, entity.InviteStatusAccepted)

	require.NoError(t, err)
	assert.Empty(t, service.Invites())

	group := service.ActivityParticipants(11)
	require.Len(t, group, 1)
	assert.True(t, group[0].InviteStatus.Is(entity.InviteStatusAccepted))
}

func TestSessionService_RespondToInvite_AcceptInsertsIntoSchedule(t *testing.T) {
	service, mocks := newSessionService(t)
	ctx := context.Background()
	base := testfixtures.ReferenceTime()
	state, invite := inviteFixture(base)

	// The invited occurrence is not in the visible schedule yet; a later
	// one is, so the insert position is observable.
	later := entity.ScheduledActivity{ID: 12, ActivityID: 20, ScheduledAt: base.Add(2 * time.Hour), IsActive: true}
	state.schedule = []entity.ScheduledActivity{later}
	seedSnapshot(service, state)

	updated := invite.Participant
	updated.InviteStatus = entity.InviteStatusAccepted
	mocks.participants.EXPECT().Update(ctx, updated).Return(updated, nil)

	err := service.RespondToInvite(ctx, 11, entity.InviteStatusAccepted)

	require.NoError(t, err)
	schedule := service.ScheduledActivities()
	require.Len(t, schedule, 2)
	assert.Equal(t, 11, schedule[0].ID)
	assert.Equal(t, 12, schedule[1].ID)
}

func TestSessionService_RespondToInvite_Decline(t *testing.T) {
	service, mocks := newSessionService(t)
	ctx := context.Background()
	state, invite := inviteFixture(testfixtures.ReferenceTime())
	seedSnapshot(service, state)

	updated := invite.Participant
	updated.InviteStatus = entity.InviteStatusDeclined
	mocks.participants.EXPECT().Update(ctx, updated).Return(updated, nil)

	err := service.RespondToInvite(ctx, 11, entity.InviteStatusDeclined)

	require.NoError(t, err)
	assert.Empty(t, service.Invites())
}

func TestSessionService_RespondToInvite_InvalidStatus(t *testing.T) {
	service, _ := newSessionService(t)

	err := service.RespondToInvite(context.Background(), 11, entity.InviteStatusPending)

	require.ErrorIs(t, err, domainerrors.ErrInvalidInviteStatus)
}

func TestSessionService_RespondToInvite_UnknownInvite(t *testing.T) {
	service, _ := newSessionService(t)
	seedSnapshot(service, sessionState{currentUser: &entity.User{ID: 3}})

	err := service.RespondToInvite(context.Background(), 99, entity.InviteStatusAccepted)

	require.ErrorIs(t, err, domainerrors.ErrInviteNotFound)
}

func TestSessionService_RespondToInvite_MissingRecordIsResolved(t *testing.T) {
	service, _ := newSessionService(t)
	state, _ := inviteFixture(testfixtures.ReferenceTime())
	state.invites[0].Participant.ID = 0
	seedSnapshot(service, state)

	err := service.RespondToInvite(context.Background(), 11, entity.InviteStatusAccepted)

	require.NoError(t, err)
	assert.Empty(t, service.Invites())
}
