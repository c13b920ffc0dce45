package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"gather/config"
	"gather/internal/domain/entity"
	"gather/internal/domain/repository"
	mockRepo "gather/internal/mocks/repository"
	"gather/internal/testfixtures"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type sessionMocks struct {
	users        *mockRepo.MockUserRepository
	friendships  *mockRepo.MockFriendshipRepository
	schedules    *mockRepo.MockScheduleRepository
	activities   *mockRepo.MockActivityRepository
	locations    *mockRepo.MockLocationRepository
	participants *mockRepo.MockParticipantRepository
	availability *mockRepo.MockAvailabilityRepository
	preferences  *mockRepo.MockPreferenceRepository
}

func newSessionService(t *testing.T) (*sessionService, sessionMocks) {
	t.Helper()

	mocks := sessionMocks{
		users:        mockRepo.NewMockUserRepository(t),
		friendships:  mockRepo.NewMockFriendshipRepository(t),
		schedules:    mockRepo.NewMockScheduleRepository(t),
		activities:   mockRepo.NewMockActivityRepository(t),
		locations:    mockRepo.NewMockLocationRepository(t),
		participants: mockRepo.NewMockParticipantRepository(t),
		availability: mockRepo.NewMockAvailabilityRepository(t),
		preferences:  mockRepo.NewMockPreferenceRepository(t),
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewSessionService(SessionServiceParams{
		Users:        mocks.users,
		Friendships:  mocks.friendships,
		Schedules:    mocks.schedules,
		Activities:   mocks.activities,
		Locations:    mocks.locations,
		Participants: mocks.participants,
		Availability: mocks.availability,
		Preferences:  mocks.preferences,
		Config:       &config.Config{},
		Logger:       logger,
	}).(*sessionService)

	return service, mocks
}

func intPtr(i int) *int {
	return &i
}

func TestSessionService_LoadInitialData_Success(t *testing.T) {
	service, mocks := newSessionService(t)
	ctx := context.Background()
	base := testfixtures.ReferenceTime()

	mocks.users.EXPECT().FindByIDs(mock.Anything, []int{3}).
		Return([]entity.User{{ID: 3, Name: "Sam"}}, nil)

	// Friendship rows put the session user on either side; 7 appears twice.
	mocks.friendships.EXPECT().ListByUser(mock.Anything, 3).
		Return([]entity.Friendship{
			{UserID: 3, FriendID: 7},
			{UserID: 8, FriendID: 3},
			{UserID: 7, FriendID: 3},
		}, nil)
	mocks.users.EXPECT().FindByIDs(mock.Anything, []int{7, 8}).
		Return([]entity.User{{ID: 7, Name: "Ana"}, {ID: 8, Name: "Ben"}}, nil)

	mocks.participants.EXPECT().ListByUser(mock.Anything, 3).
		Return([]entity.ActivityParticipant{
			{ID: 101, UserID: 3, ScheduledActivityID: 10, InviteStatus: entity.InviteStatusAccepted},
			{ID: 102, UserID: 3, ScheduledActivityID: 11, InviteStatus: entity.InviteStatusPending},
		}, nil)
	// Returned out of time order; the snapshot must come back sorted.
	mocks.schedules.EXPECT().FindByIDs(mock.Anything, []int{10, 11}).
		Return([]entity.ScheduledActivity{
			{ID: 10, ActivityID: 20, ScheduledAt: base.Add(2 * time.Hour), IsActive: true},
			{ID: 11, ActivityID: 21, ScheduledAt: base.Add(time.Hour), IsActive: true},
		}, nil)
	mocks.activities.EXPECT().FindByIDs(mock.Anything, []int{21, 20}).
		Return([]entity.Activity{
			{ID: 21, Name: "Climbing", LocationID: intPtr(31)},
			{ID: 20, Name: "Coffee", LocationID: intPtr(31)},
		}, nil)
	mocks.locations.EXPECT().FindByIDs(mock.Anything, []int{31}).
		Return([]entity.Location{{ID: 31, Name: "Downtown"}}, nil)
	mocks.participants.EXPECT().ListByScheduledActivities(mock.Anything, []int{10, 11}).
		Return([]entity.ActivityParticipant{
			{ID: 101, UserID: 3, ScheduledActivityID: 10, InviteStatus: entity.InviteStatusAccepted},
			{ID: 102, UserID: 3, ScheduledActivityID: 11, InviteStatus: entity.InviteStatusPending},
			{ID: 103, UserID: 9, ScheduledActivityID: 11, InviteStatus: entity.InviteStatusAccepted},
		}, nil)
	// User 3 is already cached from the initial fetch; only 9 goes remote.
	mocks.users.EXPECT().FindByIDs(mock.Anything, []int{9}).
		Return([]entity.User{{ID: 9, Name: "Kim"}}, nil)

	mocks.availability.EXPECT().ListByUser(mock.Anything, 3).
		Return([]entity.UserAvailability{
			{ID: 201, UserID: 3, DayOfWeek: "Monday", IsAvailable: true},
		}, nil)

	err := service.LoadInitialData(ctx, 3)

	require.NoError(t, err)

	current, ok := service.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, "Sam", current.Name)

	friends := service.Friends()
	require.Len(t, friends, 2)
	assert.Equal(t, 7, friends[0].ID)
	assert.Equal(t, 8, friends[1].ID)

	schedule := service.ScheduledActivities()
	require.Len(t, schedule, 2)
	assert.Equal(t, 11, schedule[0].ID)
	assert.Equal(t, 10, schedule[1].ID)

	invites := service.Invites()
	require.Len(t, invites, 1)
	assert.Equal(t, 11, invites[0].ID())
	assert.Equal(t, "Climbing", invites[0].Activity.Name)
	assert.Equal(t, "Downtown", invites[0].Location.Name)
	assert.Equal(t, 102, invites[0].Participant.ID)
	assert.Equal(t, "Kim", invites[0].ParticipantUsers[9].Name)

	assert.Len(t, service.Availability(), 1)
	assert.Len(t, service.ActivityParticipants(11), 2)
	assert.False(t, service.IsLoading())
}

func TestSessionService_LoadInitialData_BranchFailureDegrades(t *testing.T) {
	service, mocks := newSessionService(t)
	ctx := context.Background()

	mocks.users.EXPECT().FindByIDs(mock.Anything, []int{3}).
		Return([]entity.User{{ID: 3}}, nil)
	mocks.friendships.EXPECT().ListByUser(mock.Anything, 3).
		Return(nil, errors.New("boom"))
	mocks.participants.EXPECT().ListByUser(mock.Anything, 3).
		Return(nil, nil)
	mocks.availability.EXPECT().ListByUser(mock.Anything, 3).
		Return([]entity.UserAvailability{{ID: 201, UserID: 3}}, nil)

	err := service.LoadInitialData(ctx, 3)

	require.NoError(t, err)
	assert.Empty(t, service.Friends())
	assert.Empty(t, service.ScheduledActivities())
	assert.Len(t, service.Availability(), 1)
}

func TestSessionService_LoadInitialData_UserFetchFails(t *testing.T) {
	service, mocks := newSessionService(t)
	ctx := context.Background()

	mocks.users.EXPECT().FindByIDs(mock.Anything, []int{3}).
		Return(nil, errors.New("remote down"))

	err := service.LoadInitialData(ctx, 3)

	require.Error(t, err)
	_, ok := service.CurrentUser()
	assert.False(t, ok)
}

func TestSessionService_Reload_NotLoaded(t *testing.T) {
	service, _ := newSessionService(t)

	err := service.Reload(context.Background())

	require.Error(t, err)
}

func TestSessionService_FetchUser_CacheExpiry(t *testing.T) {
	service, mocks := newSessionService(t)
	clock := testfixtures.NewClock(time.Time{})
	service.now = clock.NowFunc()
	ctx := context.Background()

	mocks.users.EXPECT().FindByIDs(mock.Anything, []int{5}).
		Return([]entity.User{{ID: 5, Name: "Eve"}}, nil).
		Twice()

	first, err := service.FetchUser(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, "Eve", first.Name)

	// Within the TTL the cache answers without a remote call.
	clock.Advance(599 * time.Second)
	second, err := service.FetchUser(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	// Crossing the TTL forces a refetch.
	clock.Advance(2 * time.Second)
	third, err := service.FetchUser(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, first, third)
}

func TestSessionService_FetchUser_NotFound(t *testing.T) {
	service, mocks := newSessionService(t)

	mocks.users.EXPECT().FindByIDs(mock.Anything, []int{99}).
		Return(nil, nil)

	_, err := service.FetchUser(context.Background(), 99)

	require.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestSessionService_FetchUser_CoalescesConcurrentCalls(t *testing.T) {
	service, mocks := newSessionService(t)
	ctx := context.Background()

	var calls atomic.Int32
	mocks.users.EXPECT().FindByIDs(mock.Anything, []int{5}).
		RunAndReturn(func(ctx context.Context, ids []int) ([]entity.User, error) {
			calls.Add(1)
			time.Sleep(50 * time.Millisecond)

			return []entity.User{{ID: 5, Name: "Eve"}}, nil
		})

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			user, err := service.FetchUser(ctx, 5)
			assert.NoError(t, err)
			assert.Equal(t, 5, user.ID)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
}

func TestSessionService_ActivityCatalog(t *testing.T) {
	service, mocks := newSessionService(t)

	mocks.activities.EXPECT().ListCatalog(mock.Anything).
		Return([]entity.Activity{{ID: 1, Name: "Hiking"}}, nil)

	catalog, err := service.ActivityCatalog(context.Background())

	require.NoError(t, err)
	require.Len(t, catalog, 1)
	assert.Equal(t, "Hiking", catalog[0].Name)
}
