// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"gather/config"
	"gather/internal/domain/entity"
	"gather/internal/domain/repository"
	"gather/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/singleflight"
)

// sessionState is the snapshot the aggregator owns. Fetches run outside the
// lock; every merge happens under it.
type sessionState struct {
	currentUser      *entity.User
	friends          []entity.User
	schedule         []entity.ScheduledActivity
	activities       []entity.Activity
	locations        []entity.Location
	participantsBySA map[int][]entity.ActivityParticipant
	participantUsers map[int]entity.User
	availability     []entity.UserAvailability
	invites          []entity.Invite
	loading          bool
}

type cachedUser struct {
	user      entity.User
	fetchedAt time.Time
}

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	users        repository.UserRepository
	friendships  repository.FriendshipRepository
	schedules    repository.ScheduleRepository
	activities   repository.ActivityRepository
	locations    repository.LocationRepository
	participants repository.ParticipantRepository
	availability repository.AvailabilityRepository
	preferences  repository.PreferenceRepository
	logger       *slog.Logger

	cacheTTL time.Duration
	now      func() time.Time

	mu    sync.RWMutex
	state sessionState

	cacheMu   sync.Mutex
	userCache map[int]cachedUser
	flight    singleflight.Group
}

// SessionServiceParams holds dependencies for sessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	Users        repository.UserRepository
	Friendships  repository.FriendshipRepository
	Schedules    repository.ScheduleRepository
	Activities   repository.ActivityRepository
	Locations    repository.LocationRepository
	Participants repository.ParticipantRepository
	Availability repository.AvailabilityRepository
	Preferences  repository.PreferenceRepository
	Config       *config.Config
	Logger       *slog.Logger
}

// NewSessionService is the constructor for sessionService. It receives all
// dependencies as interfaces.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	cacheTTL := 600 * time.Second
	if params.Config != nil && params.Config.Session.CacheTTL > 0 {
		cacheTTL = params.Config.Session.CacheTTL
	}

	return &sessionService{
		users:        params.Users,
		friendships:  params.Friendships,
		schedules:    params.Schedules,
		activities:   params.Activities,
		locations:    params.Locations,
		participants: params.Participants,
		availability: params.Availability,
		preferences:  params.Preferences,
		logger:       params.Logger,
		cacheTTL:     cacheTTL,
		now:          time.Now,
		state: sessionState{
			participantsBySA: make(map[int][]entity.ActivityParticipant),
			participantUsers: make(map[int]entity.User),
		},
		userCache: make(map[int]cachedUser),
	}
}

// --- Cached user lookups ---

// FetchUser returns the user through the TTL cache. Concurrent lookups for
// the same id are coalesced into one in-flight remote call.
func (srv *sessionService) FetchUser(ctx context.Context, id int) (entity.User, error) {
	if user, ok := srv.cachedFreshUser(id); ok {
		return user, nil
	}

	v, err, _ := srv.flight.Do(strconv.Itoa(id), func() (any, error) {
		// A concurrent caller may have refreshed the entry while this call
		// waited its turn.
		if user, ok := srv.cachedFreshUser(id); ok {
			return user, nil
		}

		users, err := srv.users.FindByIDs(ctx, []int{id})
		if err != nil {
			return entity.User{}, errors.Wrapf(err, "fetch user %d", id)
		}
		if len(users) == 0 {
			return entity.User{}, repository.ErrUserNotFound
		}

		srv.storeCachedUsers(users)

		return users[0], nil
	})
	if err != nil {
		return entity.User{}, err
	}

	return v.(entity.User), nil
}

// fetchUsers resolves a set of users, serving fresh cache entries and
// bulk-fetching the rest in a single round-trip. The result preserves the
// order of ids; unresolved ids are absent.
func (srv *sessionService) fetchUsers(ctx context.Context, ids []int) ([]entity.User, error) {
	resolved := make(map[int]entity.User, len(ids))
	missing := make([]int, 0, len(ids))
	for _, id := range ids {
		if user, ok := srv.cachedFreshUser(id); ok {
			resolved[id] = user
		} else {
			missing = append(missing, id)
		}
	}

	if len(missing) > 0 {
		fetched, err := srv.users.FindByIDs(ctx, missing)
		if err != nil {
			return nil, errors.Wrap(err, "bulk fetch users")
		}
		srv.storeCachedUsers(fetched)
		for _, user := range fetched {
			resolved[user.ID] = user
		}
	}

	users := make([]entity.User, 0, len(resolved))
	for _, id := range ids {
		if user, ok := resolved[id]; ok {
			users = append(users, user)
		}
	}

	return users, nil
}

func (srv *sessionService) cachedFreshUser(id int) (entity.User, bool) {
	srv.cacheMu.Lock()
	defer srv.cacheMu.Unlock()

	entry, ok := srv.userCache[id]
	if !ok || srv.now().Sub(entry.fetchedAt) >= srv.cacheTTL {
		return entity.User{}, false
	}

	return entry.user, true
}

func (srv *sessionService) storeCachedUsers(users []entity.User) {
	fetchedAt := srv.now()

	srv.cacheMu.Lock()
	defer srv.cacheMu.Unlock()
	for _, user := range users {
		srv.userCache[user.ID] = cachedUser{user: user, fetchedAt: fetchedAt}
	}
}

// --- Snapshot accessors ---

func (srv *sessionService) IsLoading() bool {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return srv.state.loading
}

func (srv *sessionService) CurrentUser() (entity.User, bool) {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	if srv.state.currentUser == nil {
		return entity.User{}, false
	}

	return *srv.state.currentUser, true
}

func (srv *sessionService) Friends() []entity.User {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return append([]entity.User(nil), srv.state.friends...)
}

func (srv *sessionService) ScheduledActivities() []entity.ScheduledActivity {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return append([]entity.ScheduledActivity(nil), srv.state.schedule...)
}

func (srv *sessionService) Activities() []entity.Activity {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return append([]entity.Activity(nil), srv.state.activities...)
}

func (srv *sessionService) Locations() []entity.Location {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return append([]entity.Location(nil), srv.state.locations...)
}

func (srv *sessionService) Availability() []entity.UserAvailability {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return append([]entity.UserAvailability(nil), srv.state.availability...)
}

func (srv *sessionService) Invites() []entity.Invite {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return append([]entity.Invite(nil), srv.state.invites...)
}

// ActivityParticipants is a pure lookup; absent ids yield an empty slice.
func (srv *sessionService) ActivityParticipants(scheduledActivityID int) []entity.ActivityParticipant {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return append([]entity.ActivityParticipant(nil), srv.state.participantsBySA[scheduledActivityID]...)
}

func (srv *sessionService) ActivityByID(id int) (entity.Activity, bool) {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	for _, a := range srv.state.activities {
		if a.ID == id {
			return a, true
		}
	}

	return entity.Activity{}, false
}

func (srv *sessionService) LocationByID(id int) (entity.Location, bool) {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	for _, l := range srv.state.locations {
		if l.ID == id {
			return l, true
		}
	}

	return entity.Location{}, false
}

// ActivityCatalog fetches the shared catalog. The catalog is not part of the
// snapshot; pickers fetch it on demand.
func (srv *sessionService) ActivityCatalog(ctx context.Context) ([]entity.Activity, error) {
	catalog, err := srv.activities.ListCatalog(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list activity catalog")
	}

	return catalog, nil
}

// --- Local merge helpers (all callers hold srv.mu) ---

func (srv *sessionService) addLocationLocked(loc entity.Location) {
	for _, existing := range srv.state.locations {
		if existing.ID == loc.ID {
			return
		}
	}
	srv.state.locations = append(srv.state.locations, loc)
}

func (srv *sessionService) addActivityLocked(a entity.Activity) {
	for _, existing := range srv.state.activities {
		if existing.ID == a.ID {
			return
		}
	}
	srv.state.activities = append(srv.state.activities, a)
}

func (srv *sessionService) addScheduledActivityLocked(sa entity.ScheduledActivity) {
	for _, existing := range srv.state.schedule {
		if existing.ID == sa.ID {
			return
		}
	}
	srv.state.schedule = append(srv.state.schedule, sa)
	entity.SortSchedule(srv.state.schedule)
}

func (srv *sessionService) addParticipantLocked(p entity.ActivityParticipant) {
	existing := srv.state.participantsBySA[p.ScheduledActivityID]
	for _, candidate := range existing {
		if candidate.ID == p.ID {
			return
		}
	}
	srv.state.participantsBySA[p.ScheduledActivityID] = append(existing, p)
}
