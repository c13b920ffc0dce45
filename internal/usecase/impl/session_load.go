package impl

import (
	"context"
	"log/slog"
	"sort"

	"gather/internal/domain/entity"
	domainerrors "gather/internal/domain/errors"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// scheduleGraph is the schedule and every record reachable from it, loaded
// together so the snapshot swap is atomic.
type scheduleGraph struct {
	schedule         []entity.ScheduledActivity
	activities       []entity.Activity
	locations        []entity.Location
	participantsBySA map[int][]entity.ActivityParticipant
	participantUsers map[int]entity.User
}

// LoadInitialData populates the snapshot for one user. The current user is
// fetched first; the friend list, the schedule graph and the availability
// windows then load concurrently. Each branch degrades independently: a
// failing branch logs and leaves its slice of the snapshot empty, it never
// fails its siblings.
func (srv *sessionService) LoadInitialData(ctx context.Context, userID int) error {
	srv.mu.Lock()
	if srv.state.loading {
		srv.mu.Unlock()

		return nil
	}
	srv.state.loading = true
	srv.mu.Unlock()

	defer func() {
		srv.mu.Lock()
		srv.state.loading = false
		srv.mu.Unlock()
	}()

	user, err := srv.FetchUser(ctx, userID)
	if err != nil {
		return errors.Wrapf(err, "load session for user %d", userID)
	}

	// Each branch writes only its own variable; Wait orders the writes
	// before the merge below.
	var (
		friends      []entity.User
		graph        scheduleGraph
		availability []entity.UserAvailability
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		loaded, err := srv.loadFriends(groupCtx, userID)
		if err != nil {
			srv.logger.Warn("loading friends failed",
				slog.Int("userID", userID), slog.Any("error", err))

			return nil
		}
		friends = loaded

		return nil
	})
	group.Go(func() error {
		loaded, err := srv.loadScheduleGraph(groupCtx, userID)
		if err != nil {
			srv.logger.Warn("loading schedule failed",
				slog.Int("userID", userID), slog.Any("error", err))

			return nil
		}
		graph = loaded

		return nil
	})
	group.Go(func() error {
		loaded, err := srv.availability.ListByUser(groupCtx, userID)
		if err != nil {
			srv.logger.Warn("loading availability failed",
				slog.Int("userID", userID), slog.Any("error", err))

			return nil
		}
		availability = loaded

		return nil
	})
	// Branches never return an error; Wait only joins them.
	_ = group.Wait()

	if graph.participantsBySA == nil {
		graph.participantsBySA = make(map[int][]entity.ActivityParticipant)
	}
	if graph.participantUsers == nil {
		graph.participantUsers = make(map[int]entity.User)
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.state.currentUser = &user
	srv.state.friends = friends
	srv.state.schedule = graph.schedule
	srv.state.activities = graph.activities
	srv.state.locations = graph.locations
	srv.state.participantsBySA = graph.participantsBySA
	srv.state.participantUsers = graph.participantUsers
	srv.state.availability = availability
	srv.state.invites = buildInvites(srv.state, userID)

	return nil
}

// Reload re-runs the initial load for the session user.
func (srv *sessionService) Reload(ctx context.Context) error {
	srv.mu.RLock()
	current := srv.state.currentUser
	srv.mu.RUnlock()

	if current == nil {
		return domainerrors.ErrSessionNotLoaded
	}

	return srv.LoadInitialData(ctx, current.ID)
}

// loadFriends resolves friendship rows to the distinct counterparty set and
// fetches those users through the cache.
func (srv *sessionService) loadFriends(ctx context.Context, userID int) ([]entity.User, error) {
	rows, err := srv.friendships.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "list friendships")
	}

	ids := entity.ResolveFriendIDs(rows, userID)
	if len(ids) == 0 {
		return nil, nil
	}

	return srv.fetchUsers(ctx, ids)
}

// loadScheduleGraph walks from the user's participation records out to every
// related record, batching each hop into one bulk call.
func (srv *sessionService) loadScheduleGraph(ctx context.Context, userID int) (scheduleGraph, error) {
	var graph scheduleGraph

	own, err := srv.participants.ListByUser(ctx, userID)
	if err != nil {
		return graph, errors.Wrap(err, "list own participations")
	}

	saIDs := distinctScheduledActivityIDs(own)
	if len(saIDs) == 0 {
		return graph, nil
	}

	schedule, err := srv.schedules.FindByIDs(ctx, saIDs)
	if err != nil {
		return graph, errors.Wrap(err, "fetch scheduled activities")
	}
	entity.SortSchedule(schedule)
	graph.schedule = schedule

	activityIDs := make([]int, 0, len(schedule))
	seenActivity := make(map[int]struct{}, len(schedule))
	for _, sa := range schedule {
		if _, ok := seenActivity[sa.ActivityID]; ok {
			continue
		}
		seenActivity[sa.ActivityID] = struct{}{}
		activityIDs = append(activityIDs, sa.ActivityID)
	}

	activities, err := srv.activities.FindByIDs(ctx, activityIDs)
	if err != nil {
		return graph, errors.Wrap(err, "fetch activities")
	}
	graph.activities = activities

	locationIDs := make([]int, 0, len(activities))
	seenLocation := make(map[int]struct{}, len(activities))
	for _, a := range activities {
		if a.LocationID == nil {
			continue
		}
		if _, ok := seenLocation[*a.LocationID]; ok {
			continue
		}
		seenLocation[*a.LocationID] = struct{}{}
		locationIDs = append(locationIDs, *a.LocationID)
	}

	locations, err := srv.locations.FindByIDs(ctx, locationIDs)
	if err != nil {
		return graph, errors.Wrap(err, "fetch locations")
	}
	graph.locations = locations

	participants, err := srv.participants.ListByScheduledActivities(ctx, saIDs)
	if err != nil {
		return graph, errors.Wrap(err, "fetch participants")
	}
	graph.participantsBySA = groupParticipants(participants)

	userIDs := make([]int, 0, len(participants))
	seenUser := make(map[int]struct{}, len(participants))
	for _, p := range participants {
		if _, ok := seenUser[p.UserID]; ok {
			continue
		}
		seenUser[p.UserID] = struct{}{}
		userIDs = append(userIDs, p.UserID)
	}

	users, err := srv.fetchUsers(ctx, userIDs)
	if err != nil {
		return graph, errors.Wrap(err, "fetch participant users")
	}
	graph.participantUsers = make(map[int]entity.User, len(users))
	for _, u := range users {
		graph.participantUsers[u.ID] = u
	}

	return graph, nil
}

// distinctScheduledActivityIDs keeps first-seen order while deduplicating.
func distinctScheduledActivityIDs(participants []entity.ActivityParticipant) []int {
	seen := make(map[int]struct{}, len(participants))
	ids := make([]int, 0, len(participants))
	for _, p := range participants {
		if _, ok := seen[p.ScheduledActivityID]; ok {
			continue
		}
		seen[p.ScheduledActivityID] = struct{}{}
		ids = append(ids, p.ScheduledActivityID)
	}

	return ids
}

// groupParticipants indexes participation records by scheduled activity,
// ordered by record id inside each group for stable display.
func groupParticipants(participants []entity.ActivityParticipant) map[int][]entity.ActivityParticipant {
	grouped := make(map[int][]entity.ActivityParticipant, len(participants))
	for _, p := range participants {
		grouped[p.ScheduledActivityID] = append(grouped[p.ScheduledActivityID], p)
	}
	for _, group := range grouped {
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].ID < group[j].ID
		})
	}

	return grouped
}
