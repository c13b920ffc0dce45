package impl

import (
	"gather/internal/domain/entity"
)

// buildInvites projects the pending invites out of the snapshot. An invite is
// the current user's own Pending participation record joined with its
// scheduled activity, activity, location and co-participants. A record whose
// joins cannot all be resolved locally is dropped rather than shown
// half-populated; the next load will pick it up once its related records
// arrive. Callers hold the state lock.
func buildInvites(state sessionState, userID int) []entity.Invite {
	activityByID := make(map[int]entity.Activity, len(state.activities))
	for _, a := range state.activities {
		activityByID[a.ID] = a
	}
	locationByID := make(map[int]entity.Location, len(state.locations))
	for _, l := range state.locations {
		locationByID[l.ID] = l
	}

	var invites []entity.Invite
	for _, sa := range state.schedule {
		participants := state.participantsBySA[sa.ID]

		var own *entity.ActivityParticipant
		for i := range participants {
			if participants[i].UserID == userID {
				own = &participants[i]

				break
			}
		}
		if own == nil || !own.InviteStatus.Is(entity.InviteStatusPending) {
			continue
		}

		activity, ok := activityByID[sa.ActivityID]
		if !ok || activity.LocationID == nil {
			continue
		}
		location, ok := locationByID[*activity.LocationID]
		if !ok {
			continue
		}

		users := make(map[int]entity.User, len(participants))
		for _, p := range participants {
			if u, ok := state.participantUsers[p.UserID]; ok {
				users[p.UserID] = u
			}
		}

		invites = append(invites, entity.Invite{
			ScheduledActivity: sa,
			Activity:          activity,
			Location:          location,
			Participant:       *own,
			Participants:      append([]entity.ActivityParticipant(nil), participants...),
			ParticipantUsers:  users,
		})
	}

	return invites
}
