package impl

import (
	"testing"
	"time"

	"gather/internal/domain/entity"
	"gather/internal/testfixtures"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildInvites_OnlyFullyResolvedPendingRecords(t *testing.T) {
	base := testfixtures.ReferenceTime()

	state := sessionState{
		schedule: []entity.ScheduledActivity{
			{ID: 10, ActivityID: 20, ScheduledAt: base},                     // accepted, not an invite
			{ID: 11, ActivityID: 21, ScheduledAt: base.Add(time.Hour)},     // pending, resolvable
			{ID: 12, ActivityID: 22, ScheduledAt: base.Add(2 * time.Hour)}, // pending, activity missing
			{ID: 13, ActivityID: 23, ScheduledAt: base.Add(3 * time.Hour)}, // pending, activity has no location
			{ID: 14, ActivityID: 24, ScheduledAt: base.Add(4 * time.Hour)}, // pending, location not loaded
		},
		activities: []entity.Activity{
			{ID: 20, Name: "Coffee", LocationID: intPtr(31)},
			{ID: 21, Name: "Climbing", LocationID: intPtr(31)},
			{ID: 23, Name: "Walk"},
			{ID: 24, Name: "Dinner", LocationID: intPtr(99)},
		},
		locations: []entity.Location{{ID: 31, Name: "Downtown"}},
		participantsBySA: map[int][]entity.ActivityParticipant{
			10: {{ID: 101, UserID: 3, ScheduledActivityID: 10, InviteStatus: entity.InviteStatusAccepted}},
			11: {
				{ID: 102, UserID: 3, ScheduledActivityID: 11, InviteStatus: entity.InviteStatusPending},
				{ID: 103, UserID: 9, ScheduledActivityID: 11, InviteStatus: entity.InviteStatusAccepted},
			},
			12: {{ID: 104, UserID: 3, ScheduledActivityID: 12, InviteStatus: entity.InviteStatusPending}},
			13: {{ID: 105, UserID: 3, ScheduledActivityID: 13, InviteStatus: entity.InviteStatusPending}},
			14: {{ID: 106, UserID: 3, ScheduledActivityID: 14, InviteStatus: entity.InviteStatusPending}},
		},
		participantUsers: map[int]entity.User{
			3: {ID: 3, Name: "Sam"},
			9: {ID: 9, Name: "Kim"},
		},
	}

	invites := buildInvites(state, 3)

	require.Len(t, invites, 1)
	assert.Equal(t, 11, invites[0].ID())
	assert.Equal(t, "Climbing", invites[0].Activity.Name)
	assert.Equal(t, "Downtown", invites[0].Location.Name)
	assert.Len(t, invites[0].Participants, 2)
	assert.Equal(t, "Kim", invites[0].ParticipantUsers[9].Name)
}

func TestBuildInvites_CaseInsensitiveStatus(t *testing.T) {
	base := testfixtures.ReferenceTime()

	state := sessionState{
		schedule:   []entity.ScheduledActivity{{ID: 11, ActivityID: 21, ScheduledAt: base}},
		activities: []entity.Activity{{ID: 21, LocationID: intPtr(31)}},
		locations:  []entity.Location{{ID: 31}},
		participantsBySA: map[int][]entity.ActivityParticipant{
			11: {{ID: 102, UserID: 3, ScheduledActivityID: 11, InviteStatus: entity.InviteStatus("PENDING")}},
		},
		participantUsers: map[int]entity.User{},
	}

	invites := buildInvites(state, 3)

	require.Len(t, invites, 1)
}

func TestBuildInvites_NoOwnRecord(t *testing.T) {
	base := testfixtures.ReferenceTime()

	state := sessionState{
		schedule:   []entity.ScheduledActivity{{ID: 11, ActivityID: 21, ScheduledAt: base}},
		activities: []entity.Activity{{ID: 21, LocationID: intPtr(31)}},
		locations:  []entity.Location{{ID: 31}},
		participantsBySA: map[int][]entity.ActivityParticipant{
			11: {{ID: 103, UserID: 9, ScheduledActivityID: 11, InviteStatus: entity.InviteStatusPending}},
		},
		participantUsers: map[int]entity.User{},
	}

	invites := buildInvites(state, 3)

	assert.Empty(t, invites)
}
