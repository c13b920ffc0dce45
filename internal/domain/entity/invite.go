package entity

// Invite is a derived, transient view of a pending participation record
// joined with its activity, location and participant context. It is never
// persisted; the projection is rebuilt from the snapshot after each load.
type Invite struct {
	ScheduledActivity ScheduledActivity
	Activity          Activity
	Location          Location
	Participant       ActivityParticipant // The current user's own participation record.
	Participants      []ActivityParticipant
	ParticipantUsers  map[int]User
}

// ID identifies the invite by its scheduled activity. A user holds at most
// one participation record per scheduled activity, so this is unique.
func (i Invite) ID() int {
	return i.ScheduledActivity.ID
}
