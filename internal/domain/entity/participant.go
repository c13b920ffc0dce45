package entity

import "strings"

// InviteStatus is the closed set of participation states. The remote service
// compares these case-insensitively, and older rows may carry "Rejected" in
// place of "Declined"; ParseInviteStatus folds both into the canonical value.
type InviteStatus string

const (
	InviteStatusPending  InviteStatus = "Pending"
	InviteStatusAccepted InviteStatus = "Accepted"
	InviteStatusDeclined InviteStatus = "Declined"
)

// ParseInviteStatus maps a wire string onto the closed status set. The second
// return value is false for unknown values.
func ParseInviteStatus(s string) (InviteStatus, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pending":
		return InviteStatusPending, true
	case "accepted":
		return InviteStatusAccepted, true
	case "declined", "rejected":
		return InviteStatusDeclined, true
	default:
		return "", false
	}
}

// Is compares two statuses case-insensitively.
func (s InviteStatus) Is(other InviteStatus) bool {
	return strings.EqualFold(string(s), string(other))
}

// ActivityParticipant is a user's membership and invite status on a specific
// scheduled activity.
type ActivityParticipant struct {
	ID                  int
	UserID              int
	ScheduledActivityID int
	InviteStatus        InviteStatus
}
