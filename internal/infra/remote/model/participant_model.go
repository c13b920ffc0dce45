package model

import "gather/internal/domain/entity"

// ParticipantModel is the wire shape of a participation record. The service
// stores the invite status as a free string; unknown values are preserved
// as-is so a later update does not destroy information.
type ParticipantModel struct {
	ID                  int    `json:"id"`
	UserID              int    `json:"user_id"`
	ScheduledActivityID int    `json:"scheduled_activity_id"`
	InviteStatus        string `json:"invite_status"`
}

func ToParticipantDomain(m ParticipantModel) entity.ActivityParticipant {
	status := entity.InviteStatus(m.InviteStatus)
	if parsed, ok := entity.ParseInviteStatus(m.InviteStatus); ok {
		status = parsed
	}

	return entity.ActivityParticipant{
		ID:                  m.ID,
		UserID:              m.UserID,
		ScheduledActivityID: m.ScheduledActivityID,
		InviteStatus:        status,
	}
}

func ToParticipantDomains(models []ParticipantModel) []entity.ActivityParticipant {
	participants := make([]entity.ActivityParticipant, 0, len(models))
	for _, m := range models {
		participants = append(participants, ToParticipantDomain(m))
	}

	return participants
}

func FromParticipantDomain(p entity.ActivityParticipant) ParticipantModel {
	return ParticipantModel{
		ID:                  p.ID,
		UserID:              p.UserID,
		ScheduledActivityID: p.ScheduledActivityID,
		InviteStatus:        string(p.InviteStatus),
	}
}
