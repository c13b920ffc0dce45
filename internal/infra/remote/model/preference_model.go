package model

import "gather/internal/domain/entity"

// PreferenceModel is the wire shape of a recurrence preference.
type PreferenceModel struct {
	ID              int    `json:"id"`
	UserID          int    `json:"user_id"`
	ActivityID      int    `json:"activity_id"`
	Frequency       int    `json:"frequency"`
	FrequencyPeriod string `json:"frequency_period"`
	DaysOfWeek      string `json:"days_of_week,omitempty"`
}

func ToPreferenceDomain(m PreferenceModel) entity.UserActivityPreference {
	return entity.UserActivityPreference{
		ID:              m.ID,
		UserID:          m.UserID,
		ActivityID:      m.ActivityID,
		Frequency:       m.Frequency,
		FrequencyPeriod: m.FrequencyPeriod,
		DaysOfWeek:      m.DaysOfWeek,
	}
}

func FromPreferenceDomain(p entity.UserActivityPreference) PreferenceModel {
	return PreferenceModel{
		ID:              p.ID,
		UserID:          p.UserID,
		ActivityID:      p.ActivityID,
		Frequency:       p.Frequency,
		FrequencyPeriod: p.FrequencyPeriod,
		DaysOfWeek:      p.DaysOfWeek,
	}
}

// PreferenceParticipantModel links an invited user to a preference.
type PreferenceParticipantModel struct {
	ID                       int `json:"id"`
	UserActivityPreferenceID int `json:"user_activity_preference_id"`
	UserID                   int `json:"user_id"`
}

func ToPreferenceParticipantDomain(m PreferenceParticipantModel) entity.UserActivityPreferenceParticipant {
	return entity.UserActivityPreferenceParticipant{
		ID:                       m.ID,
		UserActivityPreferenceID: m.UserActivityPreferenceID,
		UserID:                   m.UserID,
	}
}

func FromPreferenceParticipantDomain(p entity.UserActivityPreferenceParticipant) PreferenceParticipantModel {
	return PreferenceParticipantModel{
		ID:                       p.ID,
		UserActivityPreferenceID: p.UserActivityPreferenceID,
		UserID:                   p.UserID,
	}
}
