package model

import "gather/internal/domain/entity"

// ScheduledActivityModel is the wire shape of one calendar occurrence.
type ScheduledActivityModel struct {
	ID          int     `json:"id"`
	ActivityID  int     `json:"activity_id"`
	ScheduledAt APITime `json:"scheduled_at"`
	IsActive    bool    `json:"is_active"`
}

func ToScheduledActivityDomain(m ScheduledActivityModel) entity.ScheduledActivity {
	return entity.ScheduledActivity{
		ID:          m.ID,
		ActivityID:  m.ActivityID,
		ScheduledAt: m.ScheduledAt.Time(),
		IsActive:    m.IsActive,
	}
}

func ToScheduledActivityDomains(models []ScheduledActivityModel) []entity.ScheduledActivity {
	list := make([]entity.ScheduledActivity, 0, len(models))
	for _, m := range models {
		list = append(list, ToScheduledActivityDomain(m))
	}

	return list
}

func FromScheduledActivityDomain(sa entity.ScheduledActivity) ScheduledActivityModel {
	return ScheduledActivityModel{
		ID:          sa.ID,
		ActivityID:  sa.ActivityID,
		ScheduledAt: APITime(sa.ScheduledAt),
		IsActive:    sa.IsActive,
	}
}

// CreateScheduledActivitiesRequest is the batch-create payload: one instance
// per date, sharing the start/end clock times.
type CreateScheduledActivitiesRequest struct {
	ActivityID    int      `json:"activity_id"`
	SelectedDates []string `json:"selected_dates"`
	StartTime     APITime  `json:"start_time"`
	EndTime       APITime  `json:"end_time"`
	TimeZone      string   `json:"time_zone"`
}

// RepeatScheduledActivitiesRequest asks the service to materialize instances
// from a stored preference.
type RepeatScheduledActivitiesRequest struct {
	PreferenceID int     `json:"preference_id"`
	StartTime    APITime `json:"start_time"`
	TimeZone     string  `json:"time_zone"`
}
