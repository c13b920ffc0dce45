package model

import "gather/internal/domain/entity"

// ActivityModel is the wire shape of an activity template.
type ActivityModel struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	EstimatedTime string `json:"estimated_time"`
	LocationID    *int   `json:"location_id"`
	UserCreated   bool   `json:"user_created"`
	Emoji         string `json:"emoji"`
}

func ToActivityDomain(m ActivityModel) entity.Activity {
	return entity.Activity{
		ID:            m.ID,
		Name:          m.Name,
		Description:   m.Description,
		EstimatedTime: m.EstimatedTime,
		LocationID:    m.LocationID,
		UserCreated:   m.UserCreated,
		Emoji:         m.Emoji,
	}
}

func ToActivityDomains(models []ActivityModel) []entity.Activity {
	activities := make([]entity.Activity, 0, len(models))
	for _, m := range models {
		activities = append(activities, ToActivityDomain(m))
	}

	return activities
}

func FromActivityDomain(a entity.Activity) ActivityModel {
	return ActivityModel{
		ID:            a.ID,
		Name:          a.Name,
		Description:   a.Description,
		EstimatedTime: a.EstimatedTime,
		LocationID:    a.LocationID,
		UserCreated:   a.UserCreated,
		Emoji:         a.Emoji,
	}
}
