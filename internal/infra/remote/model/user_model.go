package model

import "gather/internal/domain/entity"

// UserModel is the wire shape of a user record.
type UserModel struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	LocationID *int   `json:"location_id"`
	ProfilePic string `json:"profile_pic,omitempty"`
}

func ToUserDomain(m UserModel) entity.User {
	return entity.User{
		ID:         m.ID,
		Name:       m.Name,
		Email:      m.Email,
		LocationID: m.LocationID,
		ProfilePic: m.ProfilePic,
	}
}

func ToUserDomains(models []UserModel) []entity.User {
	users := make([]entity.User, 0, len(models))
	for _, m := range models {
		users = append(users, ToUserDomain(m))
	}

	return users
}
