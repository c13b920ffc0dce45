package model

import "gather/internal/domain/entity"

// FriendshipModel is the wire shape of a friendship row.
type FriendshipModel struct {
	UserID    int     `json:"user_id"`
	FriendID  int     `json:"friend_id"`
	CreatedAt APITime `json:"created_at"`
}

func ToFriendshipDomains(models []FriendshipModel) []entity.Friendship {
	rows := make([]entity.Friendship, 0, len(models))
	for _, m := range models {
		rows = append(rows, entity.Friendship{
			UserID:    m.UserID,
			FriendID:  m.FriendID,
			CreatedAt: m.CreatedAt.Time(),
		})
	}

	return rows
}
