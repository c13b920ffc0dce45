package repository

import (
	"context"

	"gather/internal/domain/entity"
)

// FriendshipRepository exposes the friendship rows touching a user, with the
// user on either side of the pair.
type FriendshipRepository interface {
	ListByUser(ctx context.Context, userID int) ([]entity.Friendship, error)
}
