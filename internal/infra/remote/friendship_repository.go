package remote

import (
	"context"
	"strconv"

	"gather/internal/domain/entity"
	"gather/internal/domain/repository"
	"gather/internal/infra/remote/model"
)

type friendshipRepository struct {
	client *Client
}

// NewFriendshipRepository is the constructor for friendshipRepository.
func NewFriendshipRepository(client *Client) repository.FriendshipRepository {
	return &friendshipRepository{client: client}
}

func (repo *friendshipRepository) ListByUser(ctx context.Context, userID int) ([]entity.Friendship, error) {
	var models []model.FriendshipModel
	if err := repo.client.getJSON(ctx, "/friend/user/"+strconv.Itoa(userID), &models); err != nil {
		return nil, err
	}

	return model.ToFriendshipDomains(models), nil
}
