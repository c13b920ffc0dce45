package remote

import (
	"context"

	"gather/internal/domain/entity"
	"gather/internal/domain/repository"
	"gather/internal/infra/remote/model"
)

// userRepository implements repository.UserRepository over the bulk route.
type userRepository struct {
	client *Client
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(client *Client) repository.UserRepository {
	return &userRepository{client: client}
}

func (repo *userRepository) FindByIDs(ctx context.Context, ids []int) ([]entity.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var models []model.UserModel
	if err := repo.client.getJSON(ctx, "/users/"+joinIDs(ids), &models); err != nil {
		return nil, err
	}

	return model.ToUserDomains(models), nil
}
