package remote

import (
	"context"
	"strconv"

	"gather/internal/domain/entity"
	"gather/internal/domain/repository"
	"gather/internal/infra/remote/model"
)

type availabilityRepository struct {
	client *Client
}

// NewAvailabilityRepository is the constructor for availabilityRepository.
func NewAvailabilityRepository(client *Client) repository.AvailabilityRepository {
	return &availabilityRepository{client: client}
}

func (repo *availabilityRepository) ListByUser(ctx context.Context, userID int) ([]entity.UserAvailability, error) {
	var models []model.AvailabilityModel
	if err := repo.client.getJSON(ctx, "/user_availability/user/"+strconv.Itoa(userID), &models); err != nil {
		return nil, err
	}

	return model.ToAvailabilityDomains(models), nil
}
