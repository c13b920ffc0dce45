package remote

import (
	"context"

	"gather/internal/domain/entity"
	"gather/internal/domain/repository"
	"gather/internal/infra/remote/model"
)

type locationRepository struct {
	client *Client
}

// NewLocationRepository is the constructor for locationRepository.
func NewLocationRepository(client *Client) repository.LocationRepository {
	return &locationRepository{client: client}
}

func (repo *locationRepository) FindByIDs(ctx context.Context, ids []int) ([]entity.Location, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var models []model.LocationModel
	if err := repo.client.getJSON(ctx, "/locations/"+joinIDs(ids), &models); err != nil {
		return nil, err
	}

	return model.ToLocationDomains(models), nil
}

func (repo *locationRepository) Create(ctx context.Context, location entity.Location) (entity.Location, error) {
	payload := model.FromLocationDomain(location)

	var created model.LocationModel
	if err := repo.client.postJSON(ctx, "/location", payload, &created); err != nil {
		return entity.Location{}, err
	}

	return model.ToLocationDomain(created), nil
}
