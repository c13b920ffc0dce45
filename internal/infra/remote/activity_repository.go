package remote

import (
	"context"

	"gather/internal/domain/entity"
	"gather/internal/domain/repository"
	"gather/internal/infra/remote/model"
)

type activityRepository struct {
	client *Client
}

// NewActivityRepository is the constructor for activityRepository.
func NewActivityRepository(client *Client) repository.ActivityRepository {
	return &activityRepository{client: client}
}

func (repo *activityRepository) FindByIDs(ctx context.Context, ids []int) ([]entity.Activity, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var models []model.ActivityModel
	if err := repo.client.getJSON(ctx, "/activities/"+joinIDs(ids), &models); err != nil {
		return nil, err
	}

	return model.ToActivityDomains(models), nil
}

func (repo *activityRepository) ListCatalog(ctx context.Context) ([]entity.Activity, error) {
	var models []model.ActivityModel
	if err := repo.client.getJSON(ctx, "/activities", &models); err != nil {
		return nil, err
	}

	return model.ToActivityDomains(models), nil
}

func (repo *activityRepository) Create(ctx context.Context, activity entity.Activity) (entity.Activity, error) {
	payload := model.FromActivityDomain(activity)

	var created model.ActivityModel
	if err := repo.client.postJSON(ctx, "/activity", payload, &created); err != nil {
		return entity.Activity{}, err
	}

	return model.ToActivityDomain(created), nil
}
