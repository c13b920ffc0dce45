package remote

import (
	"context"

	"gather/internal/domain/entity"
	"gather/internal/domain/repository"
	"gather/internal/infra/remote/model"
)

type preferenceRepository struct {
	client *Client
}

// NewPreferenceRepository is the constructor for preferenceRepository.
func NewPreferenceRepository(client *Client) repository.PreferenceRepository {
	return &preferenceRepository{client: client}
}

func (repo *preferenceRepository) Create(ctx context.Context, pref entity.UserActivityPreference) (entity.UserActivityPreference, error) {
	payload := model.FromPreferenceDomain(pref)

	var created model.PreferenceModel
	if err := repo.client.postJSON(ctx, "/user_activity_preference", payload, &created); err != nil {
		return entity.UserActivityPreference{}, err
	}

	return model.ToPreferenceDomain(created), nil
}

func (repo *preferenceRepository) CreateParticipant(ctx context.Context, participant entity.UserActivityPreferenceParticipant) (entity.UserActivityPreferenceParticipant, error) {
	payload := model.FromPreferenceParticipantDomain(participant)

	var created model.PreferenceParticipantModel
	if err := repo.client.postJSON(ctx, "/user_activity_preference_participant", payload, &created); err != nil {
		return entity.UserActivityPreferenceParticipant{}, err
	}

	return model.ToPreferenceParticipantDomain(created), nil
}
