package remote

import (
	"context"
	"strconv"

	"gather/internal/domain/entity"
	"gather/internal/domain/repository"
	"gather/internal/infra/remote/model"
)

type participantRepository struct {
	client *Client
}

// NewParticipantRepository is the constructor for participantRepository.
func NewParticipantRepository(client *Client) repository.ParticipantRepository {
	return &participantRepository{client: client}
}

func (repo *participantRepository) ListByUser(ctx context.Context, userID int) ([]entity.ActivityParticipant, error) {
	var models []model.ParticipantModel
	if err := repo.client.getJSON(ctx, "/activity_participants/user/"+strconv.Itoa(userID), &models); err != nil {
		return nil, err
	}

	return model.ToParticipantDomains(models), nil
}

func (repo *participantRepository) ListByScheduledActivities(ctx context.Context, scheduledActivityIDs []int) ([]entity.ActivityParticipant, error) {
	if len(scheduledActivityIDs) == 0 {
		return nil, nil
	}

	var models []model.ParticipantModel
	path := "/activity_participants/scheduled_activities/" + joinIDs(scheduledActivityIDs)
	if err := repo.client.getJSON(ctx, path, &models); err != nil {
		return nil, err
	}

	return model.ToParticipantDomains(models), nil
}

func (repo *participantRepository) Create(ctx context.Context, participant entity.ActivityParticipant) (entity.ActivityParticipant, error) {
	payload := model.FromParticipantDomain(participant)

	var created model.ParticipantModel
	if err := repo.client.postJSON(ctx, "/activity_participant", payload, &created); err != nil {
		return entity.ActivityParticipant{}, err
	}

	return model.ToParticipantDomain(created), nil
}

func (repo *participantRepository) Update(ctx context.Context, participant entity.ActivityParticipant) (entity.ActivityParticipant, error) {
	payload := model.FromParticipantDomain(participant)

	var updated model.ParticipantModel
	if err := repo.client.putJSON(ctx, "/activity_participant/"+strconv.Itoa(participant.ID), payload, &updated); err != nil {
		return entity.ActivityParticipant{}, err
	}

	return model.ToParticipantDomain(updated), nil
}
