package remote

import (
	"context"
	"strconv"
	"time"

	"gather/internal/domain/entity"
	"gather/internal/domain/repository"
	"gather/internal/infra/remote/model"
)

type scheduleRepository struct {
	client *Client
}

// NewScheduleRepository is the constructor for scheduleRepository.
func NewScheduleRepository(client *Client) repository.ScheduleRepository {
	return &scheduleRepository{client: client}
}

func (repo *scheduleRepository) FindByIDs(ctx context.Context, ids []int) ([]entity.ScheduledActivity, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var models []model.ScheduledActivityModel
	if err := repo.client.getJSON(ctx, "/scheduled_activities/"+joinIDs(ids), &models); err != nil {
		return nil, err
	}

	return model.ToScheduledActivityDomains(models), nil
}

func (repo *scheduleRepository) CreateBatch(ctx context.Context, input repository.CreateScheduleInput) ([]entity.ScheduledActivity, error) {
	tz := input.TimeZone
	if tz == nil {
		tz = time.Local
	}

	dates := make([]string, 0, len(input.Dates))
	for _, d := range input.Dates {
		dates = append(dates, d.In(tz).Format("2006-01-02"))
	}

	payload := model.CreateScheduledActivitiesRequest{
		ActivityID:    input.ActivityID,
		SelectedDates: dates,
		StartTime:     model.APITime(input.StartTime),
		EndTime:       model.APITime(input.EndTime),
		TimeZone:      tz.String(),
	}

	var models []model.ScheduledActivityModel
	if err := repo.client.postJSON(ctx, "/scheduled_activities", payload, &models); err != nil {
		return nil, err
	}

	return model.ToScheduledActivityDomains(models), nil
}

func (repo *scheduleRepository) Update(ctx context.Context, sa entity.ScheduledActivity) (entity.ScheduledActivity, error) {
	payload := model.FromScheduledActivityDomain(sa)

	var updated model.ScheduledActivityModel
	if err := repo.client.putJSON(ctx, "/scheduled_activity/"+strconv.Itoa(sa.ID), payload, &updated); err != nil {
		return entity.ScheduledActivity{}, err
	}

	return model.ToScheduledActivityDomain(updated), nil
}

func (repo *scheduleRepository) Delete(ctx context.Context, id int) error {
	return repo.client.deleteJSON(ctx, "/scheduled_activity/"+strconv.Itoa(id))
}

func (repo *scheduleRepository) CreateFromPreference(ctx context.Context, preferenceID int, start time.Time, tz *time.Location) ([]entity.ScheduledActivity, error) {
	if tz == nil {
		tz = time.Local
	}

	payload := model.RepeatScheduledActivitiesRequest{
		PreferenceID: preferenceID,
		StartTime:    model.APITime(start),
		TimeZone:     tz.String(),
	}

	var models []model.ScheduledActivityModel
	if err := repo.client.postJSON(ctx, "/scheduled_activity/repeat", payload, &models); err != nil {
		return nil, err
	}

	return model.ToScheduledActivityDomains(models), nil
}
