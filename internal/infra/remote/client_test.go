package remote

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gather/internal/domain/entity"
	"gather/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewClientWithBase(server.URL, 5*time.Second, logger)
}

func TestUserRepository_FindByIDs_JoinsIDs(t *testing.T) {
	var gotPath string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		assert.Equal(t, http.MethodGet, r.Method)
		assert.NotEmpty(t, r.Header.Get("X-Request-Id"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":3,"name":"Sam","email":"sam@example.com"},{"id":7,"name":"Ana","email":"ana@example.com"}]`))
	})

	users, err := NewUserRepository(client).FindByIDs(context.Background(), []int{3, 7})

	require.NoError(t, err)
	assert.Equal(t, "/users/3,7", gotPath)
	require.Len(t, users, 2)
	assert.Equal(t, "Sam", users[0].Name)
}

func TestUserRepository_FindByIDs_EmptySetSkipsRoundTrip(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected for an empty id set")
	})

	users, err := NewUserRepository(client).FindByIDs(context.Background(), nil)

	require.NoError(t, err)
	assert.Nil(t, users)
}

func TestScheduleRepository_FindByIDs_FlexibleDateDecode(t *testing.T) {
	// The service emits timestamps in several historical layouts; all must
	// decode to the same instant.
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id":1,"activity_id":20,"scheduled_at":"2025-03-10T12:00:00Z","is_active":true},
			{"id":2,"activity_id":20,"scheduled_at":"2025-03-10T12:00:00.000+0000","is_active":true},
			{"id":3,"activity_id":20,"scheduled_at":"2025-03-10T07:00:00-0500","is_active":true}
		]`))
	})

	schedule, err := NewScheduleRepository(client).FindByIDs(context.Background(), []int{1, 2, 3})

	require.NoError(t, err)
	require.Len(t, schedule, 3)
	expected := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)
	for _, sa := range schedule {
		assert.True(t, sa.ScheduledAt.Equal(expected), "id %d decoded to %v", sa.ID, sa.ScheduledAt)
	}
}

func TestScheduleRepository_Update_EmitsCanonicalUTC(t *testing.T) {
	var body map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/scheduled_activity/11", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":11,"activity_id":21,"scheduled_at":"2025-03-10T17:30:00Z","is_active":true}`))
	})

	loc := time.FixedZone("UTC+2", 2*60*60)
	input := entity.ScheduledActivity{
		ID:          11,
		ActivityID:  21,
		ScheduledAt: time.Date(2025, time.March, 10, 19, 30, 0, 0, loc),
		IsActive:    true,
	}

	updated, err := NewScheduleRepository(client).Update(context.Background(), input)

	require.NoError(t, err)
	// Outbound timestamps are always RFC 3339 in UTC, whatever zone the
	// caller handed in.
	assert.Equal(t, "2025-03-10T17:30:00Z", body["scheduled_at"])
	assert.True(t, updated.ScheduledAt.Equal(input.ScheduledAt))
}

func TestScheduleRepository_CreateBatch_FormatsDatesInZone(t *testing.T) {
	var body map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/scheduled_activities", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":10,"activity_id":21,"scheduled_at":"2025-03-11T09:00:00Z","is_active":true}]`))
	})

	tz, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	created, err := NewScheduleRepository(client).CreateBatch(context.Background(), repository.CreateScheduleInput{
		ActivityID: 21,
		// Midnight UTC on the 11th is still the 10th in New York.
		Dates:     []time.Time{time.Date(2025, time.March, 11, 0, 0, 0, 0, time.UTC)},
		StartTime: time.Date(2025, time.March, 11, 9, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2025, time.March, 11, 10, 0, 0, 0, time.UTC),
		TimeZone:  tz,
	})

	require.NoError(t, err)
	require.Len(t, created, 1)
	assert.Equal(t, float64(21), body["activity_id"])
	assert.Equal(t, []any{"2025-03-10"}, body["selected_dates"])
	assert.Equal(t, "America/New_York", body["time_zone"])
}

func TestLocationRepository_FindByIDs_CoordinateFallback(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/locations/31,32", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id":31,"name":"Downtown","latitude":40.7,"longitude":-74.0},
			{"id":32,"name":"Unknown"}
		]`))
	})

	locations, err := NewLocationRepository(client).FindByIDs(context.Background(), []int{31, 32})

	require.NoError(t, err)
	require.Len(t, locations, 2)
	assert.Equal(t, 40.7, locations[0].Latitude)
	assert.Equal(t, -74.0, locations[0].Longitude)
	// Missing coordinates decode to the pole marker, not 0,0.
	assert.Equal(t, 90.0, locations[1].Latitude)
	assert.Equal(t, 0.0, locations[1].Longitude)
}

func TestParticipantRepository_Routes(t *testing.T) {
	var paths []string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.Method+" "+r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.Method == http.MethodGet:
			_, _ = w.Write([]byte(`[]`))
		default:
			_, _ = w.Write([]byte(`{"id":101,"user_id":3,"scheduled_activity_id":10,"invite_status":"Pending"}`))
		}
	})

	repo := NewParticipantRepository(client)
	ctx := context.Background()

	_, err := repo.ListByUser(ctx, 3)
	require.NoError(t, err)
	_, err = repo.ListByScheduledActivities(ctx, []int{10, 11})
	require.NoError(t, err)
	_, err = repo.Create(ctx, entity.ActivityParticipant{UserID: 3, ScheduledActivityID: 10, InviteStatus: entity.InviteStatusPending})
	require.NoError(t, err)
	updated, err := repo.Update(ctx, entity.ActivityParticipant{ID: 101, UserID: 3, ScheduledActivityID: 10, InviteStatus: entity.InviteStatusAccepted})
	require.NoError(t, err)
	assert.True(t, updated.InviteStatus.Is(entity.InviteStatusPending))

	assert.Equal(t, []string{
		"GET /activity_participants/user/3",
		"GET /activity_participants/scheduled_activities/10,11",
		"POST /activity_participant",
		"PUT /activity_participant/101",
	}, paths)
}

func TestClient_NonSuccessStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := NewUserRepository(client).FindByIDs(context.Background(), []int{3})

	require.Error(t, err)
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusInternalServerError, statusErr.Code)
	assert.Equal(t, "/users/3", statusErr.Path)
}

func TestClient_DecodeFailure(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<html>gateway error</html>`))
	})

	_, err := NewUserRepository(client).FindByIDs(context.Background(), []int{3})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode GET /users/3 response")
}

func TestScheduleRepository_Delete(t *testing.T) {
	var gotPath, gotMethod string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	})

	err := NewScheduleRepository(client).Delete(context.Background(), 11)

	require.NoError(t, err)
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/scheduled_activity/11", gotPath)
}
