package repository_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carmatch/backend/internal/engine"
	"carmatch/backend/internal/model"
	"carmatch/backend/internal/repository"
)

func newMockRepo(t *testing.T) (repository.Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return repository.NewSQLiteRepository(db), mock
}

func sessionColumns() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "user_id", "created_at", "last_interaction_at", "parameters", "original_user_input"})
}

func TestStartNewSession(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO sessions")).
		WithArgs(sqlmock.AnyArg(), "user-1", sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), "").
		WillReturnResult(sqlmock.NewResult(1, 1))

	session, err := repo.StartNewSession(context.Background(), "user-1")

	require.NoError(t, err)
	assert.NotEmpty(t, session.ID)
	assert.Equal(t, "user-1", session.UserID)
	assert.True(t, session.Parameters.IsEmpty())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetSession(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		now := time.Now().UTC()
		params, _ := json.Marshal(model.RecommendationParameters{PreferredMakes: []string{"BMW"}})

		mock.ExpectQuery(regexp.QuoteMeta("FROM sessions WHERE id = ?")).
			WithArgs("s1").
			WillReturnRows(sessionColumns().AddRow("s1", "user-1", now, now, string(params), "find me a car"))

		session, err := repo.GetSession(context.Background(), "s1")

		require.NoError(t, err)
		assert.Equal(t, "s1", session.ID)
		assert.Equal(t, []string{"BMW"}, session.Parameters.PreferredMakes)
		assert.Equal(t, "find me a car", session.OriginalUserInput)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta("FROM sessions WHERE id = ?")).
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		_, err := repo.GetSession(context.Background(), "missing")

		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("corrupt parameters column", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		now := time.Now().UTC()
		mock.ExpectQuery(regexp.QuoteMeta("FROM sessions WHERE id = ?")).
			WithArgs("s1").
			WillReturnRows(sessionColumns().AddRow("s1", "user-1", now, now, "{not json", ""))

		_, err := repo.GetSession(context.Background(), "s1")

		assert.Error(t, err)
		assert.NotErrorIs(t, err, repository.ErrNotFound)
	})
}

func TestGetLatestSession(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY last_interaction_at DESC LIMIT 1")).
		WithArgs("user-1").
		WillReturnRows(sessionColumns().AddRow("s2", "user-1", now, now, "{}", ""))

	session, err := repo.GetLatestSession(context.Background(), "user-1")

	require.NoError(t, err)
	assert.Equal(t, "s2", session.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCommitTurn(t *testing.T) {
	now := time.Now().UTC()
	session := &model.ConversationSession{
		ID:                "s1",
		UserID:            "user-1",
		LastInteractionAt: now,
		Parameters:        model.RecommendationParameters{PreferredMakes: []string{"Audi"}},
	}

	t.Run("updates session and appends history atomically", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		params, _ := json.Marshal(session.Parameters)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("UPDATE sessions")).
			WithArgs(string(params), now, "", "s1").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO chat_history")).
			WithArgs(sqlmock.AnyArg(), "s1", "an audi", "I found 1 matching vehicle(s)", now).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()

		record := &model.ChatHistoryRecord{
			ConversationID:   "s1",
			UserMessage:      "an audi",
			AssistantMessage: "I found 1 matching vehicle(s)",
			CreatedAt:        now,
		}
		err := repo.CommitTurn(context.Background(), session, record)

		require.NoError(t, err)
		assert.NotEmpty(t, record.ID, "an id is assigned on write")
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("session gone rolls back", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("UPDATE sessions")).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err := repo.CommitTurn(context.Background(), session, &model.ChatHistoryRecord{ConversationID: "s1"})

		assert.ErrorIs(t, err, repository.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("history insert failure rolls back", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("UPDATE sessions")).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO chat_history")).
			WillReturnError(errors.New("disk full"))
		mock.ExpectRollback()

		err := repo.CommitTurn(context.Background(), session, &model.ChatHistoryRecord{ConversationID: "s1"})

		assert.Error(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGetHistory(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Now().UTC()

	rows := sqlmock.NewRows([]string{"id", "session_id", "user_message", "assistant_message", "created_at"}).
		AddRow("r1", "s1", "find me a car", "Happy to help!", now.Add(-time.Minute)).
		AddRow("r2", "s1", "20000", "I found 2 matching vehicle(s)", now)
	mock.ExpectQuery(regexp.QuoteMeta("FROM chat_history WHERE session_id = ? ORDER BY created_at ASC, id ASC")).
		WithArgs("s1").
		WillReturnRows(rows)

	records, err := repo.GetHistory(context.Background(), "s1")

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "r1", records[0].ID)
	assert.Equal(t, "20000", records[1].UserMessage)
	require.NoError(t, mock.ExpectationsWereMet())
}

func vehicleColumns() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "make", "model", "year", "price", "mileage", "fuel_type", "vehicle_type",
		"transmission", "engine_size", "horse_power", "features", "primary_image_url", "listed_at",
	})
}

func TestSearchVehicles(t *testing.T) {
	t.Run("filters compose as AND with NOT IN on top", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		now := time.Now().UTC()
		price := 30000.0
		spec := engine.BuildQuery(model.RecommendationParameters{
			MaxPrice:              &price,
			PreferredVehicleTypes: []model.VehicleType{model.VehicleSUV},
			RejectedFuelTypes:     []model.FuelType{model.FuelDiesel},
			DesiredFeatures:       []string{"sunroof"},
		}, 5)

		expected := regexp.QuoteMeta(
			"FROM vehicles WHERE price <= ? AND vehicle_type IN (?) AND fuel_type NOT IN (?) AND (features LIKE ?) ORDER BY listed_at DESC, id ASC LIMIT ?")
		mock.ExpectQuery(expected).
			WithArgs(30000.0, "SUV", "Diesel", `%"sunroof"%`, 5).
			WillReturnRows(vehicleColumns().
				AddRow("v1", "BMW", "X3", 2019, 28500.0, 45000, "Petrol", "SUV", "Automatic", 2.0, 184, `["sunroof","navigation"]`, "", now))

		vehicles, err := repo.SearchVehicles(context.Background(), spec)

		require.NoError(t, err)
		require.Len(t, vehicles, 1)
		assert.Equal(t, "BMW", vehicles[0].Make)
		assert.Equal(t, model.FuelPetrol, vehicles[0].FuelType)
		assert.Equal(t, []string{"sunroof", "navigation"}, vehicles[0].Features)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no criteria lists by recency", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectQuery(regexp.QuoteMeta("FROM vehicles ORDER BY listed_at DESC, id ASC LIMIT ?")).
			WithArgs(5).
			WillReturnRows(vehicleColumns())

		vehicles, err := repo.SearchVehicles(context.Background(), engine.BuildQuery(model.RecommendationParameters{}, 5))

		require.NoError(t, err)
		assert.Empty(t, vehicles)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("price ascending order", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		spec := engine.BuildQuery(model.RecommendationParameters{}, 3)
		spec.Order = engine.OrderPriceAscending
		mock.ExpectQuery(regexp.QuoteMeta("ORDER BY price ASC, id ASC LIMIT ?")).
			WithArgs(3).
			WillReturnRows(vehicleColumns())

		_, err := repo.SearchVehicles(context.Background(), spec)

		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCreateVehicle(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Now().UTC()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO vehicles")).
		WithArgs(sqlmock.AnyArg(), "BMW", "X3", 2019, 28500.0, 45000, model.FuelPetrol, model.VehicleSUV,
			model.TransmissionAutomatic, 2.0, 184, `["sunroof","leather seats"]`, "", now).
		WillReturnResult(sqlmock.NewResult(1, 1))

	v := &model.Vehicle{
		Make: "BMW", Model: "X3", Year: 2019, Price: 28500, Mileage: 45000,
		FuelType: model.FuelPetrol, VehicleType: model.VehicleSUV, Transmission: model.TransmissionAutomatic,
		EngineSize: 2.0, HorsePower: 184,
		Features: []string{"Sunroof", " Leather Seats "},
		ListedAt: now,
	}
	err := repo.CreateVehicle(context.Background(), v)

	require.NoError(t, err)
	assert.NotEmpty(t, v.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}
