package repository

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/presoak_risk_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeQuerier запоминает аргументы последнего Exec
type fakeQuerier struct {
	execArgs []any
	execErr  error
}

func (f *fakeQuerier) Exec(_ context.Context, _ string, args ...any) (pgconn.CommandTag, error) {
	f.execArgs = args
	if f.execErr != nil {
		return pgconn.CommandTag{}, f.execErr
	}
	return pgconn.NewCommandTag("INSERT 0 1"), nil
}

func (f *fakeQuerier) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, errors.New("not implemented")
}

// unreachableRedis - клиент, у которого любая команда завершается ошибкой соединения
func unreachableRedis(t *testing.T) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func sampleSimulation() *models.Simulation {
	nearest := 4.2
	return &models.Simulation{
		ID:    uuid.New(),
		Query: models.LocationQuery{Latitude: 37.6, Longitude: -120.9, PerimeterLength: 50, PumpCapacity: 4250, Demo: true},
		Record: models.FusedRecord{
			Fire:      models.FireSummary{Intensity: 40, NearestKm: &nearest, Count: 3},
			Latitude:  37.6,
			Longitude: -120.9,
			Date:      "2025-08-04",
			Risk:      models.RiskAssessment{Score: 61.5, Band: models.BandHigh},
		},
		Irrigation: models.IrrigationAdvice{Score: 4, Tier: models.TierModerate},
		Fires:      []models.MapFire{},
		CreatedAt:  time.Date(2025, 8, 4, 18, 0, 0, 0, time.UTC),
	}
}

func TestSave_StoresFlatRecord(t *testing.T) {
	db := &fakeQuerier{}
	repo := &SimulationRepository{db: db}

	require.NoError(t, repo.Save(context.Background(), sampleSimulation()))

	require.Len(t, db.execArgs, 14)
	raw, ok := db.execArgs[11].([]byte)
	require.True(t, ok)

	var stored map[string]any
	require.NoError(t, json.Unmarshal(raw, &stored))
	assert.Len(t, stored, len(models.CSVHeader()))
	for _, key := range models.CSVHeader() {
		assert.Contains(t, stored, key)
	}
	assert.Equal(t, "HIGH", stored["SERI_band"])
	assert.Equal(t, 4.2, stored["nearest_fire_km"])
}

func TestSave_CacheFailureIsNotAnError(t *testing.T) {
	db := &fakeQuerier{}
	repo := &SimulationRepository{db: db, redisClient: unreachableRedis(t)}

	err := repo.Save(context.Background(), sampleSimulation())

	assert.NoError(t, err)
	assert.NotEmpty(t, db.execArgs)
}

func TestSave_InsertError(t *testing.T) {
	repo := &SimulationRepository{db: &fakeQuerier{execErr: errors.New("connection reset")}}

	err := repo.Save(context.Background(), sampleSimulation())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to save simulation")
}
