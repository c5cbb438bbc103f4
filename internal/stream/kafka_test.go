package stream

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/presoak_risk_system/internal/config"
	"github.com/shenikar/presoak_risk_system/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerializeToMessage(t *testing.T) {
	now := time.Date(2025, 8, 4, 18, 0, 0, 0, time.UTC)
	id := uuid.MustParse("7c0e1b52-5d0a-4a3e-9f55-2f3c1d9b6a11")
	sim := &models.Simulation{
		ID:    id,
		Query: models.LocationQuery{Latitude: 37.6, Longitude: -120.9, Demo: true},
		Record: models.FusedRecord{
			Latitude:  37.6,
			Longitude: -120.9,
			Date:      "2025-08-04",
			Risk:      models.RiskAssessment{Score: 81.5, Band: models.BandCritical},
			Sources:   models.SourceStatus{Fires: true, Weather: true},
		},
		Irrigation: models.IrrigationAdvice{Score: 7, Tier: models.TierCritical, RecommendedPump: 4250},
		CreatedAt:  now,
	}

	msg, err := serializeToMessage(sim)
	require.NoError(t, err)

	assert.Equal(t, []byte(id.String()), msg.Key)
	assert.Equal(t, now, msg.Time)
	require.Len(t, msg.Headers, 3)
	assert.Equal(t, "seri_band", msg.Headers[0].Key)
	assert.Equal(t, []byte("CRITICAL"), msg.Headers[0].Value)
	assert.Equal(t, "irrigation_score", msg.Headers[1].Key)
	assert.Equal(t, []byte("7"), msg.Headers[1].Value)
	assert.Equal(t, "created_at", msg.Headers[2].Key)
	assert.Equal(t, []byte(now.Format(time.RFC3339)), msg.Headers[2].Value)

	var body map[string]any
	require.NoError(t, json.Unmarshal(msg.Value, &body))
	assert.Equal(t, id.String(), body["run_id"])
	assert.Equal(t, "CRITICAL", body["SERI_band"])
	assert.Equal(t, "critical", body["recommendation_class"])
	assert.Equal(t, true, body["demo"])
	assert.Contains(t, body, "nearest_fire_km")
	assert.Nil(t, body["nearest_fire_km"])
	assert.Equal(t, map[string]any{"fires": true, "weather": true, "air_quality": false, "et": false}, body["sources"])
}

func TestNewWriter(t *testing.T) {
	cfg := &config.Config{KafkaBrokers: []string{"localhost:9092"}, KafkaTopic: "presoak-records"}

	w := NewWriter(cfg, logrus.New())

	assert.Equal(t, "presoak-records", w.writer.Topic)
	assert.NoError(t, w.Close())
}
