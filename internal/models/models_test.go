package models

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResult_Available(t *testing.T) {
	r := Available(WeatherReading{Temperature: 25})

	v, ok := r.Get()
	assert.True(t, ok)
	assert.True(t, r.IsAvailable())
	assert.NoError(t, r.Err())
	assert.Equal(t, 25.0, v.Temperature)
	assert.Equal(t, 25.0, r.OrDefault(WeatherReading{Temperature: -1}).Temperature)
}

func TestResult_Unavailable(t *testing.T) {
	cause := errors.New("timeout")
	r := Unavailable[AirQualityReading](cause)

	_, ok := r.Get()
	assert.False(t, ok)
	assert.False(t, r.IsAvailable())
	assert.ErrorIs(t, r.Err(), cause)
	assert.Equal(t, AirQualityReading{Index: 1}, r.OrDefault(AirQualityReading{Index: 1}))

	// Без причины все равно есть ошибка
	assert.Error(t, Unavailable[int](nil).Err())
}

func TestFlatten_AlwaysHasEveryKey(t *testing.T) {
	rec := FusedRecord{Latitude: 37.6, Longitude: -120.9, Date: "2025-08-04", Risk: RiskAssessment{Score: 20, Band: BandLow}}

	raw, err := json.Marshal(rec.Flatten())
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	for _, key := range CSVHeader() {
		assert.Contains(t, decoded, key)
	}
	assert.Len(t, decoded, len(CSVHeader()))
	assert.Nil(t, decoded["nearest_fire_km"])
	assert.Equal(t, "LOW", decoded["SERI_band"])
}

func TestCSVRow(t *testing.T) {
	nearest := 3.25
	rec := FusedRecord{
		Fire:       FireSummary{Intensity: 12.5, NearestKm: &nearest, Count: 4},
		AirQuality: AirQualityReading{Index: 2, PM25: 8.1},
		Date:       "2025-08-04",
		Risk:       RiskAssessment{Score: 33.3, Band: BandModerate},
	}

	row := rec.Flatten().CSVRow()
	require.Len(t, row, len(CSVHeader()))
	assert.Equal(t, "12.5", row[0])
	assert.Equal(t, "3.25", row[1])
	assert.Equal(t, "4", row[2])
	assert.Equal(t, "2", row[8])
	assert.Equal(t, "2025-08-04", row[17])
	assert.Equal(t, "MODERATE", row[19])

	rec.Fire.NearestKm = nil
	assert.Equal(t, "", rec.Flatten().CSVRow()[1])
}
