package risk

import (
	"testing"

	"github.com/shenikar/presoak_risk_system/internal/models"
	"github.com/stretchr/testify/assert"
)

func ptr(v float64) *float64 { return &v }

func TestComputeSERI_MaximumInputs(t *testing.T) {
	got := ComputeSERI(SERIInputs{
		FireIntensity: 500,
		NearestFireKm: ptr(0),
		AQI:           5,
		PM25:          150,
		ETRolling3d:   0,
	})

	assert.InDelta(t, 100.0, got.Score, 1e-9)
	assert.Equal(t, models.BandCritical, got.Band)
}

func TestComputeSERI_NoFiresUsesFarDistance(t *testing.T) {
	got := ComputeSERI(SERIInputs{AQI: 1, ETRolling3d: 10})

	assert.Equal(t, 0.0, got.Score)
	assert.Equal(t, models.BandLow, got.Band)
}

func TestComputeSERI_MissingAQIIsTreatedAsGood(t *testing.T) {
	withZero := ComputeSERI(SERIInputs{AQI: 0, ETRolling3d: 5})
	withOne := ComputeSERI(SERIInputs{AQI: 1, ETRolling3d: 5})

	assert.Equal(t, withOne, withZero)
	assert.InDelta(t, 10.0, withZero.Score, 1e-9) // только ET: 50 * 0.2
}

func TestComputeSERI_Clamped(t *testing.T) {
	tests := []struct {
		name string
		in   SERIInputs
	}{
		{"huge values", SERIInputs{FireIntensity: 1e9, NearestFireKm: ptr(-100), AQI: 99, PM25: 1e9, ETRolling3d: -50}},
		{"negative values", SERIInputs{FireIntensity: -1e9, NearestFireKm: ptr(1e9), AQI: -3, PM25: -1e9, ETRolling3d: 1e9}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeSERI(tt.in)
			assert.GreaterOrEqual(t, got.Score, 0.0)
			assert.LessOrEqual(t, got.Score, 100.0)
		})
	}
}

func TestComputeSERI_Components(t *testing.T) {
	// fire 250 -> 50, distance 25 км -> 50, aqi 3 -> 50, pm25 75 -> 50, et 5 -> 50
	got := ComputeSERI(SERIInputs{
		FireIntensity: 250,
		NearestFireKm: ptr(25),
		AQI:           3,
		PM25:          75,
		ETRolling3d:   5,
	})

	assert.InDelta(t, 50.0, got.Score, 1e-9)
	assert.Equal(t, models.BandHigh, got.Band)
}

func TestBand_Boundaries(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{0, models.BandLow},
		{24.999, models.BandLow},
		{25, models.BandModerate},
		{49.999, models.BandModerate},
		{50, models.BandHigh},
		{74.999, models.BandHigh},
		{75, models.BandCritical},
		{100, models.BandCritical},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Band(tt.score), "score %v", tt.score)
	}
}

func TestBandRank(t *testing.T) {
	assert.Less(t, BandRank(models.BandLow), BandRank(models.BandModerate))
	assert.Less(t, BandRank(models.BandModerate), BandRank(models.BandHigh))
	assert.Less(t, BandRank(models.BandHigh), BandRank(models.BandCritical))
	assert.Equal(t, -1, BandRank("EXTREME"))
}

func TestInputsFromRecord(t *testing.T) {
	rec := models.FusedRecord{
		Fire:       models.FireSummary{Intensity: 12, NearestKm: ptr(3), Count: 2},
		AirQuality: models.AirQualityReading{Index: 4, PM25: 33},
		ET:         models.ETSummary{ETmm: 5, RollingMean3d: 4.5},
	}

	in := InputsFromRecord(rec)
	assert.Equal(t, 12.0, in.FireIntensity)
	assert.Equal(t, 3.0, *in.NearestFireKm)
	assert.Equal(t, 4, in.AQI)
	assert.Equal(t, 33.0, in.PM25)
	assert.Equal(t, 4.5, in.ETRolling3d)
}

func TestRecommendedPump(t *testing.T) {
	for _, p := range []float64{0, 1, 50, 123.5, 10000} {
		assert.Equal(t, p*85, RecommendedPump(p))
	}
	assert.Equal(t, 4250.0, RecommendedPump(50))
}

func TestAdviseIrrigation(t *testing.T) {
	tests := []struct {
		name          string
		in            IrrigationInputs
		wantScore     int
		wantTier      string
		wantShortfall bool
	}{
		{
			name:      "no fires, clean air, adequate pump",
			in:        IrrigationInputs{AQI: 1, ETmm: 2, PerimeterLength: 50, PumpCapacity: 4250},
			wantScore: 0,
			wantTier:  models.TierNormal,
		},
		{
			name:      "fire just inside 20 km",
			in:        IrrigationInputs{NearestFireKm: ptr(19.9), AQI: 3, ETmm: 4, PerimeterLength: 50, PumpCapacity: 5000},
			wantScore: 3,
			wantTier:  models.TierModerate,
		},
		{
			name:          "everything at maximum",
			in:            IrrigationInputs{NearestFireKm: ptr(1), AQI: 5, ETmm: 8, PerimeterLength: 50, PumpCapacity: 1000},
			wantScore:     9,
			wantTier:      models.TierCritical,
			wantShortfall: true,
		},
		{
			name:          "pump shortfall alone",
			in:            IrrigationInputs{AQI: 2, ETmm: 1, PerimeterLength: 100, PumpCapacity: 4250},
			wantScore:     2,
			wantTier:      models.TierNormal,
			wantShortfall: true,
		},
		{
			name:      "fire at 7 km with poor air",
			in:        IrrigationInputs{NearestFireKm: ptr(7), AQI: 4, ETmm: 6, PerimeterLength: 10, PumpCapacity: 850},
			wantScore: 6,
			wantTier:  models.TierCritical,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AdviseIrrigation(tt.in)
			assert.Equal(t, tt.wantScore, got.Score)
			assert.Equal(t, tt.wantTier, got.Tier)
			assert.Equal(t, tt.wantShortfall, got.PumpShortfall)
			assert.Equal(t, RecommendedPump(tt.in.PerimeterLength), got.RecommendedPump)
			assert.NotEmpty(t, got.Recommendation)
			if tt.wantShortfall {
				assert.Contains(t, got.Recommendation, "below the recommended")
			} else {
				assert.NotContains(t, got.Recommendation, "below the recommended")
			}
		})
	}
}

func TestAdviseIrrigation_ScoreRange(t *testing.T) {
	for _, km := range []*float64{nil, ptr(0), ptr(4.9), ptr(9.9), ptr(50)} {
		for aqi := 0; aqi <= 5; aqi++ {
			for _, et := range []float64{0, 4, 6, 12} {
				for _, pump := range []float64{0, 10000} {
					got := AdviseIrrigation(IrrigationInputs{NearestFireKm: km, AQI: aqi, ETmm: et, PerimeterLength: 50, PumpCapacity: pump})
					assert.GreaterOrEqual(t, got.Score, 0)
					assert.LessOrEqual(t, got.Score, 9)
				}
			}
		}
	}
}
