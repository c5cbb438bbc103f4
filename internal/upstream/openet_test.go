package upstream

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shenikar/presoak_risk_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const openETCSV = `DateTime,ET (mm)
2025-07-28,4.0
2025-07-29,5.0
2025-07-30,6.0
2025-07-31,3.0
2025-08-01,2.0
2025-08-02,4.0
2025-08-03,5.0
2025-08-04,6.0
`

func TestOpenETClient_FetchET_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/raster/timeseries/point", r.URL.Path)
		assert.Equal(t, "openet-token", r.Header.Get("Authorization"))

		var payload timeseriesRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, []string{"2025-07-28", "2025-08-04"}, payload.DateRange)
		assert.Equal(t, []float64{-120.9, 37.6}, payload.Geometry)
		assert.Equal(t, "daily", payload.Interval)
		assert.Equal(t, "Ensemble", payload.Model)
		assert.Equal(t, "ET", payload.Variable)
		assert.Equal(t, "gridMET", payload.ReferenceET)
		assert.Equal(t, "mm", payload.Units)
		assert.Equal(t, "CSV", payload.FileFormat)

		_, _ = w.Write([]byte(openETCSV))
	}))
	defer srv.Close()

	opts, _ := testOptions()
	c := NewOpenETClient(testConfig(srv.URL), opts)

	series, ok := c.FetchET(context.Background(), 37.6, -120.9).Get()
	require.True(t, ok)
	require.Len(t, series, 8)

	last := LatestET(series)
	assert.Equal(t, 6.0, last.ETmm)
	assert.InDelta(t, 35.0, last.Cumulative, 1e-9)
	assert.InDelta(t, 5.0, last.RollingMean3d, 1e-9)
	assert.InDelta(t, (5.0+6+3+2+4+5+6)/7, last.RollingMean7d, 1e-9)
}

func TestOpenETClient_FetchET_Unavailable(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"server error", http.StatusInternalServerError, "oops"},
		{"unauthorized", http.StatusUnauthorized, `{"detail":"bad token"}`},
		{"empty body", http.StatusOK, ""},
		{"header only", http.StatusOK, "DateTime,ET (mm)\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			opts, _ := testOptions()
			c := NewOpenETClient(testConfig(srv.URL), opts)

			res := c.FetchET(context.Background(), 37.6, -120.9)
			assert.False(t, res.IsAvailable())
			assert.Error(t, res.Err())
		})
	}
}

func TestParseOpenETCSV_MissingETColumn(t *testing.T) {
	samples, err := parseOpenETCSV([]byte("DateTime,ETo (mm)\n2025-08-01,7.1\n2025-08-02,6.8\n"))
	require.NoError(t, err)
	require.Len(t, samples, 2)
	assert.Equal(t, "2025-08-01", samples[0].Date)
	assert.Zero(t, samples[0].ETmm)
	assert.Zero(t, samples[1].ETmm)
}

func TestParseOpenETCSV_NonFiniteValues(t *testing.T) {
	body := []byte("DateTime,ET (mm)\n2025-08-01,1\n2025-08-02,NaN\n2025-08-03,Inf\n2025-08-04,2\n")

	samples, err := parseOpenETCSV(body)
	require.NoError(t, err)
	require.Len(t, samples, 4)
	assert.Zero(t, samples[1].ETmm)
	assert.Zero(t, samples[2].ETmm)

	latest := LatestET(DeriveETSeries(samples))
	assert.Equal(t, 2.0, latest.ETmm)
	assert.Equal(t, 3.0, latest.Cumulative)
	assert.InDelta(t, 2.0/3, latest.RollingMean3d, 1e-9)

	_, err = json.Marshal(models.FusedRecord{ET: latest}.Flatten())
	assert.NoError(t, err)
}

func TestDeriveETSeries(t *testing.T) {
	in := []models.ETSample{{ETmm: 1}, {ETmm: 2}, {ETmm: 3}, {ETmm: 6}}

	out := DeriveETSeries(in)
	require.Len(t, out, 4)

	assert.Equal(t, []float64{1, 3, 6, 12}, []float64{out[0].Cumulative, out[1].Cumulative, out[2].Cumulative, out[3].Cumulative})
	// окно в 3 дня заполняется на третьей строке
	assert.Zero(t, out[0].RollingMean3d)
	assert.Zero(t, out[1].RollingMean3d)
	assert.InDelta(t, 2.0, out[2].RollingMean3d, 1e-9)
	assert.InDelta(t, 11.0/3, out[3].RollingMean3d, 1e-9)
	// окно в 7 дней не заполнено
	assert.Zero(t, out[3].RollingMean7d)
	// вход не изменяется
	assert.Zero(t, in[3].Cumulative)
}

func TestLatestET_Empty(t *testing.T) {
	assert.Equal(t, models.ETSummary{}, LatestET(nil))
}
