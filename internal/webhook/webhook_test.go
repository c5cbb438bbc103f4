package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/presoak_risk_system/internal/config"
	"github.com/shenikar/presoak_risk_system/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestWorker — воркер без Redis, задержки записываются вместо ожидания
func newTestWorker(cfg *config.Config) (*AlertWorker, *[]time.Duration) {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	delays := &[]time.Duration{}
	w := NewAlertWorker(nil, logger, cfg)
	w.sleep = func(_ context.Context, d time.Duration) {
		*delays = append(*delays, d)
	}
	return w, delays
}

func sampleEvent() (AlertEvent, string) {
	nearest := 2.5
	event := NewAlertEvent(&models.Simulation{
		ID: uuid.MustParse("2b1f0c1e-8f6e-4b3a-9d2c-1a2b3c4d5e6f"),
		Record: models.FusedRecord{
			Fire:      models.FireSummary{NearestKm: &nearest},
			Latitude:  37.6,
			Longitude: -120.9,
			Date:      "2025-08-04",
			Risk:      models.RiskAssessment{Score: 82, Band: models.BandCritical},
		},
		Irrigation: models.IrrigationAdvice{Tier: models.TierCritical, Recommendation: "Start pre-soak now."},
		CreatedAt:  time.Date(2025, 8, 4, 18, 0, 0, 0, time.UTC),
	})
	payload, _ := json.Marshal(event)
	return event, string(payload)
}

func TestNewAlertEvent(t *testing.T) {
	event, payload := sampleEvent()

	assert.Equal(t, "2b1f0c1e-8f6e-4b3a-9d2c-1a2b3c4d5e6f", event.RunID.String())
	assert.Equal(t, models.BandCritical, event.Band)
	assert.Equal(t, models.TierCritical, event.IrrigationTier)
	require.NotNil(t, event.NearestFireKm)
	assert.Equal(t, 2.5, *event.NearestFireKm)
	assert.Contains(t, payload, `"SERI_band":"CRITICAL"`)
	assert.Contains(t, payload, `"recommendation_class":"critical"`)
}

func TestDeliver_SignedSuccess(t *testing.T) {
	event, payload := sampleEvent()
	var gotBody, gotSignature, gotContentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		gotSignature = r.Header.Get("X-Webhook-Signature")
		gotContentType = r.Header.Get("Content-Type")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	w, delays := newTestWorker(&config.Config{
		WebhookURL:        srv.URL,
		WebhookSecret:     "s3cret",
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 3,
		WebhookBaseDelay:  time.Second,
	})

	err := w.deliver(context.Background(), event, payload)

	require.NoError(t, err)
	assert.Equal(t, payload, gotBody)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, generateHMACSHA256(payload, "s3cret"), gotSignature)
	assert.Empty(t, *delays)
}

func TestDeliver_RetriesWithBackoff(t *testing.T) {
	event, payload := sampleEvent()
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	w, delays := newTestWorker(&config.Config{
		WebhookURL:        srv.URL,
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 3,
		WebhookBaseDelay:  100 * time.Millisecond,
	})

	err := w.deliver(context.Background(), event, payload)

	require.NoError(t, err)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
	assert.Equal(t, []time.Duration{100 * time.Millisecond, 200 * time.Millisecond}, *delays)
}

func TestDeliver_GivesUp(t *testing.T) {
	event, payload := sampleEvent()
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	w, delays := newTestWorker(&config.Config{
		WebhookURL:        srv.URL,
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 2,
		WebhookBaseDelay:  time.Second,
	})

	err := w.deliver(context.Background(), event, payload)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "after 2 attempts")
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
	assert.Len(t, *delays, 1)
}

func TestDeliver_NoURLSkips(t *testing.T) {
	event, payload := sampleEvent()
	w, delays := newTestWorker(&config.Config{WebhookTimeout: time.Second})

	assert.NoError(t, w.deliver(context.Background(), event, payload))
	assert.Empty(t, *delays)
}

func TestGenerateHMACSHA256(t *testing.T) {
	// Известное значение HMAC-SHA256("data", "key")
	assert.Equal(t, "5031fe3d989c6d1537a013fa6e739da23463fdaec3b70137d828e36ace221bd0", generateHMACSHA256("data", "key"))
	assert.NotEqual(t, generateHMACSHA256("data", "key"), generateHMACSHA256("data", "other"))
}
