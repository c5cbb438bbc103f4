package observability

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveUpstream(t *testing.T) {
	m := NewMetricsForTesting()

	m.ObserveUpstream("firms", OutcomeSuccess, time.Now())
	m.ObserveUpstream("firms", OutcomeSuccess, time.Now())
	m.ObserveUpstream("openet", OutcomeError, time.Now())

	assert.Equal(t, 2.0, testutil.ToFloat64(m.UpstreamRequests.WithLabelValues("firms", OutcomeSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.UpstreamRequests.WithLabelValues("openet", OutcomeError)))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.UpstreamRequests.WithLabelValues("weather", OutcomeEmpty)))
}

func TestObserveUpstream_NilMetrics(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() { m.ObserveUpstream("firms", OutcomeSuccess, time.Now()) })
}

func TestGinMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := NewMetricsForTesting()

	router := gin.New()
	router.Use(m.GinMiddleware())
	router.GET("/api/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	for _, path := range []string{"/api/ping", "/api/ping", "/missing"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.HTTPRequests.WithLabelValues("/api/ping", "204")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequests.WithLabelValues("unmatched", "404")))
}
