package upstream

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/shenikar/presoak_risk_system/internal/observability"
	"github.com/sirupsen/logrus"
)

// Имена источников для логов и метрик
const (
	SourceFIRMS      = "firms"
	SourceWeather    = "weather"
	SourceAirQuality = "air_quality"
	SourceOpenET     = "openet"
)

const (
	maxBodyBytes    = 10 << 20
	maxSnippetBytes = 500
	userAgent       = "presoak-risk-system/1.0"
)

// ErrNoData - источник ответил успешно, но нужных данных в ответе нет
var ErrNoData = errors.New("upstream returned no data")

// Options - общие зависимости клиентов внешних API
type Options struct {
	Logger  *logrus.Logger
	Metrics *observability.Metrics
	Clock   clockwork.Clock
}

func (o Options) withDefaults() Options {
	if o.Logger == nil {
		o.Logger = logrus.StandardLogger()
	}
	if o.Clock == nil {
		o.Clock = clockwork.NewRealClock()
	}
	return o
}

// doRequest выполняет запрос и возвращает тело ответа со статусом 200
func doRequest(client *http.Client, req *http.Request) ([]byte, error) {
	req.Header.Set("User-Agent", userAgent)

	resp, err := client.Do(req)
	if err != nil {
		// url.Error содержит полный URL, а в нем может быть ключ API
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
		}
		return nil, fmt.Errorf("request to %s: %w", req.URL.Host, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("upstream status %d: %s", resp.StatusCode, snippet(body))
	}
	return body, nil
}

func snippet(body []byte) string {
	s := strings.TrimSpace(string(body))
	if len(s) > maxSnippetBytes {
		s = s[:maxSnippetBytes]
	}
	return s
}

func outcomeFor(err error) string {
	switch {
	case err == nil:
		return observability.OutcomeSuccess
	case errors.Is(err, ErrNoData):
		return observability.OutcomeEmpty
	default:
		return observability.OutcomeError
	}
}

func newHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}
