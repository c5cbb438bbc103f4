package upstream

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/shenikar/presoak_risk_system/internal/config"
	"github.com/shenikar/presoak_risk_system/internal/models"
	"github.com/sirupsen/logrus"
)

const etColumn = "et (mm)"

// OpenETClient получает дневной ряд эвапотранспирации из OpenET для точки
type OpenETClient struct {
	token      string
	days       int
	location   *time.Location
	baseURL    string
	httpClient *http.Client
	opts       Options
}

// NewOpenETClient создает клиент OpenET из конфигурации
func NewOpenETClient(cfg *config.Config, opts Options) *OpenETClient {
	return &OpenETClient{
		token:      cfg.OpenETKey,
		days:       cfg.DaysBack,
		location:   cfg.Location(),
		baseURL:    strings.TrimRight(cfg.OpenETBaseURL, "/"),
		httpClient: newHTTPClient(cfg.OpenETTimeout),
		opts:       opts.withDefaults(),
	}
}

type timeseriesRequest struct {
	DateRange   []string  `json:"date_range"`
	Interval    string    `json:"interval"`
	Geometry    []float64 `json:"geometry"`
	Model       string    `json:"model"`
	Variable    string    `json:"variable"`
	ReferenceET string    `json:"reference_et"`
	Units       string    `json:"units"`
	FileFormat  string    `json:"file_format"`
}

// FetchET возвращает ряд за последние days дней с накопленной суммой и скользящими средними
func (c *OpenETClient) FetchET(ctx context.Context, lat, lon float64) models.Result[[]models.ETSample] {
	started := time.Now()
	log := c.opts.Logger.WithFields(logrus.Fields{"source": SourceOpenET, "lat": lat, "lon": lon})

	samples, err := c.fetch(ctx, lat, lon)
	c.opts.Metrics.ObserveUpstream(SourceOpenET, outcomeFor(err), started)
	if err != nil {
		log.WithError(err).Warn("OpenET request failed")
		return models.Unavailable[[]models.ETSample](err)
	}

	log.WithField("rows", len(samples)).Debug("OpenET series fetched")
	return models.Available(DeriveETSeries(samples))
}

func (c *OpenETClient) fetch(ctx context.Context, lat, lon float64) ([]models.ETSample, error) {
	end := c.opts.Clock.Now().In(c.location)
	start := end.AddDate(0, 0, -c.days)

	payload, err := json.Marshal(timeseriesRequest{
		DateRange:   []string{start.Format(time.DateOnly), end.Format(time.DateOnly)},
		Interval:    "daily",
		Geometry:    []float64{lon, lat},
		Model:       "Ensemble",
		Variable:    "ET",
		ReferenceET: "gridMET",
		Units:       "mm",
		FileFormat:  "CSV",
	})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/raster/timeseries/point", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", c.token)
	req.Header.Set("Content-Type", "application/json")

	body, err := doRequest(c.httpClient, req)
	if err != nil {
		return nil, err
	}
	return parseOpenETCSV(body)
}

// parseOpenETCSV разбирает ответ вида "DateTime,ET (mm)". Без колонки ET строки получают 0.
func parseOpenETCSV(body []byte) ([]models.ETSample, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, fmt.Errorf("empty OpenET body: %w", ErrNoData)
	}

	r := csv.NewReader(bytes.NewReader(body))
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read OpenET header: %w", err)
	}
	cols := indexColumns(header)
	etIdx, hasET := cols[etColumn]
	dateIdx, hasDate := cols["datetime"]
	if !hasDate {
		dateIdx, hasDate = cols["date"]
	}

	var out []models.ETSample
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read OpenET row: %w", err)
		}

		var s models.ETSample
		if hasDate && dateIdx < len(rec) {
			s.Date = rec[dateIdx]
		}
		if hasET {
			if v, err := parseField(rec, etIdx); err == nil {
				s.ETmm = v
			}
		}
		out = append(out, s)
	}

	if len(out) == 0 {
		return nil, fmt.Errorf("OpenET returned header only: %w", ErrNoData)
	}
	return out, nil
}

// DeriveETSeries заполняет накопленную сумму и скользящие средние за 3 и 7 дней.
// Пока окно не заполнено, среднее остается нулевым.
func DeriveETSeries(samples []models.ETSample) []models.ETSample {
	out := make([]models.ETSample, len(samples))
	var cumulative float64
	for i, s := range samples {
		cumulative += s.ETmm
		s.Cumulative = cumulative
		s.RollingMean3d = rollingMean(samples, i, 3)
		s.RollingMean7d = rollingMean(samples, i, 7)
		out[i] = s
	}
	return out
}

func rollingMean(samples []models.ETSample, end, window int) float64 {
	if end+1 < window {
		return 0
	}
	var sum float64
	for i := end - window + 1; i <= end; i++ {
		sum += samples[i].ETmm
	}
	return sum / float64(window)
}

// LatestET сворачивает ряд к последней строке
func LatestET(samples []models.ETSample) models.ETSummary {
	if len(samples) == 0 {
		return models.ETSummary{}
	}
	last := samples[len(samples)-1]
	return models.ETSummary{
		ETmm:          last.ETmm,
		Cumulative:    last.Cumulative,
		RollingMean3d: last.RollingMean3d,
		RollingMean7d: last.RollingMean7d,
	}
}
