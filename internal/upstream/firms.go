package upstream

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/shenikar/presoak_risk_system/internal/config"
	"github.com/shenikar/presoak_risk_system/internal/models"
	"github.com/sirupsen/logrus"
)

// kmPerDegree - приближенная длина градуса широты
const kmPerDegree = 111.0

// FIRMSClient получает обнаружения пожаров из NASA FIRMS (area CSV API)
type FIRMSClient struct {
	key        string
	source     string
	radiusDeg  float64
	days       int
	baseURL    string
	httpClient *http.Client
	opts       Options
}

// NewFIRMSClient создает клиент FIRMS из конфигурации
func NewFIRMSClient(cfg *config.Config, opts Options) *FIRMSClient {
	return &FIRMSClient{
		key:        cfg.FIRMSKey,
		source:     cfg.FIRMSSource,
		radiusDeg:  cfg.FireRadiusDeg,
		days:       cfg.DaysBack,
		baseURL:    strings.TrimRight(cfg.FIRMSBaseURL, "/"),
		httpClient: newHTTPClient(cfg.FIRMSTimeout),
		opts:       opts.withDefaults(),
	}
}

// FetchFires возвращает пожары в квадрате вокруг точки и сводку по ним.
// Пустой ответ - это доступный результат с нулевой сводкой, ошибка - недоступный.
func (c *FIRMSClient) FetchFires(ctx context.Context, lat, lon float64) models.Result[models.FireData] {
	started := time.Now()
	log := c.opts.Logger.WithFields(logrus.Fields{"source": SourceFIRMS, "lat": lat, "lon": lon})

	observations, err := c.fetch(ctx, lat, lon)
	c.opts.Metrics.ObserveUpstream(SourceFIRMS, outcomeFor(err), started)
	if err != nil && !errors.Is(err, ErrNoData) {
		log.WithError(err).Warn("FIRMS request failed")
		return models.Unavailable[models.FireData](err)
	}

	log.WithField("count", len(observations)).Debug("FIRMS fires fetched")
	return models.Available(models.FireData{
		Observations: observations,
		Summary:      SummarizeFires(observations, lat, lon),
	})
}

func (c *FIRMSClient) fetch(ctx context.Context, lat, lon float64) ([]models.FireObservation, error) {
	minLon, minLat := lon-c.radiusDeg, lat-c.radiusDeg
	maxLon, maxLat := lon+c.radiusDeg, lat+c.radiusDeg
	u := fmt.Sprintf("%s/api/area/csv/%s/%s/%s,%s,%s,%s/%d",
		c.baseURL, c.key, c.source,
		formatCoord(minLon), formatCoord(minLat), formatCoord(maxLon), formatCoord(maxLat),
		c.days,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	body, err := doRequest(c.httpClient, req)
	if err != nil {
		return nil, err
	}
	return parseFIRMSCSV(body)
}

// parseFIRMSCSV разбирает CSV по заголовку. Строки с битыми или нечисловыми координатами
// пропускаются, нечисловой FRP считается нулем.
func parseFIRMSCSV(body []byte) ([]models.FireObservation, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, ErrNoData
	}

	r := csv.NewReader(bytes.NewReader(body))
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoData
		}
		return nil, fmt.Errorf("read FIRMS header: %w", err)
	}
	cols := indexColumns(header)
	latIdx, okLat := cols["latitude"]
	lonIdx, okLon := cols["longitude"]
	if !okLat || !okLon {
		// FIRMS отвечает текстом ошибки со статусом 200, например "Invalid MAP_KEY."
		return nil, fmt.Errorf("unexpected FIRMS response: %s", snippet(body))
	}
	frpIdx, hasFRP := cols["frp"]
	dateIdx, hasDate := cols["acq_date"]

	var out []models.FireObservation
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read FIRMS row: %w", err)
		}

		fLat, err1 := parseField(rec, latIdx)
		fLon, err2 := parseField(rec, lonIdx)
		if err1 != nil || err2 != nil {
			continue
		}
		obs := models.FireObservation{Latitude: fLat, Longitude: fLon}
		if hasFRP {
			if frp, err := parseField(rec, frpIdx); err == nil {
				obs.FRP = frp
			}
		}
		if hasDate && dateIdx < len(rec) {
			obs.AcquiredAt = rec[dateIdx]
		}
		out = append(out, obs)
	}

	if len(out) == 0 {
		return nil, ErrNoData
	}
	return out, nil
}

// SummarizeFires считает средний FRP, расстояние до ближайшего пожара и их число
func SummarizeFires(fires []models.FireObservation, lat, lon float64) models.FireSummary {
	if len(fires) == 0 {
		return models.FireSummary{}
	}

	var sum float64
	nearest := math.Inf(1)
	for _, f := range fires {
		sum += f.FRP
		if d := DistanceKm(lat, lon, f.Latitude, f.Longitude); d < nearest {
			nearest = d
		}
	}
	return models.FireSummary{
		Intensity: sum / float64(len(fires)),
		NearestKm: &nearest,
		Count:     len(fires),
	}
}

// DistanceKm - плоское приближение: разница градусов * 111 км,
// долгота поправлена на косинус широты точки запроса
func DistanceKm(lat, lon, toLat, toLon float64) float64 {
	dLat := toLat - lat
	dLon := (toLon - lon) * math.Cos(lat*math.Pi/180)
	return math.Sqrt(dLat*dLat+dLon*dLon) * kmPerDegree
}

func indexColumns(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	return cols
}

func parseField(rec []string, idx int) (float64, error) {
	if idx >= len(rec) {
		return 0, fmt.Errorf("column %d missing", idx)
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(rec[idx]), 64)
	if err != nil {
		return 0, err
	}
	// ParseFloat принимает NaN и Inf, в JSON они не кодируются
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("column %d is not a finite number", idx)
	}
	return v, nil
}

// formatCoord печатает координату с точностью до 6 знаков без хвостовых нулей
func formatCoord(v float64) string {
	s := strconv.FormatFloat(v, 'f', 6, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
