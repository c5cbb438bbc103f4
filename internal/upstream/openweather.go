package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shenikar/presoak_risk_system/internal/config"
	"github.com/shenikar/presoak_risk_system/internal/models"
	"github.com/sirupsen/logrus"
)

// OpenWeatherClient получает текущую погоду (One Call 3.0) и загрязнение воздуха
type OpenWeatherClient struct {
	key        string
	baseURL    string
	httpClient *http.Client
	opts       Options
}

// NewOpenWeatherClient создает клиент OpenWeather из конфигурации
func NewOpenWeatherClient(cfg *config.Config, opts Options) *OpenWeatherClient {
	return &OpenWeatherClient{
		key:        cfg.OpenWeatherKey,
		baseURL:    strings.TrimRight(cfg.OpenWeatherBaseURL, "/"),
		httpClient: newHTTPClient(cfg.WeatherTimeout),
		opts:       opts.withDefaults(),
	}
}

// FetchWeather возвращает текущие условия в точке
func (c *OpenWeatherClient) FetchWeather(ctx context.Context, lat, lon float64) models.Result[models.WeatherReading] {
	started := time.Now()

	var resp oneCallResponse
	err := c.getJSON(ctx, "/data/3.0/onecall", lat, lon, &resp)
	if err == nil && resp.Current == nil {
		err = fmt.Errorf("onecall response without current block: %w", ErrNoData)
	}
	c.opts.Metrics.ObserveUpstream(SourceWeather, outcomeFor(err), started)
	if err != nil {
		c.logFailure(SourceWeather, lat, lon, err)
		return models.Unavailable[models.WeatherReading](err)
	}

	cur := resp.Current
	return models.Available(models.WeatherReading{
		Temperature: cur.Temp,
		Humidity:    cur.Humidity,
		WindSpeed:   cur.WindSpeed,
		WindDeg:     cur.WindDeg,
		Rain1h:      cur.Rain.OneHour,
	})
}

// FetchAirQuality возвращает индекс качества воздуха и концентрации PM2.5/PM10
func (c *OpenWeatherClient) FetchAirQuality(ctx context.Context, lat, lon float64) models.Result[models.AirQualityReading] {
	started := time.Now()

	var resp airPollutionResponse
	err := c.getJSON(ctx, "/data/2.5/air_pollution", lat, lon, &resp)
	if err == nil {
		switch {
		case len(resp.List) == 0:
			err = fmt.Errorf("air pollution list is empty: %w", ErrNoData)
		case resp.List[0].Main == nil || resp.List[0].Main.AQI == nil:
			err = fmt.Errorf("air pollution entry without main.aqi: %w", ErrNoData)
		}
	}
	c.opts.Metrics.ObserveUpstream(SourceAirQuality, outcomeFor(err), started)
	if err != nil {
		c.logFailure(SourceAirQuality, lat, lon, err)
		return models.Unavailable[models.AirQualityReading](err)
	}

	entry := resp.List[0]
	return models.Available(models.AirQualityReading{
		Index: *entry.Main.AQI,
		PM25:  entry.Components.PM25,
		PM10:  entry.Components.PM10,
	})
}

func (c *OpenWeatherClient) getJSON(ctx context.Context, path string, lat, lon float64, dst any) error {
	params := url.Values{
		"lat":   {formatCoord(lat)},
		"lon":   {formatCoord(lon)},
		"units": {"metric"},
		"appid": {c.key},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	body, err := doRequest(c.httpClient, req)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *OpenWeatherClient) logFailure(source string, lat, lon float64, err error) {
	c.opts.Logger.WithFields(logrus.Fields{
		"source": source,
		"lat":    lat,
		"lon":    lon,
	}).WithError(err).Warn("OpenWeather request failed")
}

// Типы ответов OpenWeather API

type oneCallResponse struct {
	Current *currentConditions `json:"current"`
}

type currentConditions struct {
	Temp      float64     `json:"temp"`
	Humidity  float64     `json:"humidity"`
	WindSpeed float64     `json:"wind_speed"`
	WindDeg   float64     `json:"wind_deg"`
	Rain      rainVolumes `json:"rain"`
}

// rainVolumes терпит отсутствие блока rain и нестандартные значения в нем
type rainVolumes struct {
	OneHour float64
}

func (r *rainVolumes) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		// rain не объект - считаем, что дождя нет
		r.OneHour = 0
		return nil
	}
	if v, ok := raw["1h"].(float64); ok {
		r.OneHour = v
	}
	return nil
}

type airPollutionResponse struct {
	List []airPollutionEntry `json:"list"`
}

type airPollutionEntry struct {
	Main *struct {
		AQI *int `json:"aqi"`
	} `json:"main"`
	Components struct {
		PM25 float64 `json:"pm2_5"`
		PM10 float64 `json:"pm10"`
	} `json:"components"`
}
