package service

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/shenikar/presoak_risk_system/internal/models"
	"github.com/shenikar/presoak_risk_system/internal/risk"
	"github.com/shenikar/presoak_risk_system/internal/upstream"
	"github.com/sirupsen/logrus"
)

// FireSource определяет контракт источника пожаров
type FireSource interface {
	FetchFires(ctx context.Context, lat, lon float64) models.Result[models.FireData]
}

// WeatherSource определяет контракт источника погоды
type WeatherSource interface {
	FetchWeather(ctx context.Context, lat, lon float64) models.Result[models.WeatherReading]
}

// AirQualitySource определяет контракт источника качества воздуха
type AirQualitySource interface {
	FetchAirQuality(ctx context.Context, lat, lon float64) models.Result[models.AirQualityReading]
}

// ETSource определяет контракт источника эвапотранспирации
type ETSource interface {
	FetchET(ctx context.Context, lat, lon float64) models.Result[[]models.ETSample]
}

// Dataset - объединенная запись и исходные наблюдения пожаров
type Dataset struct {
	Record       models.FusedRecord
	Observations []models.FireObservation
}

// DatasetBuilder опрашивает источники по очереди и собирает одну запись
type DatasetBuilder struct {
	fires    FireSource
	weather  WeatherSource
	air      AirQualitySource
	et       ETSource
	logger   *logrus.Logger
	clock    clockwork.Clock
	location *time.Location
}

func NewDatasetBuilder(fires FireSource, weather WeatherSource, air AirQualitySource, et ETSource, logger *logrus.Logger, clock clockwork.Clock, location *time.Location) *DatasetBuilder {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if location == nil {
		location = time.UTC
	}
	return &DatasetBuilder{
		fires:    fires,
		weather:  weather,
		air:      air,
		et:       et,
		logger:   logger,
		clock:    clock,
		location: location,
	}
}

// Build собирает объединенную запись для точки. Недоступный источник
// дает значения по умолчанию и не прерывает сборку.
func (b *DatasetBuilder) Build(ctx context.Context, lat, lon float64) Dataset {
	log := b.logger.WithFields(logrus.Fields{
		"service": "dataset",
		"method":  "Build",
		"lat":     lat,
		"lon":     lon,
	})

	log.Debug("Fetching FIRMS data")
	fireRes := b.fires.FetchFires(ctx, lat, lon)

	log.Debug("Fetching weather data")
	weatherRes := b.weather.FetchWeather(ctx, lat, lon)

	log.Debug("Fetching air quality data")
	airRes := b.air.FetchAirQuality(ctx, lat, lon)

	log.Debug("Fetching OpenET data")
	etRes := b.et.FetchET(ctx, lat, lon)

	fireData := fireRes.OrDefault(models.FireData{})
	rec := models.FusedRecord{
		Fire:       fireData.Summary,
		Weather:    weatherRes.OrDefault(models.WeatherReading{}),
		AirQuality: airRes.OrDefault(models.AirQualityReading{}),
		ET:         upstream.LatestET(etRes.OrDefault(nil)),
		Latitude:   lat,
		Longitude:  lon,
		Date:       b.clock.Now().In(b.location).Format(time.DateOnly),
		Sources: models.SourceStatus{
			Fires:      fireRes.IsAvailable(),
			Weather:    weatherRes.IsAvailable(),
			AirQuality: airRes.IsAvailable(),
			ET:         etRes.IsAvailable(),
		},
	}
	rec.Risk = risk.ComputeSERI(risk.InputsFromRecord(rec))

	log.WithFields(logrus.Fields{
		"seri":    rec.Risk.Score,
		"band":    rec.Risk.Band,
		"sources": rec.Sources,
	}).Info("Dataset built successfully")

	return Dataset{Record: rec, Observations: fireData.Observations}
}
