package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/shenikar/presoak_risk_system/internal/models"
	"github.com/shenikar/presoak_risk_system/internal/observability"
	"github.com/shenikar/presoak_risk_system/internal/risk"
	"github.com/shenikar/presoak_risk_system/internal/webhook"
	"github.com/sirupsen/logrus"
)

// Демонстрационный пожар
const (
	DemoFireOffsetDeg = 0.07
	DemoFireFRP       = 120.0
	highIntensityFRP  = 50.0
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

// ErrArchiveDisabled возвращается, когда архив запусков не настроен
var ErrArchiveDisabled = errors.New("simulation archive is not configured")

// SimulationArchive определяет контракт для архива запусков
type SimulationArchive interface {
	Save(ctx context.Context, sim *models.Simulation) error
	ListRecent(ctx context.Context, limit int) ([]*models.SimulationSummary, error)
}

// RecordStream определяет контракт потока объединенных записей
type RecordStream interface {
	Publish(ctx context.Context, sim *models.Simulation) error
}

// SimulationService определяет контракт бизнес-логики симуляции
type SimulationService interface {
	RunSimulation(ctx context.Context, query models.LocationQuery) (*models.Simulation, error)
	GetFires(ctx context.Context, query models.LocationQuery) ([]models.MapFire, error)
	History(ctx context.Context, limit int) ([]*models.SimulationSummary, error)
}

// Sinks - необязательные получатели готовых запусков, nil отключает получателя
type Sinks struct {
	Archive      SimulationArchive
	Stream       RecordStream
	Alerts       webhook.AlertPublisher
	AlertMinBand string
}

type simulationService struct {
	builder *DatasetBuilder
	fires   FireSource
	sinks   Sinks
	logger  *logrus.Logger
	metrics *observability.Metrics
	clock   clockwork.Clock
}

func NewSimulationService(builder *DatasetBuilder, fires FireSource, sinks Sinks, logger *logrus.Logger, metrics *observability.Metrics, clock clockwork.Clock) SimulationService {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if sinks.AlertMinBand == "" {
		sinks.AlertMinBand = models.BandHigh
	}
	return &simulationService{
		builder: builder,
		fires:   fires,
		sinks:   sinks,
		logger:  logger,
		metrics: metrics,
		clock:   clock,
	}
}

// RunSimulation собирает запись, считает рекомендации и отдает запуск получателям
func (s *simulationService) RunSimulation(ctx context.Context, query models.LocationQuery) (*models.Simulation, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "simulation",
		"method":  "RunSimulation",
		"lat":     query.Latitude,
		"lon":     query.Longitude,
		"demo":    query.Demo,
	})
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("service: simulation cancelled: %w", err)
	}
	log.Info("Running simulation")

	ds := s.builder.Build(ctx, query.Latitude, query.Longitude)
	// Отмененный во время сборки запуск получателям не отдаем
	if err := ctx.Err(); err != nil {
		log.WithError(err).Warn("Simulation cancelled while fetching sources")
		return nil, fmt.Errorf("service: simulation cancelled: %w", err)
	}
	rec := ds.Record

	sim := &models.Simulation{
		ID:     uuid.New(),
		Query:  query,
		Record: rec,
		Irrigation: risk.AdviseIrrigation(risk.IrrigationInputs{
			NearestFireKm:   rec.Fire.NearestKm,
			AQI:             rec.AirQuality.Index,
			ETmm:            rec.ET.ETmm,
			PerimeterLength: query.PerimeterLength,
			PumpCapacity:    query.PumpCapacity,
		}),
		Fires:     MapFires(ds.Observations, query),
		CreatedAt: s.clock.Now().UTC(),
	}

	if s.metrics != nil {
		s.metrics.SimulationsRun.WithLabelValues(rec.Risk.Band).Inc()
	}
	s.dispatch(ctx, sim, log)

	log.WithFields(logrus.Fields{
		"run_id":    sim.ID,
		"seri_band": rec.Risk.Band,
		"tier":      sim.Irrigation.Tier,
	}).Info("Simulation completed")
	return sim, nil
}

// GetFires возвращает пожары для карты. Ошибка FIRMS дает пустой список.
func (s *simulationService) GetFires(ctx context.Context, query models.LocationQuery) ([]models.MapFire, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "simulation",
		"method":  "GetFires",
		"lat":     query.Latitude,
		"lon":     query.Longitude,
	})
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("service: fire lookup cancelled: %w", err)
	}

	data := s.fires.FetchFires(ctx, query.Latitude, query.Longitude).OrDefault(models.FireData{})
	fires := MapFires(data.Observations, query)

	log.WithField("count", len(fires)).Info("Fires listed successfully")
	return fires, nil
}

// History возвращает последние запуски из архива
func (s *simulationService) History(ctx context.Context, limit int) ([]*models.SimulationSummary, error) {
	if s.sinks.Archive == nil {
		return nil, ErrArchiveDisabled
	}
	if limit < 1 || limit > maxHistoryLimit {
		limit = defaultHistoryLimit
	}

	log := s.logger.WithFields(logrus.Fields{
		"service": "simulation",
		"method":  "History",
		"limit":   limit,
	})

	items, err := s.sinks.Archive.ListRecent(ctx, limit)
	if err != nil {
		log.WithError(err).Error("Failed to list simulations from archive")
		return nil, fmt.Errorf("service: could not list simulations: %w", err)
	}
	log.WithField("count", len(items)).Info("Simulations listed successfully")
	return items, nil
}

// dispatch передает запуск получателям. Ошибки получателей только логируются.
func (s *simulationService) dispatch(ctx context.Context, sim *models.Simulation, log *logrus.Entry) {
	if s.sinks.Archive != nil {
		if err := s.sinks.Archive.Save(ctx, sim); err != nil {
			log.WithError(err).Error("Failed to archive simulation")
			s.sinkFailed("archive")
		}
	}

	if s.sinks.Stream != nil {
		if err := s.sinks.Stream.Publish(ctx, sim); err != nil {
			log.WithError(err).Error("Failed to publish record to stream")
			s.sinkFailed("stream")
		}
	}

	if s.sinks.Alerts != nil && risk.BandRank(sim.Record.Risk.Band) >= risk.BandRank(s.sinks.AlertMinBand) {
		if err := s.sinks.Alerts.Publish(ctx, webhook.NewAlertEvent(sim)); err != nil {
			log.WithError(err).Error("Failed to publish risk alert")
			s.sinkFailed("alerts")
		}
	}
}

func (s *simulationService) sinkFailed(sink string) {
	if s.metrics != nil {
		s.metrics.SinkErrors.WithLabelValues(sink).Inc()
	}
}

// MapFires классифицирует пожары для карты и добавляет демонстрационный пожар
func MapFires(observations []models.FireObservation, query models.LocationQuery) []models.MapFire {
	fires := make([]models.MapFire, 0, len(observations)+1)
	for _, o := range observations {
		fires = append(fires, models.MapFire{
			Lat:       o.Latitude,
			Lon:       o.Longitude,
			Intensity: ClassifyIntensity(o.FRP),
		})
	}
	if query.Demo {
		fires = append(fires, DemoFire(query.Latitude, query.Longitude))
	}
	return fires
}

// DemoFire возвращает синтетический пожар со смещением от точки запроса
func DemoFire(lat, lon float64) models.MapFire {
	return models.MapFire{
		Lat:       lat + DemoFireOffsetDeg,
		Lon:       lon + DemoFireOffsetDeg,
		Intensity: ClassifyIntensity(DemoFireFRP),
	}
}

// ClassifyIntensity: "High" при FRP > 50, иначе "Medium"
func ClassifyIntensity(frp float64) string {
	if frp > highIntensityFRP {
		return models.IntensityHigh
	}
	return models.IntensityMedium
}
