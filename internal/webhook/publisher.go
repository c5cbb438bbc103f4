package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/presoak_risk_system/internal/models"
)

const (
	alertQueueKey = "risk_alert_events"
)

// AlertEvent - структура для данных вебхука о высоком риске
type AlertEvent struct {
	RunID          uuid.UUID `json:"run_id"`
	Latitude       float64   `json:"latitude"`
	Longitude      float64   `json:"longitude"`
	Date           string    `json:"date"`
	SERI           float64   `json:"SERI"`
	Band           string    `json:"SERI_band"`
	IrrigationTier string    `json:"recommendation_class"`
	Recommendation string    `json:"recommendation"`
	NearestFireKm  *float64  `json:"nearest_fire_km"`
	Timestamp      time.Time `json:"timestamp"`
}

// NewAlertEvent собирает событие из результата симуляции
func NewAlertEvent(sim *models.Simulation) AlertEvent {
	return AlertEvent{
		RunID:          sim.ID,
		Latitude:       sim.Record.Latitude,
		Longitude:      sim.Record.Longitude,
		Date:           sim.Record.Date,
		SERI:           sim.Record.Risk.Score,
		Band:           sim.Record.Risk.Band,
		IrrigationTier: sim.Irrigation.Tier,
		Recommendation: sim.Irrigation.Recommendation,
		NearestFireKm:  sim.Record.Fire.NearestKm,
		Timestamp:      sim.CreatedAt,
	}
}

// AlertPublisher - интерфейс для публикации вебхуков
type AlertPublisher interface {
	Publish(ctx context.Context, event AlertEvent) error
}

// RedisAlertPublisher - реализация AlertPublisher, использующая Redis
type RedisAlertPublisher struct {
	redisClient *redis.Client
}

// NewRedisAlertPublisher создает новый RedisAlertPublisher
func NewRedisAlertPublisher(client *redis.Client) *RedisAlertPublisher {
	return &RedisAlertPublisher{
		redisClient: client,
	}
}

// Publish публикует событие вебхука в очередь Redis
func (p *RedisAlertPublisher) Publish(ctx context.Context, event AlertEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal alert event: %w", err)
	}

	// LPUSH в левую часть списка, воркер забирает справа
	if err := p.redisClient.LPush(ctx, alertQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish alert event to Redis: %w", err)
	}
	return nil
}
