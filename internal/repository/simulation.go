package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/presoak_risk_system/internal/models"
	"github.com/shenikar/presoak_risk_system/internal/service"
)

const (
	historyCacheKey = "simulations:recent"
	historyCacheTTL = 30 * time.Second
)

// querier - часть pgxpool.Pool, которой пользуется репозиторий
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

type SimulationRepository struct {
	db          querier
	redisClient *redis.Client
}

// NewSimulationRepository создает архив запусков. redisClient может быть nil, тогда кеш истории отключен.
func NewSimulationRepository(db *pgxpool.Pool, redisClient *redis.Client) service.SimulationArchive {
	return &SimulationRepository{
		db:          db,
		redisClient: redisClient,
	}
}

// Save сохраняет запуск в бд. Повторное сохранение того же id игнорируется.
func (r *SimulationRepository) Save(ctx context.Context, sim *models.Simulation) error {
	record, err := json.Marshal(sim.Record.Flatten())
	if err != nil {
		return fmt.Errorf("failed to marshal simulation record: %w", err)
	}
	fires, err := json.Marshal(sim.Fires)
	if err != nil {
		return fmt.Errorf("failed to marshal simulation fires: %w", err)
	}

	query := `
		INSERT INTO simulation_runs (
			id, latitude, longitude, run_date, perimeter_length, pump_capacity, demo,
			seri, seri_band, irrigation_score, recommendation_class, record, fires, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (id) DO NOTHING;
	`
	_, err = r.db.Exec(ctx, query,
		sim.ID,
		sim.Record.Latitude,
		sim.Record.Longitude,
		sim.Record.Date,
		sim.Query.PerimeterLength,
		sim.Query.PumpCapacity,
		sim.Query.Demo,
		sim.Record.Risk.Score,
		sim.Record.Risk.Band,
		sim.Irrigation.Score,
		sim.Irrigation.Tier,
		record,
		fires,
		sim.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save simulation: %w", err)
	}

	// Запись уже сохранена, ошибка кеша не должна считаться ошибкой архива
	_ = r.invalidateHistoryCache(ctx)
	return nil
}

// ListRecent возвращает последние запуски, сначала новые
func (r *SimulationRepository) ListRecent(ctx context.Context, limit int) ([]*models.SimulationSummary, error) {
	if cached, err := r.getHistoryFromCache(ctx, limit); err == nil && cached != nil {
		return cached, nil
	}

	query := `
		SELECT
			id,
			latitude,
			longitude,
			run_date,
			seri,
			seri_band,
			recommendation_class,
			created_at
		FROM simulation_runs
		ORDER BY created_at DESC
		LIMIT $1;
	`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list simulations: %w", err)
	}
	defer rows.Close()

	items := make([]*models.SimulationSummary, 0)
	for rows.Next() {
		item := &models.SimulationSummary{}
		err := rows.Scan(
			&item.ID,
			&item.Latitude,
			&item.Longitude,
			&item.Date,
			&item.SERI,
			&item.Band,
			&item.IrrigationTier,
			&item.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan simulation row: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}

	// Ошибка кеша не должна ломать чтение истории
	_ = r.setHistoryCache(ctx, limit, items)
	return items, nil
}

// getHistoryFromCache пытается получить историю из Redis
func (r *SimulationRepository) getHistoryFromCache(ctx context.Context, limit int) ([]*models.SimulationSummary, error) {
	if r.redisClient == nil {
		return nil, nil
	}
	val, err := r.redisClient.HGet(ctx, historyCacheKey, historyCacheField(limit)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get history from cache: %w", err)
	}

	var items []*models.SimulationSummary
	if err := json.Unmarshal(val, &items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal history from cache: %w", err)
	}
	return items, nil
}

// setHistoryCache сохраняет историю в Redis
func (r *SimulationRepository) setHistoryCache(ctx context.Context, limit int, items []*models.SimulationSummary) error {
	if r.redisClient == nil {
		return nil
	}
	val, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to marshal history for cache: %w", err)
	}

	pipe := r.redisClient.TxPipeline()
	pipe.HSet(ctx, historyCacheKey, historyCacheField(limit), val)
	pipe.Expire(ctx, historyCacheKey, historyCacheTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to set history in cache: %w", err)
	}
	return nil
}

// invalidateHistoryCache удаляет историю из Redis кеша
func (r *SimulationRepository) invalidateHistoryCache(ctx context.Context) error {
	if r.redisClient == nil {
		return nil
	}
	if err := r.redisClient.Del(ctx, historyCacheKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate history cache: %w", err)
	}
	return nil
}

func historyCacheField(limit int) string {
	return fmt.Sprintf("limit:%d", limit)
}
