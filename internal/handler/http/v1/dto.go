package v1

import (
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/presoak_risk_system/internal/models"
)

// SimulationQuery DTO параметров симуляции
// @Description DTO параметров симуляции
type SimulationQuery struct {
	Latitude        float64 `validate:"gte=-90,lte=90"`
	Longitude       float64 `validate:"gte=-180,lte=180"`
	PerimeterLength float64 `validate:"gte=0"`
	PumpCapacity    float64 `validate:"gte=0"`
	Demo            bool
}

// SimulationResponse DTO для ответа с результатом симуляции.
// Плоская запись, поля рекомендации, пожары для карты и id запуска.
// @Description DTO для ответа с результатом симуляции
type SimulationResponse struct {
	RunID uuid.UUID `json:"run_id"`
	models.FlatRecord
	models.IrrigationAdvice
	Sources models.SourceStatus `json:"sources"`
	Fires   []FireResponse      `json:"fires"`
}

// FireResponse DTO пожара на карте
// @Description DTO пожара на карте
type FireResponse struct {
	Lat       float64 `json:"lat"`
	Lon       float64 `json:"lon"`
	Intensity string  `json:"intensity" enums:"High,Medium"`
}

// HistoryItemResponse DTO строки архива запусков
// @Description DTO строки архива запусков
type HistoryItemResponse struct {
	RunID               uuid.UUID `json:"run_id"`
	Latitude            float64   `json:"latitude"`
	Longitude           float64   `json:"longitude"`
	Date                string    `json:"date"`
	SERI                float64   `json:"SERI"`
	SERIBand            string    `json:"SERI_band"`
	RecommendationClass string    `json:"recommendation_class"`
	CreatedAt           time.Time `json:"created_at"`
}
