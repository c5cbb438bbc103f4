package models

import (
	"time"

	"github.com/google/uuid"
)

// Границы полос SERI
const (
	BandLow      = "LOW"
	BandModerate = "MODERATE"
	BandHigh     = "HIGH"
	BandCritical = "CRITICAL"
)

// Уровни рекомендации по поливу
const (
	TierCritical = "critical"
	TierModerate = "moderate"
	TierNormal   = "normal"
)

// Классы интенсивности пожара на карте
const (
	IntensityHigh   = "High"
	IntensityMedium = "Medium"
)

// SourceStatus показывает, какие источники вернули данные
type SourceStatus struct {
	Fires      bool `json:"fires"`
	Weather    bool `json:"weather"`
	AirQuality bool `json:"air_quality"`
	ET         bool `json:"et"`
}

// FusedRecord - одна объединенная строка по точке и дате.
// Недоступные источники заполняются значениями по умолчанию.
type FusedRecord struct {
	Fire       FireSummary
	Weather    WeatherReading
	AirQuality AirQualityReading
	ET         ETSummary

	Latitude  float64
	Longitude float64
	Date      string

	Risk    RiskAssessment
	Sources SourceStatus
}

// RiskAssessment - композитный индекс SERI и его полоса
type RiskAssessment struct {
	Score float64 `json:"SERI"`
	Band  string  `json:"SERI_band"`
}

// IrrigationAdvice - балльная оценка (0-9) и рекомендация по поливу
type IrrigationAdvice struct {
	Score           int     `json:"irrigation_score"`
	Tier            string  `json:"recommendation_class"`
	Recommendation  string  `json:"recommendation"`
	RecommendedPump float64 `json:"recommended_pump"`
	PumpShortfall   bool    `json:"pump_shortfall"`
}

// MapFire - пожар для отображения на карте
type MapFire struct {
	Lat       float64 `json:"lat"`
	Lon       float64 `json:"lon"`
	Intensity string  `json:"intensity"`
}

// Simulation - полный результат одного запуска
type Simulation struct {
	ID         uuid.UUID
	Query      LocationQuery
	Record     FusedRecord
	Irrigation IrrigationAdvice
	Fires      []MapFire
	CreatedAt  time.Time
}

// SimulationSummary - строка архива запусков
type SimulationSummary struct {
	ID             uuid.UUID `json:"id"`
	Latitude       float64   `json:"latitude"`
	Longitude      float64   `json:"longitude"`
	Date           string    `json:"date"`
	SERI           float64   `json:"SERI"`
	Band           string    `json:"SERI_band"`
	IrrigationTier string    `json:"recommendation_class"`
	CreatedAt      time.Time `json:"created_at"`
}
