// Package risk считает индекс SERI и рекомендацию по поливу для объединенной записи точки
package risk

import (
	"math"

	"github.com/shenikar/presoak_risk_system/internal/models"
)

// Веса SERI
const (
	weightFire     = 0.25
	weightDistance = 0.20
	weightAQI      = 0.20
	weightPM25     = 0.15
	weightET       = 0.20
)

// Нормировочные пределы
const (
	maxFRP          = 500.0
	maxDistanceKm   = 50.0
	maxPM25         = 150.0
	maxETRolling3d  = 10.0
	minAQI          = 1
	aqiLevels       = 4.0
	seriNoFireKm    = 1000.0
	bandModerateMin = 25.0
	bandHighMin     = 50.0
	bandCriticalMin = 75.0
)

// SERIInputs - поля объединенной записи, которые участвуют в индексе
type SERIInputs struct {
	FireIntensity float64
	NearestFireKm *float64
	AQI           int
	PM25          float64
	ETRolling3d   float64
}

// InputsFromRecord извлекает входы SERI из объединенной записи
func InputsFromRecord(rec models.FusedRecord) SERIInputs {
	return SERIInputs{
		FireIntensity: rec.Fire.Intensity,
		NearestFireKm: rec.Fire.NearestKm,
		AQI:           rec.AirQuality.Index,
		PM25:          rec.AirQuality.PM25,
		ETRolling3d:   rec.ET.RollingMean3d,
	}
}

// ComputeSERI считает взвешенный индекс 0-100 и его полосу.
// Отсутствие пожаров трактуется как пожар в 1000 км, отсутствие AQI - как AQI=1.
func ComputeSERI(in SERIInputs) models.RiskAssessment {
	nearest := seriNoFireKm
	if in.NearestFireKm != nil {
		nearest = *in.NearestFireKm
	}
	aqi := in.AQI
	if aqi < minAQI {
		aqi = minAQI
	}

	fireScore := math.Min(in.FireIntensity/maxFRP*100, 100)
	distanceScore := clamp(100-nearest/maxDistanceKm*100, 0, 100)
	aqiScore := clamp(float64(aqi-minAQI)/aqiLevels*100, 0, 100)
	pm25Score := math.Min(in.PM25/maxPM25*100, 100)
	etScore := clamp(100-math.Min(in.ETRolling3d/maxETRolling3d*100, 100), 0, 100)

	score := fireScore*weightFire +
		distanceScore*weightDistance +
		aqiScore*weightAQI +
		pm25Score*weightPM25 +
		etScore*weightET
	score = clamp(score, 0, 100)

	return models.RiskAssessment{Score: score, Band: Band(score)}
}

// Band возвращает полосу для значения SERI. Границы включаются в верхнюю полосу.
func Band(score float64) string {
	switch {
	case score < bandModerateMin:
		return models.BandLow
	case score < bandHighMin:
		return models.BandModerate
	case score < bandCriticalMin:
		return models.BandHigh
	default:
		return models.BandCritical
	}
}

// BandRank упорядочивает полосы, неизвестная полоса получает -1
func BandRank(band string) int {
	switch band {
	case models.BandLow:
		return 0
	case models.BandModerate:
		return 1
	case models.BandHigh:
		return 2
	case models.BandCritical:
		return 3
	default:
		return -1
	}
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Max(lo, math.Min(hi, v))
}
