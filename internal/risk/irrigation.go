package risk

import (
	"fmt"

	"github.com/shenikar/presoak_risk_system/internal/models"
)

// LitersPerHourPerUnit - рекомендуемая производительность насоса на единицу периметра
const LitersPerHourPerUnit = 85.0

// irrigationNoFireKm - расстояние по умолчанию, когда пожаров нет.
// Оно не попадает ни в один порог близости.
const irrigationNoFireKm = 20.0

// Пороговые уровни балльной оценки
const (
	criticalMinScore = 6
	moderateMinScore = 3
)

// IrrigationInputs - входы балльной оценки полива
type IrrigationInputs struct {
	NearestFireKm   *float64
	AQI             int
	ETmm            float64
	PerimeterLength float64
	PumpCapacity    float64
}

// RecommendedPump возвращает рекомендуемую производительность насоса, л/ч
func RecommendedPump(perimeter float64) float64 {
	return perimeter * LitersPerHourPerUnit
}

// AdviseIrrigation считает балл 0-9 и выбирает уровень рекомендации.
// Каждый фактор добавляет фиксированное число баллов:
// близость пожара до 3, AQI до 2, дефицит ET до 2, нехватка насоса 2.
func AdviseIrrigation(in IrrigationInputs) models.IrrigationAdvice {
	nearest := irrigationNoFireKm
	if in.NearestFireKm != nil {
		nearest = *in.NearestFireKm
	}
	recommended := RecommendedPump(in.PerimeterLength)
	shortfall := in.PumpCapacity < recommended

	score := distancePoints(nearest) + aqiPoints(in.AQI) + etPoints(in.ETmm)
	if shortfall {
		score += 2
	}

	tier := models.TierNormal
	switch {
	case score >= criticalMinScore:
		tier = models.TierCritical
	case score >= moderateMinScore:
		tier = models.TierModerate
	}

	return models.IrrigationAdvice{
		Score:           score,
		Tier:            tier,
		Recommendation:  recommendationText(tier, shortfall, recommended, in.PumpCapacity),
		RecommendedPump: recommended,
		PumpShortfall:   shortfall,
	}
}

func distancePoints(km float64) int {
	switch {
	case km < 5:
		return 3
	case km < 10:
		return 2
	case km < 20:
		return 1
	default:
		return 0
	}
}

func aqiPoints(aqi int) int {
	switch {
	case aqi >= 4:
		return 2
	case aqi == 3:
		return 1
	default:
		return 0
	}
}

func etPoints(etmm float64) int {
	switch {
	case etmm >= 6:
		return 2
	case etmm >= 4:
		return 1
	default:
		return 0
	}
}

func recommendationText(tier string, shortfall bool, recommended, pump float64) string {
	var text string
	switch tier {
	case models.TierCritical:
		text = "Start pre-soak irrigation now: nearby fire activity, smoke and soil moisture loss put the orchard at critical risk."
	case models.TierModerate:
		text = "Schedule pre-soak irrigation within 24 hours and monitor fire and air-quality updates."
	default:
		text = "Conditions are normal. Continue the regular irrigation schedule."
	}

	if shortfall {
		text += fmt.Sprintf(" Pump capacity %.0f L/hr is below the recommended %.0f L/hr for this perimeter; upgrade the pump or add a second one.", pump, recommended)
	}
	return text
}
