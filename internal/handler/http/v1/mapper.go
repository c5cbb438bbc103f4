package v1

import "github.com/shenikar/presoak_risk_system/internal/models"

// QueryToModel преобразует параметры запроса в доменную модель
func QueryToModel(q SimulationQuery) models.LocationQuery {
	return models.LocationQuery{
		Latitude:        q.Latitude,
		Longitude:       q.Longitude,
		PerimeterLength: q.PerimeterLength,
		PumpCapacity:    q.PumpCapacity,
		Demo:            q.Demo,
	}
}

// ModelToSimulationResponse преобразует результат симуляции в DTO для ответа
func ModelToSimulationResponse(sim *models.Simulation) *SimulationResponse {
	return &SimulationResponse{
		RunID:            sim.ID,
		FlatRecord:       sim.Record.Flatten(),
		IrrigationAdvice: sim.Irrigation,
		Sources:          sim.Record.Sources,
		Fires:            ModelsToFireResponses(sim.Fires),
	}
}

// ModelsToFireResponses преобразует слайс пожаров в слайс DTO. Пустой список остается массивом.
func ModelsToFireResponses(fires []models.MapFire) []FireResponse {
	responses := make([]FireResponse, len(fires))
	for i, f := range fires {
		responses[i] = FireResponse{
			Lat:       f.Lat,
			Lon:       f.Lon,
			Intensity: f.Intensity,
		}
	}
	return responses
}

// ModelsToHistoryResponses преобразует строки архива в слайс DTO
func ModelsToHistoryResponses(items []*models.SimulationSummary) []*HistoryItemResponse {
	responses := make([]*HistoryItemResponse, len(items))
	for i, item := range items {
		responses[i] = &HistoryItemResponse{
			RunID:               item.ID,
			Latitude:            item.Latitude,
			Longitude:           item.Longitude,
			Date:                item.Date,
			SERI:                item.SERI,
			SERIBand:            item.Band,
			RecommendationClass: item.IrrigationTier,
			CreatedAt:           item.CreatedAt,
		}
	}
	return responses
}
