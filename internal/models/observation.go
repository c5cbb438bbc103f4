package models

// LocationQuery - параметры одного запроса симуляции
type LocationQuery struct {
	Latitude        float64
	Longitude       float64
	PerimeterLength float64
	PumpCapacity    float64
	Demo            bool
}

// FireObservation - одна точка обнаружения пожара из FIRMS
type FireObservation struct {
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	FRP        float64 `json:"frp"`
	AcquiredAt string  `json:"acq_date"`
}

// FireSummary - сводка по пожарам вокруг точки
type FireSummary struct {
	Intensity float64  `json:"fire_intensity"`
	NearestKm *float64 `json:"nearest_fire_km"`
	Count     int      `json:"num_fires_past_days"`
}

// FireData - ответ FIRMS: сами наблюдения и сводка по ним
type FireData struct {
	Observations []FireObservation
	Summary      FireSummary
}

// WeatherReading - текущая погода
type WeatherReading struct {
	Temperature float64 `json:"temperature"`
	Humidity    float64 `json:"humidity"`
	WindSpeed   float64 `json:"wind_speed"`
	WindDeg     float64 `json:"wind_deg"`
	Rain1h      float64 `json:"rain_1h"`
}

// AirQualityReading - индекс качества воздуха (1-5) и концентрации частиц
type AirQualityReading struct {
	Index int     `json:"air_quality_index"`
	PM25  float64 `json:"pm2_5"`
	PM10  float64 `json:"pm10"`
}

// ETSample - одна строка временного ряда OpenET
type ETSample struct {
	Date string
	ETmm float64

	Cumulative    float64
	RollingMean3d float64
	RollingMean7d float64
}

// ETSummary - последнее значение ряда эвапотранспирации
type ETSummary struct {
	ETmm          float64 `json:"et_mm"`
	Cumulative    float64 `json:"et_cumulative_mm"`
	RollingMean3d float64 `json:"et_rolling_mean_3d"`
	RollingMean7d float64 `json:"et_rolling_mean_7d"`
}
