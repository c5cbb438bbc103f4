package models

import "strconv"

// FlatRecord - объединенная запись одной строкой. Все ключи присутствуют всегда,
// nearest_fire_km равен null, если пожаров нет.
type FlatRecord struct {
	FireIntensity    float64  `json:"fire_intensity"`
	NearestFireKm    *float64 `json:"nearest_fire_km"`
	NumFiresPastDays int      `json:"num_fires_past_days"`
	Temperature      float64  `json:"temperature"`
	Humidity         float64  `json:"humidity"`
	WindSpeed        float64  `json:"wind_speed"`
	WindDeg          float64  `json:"wind_deg"`
	Rain1h           float64  `json:"rain_1h"`
	AirQualityIndex  int      `json:"air_quality_index"`
	PM25             float64  `json:"pm2_5"`
	PM10             float64  `json:"pm10"`
	ETmm             float64  `json:"et_mm"`
	ETCumulative     float64  `json:"et_cumulative_mm"`
	ETRollingMean3d  float64  `json:"et_rolling_mean_3d"`
	ETRollingMean7d  float64  `json:"et_rolling_mean_7d"`
	Latitude         float64  `json:"latitude"`
	Longitude        float64  `json:"longitude"`
	Date             string   `json:"date"`
	SERI             float64  `json:"SERI"`
	SERIBand         string   `json:"SERI_band"`
}

// Flatten разворачивает объединенную запись в плоскую строку
func (r FusedRecord) Flatten() FlatRecord {
	return FlatRecord{
		FireIntensity:    r.Fire.Intensity,
		NearestFireKm:    r.Fire.NearestKm,
		NumFiresPastDays: r.Fire.Count,
		Temperature:      r.Weather.Temperature,
		Humidity:         r.Weather.Humidity,
		WindSpeed:        r.Weather.WindSpeed,
		WindDeg:          r.Weather.WindDeg,
		Rain1h:           r.Weather.Rain1h,
		AirQualityIndex:  r.AirQuality.Index,
		PM25:             r.AirQuality.PM25,
		PM10:             r.AirQuality.PM10,
		ETmm:             r.ET.ETmm,
		ETCumulative:     r.ET.Cumulative,
		ETRollingMean3d:  r.ET.RollingMean3d,
		ETRollingMean7d:  r.ET.RollingMean7d,
		Latitude:         r.Latitude,
		Longitude:        r.Longitude,
		Date:             r.Date,
		SERI:             r.Risk.Score,
		SERIBand:         r.Risk.Band,
	}
}

// CSVHeader - порядок колонок датасета
func CSVHeader() []string {
	return []string{
		"fire_intensity", "nearest_fire_km", "num_fires_past_days",
		"temperature", "humidity", "wind_speed", "wind_deg", "rain_1h",
		"air_quality_index", "pm2_5", "pm10",
		"et_mm", "et_cumulative_mm", "et_rolling_mean_3d", "et_rolling_mean_7d",
		"latitude", "longitude", "date", "SERI", "SERI_band",
	}
}

// CSVRow возвращает значения в порядке CSVHeader. Отсутствующая дистанция - пустая ячейка.
func (f FlatRecord) CSVRow() []string {
	nearest := ""
	if f.NearestFireKm != nil {
		nearest = formatFloat(*f.NearestFireKm)
	}
	return []string{
		formatFloat(f.FireIntensity), nearest, strconv.Itoa(f.NumFiresPastDays),
		formatFloat(f.Temperature), formatFloat(f.Humidity), formatFloat(f.WindSpeed), formatFloat(f.WindDeg), formatFloat(f.Rain1h),
		strconv.Itoa(f.AirQualityIndex), formatFloat(f.PM25), formatFloat(f.PM10),
		formatFloat(f.ETmm), formatFloat(f.ETCumulative), formatFloat(f.ETRollingMean3d), formatFloat(f.ETRollingMean7d),
		formatFloat(f.Latitude), formatFloat(f.Longitude), f.Date, formatFloat(f.SERI), f.SERIBand,
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
