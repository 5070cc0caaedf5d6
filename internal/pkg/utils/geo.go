package utils

import "math"

const earthRadiusKm = 6371.0

// HaversineDistanceKm вычисляет расстояние между двумя точками в километрах
// по формуле haversine. Результат округлён до 2 знаков (округление
// идемпотентно, повторный вызов Round2 ничего не меняет).
func HaversineDistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180.0
	dLon := (lon2 - lon1) * math.Pi / 180.0

	lat1Rad := lat1 * math.Pi / 180.0
	lat2Rad := lat2 * math.Pi / 180.0

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1Rad)*math.Cos(lat2Rad)

	// Из-за накопления ошибок с плавающей точкой a может чуть выйти
	// за [0, 1], что даёт NaN на антиподальных точках
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return Round2(earthRadiusKm * c)
}

// Round2 округляет до 2 знаков после запятой
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ValidateCoordinates проверяет валидность координат
func ValidateCoordinates(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

// ValidateRadius проверяет валидность радиуса поиска (неотрицательный,
// 0 означает неограниченный)
func ValidateRadius(radiusKm float64) bool {
	return radiusKm >= 0
}
