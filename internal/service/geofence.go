package service

import (
	"fmt"
	"math"
)

// Средний радиус Земли в метрах
const earthRadiusM = 6371000.0

// GeofenceError возвращается, когда уточнённая точка лежит дальше
// допустимого радиуса от координат места
type GeofenceError struct {
	DistanceM int
	RadiusM   int
}

func (e *GeofenceError) Error() string {
	return fmt.Sprintf("precise point is %d m away from the place, allowed radius is %d m", e.DistanceM, e.RadiusM)
}

// DistanceMeters вычисляет расстояние между двумя координатами по формуле
// гаверсинусов, в метрах, округлённое до ближайшего целого
func DistanceMeters(lat1, lon1, lat2, lon2 float64) int {
	dLat := toRad(lat2 - lat1)
	dLon := toRad(lon2 - lon1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return int(math.Round(earthRadiusM * c))
}

// CheckGeofence проверяет, что точка (lat, lon) находится в пределах radiusM
// метров от координат места. Возвращает вычисленное расстояние; нижней
// границы нет, нулевое расстояние допустимо.
func CheckGeofence(lat, lon, placeLat, placeLon float64, radiusM int) (int, error) {
	distance := DistanceMeters(lat, lon, placeLat, placeLon)
	if distance > radiusM {
		return distance, &GeofenceError{DistanceM: distance, RadiusM: radiusM}
	}
	return distance, nil
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}
