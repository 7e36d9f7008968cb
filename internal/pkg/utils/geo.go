package utils

import (
	"math"

	"github.com/restaurant-finder/internal/domain"
)

const (
	earthRadiusMeters = 6371000.0

	// MetersPerDegreeLat is the fixed approximation used to turn a radius into degrees.
	MetersPerDegreeLat = 111000.0
)

// BoundingBoxAround returns the degree-space box covering radiusMeters around
// center. The longitude delta is widened by the secant of the latitude since
// a degree of longitude shrinks toward the poles. Results are not clamped to
// valid ranges.
func BoundingBoxAround(center domain.Coordinate, radiusMeters int) domain.BoundingBox {
	r := float64(radiusMeters)
	latDelta := r / MetersPerDegreeLat
	lonDelta := r / (MetersPerDegreeLat * math.Abs(math.Cos(center.Lat*math.Pi/180.0)))

	return domain.BoundingBox{
		MinLat: center.Lat - latDelta,
		MinLon: center.Lon - lonDelta,
		MaxLat: center.Lat + latDelta,
		MaxLon: center.Lon + lonDelta,
	}
}

// HaversineDistance вычисляет расстояние между двумя точками в метрах
func HaversineDistance(a, b domain.Coordinate) float64 {
	dLat := (b.Lat - a.Lat) * math.Pi / 180.0
	dLon := (b.Lon - a.Lon) * math.Pi / 180.0

	lat1Rad := a.Lat * math.Pi / 180.0
	lat2Rad := b.Lat * math.Pi / 180.0

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1Rad)*math.Cos(lat2Rad)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusMeters * c
}

// ValidateCoordinates проверяет валидность координат
func ValidateCoordinates(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

// ValidateRadius проверяет, что радиус в метрах положителен и не превышает max
func ValidateRadius(radiusMeters, max int) bool {
	return radiusMeters > 0 && radiusMeters <= max
}
