package scoring

import "math"

const earthRadiusKm = 6371.0

// Haversine returns the great-circle distance between two points in km
func Haversine(a, b GeoPoint) float64 {
	dLat := (b.Lat - a.Lat) * (math.Pi / 180.0)
	dLon := (b.Lon - a.Lon) * (math.Pi / 180.0)
	lat1Rad := a.Lat * (math.Pi / 180.0)
	lat2Rad := b.Lat * (math.Pi / 180.0)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1Rad)*math.Cos(lat2Rad)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return earthRadiusKm * c
}
