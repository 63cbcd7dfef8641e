package utils

import (
	"math"

	"github.com/junianwoo/fyd-sub001/schema"
)

// EarthRadiusKm is the mean earth radius used for great-circle distances
const EarthRadiusKm = 6371.0

// Distance returns the great-circle distance between two points in
// kilometers using the haversine formula.
func Distance(a, b schema.Location) float64 {
	lat1 := degToRad(a.Latitude)
	lat2 := degToRad(b.Latitude)
	dLat := degToRad(b.Latitude - a.Latitude)
	dLon := degToRad(b.Longitude - a.Longitude)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)

	return 2 * EarthRadiusKm * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}
