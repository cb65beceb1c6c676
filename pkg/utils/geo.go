package utils

import "math"

// HaversineMiles returns the great-circle distance between two coordinates in
// statute miles, rounded to the nearest mile
func HaversineMiles(lat1, lon1, lat2, lon2 float64) int {
	toRad := func(deg float64) float64 { return deg * math.Pi / 180 }

	dLat := toRad(lat2 - lat1)
	dLon := toRad(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return int(math.Round(EARTH_RADIUS_MILES * c))
}

// EstimateDurationHours estimates block time from distance. Short hops carry
// proportionally more taxi and climb overhead.
func EstimateDurationHours(distance int) float64 {
	d := float64(distance)
	var hours float64
	switch {
	case distance < 500:
		hours = d/350 + 0.5
	case distance < 2000:
		hours = d/450 + 0.75
	default:
		hours = d/500 + 1.0
	}
	return Round(hours, 1)
}
