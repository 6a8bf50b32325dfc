package latlon

import "math"

// Distance returns the great-circle distance in meters between from and to,
// by the haversine formula on a sphere of EarthRadius.
func Distance(from, to LatLon) float64 {
	φ1 := from.Lat
	φ2 := to.Lat
	Δφ := φ2 - φ1
	Δλ := to.Lon - from.Lon

	a := math.Sin(Δφ/2)*math.Sin(Δφ/2) + math.Cos(φ1)*math.Cos(φ2)*math.Sin(Δλ/2)*math.Sin(Δλ/2)
	δ := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadius * δ
}

// Bearing returns the initial bearing from 'from' to 'to', in radians
// clockwise from North, wrapped into [0, 2π).
func Bearing(from, to LatLon) float64 {
	φ1 := from.Lat
	φ2 := to.Lat
	Δλ := to.Lon - from.Lon

	x := math.Cos(φ1)*math.Sin(φ2) - math.Sin(φ1)*math.Cos(φ2)*math.Cos(Δλ)
	y := math.Sin(Δλ) * math.Cos(φ2)
	θ := math.Atan2(y, x)

	return wrapTau(θ)
}

// DistanceAndBearing returns both the great-circle distance in meters and
// the initial bearing in radians from 'from' to 'to', sharing the trig terms.
func DistanceAndBearing(from, to LatLon) (float64, float64) {
	φ1 := from.Lat
	φ2 := to.Lat
	Δφ := φ2 - φ1
	Δλ := to.Lon - from.Lon

	a := math.Sin(Δφ/2)*math.Sin(Δφ/2) + math.Cos(φ1)*math.Cos(φ2)*math.Sin(Δλ/2)*math.Sin(Δλ/2)
	δ := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	d := EarthRadius * δ

	x := math.Cos(φ1)*math.Sin(φ2) - math.Sin(φ1)*math.Cos(φ2)*math.Cos(Δλ)
	y := math.Sin(Δλ) * math.Cos(φ2)
	θ := math.Atan2(y, x)

	return d, wrapTau(θ)
}
