// Package latlon solves the direct geodesic problem on a spherical Earth :
// given a start point, a distance and an initial bearing, compute the
// destination point. Latitudes and longitudes are in radians, distances in
// meters, bearings in radians clockwise from North.
package latlon

import "math"

const π = math.Pi

// EarthRadius is the mean Earth radius in meters.
const EarthRadius = 6371000.0

type LatLon struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// New builds a LatLon from radians. Latitude saturates at the poles,
// longitude wraps into (-π, π].
func New(lat, lon float64) LatLon {
	return LatLon{Lat: clampLat(lat), Lon: wrapPi(lon)}
}

func ToRadians(a float64) float64 {
	return a * π / 180.0
}

func ToDegrees(a float64) float64 {
	return a * 180.0 / π
}

// wrapPi wraps a longitude into (-π, π]. Exact for values already in range :
// canonical inputs come back unchanged, -π comes back as +π.
func wrapPi(lon float64) float64 {
	if lon > -π && lon <= π {
		return lon
	}
	w := math.Mod(lon+π, 2*π)
	if w <= 0 {
		w += 2 * π
	}
	return w - π
}

// wrapTau wraps a bearing into [0, 2π).
func wrapTau(b float64) float64 {
	if 0 <= b && b < 2*π {
		return b
	}
	w := math.Mod(b, 2*π)
	if w < 0 {
		w += 2 * π
	}
	return w
}

// clampLat saturates a latitude into [-π/2, π/2]. Latitude does not wrap
// around like longitude.
func clampLat(lat float64) float64 {
	if lat < -π/2 {
		return -π / 2
	}
	if lat > π/2 {
		return π / 2
	}
	return lat
}

// clampUnit guards asin/acos arguments against floating-point overshoot.
func clampUnit(x float64) float64 {
	if x < -1 {
		return -1
	}
	if x > 1 {
		return 1
	}
	return x
}
