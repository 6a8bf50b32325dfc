package latlon

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidRadius is returned when the sphere radius is not a
	// strictly positive finite number.
	ErrInvalidRadius = errors.New("radius must be a positive finite number")
	// ErrInvalidInput is returned when a latitude, longitude, distance or
	// bearing is NaN or infinite.
	ErrInvalidInput = errors.New("input must be finite")
)

// Destination returns the point reached from 'from' after 'distance' meters
// on the initial bearing 'bearing', on a sphere of EarthRadius. Bearing is in
// radians clockwise from North and may be any real value. A negative distance
// is treated as zero. Inputs are expected finite : NaN or infinite values
// propagate into the result. Use DestinationWithRadius to have bad inputs
// rejected instead.
func Destination(from LatLon, distance, bearing float64) LatLon {
	return destination(from, distance, bearing, EarthRadius)
}

// DestinationWithRadius is Destination on a sphere of the given radius in
// meters. It returns ErrInvalidRadius if radius is not a positive finite
// number, and ErrInvalidInput if any of the start coordinates, the distance
// or the bearing is NaN or infinite.
func DestinationWithRadius(from LatLon, distance, bearing, radius float64) (LatLon, error) {
	if math.IsNaN(radius) || math.IsInf(radius, 0) || radius <= 0 {
		return LatLon{}, fmt.Errorf("radius %f: %w", radius, ErrInvalidRadius)
	}
	for _, v := range []float64{from.Lat, from.Lon, distance, bearing} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return LatLon{}, fmt.Errorf("destination from (%f,%f) distance %f bearing %f: %w", from.Lat, from.Lon, distance, bearing, ErrInvalidInput)
		}
	}
	return destination(from, distance, bearing, radius), nil
}

// destination is the spherical direct geodesic. Normalization happens here
// and nowhere else : the asin argument is clamped into [-1, 1] against
// floating-point drift, the latitude saturates at the poles and the
// longitude wraps into (-π, π].
func destination(from LatLon, distance, bearing, radius float64) LatLon {
	if distance <= 0 {
		// No displacement : the bearing must not perturb the start point.
		return New(from.Lat, from.Lon)
	}

	φ1 := from.Lat
	λ1 := from.Lon
	θ := bearing

	δ := distance / radius

	φ2 := math.Asin(clampUnit(math.Sin(φ1)*math.Cos(δ) + math.Cos(φ1)*math.Sin(δ)*math.Cos(θ)))
	λ2 := λ1 + math.Atan2(math.Sin(θ)*math.Sin(δ)*math.Cos(φ1), math.Cos(δ)-math.Sin(φ1)*math.Sin(φ2))

	return LatLon{Lat: clampLat(φ2), Lon: wrapPi(λ2)}
}
