package model

// Point is a geographic position in degrees, as exchanged over HTTP.
type Point struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// DestinationQuery asks for the point reached from Start after Distance
// meters on the initial bearing Bearing (degrees, clockwise from North).
// Radius is the sphere radius in meters, 0 meaning the mean Earth radius.
type DestinationQuery struct {
	Start    Point   `json:"start"`
	Distance float64 `json:"distance"`
	Bearing  float64 `json:"bearing"`
	Radius   float64 `json:"radius,omitempty"`
}

// DistanceQuery asks for the great-circle distance and initial bearing
// between From and To.
type DistanceQuery struct {
	From Point `json:"from"`
	To   Point `json:"to"`
}

// DistanceResult carries the distance in meters and the initial bearing in
// degrees clockwise from North.
type DistanceResult struct {
	Distance float64 `json:"distance"`
	Bearing  float64 `json:"bearing"`
}
