// Package geo provides great-circle distance math and geofence classification
// for visit check-ins.
package geo

import "math"

const (
	// EarthRadiusMeters is the mean Earth radius used by the haversine formula.
	EarthRadiusMeters = 6371000.0

	// DefaultRadiusMeters is the allowed check-in radius around a store when
	// no radius is configured.
	DefaultRadiusMeters = 500.0
)

// Coordinates is a (latitude, longitude) pair in degrees.
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// Evaluation is the outcome of a geofence check. Distances are in meters.
type Evaluation struct {
	DistanceMeters float64
	RadiusMeters   float64
	WithinRadius   bool
}

// RoundedDistance returns the distance rounded to the nearest meter, the
// precision reported back to callers.
func (e *Evaluation) RoundedDistance() int64 {
	return int64(math.Round(e.DistanceMeters))
}

// Distance computes the haversine great-circle distance between two points,
// in meters.
func Distance(a, b Coordinates) float64 {
	lat1 := a.Latitude * math.Pi / 180
	lon1 := a.Longitude * math.Pi / 180
	lat2 := b.Latitude * math.Pi / 180
	lon2 := b.Longitude * math.Pi / 180

	deltaLat := lat2 - lat1
	deltaLon := lon2 - lon1

	h := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*
			math.Sin(deltaLon/2)*math.Sin(deltaLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusMeters * c
}

// Evaluate classifies a check-in position against the geofence around a store.
// When either coordinate pair is absent no evaluation is performed and nil is
// returned — the caller accepts the visit unconditionally. The result is
// advisory: callers flag out-of-radius check-ins, they never block them.
func Evaluate(checkIn, storeLocation *Coordinates, radiusMeters float64) *Evaluation {
	if checkIn == nil || storeLocation == nil {
		return nil
	}

	distance := Distance(*checkIn, *storeLocation)

	return &Evaluation{
		DistanceMeters: distance,
		RadiusMeters:   radiusMeters,
		WithinRadius:   distance <= radiusMeters,
	}
}
