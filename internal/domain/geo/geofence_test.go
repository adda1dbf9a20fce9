package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistance_KnownPoints(t *testing.T) {
	// Store in central Casablanca vs a check-in a few blocks away.
	store := Coordinates{Latitude: 33.5731, Longitude: -7.5898}
	checkIn := Coordinates{Latitude: 33.5800, Longitude: -7.6000}

	distance := Distance(checkIn, store)

	// Roughly 1.13 km apart.
	assert.InDelta(t, 1200, distance, 120)
	assert.Greater(t, distance, DefaultRadiusMeters)
}

func TestDistance_Symmetric(t *testing.T) {
	a := Coordinates{Latitude: 25.0330, Longitude: 121.5654}
	b := Coordinates{Latitude: 25.0425, Longitude: 121.5649}

	assert.InDelta(t, Distance(a, b), Distance(b, a), 1e-9)
}

func TestDistance_SamePoint(t *testing.T) {
	p := Coordinates{Latitude: 48.8566, Longitude: 2.3522}

	assert.Equal(t, 0.0, Distance(p, p))
}

func TestEvaluate_AbsentCoordinates(t *testing.T) {
	p := Coordinates{Latitude: 1, Longitude: 1}

	assert.Nil(t, Evaluate(nil, &p, DefaultRadiusMeters))
	assert.Nil(t, Evaluate(&p, nil, DefaultRadiusMeters))
	assert.Nil(t, Evaluate(nil, nil, DefaultRadiusMeters))
}

func TestEvaluate_OutsideRadius(t *testing.T) {
	store := Coordinates{Latitude: 33.5731, Longitude: -7.5898}
	checkIn := Coordinates{Latitude: 33.5800, Longitude: -7.6000}

	eval := Evaluate(&checkIn, &store, DefaultRadiusMeters)
	require.NotNil(t, eval)

	assert.False(t, eval.WithinRadius)
	assert.Equal(t, DefaultRadiusMeters, eval.RadiusMeters)
	assert.Equal(t, int64(math.Round(eval.DistanceMeters)), eval.RoundedDistance())
}

func TestEvaluate_WithinRadius(t *testing.T) {
	store := Coordinates{Latitude: 33.5731, Longitude: -7.5898}
	// ~110 m north of the store.
	checkIn := Coordinates{Latitude: 33.5741, Longitude: -7.5898}

	eval := Evaluate(&checkIn, &store, DefaultRadiusMeters)
	require.NotNil(t, eval)

	assert.True(t, eval.WithinRadius)
	assert.Less(t, eval.DistanceMeters, DefaultRadiusMeters)
}

func TestEvaluate_BoundaryIsInside(t *testing.T) {
	store := Coordinates{Latitude: 0, Longitude: 0}
	checkIn := Coordinates{Latitude: 0, Longitude: 0}

	eval := Evaluate(&checkIn, &store, 0)
	require.NotNil(t, eval)
	assert.True(t, eval.WithinRadius)
}
