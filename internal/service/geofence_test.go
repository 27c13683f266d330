package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	placeLat = 48.8566
	placeLon = 2.3522
)

func TestDistanceMeters_ZeroDistance(t *testing.T) {
	assert.Equal(t, 0, DistanceMeters(placeLat, placeLon, placeLat, placeLon))
}

func TestDistanceMeters_Symmetric(t *testing.T) {
	lat2, lon2 := placeLat+0.01, placeLon-0.01

	forward := DistanceMeters(placeLat, placeLon, lat2, lon2)
	backward := DistanceMeters(lat2, lon2, placeLat, placeLon)

	assert.Equal(t, forward, backward)
	assert.Greater(t, forward, 0)
}

func TestCheckGeofence_WithinRadius(t *testing.T) {
	// Смещение на 0.0005 градуса широты - примерно 56 метров
	distance, err := CheckGeofence(placeLat+0.0005, placeLon, placeLat, placeLon, 200)

	require.NoError(t, err)
	assert.Equal(t, 56, distance)
}

func TestCheckGeofence_SamePoint(t *testing.T) {
	// Нулевое расстояние допустимо, нижней границы нет
	distance, err := CheckGeofence(placeLat, placeLon, placeLat, placeLon, 200)

	require.NoError(t, err)
	assert.Equal(t, 0, distance)
}

func TestCheckGeofence_BeyondRadius(t *testing.T) {
	// Смещение на 0.003 градуса широты - примерно 334 метра
	distance, err := CheckGeofence(placeLat+0.003, placeLon, placeLat, placeLon, 200)

	require.Error(t, err)
	assert.Equal(t, 334, distance)

	var geofenceErr *GeofenceError
	require.ErrorAs(t, err, &geofenceErr)
	assert.Equal(t, 334, geofenceErr.DistanceM)
	assert.Equal(t, 200, geofenceErr.RadiusM)
	assert.Contains(t, geofenceErr.Error(), "334 m")
}

func TestCheckGeofence_ExactlyOnBoundary(t *testing.T) {
	// Расстояние, равное радиусу, ещё допустимо
	distance := DistanceMeters(placeLat+0.003, placeLon, placeLat, placeLon)

	got, err := CheckGeofence(placeLat+0.003, placeLon, placeLat, placeLon, distance)

	require.NoError(t, err)
	assert.Equal(t, distance, got)
}
