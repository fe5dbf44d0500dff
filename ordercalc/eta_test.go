package ordercalc_test

import (
	"testing"
	"time"

	"foodrun/ordercalc"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedRand int

func (f fixedRand) Intn(n int) int {
	if int(f) >= n {
		return n - 1
	}
	return int(f)
}

func TestHaversineMiles(t *testing.T) {
	p := ordercalc.Coordinates{Lat: 39.1653, Lng: -86.5264}
	assert.Equal(t, 0.0, ordercalc.HaversineMiles(p, p))

	oneDegree := ordercalc.HaversineMiles(ordercalc.Coordinates{Lat: 0, Lng: 0}, ordercalc.Coordinates{Lat: 0, Lng: 1})
	assert.InDelta(t, 69.1, oneDegree, 0.1)
}

func TestEstimateDeliveryMinutes_Bounds(t *testing.T) {
	origin := &ordercalc.Coordinates{Lat: 0, Lng: 0}
	destination := &ordercalc.Coordinates{Lat: 0, Lng: 1}
	distance := ordercalc.DeliveryDistance(origin, destination)
	low, high := ordercalc.MinutesBounds(distance)
	assert.Equal(t, 3, low)
	assert.Equal(t, 69, high)

	rng := ordercalc.NewRand(42)
	for i := 0; i < 200; i++ {
		minutes := ordercalc.EstimateDeliveryMinutes(origin, destination, rng)
		assert.GreaterOrEqual(t, minutes, low)
		assert.LessOrEqual(t, minutes, high)
	}
}

func TestEstimateDeliveryMinutes_FixedFactor(t *testing.T) {
	origin := &ordercalc.Coordinates{Lat: 0, Lng: 0}

	tests := []struct {
		name        string
		destination *ordercalc.Coordinates
		draw        fixedRand
		want        int
	}{
		{name: "fallback distance slowest", destination: nil, draw: 95, want: 100},
		{name: "fallback distance fastest", destination: nil, draw: 0, want: 5},
		{name: "same point floors at one minute", destination: origin, draw: 50, want: 1},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			got := ordercalc.EstimateDeliveryMinutes(origin, testCase.destination, testCase.draw)
			assert.Equal(t, testCase.want, got)
		})
	}
}

func TestCoordinatesRoundTrip(t *testing.T) {
	c := ordercalc.Coordinates{Lat: 39.1653, Lng: -86.5264}
	assert.Equal(t, []string{"39.1653", "-86.5264"}, c.Strings())

	parsed, err := ordercalc.ParseCoordinates(c.Strings())
	require.NoError(t, err)
	assert.Equal(t, c, *parsed)

	parsed, err = ordercalc.ParseCoordinates(nil)
	assert.NoError(t, err)
	assert.Nil(t, parsed)

	_, err = ordercalc.ParseCoordinates([]string{"1"})
	assert.ErrorIs(t, err, ordercalc.ErrInvalidCoordinates)
	_, err = ordercalc.ParseCoordinates([]string{"north", "2"})
	assert.ErrorIs(t, err, ordercalc.ErrInvalidCoordinates)
}

func TestEstimatedArrival(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, now.Add(17*time.Minute), ordercalc.EstimatedArrival(now, 17))
}
