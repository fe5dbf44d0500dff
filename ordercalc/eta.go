package ordercalc

import (
	"errors"
	"math"
	"math/rand"
	"strconv"
	"time"
)

const (
	EarthRadiusKm    = 6371.0
	KmPerMile        = 1.609
	FallbackDistance = 100.0

	minSpeedFactor = 5
	maxSpeedFactor = 100
)

var ErrInvalidCoordinates = errors.New("coordinates must be a [lat, lng] pair")

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Strings renders the pair the way orders persist it.
func (c Coordinates) Strings() []string {
	return []string{
		strconv.FormatFloat(c.Lat, 'f', -1, 64),
		strconv.FormatFloat(c.Lng, 'f', -1, 64),
	}
}

// ParseCoordinates reads a persisted [lat, lng] pair. An empty list means the
// address was never resolved and yields nil without error.
func ParseCoordinates(pair []string) (*Coordinates, error) {
	if len(pair) == 0 {
		return nil, nil
	}
	if len(pair) != 2 {
		return nil, ErrInvalidCoordinates
	}
	lat, err := strconv.ParseFloat(pair[0], 64)
	if err != nil {
		return nil, ErrInvalidCoordinates
	}
	lng, err := strconv.ParseFloat(pair[1], 64)
	if err != nil {
		return nil, ErrInvalidCoordinates
	}
	return &Coordinates{Lat: lat, Lng: lng}, nil
}

// Rand is satisfied by *math/rand.Rand.
type Rand interface {
	Intn(n int) int
}

func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func HaversineMiles(origin, destination Coordinates) float64 {
	latDistance := toRadians(destination.Lat - origin.Lat)
	lngDistance := toRadians(destination.Lng - origin.Lng)

	a := math.Sin(latDistance/2)*math.Sin(latDistance/2) +
		math.Cos(toRadians(origin.Lat))*math.Cos(toRadians(destination.Lat))*
			math.Sin(lngDistance/2)*math.Sin(lngDistance/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c / KmPerMile
}

// DeliveryDistance falls back to FallbackDistance when either end is unknown.
func DeliveryDistance(origin, destination *Coordinates) float64 {
	if origin == nil || destination == nil {
		return FallbackDistance
	}
	return HaversineMiles(*origin, *destination)
}

// EstimateDeliveryMinutes is a simulation, not a routing estimate: the
// distance is scaled by a random factor drawn from [5, 100].
func EstimateDeliveryMinutes(origin, destination *Coordinates, rng Rand) int {
	factor := minSpeedFactor + rng.Intn(maxSpeedFactor-minSpeedFactor+1)
	return MinutesForFactor(DeliveryDistance(origin, destination), factor)
}

func MinutesForFactor(distance float64, factor int) int {
	minutes := distance / 100 * float64(factor)
	if minutes < 1 {
		minutes = 1
	}
	return int(math.Floor(minutes))
}

// MinutesBounds returns the smallest and largest estimate possible for a
// distance.
func MinutesBounds(distance float64) (int, int) {
	return MinutesForFactor(distance, minSpeedFactor), MinutesForFactor(distance, maxSpeedFactor)
}

func EstimatedArrival(now time.Time, minutes int) time.Time {
	return now.Add(time.Duration(minutes) * time.Minute)
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
