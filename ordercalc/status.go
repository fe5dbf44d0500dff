package ordercalc

import (
	"time"

	"foodrun/model"
)

type DeliveryStatus int

const (
	StatusPlaced DeliveryStatus = iota
	StatusInTransit
	StatusDelivered
)

func (s DeliveryStatus) String() string {
	switch s {
	case StatusPlaced:
		return "placed"
	case StatusInTransit:
		return "in_transit"
	case StatusDelivered:
		return "delivered"
	}
	return "unknown"
}

func StatusOf(order model.FoodOrder) DeliveryStatus {
	switch {
	case order.IsDelivered:
		return StatusDelivered
	case order.TravelTime.IsZero():
		return StatusPlaced
	default:
		return StatusInTransit
	}
}

// CheckDelivery marks an in-transit order delivered once now has reached its
// travel time. It reports whether the transition happened; delivered orders
// never change.
func CheckDelivery(order model.FoodOrder, now time.Time) (model.FoodOrder, bool) {
	if StatusOf(order) != StatusInTransit || now.Before(order.TravelTime) {
		return order, false
	}
	order.IsDelivered = true
	return order, true
}

func DueForDelivery(orders []model.FoodOrder, now time.Time) []model.FoodOrder {
	var due []model.FoodOrder
	for _, order := range orders {
		if _, changed := CheckDelivery(order, now); changed {
			due = append(due, order)
		}
	}
	return due
}

func RemainingTravel(order model.FoodOrder, now time.Time) time.Duration {
	if remaining := order.TravelTime.Sub(now); remaining > 0 {
		return remaining
	}
	return 0
}
