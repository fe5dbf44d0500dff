package domain

import "time"

const (
	EventOrderPlaced    = "order_placed"
	EventOrderDelivered = "order_delivered"
)

// OrderEvent is published to the orders topic keyed by order id.
type OrderEvent struct {
	Type         string    `json:"type"`
	OrderID      string    `json:"order_id"`
	UserID       string    `json:"user_id"`
	RestaurantID string    `json:"restaurant_id"`
	Cost         float64   `json:"cost"`
	TravelTime   time.Time `json:"travel_time"`
	Timestamp    time.Time `json:"timestamp"`
}

type Created struct {
	ID string `json:"id"`
}

// OrderRange bounds an order listing by order date. Nil ends are open.
type OrderRange struct {
	From *time.Time
	To   *time.Time
}
