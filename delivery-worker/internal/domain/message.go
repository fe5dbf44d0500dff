package domain

import "time"

const (
	EventOrderPlaced    = "order_placed"
	EventOrderDelivered = "order_delivered"
)

// OrderEvent is what storage-svc publishes on the orders topic.
type OrderEvent struct {
	Type         string    `json:"type"`
	OrderID      string    `json:"order_id"`
	UserID       string    `json:"user_id"`
	RestaurantID string    `json:"restaurant_id"`
	Cost         float64   `json:"cost"`
	TravelTime   time.Time `json:"travel_time"`
	Timestamp    time.Time `json:"timestamp"`
}

// Delivery is a pending arrival kept in the due set.
type Delivery struct {
	OrderID string
	UserID  string
	Due     time.Time
}

type Notification struct {
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Timestamp time.Time `json:"timestamp"`
}
