package model

import (
	"fmt"
	"time"
)

const (
	TitleOrderPlaced    = "Order Placed Successfully"
	TitleOrderDelivered = "Order Delivered"
	BodyOrderDelivered  = "Your order has been delivered."
	ArrivalLayout       = "02/01/2006 15:04"
)

// PlacedBody is the text of the order-placed notification, with the
// estimated arrival rendered in location.
func PlacedBody(orderID string, arrival time.Time, location *time.Location) string {
	return fmt.Sprintf("Your order #%s has been placed. Estimated delivery: %s", orderID, arrival.In(location).Format(ArrivalLayout))
}
