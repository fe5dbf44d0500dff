package service

import (
	"context"
	"encoding/json"
	"log"

	"foodrun/delivery-worker/internal/domain"
)

type Consumer struct {
	Reader     MessageReader
	Deliveries DeliveryHandler
}

func NewConsumer(reader MessageReader, deliveries DeliveryHandler) *Consumer {
	return &Consumer{
		Reader:     reader,
		Deliveries: deliveries,
	}
}

// Start reads order events until ctx is cancelled.
func (c *Consumer) Start(ctx context.Context) {
	log.Println("Starting Delivery Worker consumer...")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Printf("Error reading message: %v", err)
			continue
		}

		var event domain.OrderEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			log.Printf("Error unmarshaling message: %v", err)
			continue
		}

		c.ProcessEvent(ctx, event)
	}
}

func (c *Consumer) ProcessEvent(ctx context.Context, event domain.OrderEvent) {
	var err error
	switch event.Type {
	case domain.EventOrderPlaced:
		log.Printf("Processing order placed: OrderID=%s, UserID=%s", event.OrderID, event.UserID)
		err = c.Deliveries.OrderPlaced(ctx, event)
	case domain.EventOrderDelivered:
		log.Printf("Processing order delivered: OrderID=%s", event.OrderID)
		err = c.Deliveries.OrderDelivered(ctx, event)
	default:
		return
	}
	if err != nil {
		log.Printf("Error processing %s for order %s: %v", event.Type, event.OrderID, err)
	}
}
