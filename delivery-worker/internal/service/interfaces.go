package service

import (
	"context"

	"foodrun/delivery-worker/internal/domain"

	"github.com/segmentio/kafka-go"
)

type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

type DeliveryHandler interface {
	OrderPlaced(ctx context.Context, event domain.OrderEvent) error
	OrderDelivered(ctx context.Context, event domain.OrderEvent) error
}

type OrderStore interface {
	// MarkDelivered reports whether this call flipped the order.
	MarkDelivered(ctx context.Context, orderID string) (bool, error)
}

type DueSet interface {
	Add(ctx context.Context, delivery domain.Delivery) error
	Remove(ctx context.Context, orderID string) error
	All(ctx context.Context) ([]domain.Delivery, error)
}

type Notifier interface {
	Notify(ctx context.Context, notification domain.Notification) error
}

var (
	_ MessageReader   = (*kafka.Reader)(nil)
	_ DeliveryHandler = (*Scheduler)(nil)
)
