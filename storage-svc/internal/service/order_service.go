package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"foodrun/model"
	"foodrun/ordercalc"
	"foodrun/storage-svc/internal/domain"
	"foodrun/stream"

	"github.com/google/uuid"
)

const OrdersChannel = "orders_changed"

var ErrInvalidOrder = errors.New("invalid order payload")

type OrderService struct {
	repo      OrderRepository
	catalog   CatalogRepository
	publisher OrderPublisher
	watcher   stream.Watcher
	qrEncoder QRGenerator
	now       func() time.Time
}

func NewOrderService(repo OrderRepository, catalog CatalogRepository, publisher OrderPublisher, watcher stream.Watcher, qr QRGenerator) *OrderService {
	return &OrderService{
		repo:      repo,
		catalog:   catalog,
		publisher: publisher,
		watcher:   watcher,
		qrEncoder: qr,
		now:       time.Now,
	}
}

// PlaceOrder assigns the order a fresh id, binds it to userID and prices it
// from the catalog before storing it.
func (s *OrderService) PlaceOrder(ctx context.Context, userID string, order *model.FoodOrder) (*model.FoodOrder, error) {
	if len(order.FoodID) == 0 {
		return nil, ordercalc.ErrEmptyOrder
	}
	if order.RestaurantID == "" || len(order.FoodID) != len(order.FoodAmount) {
		return nil, ErrInvalidOrder
	}
	for _, amount := range order.FoodAmount {
		if amount <= 0 {
			return nil, ErrInvalidOrder
		}
	}

	foods, err := s.catalog.FoodsByIDs(ctx, order.FoodID)
	if err != nil {
		return nil, fmt.Errorf("failed to price order: %w", err)
	}

	placed := *order
	placed.ID = uuid.NewString()
	placed.UserID = userID
	placed.IsDelivered = false
	placed.Cost = ordercalc.TotalCost(placed, ordercalc.PriceTable(foods))
	if placed.OrderDate.IsZero() {
		placed.OrderDate = s.now()
	}

	if err := s.repo.InsertOrder(ctx, &placed); err != nil {
		return nil, fmt.Errorf("failed to store order: %w", err)
	}

	s.publish(ctx, domain.EventOrderPlaced, &placed)
	return &placed, nil
}

func (s *OrderService) publish(ctx context.Context, eventType string, order *model.FoodOrder) {
	if s.publisher == nil {
		log.Printf("Warning: publisher is nil, skipping %s event", eventType)
		return
	}
	event := domain.OrderEvent{
		Type:         eventType,
		OrderID:      order.ID,
		UserID:       order.UserID,
		RestaurantID: order.RestaurantID,
		Cost:         order.Cost,
		TravelTime:   order.TravelTime,
		Timestamp:    s.now(),
	}
	if err := s.publisher.PublishOrderEvent(ctx, event); err != nil {
		log.Printf("Warning: failed to publish %s for order %s: %v", eventType, order.ID, err)
	}
}

func (s *OrderService) ListUserOrders(ctx context.Context, userID string, window domain.OrderRange) ([]model.FoodOrder, error) {
	return s.repo.ListUserOrders(ctx, userID, window)
}

func (s *OrderService) GetOrder(ctx context.Context, id string) (*model.FoodOrder, error) {
	return s.repo.GetOrder(ctx, id)
}

// MarkDelivered flips the order to delivered. Repeating it is harmless and
// only the first flip announces the delivery.
func (s *OrderService) MarkDelivered(ctx context.Context, id string) (*model.FoodOrder, error) {
	flipped, err := s.repo.MarkDelivered(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to mark order delivered: %w", err)
	}
	order, err := s.repo.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if flipped {
		s.publish(ctx, domain.EventOrderDelivered, order)
	}
	return order, nil
}

func (s *OrderService) WatchUserOrders(ctx context.Context, userID string, window domain.OrderRange) (*stream.Subscription[[]model.FoodOrder], error) {
	return stream.Notified(ctx, s.watcher, OrdersChannel, userID, func(ctx context.Context) ([]model.FoodOrder, error) {
		return s.repo.ListUserOrders(ctx, userID, window)
	})
}

func (s *OrderService) QRCode(ctx context.Context, id string) ([]byte, error) {
	if _, err := s.repo.GetOrder(ctx, id); err != nil {
		return nil, err
	}
	return s.qrEncoder.Generate(id)
}
