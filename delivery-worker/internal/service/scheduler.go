package service

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"foodrun/delivery-worker/internal/domain"
	"foodrun/model"
)

// Scheduler arms one timer per in-transit order for exactly its remaining
// travel time. Due times live in the DueSet so a restarted worker measures
// real elapsed time instead of resuming a countdown.
type Scheduler struct {
	store    OrderStore
	due      DueSet
	notifier Notifier
	base     context.Context
	now      func() time.Time
	location *time.Location

	mu     sync.Mutex
	timers map[string]*time.Timer
}

func NewScheduler(ctx context.Context, store OrderStore, due DueSet, notifier Notifier, location *time.Location) *Scheduler {
	if location == nil {
		location = time.Local
	}
	return &Scheduler{
		store:    store,
		due:      due,
		notifier: notifier,
		base:     ctx,
		now:      time.Now,
		location: location,
		timers:   make(map[string]*time.Timer),
	}
}

func (s *Scheduler) notify(ctx context.Context, userID, title, body string) {
	err := s.notifier.Notify(ctx, domain.Notification{
		UserID:    userID,
		Title:     title,
		Body:      body,
		Timestamp: s.now(),
	})
	if err != nil {
		log.Printf("Warning: failed to send %q to user %s: %v", title, userID, err)
	}
}

func (s *Scheduler) OrderPlaced(ctx context.Context, event domain.OrderEvent) error {
	s.notify(ctx, event.UserID, model.TitleOrderPlaced, model.PlacedBody(event.OrderID, event.TravelTime, s.location))

	if event.TravelTime.IsZero() {
		return nil
	}
	delivery := domain.Delivery{OrderID: event.OrderID, UserID: event.UserID, Due: event.TravelTime}
	if err := s.due.Add(ctx, delivery); err != nil {
		return fmt.Errorf("failed to persist due time: %w", err)
	}
	s.arm(delivery)
	return nil
}

// OrderDelivered handles a flip made elsewhere, e.g. by a client that saw
// the travel time pass first.
func (s *Scheduler) OrderDelivered(ctx context.Context, event domain.OrderEvent) error {
	s.disarm(event.OrderID)
	if err := s.due.Remove(ctx, event.OrderID); err != nil {
		return fmt.Errorf("failed to clear due time: %w", err)
	}
	s.notify(ctx, event.UserID, model.TitleOrderDelivered, model.BodyOrderDelivered)
	return nil
}

// Restore re-arms every persisted delivery. Overdue ones fire at once.
func (s *Scheduler) Restore(ctx context.Context) (int, error) {
	deliveries, err := s.due.All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load due deliveries: %w", err)
	}
	for _, delivery := range deliveries {
		s.arm(delivery)
	}
	return len(deliveries), nil
}

func (s *Scheduler) arm(delivery domain.Delivery) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if timer, ok := s.timers[delivery.OrderID]; ok {
		timer.Stop()
	}
	s.timers[delivery.OrderID] = time.AfterFunc(delivery.Due.Sub(s.now()), func() {
		s.fire(delivery)
	})
}

func (s *Scheduler) disarm(orderID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if timer, ok := s.timers[orderID]; ok {
		timer.Stop()
		delete(s.timers, orderID)
	}
}

func (s *Scheduler) fire(delivery domain.Delivery) {
	s.mu.Lock()
	delete(s.timers, delivery.OrderID)
	s.mu.Unlock()

	ctx := s.base
	flipped, err := s.store.MarkDelivered(ctx, delivery.OrderID)
	if err != nil {
		log.Printf("ERROR: failed to mark order %s delivered: %v", delivery.OrderID, err)
		return
	}
	if err := s.due.Remove(ctx, delivery.OrderID); err != nil {
		log.Printf("Warning: failed to clear due time for order %s: %v", delivery.OrderID, err)
	}
	if flipped {
		s.notify(ctx, delivery.UserID, model.TitleOrderDelivered, model.BodyOrderDelivered)
	}
}

func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, timer := range s.timers {
		timer.Stop()
		delete(s.timers, id)
	}
}
