package appstate

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"foodrun/model"
	"foodrun/ordercalc"
	"foodrun/stream"
)

const (
	MessageEmptyOrder = "Order is empty."
	MessageNoOrder    = "Order is null."
)

// OrderDetails is what the user supplies at checkout.
type OrderDetails struct {
	Destination         *ordercalc.Coordinates
	AddressName         string
	SpecialInstructions string
}

// OrderMessage renders a ConfirmOrder failure for display.
func OrderMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ordercalc.ErrEmptyOrder):
		return MessageEmptyOrder
	case errors.Is(err, ErrNoDraft):
		return MessageNoOrder
	default:
		return err.Error()
	}
}

// SelectRestaurant starts a fresh draft for restaurant.
func (s *State) SelectRestaurant(restaurant model.Restaurant) {
	s.update(func(v *View) {
		r := cloneRestaurant(restaurant)
		draft := ordercalc.NewDraft(restaurant.ID)
		v.SelectedRestaurant = &r
		v.CurrentOrder = &draft
	})
}

// UpdateFoodOrder sets the quantity of foodID in the draft, starting one for
// the selected restaurant if needed. Quantities of zero or less remove it.
func (s *State) UpdateFoodOrder(foodID string, quantity int) {
	s.update(func(v *View) {
		var draft model.FoodOrder
		switch {
		case v.CurrentOrder != nil:
			draft = *v.CurrentOrder
		case v.SelectedRestaurant != nil:
			draft = ordercalc.NewDraft(v.SelectedRestaurant.ID)
		default:
			draft = ordercalc.NewDraft("")
		}
		draft = ordercalc.ApplyQuantity(draft, foodID, quantity)
		v.CurrentOrder = &draft
	})
}

func (s *State) RemoveFoodFromOrder(foodID string) {
	s.update(func(v *View) {
		if v.CurrentOrder == nil {
			return
		}
		draft := ordercalc.RemoveFood(*v.CurrentOrder, foodID)
		v.CurrentOrder = &draft
	})
}

// TotalCost prices the current order against the loaded foods.
func (s *State) TotalCost() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.view.CurrentOrder == nil {
		return 0
	}
	return ordercalc.TotalCost(*s.view.CurrentOrder, ordercalc.PriceTable(s.view.Foods))
}

// ConfirmOrder finalises the draft and uploads it. The restaurant address is
// geocoded as the origin; when either end is unknown the fallback distance is
// used for the delivery estimate.
func (s *State) ConfirmOrder(ctx context.Context, details OrderDetails) (*model.FoodOrder, error) {
	s.mu.Lock()
	if s.view.CurrentOrder == nil {
		s.mu.Unlock()
		return nil, ErrNoDraft
	}
	draft := cloneOrder(*s.view.CurrentOrder)
	if ordercalc.IsEmpty(draft) {
		s.mu.Unlock()
		return nil, ordercalc.ErrEmptyOrder
	}
	userID := s.view.UserID
	prices := ordercalc.PriceTable(s.view.Foods)
	var address string
	if s.view.SelectedRestaurant != nil {
		address = s.view.SelectedRestaurant.Address
	} else if r := findRestaurant(s.view.Restaurants, draft.RestaurantID); r != nil {
		address = r.Address
	}
	s.mu.Unlock()

	if userID == "" {
		return nil, ErrNotSignedIn
	}

	origin := s.geocode(ctx, address)

	s.mu.Lock()
	minutes := ordercalc.EstimateDeliveryMinutes(origin, details.Destination, s.rng)
	s.mu.Unlock()
	now := s.now()

	order := draft
	order.UserID = userID
	order.Cost = ordercalc.TotalCost(draft, prices)
	order.OrderDate = now
	order.AddressOriginList = coordinateList(origin)
	order.AddressDestinationList = coordinateList(details.Destination)
	order.TravelTime = ordercalc.EstimatedArrival(now, minutes)
	order.IsDelivered = false
	order.SpecialInstructions = details.SpecialInstructions
	order.AddressName = details.AddressName

	s.update(func(v *View) {
		prepared := cloneOrder(order)
		v.CurrentOrder = &prepared
	})

	placed, err := s.storage.UploadUserFoodOrder(ctx, userID, order)
	if err != nil {
		return nil, fmt.Errorf("failed to upload order: %w", err)
	}

	s.update(func(v *View) {
		current := cloneOrder(*placed)
		v.CurrentOrder = &current
	})

	body := model.PlacedBody(placed.ID, placed.TravelTime, s.location)
	if err := s.notifier.Notify(ctx, model.TitleOrderPlaced, body); err != nil {
		log.Printf("Warning: order placed notification failed: %v", err)
	}
	return placed, nil
}

func (s *State) geocode(ctx context.Context, address string) *ordercalc.Coordinates {
	if address == "" || s.geocoder == nil {
		return nil
	}
	coordinates, err := s.geocoder.Geocode(ctx, address)
	if err != nil {
		log.Printf("Warning: geocoding %q failed: %v", address, err)
		return nil
	}
	return coordinates
}

func coordinateList(c *ordercalc.Coordinates) []string {
	if c == nil {
		return []string{}
	}
	return c.Strings()
}

// applyOrders stores an orders snapshot for userID and delivers every order
// whose travel time has passed.
func (s *State) applyOrders(ctx context.Context, userID string, orders []model.FoodOrder) {
	s.mu.Lock()
	if s.view.UserID != userID {
		s.mu.Unlock()
		return
	}
	s.updateLocked(func(v *View) { v.Orders = cloneOrders(orders) })
	due := s.claimDueLocked(orders)
	s.mu.Unlock()

	for _, order := range due {
		s.deliver(ctx, order)
	}
}

// claimDueLocked returns the due orders not already being delivered.
func (s *State) claimDueLocked(orders []model.FoodOrder) []model.FoodOrder {
	var claimed []model.FoodOrder
	for _, order := range ordercalc.DueForDelivery(orders, s.now()) {
		if s.flipped[order.ID] {
			continue
		}
		s.flipped[order.ID] = true
		claimed = append(claimed, order)
	}
	return claimed
}

func (s *State) deliver(ctx context.Context, order model.FoodOrder) {
	if err := s.storage.UpdateOrderDeliveryStatus(ctx, order.ID); err != nil {
		log.Printf("ERROR: failed to mark order %s delivered: %v", order.ID, err)
		s.mu.Lock()
		delete(s.flipped, order.ID)
		s.mu.Unlock()
		return
	}

	s.update(func(v *View) {
		for i := range v.Orders {
			if v.Orders[i].ID == order.ID {
				v.Orders[i].IsDelivered = true
			}
		}
		if v.CurrentOrder != nil && v.CurrentOrder.ID == order.ID {
			v.CurrentOrder.IsDelivered = true
		}
	})

	if err := s.notifier.Notify(ctx, model.TitleOrderDelivered, model.BodyOrderDelivered); err != nil {
		log.Printf("Warning: order delivered notification failed: %v", err)
	}
}

// RefreshOrders reloads the user's orders once and runs the delivery check
// over them.
func (s *State) RefreshOrders(ctx context.Context) error {
	userID := s.View().UserID
	if userID == "" {
		return ErrNotSignedIn
	}
	sub, err := s.storage.FetchUserOrders(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to fetch orders: %w", err)
	}
	orders, err := stream.First(ctx, sub)
	if err != nil {
		return fmt.Errorf("failed to fetch orders: %w", err)
	}
	s.applyOrders(ctx, userID, orders)
	return nil
}

func (s *State) UpdateOrderStatusAsDelivered(ctx context.Context, orderID string) error {
	if err := s.storage.UpdateOrderDeliveryStatus(ctx, orderID); err != nil {
		return fmt.Errorf("failed to update delivery status: %w", err)
	}
	return nil
}

// Reorder loads a past order's items as a new draft at the same restaurant.
func (s *State) Reorder(order model.FoodOrder) {
	s.update(func(v *View) {
		draft := ordercalc.NewDraft(order.RestaurantID)
		draft.FoodID = append([]string(nil), order.FoodID...)
		draft.FoodAmount = append([]int(nil), order.FoodAmount...)
		v.CurrentOrder = &draft
		v.SelectedRestaurant = findRestaurant(v.Restaurants, order.RestaurantID)
	})
}

func (s *State) Track(order model.FoodOrder) {
	s.update(func(v *View) {
		tracked := cloneOrder(order)
		v.CurrentOrder = &tracked
	})
}

func (s *State) TrackOrderByID(ctx context.Context, orderID string) error {
	order, err := s.storage.FetchOrderByID(ctx, orderID)
	if err != nil {
		return fmt.Errorf("failed to fetch order: %w", err)
	}
	if order == nil {
		return ErrUnknownOrder
	}
	s.Track(*order)
	return nil
}

// FilterOrdersByRestaurantName narrows FilteredOrders to restaurants whose
// name contains query, ignoring case. An empty query shows every order.
func (s *State) FilterOrdersByRestaurantName(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orderQuery = query
	s.updateLocked(func(v *View) {})
}

func (s *State) FilterRestaurants(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.restaurantQuery = query
	s.updateLocked(func(v *View) {})
}

// TotalSpentOnDate sums the user's spend over day's window in the state's
// location.
func (s *State) TotalSpentOnDate(ctx context.Context, day time.Time) (float64, error) {
	userID := s.View().UserID
	if userID == "" {
		return 0, ErrNotSignedIn
	}
	day = day.In(s.location)
	from, to := ordercalc.DayWindow(day)

	sub, err := s.storage.FetchUserOrdersForDate(ctx, userID, from, to)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch orders for date: %w", err)
	}
	orders, err := stream.First(ctx, sub)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch orders for date: %w", err)
	}
	return ordercalc.SpentOn(orders, day), nil
}

// UpdateWeeklySpendingData recomputes the seven-day spend, oldest day first.
func (s *State) UpdateWeeklySpendingData(ctx context.Context) error {
	days := ordercalc.LastWeek(s.now().In(s.location))
	totals := make([]float64, len(days))
	for i, day := range days {
		total, err := s.TotalSpentOnDate(ctx, day)
		if err != nil {
			return err
		}
		totals[i] = total
	}
	s.update(func(v *View) { v.WeeklySpending = totals })
	return nil
}

// SelectDate sets the calendar selection; the order count and total for it
// follow the loaded orders.
func (s *State) SelectDate(day time.Time) {
	s.update(func(v *View) { v.SelectedDate = day })
}

func (s *State) UserOrderDates() []time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ordercalc.OrderDates(s.view.Orders, s.view.UserID, s.location)
}

func (s *State) CreateFood(ctx context.Context, food model.Food) (string, error) {
	id, err := s.storage.CreateFood(ctx, food)
	if err != nil {
		return "", fmt.Errorf("failed to create food: %w", err)
	}
	return id, nil
}

func (s *State) CreateRestaurant(ctx context.Context, restaurant model.Restaurant) (string, error) {
	id, err := s.storage.CreateRestaurant(ctx, restaurant)
	if err != nil {
		return "", fmt.Errorf("failed to create restaurant: %w", err)
	}
	return id, nil
}
