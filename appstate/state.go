package appstate

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"foodrun/model"
	"foodrun/ordercalc"
	"foodrun/stream"
)

const recentRestaurantsFallback = 5

var (
	ErrNotStarted   = errors.New("state not started")
	ErrNotSignedIn  = errors.New("no user signed in")
	ErrNoDraft      = errors.New("no order in progress")
	ErrUnknownOrder = errors.New("order not found")
)

type Config struct {
	Accounts AccountService
	Storage  StorageService
	Geocoder Geocoder
	Notifier Notifier
	Rand     ordercalc.Rand
	Now      func() time.Time
	Location *time.Location
}

// State owns the client-side application state. All mutations go through its
// methods and are serialised under one lock; every change is published to
// observers as a fresh View.
type State struct {
	accounts AccountService
	storage  StorageService
	geocoder Geocoder
	notifier Notifier
	rng      ordercalc.Rand
	now      func() time.Time
	location *time.Location

	views *stream.Broadcaster[View]
	wg    sync.WaitGroup

	mu              sync.Mutex
	view            View
	root            context.Context
	userCancel      context.CancelFunc
	userGen         int
	restaurantQuery string
	orderQuery      string
	flipped         map[string]bool
}

func New(cfg Config) *State {
	s := &State{
		accounts: cfg.Accounts,
		storage:  cfg.Storage,
		geocoder: cfg.Geocoder,
		notifier: cfg.Notifier,
		rng:      cfg.Rand,
		now:      cfg.Now,
		location: cfg.Location,
		views:    stream.NewBroadcaster[View](),
		view:     emptyView(),
		flipped:  make(map[string]bool),
	}
	if s.notifier == nil {
		s.notifier = logNotifier{}
	}
	if s.rng == nil {
		s.rng = ordercalc.NewRand(time.Now().UnixNano())
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.location == nil {
		s.location = time.Local
	}
	s.views.Publish(s.view.clone())
	return s
}

// Start opens the catalog subscriptions and binds the signed-in user. All of
// them are released when ctx is done.
func (s *State) Start(ctx context.Context) error {
	s.mu.Lock()
	s.root = ctx
	s.mu.Unlock()

	restaurants, err := s.storage.FetchRestaurants(ctx)
	if err != nil {
		return fmt.Errorf("failed to watch restaurants: %w", err)
	}
	follow(s, restaurants, "restaurants", func(v *View, snapshot []model.Restaurant) {
		v.Restaurants = snapshot
	})

	foods, err := s.storage.FetchAllFood(ctx)
	if err != nil {
		return fmt.Errorf("failed to watch foods: %w", err)
	}
	follow(s, foods, "foods", func(v *View, snapshot []model.Food) {
		v.Foods = snapshot
	})

	return s.bindUser()
}

// Wait blocks until every subscription opened by the State has been released.
func (s *State) Wait() {
	s.wg.Wait()
}

// Subscribe returns the current View followed by every later one. Slow
// observers skip intermediate views.
func (s *State) Subscribe(ctx context.Context) <-chan View {
	return s.views.Subscribe(ctx)
}

func (s *State) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view.clone()
}

func (s *State) update(fn func(v *View)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.updateLocked(fn)
}

func (s *State) updateLocked(fn func(v *View)) {
	fn(&s.view)
	s.derive()
	s.views.Publish(s.view.clone())
}

// updateUser applies fn only while gen is still the bound user generation.
func (s *State) updateUser(gen int, fn func(v *View)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.userGen != gen {
		return false
	}
	s.updateLocked(fn)
	return true
}

// unbindUserLocked releases the user scope; late snapshots from it are dropped.
func (s *State) unbindUserLocked() {
	if s.userCancel != nil {
		s.userCancel()
		s.userCancel = nil
	}
	s.userGen++
	s.flipped = make(map[string]bool)
}

// derive recomputes every view field that is a function of the others.
func (s *State) derive() {
	v := &s.view

	v.FilteredRestaurants = filterRestaurants(v.Restaurants, s.restaurantQuery)
	v.RecentRestaurants = recentRestaurants(v.Restaurants, v.Orders)
	v.FilteredOrders = filterOrders(v.Orders, v.Restaurants, v.UserID, s.orderQuery)

	v.RestaurantFoods = nil
	if selected := v.SelectedRestaurant; selected != nil {
		menu := selected.Menu
		if latest := findRestaurant(v.Restaurants, selected.ID); latest != nil {
			menu = latest.Menu
		}
		v.RestaurantFoods = menuFoods(v.Foods, menu)
	}

	if !v.SelectedDate.IsZero() {
		matched := ordercalc.OrdersOn(v.Orders, v.SelectedDate.In(s.location))
		v.SelectedDateOrderCount = len(matched)
		v.SelectedDateTotalCost = ordercalc.SumCost(matched)
	}
}

// follow applies every snapshot of sub to the view until sub is released.
func follow[T any](s *State, sub *stream.Subscription[T], name string, apply func(v *View, snapshot T)) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		for snapshot := range sub.C() {
			s.update(func(v *View) { apply(v, snapshot) })
		}
		if err := sub.Err(); err != nil {
			log.Printf("Warning: %s subscription ended: %v", name, err)
		}
	}()
}

// bindUser (re)opens the current-user subscription. Each distinct user gets
// its own scope for the orders and profile picture subscriptions.
func (s *State) bindUser() error {
	s.mu.Lock()
	root := s.root
	s.mu.Unlock()
	if root == nil {
		return ErrNotStarted
	}

	ctx, cancel := context.WithCancel(root)
	users, err := s.accounts.CurrentUser(ctx)
	if err != nil {
		cancel()
		return fmt.Errorf("failed to watch current user: %w", err)
	}

	s.mu.Lock()
	if s.userCancel != nil {
		s.userCancel()
	}
	s.userCancel = cancel
	s.userGen++
	gen := s.userGen
	s.mu.Unlock()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		var scope userScope
		defer scope.close()

		for user := range users.C() {
			if user == nil {
				scope.close()
				s.updateUser(gen, func(v *View) {
					v.Auth = Unauthenticated
				})
				continue
			}

			u := *user
			current := s.updateUser(gen, func(v *View) {
				v.Auth = Authenticated
				v.ErrorMessage = ""
				v.UserID = u.ID
				v.UserName = u.Name
				v.UserEmail = u.Email
				if u.ProfilePictureURL != "" {
					v.ProfilePictureURL = u.ProfilePictureURL
				}
			})

			if current && u.ID != scope.userID {
				s.watchUser(scope.open(ctx, u.ID), u.ID)
			}
		}
		if err := users.Err(); err != nil {
			log.Printf("Warning: current user subscription ended: %v", err)
		}
	}()
	return nil
}

// userScope owns the subscriptions opened for one bound user.
type userScope struct {
	userID string
	cancel context.CancelFunc
}

func (u *userScope) open(parent context.Context, userID string) context.Context {
	u.close()
	ctx, cancel := context.WithCancel(parent)
	u.userID = userID
	u.cancel = cancel
	return ctx
}

func (u *userScope) close() {
	if u.cancel != nil {
		u.cancel()
		u.cancel = nil
	}
	u.userID = ""
}

func (s *State) watchUser(ctx context.Context, userID string) {
	orders, err := s.storage.FetchUserOrders(ctx, userID)
	if err != nil {
		log.Printf("ERROR: failed to watch orders for user %s: %v", userID, err)
	} else {
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			for snapshot := range orders.C() {
				s.applyOrders(ctx, userID, snapshot)
			}
			if err := orders.Err(); err != nil {
				log.Printf("Warning: orders subscription ended: %v", err)
			}
		}()
	}

	pictures, err := s.storage.FetchUserProfilePicture(ctx, userID)
	if err != nil {
		log.Printf("ERROR: failed to watch profile picture for user %s: %v", userID, err)
		return
	}
	follow(s, pictures, "profile picture", func(v *View, url string) {
		if v.UserID == userID && url != "" {
			v.ProfilePictureURL = url
		}
	})
}

func filterRestaurants(restaurants []model.Restaurant, query string) []model.Restaurant {
	var out []model.Restaurant
	for _, r := range restaurants {
		if containsFold(r.Name, query) {
			out = append(out, r)
		}
	}
	return out
}

// recentRestaurants lists the restaurants the user has ordered from, or the
// first few restaurants when there are none.
func recentRestaurants(restaurants []model.Restaurant, orders []model.FoodOrder) []model.Restaurant {
	ordered := make(map[string]bool, len(orders))
	for _, o := range orders {
		ordered[o.RestaurantID] = true
	}

	var out []model.Restaurant
	for _, r := range restaurants {
		if ordered[r.ID] {
			out = append(out, r)
		}
	}
	if len(out) > 0 {
		return out
	}
	if len(restaurants) > recentRestaurantsFallback {
		return restaurants[:recentRestaurantsFallback]
	}
	return restaurants
}

func filterOrders(orders []model.FoodOrder, restaurants []model.Restaurant, userID, query string) []model.FoodOrder {
	names := make(map[string]string, len(restaurants))
	for _, r := range restaurants {
		names[r.ID] = r.Name
	}

	var out []model.FoodOrder
	for _, o := range orders {
		if o.UserID != userID {
			continue
		}
		if query != "" && !containsFold(names[o.RestaurantID], query) {
			continue
		}
		out = append(out, o)
	}
	return out
}

func menuFoods(foods []model.Food, menu []string) []model.Food {
	onMenu := make(map[string]bool, len(menu))
	for _, id := range menu {
		onMenu[id] = true
	}

	var out []model.Food
	for _, f := range foods {
		if onMenu[f.ID] {
			out = append(out, f)
		}
	}
	return out
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func findRestaurant(restaurants []model.Restaurant, id string) *model.Restaurant {
	for _, r := range restaurants {
		if r.ID == id {
			found := cloneRestaurant(r)
			return &found
		}
	}
	return nil
}

type logNotifier struct{}

func (logNotifier) Notify(ctx context.Context, title, body string) error {
	log.Printf("Notification: %s - %s", title, body)
	return nil
}
