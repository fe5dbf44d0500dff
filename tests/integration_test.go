package tests

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"foodrun/appstate"
	"foodrun/authtoken"
	"foodrun/client"
	"foodrun/model"
	"foodrun/ordercalc"
	"foodrun/stream"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	shopper     = model.User{ID: "u1", Name: "Ada", Email: "ada@example.com"}
	restaurants = []model.Restaurant{{ID: "r1", Name: "Integration Cafe", Menu: []string{"f1", "f2"}, Address: "456 Test Ave"}}
	foods       = []model.Food{{ID: "f1", Name: "Soup", Cost: 4.25}, {ID: "f2", Name: "Bread", Cost: 1.5}}
)

// fakeBackend answers the gateway routes the client uses, keeping orders in
// memory and pushing a fresh snapshot to order subscribers on every write.
type fakeBackend struct {
	tokens  *authtoken.Manager
	changes *stream.Broadcaster[struct{}]

	mu        sync.Mutex
	orders    []model.FoodOrder
	flips     map[string]int
	signOuts  int
	nextOrder int
}

func newFakeBackend(t *testing.T) (*fakeBackend, *httptest.Server) {
	tokens, err := authtoken.NewManager("integration-secret", time.Hour)
	require.NoError(t, err)
	b := &fakeBackend{tokens: tokens, changes: stream.NewBroadcaster[struct{}](), flips: make(map[string]int)}

	r := mux.NewRouter()
	protected := r.NewRoute().Subrouter()
	protected.Use(tokens.Middleware(nil))

	r.HandleFunc("/api/auth/signin", b.signIn).Methods("POST")
	r.HandleFunc("/ws/restaurants", func(w http.ResponseWriter, r *http.Request) {
		stream.ServeWebSocket(w, r, stream.Static(r.Context(), restaurants))
	})
	r.HandleFunc("/ws/foods", func(w http.ResponseWriter, r *http.Request) {
		stream.ServeWebSocket(w, r, stream.Static(r.Context(), foods))
	})
	protected.HandleFunc("/api/auth/signout", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		b.signOuts++
		b.mu.Unlock()
		w.WriteHeader(http.StatusNoContent)
	}).Methods("POST")
	protected.HandleFunc("/ws/auth/me", func(w http.ResponseWriter, r *http.Request) {
		user := shopper
		stream.ServeWebSocket(w, r, stream.Static(r.Context(), &user))
	})
	protected.HandleFunc("/ws/users/{userId}/profile-picture", func(w http.ResponseWriter, r *http.Request) {
		stream.ServeWebSocket(w, r, stream.Static(r.Context(), ""))
	})
	protected.HandleFunc("/ws/users/{userId}/orders", func(w http.ResponseWriter, r *http.Request) {
		sub := stream.Refetch(r.Context(), b.changes.Subscribe(r.Context()), func(ctx context.Context) ([]model.FoodOrder, error) {
			return b.userOrders(mux.Vars(r)["userId"]), nil
		})
		stream.ServeWebSocket(w, r, sub)
	})
	protected.HandleFunc("/api/users/{userId}/orders", b.placeOrder).Methods("POST")
	protected.HandleFunc("/api/orders/{id}/delivered", b.markDelivered).Methods("POST")

	server := httptest.NewServer(r)
	t.Cleanup(server.Close)
	return b, server
}

func (b *fakeBackend) signIn(w http.ResponseWriter, r *http.Request) {
	token, err := b.tokens.Generate(shopper.ID, shopper.Email)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(map[string]interface{}{"token": token, "user": shopper})
}

func (b *fakeBackend) userOrders(userID string) []model.FoodOrder {
	b.mu.Lock()
	defer b.mu.Unlock()
	var out []model.FoodOrder
	for _, o := range b.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out
}

func (b *fakeBackend) placeOrder(w http.ResponseWriter, r *http.Request) {
	var order model.FoodOrder
	if err := json.NewDecoder(r.Body).Decode(&order); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	b.mu.Lock()
	b.nextOrder++
	order.ID = "order-" + strconv.Itoa(b.nextOrder)
	order.UserID = mux.Vars(r)["userId"]
	order.Cost = ordercalc.TotalCost(order, ordercalc.PriceTable(foods))
	b.orders = append(b.orders, order)
	b.mu.Unlock()
	b.changes.Publish(struct{}{})

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(order)
}

func (b *fakeBackend) markDelivered(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	b.mu.Lock()
	var found *model.FoodOrder
	for i := range b.orders {
		if b.orders[i].ID == id {
			if !b.orders[i].IsDelivered {
				b.flips[id]++
			}
			b.orders[i].IsDelivered = true
			found = &b.orders[i]
		}
	}
	b.mu.Unlock()
	if found == nil {
		http.Error(w, "order not found", http.StatusNotFound)
		return
	}
	b.changes.Publish(struct{}{})
	json.NewEncoder(w).Encode(found)
}

type recordingNotifier struct {
	mu     sync.Mutex
	titles []string
}

func (n *recordingNotifier) Notify(ctx context.Context, title, body string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.titles = append(n.titles, title)
	return nil
}

func (n *recordingNotifier) Titles() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.titles...)
}

type clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type fixedRand int

func (r fixedRand) Intn(n int) int { return int(r) }

func waitFor(t *testing.T, s *appstate.State, cond func(v appstate.View) bool) appstate.View {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	for v := range s.Subscribe(ctx) {
		if cond(v) {
			return v
		}
	}
	t.Fatal("timed out waiting for state")
	return appstate.View{}
}

// TestFullOrderFlow drives the client SDK through sign-in, checkout and
// delivery against an in-memory backend.
func TestFullOrderFlow(t *testing.T) {
	backend, server := newFakeBackend(t)
	geo := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"lat":"0","lon":"0"}]`))
	}))
	defer geo.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	api := client.New(server.URL, nil)
	notifier := &recordingNotifier{}
	clk := &clock{now: time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)}
	state := appstate.New(appstate.Config{
		Accounts: api,
		Storage:  api,
		Geocoder: client.NewGeocoder(geo.URL, nil),
		Notifier: notifier,
		Rand:     fixedRand(95),
		Now:      clk.Now,
		Location: time.UTC,
	})
	require.NoError(t, state.Start(ctx))

	t.Run("SignIn", func(t *testing.T) {
		require.NoError(t, state.SignIn(ctx, shopper.Email, "pw"))
		v := waitFor(t, state, func(v appstate.View) bool {
			return v.Auth == appstate.Authenticated && len(v.Restaurants) == 1 && len(v.Foods) == 2
		})
		assert.Equal(t, "Ada", v.UserName)
	})

	var placed *model.FoodOrder
	t.Run("PlaceOrder", func(t *testing.T) {
		state.SelectRestaurant(restaurants[0])
		state.UpdateFoodOrder("f1", 2)
		state.UpdateFoodOrder("f2", 1)
		assert.Equal(t, 10.0, state.TotalCost())

		var err error
		placed, err = state.ConfirmOrder(ctx, appstate.OrderDetails{
			Destination: &ordercalc.Coordinates{Lat: 0, Lng: 1},
			AddressName: "Home",
		})
		require.NoError(t, err)
		assert.Equal(t, 10.0, placed.Cost)
		assert.Equal(t, []string{"0", "0"}, placed.AddressOriginList)
		assert.True(t, clk.Now().Add(69*time.Minute).Equal(placed.TravelTime))

		v := waitFor(t, state, func(v appstate.View) bool { return len(v.Orders) == 1 })
		assert.False(t, v.Orders[0].IsDelivered)
		assert.Equal(t, []model.Restaurant{restaurants[0]}, v.RecentRestaurants)
	})

	t.Run("Delivery", func(t *testing.T) {
		require.NotNil(t, placed)
		require.NoError(t, state.RefreshOrders(ctx))
		backend.mu.Lock()
		assert.Zero(t, backend.flips[placed.ID])
		backend.mu.Unlock()

		clk.Advance(70 * time.Minute)
		require.NoError(t, state.RefreshOrders(ctx))
		waitFor(t, state, func(v appstate.View) bool { return len(v.Orders) == 1 && v.Orders[0].IsDelivered })
		require.NoError(t, state.RefreshOrders(ctx))

		backend.mu.Lock()
		assert.Equal(t, 1, backend.flips[placed.ID])
		backend.mu.Unlock()
		assert.Equal(t, []string{model.TitleOrderPlaced, model.TitleOrderDelivered}, notifier.Titles())
	})

	t.Run("SignOut", func(t *testing.T) {
		require.NoError(t, state.SignOut(ctx))
		v := state.View()
		assert.Equal(t, appstate.Unauthenticated, v.Auth)
		assert.Empty(t, v.Orders)
		assert.False(t, api.HasUser())

		backend.mu.Lock()
		assert.Equal(t, 1, backend.signOuts)
		backend.mu.Unlock()
	})
}
