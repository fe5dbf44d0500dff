package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"foodrun/authtoken"
	"foodrun/model"
	"foodrun/ordercalc"
	"foodrun/storage-svc/internal/domain"
	"foodrun/storage-svc/internal/service"
	"foodrun/stream"

	"github.com/gorilla/mux"
)

type Handler struct {
	Catalog service.CatalogServiceInterface
	Orders  service.OrderServiceInterface
	Tokens  *authtoken.Manager
	Revoked authtoken.RevocationList
}

func NewHandler(catalog service.CatalogServiceInterface, orders service.OrderServiceInterface, tokens *authtoken.Manager, revoked authtoken.RevocationList) *Handler {
	return &Handler{
		Catalog: catalog,
		Orders:  orders,
		Tokens:  tokens,
		Revoked: revoked,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/restaurants", h.getRestaurants).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}", h.getRestaurant).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}/foods", h.getRestaurantFoods).Methods("GET")
	r.HandleFunc("/api/foods", h.getFoods).Methods("GET")
	r.HandleFunc("/api/foods/{id}", h.getFood).Methods("GET")

	r.HandleFunc("/ws/restaurants", h.watchRestaurants).Methods("GET")
	r.HandleFunc("/ws/restaurants/{id}", h.watchRestaurant).Methods("GET")
	r.HandleFunc("/ws/restaurants/{id}/foods", h.watchRestaurantFoods).Methods("GET")
	r.HandleFunc("/ws/foods", h.watchFoods).Methods("GET")
	r.HandleFunc("/ws/foods/{id}", h.watchFood).Methods("GET")

	protected := r.NewRoute().Subrouter()
	protected.Use(h.Tokens.Middleware(h.Revoked))
	protected.HandleFunc("/api/restaurants", h.createRestaurant).Methods("POST")
	protected.HandleFunc("/api/foods", h.createFood).Methods("POST")
	protected.HandleFunc("/api/users/{userId}/orders", h.createOrder).Methods("POST")
	protected.HandleFunc("/api/users/{userId}/orders", h.getUserOrders).Methods("GET")
	protected.HandleFunc("/ws/users/{userId}/orders", h.watchUserOrders).Methods("GET")
	protected.HandleFunc("/api/orders/{id}", h.getOrder).Methods("GET")
	protected.HandleFunc("/api/orders/{id}/delivered", h.markDelivered).Methods("POST")
	protected.HandleFunc("/api/orders/{id}/qrcode", h.getOrderQRCode).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "storage-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, service.ErrInvalidInput), errors.Is(err, service.ErrInvalidOrder), errors.Is(err, ordercalc.ErrEmptyOrder):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) getRestaurants(w http.ResponseWriter, r *http.Request) {
	restaurants, err := h.Catalog.ListRestaurants(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, restaurants)
}

func (h *Handler) getRestaurant(w http.ResponseWriter, r *http.Request) {
	restaurant, err := h.Catalog.GetRestaurant(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, restaurant)
}

func (h *Handler) createRestaurant(w http.ResponseWriter, r *http.Request) {
	var restaurant model.Restaurant
	if err := json.NewDecoder(r.Body).Decode(&restaurant); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	id, err := h.Catalog.CreateRestaurant(r.Context(), &restaurant)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, domain.Created{ID: id})
}

func (h *Handler) getRestaurantFoods(w http.ResponseWriter, r *http.Request) {
	foods, err := h.Catalog.RestaurantFoods(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, foods)
}

func (h *Handler) getFoods(w http.ResponseWriter, r *http.Request) {
	foods, err := h.Catalog.ListFoods(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, foods)
}

func (h *Handler) getFood(w http.ResponseWriter, r *http.Request) {
	food, err := h.Catalog.GetFood(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, food)
}

func (h *Handler) createFood(w http.ResponseWriter, r *http.Request) {
	var food model.Food
	if err := json.NewDecoder(r.Body).Decode(&food); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	id, err := h.Catalog.CreateFood(r.Context(), &food)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, domain.Created{ID: id})
}

func (h *Handler) watchRestaurants(w http.ResponseWriter, r *http.Request) {
	sub, err := h.Catalog.WatchRestaurants(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	stream.ServeWebSocket(w, r, sub)
}

func (h *Handler) watchRestaurant(w http.ResponseWriter, r *http.Request) {
	sub, err := h.Catalog.WatchRestaurant(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	stream.ServeWebSocket(w, r, sub)
}

func (h *Handler) watchRestaurantFoods(w http.ResponseWriter, r *http.Request) {
	sub, err := h.Catalog.WatchRestaurantFoods(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	stream.ServeWebSocket(w, r, sub)
}

func (h *Handler) watchFoods(w http.ResponseWriter, r *http.Request) {
	sub, err := h.Catalog.WatchFoods(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	stream.ServeWebSocket(w, r, sub)
}

func (h *Handler) watchFood(w http.ResponseWriter, r *http.Request) {
	sub, err := h.Catalog.WatchFood(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	stream.ServeWebSocket(w, r, sub)
}

func ownUser(w http.ResponseWriter, r *http.Request, userID string) bool {
	claims, ok := authtoken.ClaimsFrom(r.Context())
	if !ok || claims.UserID != userID {
		http.Error(w, "forbidden", http.StatusForbidden)
		return false
	}
	return true
}

// orderRange reads the optional from/to query bounds (RFC 3339).
func orderRange(r *http.Request) (domain.OrderRange, error) {
	var window domain.OrderRange
	for key, dst := range map[string]**time.Time{"from": &window.From, "to": &window.To} {
		raw := r.URL.Query().Get(key)
		if raw == "" {
			continue
		}
		t, err := time.Parse(time.RFC3339Nano, raw)
		if err != nil {
			return window, err
		}
		*dst = &t
	}
	return window, nil
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	if !ownUser(w, r, userID) {
		return
	}

	var order model.FoodOrder
	if err := json.NewDecoder(r.Body).Decode(&order); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}

	placed, err := h.Orders.PlaceOrder(r.Context(), userID, &order)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, placed)
}

func (h *Handler) getUserOrders(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	if !ownUser(w, r, userID) {
		return
	}
	window, err := orderRange(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	orders, err := h.Orders.ListUserOrders(r.Context(), userID, window)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) watchUserOrders(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	if !ownUser(w, r, userID) {
		return
	}
	window, err := orderRange(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	sub, err := h.Orders.WatchUserOrders(r.Context(), userID, window)
	if err != nil {
		writeError(w, err)
		return
	}
	stream.ServeWebSocket(w, r, sub)
}

// ownedOrder loads the order and checks it belongs to the caller.
func (h *Handler) ownedOrder(w http.ResponseWriter, r *http.Request) (*model.FoodOrder, bool) {
	order, err := h.Orders.GetOrder(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return nil, false
	}
	if !ownUser(w, r, order.UserID) {
		return nil, false
	}
	return order, true
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	order, ok := h.ownedOrder(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) markDelivered(w http.ResponseWriter, r *http.Request) {
	order, ok := h.ownedOrder(w, r)
	if !ok {
		return
	}
	updated, err := h.Orders.MarkDelivered(r.Context(), order.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	order, ok := h.ownedOrder(w, r)
	if !ok {
		return
	}
	qrCode, err := h.Orders.QRCode(r.Context(), order.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(qrCode)
}
