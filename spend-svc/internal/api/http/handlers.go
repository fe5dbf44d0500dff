package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"foodrun/authtoken"
	"foodrun/spend-svc/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Spending service.SpendingInterface
	Tokens   *authtoken.Manager
	Revoked  authtoken.RevocationList
}

func NewHandler(svc service.SpendingInterface, tokens *authtoken.Manager, revoked authtoken.RevocationList) *Handler {
	return &Handler{Spending: svc, Tokens: tokens, Revoked: revoked}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	protected := r.NewRoute().Subrouter()
	protected.Use(h.Tokens.Middleware(h.Revoked))
	protected.HandleFunc("/api/users/{userId}/spending/daily", h.getDaily).Methods("GET")
	protected.HandleFunc("/api/users/{userId}/spending/weekly", h.getWeekly).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":    "healthy",
		"service":   "spend-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func ownUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID := mux.Vars(r)["userId"]
	claims, ok := authtoken.ClaimsFrom(r.Context())
	if !ok || claims.UserID != userID {
		http.Error(w, "forbidden", http.StatusForbidden)
		return "", false
	}
	return userID, true
}

func (h *Handler) getDaily(w http.ResponseWriter, r *http.Request) {
	userID, ok := ownUser(w, r)
	if !ok {
		return
	}
	spend, err := h.Spending.Daily(r.Context(), userID, r.URL.Query().Get("date"))
	if errors.Is(err, service.ErrInvalidDate) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(spend)
}

func (h *Handler) getWeekly(w http.ResponseWriter, r *http.Request) {
	userID, ok := ownUser(w, r)
	if !ok {
		return
	}
	week, err := h.Spending.Weekly(r.Context(), userID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(week)
}
