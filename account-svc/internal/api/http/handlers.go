package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"foodrun/account-svc/internal/domain"
	"foodrun/account-svc/internal/service"
	"foodrun/authtoken"
	"foodrun/stream"

	"github.com/gorilla/mux"
)

const maxPictureSize = 10 << 20

type Handler struct {
	Accounts service.AccountServiceInterface
	Tokens   *authtoken.Manager
	Revoked  authtoken.RevocationList
}

func NewHandler(accounts service.AccountServiceInterface, tokens *authtoken.Manager, revoked authtoken.RevocationList) *Handler {
	return &Handler{Accounts: accounts, Tokens: tokens, Revoked: revoked}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")
	r.HandleFunc("/api/auth/signup", h.signUp).Methods("POST")
	r.HandleFunc("/api/auth/signin", h.signIn).Methods("POST")

	protected := r.NewRoute().Subrouter()
	protected.Use(h.Tokens.Middleware(h.Revoked))
	protected.HandleFunc("/api/auth/signout", h.signOut).Methods("POST")
	protected.HandleFunc("/api/auth/me", h.me).Methods("GET")
	protected.HandleFunc("/ws/auth/me", h.watchMe).Methods("GET")
	protected.HandleFunc("/api/users/{userId}/profile-picture", h.uploadProfilePicture).Methods("POST")
	protected.HandleFunc("/api/users/{userId}/profile-picture", h.getProfilePicture).Methods("GET")
	protected.HandleFunc("/ws/users/{userId}/profile-picture", h.watchProfilePicture).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "account-svc",
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
	var authErr *authtoken.AuthError
	switch {
	case errors.As(err, &authErr):
		writeJSON(w, authtoken.StatusCode(authErr.Code), domain.AuthErrorResponse{
			Code:    authErr.Code,
			Message: authtoken.AuthMessage(authErr),
		})
	case errors.Is(err, service.ErrUserNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, service.ErrEmptyImage):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) signUp(w http.ResponseWriter, r *http.Request) {
	var req domain.SignUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	session, err := h.Accounts.SignUp(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, session)
}

func (h *Handler) signIn(w http.ResponseWriter, r *http.Request) {
	var req domain.SignInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	session, err := h.Accounts.SignIn(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, session)
}

func (h *Handler) signOut(w http.ResponseWriter, r *http.Request) {
	claims, _ := authtoken.ClaimsFrom(r.Context())
	if err := h.Accounts.SignOut(r.Context(), claims); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	claims, _ := authtoken.ClaimsFrom(r.Context())
	user, err := h.Accounts.CurrentUser(r.Context(), claims.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *Handler) watchMe(w http.ResponseWriter, r *http.Request) {
	claims, _ := authtoken.ClaimsFrom(r.Context())
	sub, err := h.Accounts.WatchUser(r.Context(), claims.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	stream.ServeWebSocket(w, r, sub)
}

// ownUser rejects requests for another user's resources.
func ownUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID := mux.Vars(r)["userId"]
	claims, ok := authtoken.ClaimsFrom(r.Context())
	if !ok || claims.UserID != userID {
		http.Error(w, "forbidden", http.StatusForbidden)
		return "", false
	}
	return userID, true
}

func (h *Handler) uploadProfilePicture(w http.ResponseWriter, r *http.Request) {
	userID, ok := ownUser(w, r)
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(maxPictureSize); err != nil {
		http.Error(w, "File too large", http.StatusBadRequest)
		return
	}
	file, header, err := r.FormFile("image")
	if err != nil {
		http.Error(w, "Error retrieving file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	url, err := h.Accounts.UploadProfilePicture(r.Context(), userID, file, header.Header.Get("Content-Type"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, domain.ProfilePicture{URL: url})
}

func (h *Handler) getProfilePicture(w http.ResponseWriter, r *http.Request) {
	userID, ok := ownUser(w, r)
	if !ok {
		return
	}

	url, err := h.Accounts.ProfilePictureURL(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, domain.ProfilePicture{URL: url})
}

func (h *Handler) watchProfilePicture(w http.ResponseWriter, r *http.Request) {
	userID, ok := ownUser(w, r)
	if !ok {
		return
	}

	sub, err := h.Accounts.WatchProfilePicture(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	stream.ServeWebSocket(w, r, sub)
}
