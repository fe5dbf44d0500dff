package gateway

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httputil"
	"net/url"
	"strings"
	"time"

	"github.com/gorilla/mux"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Config struct {
	AccountSvcURL string
	StorageSvcURL string
	SpendSvcURL   string
	FrontendDir   string
}

type Gateway struct {
	config Config
	client HTTPClient
}

func NewGateway(config Config, client HTTPClient) *Gateway {
	return &Gateway{
		config: config,
		client: client,
	}
}

func (g *Gateway) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]string{
		"status":    "healthy",
		"service":   "api-gateway",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// Target picks the backend for a request path. Unknown paths map to "".
func (g *Gateway) Target(path string) string {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) < 2 || (parts[0] != "api" && parts[0] != "ws") {
		return ""
	}

	switch parts[1] {
	case "auth":
		return g.config.AccountSvcURL
	case "users":
		if len(parts) >= 4 {
			switch parts[3] {
			case "profile-picture":
				return g.config.AccountSvcURL
			case "spending":
				return g.config.SpendSvcURL
			case "orders":
				return g.config.StorageSvcURL
			}
		}
		return ""
	case "restaurants", "foods", "orders":
		return g.config.StorageSvcURL
	}
	return ""
}

func (g *Gateway) ProxyRequest(w http.ResponseWriter, r *http.Request, targetURL string) {
	log.Printf("PROXY: %s %s -> %s%s", r.Method, r.URL.Path, targetURL, r.URL.Path)

	target := targetURL + r.URL.Path
	if r.URL.RawQuery != "" {
		target += "?" + r.URL.RawQuery
	}

	req, err := http.NewRequestWithContext(r.Context(), r.Method, target, r.Body)
	if err != nil {
		log.Printf("ERROR: Failed to create request: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	for k, v := range r.Header {
		req.Header[k] = v
	}

	resp, err := g.client.Do(req)
	if err != nil {
		log.Printf("ERROR: Failed to proxy to %s: %v", targetURL, err)
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	defer resp.Body.Close()

	for k, v := range resp.Header {
		w.Header()[k] = v
	}
	w.WriteHeader(resp.StatusCode)

	if _, err := io.Copy(w, resp.Body); err != nil {
		log.Printf("ERROR: Failed to copy response: %v", err)
	}
}

// ProxyWebSocket hands upgrade requests to a reverse proxy, which relays
// the upgraded connection in both directions.
func (g *Gateway) ProxyWebSocket(w http.ResponseWriter, r *http.Request, targetURL string) {
	target, err := url.Parse(targetURL)
	if err != nil {
		log.Printf("ERROR: Bad backend URL %s: %v", targetURL, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	log.Printf("PROXY: WS %s -> %s%s", r.URL.Path, targetURL, r.URL.Path)

	proxy := httputil.NewSingleHostReverseProxy(target)
	proxy.ErrorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
		log.Printf("ERROR: Failed to proxy to %s: %v", targetURL, err)
		http.Error(w, err.Error(), http.StatusBadGateway)
	}
	proxy.ServeHTTP(w, r)
}

func (g *Gateway) RouteHandler(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path
	log.Printf("ROUTE: %s %s", r.Method, path)

	target := g.Target(path)
	if target == "" {
		log.Printf("[GATEWAY] Unmatched route: %s", path)
		http.Error(w, "API route not found", http.StatusNotFound)
		return
	}

	if strings.HasPrefix(path, "/ws/") {
		g.ProxyWebSocket(w, r, target)
		return
	}
	g.ProxyRequest(w, r, target)
}

func (g *Gateway) SetupRoutes() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/health", g.HealthCheck).Methods("GET")
	r.PathPrefix("/api/").HandlerFunc(g.RouteHandler)
	r.PathPrefix("/ws/").HandlerFunc(g.RouteHandler)
	if g.config.FrontendDir != "" {
		r.PathPrefix("/").Handler(http.FileServer(http.Dir(g.config.FrontendDir)))
	}
	return r
}
