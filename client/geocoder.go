package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"foodrun/appstate"
	"foodrun/ordercalc"
)

const DefaultGeocoderURL = "https://nominatim.openstreetmap.org"

var _ appstate.Geocoder = (*Geocoder)(nil)

// Geocoder resolves addresses against a Nominatim-compatible search API.
type Geocoder struct {
	baseURL   string
	http      HTTPClient
	UserAgent string
}

func NewGeocoder(baseURL string, httpClient HTTPClient) *Geocoder {
	if baseURL == "" {
		baseURL = DefaultGeocoderURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Geocoder{
		baseURL:   strings.TrimRight(baseURL, "/"),
		http:      httpClient,
		UserAgent: "foodrun-client",
	}
}

type place struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

func (g *Geocoder) Geocode(ctx context.Context, address string) (*ordercalc.Coordinates, error) {
	if strings.TrimSpace(address) == "" {
		return nil, nil
	}

	query := url.Values{}
	query.Set("q", address)
	query.Set("format", "json")
	query.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, "GET", g.baseURL+"/search?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create geocode request: %w", err)
	}
	req.Header.Set("User-Agent", g.UserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := g.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to geocode %q: %w", address, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, decodeError(resp)
	}

	var places []place
	if err := json.NewDecoder(resp.Body).Decode(&places); err != nil {
		return nil, fmt.Errorf("failed to decode geocode response: %w", err)
	}
	if len(places) == 0 {
		return nil, nil
	}
	return ordercalc.ParseCoordinates([]string{places[0].Lat, places[0].Lon})
}
