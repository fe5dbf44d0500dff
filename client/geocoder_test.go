package client_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"foodrun/client"
	"foodrun/ordercalc"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeocode(t *testing.T) {
	tests := []struct {
		name    string
		address string
		status  int
		body    string
		want    *ordercalc.Coordinates
		wantErr bool
	}{
		{
			name:    "found",
			address: "1 Main St",
			status:  http.StatusOK,
			body:    `[{"lat":"39.1653","lon":"-86.5264","display_name":"Main St"}]`,
			want:    &ordercalc.Coordinates{Lat: 39.1653, Lng: -86.5264},
		},
		{
			name:    "no match",
			address: "nowhere at all",
			status:  http.StatusOK,
			body:    `[]`,
		},
		{
			name:    "server error",
			address: "1 Main St",
			status:  http.StatusBadGateway,
			body:    "upstream down",
			wantErr: true,
		},
		{
			name:    "malformed coordinates",
			address: "1 Main St",
			status:  http.StatusOK,
			body:    `[{"lat":"north","lon":"-86.5"}]`,
			wantErr: true,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/search", r.URL.Path)
				assert.Equal(t, testCase.address, r.URL.Query().Get("q"))
				assert.Equal(t, "json", r.URL.Query().Get("format"))
				assert.Equal(t, "1", r.URL.Query().Get("limit"))
				assert.NotEmpty(t, r.Header.Get("User-Agent"))
				w.WriteHeader(testCase.status)
				w.Write([]byte(testCase.body))
			}))
			defer server.Close()

			got, err := client.NewGeocoder(server.URL, nil).Geocode(context.Background(), testCase.address)

			if testCase.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.want, got)
		})
	}
}

func TestGeocode_EmptyAddress(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected for an empty address")
	}))
	defer server.Close()

	got, err := client.NewGeocoder(server.URL, nil).Geocode(context.Background(), "  ")
	assert.NoError(t, err)
	assert.Nil(t, got)
}
