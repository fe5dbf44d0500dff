package authtoken

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	m, err := NewManager("test-secret-key-12345", time.Hour)
	require.NoError(t, err)
	return m
}

func TestNewManager_EmptySecret(t *testing.T) {
	_, err := NewManager("", time.Hour)
	assert.ErrorIs(t, err, ErrEmptySecret)
}

func TestGenerateValidate(t *testing.T) {
	m := newTestManager(t)

	token, err := m.Generate("user-1", "test@example.com")
	require.NoError(t, err)

	claims, err := m.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "test@example.com", claims.Email)
	assert.NotEmpty(t, claims.TokenID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt, 5*time.Second)
}

func TestValidate_Rejects(t *testing.T) {
	m := newTestManager(t)
	other, err := NewManager("another-secret", time.Hour)
	require.NoError(t, err)
	foreign, err := other.Generate("user-1", "a@b.c")
	require.NoError(t, err)

	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userID": "user-1",
		"exp":    time.Now().Add(-time.Minute).Unix(),
	}).SignedString([]byte("test-secret-key-12345"))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "not-a-jwt"},
		{name: "wrong secret", token: foreign},
		{name: "expired", token: expired},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			_, err := m.Validate(testCase.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestGenerate_EmptyUser(t *testing.T) {
	m := newTestManager(t)
	_, err := m.Generate("", "a@b.c")
	assert.Error(t, err)
}

type revocations map[string]bool

func (r revocations) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	if tokenID == "broken" {
		return false, errors.New("redis down")
	}
	return r[tokenID], nil
}

func TestMiddleware(t *testing.T) {
	m := newTestManager(t)
	token, err := m.Generate("user-1", "a@b.c")
	require.NoError(t, err)
	claims, err := m.Validate(token)
	require.NoError(t, err)

	var seen *Claims
	protected := m.Middleware(revocations{})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = ClaimsFrom(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	tests := []struct {
		name       string
		header     string
		query      string
		wantStatus int
	}{
		{name: "bearer header", header: "Bearer " + token, wantStatus: http.StatusNoContent},
		{name: "query token", query: "?token=" + token, wantStatus: http.StatusNoContent},
		{name: "missing", wantStatus: http.StatusUnauthorized},
		{name: "bad scheme", header: "Basic abc", wantStatus: http.StatusUnauthorized},
		{name: "bad token", header: "Bearer nope", wantStatus: http.StatusUnauthorized},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			seen = nil
			req := httptest.NewRequest(http.MethodGet, "/api/orders"+testCase.query, nil)
			if testCase.header != "" {
				req.Header.Set("Authorization", testCase.header)
			}
			rr := httptest.NewRecorder()
			protected.ServeHTTP(rr, req)

			assert.Equal(t, testCase.wantStatus, rr.Code)
			if testCase.wantStatus == http.StatusNoContent {
				require.NotNil(t, seen)
				assert.Equal(t, claims.UserID, seen.UserID)
			}
		})
	}
}

func TestMiddleware_RevokedToken(t *testing.T) {
	m := newTestManager(t)
	token, err := m.Generate("user-1", "a@b.c")
	require.NoError(t, err)
	claims, err := m.Validate(token)
	require.NoError(t, err)

	protected := m.Middleware(revocations{claims.TokenID: true})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("revoked token reached the handler")
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	protected.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
