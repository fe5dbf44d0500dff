package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"foodrun/appstate"
	"foodrun/authtoken"
	"foodrun/model"
	"foodrun/stream"
)

const maxErrorBody = 4 << 10

var ErrNotFound = errors.New("not found")

var (
	_ appstate.AccountService = (*Client)(nil)
	_ appstate.StorageService = (*Client)(nil)
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// StatusError is a non-2xx answer that carries no auth error code.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Message)
}

func (e *StatusError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}

// Client talks to the api-gateway. It holds the session of the signed-in
// user and implements both AccountService and StorageService.
type Client struct {
	baseURL string
	http    HTTPClient

	mu    sync.RWMutex
	token string
	user  *model.User
}

func New(baseURL string, httpClient HTTPClient) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *Client) setSession(token string, user *model.User) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
	c.user = user
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if raw, ok := out.(*[]byte); ok {
		*raw, err = io.ReadAll(resp.Body)
		return err
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}
	return c.do(ctx, method, path, body, "application/json", out)
}

// decodeError turns a {"code","message"} body into an *authtoken.AuthError
// and anything else into a *StatusError.
func decodeError(resp *http.Response) error {
	data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	var authErr struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	if json.Unmarshal(data, &authErr) == nil && authErr.Code != "" {
		return authtoken.NewAuthError(authErr.Code)
	}
	return &StatusError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(data))}
}

// subscribe opens a WebSocket snapshot feed on path. The session token rides
// in both the header and the query, since browsers cannot set the former.
func subscribe[T any](ctx context.Context, c *Client, path string, query url.Values) (*stream.Subscription[T], error) {
	u, err := url.Parse(c.baseURL + path)
	if err != nil {
		return nil, fmt.Errorf("failed to build subscription url: %w", err)
	}
	switch u.Scheme {
	case "https":
		u.Scheme = "wss"
	default:
		u.Scheme = "ws"
	}

	if query == nil {
		query = url.Values{}
	}
	header := http.Header{}
	if token := c.Token(); token != "" {
		query.Set("token", token)
		header.Set("Authorization", "Bearer "+token)
	}
	u.RawQuery = query.Encode()

	sub, err := stream.Dial[T](ctx, u.String(), header)
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to %s: %w", path, err)
	}
	return sub, nil
}
