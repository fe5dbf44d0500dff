package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"net/url"
	"time"

	"foodrun/model"
	"foodrun/stream"
)

type created struct {
	ID string `json:"id"`
}

type pictureURL struct {
	URL string `json:"url"`
}

// DailySpend and WeeklySpend mirror the spend service responses.
type DailySpend struct {
	Date   string  `json:"date"`
	Total  float64 `json:"total"`
	Orders int     `json:"orders"`
}

type WeeklySpend struct {
	Days   []string  `json:"days"`
	Totals []float64 `json:"totals"`
}

func userPath(userID, rest string) string {
	return "/users/" + url.PathEscape(userID) + rest
}

func (c *Client) FetchUserOrders(ctx context.Context, userID string) (*stream.Subscription[[]model.FoodOrder], error) {
	return subscribe[[]model.FoodOrder](ctx, c, "/ws"+userPath(userID, "/orders"), nil)
}

func (c *Client) FetchUserOrdersForDate(ctx context.Context, userID string, from, to time.Time) (*stream.Subscription[[]model.FoodOrder], error) {
	query := url.Values{}
	query.Set("from", from.Format(time.RFC3339Nano))
	query.Set("to", to.Format(time.RFC3339Nano))
	return subscribe[[]model.FoodOrder](ctx, c, "/ws"+userPath(userID, "/orders"), query)
}

func (c *Client) FetchOrderByID(ctx context.Context, orderID string) (*model.FoodOrder, error) {
	var order model.FoodOrder
	if err := c.doJSON(ctx, "GET", "/api/orders/"+url.PathEscape(orderID), nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *Client) UploadUserFoodOrder(ctx context.Context, userID string, order model.FoodOrder) (*model.FoodOrder, error) {
	var placed model.FoodOrder
	if err := c.doJSON(ctx, "POST", "/api"+userPath(userID, "/orders"), order, &placed); err != nil {
		return nil, err
	}
	return &placed, nil
}

func (c *Client) UpdateOrderDeliveryStatus(ctx context.Context, orderID string) error {
	return c.doJSON(ctx, "POST", "/api/orders/"+url.PathEscape(orderID)+"/delivered", nil, nil)
}

// OrderQRCode returns the PNG tracking code for an order.
func (c *Client) OrderQRCode(ctx context.Context, orderID string) ([]byte, error) {
	var png []byte
	if err := c.do(ctx, "GET", "/api/orders/"+url.PathEscape(orderID)+"/qrcode", nil, "", &png); err != nil {
		return nil, err
	}
	return png, nil
}

func (c *Client) UploadUserProfilePicture(ctx context.Context, userID string, image io.Reader, contentType string) (string, error) {
	var body bytes.Buffer
	form := multipart.NewWriter(&body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="image"; filename="profile_picture"`)
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	header.Set("Content-Type", contentType)

	part, err := form.CreatePart(header)
	if err != nil {
		return "", fmt.Errorf("failed to create form part: %w", err)
	}
	if _, err := io.Copy(part, image); err != nil {
		return "", fmt.Errorf("failed to read image: %w", err)
	}
	if err := form.Close(); err != nil {
		return "", fmt.Errorf("failed to finish form: %w", err)
	}

	var out pictureURL
	if err := c.do(ctx, "POST", "/api"+userPath(userID, "/profile-picture"), &body, form.FormDataContentType(), &out); err != nil {
		return "", err
	}
	return out.URL, nil
}

func (c *Client) FetchUserProfilePicture(ctx context.Context, userID string) (*stream.Subscription[string], error) {
	return subscribe[string](ctx, c, "/ws"+userPath(userID, "/profile-picture"), nil)
}

func (c *Client) FetchRestaurants(ctx context.Context) (*stream.Subscription[[]model.Restaurant], error) {
	return subscribe[[]model.Restaurant](ctx, c, "/ws/restaurants", nil)
}

func (c *Client) FetchRestaurantByID(ctx context.Context, restaurantID string) (*stream.Subscription[*model.Restaurant], error) {
	return subscribe[*model.Restaurant](ctx, c, "/ws/restaurants/"+url.PathEscape(restaurantID), nil)
}

func (c *Client) FetchRestaurantFoods(ctx context.Context, restaurantID string) (*stream.Subscription[[]model.Food], error) {
	return subscribe[[]model.Food](ctx, c, "/ws/restaurants/"+url.PathEscape(restaurantID)+"/foods", nil)
}

func (c *Client) FetchAllFood(ctx context.Context) (*stream.Subscription[[]model.Food], error) {
	return subscribe[[]model.Food](ctx, c, "/ws/foods", nil)
}

func (c *Client) FetchFood(ctx context.Context, foodID string) (*stream.Subscription[*model.Food], error) {
	return subscribe[*model.Food](ctx, c, "/ws/foods/"+url.PathEscape(foodID), nil)
}

func (c *Client) CreateFood(ctx context.Context, food model.Food) (string, error) {
	var out created
	if err := c.doJSON(ctx, "POST", "/api/foods", food, &out); err != nil {
		return "", err
	}
	return out.ID, nil
}

func (c *Client) CreateRestaurant(ctx context.Context, restaurant model.Restaurant) (string, error) {
	var out created
	if err := c.doJSON(ctx, "POST", "/api/restaurants", restaurant, &out); err != nil {
		return "", err
	}
	return out.ID, nil
}

func (c *Client) DailySpend(ctx context.Context, userID string, day time.Time) (*DailySpend, error) {
	var out DailySpend
	path := "/api" + userPath(userID, "/spending/daily") + "?date=" + day.Format("2006-01-02")
	if err := c.doJSON(ctx, "GET", path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) WeeklySpend(ctx context.Context, userID string) (*WeeklySpend, error) {
	var out WeeklySpend
	if err := c.doJSON(ctx, "GET", "/api"+userPath(userID, "/spending/weekly"), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
