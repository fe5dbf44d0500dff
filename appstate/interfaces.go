package appstate

import (
	"context"
	"io"
	"time"

	"foodrun/model"
	"foodrun/ordercalc"
	"foodrun/stream"
)

// AccountService authenticates the current user. Sign-in and sign-up
// rejections are *authtoken.AuthError values.
type AccountService interface {
	SignIn(ctx context.Context, email, password string) error
	SignUp(ctx context.Context, name, email, password string) error
	SignOut(ctx context.Context) error
	HasUser() bool
	CurrentUserID() string
	// CurrentUser emits the signed-in user, or nil when nobody is signed in.
	CurrentUser(ctx context.Context) (*stream.Subscription[*model.User], error)
}

// StorageService reads and writes the catalog, orders and profile pictures.
// Every Fetch method except FetchOrderByID returns a live subscription.
type StorageService interface {
	FetchUserOrders(ctx context.Context, userID string) (*stream.Subscription[[]model.FoodOrder], error)
	FetchUserOrdersForDate(ctx context.Context, userID string, from, to time.Time) (*stream.Subscription[[]model.FoodOrder], error)
	FetchOrderByID(ctx context.Context, orderID string) (*model.FoodOrder, error)
	UploadUserFoodOrder(ctx context.Context, userID string, order model.FoodOrder) (*model.FoodOrder, error)
	UpdateOrderDeliveryStatus(ctx context.Context, orderID string) error

	UploadUserProfilePicture(ctx context.Context, userID string, image io.Reader, contentType string) (string, error)
	FetchUserProfilePicture(ctx context.Context, userID string) (*stream.Subscription[string], error)

	FetchRestaurants(ctx context.Context) (*stream.Subscription[[]model.Restaurant], error)
	FetchRestaurantByID(ctx context.Context, restaurantID string) (*stream.Subscription[*model.Restaurant], error)
	FetchRestaurantFoods(ctx context.Context, restaurantID string) (*stream.Subscription[[]model.Food], error)
	FetchAllFood(ctx context.Context) (*stream.Subscription[[]model.Food], error)
	FetchFood(ctx context.Context, foodID string) (*stream.Subscription[*model.Food], error)
	CreateFood(ctx context.Context, food model.Food) (string, error)
	CreateRestaurant(ctx context.Context, restaurant model.Restaurant) (string, error)
}

// Geocoder resolves a free-text address. An address that cannot be resolved
// yields nil coordinates and a nil error.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (*ordercalc.Coordinates, error)
}

// Notifier raises a notification on this device. Pushes to the user's other
// devices are sent separately by the delivery worker.
type Notifier interface {
	Notify(ctx context.Context, title, body string) error
}
