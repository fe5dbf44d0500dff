package service

import (
	"context"

	"foodrun/model"
	"foodrun/storage-svc/internal/domain"
	"foodrun/stream"
)

type CatalogServiceInterface interface {
	ListRestaurants(ctx context.Context) ([]model.Restaurant, error)
	GetRestaurant(ctx context.Context, id string) (*model.Restaurant, error)
	CreateRestaurant(ctx context.Context, restaurant *model.Restaurant) (string, error)
	RestaurantFoods(ctx context.Context, restaurantID string) ([]model.Food, error)
	ListFoods(ctx context.Context) ([]model.Food, error)
	GetFood(ctx context.Context, id string) (*model.Food, error)
	CreateFood(ctx context.Context, food *model.Food) (string, error)
	WatchRestaurants(ctx context.Context) (*stream.Subscription[[]model.Restaurant], error)
	WatchRestaurant(ctx context.Context, id string) (*stream.Subscription[*model.Restaurant], error)
	WatchRestaurantFoods(ctx context.Context, restaurantID string) (*stream.Subscription[[]model.Food], error)
	WatchFoods(ctx context.Context) (*stream.Subscription[[]model.Food], error)
	WatchFood(ctx context.Context, id string) (*stream.Subscription[*model.Food], error)
}

type OrderServiceInterface interface {
	PlaceOrder(ctx context.Context, userID string, order *model.FoodOrder) (*model.FoodOrder, error)
	ListUserOrders(ctx context.Context, userID string, window domain.OrderRange) ([]model.FoodOrder, error)
	GetOrder(ctx context.Context, id string) (*model.FoodOrder, error)
	MarkDelivered(ctx context.Context, id string) (*model.FoodOrder, error)
	WatchUserOrders(ctx context.Context, userID string, window domain.OrderRange) (*stream.Subscription[[]model.FoodOrder], error)
	QRCode(ctx context.Context, id string) ([]byte, error)
}

type CatalogRepository interface {
	ListRestaurants(ctx context.Context) ([]model.Restaurant, error)
	GetRestaurant(ctx context.Context, id string) (*model.Restaurant, error)
	InsertRestaurant(ctx context.Context, restaurant *model.Restaurant) error
	ListFoods(ctx context.Context) ([]model.Food, error)
	GetFood(ctx context.Context, id string) (*model.Food, error)
	FoodsByIDs(ctx context.Context, ids []string) ([]model.Food, error)
	InsertFood(ctx context.Context, food *model.Food) error
	Changes(ctx context.Context, collections ...string) (<-chan struct{}, error)
}

type OrderRepository interface {
	InsertOrder(ctx context.Context, order *model.FoodOrder) error
	ListUserOrders(ctx context.Context, userID string, window domain.OrderRange) ([]model.FoodOrder, error)
	GetOrder(ctx context.Context, id string) (*model.FoodOrder, error)
	MarkDelivered(ctx context.Context, id string) (bool, error)
}

type OrderPublisher interface {
	PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error
}

var (
	_ CatalogServiceInterface = (*CatalogService)(nil)
	_ OrderServiceInterface   = (*OrderService)(nil)
)
