package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"foodrun/model"
	"foodrun/stream"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const (
	RestaurantsCollection = "restaurants"
	FoodsCollection       = "foods"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
)

var validate = validator.New()

type CatalogService struct {
	repo CatalogRepository
}

func NewCatalogService(repo CatalogRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

func (s *CatalogService) ListRestaurants(ctx context.Context) ([]model.Restaurant, error) {
	return s.repo.ListRestaurants(ctx)
}

func (s *CatalogService) GetRestaurant(ctx context.Context, id string) (*model.Restaurant, error) {
	return s.repo.GetRestaurant(ctx, id)
}

func (s *CatalogService) CreateRestaurant(ctx context.Context, restaurant *model.Restaurant) (string, error) {
	if err := validate.Struct(restaurant); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	restaurant.ID = uuid.NewString()
	if restaurant.Menu == nil {
		restaurant.Menu = []string{}
	}
	if restaurant.PictureList == nil {
		restaurant.PictureList = []string{}
	}
	if err := s.repo.InsertRestaurant(ctx, restaurant); err != nil {
		return "", fmt.Errorf("failed to create restaurant: %w", err)
	}
	return restaurant.ID, nil
}

// RestaurantFoods returns the foods on the restaurant's menu, in menu order.
func (s *CatalogService) RestaurantFoods(ctx context.Context, restaurantID string) ([]model.Food, error) {
	restaurant, err := s.repo.GetRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	if len(restaurant.Menu) == 0 {
		return []model.Food{}, nil
	}

	foods, err := s.repo.FoodsByIDs(ctx, restaurant.Menu)
	if err != nil {
		return nil, fmt.Errorf("failed to load menu: %w", err)
	}
	byID := make(map[string]model.Food, len(foods))
	for _, food := range foods {
		byID[food.ID] = food
	}

	menu := make([]model.Food, 0, len(foods))
	for _, id := range restaurant.Menu {
		if food, ok := byID[id]; ok {
			menu = append(menu, food)
		}
	}
	return menu, nil
}

func (s *CatalogService) ListFoods(ctx context.Context) ([]model.Food, error) {
	return s.repo.ListFoods(ctx)
}

func (s *CatalogService) GetFood(ctx context.Context, id string) (*model.Food, error) {
	return s.repo.GetFood(ctx, id)
}

func (s *CatalogService) CreateFood(ctx context.Context, food *model.Food) (string, error) {
	if err := validate.Struct(food); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	food.ID = uuid.NewString()
	if err := s.repo.InsertFood(ctx, food); err != nil {
		return "", fmt.Errorf("failed to create food: %w", err)
	}
	return food.ID, nil
}

func (s *CatalogService) changes(collections ...string) func(ctx context.Context) (<-chan struct{}, error) {
	return func(ctx context.Context) (<-chan struct{}, error) {
		changes, err := s.repo.Changes(ctx, collections...)
		if err != nil {
			// Standalone Mongo has no change streams; serve one snapshot.
			log.Printf("Warning: catalog changes unavailable, live updates disabled: %v", err)
			return make(chan struct{}), nil
		}
		return changes, nil
	}
}

func (s *CatalogService) WatchRestaurants(ctx context.Context) (*stream.Subscription[[]model.Restaurant], error) {
	return stream.OnChange(ctx, s.changes(RestaurantsCollection), s.repo.ListRestaurants)
}

func (s *CatalogService) WatchRestaurant(ctx context.Context, id string) (*stream.Subscription[*model.Restaurant], error) {
	if _, err := s.repo.GetRestaurant(ctx, id); err != nil {
		return nil, err
	}
	return stream.OnChange(ctx, s.changes(RestaurantsCollection), func(ctx context.Context) (*model.Restaurant, error) {
		return s.repo.GetRestaurant(ctx, id)
	})
}

func (s *CatalogService) WatchRestaurantFoods(ctx context.Context, restaurantID string) (*stream.Subscription[[]model.Food], error) {
	if _, err := s.repo.GetRestaurant(ctx, restaurantID); err != nil {
		return nil, err
	}
	return stream.OnChange(ctx, s.changes(RestaurantsCollection, FoodsCollection), func(ctx context.Context) ([]model.Food, error) {
		return s.RestaurantFoods(ctx, restaurantID)
	})
}

func (s *CatalogService) WatchFoods(ctx context.Context) (*stream.Subscription[[]model.Food], error) {
	return stream.OnChange(ctx, s.changes(FoodsCollection), s.repo.ListFoods)
}

func (s *CatalogService) WatchFood(ctx context.Context, id string) (*stream.Subscription[*model.Food], error) {
	if _, err := s.repo.GetFood(ctx, id); err != nil {
		return nil, err
	}
	return stream.OnChange(ctx, s.changes(FoodsCollection), func(ctx context.Context) (*model.Food, error) {
		return s.repo.GetFood(ctx, id)
	})
}
