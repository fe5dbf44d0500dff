package mocks

import (
	context "context"

	model "foodrun/model"
	stream "foodrun/stream"

	mock "github.com/stretchr/testify/mock"
)

// CatalogServiceInterface is a mock type for the CatalogServiceInterface type
type CatalogServiceInterface struct {
	mock.Mock
}

func (_m *CatalogServiceInterface) ListRestaurants(ctx context.Context) ([]model.Restaurant, error) {
	ret := _m.Called(ctx)
	var r0 []model.Restaurant
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.Restaurant)
	}
	return r0, ret.Error(1)
}

func (_m *CatalogServiceInterface) GetRestaurant(ctx context.Context, id string) (*model.Restaurant, error) {
	ret := _m.Called(ctx, id)
	var r0 *model.Restaurant
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*model.Restaurant)
	}
	return r0, ret.Error(1)
}

func (_m *CatalogServiceInterface) CreateRestaurant(ctx context.Context, restaurant *model.Restaurant) (string, error) {
	ret := _m.Called(ctx, restaurant)
	return ret.String(0), ret.Error(1)
}

func (_m *CatalogServiceInterface) RestaurantFoods(ctx context.Context, restaurantID string) ([]model.Food, error) {
	ret := _m.Called(ctx, restaurantID)
	var r0 []model.Food
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.Food)
	}
	return r0, ret.Error(1)
}

func (_m *CatalogServiceInterface) ListFoods(ctx context.Context) ([]model.Food, error) {
	ret := _m.Called(ctx)
	var r0 []model.Food
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.Food)
	}
	return r0, ret.Error(1)
}

func (_m *CatalogServiceInterface) GetFood(ctx context.Context, id string) (*model.Food, error) {
	ret := _m.Called(ctx, id)
	var r0 *model.Food
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*model.Food)
	}
	return r0, ret.Error(1)
}

func (_m *CatalogServiceInterface) CreateFood(ctx context.Context, food *model.Food) (string, error) {
	ret := _m.Called(ctx, food)
	return ret.String(0), ret.Error(1)
}

func (_m *CatalogServiceInterface) WatchRestaurants(ctx context.Context) (*stream.Subscription[[]model.Restaurant], error) {
	ret := _m.Called(ctx)
	var r0 *stream.Subscription[[]model.Restaurant]
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*stream.Subscription[[]model.Restaurant])
	}
	return r0, ret.Error(1)
}

func (_m *CatalogServiceInterface) WatchRestaurant(ctx context.Context, id string) (*stream.Subscription[*model.Restaurant], error) {
	ret := _m.Called(ctx, id)
	var r0 *stream.Subscription[*model.Restaurant]
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*stream.Subscription[*model.Restaurant])
	}
	return r0, ret.Error(1)
}

func (_m *CatalogServiceInterface) WatchRestaurantFoods(ctx context.Context, restaurantID string) (*stream.Subscription[[]model.Food], error) {
	ret := _m.Called(ctx, restaurantID)
	var r0 *stream.Subscription[[]model.Food]
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*stream.Subscription[[]model.Food])
	}
	return r0, ret.Error(1)
}

func (_m *CatalogServiceInterface) WatchFoods(ctx context.Context) (*stream.Subscription[[]model.Food], error) {
	ret := _m.Called(ctx)
	var r0 *stream.Subscription[[]model.Food]
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*stream.Subscription[[]model.Food])
	}
	return r0, ret.Error(1)
}

func (_m *CatalogServiceInterface) WatchFood(ctx context.Context, id string) (*stream.Subscription[*model.Food], error) {
	ret := _m.Called(ctx, id)
	var r0 *stream.Subscription[*model.Food]
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*stream.Subscription[*model.Food])
	}
	return r0, ret.Error(1)
}

// NewCatalogServiceInterface creates a new instance of CatalogServiceInterface. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewCatalogServiceInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *CatalogServiceInterface {
	mock := &CatalogServiceInterface{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
