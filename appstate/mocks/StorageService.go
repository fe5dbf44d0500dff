package mocks

import (
	context "context"
	io "io"
	time "time"

	model "foodrun/model"
	stream "foodrun/stream"

	mock "github.com/stretchr/testify/mock"
)

// StorageService is a mock type for the StorageService type
type StorageService struct {
	mock.Mock
}

func (_m *StorageService) FetchUserOrders(ctx context.Context, userID string) (*stream.Subscription[[]model.FoodOrder], error) {
	ret := _m.Called(ctx, userID)
	var r0 *stream.Subscription[[]model.FoodOrder]
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*stream.Subscription[[]model.FoodOrder])
	}
	return r0, ret.Error(1)
}

func (_m *StorageService) FetchUserOrdersForDate(ctx context.Context, userID string, from time.Time, to time.Time) (*stream.Subscription[[]model.FoodOrder], error) {
	ret := _m.Called(ctx, userID, from, to)
	var r0 *stream.Subscription[[]model.FoodOrder]
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*stream.Subscription[[]model.FoodOrder])
	}
	return r0, ret.Error(1)
}

func (_m *StorageService) FetchOrderByID(ctx context.Context, orderID string) (*model.FoodOrder, error) {
	ret := _m.Called(ctx, orderID)
	var r0 *model.FoodOrder
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*model.FoodOrder)
	}
	return r0, ret.Error(1)
}

func (_m *StorageService) UploadUserFoodOrder(ctx context.Context, userID string, order model.FoodOrder) (*model.FoodOrder, error) {
	ret := _m.Called(ctx, userID, order)
	var r0 *model.FoodOrder
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*model.FoodOrder)
	}
	return r0, ret.Error(1)
}

func (_m *StorageService) UpdateOrderDeliveryStatus(ctx context.Context, orderID string) error {
	ret := _m.Called(ctx, orderID)
	return ret.Error(0)
}

func (_m *StorageService) UploadUserProfilePicture(ctx context.Context, userID string, image io.Reader, contentType string) (string, error) {
	ret := _m.Called(ctx, userID, image, contentType)
	return ret.String(0), ret.Error(1)
}

func (_m *StorageService) FetchUserProfilePicture(ctx context.Context, userID string) (*stream.Subscription[string], error) {
	ret := _m.Called(ctx, userID)
	var r0 *stream.Subscription[string]
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*stream.Subscription[string])
	}
	return r0, ret.Error(1)
}

func (_m *StorageService) FetchRestaurants(ctx context.Context) (*stream.Subscription[[]model.Restaurant], error) {
	ret := _m.Called(ctx)
	var r0 *stream.Subscription[[]model.Restaurant]
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*stream.Subscription[[]model.Restaurant])
	}
	return r0, ret.Error(1)
}

func (_m *StorageService) FetchRestaurantByID(ctx context.Context, restaurantID string) (*stream.Subscription[*model.Restaurant], error) {
	ret := _m.Called(ctx, restaurantID)
	var r0 *stream.Subscription[*model.Restaurant]
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*stream.Subscription[*model.Restaurant])
	}
	return r0, ret.Error(1)
}

func (_m *StorageService) FetchRestaurantFoods(ctx context.Context, restaurantID string) (*stream.Subscription[[]model.Food], error) {
	ret := _m.Called(ctx, restaurantID)
	var r0 *stream.Subscription[[]model.Food]
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*stream.Subscription[[]model.Food])
	}
	return r0, ret.Error(1)
}

func (_m *StorageService) FetchAllFood(ctx context.Context) (*stream.Subscription[[]model.Food], error) {
	ret := _m.Called(ctx)
	var r0 *stream.Subscription[[]model.Food]
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*stream.Subscription[[]model.Food])
	}
	return r0, ret.Error(1)
}

func (_m *StorageService) FetchFood(ctx context.Context, foodID string) (*stream.Subscription[*model.Food], error) {
	ret := _m.Called(ctx, foodID)
	var r0 *stream.Subscription[*model.Food]
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*stream.Subscription[*model.Food])
	}
	return r0, ret.Error(1)
}

func (_m *StorageService) CreateFood(ctx context.Context, food model.Food) (string, error) {
	ret := _m.Called(ctx, food)
	return ret.String(0), ret.Error(1)
}

func (_m *StorageService) CreateRestaurant(ctx context.Context, restaurant model.Restaurant) (string, error) {
	ret := _m.Called(ctx, restaurant)
	return ret.String(0), ret.Error(1)
}

// NewStorageService creates a new instance of StorageService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewStorageService(t interface {
	mock.TestingT
	Cleanup(func())
}) *StorageService {
	mock := &StorageService{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
