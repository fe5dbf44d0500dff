package mocks

import (
	context "context"

	model "foodrun/model"

	mock "github.com/stretchr/testify/mock"
)

// CatalogRepository is a mock type for the CatalogRepository type
type CatalogRepository struct {
	mock.Mock
}

func (_m *CatalogRepository) ListRestaurants(ctx context.Context) ([]model.Restaurant, error) {
	ret := _m.Called(ctx)
	var r0 []model.Restaurant
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.Restaurant)
	}
	return r0, ret.Error(1)
}

func (_m *CatalogRepository) GetRestaurant(ctx context.Context, id string) (*model.Restaurant, error) {
	ret := _m.Called(ctx, id)
	var r0 *model.Restaurant
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*model.Restaurant)
	}
	return r0, ret.Error(1)
}

func (_m *CatalogRepository) InsertRestaurant(ctx context.Context, restaurant *model.Restaurant) error {
	ret := _m.Called(ctx, restaurant)
	return ret.Error(0)
}

func (_m *CatalogRepository) ListFoods(ctx context.Context) ([]model.Food, error) {
	ret := _m.Called(ctx)
	var r0 []model.Food
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.Food)
	}
	return r0, ret.Error(1)
}

func (_m *CatalogRepository) GetFood(ctx context.Context, id string) (*model.Food, error) {
	ret := _m.Called(ctx, id)
	var r0 *model.Food
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*model.Food)
	}
	return r0, ret.Error(1)
}

func (_m *CatalogRepository) FoodsByIDs(ctx context.Context, ids []string) ([]model.Food, error) {
	ret := _m.Called(ctx, ids)
	var r0 []model.Food
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.Food)
	}
	return r0, ret.Error(1)
}

func (_m *CatalogRepository) InsertFood(ctx context.Context, food *model.Food) error {
	ret := _m.Called(ctx, food)
	return ret.Error(0)
}

func (_m *CatalogRepository) Changes(ctx context.Context, collections ...string) (<-chan struct{}, error) {
	_ca := []interface{}{ctx}
	for _, c := range collections {
		_ca = append(_ca, c)
	}
	ret := _m.Called(_ca...)
	var r0 <-chan struct{}
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(<-chan struct{})
	}
	return r0, ret.Error(1)
}

// NewCatalogRepository creates a new instance of CatalogRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewCatalogRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *CatalogRepository {
	mock := &CatalogRepository{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
