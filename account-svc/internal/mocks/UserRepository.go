package mocks

import (
	context "context"

	domain "foodrun/account-svc/internal/domain"
	model "foodrun/model"

	mock "github.com/stretchr/testify/mock"
)

// UserRepository is a mock type for the UserRepository type
type UserRepository struct {
	mock.Mock
}

func (_m *UserRepository) CreateUser(ctx context.Context, account *domain.Account) error {
	ret := _m.Called(ctx, account)
	return ret.Error(0)
}

func (_m *UserRepository) GetAccountByEmail(ctx context.Context, email string) (*domain.Account, error) {
	ret := _m.Called(ctx, email)
	var r0 *domain.Account
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Account)
	}
	return r0, ret.Error(1)
}

func (_m *UserRepository) GetUser(ctx context.Context, id string) (*model.User, error) {
	ret := _m.Called(ctx, id)
	var r0 *model.User
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*model.User)
	}
	return r0, ret.Error(1)
}

func (_m *UserRepository) UpdateProfilePicture(ctx context.Context, id string, url string) error {
	ret := _m.Called(ctx, id, url)
	return ret.Error(0)
}

// NewUserRepository creates a new instance of UserRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewUserRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *UserRepository {
	mock := &UserRepository{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
