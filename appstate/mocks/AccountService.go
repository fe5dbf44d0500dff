package mocks

import (
	context "context"

	model "foodrun/model"
	stream "foodrun/stream"

	mock "github.com/stretchr/testify/mock"
)

// AccountService is a mock type for the AccountService type
type AccountService struct {
	mock.Mock
}

func (_m *AccountService) SignIn(ctx context.Context, email string, password string) error {
	ret := _m.Called(ctx, email, password)
	return ret.Error(0)
}

func (_m *AccountService) SignUp(ctx context.Context, name string, email string, password string) error {
	ret := _m.Called(ctx, name, email, password)
	return ret.Error(0)
}

func (_m *AccountService) SignOut(ctx context.Context) error {
	ret := _m.Called(ctx)
	return ret.Error(0)
}

func (_m *AccountService) HasUser() bool {
	ret := _m.Called()
	return ret.Bool(0)
}

func (_m *AccountService) CurrentUserID() string {
	ret := _m.Called()
	return ret.String(0)
}

func (_m *AccountService) CurrentUser(ctx context.Context) (*stream.Subscription[*model.User], error) {
	ret := _m.Called(ctx)
	var r0 *stream.Subscription[*model.User]
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*stream.Subscription[*model.User])
	}
	return r0, ret.Error(1)
}

// NewAccountService creates a new instance of AccountService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewAccountService(t interface {
	mock.TestingT
	Cleanup(func())
}) *AccountService {
	mock := &AccountService{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
