package mocks

import (
	context "context"
	io "io"

	domain "foodrun/account-svc/internal/domain"
	authtoken "foodrun/authtoken"
	model "foodrun/model"
	stream "foodrun/stream"

	mock "github.com/stretchr/testify/mock"
)

// AccountServiceInterface is a mock type for the AccountServiceInterface type
type AccountServiceInterface struct {
	mock.Mock
}

func (_m *AccountServiceInterface) SignUp(ctx context.Context, req domain.SignUpRequest) (*domain.Session, error) {
	ret := _m.Called(ctx, req)
	var r0 *domain.Session
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Session)
	}
	return r0, ret.Error(1)
}

func (_m *AccountServiceInterface) SignIn(ctx context.Context, req domain.SignInRequest) (*domain.Session, error) {
	ret := _m.Called(ctx, req)
	var r0 *domain.Session
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Session)
	}
	return r0, ret.Error(1)
}

func (_m *AccountServiceInterface) SignOut(ctx context.Context, claims *authtoken.Claims) error {
	ret := _m.Called(ctx, claims)
	return ret.Error(0)
}

func (_m *AccountServiceInterface) CurrentUser(ctx context.Context, userID string) (*model.User, error) {
	ret := _m.Called(ctx, userID)
	var r0 *model.User
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*model.User)
	}
	return r0, ret.Error(1)
}

func (_m *AccountServiceInterface) WatchUser(ctx context.Context, userID string) (*stream.Subscription[*model.User], error) {
	ret := _m.Called(ctx, userID)
	var r0 *stream.Subscription[*model.User]
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*stream.Subscription[*model.User])
	}
	return r0, ret.Error(1)
}

func (_m *AccountServiceInterface) UploadProfilePicture(ctx context.Context, userID string, image io.Reader, contentType string) (string, error) {
	ret := _m.Called(ctx, userID, image, contentType)
	return ret.String(0), ret.Error(1)
}

func (_m *AccountServiceInterface) ProfilePictureURL(ctx context.Context, userID string) (string, error) {
	ret := _m.Called(ctx, userID)
	return ret.String(0), ret.Error(1)
}

func (_m *AccountServiceInterface) WatchProfilePicture(ctx context.Context, userID string) (*stream.Subscription[string], error) {
	ret := _m.Called(ctx, userID)
	var r0 *stream.Subscription[string]
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*stream.Subscription[string])
	}
	return r0, ret.Error(1)
}

// NewAccountServiceInterface creates a new instance of AccountServiceInterface. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewAccountServiceInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *AccountServiceInterface {
	mock := &AccountServiceInterface{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
