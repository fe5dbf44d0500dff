package mocks

import (
	context "context"
	time "time"

	mock "github.com/stretchr/testify/mock"
)

// TokenDenylist is a mock type for the TokenDenylist type
type TokenDenylist struct {
	mock.Mock
}

func (_m *TokenDenylist) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	ret := _m.Called(ctx, tokenID, ttl)
	return ret.Error(0)
}

func (_m *TokenDenylist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	ret := _m.Called(ctx, tokenID)
	return ret.Bool(0), ret.Error(1)
}

// NewTokenDenylist creates a new instance of TokenDenylist. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewTokenDenylist(t interface {
	mock.TestingT
	Cleanup(func())
}) *TokenDenylist {
	mock := &TokenDenylist{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
