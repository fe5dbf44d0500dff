package mocks

import mock "github.com/stretchr/testify/mock"

// TokenIssuer is a mock type for the TokenIssuer type
type TokenIssuer struct {
	mock.Mock
}

func (_m *TokenIssuer) Generate(userID string, email string) (string, error) {
	ret := _m.Called(userID, email)
	return ret.String(0), ret.Error(1)
}

// NewTokenIssuer creates a new instance of TokenIssuer. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewTokenIssuer(t interface {
	mock.TestingT
	Cleanup(func())
}) *TokenIssuer {
	mock := &TokenIssuer{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
