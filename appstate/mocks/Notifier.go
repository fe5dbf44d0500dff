package mocks

import (
	context "context"

	mock "github.com/stretchr/testify/mock"
)

// Notifier is a mock type for the Notifier type
type Notifier struct {
	mock.Mock
}

func (_m *Notifier) Notify(ctx context.Context, title string, body string) error {
	ret := _m.Called(ctx, title, body)
	return ret.Error(0)
}

// NewNotifier creates a new instance of Notifier. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewNotifier(t interface {
	mock.TestingT
	Cleanup(func())
}) *Notifier {
	mock := &Notifier{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
