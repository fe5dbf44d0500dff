package mocks

import (
	context "context"

	mock "github.com/stretchr/testify/mock"
)

// Watcher is a mock type for the Watcher type
type Watcher struct {
	mock.Mock
}

func (_m *Watcher) Watch(ctx context.Context, channel string, payload string) (<-chan struct{}, error) {
	ret := _m.Called(ctx, channel, payload)
	var r0 <-chan struct{}
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(<-chan struct{})
	}
	return r0, ret.Error(1)
}

// NewWatcher creates a new instance of Watcher. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewWatcher(t interface {
	mock.TestingT
	Cleanup(func())
}) *Watcher {
	mock := &Watcher{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
