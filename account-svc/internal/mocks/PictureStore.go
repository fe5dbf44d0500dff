package mocks

import (
	context "context"
	io "io"

	mock "github.com/stretchr/testify/mock"
)

// PictureStore is a mock type for the PictureStore type
type PictureStore struct {
	mock.Mock
}

func (_m *PictureStore) Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error) {
	ret := _m.Called(ctx, key, body, contentType)
	return ret.String(0), ret.Error(1)
}

// NewPictureStore creates a new instance of PictureStore. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewPictureStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *PictureStore {
	mock := &PictureStore{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
