package mocks

import (
	context "context"

	ordercalc "foodrun/ordercalc"

	mock "github.com/stretchr/testify/mock"
)

// Geocoder is a mock type for the Geocoder type
type Geocoder struct {
	mock.Mock
}

func (_m *Geocoder) Geocode(ctx context.Context, address string) (*ordercalc.Coordinates, error) {
	ret := _m.Called(ctx, address)
	var r0 *ordercalc.Coordinates
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*ordercalc.Coordinates)
	}
	return r0, ret.Error(1)
}

// NewGeocoder creates a new instance of Geocoder. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewGeocoder(t interface {
	mock.TestingT
	Cleanup(func())
}) *Geocoder {
	mock := &Geocoder{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
