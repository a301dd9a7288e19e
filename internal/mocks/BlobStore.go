package mocks

import (
	"context"

	mock "github.com/stretchr/testify/mock"
)

// BlobStore is a mock type for the BlobStore type
type BlobStore struct {
	mock.Mock
}

// Read provides a mock function with given fields: ctx
func (_m *BlobStore) Read(ctx context.Context) ([]byte, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for Read")
	}

	var r0 []byte
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context) ([]byte, error)); ok {
		return rf(ctx)
	}
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]byte)
	}
	r1 = ret.Error(1)

	return r0, r1
}

// Write provides a mock function with given fields: ctx, data
func (_m *BlobStore) Write(ctx context.Context, data []byte) error {
	ret := _m.Called(ctx, data)

	if len(ret) == 0 {
		panic("no return value specified for Write")
	}

	if rf, ok := ret.Get(0).(func(context.Context, []byte) error); ok {
		return rf(ctx, data)
	}
	return ret.Error(0)
}

// NewBlobStore creates a new instance of BlobStore. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewBlobStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *BlobStore {
	mock := &BlobStore{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
