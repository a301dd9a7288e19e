package mocks

import (
	context "context"

	mock "github.com/stretchr/testify/mock"
)

// SessionService is a mock type for the SessionService type
type SessionService struct {
	mock.Mock
}

// Create provides a mock function with given fields: ctx, email
func (_m *SessionService) Create(ctx context.Context, email string) (string, error) {
	ret := _m.Called(ctx, email)

	if len(ret) == 0 {
		panic("no return value specified for Create")
	}

	if rf, ok := ret.Get(0).(func(context.Context, string) (string, error)); ok {
		return rf(ctx, email)
	}

	return ret.String(0), ret.Error(1)
}

// Delete provides a mock function with given fields: ctx, token
func (_m *SessionService) Delete(ctx context.Context, token string) (bool, error) {
	ret := _m.Called(ctx, token)

	if len(ret) == 0 {
		panic("no return value specified for Delete")
	}

	if rf, ok := ret.Get(0).(func(context.Context, string) (bool, error)); ok {
		return rf(ctx, token)
	}

	return ret.Bool(0), ret.Error(1)
}

// NewSessionService creates a new instance of SessionService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewSessionService(t interface {
	mock.TestingT
	Cleanup(func())
}) *SessionService {
	mock := &SessionService{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
