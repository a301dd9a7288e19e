package mocks

import (
	context "context"

	mock "github.com/stretchr/testify/mock"
)

// AccountService is a mock type for the AccountService type
type AccountService struct {
	mock.Mock
}

// Authenticate provides a mock function with given fields: ctx, email, password
func (_m *AccountService) Authenticate(ctx context.Context, email string, password string) (string, error) {
	ret := _m.Called(ctx, email, password)

	if len(ret) == 0 {
		panic("no return value specified for Authenticate")
	}

	if rf, ok := ret.Get(0).(func(context.Context, string, string) (string, error)); ok {
		return rf(ctx, email, password)
	}

	return ret.String(0), ret.Error(1)
}

// Register provides a mock function with given fields: ctx, email, password, role
func (_m *AccountService) Register(ctx context.Context, email string, password string, role string) error {
	ret := _m.Called(ctx, email, password, role)

	if len(ret) == 0 {
		panic("no return value specified for Register")
	}

	if rf, ok := ret.Get(0).(func(context.Context, string, string, string) error); ok {
		return rf(ctx, email, password, role)
	}

	return ret.Error(0)
}

// NewAccountService creates a new instance of AccountService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewAccountService(t interface {
	mock.TestingT
	Cleanup(func())
}) *AccountService {
	mock := &AccountService{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
