package mocks

import (
	context "context"

	mock "github.com/stretchr/testify/mock"
)

// ContextManager is a mock type for the ContextManager type
type ContextManager struct {
	mock.Mock
}

// GetEmailFromContext provides a mock function with given fields: ctx
func (_m *ContextManager) GetEmailFromContext(ctx context.Context) (string, bool) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for GetEmailFromContext")
	}

	if rf, ok := ret.Get(0).(func(context.Context) (string, bool)); ok {
		return rf(ctx)
	}

	return ret.String(0), ret.Bool(1)
}

// SetEmailToContext provides a mock function with given fields: ctx, email
func (_m *ContextManager) SetEmailToContext(ctx context.Context, email string) context.Context {
	ret := _m.Called(ctx, email)

	if len(ret) == 0 {
		panic("no return value specified for SetEmailToContext")
	}

	if rf, ok := ret.Get(0).(func(context.Context, string) context.Context); ok {
		return rf(ctx, email)
	}

	var r0 context.Context
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(context.Context)
	}

	return r0
}

// NewContextManager creates a new instance of ContextManager. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewContextManager(t interface {
	mock.TestingT
	Cleanup(func())
}) *ContextManager {
	mock := &ContextManager{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
