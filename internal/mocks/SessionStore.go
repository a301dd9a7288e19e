package mocks

import (
	"context"

	model "github.com/dtroode/diagnosis-server/internal/model"
	mock "github.com/stretchr/testify/mock"
)

// SessionStore is a mock type for the SessionStore type
type SessionStore struct {
	mock.Mock
}

// Load provides a mock function with given fields: ctx
func (_m *SessionStore) Load(ctx context.Context) (map[string]model.Session, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for Load")
	}

	var r0 map[string]model.Session
	if rf, ok := ret.Get(0).(func(context.Context) (map[string]model.Session, error)); ok {
		return rf(ctx)
	}
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(map[string]model.Session)
	}

	return r0, ret.Error(1)
}

// Save provides a mock function with given fields: ctx, sessions
func (_m *SessionStore) Save(ctx context.Context, sessions map[string]model.Session) error {
	ret := _m.Called(ctx, sessions)

	if len(ret) == 0 {
		panic("no return value specified for Save")
	}

	if rf, ok := ret.Get(0).(func(context.Context, map[string]model.Session) error); ok {
		return rf(ctx, sessions)
	}
	return ret.Error(0)
}

// NewSessionStore creates a new instance of SessionStore. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewSessionStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *SessionStore {
	mock := &SessionStore{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
