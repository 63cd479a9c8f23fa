package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"

	"ccms-monitor/internal/core/domain"
	"ccms-monitor/internal/core/ports/output"
)

// MockRFCConnection is a mock of RFCConnection.
type MockRFCConnection struct {
	mock.Mock
}

func (m *MockRFCConnection) Call(funcName string, params map[string]interface{}) (map[string]interface{}, error) {
	args := m.Called(funcName, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]interface{}), args.Error(1)
}

func (m *MockRFCConnection) Close() error {
	args := m.Called()
	return args.Error(0)
}

// MockRFCConnector is a mock of RFCConnector.
type MockRFCConnector struct {
	mock.Mock
}

func (m *MockRFCConnector) Open(ctx context.Context, cred domain.Credential) (ports.RFCConnection, error) {
	args := m.Called(ctx, cred)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(ports.RFCConnection), args.Error(1)
}

// MockCredentialStore is a mock of CredentialStore.
type MockCredentialStore struct {
	mock.Mock
}

func (m *MockCredentialStore) Fetch(ctx context.Context) (*domain.Credential, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Credential), args.Error(1)
}

// MockReadingRepo is a mock of ReadingRepository.
type MockReadingRepo struct {
	mock.Mock
}

func (m *MockReadingRepo) Create(ctx context.Context, reading *domain.Reading) error {
	args := m.Called(ctx, reading)
	return args.Error(0)
}

func (m *MockReadingRepo) GetByID(ctx context.Context, id string) (*domain.Reading, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reading), args.Error(1)
}

func (m *MockReadingRepo) List(ctx context.Context, filter ports.ReadingFilter) ([]*domain.Reading, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*domain.Reading), args.Int(1), args.Error(2)
}
