package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/rocketscienceinc/pokegrid-backend/internal/entity"
)

// MocksessionService is a testify mock of the usecase sessionService dependency.
type MocksessionService struct {
	mock.Mock
}

// NewMocksessionService creates the mock and asserts its expectations on cleanup.
func NewMocksessionService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MocksessionService {
	m := &MocksessionService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MocksessionService) CreateSession(ctx context.Context, id string, grid *entity.Grid) (*entity.Session, error) {
	ret := m.Called(ctx, id, grid)

	session, _ := ret.Get(0).(*entity.Session)

	return session, ret.Error(1)
}

func (m *MocksessionService) GetSessionByID(ctx context.Context, id string) (*entity.Session, error) {
	ret := m.Called(ctx, id)

	session, _ := ret.Get(0).(*entity.Session)

	return session, ret.Error(1)
}

func (m *MocksessionService) UpdateSession(ctx context.Context, session *entity.Session) error {
	return m.Called(ctx, session).Error(0)
}

func (m *MocksessionService) DeleteSession(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}
