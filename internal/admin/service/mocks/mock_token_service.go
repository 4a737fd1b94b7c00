package mocks

import (
	"github.com/ridloal/plant-catalog/internal/admin/domain"
	"github.com/ridloal/plant-catalog/internal/admin/service"

	"github.com/stretchr/testify/mock"
)

type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) OpenSession(adminKey string) (*domain.Session, error) {
	args := m.Called(adminKey)
	if res := args.Get(0); res != nil {
		return res.(*domain.Session), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTokenService) IssueToken() (*domain.Session, error) {
	args := m.Called()
	if res := args.Get(0); res != nil {
		return res.(*domain.Session), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTokenService) VerifyToken(tokenString, scope string) (*service.Claims, error) {
	args := m.Called(tokenString, scope)
	if res := args.Get(0); res != nil {
		return res.(*service.Claims), args.Error(1)
	}
	return nil, args.Error(1)
}
