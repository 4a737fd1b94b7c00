package mocks

import (
	"context"

	adminDomain "github.com/ridloal/plant-catalog/internal/admin/domain"
	"github.com/ridloal/plant-catalog/internal/plant/domain"

	"github.com/stretchr/testify/mock"
)

type MockCatalogAPI struct {
	mock.Mock
}

func (m *MockCatalogAPI) ListPlants(ctx context.Context, searchTerm, category string) ([]domain.Plant, error) {
	args := m.Called(ctx, searchTerm, category)
	if res := args.Get(0); res != nil {
		return res.([]domain.Plant), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCatalogAPI) ListCategories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if res := args.Get(0); res != nil {
		return res.([]string), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCatalogAPI) CreatePlant(ctx context.Context, token string, draft domain.PlantDraft) (*domain.Plant, error) {
	args := m.Called(ctx, token, draft)
	if res := args.Get(0); res != nil {
		return res.(*domain.Plant), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCatalogAPI) OpenAdminSession(ctx context.Context, adminKey string) (*adminDomain.Session, error) {
	args := m.Called(ctx, adminKey)
	if res := args.Get(0); res != nil {
		return res.(*adminDomain.Session), args.Error(1)
	}
	return nil, args.Error(1)
}
