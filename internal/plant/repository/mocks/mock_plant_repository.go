package mocks

import (
	"context"

	"github.com/ridloal/plant-catalog/internal/plant/domain"

	"github.com/stretchr/testify/mock"
)

type MockPlantRepository struct {
	mock.Mock
}

func (m *MockPlantRepository) ListPlants(ctx context.Context, filter domain.PlantFilter) ([]domain.Plant, error) {
	args := m.Called(ctx, filter)
	if res := args.Get(0); res != nil {
		return res.([]domain.Plant), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPlantRepository) ListCategories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if res := args.Get(0); res != nil {
		return res.([]string), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPlantRepository) GetPlantByID(ctx context.Context, id string) (*domain.Plant, error) {
	args := m.Called(ctx, id)
	if res := args.Get(0); res != nil {
		return res.(*domain.Plant), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPlantRepository) CreatePlant(ctx context.Context, plant *domain.Plant) error {
	args := m.Called(ctx, plant)
	return args.Error(0)
}

func (m *MockPlantRepository) ReplaceAll(ctx context.Context, plants []domain.Plant) (int, error) {
	args := m.Called(ctx, plants)
	return args.Int(0), args.Error(1)
}
