package repository

import (
	"context"
	"errors"

	"github.com/ridloal/plant-catalog/internal/plant/domain"
)

var (
	ErrPlantNotFound  = errors.New("plant not found")
	ErrPlantConflict  = errors.New("plant with this name already exists")
	ErrInvalidPlantID = errors.New("invalid plant id")
)

type PlantRepository interface {
	// ListPlants returns every plant matching filter, ordered by name.
	ListPlants(ctx context.Context, filter domain.PlantFilter) ([]domain.Plant, error)
	ListCategories(ctx context.Context) ([]string, error)
	GetPlantByID(ctx context.Context, id string) (*domain.Plant, error)
	// CreatePlant fills in ID and timestamps on success.
	CreatePlant(ctx context.Context, plant *domain.Plant) error
}

// Seeder replaces the whole dataset. Only operator tooling and demo mode use it.
type Seeder interface {
	ReplaceAll(ctx context.Context, plants []domain.Plant) (int, error)
}

type PlantStore interface {
	PlantRepository
	Seeder
}
