package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/ridloal/plant-catalog/internal/plant/domain"
	"github.com/ridloal/plant-catalog/internal/plant/repository"
	"github.com/ridloal/plant-catalog/internal/platform/logger"
)

var (
	ErrPlantNotFound      = errors.New("plant not found")
	ErrInvalidPlantID     = errors.New("invalid plant id format")
	ErrDuplicatePlantName = errors.New("a plant with this name already exists")
)

type PlantService interface {
	SearchPlants(ctx context.Context, searchTerm, category string) ([]domain.Plant, error)
	ListCategories(ctx context.Context) ([]string, error)
	GetPlant(ctx context.Context, id string) (*domain.Plant, error)
	CreatePlant(ctx context.Context, req domain.CreatePlantRequest) (*domain.Plant, error)
}

type plantService struct {
	repo repository.PlantRepository
}

func NewPlantService(repo repository.PlantRepository) PlantService {
	return &plantService{repo: repo}
}

func (s *plantService) SearchPlants(ctx context.Context, searchTerm, category string) ([]domain.Plant, error) {
	filter := domain.NewPlantFilter(searchTerm, category)
	plants, err := s.repo.ListPlants(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("could not search plants: %w", err)
	}
	if plants == nil {
		plants = []domain.Plant{}
	}
	// Store collations differ; the contract is code point order.
	sort.SliceStable(plants, func(i, j int) bool {
		return strings.Compare(plants[i].Name, plants[j].Name) < 0
	})
	return plants, nil
}

func (s *plantService) ListCategories(ctx context.Context) ([]string, error) {
	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not list categories: %w", err)
	}

	seen := make(map[string]struct{}, len(categories))
	unique := make([]string, 0, len(categories))
	for _, c := range categories {
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		unique = append(unique, c)
	}
	sort.Strings(unique)
	return unique, nil
}

func (s *plantService) GetPlant(ctx context.Context, id string) (*domain.Plant, error) {
	plant, err := s.repo.GetPlantByID(ctx, strings.TrimSpace(id))
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrInvalidPlantID):
			return nil, ErrInvalidPlantID
		case errors.Is(err, repository.ErrPlantNotFound):
			return nil, ErrPlantNotFound
		}
		return nil, fmt.Errorf("could not fetch plant: %w", err)
	}
	return plant, nil
}

func (s *plantService) CreatePlant(ctx context.Context, req domain.CreatePlantRequest) (*domain.Plant, error) {
	draft, err := req.Normalize()
	if err != nil {
		return nil, err
	}

	plant := draft.ToPlant()
	if err := s.repo.CreatePlant(ctx, &plant); err != nil {
		if errors.Is(err, repository.ErrPlantConflict) {
			return nil, ErrDuplicatePlantName
		}
		logger.Error("CreatePlant: failed to persist plant", err)
		return nil, fmt.Errorf("could not save plant: %w", err)
	}
	logger.Info("Plant created: %s (%s)", plant.Name, plant.ID)
	return &plant, nil
}
