package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/ridloal/plant-catalog/internal/plant/domain"
)

// memoryPlantRepository keeps plants in a map. It backs the demo mode and the
// HTTP tests; names are unique case-sensitively, like the database stores.
type memoryPlantRepository struct {
	mu     sync.RWMutex
	plants map[string]domain.Plant
	names  map[string]string
	now    func() time.Time
}

func NewMemoryPlantRepository() PlantStore {
	return &memoryPlantRepository{
		plants: make(map[string]domain.Plant),
		names:  make(map[string]string),
		now:    time.Now,
	}
}

func (r *memoryPlantRepository) ListPlants(_ context.Context, filter domain.PlantFilter) ([]domain.Plant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	plants := []domain.Plant{}
	for _, p := range r.plants {
		if filter.Matches(p) {
			plants = append(plants, clonePlant(p))
		}
	}
	sort.Slice(plants, func(i, j int) bool {
		return strings.Compare(plants[i].Name, plants[j].Name) < 0
	})
	return plants, nil
}

func (r *memoryPlantRepository) ListCategories(_ context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]struct{})
	categories := []string{}
	for _, p := range r.plants {
		for _, c := range p.Categories {
			if _, ok := seen[c]; ok {
				continue
			}
			seen[c] = struct{}{}
			categories = append(categories, c)
		}
	}
	sort.Strings(categories)
	return categories, nil
}

func (r *memoryPlantRepository) GetPlantByID(_ context.Context, id string) (*domain.Plant, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrInvalidPlantID
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.plants[id]
	if !ok {
		return nil, ErrPlantNotFound
	}
	out := clonePlant(p)
	return &out, nil
}

func (r *memoryPlantRepository) CreatePlant(_ context.Context, plant *domain.Plant) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.names[plant.Name]; taken {
		return ErrPlantConflict
	}
	r.insertLocked(plant)
	return nil
}

func (r *memoryPlantRepository) ReplaceAll(_ context.Context, plants []domain.Plant) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.plants = make(map[string]domain.Plant, len(plants))
	r.names = make(map[string]string, len(plants))
	for i := range plants {
		p := plants[i]
		if _, taken := r.names[p.Name]; taken {
			return 0, ErrPlantConflict
		}
		r.insertLocked(&p)
	}
	return len(plants), nil
}

func (r *memoryPlantRepository) insertLocked(plant *domain.Plant) {
	now := r.now().UTC()
	plant.ID = uuid.NewString()
	plant.CreatedAt = now
	plant.UpdatedAt = now
	r.plants[plant.ID] = clonePlant(*plant)
	r.names[plant.Name] = plant.ID
}

func clonePlant(p domain.Plant) domain.Plant {
	p.Categories = append([]string{}, p.Categories...)
	return p
}
