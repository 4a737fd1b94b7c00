package web

import (
	"context"

	adminDomain "github.com/ridloal/plant-catalog/internal/admin/domain"
	"github.com/ridloal/plant-catalog/internal/plant/domain"
)

// CatalogAPI is the slice of the catalog client the web frontend needs.
// *client.Client satisfies it.
type CatalogAPI interface {
	ListPlants(ctx context.Context, searchTerm, category string) ([]domain.Plant, error)
	ListCategories(ctx context.Context) ([]string, error)
	CreatePlant(ctx context.Context, token string, draft domain.PlantDraft) (*domain.Plant, error)
	OpenAdminSession(ctx context.Context, adminKey string) (*adminDomain.Session, error)
}
