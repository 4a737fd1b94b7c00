package seed

import (
	"testing"

	"github.com/ridloal/plant-catalog/internal/plant/domain"
	"github.com/stretchr/testify/assert"
)

func TestPlants_AreValidAndUnique(t *testing.T) {
	all := Plants()
	assert.Len(t, all, 51)

	seen := make(map[string]bool, len(all))
	for _, p := range all {
		assert.False(t, seen[p.Name], "duplicate seed plant %q", p.Name)
		seen[p.Name] = true

		req := domain.CreatePlantRequest{
			Name:       p.Name,
			Price:      domain.PriceFromFloat(p.Price),
			Categories: domain.CategoriesFromSlice(p.Categories),
			InStock:    domain.StockFlagOf(p.InStock),
		}
		_, err := req.Normalize()
		assert.NoError(t, err, p.Name)
	}
}

func TestPlants_ReturnsCopies(t *testing.T) {
	first := Plants()
	first[0].Categories[0] = "Changed"
	assert.NotEqual(t, "Changed", Plants()[0].Categories[0])
}
