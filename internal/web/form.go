package web

import (
	"strings"

	"github.com/ridloal/plant-catalog/internal/plant/domain"
)

var suggestedCategories = []string{
	"Indoor", "Outdoor", "Succulent", "Air Purifying", "Home Decor",
	"Beginner Friendly", "Low Maintenance", "Flowering", "Herbs",
	"Large Plants", "Small Plants", "Trailing Plants", "Medicinal",
	"Fragrant", "Colorful Foliage", "Low Light", "Desert Plants",
}

// PlantForm holds the raw add-plant form values so they can be echoed back.
type PlantForm struct {
	Name       string
	Price      string
	Categories string
	InStock    bool
}

func newPlantForm() PlantForm {
	return PlantForm{InStock: true}
}

// Draft applies the same rules the API enforces and returns per-field messages
// when the form is not acceptable.
func (f PlantForm) Draft() (domain.PlantDraft, map[string]string) {
	req := domain.CreatePlantRequest{
		Name:       f.Name,
		Price:      domain.PriceFromString(f.Price),
		Categories: domain.CategoriesFromString(f.Categories),
		InStock:    domain.StockFlagOf(f.InStock),
	}
	draft, err := req.Normalize()
	if err != nil {
		if verr, ok := domain.AsValidationError(err); ok {
			return domain.PlantDraft{}, verr.ByField()
		}
		return domain.PlantDraft{}, map[string]string{"": err.Error()}
	}
	return draft, nil
}

func checkboxValue(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "on", "true", "1":
		return true
	}
	return false
}
