package domain

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// CurrencySymbol prefixes every rendered price.
const CurrencySymbol = "₹"

// MaxNameLength is counted in characters, not bytes.
const MaxNameLength = 100

type Plant struct {
	ID         string    `json:"_id"`
	Name       string    `json:"name"`
	Price      float64   `json:"price"`
	Categories []string  `json:"categories"`
	InStock    bool      `json:"inStock"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// FormattedPrice is derived at read time and never persisted.
func (p Plant) FormattedPrice() string {
	return FormatPrice(p.Price)
}

// FormatPrice renders 349 as "₹349" and 349.5 as "₹349.5".
func FormatPrice(price float64) string {
	return CurrencySymbol + decimal.NewFromFloat(price).String()
}

// HasCategory reports exact, case-sensitive membership.
func (p Plant) HasCategory(category string) bool {
	for _, c := range p.Categories {
		if c == category {
			return true
		}
	}
	return false
}

// MarshalJSON adds the "id" alias and formattedPrice next to the stored fields.
func (p Plant) MarshalJSON() ([]byte, error) {
	type plantFields Plant
	categories := p.Categories
	if categories == nil {
		categories = []string{}
	}
	fields := plantFields(p)
	fields.Categories = categories
	return json.Marshal(struct {
		plantFields
		AliasID        string `json:"id"`
		FormattedPrice string `json:"formattedPrice"`
	}{
		plantFields:    fields,
		AliasID:        p.ID,
		FormattedPrice: p.FormattedPrice(),
	})
}

// PlantDraft is a validated, normalized create request. It is also the JSON
// shape the client adapter sends.
type PlantDraft struct {
	Name       string   `json:"name" validate:"required,max=100"`
	Price      float64  `json:"price" validate:"gte=0"`
	Categories []string `json:"categories" validate:"min=1"`
	InStock    bool     `json:"inStock"`
}

func (d PlantDraft) ToPlant() Plant {
	categories := make([]string, len(d.Categories))
	copy(categories, d.Categories)
	return Plant{
		Name:       d.Name,
		Price:      d.Price,
		Categories: categories,
		InStock:    d.InStock,
	}
}
