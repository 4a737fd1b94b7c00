package domain

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// AllCategories is the dropdown value that means "no category filter".
const AllCategories = "all"

// PlantFilter is a normalized (searchTerm, category) pair. Empty fields mean
// "no filter".
type PlantFilter struct {
	Search   string
	Category string
}

// NewPlantFilter trims both inputs and treats "all" as no category.
func NewPlantFilter(search, category string) PlantFilter {
	category = strings.TrimSpace(category)
	if category == AllCategories {
		category = ""
	}
	return PlantFilter{
		Search:   strings.TrimSpace(search),
		Category: category,
	}
}

func (f PlantFilter) IsEmpty() bool {
	return f.Search == "" && f.Category == ""
}

// Matches applies both predicates: case-insensitive substring on name and
// exact membership in categories.
func (f PlantFilter) Matches(p Plant) bool {
	if f.Search != "" && !ContainsLower(p.Name, f.Search) {
		return false
	}
	if f.Category != "" && !p.HasCategory(f.Category) {
		return false
	}
	return true
}

// ContainsLower is a case-insensitive substring test on lower-cased text,
// matching SQL lower() and a regex "i" flag. "ß" does not match "ss".
func ContainsLower(s, substr string) bool {
	lower := cases.Lower(language.Und)
	return strings.Contains(lower.String(s), lower.String(substr))
}
