package seed

import "github.com/ridloal/plant-catalog/internal/plant/domain"

// plants is the starter catalog loaded by `catalogctl seed` and by the
// in-memory store at start-up.
var plants = []domain.Plant{
	{Name: "Snake Plant Laurentii", Price: 899, Categories: []string{"Indoor", "Air Purifying", "Low Maintenance"}, InStock: true},
	{Name: "Money Plant Golden", Price: 399, Categories: []string{"Indoor", "Home Decor", "Beginner Friendly"}, InStock: true},
	{Name: "Echeveria Succulent", Price: 450, Categories: []string{"Outdoor", "Succulent", "Low Water"}, InStock: false},
	{Name: "Fiddle Leaf Fig", Price: 1299, Categories: []string{"Indoor", "Home Decor", "Statement Plant"}, InStock: true},
	{Name: "Peace Lily", Price: 699, Categories: []string{"Indoor", "Air Purifying", "Flowering"}, InStock: true},
	{Name: "Rubber Plant", Price: 799, Categories: []string{"Indoor", "Home Decor", "Low Maintenance"}, InStock: true},
	{Name: "Aloe Vera", Price: 349, Categories: []string{"Indoor", "Succulent", "Medicinal"}, InStock: true},
	{Name: "Monstera Deliciosa", Price: 1199, Categories: []string{"Indoor", "Home Decor", "Statement Plant"}, InStock: true},
	{Name: "Spider Plant", Price: 299, Categories: []string{"Indoor", "Air Purifying", "Beginner Friendly"}, InStock: true},
	{Name: "ZZ Plant", Price: 649, Categories: []string{"Indoor", "Low Maintenance", "Air Purifying"}, InStock: true},
	{Name: "Pothos Golden", Price: 249, Categories: []string{"Indoor", "Beginner Friendly", "Trailing"}, InStock: true},
	{Name: "Jade Plant", Price: 399, Categories: []string{"Indoor", "Succulent", "Good Luck"}, InStock: true},
	{Name: "Boston Fern", Price: 549, Categories: []string{"Indoor", "Air Purifying", "Humidity Loving"}, InStock: false},
	{Name: "Cactus Barrel", Price: 299, Categories: []string{"Indoor", "Succulent", "Low Water"}, InStock: true},
	{Name: "Philodendron Heartleaf", Price: 349, Categories: []string{"Indoor", "Trailing", "Beginner Friendly"}, InStock: true},
	{Name: "Dracaena Marginata", Price: 899, Categories: []string{"Indoor", "Air Purifying", "Statement Plant"}, InStock: true},
	{Name: "English Ivy", Price: 399, Categories: []string{"Indoor", "Trailing", "Air Purifying"}, InStock: true},
	{Name: "Bamboo Palm", Price: 1099, Categories: []string{"Indoor", "Air Purifying", "Tropical"}, InStock: true},
	{Name: "Haworthia Zebra", Price: 249, Categories: []string{"Indoor", "Succulent", "Small Space"}, InStock: true},
	{Name: "Calathea Orbifolia", Price: 799, Categories: []string{"Indoor", "Prayer Plant", "Humidity Loving"}, InStock: false},
	{Name: "Bird of Paradise", Price: 1599, Categories: []string{"Indoor", "Statement Plant", "Tropical"}, InStock: true},
	{Name: "String of Pearls", Price: 449, Categories: []string{"Indoor", "Succulent", "Trailing"}, InStock: true},
	{Name: "Areca Palm", Price: 999, Categories: []string{"Indoor", "Air Purifying", "Tropical"}, InStock: true},
	{Name: "Croton Petra", Price: 649, Categories: []string{"Indoor", "Colorful", "Statement Plant"}, InStock: true},
	{Name: "Pilea Peperomioides", Price: 399, Categories: []string{"Indoor", "Small Space", "Trendy"}, InStock: true},
	{Name: "Lavender Plant", Price: 549, Categories: []string{"Outdoor", "Fragrant", "Flowering"}, InStock: true},
	{Name: "Rosemary Herb", Price: 299, Categories: []string{"Outdoor", "Herbs", "Culinary"}, InStock: true},
	{Name: "Marigold Flowers", Price: 199, Categories: []string{"Outdoor", "Flowering", "Colorful"}, InStock: true},
	{Name: "Basil Sweet", Price: 249, Categories: []string{"Outdoor", "Herbs", "Culinary"}, InStock: true},
	{Name: "Mint Plant", Price: 199, Categories: []string{"Outdoor", "Herbs", "Fragrant"}, InStock: true},
	{Name: "Geranium Red", Price: 349, Categories: []string{"Outdoor", "Flowering", "Colorful"}, InStock: false},
	{Name: "Petunias Mixed", Price: 299, Categories: []string{"Outdoor", "Flowering", "Seasonal"}, InStock: true},
	{Name: "Tomato Cherry", Price: 399, Categories: []string{"Outdoor", "Edible", "Vegetable"}, InStock: true},
	{Name: "Sunflower Dwarf", Price: 249, Categories: []string{"Outdoor", "Flowering", "Cheerful"}, InStock: true},
	{Name: "Bougainvillea Pink", Price: 699, Categories: []string{"Outdoor", "Flowering", "Climbing"}, InStock: true},
	{Name: "Canna Lily", Price: 549, Categories: []string{"Outdoor", "Flowering", "Tropical"}, InStock: true},
	{Name: "Hibiscus Red", Price: 799, Categories: []string{"Outdoor", "Flowering", "Tropical"}, InStock: true},
	{Name: "Jasmine Night", Price: 649, Categories: []string{"Outdoor", "Fragrant", "Flowering"}, InStock: true},
	{Name: "Rose Bush Pink", Price: 899, Categories: []string{"Outdoor", "Flowering", "Classic"}, InStock: false},
	{Name: "Lemon Grass", Price: 299, Categories: []string{"Outdoor", "Herbs", "Culinary"}, InStock: true},
	{Name: "Curry Leaf Plant", Price: 399, Categories: []string{"Outdoor", "Herbs", "Culinary"}, InStock: true},
	{Name: "Neem Tree Sapling", Price: 499, Categories: []string{"Outdoor", "Medicinal", "Tree"}, InStock: true},
	{Name: "Tulsi Holy Basil", Price: 249, Categories: []string{"Outdoor", "Medicinal", "Sacred"}, InStock: true},
	{Name: "Ficus Bonsai", Price: 1299, Categories: []string{"Indoor", "Bonsai", "Artistic"}, InStock: true},
	{Name: "Adenium Desert Rose", Price: 799, Categories: []string{"Indoor", "Succulent", "Flowering"}, InStock: true},
	{Name: "Anthurium Red", Price: 899, Categories: []string{"Indoor", "Flowering", "Tropical"}, InStock: true},
	{Name: "Begonia Wax", Price: 349, Categories: []string{"Indoor", "Flowering", "Colorful"}, InStock: true},
	{Name: "Caladium Fancy", Price: 549, Categories: []string{"Indoor", "Colorful", "Foliage"}, InStock: false},
	{Name: "Dieffenbachia Camille", Price: 699, Categories: []string{"Indoor", "Air Purifying", "Statement Plant"}, InStock: true},
	{Name: "Fittonia Nerve Plant", Price: 299, Categories: []string{"Indoor", "Small Space", "Colorful"}, InStock: true},
	{Name: "Hoya Carnosa", Price: 649, Categories: []string{"Indoor", "Trailing", "Flowering"}, InStock: true},
}

// Plants returns a fresh copy of the starter catalog.
func Plants() []domain.Plant {
	out := make([]domain.Plant, len(plants))
	for i, p := range plants {
		p.Categories = append([]string(nil), p.Categories...)
		out[i] = p
	}
	return out
}
