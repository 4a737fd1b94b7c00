package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "₹349", FormatPrice(349))
	assert.Equal(t, "₹349.5", FormatPrice(349.5))
	assert.Equal(t, "₹0", FormatPrice(0))
	assert.Equal(t, "₹0.1", FormatPrice(0.1))
}

func TestPlant_MarshalJSON(t *testing.T) {
	raw, err := json.Marshal(Plant{ID: "abc", Name: "Jade", Price: 299})
	require.NoError(t, err)

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, "abc", out["_id"])
	assert.Equal(t, "abc", out["id"])
	assert.Equal(t, "₹299", out["formattedPrice"])
	assert.Equal(t, []interface{}{}, out["categories"])

	var back Plant
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, "abc", back.ID)
}

func TestPlantFilter(t *testing.T) {
	p := Plant{Name: "Areca Palm", Categories: []string{"Indoor", "Air Purifying"}}

	assert.True(t, NewPlantFilter("", "all").IsEmpty())
	assert.True(t, NewPlantFilter("  ", " ").IsEmpty())
	assert.True(t, NewPlantFilter("PALM", "").Matches(p))
	assert.True(t, NewPlantFilter("ca pa", "Indoor").Matches(p))
	assert.False(t, NewPlantFilter("", "indoor").Matches(p))
	assert.False(t, NewPlantFilter("palm", "Outdoor").Matches(p))
	assert.False(t, NewPlantFilter(".*", "").Matches(p))
}

func TestContainsLower(t *testing.T) {
	assert.False(t, ContainsLower("Straße Fern", "STRASSE"))
	assert.False(t, ContainsLower("Straße Fern", "ss"))
	assert.True(t, ContainsLower("Straße Fern", "STRAßE"))
	assert.True(t, ContainsLower("Ölbaum", "öl"))
	assert.True(t, ContainsLower("Snake Plant", "ke pl"))
}
