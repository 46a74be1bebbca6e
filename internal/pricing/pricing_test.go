package pricing

import (
	"testing"

	"plateforge/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultCatalog() Catalog {
	return Catalog{
		PlateSelections: []model.PlateSelection{
			{ID: 1, Value: "front", Name: "Front Only", Price: 19.99},
			{ID: 2, Value: "rear", Name: "Rear Only", Price: 19.99},
			{ID: 3, Value: "both", Name: "Both Plates", Price: 34.99},
		},
		PlateTypes: []model.PlateType{
			{ID: 1, Name: "Standard Plate", Style: "standard", Price: 0},
			{ID: 2, Name: "Electric Car Plate", Style: "electric", Price: 4.99},
		},
		Badges: []model.Badge{
			{ID: 1, Name: "GB", Code: "gb", Price: 4.99},
			{ID: 2, Name: "EU", Code: "eu", Price: 4.99},
			{ID: 3, Name: "None", Code: "none", Price: 0},
		},
		TextStyles: []model.TextStyle{
			{ID: 1, Name: "Standard", Style: "standard", Price: 0},
			{ID: 2, Name: "3D Effect", Style: "3d", Price: 7.99},
		},
		PlateSurrounds: []model.PlateSurround{
			{ID: 1, Name: "None", Style: "none", Price: 0},
			{ID: 2, Name: "Premium", Style: "premium", Price: 7.99},
		},
	}
}

func baseCustomization() model.PlateCustomization {
	return model.PlateCustomization{
		RegistrationNumber: "AB12 CDE",
		PlateSelection:     "front",
		PlateType:          "standard",
		Badge:              "gb",
		BadgeColor:         "#FFD700",
		TextStyle:          "standard",
		BorderColor:        "#FFD700",
		PlateSurround:      "none",
	}
}

func TestComputeBaseSelection(t *testing.T) {
	quote := Compute(baseCustomization(), defaultCatalog())

	assert.Equal(t, 24.98, quote.Total)
	require.Len(t, quote.Items, 2)
	assert.Equal(t, model.OrderItem{ID: 1, Name: "Front Only", Price: 19.99}, quote.Items[0])
	assert.Equal(t, model.OrderItem{ID: 2, Name: "GB Badge", Price: 4.99}, quote.Items[1])
}

func TestComputePremiumSurroundAddsItemAndPrice(t *testing.T) {
	c := baseCustomization()
	base := Compute(c, defaultCatalog())

	c.PlateSurround = "premium"
	quote := Compute(c, defaultCatalog())

	assert.Equal(t, 32.97, quote.Total)
	assert.InDelta(t, base.Total+7.99, quote.Total, 1e-9)
	require.Len(t, quote.Items, len(base.Items)+1)
	last := quote.Items[len(quote.Items)-1]
	assert.Equal(t, "Premium Surround", last.Name)
	assert.Equal(t, 7.99, last.Price)
}

func TestComputeNoneBadgeDropsBadgeLine(t *testing.T) {
	c := baseCustomization()
	c.Badge = "none"
	c.BadgeColor = "#0055AA" // badge color never matters for pricing

	quote := Compute(c, defaultCatalog())

	assert.Equal(t, 19.99, quote.Total)
	require.Len(t, quote.Items, 1)
	assert.Equal(t, "Front Only", quote.Items[0].Name)
}

func TestComputeZeroPriceOptionsOmitted(t *testing.T) {
	// standard plate type, standard text style and no surround are all free
	// and must not show up as order items
	quote := Compute(baseCustomization(), defaultCatalog())

	for _, item := range quote.Items {
		assert.Greater(t, item.Price, 0.0)
	}
}

func TestComputePaidExtrasEverywhere(t *testing.T) {
	c := baseCustomization()
	c.PlateSelection = "both"
	c.PlateType = "electric"
	c.TextStyle = "3d"
	c.PlateSurround = "premium"

	quote := Compute(c, defaultCatalog())

	// 34.99 + 4.99 + 4.99 + 7.99 + 7.99
	assert.Equal(t, 60.95, quote.Total)
	require.Len(t, quote.Items, 5)
	assert.Equal(t, "Both Plates", quote.Items[0].Name)
	assert.Equal(t, "Electric Car Plate", quote.Items[1].Name)
	assert.Equal(t, "GB Badge", quote.Items[2].Name)
	assert.Equal(t, "3D Effect Text Style", quote.Items[3].Name)
	assert.Equal(t, "Premium Surround", quote.Items[4].Name)

	for i, item := range quote.Items {
		assert.Equal(t, i+1, item.ID)
	}
}

func TestComputeUnknownSelectionsTolerated(t *testing.T) {
	c := baseCustomization()
	c.PlateSelection = "sideways"
	c.PlateType = "hovercraft"
	c.Badge = "atlantis"

	quote := Compute(c, defaultCatalog())

	assert.Zero(t, quote.Total)
	assert.Empty(t, quote.Items)
}
