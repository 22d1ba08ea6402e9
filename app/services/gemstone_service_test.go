package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/kashvi-store/app/models"
	"github.com/shashiranjanraj/kashvi-store/app/services"
	"github.com/shashiranjanraj/kashvi-store/pkg/testkit"
)

func featuredIDs(t *testing.T, svc *services.GemstoneService) []uint {
	t.Helper()
	entries, err := svc.Featured()
	require.NoError(t, err)
	ids := make([]uint, 0, len(entries))
	for _, e := range entries {
		if e.Featured {
			ids = append(ids, e.ID)
		}
	}
	return ids
}

func TestToggleFeaturedTwiceRestoresState(t *testing.T) {
	api := testkit.NewAPI(t)
	gem := api.CreateGemstone("Ruby", 4850, 5)

	svc := services.NewGemstoneService()

	entry, err := svc.ToggleFeatured(gem.ID)
	require.NoError(t, err)
	assert.True(t, entry.Featured)

	entry, err = svc.ToggleFeatured(gem.ID)
	require.NoError(t, err)
	assert.False(t, entry.Featured)

	assert.Empty(t, featuredIDs(t, svc))
}

func TestReplaceFeaturedSetsExactly(t *testing.T) {
	api := testkit.NewAPI(t)
	a := api.CreateGemstone("Ruby", 4850, 5)
	b := api.CreateGemstone("Sapphire", 3200, 5)
	c := api.CreateGemstone("Emerald", 2900, 5)

	svc := services.NewGemstoneService()
	require.NoError(t, svc.ReplaceFeatured([]uint{a.ID, c.ID}))
	assert.ElementsMatch(t, []uint{a.ID, c.ID}, featuredIDs(t, svc))

	require.NoError(t, svc.ReplaceFeatured([]uint{b.ID}))
	assert.Equal(t, []uint{b.ID}, featuredIDs(t, svc))
}

func TestReplaceFeaturedEmptyClearsAll(t *testing.T) {
	api := testkit.NewAPI(t)
	a := api.CreateGemstone("Ruby", 4850, 5)

	svc := services.NewGemstoneService()
	require.NoError(t, svc.ReplaceFeatured([]uint{a.ID}))
	require.NoError(t, svc.ReplaceFeatured([]uint{}))
	assert.Empty(t, featuredIDs(t, svc))
}

func TestReplaceFeaturedUnknownIDLeavesStateUnchanged(t *testing.T) {
	api := testkit.NewAPI(t)
	a := api.CreateGemstone("Ruby", 4850, 5)
	b := api.CreateGemstone("Sapphire", 3200, 5)

	svc := services.NewGemstoneService()
	require.NoError(t, svc.ReplaceFeatured([]uint{a.ID}))

	err := svc.ReplaceFeatured([]uint{b.ID, 99999})
	require.ErrorIs(t, err, services.ErrNotFound)

	// The failed replace must roll back completely.
	assert.Equal(t, []uint{a.ID}, featuredIDs(t, svc))
}

func TestDeleteBlockedWhenOrdered(t *testing.T) {
	api := testkit.NewAPI(t)
	user, _ := api.Customer()
	gem := api.CreateGemstone("Emerald", 2900, 5)

	_, err := services.NewOrderService().Checkout(user.ID, []services.CheckoutItem{
		{GemstoneID: gem.ID, Quantity: 1},
	}, "cod")
	require.NoError(t, err)

	svc := services.NewGemstoneService()
	err = svc.Delete(gem.ID)
	require.ErrorIs(t, err, services.ErrDeleteBlocked)

	// Still present.
	_, err = svc.Find(gem.ID)
	require.NoError(t, err)
}

func TestAdjustInventoryIsAtomic(t *testing.T) {
	api := testkit.NewAPI(t)
	a := api.CreateGemstone("Ruby", 4850, 5)
	b := api.CreateGemstone("Sapphire", 3200, 5)

	svc := services.NewGemstoneService()
	err := svc.AdjustInventory([]services.StockAdjustment{
		{GemstoneID: a.ID, Stock: 10},
		{GemstoneID: 99999, Stock: 1},
	})
	require.ErrorIs(t, err, services.ErrNotFound)

	var fresh models.Gemstone
	require.NoError(t, api.DB.First(&fresh, a.ID).Error)
	assert.Equal(t, 5, fresh.Stock, "rolled back batch must not change stock")

	require.NoError(t, svc.AdjustInventory([]services.StockAdjustment{
		{GemstoneID: a.ID, Stock: 10},
		{GemstoneID: b.ID, Stock: 0},
	}))
	require.NoError(t, api.DB.First(&fresh, a.ID).Error)
	assert.Equal(t, 10, fresh.Stock)
	fresh = models.Gemstone{} // clear primary key so GORM doesn't add it as a condition
	require.NoError(t, api.DB.First(&fresh, b.ID).Error)
	assert.Equal(t, 0, fresh.Stock)
}
