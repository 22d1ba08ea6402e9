package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/kashvi-store/app/models"
	"github.com/shashiranjanraj/kashvi-store/app/services"
	"github.com/shashiranjanraj/kashvi-store/pkg/testkit"
)

func TestCheckoutDecrementsStockAndSnapshotsPrice(t *testing.T) {
	api := testkit.NewAPI(t)
	user, _ := api.Customer()
	gem := api.CreateGemstone("Ceylon Sapphire", 3200, 5)

	svc := services.NewOrderService()
	order, err := svc.Checkout(user.ID, []services.CheckoutItem{
		{GemstoneID: gem.ID, Quantity: 2},
	}, "cod")
	require.NoError(t, err)

	assert.NotEmpty(t, order.OrderNumber)
	assert.Equal(t, models.StatusPending, order.Status)
	assert.Equal(t, 6400.0, order.Total)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 3200.0, order.Items[0].Price)

	var fresh models.Gemstone
	require.NoError(t, api.DB.First(&fresh, gem.ID).Error)
	assert.Equal(t, 3, fresh.Stock)

	// Price changes after checkout must not touch the snapshot.
	require.NoError(t, api.DB.Model(&fresh).Update("price", 9999).Error)
	got, err := svc.Find(order.ID, user.ID, false)
	require.NoError(t, err)
	assert.Equal(t, 3200.0, got.Items[0].Price)
}

func TestCheckoutInsufficientStock(t *testing.T) {
	api := testkit.NewAPI(t)
	user, _ := api.Customer()
	gem := api.CreateGemstone("Emerald", 2900, 1)

	svc := services.NewOrderService()
	_, err := svc.Checkout(user.ID, []services.CheckoutItem{
		{GemstoneID: gem.ID, Quantity: 3},
	}, "cod")
	require.ErrorIs(t, err, services.ErrInsufficientStock)

	// The failed checkout must not have touched stock.
	var fresh models.Gemstone
	require.NoError(t, api.DB.First(&fresh, gem.ID).Error)
	assert.Equal(t, 1, fresh.Stock)
}

func TestCheckoutRejectsNonPositiveQuantity(t *testing.T) {
	api := testkit.NewAPI(t)
	user, _ := api.Customer()
	gem := api.CreateGemstone("Topaz", 100, 5)

	svc := services.NewOrderService()
	for _, qty := range []int{-3, 0} {
		_, err := svc.Checkout(user.ID, []services.CheckoutItem{
			{GemstoneID: gem.ID, Quantity: qty},
		}, "cod")
		require.ErrorIs(t, err, services.ErrInvalidQuantity, "quantity %d", qty)
	}

	// A negative line would have added to stock; nothing may change.
	var fresh models.Gemstone
	require.NoError(t, api.DB.First(&fresh, gem.ID).Error)
	assert.Equal(t, 5, fresh.Stock)

	var orders int64
	require.NoError(t, api.DB.Model(&models.Order{}).Count(&orders).Error)
	assert.Equal(t, int64(0), orders)
}

func TestCheckoutRejectsInactiveGemstone(t *testing.T) {
	api := testkit.NewAPI(t)
	user, _ := api.Customer()
	gem := api.CreateGemstone("Hidden Ruby", 4850, 5)
	require.NoError(t, api.DB.Model(&gem).Update("active", false).Error)

	_, err := services.NewOrderService().Checkout(user.ID, []services.CheckoutItem{
		{GemstoneID: gem.ID, Quantity: 1},
	}, "cod")
	require.ErrorIs(t, err, services.ErrInactiveGemstone)
}

func TestTransitionAppendsHistory(t *testing.T) {
	api := testkit.NewAPI(t)
	user, _ := api.Customer()
	gem := api.CreateGemstone("Amethyst", 240, 10)

	svc := services.NewOrderService()
	order, err := svc.Checkout(user.ID, []services.CheckoutItem{
		{GemstoneID: gem.ID, Quantity: 1},
	}, "cod")
	require.NoError(t, err)

	_, err = svc.Transition(order.ID, models.StatusPaid)
	require.NoError(t, err)
	_, err = svc.Transition(order.ID, models.StatusShipped)
	require.NoError(t, err)

	history, err := svc.History(order.ID)
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, models.StatusPending, history[0].Status)
	assert.Equal(t, models.StatusPaid, history[1].Status)
	assert.Equal(t, models.StatusShipped, history[2].Status)
}

func TestTransitionRejectsUnknownStatus(t *testing.T) {
	api := testkit.NewAPI(t)
	user, _ := api.Customer()
	gem := api.CreateGemstone("Citrine", 180, 10)

	svc := services.NewOrderService()
	order, err := svc.Checkout(user.ID, []services.CheckoutItem{
		{GemstoneID: gem.ID, Quantity: 1},
	}, "cod")
	require.NoError(t, err)

	_, err = svc.Transition(order.ID, "teleported")
	require.ErrorIs(t, err, services.ErrInvalidStatus)

	got, err := svc.Find(order.ID, user.ID, false)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, got.Status)
}

func TestTransitionSameStatusIsNoop(t *testing.T) {
	api := testkit.NewAPI(t)
	user, _ := api.Customer()
	gem := api.CreateGemstone("Topaz", 310, 10)

	svc := services.NewOrderService()
	order, err := svc.Checkout(user.ID, []services.CheckoutItem{
		{GemstoneID: gem.ID, Quantity: 1},
	}, "cod")
	require.NoError(t, err)

	_, err = svc.Transition(order.ID, models.StatusPending)
	require.NoError(t, err)

	history, err := svc.History(order.ID)
	require.NoError(t, err)
	assert.Len(t, history, 1)
}

func TestFindEnforcesOwnership(t *testing.T) {
	api := testkit.NewAPI(t)
	owner, _ := api.Customer()
	stranger, _ := api.Customer()
	gem := api.CreateGemstone("Garnet", 150, 10)

	svc := services.NewOrderService()
	order, err := svc.Checkout(owner.ID, []services.CheckoutItem{
		{GemstoneID: gem.ID, Quantity: 1},
	}, "cod")
	require.NoError(t, err)

	_, err = svc.Find(order.ID, stranger.ID, false)
	require.ErrorIs(t, err, services.ErrForbidden)

	// Admins can read anyone's order.
	_, err = svc.Find(order.ID, stranger.ID, true)
	require.NoError(t, err)
}
