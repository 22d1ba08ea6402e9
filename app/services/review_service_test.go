package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/kashvi-store/app/models"
	"github.com/shashiranjanraj/kashvi-store/app/services"
	"github.com/shashiranjanraj/kashvi-store/pkg/testkit"
)

func TestReviewRequiresPaidOrder(t *testing.T) {
	api := testkit.NewAPI(t)
	user, _ := api.Customer()
	gem := api.CreateGemstone("Ruby", 4850, 5)

	reviews := services.NewReviewService()

	// No order at all.
	_, err := reviews.Create(user.ID, gem.ID, 5, "Gorgeous stone")
	require.ErrorIs(t, err, services.ErrNotVerifiedBuyer)

	// Pending order is not enough.
	orders := services.NewOrderService()
	order, err := orders.Checkout(user.ID, []services.CheckoutItem{
		{GemstoneID: gem.ID, Quantity: 1},
	}, "cod")
	require.NoError(t, err)

	_, err = reviews.Create(user.ID, gem.ID, 5, "Gorgeous stone")
	require.ErrorIs(t, err, services.ErrNotVerifiedBuyer)

	// Paid order unlocks the review.
	_, err = orders.Transition(order.ID, models.StatusPaid)
	require.NoError(t, err)

	review, err := reviews.Create(user.ID, gem.ID, 5, "Gorgeous stone")
	require.NoError(t, err)
	assert.Equal(t, 5, review.Rating)

	got, err := reviews.ForGemstone(gem.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)
}

func TestReviewsForMissingGemstone(t *testing.T) {
	testkit.NewAPI(t)

	_, err := services.NewReviewService().ForGemstone(99999)
	require.ErrorIs(t, err, services.ErrNotFound)
}
