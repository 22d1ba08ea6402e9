package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/kashvi-store/app/models"
	"github.com/shashiranjanraj/kashvi-store/app/services"
	"github.com/shashiranjanraj/kashvi-store/pkg/testkit"
)

func TestDashboardTrendsAreZeroFilledOver30Days(t *testing.T) {
	api := testkit.NewAPI(t)
	user, _ := api.Customer()
	gem := api.CreateGemstone("Ruby", 100, 50)

	_, err := services.NewOrderService().Checkout(user.ID, []services.CheckoutItem{
		{GemstoneID: gem.ID, Quantity: 2},
	}, "cod")
	require.NoError(t, err)

	d, err := services.NewAnalyticsService().Dashboard()
	require.NoError(t, err)

	require.Len(t, d.RevenueTrend, 30)
	require.Len(t, d.SignupTrend, 30)

	// Every day is present even with no data; today carries the order.
	var revenueSum float64
	for _, p := range d.RevenueTrend {
		assert.NotEmpty(t, p.Date)
		revenueSum += p.Value
	}
	assert.Equal(t, 200.0, revenueSum)
	assert.Equal(t, 200.0, d.RevenueTrend[29].Value)

	var signups float64
	for _, p := range d.SignupTrend {
		signups += p.Value
	}
	assert.Equal(t, 1.0, signups)
}

func TestDashboardExcludesCancelledRevenue(t *testing.T) {
	api := testkit.NewAPI(t)
	user, _ := api.Customer()
	gem := api.CreateGemstone("Sapphire", 500, 50)

	svc := services.NewOrderService()
	kept, err := svc.Checkout(user.ID, []services.CheckoutItem{{GemstoneID: gem.ID, Quantity: 1}}, "cod")
	require.NoError(t, err)
	_ = kept

	cancelled, err := svc.Checkout(user.ID, []services.CheckoutItem{{GemstoneID: gem.ID, Quantity: 2}}, "cod")
	require.NoError(t, err)
	_, err = svc.Transition(cancelled.ID, models.StatusCancelled)
	require.NoError(t, err)

	d, err := services.NewAnalyticsService().Dashboard()
	require.NoError(t, err)

	assert.Equal(t, int64(2), d.AllTime.Orders)
	assert.Equal(t, 500.0, d.AllTime.Revenue, "cancelled orders must not count toward revenue")
}

func TestDashboardCounts(t *testing.T) {
	api := testkit.NewAPI(t)
	ruby := api.CreateGemstone("Ruby", 100, 5)
	api.CreateGemstone("Sapphire", 200, 5)
	_, _ = api.Customer()

	require.NoError(t, services.NewGemstoneService().ReplaceFeatured([]uint{ruby.ID}))

	d, err := services.NewAnalyticsService().Dashboard()
	require.NoError(t, err)

	assert.Equal(t, int64(2), d.Gemstones)
	assert.Equal(t, int64(1), d.Featured)
	assert.Equal(t, int64(1), d.Users)
	assert.GreaterOrEqual(t, d.OnlineUsers, int64(10))
	assert.LessOrEqual(t, d.OnlineUsers, int64(50))
	require.Len(t, d.Funnel, 5)
	stages := make([]string, 0, len(d.Funnel))
	for _, s := range d.Funnel {
		stages = append(stages, s.Stage)
	}
	assert.Equal(t, []string{"visitors", "product_views", "add_to_cart", "checkout", "orders"}, stages)
	assert.NotEmpty(t, d.Radar)
}
