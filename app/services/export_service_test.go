package services_test

import (
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/kashvi-store/app/services"
	"github.com/shashiranjanraj/kashvi-store/pkg/testkit"
)

func TestExportOrdersCSV(t *testing.T) {
	api := testkit.NewAPI(t)
	user, _ := api.Customer()
	gem := api.CreateGemstone("Ruby", 4850, 5)

	order, err := services.NewOrderService().Checkout(user.ID, []services.CheckoutItem{
		{GemstoneID: gem.ID, Quantity: 1},
	}, "cod")
	require.NoError(t, err)

	body, filename, err := services.NewExportService().Export("orders")
	require.NoError(t, err)
	assert.Contains(t, filename, "orders")
	assert.True(t, strings.HasSuffix(filename, ".csv"))

	rows, err := csv.NewReader(strings.NewReader(string(body))).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2, "header plus one order")
	assert.Contains(t, rows[1], order.OrderNumber)
}

func TestExportGemstonesCSV(t *testing.T) {
	api := testkit.NewAPI(t)
	api.CreateGemstone("Sapphire", 3200, 5)

	body, _, err := services.NewExportService().Export("gemstones")
	require.NoError(t, err)

	rows, err := csv.NewReader(strings.NewReader(string(body))).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Contains(t, rows[1], "Sapphire")
}

func TestExportUnknownType(t *testing.T) {
	testkit.NewAPI(t)

	_, _, err := services.NewExportService().Export("invoices")
	require.ErrorIs(t, err, services.ErrUnknownExport)
}
