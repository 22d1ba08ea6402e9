package controllers_test

import (
	"net/http"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/kashvi-store/app/models"
	"github.com/shashiranjanraj/kashvi-store/pkg/testkit"
)

func TestRegisterLoginMe(t *testing.T) {
	api := testkit.NewAPI(t)

	w := api.Do(http.MethodPost, "/api/register", map[string]string{
		"name":     "Asha Verma",
		"email":    "asha@example.com",
		"password": "supersecret",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = api.Do(http.MethodPost, "/api/login", map[string]string{
		"email":    "asha@example.com",
		"password": "supersecret",
	}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var login struct {
		User  models.User `json:"user"`
		Token string      `json:"token"`
	}
	api.Data(w, &login)
	require.NotEmpty(t, login.Token)
	assert.Equal(t, models.RoleUser, login.User.Role)

	w = api.Do(http.MethodGet, "/api/me", nil, login.Token)
	require.Equal(t, http.StatusOK, w.Code)

	var me models.User
	api.Data(w, &me)
	assert.Equal(t, "asha@example.com", me.Email)
	assert.Empty(t, me.Password, "password hash must never serialize")
}

func TestLoginWrongPassword(t *testing.T) {
	api := testkit.NewAPI(t)
	u, _ := api.Customer()

	w := api.Do(http.MethodPost, "/api/login", map[string]string{
		"email":    u.Email,
		"password": "not-the-password",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRegisterValidation(t *testing.T) {
	api := testkit.NewAPI(t)

	w := api.Do(http.MethodPost, "/api/register", map[string]string{
		"name":  "A",
		"email": "not-an-email",
	}, "")
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	env := api.Body(w)
	assert.NotNil(t, env.Errors)
}

func TestAdminGates(t *testing.T) {
	api := testkit.NewAPI(t)
	_, customerToken := api.Customer()

	// No token at all.
	w := api.Do(http.MethodGet, "/api/admin/analytics", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Authenticated but not an admin.
	w = api.Do(http.MethodGet, "/api/admin/analytics", nil, customerToken)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdminGemstoneLifecycle(t *testing.T) {
	api := testkit.NewAPI(t)
	_, adminToken := api.Admin()

	w := api.Do(http.MethodPost, "/api/admin/gemstones", map[string]interface{}{
		"name":  "Kashmir Sapphire",
		"type":  "sapphire",
		"price": 12500.0,
		"stock": 2,
	}, adminToken)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created models.Gemstone
	api.Data(w, &created)
	require.NotZero(t, created.ID)

	// Feature it via the replace-all endpoint.
	w = api.Do(http.MethodPut, "/api/admin/gemstones/featured", map[string]interface{}{
		"featuredIds": []uint{created.ID},
	}, adminToken)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// The public featured carousel now carries it.
	w = api.Do(http.MethodGet, "/api/gemstones?featured=true", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var featured []models.Gemstone
	api.Data(w, &featured)
	require.Len(t, featured, 1)
	assert.Equal(t, "Kashmir Sapphire", featured[0].Name)

	// Deactivate and confirm it vanishes from the public detail page.
	active := false
	w = api.Do(http.MethodPut, "/api/admin/gemstones/"+strconv.Itoa(int(created.ID)), map[string]interface{}{
		"name":   "Kashmir Sapphire",
		"price":  12500.0,
		"active": &active,
	}, adminToken)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = api.Do(http.MethodGet, "/api/gemstones/"+strconv.Itoa(int(created.ID)), nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFeaturedToggleAction(t *testing.T) {
	api := testkit.NewAPI(t)
	_, adminToken := api.Admin()
	gem := api.CreateGemstone("Opal", 600, 5)

	var result struct {
		Message string `json:"message"`
	}

	w := api.Do(http.MethodPut, "/api/admin/gemstones/featured", map[string]interface{}{
		"action":    "toggle",
		"productId": gem.ID,
	}, adminToken)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	api.Data(w, &result)
	assert.Contains(t, result.Message, "added to featured")

	w = api.Do(http.MethodPut, "/api/admin/gemstones/featured", map[string]interface{}{
		"action":    "toggle",
		"productId": gem.ID,
	}, adminToken)
	require.Equal(t, http.StatusOK, w.Code)
	api.Data(w, &result)
	assert.Contains(t, result.Message, "removed from featured")
}

func TestCategoryDeleteBlockedWhenInUse(t *testing.T) {
	api := testkit.NewAPI(t)
	_, adminToken := api.Admin()

	w := api.Do(http.MethodPost, "/api/admin/categories", map[string]interface{}{
		"name": "Precious",
	}, adminToken)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var cat models.Category
	api.Data(w, &cat)

	gem := models.Gemstone{Name: "Ruby", Price: 100, Active: true, Stock: 1, CategoryID: &cat.ID}
	gem.SetImageList([]string{})
	require.NoError(t, api.DB.Create(&gem).Error)

	w = api.Do(http.MethodDelete, "/api/admin/categories/"+strconv.Itoa(int(cat.ID)), nil, adminToken)
	assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())

	var count int64
	require.NoError(t, api.DB.Model(&models.Category{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestOrderFlowOverAPI(t *testing.T) {
	api := testkit.NewAPI(t)
	_, adminToken := api.Admin()
	_, customerToken := api.Customer()
	gem := api.CreateGemstone("Emerald", 2900, 4)

	w := api.Do(http.MethodPost, "/api/orders", map[string]interface{}{
		"items": []map[string]interface{}{
			{"gemstone_id": gem.ID, "quantity": 2},
		},
	}, customerToken)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var placed struct {
		Order models.Order `json:"order"`
	}
	api.Data(w, &placed)
	require.NotZero(t, placed.Order.ID)
	assert.Equal(t, models.StatusPending, placed.Order.Status)

	// Admin moves it to paid.
	w = api.Do(http.MethodPatch, "/api/admin/orders/"+strconv.Itoa(int(placed.Order.ID)),
		map[string]string{"status": models.StatusPaid}, adminToken)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// Owner sees the order with its full history.
	w = api.Do(http.MethodGet, "/api/orders/"+strconv.Itoa(int(placed.Order.ID)), nil, customerToken)
	require.Equal(t, http.StatusOK, w.Code)

	var detail struct {
		Order   models.Order                `json:"order"`
		History []models.OrderStatusHistory `json:"history"`
	}
	api.Data(w, &detail)
	assert.Equal(t, models.StatusPaid, detail.Order.Status)
	require.Len(t, detail.History, 2)
	assert.Equal(t, models.StatusPending, detail.History[0].Status)
	assert.Equal(t, models.StatusPaid, detail.History[1].Status)

	// Unknown transition is rejected.
	w = api.Do(http.MethodPatch, "/api/admin/orders/"+strconv.Itoa(int(placed.Order.ID)),
		map[string]string{"status": "lost"}, adminToken)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOrderHiddenFromStrangers(t *testing.T) {
	api := testkit.NewAPI(t)
	_, ownerToken := api.Customer()
	_, strangerToken := api.Customer()
	gem := api.CreateGemstone("Garnet", 150, 3)

	w := api.Do(http.MethodPost, "/api/orders", map[string]interface{}{
		"items": []map[string]interface{}{{"gemstone_id": gem.ID, "quantity": 1}},
	}, ownerToken)
	require.Equal(t, http.StatusCreated, w.Code)

	var placed struct {
		Order models.Order `json:"order"`
	}
	api.Data(w, &placed)

	w = api.Do(http.MethodGet, "/api/orders/"+strconv.Itoa(int(placed.Order.ID)), nil, strangerToken)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestInvoicePDF(t *testing.T) {
	api := testkit.NewAPI(t)
	_, customerToken := api.Customer()
	gem := api.CreateGemstone("Ruby", 4850, 3)

	w := api.Do(http.MethodPost, "/api/orders", map[string]interface{}{
		"items": []map[string]interface{}{{"gemstone_id": gem.ID, "quantity": 1}},
	}, customerToken)
	require.Equal(t, http.StatusCreated, w.Code)

	var placed struct {
		Order models.Order `json:"order"`
	}
	api.Data(w, &placed)

	w = api.Do(http.MethodGet, "/api/orders/"+strconv.Itoa(int(placed.Order.ID))+"/invoice", nil, customerToken)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), placed.Order.OrderNumber)
	assert.True(t, strings.HasPrefix(w.Body.String(), "%PDF"), "body should be a PDF document")
}

func TestReviewGateOverAPI(t *testing.T) {
	api := testkit.NewAPI(t)
	_, adminToken := api.Admin()
	_, customerToken := api.Customer()
	gem := api.CreateGemstone("Sapphire", 3200, 3)
	path := "/api/gemstones/" + strconv.Itoa(int(gem.ID)) + "/reviews"

	body := map[string]interface{}{"rating": 5, "comment": "Stunning colour"}

	// Not a buyer yet.
	w := api.Do(http.MethodPost, path, body, customerToken)
	assert.Equal(t, http.StatusForbidden, w.Code, w.Body.String())

	// Buy and get marked paid.
	w = api.Do(http.MethodPost, "/api/orders", map[string]interface{}{
		"items": []map[string]interface{}{{"gemstone_id": gem.ID, "quantity": 1}},
	}, customerToken)
	require.Equal(t, http.StatusCreated, w.Code)

	var placed struct {
		Order models.Order `json:"order"`
	}
	api.Data(w, &placed)

	w = api.Do(http.MethodPatch, "/api/admin/orders/"+strconv.Itoa(int(placed.Order.ID)),
		map[string]string{"status": models.StatusPaid}, adminToken)
	require.Equal(t, http.StatusOK, w.Code)

	w = api.Do(http.MethodPost, path, body, customerToken)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// Public listing shows it, no auth needed.
	w = api.Do(http.MethodGet, path, nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var reviews []models.Review
	api.Data(w, &reviews)
	require.Len(t, reviews, 1)
	assert.Equal(t, 5, reviews[0].Rating)
}

func TestReviewGateWinsOverValidation(t *testing.T) {
	api := testkit.NewAPI(t)
	_, adminToken := api.Admin()
	_, customerToken := api.Customer()
	gem := api.CreateGemstone("Garnet", 950, 3)
	path := "/api/gemstones/" + strconv.Itoa(int(gem.ID)) + "/reviews"

	invalid := map[string]interface{}{"rating": 0, "comment": ""}

	// A non-buyer is 403 even with a body that would fail validation.
	w := api.Do(http.MethodPost, path, invalid, customerToken)
	assert.Equal(t, http.StatusForbidden, w.Code, w.Body.String())

	// Once the gate passes, the same body gets the normal 422.
	w = api.Do(http.MethodPost, "/api/orders", map[string]interface{}{
		"items": []map[string]interface{}{{"gemstone_id": gem.ID, "quantity": 1}},
	}, customerToken)
	require.Equal(t, http.StatusCreated, w.Code)

	var placed struct {
		Order models.Order `json:"order"`
	}
	api.Data(w, &placed)

	w = api.Do(http.MethodPatch, "/api/admin/orders/"+strconv.Itoa(int(placed.Order.ID)),
		map[string]string{"status": models.StatusPaid}, adminToken)
	require.Equal(t, http.StatusOK, w.Code)

	w = api.Do(http.MethodPost, path, invalid, customerToken)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())
}

func TestCheckoutNegativeQuantityOverAPI(t *testing.T) {
	api := testkit.NewAPI(t)
	_, customerToken := api.Customer()
	gem := api.CreateGemstone("Peridot", 100, 5)

	w := api.Do(http.MethodPost, "/api/orders", map[string]interface{}{
		"items": []map[string]interface{}{{"gemstone_id": gem.ID, "quantity": -3}},
	}, customerToken)
	assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())

	var fresh models.Gemstone
	require.NoError(t, api.DB.First(&fresh, gem.ID).Error)
	assert.Equal(t, 5, fresh.Stock)
}

func TestContentUnknownSection(t *testing.T) {
	api := testkit.NewAPI(t)

	w := api.Do(http.MethodGet, "/api/content/blog", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestStripeWebhookUnknownSessionAcknowledged(t *testing.T) {
	api := testkit.NewAPI(t)

	w := api.Do(http.MethodPost, "/api/webhooks/stripe", map[string]interface{}{
		"type": "checkout.session.completed",
		"data": map[string]interface{}{
			"object": map[string]interface{}{"id": "cs_test_missing"},
		},
	}, "")
	// Unknown sessions are acknowledged so Stripe stops retrying.
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestHealthEndpoint(t *testing.T) {
	api := testkit.NewAPI(t)

	w := api.Do(http.MethodGet, "/api/health", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}

func TestGraphQLCatalogQuery(t *testing.T) {
	api := testkit.NewAPI(t)
	api.CreateGemstone("Ruby", 4850, 3)

	w := api.Do(http.MethodPost, "/api/graphql", map[string]interface{}{
		"query": `{ gemstones { name price } }`,
	}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "Ruby")
	assert.NotContains(t, w.Body.String(), `"errors"`)
}
