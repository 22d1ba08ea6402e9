package routes

import (
	"github.com/shashiranjanraj/kashvi-store/app/controllers"
	appgraphql "github.com/shashiranjanraj/kashvi-store/app/graphql"
	"github.com/shashiranjanraj/kashvi-store/pkg/ctx"
	"github.com/shashiranjanraj/kashvi-store/pkg/graphql"
	"github.com/shashiranjanraj/kashvi-store/pkg/middleware"
	"github.com/shashiranjanraj/kashvi-store/pkg/router"
)

// RegisterAPI mounts every HTTP route. Three surfaces: public storefront,
// authenticated customer routes, and the admin back office.
func RegisterAPI(r *router.Router) {
	auth := controllers.NewAuthController()
	gemstones := controllers.NewGemstoneController()
	reviews := controllers.NewReviewController()
	categories := controllers.NewCategoryController()
	content := controllers.NewContentController()
	orders := controllers.NewOrderController()
	ops := controllers.NewOpsController()

	adminGemstones := controllers.NewAdminGemstoneController()
	adminOrders := controllers.NewAdminOrderController()
	adminCategories := controllers.NewAdminCategoryController()
	adminContent := controllers.NewAdminContentController()
	analytics := controllers.NewAnalyticsController()
	exports := controllers.NewExportController()
	uploads := controllers.NewUploadController()

	schema, err := appgraphql.CatalogSchema()
	if err != nil {
		panic("graphql: building catalog schema: " + err.Error())
	}

	api := r.Group("/api")

	// Public storefront.
	api.Post("/register", "auth.register", ctx.Wrap(auth.Register))
	api.Post("/login", "auth.login", ctx.Wrap(auth.Login))
	api.Post("/logout", "auth.logout", ctx.Wrap(auth.Logout))

	api.Get("/health", "ops.health", ctx.Wrap(ops.Health))
	api.Get("/gemstones", "gemstones.index", ctx.Wrap(gemstones.Index))
	api.Get("/gemstones/{id}", "gemstones.show", ctx.Wrap(gemstones.Show))
	api.Get("/gemstones/{id}/reviews", "gemstones.reviews", ctx.Wrap(gemstones.Reviews))
	api.Get("/categories", "categories.index", ctx.Wrap(categories.Index))
	api.Get("/content/{section}", "content.show", ctx.Wrap(content.Show))
	api.Post("/graphql", "graphql.catalog", ctx.Wrap(graphql.Handler(schema)))

	// Stripe calls this; auth is the webhook signature, not a session.
	api.Post("/webhooks/stripe", "webhooks.stripe", ctx.Wrap(orders.StripeWebhook))

	// Authenticated customers.
	account := api.Group("", middleware.Auth)
	account.Get("/me", "auth.me", ctx.Wrap(auth.Me))
	account.Post("/orders", "orders.create", ctx.Wrap(orders.Create))
	account.Get("/orders", "orders.index", ctx.Wrap(orders.Index))
	account.Get("/orders/{id}", "orders.show", ctx.Wrap(orders.Show))
	account.Get("/orders/{id}/invoice", "orders.invoice", ctx.Wrap(orders.Invoice))
	account.Post("/gemstones/{id}/reviews", "reviews.create", ctx.Wrap(reviews.Create))

	// Admin back office.
	admin := api.Group("/admin", middleware.Auth, middleware.AdminOnly)

	admin.Get("/gemstones", "admin.gemstones.index", ctx.Wrap(adminGemstones.Index))
	admin.Post("/gemstones", "admin.gemstones.create", ctx.Wrap(adminGemstones.Create))
	admin.Get("/gemstones/featured", "admin.gemstones.featured", ctx.Wrap(adminGemstones.Featured))
	admin.Put("/gemstones/featured", "admin.gemstones.featured.update", ctx.Wrap(adminGemstones.UpdateFeatured))
	admin.Patch("/gemstones/inventory", "admin.gemstones.inventory", ctx.Wrap(adminGemstones.AdjustInventory))
	admin.Put("/gemstones/{id}", "admin.gemstones.update", ctx.Wrap(adminGemstones.Update))
	admin.Delete("/gemstones/{id}", "admin.gemstones.delete", ctx.Wrap(adminGemstones.Delete))

	admin.Get("/categories", "admin.categories.index", ctx.Wrap(adminCategories.Index))
	admin.Post("/categories", "admin.categories.create", ctx.Wrap(adminCategories.Create))
	admin.Put("/categories/{id}", "admin.categories.update", ctx.Wrap(adminCategories.Update))
	admin.Delete("/categories/{id}", "admin.categories.delete", ctx.Wrap(adminCategories.Delete))

	admin.Get("/content/{section}", "admin.content.index", ctx.Wrap(adminContent.Index))
	admin.Post("/content/{section}", "admin.content.create", ctx.Wrap(adminContent.Create))
	admin.Put("/content/{section}/{id}", "admin.content.update", ctx.Wrap(adminContent.Update))
	admin.Delete("/content/{section}/{id}", "admin.content.delete", ctx.Wrap(adminContent.Delete))

	admin.Get("/orders", "admin.orders.index", ctx.Wrap(adminOrders.Index))
	admin.Patch("/orders/{id}", "admin.orders.update", ctx.Wrap(adminOrders.Update))

	admin.Get("/analytics", "admin.analytics", ctx.Wrap(analytics.Dashboard))
	admin.Get("/activity", "admin.activity", ctx.Wrap(analytics.Activity))
	admin.Get("/export/{type}", "admin.export", ctx.Wrap(exports.Download))
	admin.Post("/uploads", "admin.uploads", ctx.Wrap(uploads.Store))
	admin.Get("/ws", "admin.ws", ctx.Wrap(ops.Feed))
}
