package migrations

import (
	"gorm.io/gorm"

	"github.com/shashiranjanraj/kashvi-store/app/models"
	"github.com/shashiranjanraj/kashvi-store/pkg/migration"
)

func init() {
	migration.Register("20260101000000_create_users_table", &CreateUsersTable{})
	migration.Register("20260101000001_create_catalog_tables", &CreateCatalogTables{})
	migration.Register("20260101000002_create_order_tables", &CreateOrderTables{})
	migration.Register("20260101000003_create_reviews_table", &CreateReviewsTable{})
	migration.Register("20260101000004_create_content_tables", &CreateContentTables{})
	migration.Register("20260101000005_create_activity_logs_table", &CreateActivityLogsTable{})
}

// -------- 0000: users --------

type CreateUsersTable struct{}

func (m *CreateUsersTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{})
}

func (m *CreateUsersTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("users")
}

// -------- 0001: categories + gemstones --------

type CreateCatalogTables struct{}

func (m *CreateCatalogTables) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Category{}, &models.Gemstone{})
}

func (m *CreateCatalogTables) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("gemstones", "categories")
}

// -------- 0002: orders, items, status history --------

type CreateOrderTables struct{}

func (m *CreateOrderTables) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Order{}, &models.OrderItem{}, &models.OrderStatusHistory{})
}

func (m *CreateOrderTables) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("order_status_histories", "order_items", "orders")
}

// -------- 0003: reviews --------

type CreateReviewsTable struct{}

func (m *CreateReviewsTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Review{})
}

func (m *CreateReviewsTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("reviews")
}

// -------- 0004: storefront content --------

type CreateContentTables struct{}

func (m *CreateContentTables) Up(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.HomepageSection{},
		&models.Banner{},
		&models.Testimonial{},
		&models.FAQ{},
		&models.PressArticle{},
	)
}

func (m *CreateContentTables) Down(db *gorm.DB) error {
	return db.Migrator().DropTable(
		"press_articles", "faqs", "testimonials", "banners", "homepage_sections",
	)
}

// -------- 0005: admin activity log --------

type CreateActivityLogsTable struct{}

func (m *CreateActivityLogsTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.ActivityLog{})
}

func (m *CreateActivityLogsTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("activity_logs")
}
