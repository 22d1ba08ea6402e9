package seeders

import (
	"gorm.io/gorm"

	"github.com/shashiranjanraj/kashvi-store/app/models"
	"github.com/shashiranjanraj/kashvi-store/config"
	"github.com/shashiranjanraj/kashvi-store/pkg/auth"
)

func init() {
	Register("users", SeedUsers)
}

// SeedUsers creates the initial admin account plus one demo customer.
// Idempotent: rows are matched on email.
func SeedUsers(db *gorm.DB) error {
	adminPassword, err := auth.HashPassword(config.Get("SEED_ADMIN_PASSWORD", "admin123"))
	if err != nil {
		return err
	}
	demoPassword, err := auth.HashPassword("password")
	if err != nil {
		return err
	}

	users := []models.User{
		{
			Name:     "Store Admin",
			Email:    config.AdminEmail(),
			Password: adminPassword,
			Role:     models.RoleAdmin,
		},
		{
			Name:     "Demo Customer",
			Email:    "customer@example.com",
			Password: demoPassword,
			Role:     models.RoleUser,
		},
	}

	for i := range users {
		if err := db.Where("email = ?", users[i].Email).
			FirstOrCreate(&users[i]).Error; err != nil {
			return err
		}
	}
	return nil
}
