package seeders

import (
	"gorm.io/gorm"

	"github.com/shashiranjanraj/kashvi-store/app/models"
)

func init() {
	Register("catalog", SeedCatalog)
}

// SeedCatalog inserts a starter set of categories and gemstones. Skipped
// entirely once any gemstone exists, so reseeding never duplicates stock.
func SeedCatalog(db *gorm.DB) error {
	var n int64
	if err := db.Model(&models.Gemstone{}).Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	categories := []models.Category{
		{Name: "Precious", Description: "Ruby, sapphire, emerald and diamond.", Position: 1, Active: true},
		{Name: "Semi-Precious", Description: "Amethyst, citrine, topaz and more.", Position: 2, Active: true},
		{Name: "Birthstones", Description: "Stones by birth month.", Position: 3, Active: true},
	}
	for i := range categories {
		if err := db.Create(&categories[i]).Error; err != nil {
			return err
		}
	}

	gems := []models.Gemstone{
		{
			Name: "Burmese Ruby", Type: "ruby",
			Description:   "Deep pigeon-blood red, 2.1 carat, oval cut.",
			Price:         4850, Certification: "GIA",
			CategoryID: &categories[0].ID,
			Featured:   true, Active: true, Stock: 4, LowStockThreshold: 2,
		},
		{
			Name: "Ceylon Blue Sapphire", Type: "sapphire",
			Description:   "Cornflower blue, 3.0 carat, cushion cut.",
			Price:         3200, Certification: "IGI",
			CategoryID: &categories[0].ID,
			Featured:   true, Active: true, Stock: 6, LowStockThreshold: 2,
		},
		{
			Name: "Colombian Emerald", Type: "emerald",
			Description:   "Vivid green with minor jardin, 1.8 carat.",
			Price:         2900, Certification: "GIA",
			CategoryID: &categories[0].ID,
			Featured:   true, Active: true, Stock: 3, LowStockThreshold: 2,
		},
		{
			Name: "Brazilian Amethyst", Type: "amethyst",
			Description: "Rich violet, 5.2 carat, emerald cut.",
			Price:       240, CategoryID: &categories[1].ID,
			Active: true, Stock: 20, LowStockThreshold: 5,
		},
		{
			Name: "Golden Citrine", Type: "citrine",
			Description: "Warm honey tone, 4.4 carat, pear cut.",
			Price:       180, CategoryID: &categories[1].ID,
			Active: true, Stock: 18, LowStockThreshold: 5,
		},
	}
	for i := range gems {
		gems[i].SetImageList([]string{})
		if err := db.Create(&gems[i]).Error; err != nil {
			return err
		}
	}
	return nil
}
