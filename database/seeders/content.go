package seeders

import (
	"gorm.io/gorm"

	"github.com/shashiranjanraj/kashvi-store/app/models"
)

func init() {
	Register("content", SeedContent)
}

// SeedContent fills the storefront content sections with starter copy.
// Skipped once any homepage section exists.
func SeedContent(db *gorm.DB) error {
	var n int64
	if err := db.Model(&models.HomepageSection{}).Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	sections := []models.HomepageSection{
		{Key: "hero", Title: "Certified Gemstones, Honest Prices", Subtitle: "Hand-picked stones with lab certification on every order.", Position: 1, Active: true},
		{Key: "about", Title: "Three Generations of Gem Trading", Content: "From the mines of Jaipur to your door.", Position: 2, Active: true},
	}
	for i := range sections {
		if err := db.Create(&sections[i]).Error; err != nil {
			return err
		}
	}

	faqs := []models.FAQ{
		{Question: "Are your gemstones certified?", Answer: "Every stone ships with its lab certificate.", Position: 1, Active: true},
		{Question: "Do you ship internationally?", Answer: "Yes, fully insured, to most countries.", Position: 2, Active: true},
	}
	for i := range faqs {
		if err := db.Create(&faqs[i]).Error; err != nil {
			return err
		}
	}

	testimonials := []models.Testimonial{
		{Author: "Priya S.", Quote: "The sapphire was exactly as photographed. Certificate included.", Rating: 5, Position: 1, Active: true},
	}
	for i := range testimonials {
		if err := db.Create(&testimonials[i]).Error; err != nil {
			return err
		}
	}

	return nil
}
