package repositories

import (
	"github.com/shashiranjanraj/kashvi-store/app/models"
	"github.com/shashiranjanraj/kashvi-store/pkg/orm"
)

// ReviewRepository handles database operations for Review.
type ReviewRepository struct{}

func NewReviewRepository() *ReviewRepository {
	return &ReviewRepository{}
}

// ForGemstone returns a gemstone's reviews with the reviewer preloaded,
// newest first.
func (r *ReviewRepository) ForGemstone(gemstoneID uint) ([]models.Review, error) {
	var reviews []models.Review
	err := orm.DB().Model(&models.Review{}).
		Preload("User").
		Where("gemstone_id = ?", gemstoneID).
		Order("id desc").
		Get(&reviews)
	return reviews, err
}

// Create persists a new review.
func (r *ReviewRepository) Create(review *models.Review) error {
	return orm.DB().Create(review)
}
