package services

import (
	"fmt"

	"github.com/shashiranjanraj/kashvi-store/app/models"
	"github.com/shashiranjanraj/kashvi-store/app/repositories"
	"github.com/shashiranjanraj/kashvi-store/pkg/orm"
)

// ReviewService implements the verified-buyer review gate.
type ReviewService struct {
	reviews *repositories.ReviewRepository
	orders  *repositories.OrderRepository
	gems    *repositories.GemstoneRepository
}

func NewReviewService() *ReviewService {
	return &ReviewService{
		reviews: repositories.NewReviewRepository(),
		orders:  repositories.NewOrderRepository(),
		gems:    repositories.NewGemstoneRepository(),
	}
}

// ForGemstone lists a gemstone's reviews.
func (s *ReviewService) ForGemstone(gemstoneID uint) ([]models.Review, error) {
	if _, err := s.gems.FindByID(gemstoneID); err != nil {
		if orm.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("review: find gemstone: %w", err)
	}
	rows, err := s.reviews.ForGemstone(gemstoneID)
	if err != nil {
		return nil, fmt.Errorf("review: list: %w", err)
	}
	return rows, nil
}

// VerifyBuyer checks the verified-buyer gate: the user must own a paid order
// containing the gemstone, otherwise ErrNotVerifiedBuyer. The gate is decided
// before anything else about a review submission is looked at.
func (s *ReviewService) VerifyBuyer(userID, gemstoneID uint) error {
	if _, err := s.gems.FindByID(gemstoneID); err != nil {
		if orm.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("review: find gemstone: %w", err)
	}

	ok, err := s.orders.HasPaidOrderWithGemstone(userID, gemstoneID)
	if err != nil {
		return fmt.Errorf("review: verify buyer: %w", err)
	}
	if !ok {
		return ErrNotVerifiedBuyer
	}
	return nil
}

// Create stores a review after checking the verified-buyer gate.
func (s *ReviewService) Create(userID, gemstoneID uint, rating int, comment string) (models.Review, error) {
	if err := s.VerifyBuyer(userID, gemstoneID); err != nil {
		return models.Review{}, err
	}

	review := models.Review{
		GemstoneID: gemstoneID,
		UserID:     userID,
		Rating:     rating,
		Comment:    comment,
	}
	if err := s.reviews.Create(&review); err != nil {
		return models.Review{}, fmt.Errorf("review: create: %w", err)
	}
	return review, nil
}
