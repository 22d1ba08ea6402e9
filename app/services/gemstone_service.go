package services

import (
	"fmt"

	"github.com/shashiranjanraj/kashvi-store/app/models"
	"github.com/shashiranjanraj/kashvi-store/app/repositories"
	"github.com/shashiranjanraj/kashvi-store/pkg/collection"
	"github.com/shashiranjanraj/kashvi-store/pkg/orm"
)

// GemstoneService implements catalog administration: CRUD, the featured-set
// manager, and bulk inventory adjustment.
type GemstoneService struct {
	gems       *repositories.GemstoneRepository
	categories *repositories.CategoryRepository
}

func NewGemstoneService() *GemstoneService {
	return &GemstoneService{
		gems:       repositories.NewGemstoneRepository(),
		categories: repositories.NewCategoryRepository(),
	}
}

// Find returns one gemstone, mapping missing rows to ErrNotFound.
func (s *GemstoneService) Find(id uint) (models.Gemstone, error) {
	g, err := s.gems.FindByID(id)
	if err != nil {
		if orm.IsNotFound(err) {
			return models.Gemstone{}, ErrNotFound
		}
		return models.Gemstone{}, fmt.Errorf("gemstone: find: %w", err)
	}
	return g, nil
}

// Create persists a new gemstone.
func (s *GemstoneService) Create(g *models.Gemstone) error {
	if err := s.gems.Create(g); err != nil {
		return fmt.Errorf("gemstone: create: %w", err)
	}
	return nil
}

// Update persists changes to an existing gemstone.
func (s *GemstoneService) Update(g *models.Gemstone) error {
	if err := s.gems.Save(g); err != nil {
		return fmt.Errorf("gemstone: update: %w", err)
	}
	return nil
}

// Delete removes a gemstone unless order items still reference it.
func (s *GemstoneService) Delete(id uint) error {
	g, err := s.Find(id)
	if err != nil {
		return err
	}

	n, err := s.gems.OrderItemCount(g.ID)
	if err != nil {
		return fmt.Errorf("gemstone: count order items: %w", err)
	}
	if n > 0 {
		return ErrDeleteBlocked
	}

	if err := s.gems.Delete(&g); err != nil {
		return fmt.Errorf("gemstone: delete: %w", err)
	}
	return nil
}

// ── Featured-set manager ─────────────────────────────────────────────────────

// FeaturedEntry is the compact admin view of a featured flag.
type FeaturedEntry struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Featured bool   `json:"featured"`
}

// Featured returns every currently featured gemstone.
func (s *GemstoneService) Featured() ([]FeaturedEntry, error) {
	gems, err := s.gems.Featured()
	if err != nil {
		return nil, fmt.Errorf("gemstone: list featured: %w", err)
	}
	return collection.Map(gems, func(g models.Gemstone) FeaturedEntry {
		return FeaturedEntry{ID: g.ID, Name: g.Name, Featured: g.Featured}
	}), nil
}

// ToggleFeatured flips one gemstone's featured flag and returns the new state.
func (s *GemstoneService) ToggleFeatured(id uint) (FeaturedEntry, error) {
	g, err := s.Find(id)
	if err != nil {
		return FeaturedEntry{}, err
	}

	g.Featured = !g.Featured
	if err := s.gems.Save(&g); err != nil {
		return FeaturedEntry{}, fmt.Errorf("gemstone: toggle featured: %w", err)
	}
	return FeaturedEntry{ID: g.ID, Name: g.Name, Featured: g.Featured}, nil
}

// ReplaceFeatured sets the featured flag on exactly the given ids, clearing
// it everywhere else. The clear and set run in one transaction: an unknown
// id rolls the whole operation back and nothing changes. An empty list
// clears every flag.
func (s *GemstoneService) ReplaceFeatured(ids []uint) error {
	err := orm.DB().Transaction(func(tx *orm.Query) error {
		// Verify all ids exist before mutating anything.
		if len(ids) > 0 {
			var n int64
			if err := tx.Model(&models.Gemstone{}).Where("id IN ?", ids).Count(&n); err != nil {
				return err
			}
			if n != int64(len(ids)) {
				return ErrNotFound
			}
		}

		if err := tx.Model(&models.Gemstone{}).
			Where("featured = ?", true).
			Update("featured", false); err != nil {
			return err
		}

		if len(ids) == 0 {
			return nil
		}
		return tx.Model(&models.Gemstone{}).
			Where("id IN ?", ids).
			Update("featured", true)
	})
	if err != nil {
		if err == ErrNotFound {
			return err
		}
		return fmt.Errorf("gemstone: replace featured: %w", err)
	}

	s.gems.InvalidateCache()
	return nil
}

// ── Inventory ────────────────────────────────────────────────────────────────

// StockAdjustment is one line of a bulk inventory update.
type StockAdjustment struct {
	GemstoneID uint `json:"gemstone_id" validate:"required"`
	Stock      int  `json:"stock" validate:"gte=0"`
}

// AdjustInventory applies all stock changes in a single transaction. An
// unknown gemstone id rolls back the whole batch.
func (s *GemstoneService) AdjustInventory(adjustments []StockAdjustment) error {
	err := orm.DB().Transaction(func(tx *orm.Query) error {
		for _, a := range adjustments {
			var g models.Gemstone
			if err := tx.Model(&models.Gemstone{}).Where("id = ?", a.GemstoneID).First(&g); err != nil {
				if orm.IsNotFound(err) {
					return ErrNotFound
				}
				return err
			}
			if err := tx.Model(&models.Gemstone{}).
				Where("id = ?", a.GemstoneID).
				Update("stock", a.Stock); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if err == ErrNotFound {
			return err
		}
		return fmt.Errorf("gemstone: adjust inventory: %w", err)
	}

	s.gems.InvalidateCache()
	return nil
}
