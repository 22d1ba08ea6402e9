package repositories

import (
	"time"

	"github.com/shashiranjanraj/kashvi-store/app/models"
	"github.com/shashiranjanraj/kashvi-store/pkg/cache"
	"github.com/shashiranjanraj/kashvi-store/pkg/orm"
)

// catalogCachePrefix namespaces all cached catalog reads so admin writes can
// flush them in one call.
const catalogCachePrefix = "catalog:"

// GemstoneFilter narrows the public gemstone listing.
type GemstoneFilter struct {
	Featured bool
	Category string // category name
	Type     string
	Search   string // name substring
	Page     int
	Limit    int
}

// GemstoneRepository handles database operations for Gemstone and Category.
type GemstoneRepository struct{}

func NewGemstoneRepository() *GemstoneRepository {
	return &GemstoneRepository{}
}

// List returns active gemstones matching the filter, paginated.
func (r *GemstoneRepository) List(f GemstoneFilter) ([]models.Gemstone, orm.Pagination, error) {
	q := orm.DB().Model(&models.Gemstone{}).
		Preload("Category").
		Where("active = ?", true)

	if f.Featured {
		q = q.Where("featured = ?", true)
	}
	if f.Type != "" {
		q = q.Where("type = ?", f.Type)
	}
	if f.Search != "" {
		q = q.Where("gemstones.name LIKE ?", "%"+f.Search+"%")
	}
	if f.Category != "" {
		q = q.Joins("JOIN categories ON categories.id = gemstones.category_id").
			Where("categories.name = ?", f.Category)
	}

	var gems []models.Gemstone
	pagination, err := q.Order("gemstones.id desc").GetWithPagination(&gems, f.Page, f.Limit)
	return gems, pagination, err
}

// AdminList returns every gemstone, including inactive rows.
func (r *GemstoneRepository) AdminList(page, limit int) ([]models.Gemstone, orm.Pagination, error) {
	var gems []models.Gemstone
	pagination, err := orm.DB().Model(&models.Gemstone{}).
		Preload("Category").
		Order("id desc").
		GetWithPagination(&gems, page, limit)
	return gems, pagination, err
}

// FindByID returns one gemstone with its category preloaded.
func (r *GemstoneRepository) FindByID(id uint) (models.Gemstone, error) {
	var g models.Gemstone
	err := orm.DB().Model(&models.Gemstone{}).
		Preload("Category").
		Where("id = ?", id).
		First(&g)
	return g, err
}

// Featured returns every gemstone currently flagged featured.
func (r *GemstoneRepository) Featured() ([]models.Gemstone, error) {
	var gems []models.Gemstone
	err := orm.DB().Model(&models.Gemstone{}).
		Where("featured = ?", true).
		Order("id asc").
		Get(&gems)
	return gems, err
}

// Create persists a new gemstone and invalidates cached catalog reads.
func (r *GemstoneRepository) Create(g *models.Gemstone) error {
	if err := orm.DB().Create(g); err != nil {
		return err
	}
	r.InvalidateCache()
	return nil
}

// Save persists changes to an existing gemstone.
func (r *GemstoneRepository) Save(g *models.Gemstone) error {
	if err := orm.DB().Save(g); err != nil {
		return err
	}
	r.InvalidateCache()
	return nil
}

// Delete removes a gemstone.
func (r *GemstoneRepository) Delete(g *models.Gemstone) error {
	if err := orm.DB().Delete(g); err != nil {
		return err
	}
	r.InvalidateCache()
	return nil
}

// OrderItemCount counts order items referencing the gemstone. A non-zero
// count blocks deletion.
func (r *GemstoneRepository) OrderItemCount(gemstoneID uint) (int64, error) {
	var n int64
	err := orm.DB().Model(&models.OrderItem{}).
		Where("gemstone_id = ?", gemstoneID).
		Count(&n)
	return n, err
}

// LowStock returns active gemstones at or below their low-stock threshold.
func (r *GemstoneRepository) LowStock() ([]models.Gemstone, error) {
	var gems []models.Gemstone
	err := orm.DB().Model(&models.Gemstone{}).
		Where("active = ? AND stock <= low_stock_threshold", true).
		Order("stock asc").
		Get(&gems)
	return gems, err
}

// FeaturedActive returns the public featured carousel through the
// read-through cache. Admin writes flush the prefix.
func (r *GemstoneRepository) FeaturedActive() ([]models.Gemstone, error) {
	var gems []models.Gemstone
	err := orm.DB().Model(&models.Gemstone{}).
		Preload("Category").
		Where("active = ? AND featured = ?", true, true).
		Order("id asc").
		Cache(catalogCachePrefix+"featured", 30*time.Second, &gems)
	return gems, err
}

// InvalidateCache drops every cached catalog read.
func (r *GemstoneRepository) InvalidateCache() {
	_ = cache.FlushPrefix(catalogCachePrefix)
}
