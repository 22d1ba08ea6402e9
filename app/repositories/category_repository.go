package repositories

import (
	"github.com/shashiranjanraj/kashvi-store/app/models"
	"github.com/shashiranjanraj/kashvi-store/pkg/orm"
)

// CategoryRepository handles database operations for Category.
type CategoryRepository struct{}

func NewCategoryRepository() *CategoryRepository {
	return &CategoryRepository{}
}

// ActiveOrdered returns active categories sorted by display position.
func (r *CategoryRepository) ActiveOrdered() ([]models.Category, error) {
	var cats []models.Category
	err := orm.DB().Model(&models.Category{}).
		Where("active = ?", true).
		Order("position asc, id asc").
		Get(&cats)
	return cats, err
}

// All returns every category, including inactive ones (admin listing).
func (r *CategoryRepository) All() ([]models.Category, error) {
	var cats []models.Category
	err := orm.DB().Model(&models.Category{}).
		Order("position asc, id asc").
		Get(&cats)
	return cats, err
}

// FindByID returns one category by primary key.
func (r *CategoryRepository) FindByID(id uint) (models.Category, error) {
	var c models.Category
	err := orm.DB().Model(&models.Category{}).Where("id = ?", id).First(&c)
	return c, err
}

// Create persists a new category.
func (r *CategoryRepository) Create(c *models.Category) error {
	return orm.DB().Create(c)
}

// Save persists changes to an existing category.
func (r *CategoryRepository) Save(c *models.Category) error {
	return orm.DB().Save(c)
}

// Delete removes a category.
func (r *CategoryRepository) Delete(c *models.Category) error {
	return orm.DB().Delete(c)
}

// GemstoneCount counts gemstones still referencing the category. A non-zero
// count blocks deletion.
func (r *CategoryRepository) GemstoneCount(categoryID uint) (int64, error) {
	var n int64
	err := orm.DB().Model(&models.Gemstone{}).
		Where("category_id = ?", categoryID).
		Count(&n)
	return n, err
}
