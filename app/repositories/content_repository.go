package repositories

// Content rows (homepage sections, banners, testimonials, FAQs, press) share
// the same shape — Position ordering plus an Active flag — so their data
// access is generic rather than five near-identical repositories.

import (
	"github.com/shashiranjanraj/kashvi-store/pkg/orm"
)

// ContentActiveOrdered returns active rows of T sorted by display position.
func ContentActiveOrdered[T any]() ([]T, error) {
	var rows []T
	var model T
	err := orm.DB().Model(&model).
		Where("active = ?", true).
		Order("position asc, id asc").
		Get(&rows)
	return rows, err
}

// ContentAll returns every row of T, including inactive ones (admin listing).
func ContentAll[T any]() ([]T, error) {
	var rows []T
	var model T
	err := orm.DB().Model(&model).
		Order("position asc, id asc").
		Get(&rows)
	return rows, err
}

// ContentFind returns one row of T by primary key.
func ContentFind[T any](id uint) (T, error) {
	var row T
	var model T
	err := orm.DB().Model(&model).Where("id = ?", id).First(&row)
	return row, err
}

// ContentCreate persists a new row.
func ContentCreate[T any](row *T) error {
	return orm.DB().Create(row)
}

// ContentSave persists changes to an existing row.
func ContentSave[T any](row *T) error {
	return orm.DB().Save(row)
}

// ContentDelete removes a row.
func ContentDelete[T any](row *T) error {
	return orm.DB().Delete(row)
}
