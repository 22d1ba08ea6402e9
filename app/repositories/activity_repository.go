package repositories

import (
	"github.com/shashiranjanraj/kashvi-store/app/models"
	"github.com/shashiranjanraj/kashvi-store/pkg/orm"
)

// ActivityRepository persists admin audit rows.
type ActivityRepository struct{}

func NewActivityRepository() *ActivityRepository {
	return &ActivityRepository{}
}

// Create writes an audit row.
func (r *ActivityRepository) Create(log *models.ActivityLog) error {
	return orm.DB().Create(log)
}

// Recent returns the latest audit rows for the admin dashboard.
func (r *ActivityRepository) Recent(limit int) ([]models.ActivityLog, error) {
	if limit < 1 {
		limit = 50
	}
	var rows []models.ActivityLog
	err := orm.DB().Model(&models.ActivityLog{}).
		Order("id desc").
		Limit(limit).
		Get(&rows)
	return rows, err
}
