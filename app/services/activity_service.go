package services

import (
	"encoding/json"

	"gorm.io/datatypes"

	"github.com/shashiranjanraj/kashvi-store/app/models"
	"github.com/shashiranjanraj/kashvi-store/app/repositories"
	"github.com/shashiranjanraj/kashvi-store/pkg/logger"
)

// ActivityService writes admin audit rows. Every call is best-effort: a
// failed write logs a warning and nothing else, so auditing can never break
// the operation being audited.
type ActivityService struct {
	logs *repositories.ActivityRepository
}

func NewActivityService() *ActivityService {
	return &ActivityService{logs: repositories.NewActivityRepository()}
}

// Record writes one audit row. changes may be nil.
func (s *ActivityService) Record(adminID uint, action, resourceType string, resourceID uint, changes map[string]interface{}, ip string) {
	var raw datatypes.JSON
	if changes != nil {
		if b, err := json.Marshal(changes); err == nil {
			raw = datatypes.JSON(b)
		}
	}

	row := models.ActivityLog{
		AdminID:      adminID,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		Changes:      raw,
		IP:           ip,
	}
	if err := s.logs.Create(&row); err != nil {
		logger.Warn("activity: audit write failed", "action", action, "resource", resourceType, "error", err)
	}
}

// Recent returns the latest audit rows.
func (s *ActivityService) Recent(limit int) ([]models.ActivityLog, error) {
	return s.logs.Recent(limit)
}
