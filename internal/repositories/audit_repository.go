package repositories

import (
	"gorm.io/gorm"

	"standsreg/internal/models"
)

// AuditLogRepository reads the audit trail. Entries are written by the other
// repositories inside their own transactions; this interface never mutates.
type AuditLogRepository interface {
	// List returns entries most recent first with pagination.
	List(offset, limit int) ([]models.AuditLog, error)

	// ListByTarget returns all entries for one application, most recent
	// first.
	ListByTarget(targetID uint) ([]models.AuditLog, error)
}

type auditLogRepository struct {
	db *gorm.DB
}

// NewAuditLogRepository creates an AuditLogRepository backed by gorm.
func NewAuditLogRepository(db *gorm.DB) AuditLogRepository {
	return &auditLogRepository{db: db}
}

func (r *auditLogRepository) List(offset, limit int) ([]models.AuditLog, error) {
	var entries []models.AuditLog
	// Ids are monotonic, so descending id is descending creation time.
	err := r.db.Order("id DESC").Offset(offset).Limit(limit).Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *auditLogRepository) ListByTarget(targetID uint) ([]models.AuditLog, error) {
	var entries []models.AuditLog
	err := r.db.Where("target_id = ?", targetID).Order("id DESC").Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
