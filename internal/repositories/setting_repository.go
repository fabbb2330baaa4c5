package repositories

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"standsreg/internal/models"
)

// SettingRepository stores global key/value configuration.
type SettingRepository interface {
	// All returns every setting as a map.
	All() (map[string]string, error)

	// Upsert inserts the key or overwrites its value. The operation is a
	// single atomic statement, safe under concurrent writers.
	Upsert(key, value string) error
}

type settingRepository struct {
	db *gorm.DB
}

// NewSettingRepository creates a SettingRepository backed by gorm.
func NewSettingRepository(db *gorm.DB) SettingRepository {
	return &settingRepository{db: db}
}

func (r *settingRepository) All() (map[string]string, error) {
	var settings []models.Setting
	if err := r.db.Find(&settings).Error; err != nil {
		return nil, err
	}

	out := make(map[string]string, len(settings))
	for _, s := range settings {
		out[s.Key] = s.Value
	}
	return out, nil
}

func (r *settingRepository) Upsert(key, value string) error {
	setting := models.Setting{Key: key, Value: value}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&setting).Error
}
