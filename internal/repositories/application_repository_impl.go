package repositories

import (
	"errors"

	"gorm.io/gorm"

	errs "standsreg/internal/errors"
	"standsreg/internal/models"
)

type applicationRepository struct {
	db *gorm.DB
}

// NewApplicationRepository creates an ApplicationRepository backed by gorm.
func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

func (r *applicationRepository) Create(app *models.Application, entry *models.AuditLog) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(app).Error; err != nil {
			return err
		}
		entry.TargetID = &app.ID
		return tx.Create(entry).Error
	})
}

func (r *applicationRepository) GetByID(id uint) (*models.Application, error) {
	var app models.Application
	err := r.db.
		Preload("NextOfKin").
		Preload("Spouse").
		Preload("Beneficiaries").
		Preload("Documents").
		Preload("Payments").
		First(&app, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *applicationRepository) ListByUser(userID uint) ([]models.Application, error) {
	var apps []models.Application
	if err := r.db.Where("user_id = ?", userID).Order("id").Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *applicationRepository) ListAll(offset, limit int) ([]models.Application, int64, error) {
	var total int64
	if err := r.db.Model(&models.Application{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var apps []models.Application
	if err := r.db.Order("id").Offset(offset).Limit(limit).Find(&apps).Error; err != nil {
		return nil, 0, err
	}
	return apps, total, nil
}

func (r *applicationRepository) Update(app *models.Application, entry *models.AuditLog) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(app).Error; err != nil {
			return err
		}
		if entry == nil {
			return nil
		}
		return tx.Create(entry).Error
	})
}

func (r *applicationRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Application{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.ErrApplicationNotFound
	}
	return nil
}

func (r *applicationRepository) AddNextOfKin(kin *models.NextOfKin, entry *models.AuditLog) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(kin).Error; err != nil {
			return err
		}
		entry.Meta["kin_id"] = kin.ID
		return tx.Create(entry).Error
	})
}

func (r *applicationRepository) AddSpouse(spouse *models.Spouse, entry *models.AuditLog) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(spouse).Error; err != nil {
			return err
		}
		entry.Meta["spouse_id"] = spouse.ID
		return tx.Create(entry).Error
	})
}

func (r *applicationRepository) AddBeneficiary(ben *models.Beneficiary, entry *models.AuditLog) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(ben).Error; err != nil {
			return err
		}
		entry.Meta["beneficiary_id"] = ben.ID
		return tx.Create(entry).Error
	})
}

func (r *applicationRepository) AddPayment(payment *models.Payment, entry *models.AuditLog) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(payment).Error; err != nil {
			return err
		}
		entry.Meta["payment_id"] = payment.ID
		return tx.Create(entry).Error
	})
	if isUniqueViolation(err) {
		return errs.ErrDuplicateReceipt
	}
	return err
}

func (r *applicationRepository) AddDocument(doc *models.Document, entry *models.AuditLog) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(doc).Error; err != nil {
			return err
		}
		entry.Meta["document_id"] = doc.ID
		return tx.Create(entry).Error
	})
}

func (r *applicationRepository) ListDocuments(applicationID uint) ([]models.Document, error) {
	var docs []models.Document
	if err := r.db.Where("application_id = ?", applicationID).Order("id").Find(&docs).Error; err != nil {
		return nil, err
	}
	return docs, nil
}

func (r *applicationRepository) CountByStatus() (map[models.ApplicationStatus]int64, error) {
	var rows []struct {
		Status models.ApplicationStatus
		Count  int64
	}
	err := r.db.Model(&models.Application{}).
		Select("status, count(id) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[models.ApplicationStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

func (r *applicationRepository) PaymentSummary() (float64, int64, error) {
	var summary struct {
		Total float64
		Count int64
	}
	err := r.db.Model(&models.Payment{}).
		Select("coalesce(sum(amount), 0) as total, count(id) as count").
		Scan(&summary).Error
	if err != nil {
		return 0, 0, err
	}
	return summary.Total, summary.Count, nil
}
