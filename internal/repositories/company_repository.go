package repositories

import (
	"errors"

	"gorm.io/gorm"

	errs "standsreg/internal/errors"
	"standsreg/internal/models"
)

// CompanyRepository persists employer companies.
type CompanyRepository interface {
	// Create inserts a company. A duplicate name returns
	// errs.ErrCompanyNameTaken.
	Create(company *models.Company) error

	// GetByID retrieves a company by id.
	GetByID(id uint) (*models.Company, error)

	// List returns companies paginated, optionally only active ones.
	List(offset, limit int, activeOnly bool) ([]models.Company, error)

	// Update persists changes to a company.
	Update(company *models.Company) error

	// Delete removes a company.
	Delete(id uint) error
}

type companyRepository struct {
	db *gorm.DB
}

// NewCompanyRepository creates a CompanyRepository backed by gorm.
func NewCompanyRepository(db *gorm.DB) CompanyRepository {
	return &companyRepository{db: db}
}

func (r *companyRepository) Create(company *models.Company) error {
	if err := r.db.Create(company).Error; err != nil {
		if isUniqueViolation(err) {
			return errs.ErrCompanyNameTaken
		}
		return err
	}
	return nil
}

func (r *companyRepository) GetByID(id uint) (*models.Company, error) {
	var company models.Company
	if err := r.db.First(&company, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrCompanyNotFound
		}
		return nil, err
	}
	return &company, nil
}

func (r *companyRepository) List(offset, limit int, activeOnly bool) ([]models.Company, error) {
	query := r.db.Model(&models.Company{})
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var companies []models.Company
	if err := query.Order("name").Offset(offset).Limit(limit).Find(&companies).Error; err != nil {
		return nil, err
	}
	return companies, nil
}

func (r *companyRepository) Update(company *models.Company) error {
	if err := r.db.Save(company).Error; err != nil {
		if isUniqueViolation(err) {
			return errs.ErrCompanyNameTaken
		}
		return err
	}
	return nil
}

func (r *companyRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Company{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.ErrCompanyNotFound
	}
	return nil
}
