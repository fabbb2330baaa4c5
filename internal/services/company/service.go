// Package company manages the employer directory applicants choose from at
// registration.
package company

import (
	"standsreg/internal/models"
	"standsreg/internal/repositories"
	"standsreg/internal/validation"
)

type Service interface {
	// Create registers a new company. Duplicate name fails with
	// errs.ErrCompanyNameTaken.
	Create(company *models.Company) (*models.Company, error)

	// Get retrieves one company.
	Get(id uint) (*models.Company, error)

	// List returns companies, optionally only active ones.
	List(offset, limit int, activeOnly bool) ([]models.Company, error)

	// Update applies a partial patch.
	Update(id uint, patch *models.CompanyPatch) (*models.Company, error)

	// Delete removes a company.
	Delete(id uint) error
}

type service struct {
	companies repositories.CompanyRepository
}

func NewService(companies repositories.CompanyRepository) Service {
	return &service{companies: companies}
}

func (s *service) Create(company *models.Company) (*models.Company, error) {
	v := validation.New()
	v.Required("name", company.Name)
	if err := v.Err(); err != nil {
		return nil, err
	}

	if err := s.companies.Create(company); err != nil {
		return nil, err
	}
	return company, nil
}

func (s *service) Get(id uint) (*models.Company, error) {
	return s.companies.GetByID(id)
}

func (s *service) List(offset, limit int, activeOnly bool) ([]models.Company, error) {
	return s.companies.List(offset, limit, activeOnly)
}

func (s *service) Update(id uint, patch *models.CompanyPatch) (*models.Company, error) {
	company, err := s.companies.GetByID(id)
	if err != nil {
		return nil, err
	}

	patch.Apply(company)
	if err := s.companies.Update(company); err != nil {
		return nil, err
	}
	return company, nil
}

func (s *service) Delete(id uint) error {
	return s.companies.Delete(id)
}
