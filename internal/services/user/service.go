// Package user covers admin user management: listing, patching and deleting
// accounts. Deleting cascades through everything the user owns; audit rows
// keep their place with the actor nulled by the database.
package user

import (
	"standsreg/internal/models"
	"standsreg/internal/repositories"
	"standsreg/internal/validation"
)

type Service interface {
	// List returns users paginated, optionally filtered by company.
	List(offset, limit int, companyID *uint) ([]models.User, int64, error)

	// Get retrieves one user.
	Get(id uint) (*models.User, error)

	// Update applies a partial patch to a user.
	Update(id uint, patch *models.UserPatch) (*models.User, error)

	// Delete removes the user and all their applications.
	Delete(id uint) error
}

type service struct {
	users repositories.UserRepository
}

func NewService(users repositories.UserRepository) Service {
	return &service{users: users}
}

func (s *service) List(offset, limit int, companyID *uint) ([]models.User, int64, error) {
	return s.users.List(offset, limit, companyID)
}

func (s *service) Get(id uint) (*models.User, error) {
	return s.users.GetByID(id)
}

func (s *service) Update(id uint, patch *models.UserPatch) (*models.User, error) {
	if patch.Role != nil {
		v := validation.New()
		v.Check(patch.Role.Valid(), "role", "must be APPLICANT or ADMIN")
		if err := v.Err(); err != nil {
			return nil, err
		}
	}

	user, err := s.users.GetByID(id)
	if err != nil {
		return nil, err
	}

	if changed := patch.Apply(user); len(changed) == 0 {
		return user, nil
	}
	if err := s.users.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *service) Delete(id uint) error {
	return s.users.Delete(id)
}
