package repositories

import "standsreg/internal/models"

// UserRepository defines user persistence. Reads are served from the Redis
// cache when possible; every mutation invalidates the cached entry.
type UserRepository interface {
	// Create inserts a new user. A duplicate email returns errs.ErrEmailTaken.
	Create(user *models.User) error

	// GetByID retrieves a user by id.
	GetByID(id uint) (*models.User, error)

	// GetByEmail retrieves a user by email.
	GetByEmail(email string) (*models.User, error)

	// Update persists changes to an existing user.
	Update(user *models.User) error

	// Delete removes a user. Owned applications and everything scoped to
	// them go with it; audit rows keep their place with a nulled actor.
	Delete(id uint) error

	// List returns users with pagination, optionally filtered by company.
	List(offset, limit int, companyID *uint) ([]models.User, int64, error)
}
