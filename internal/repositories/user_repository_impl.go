package repositories

import (
	"context"
	"errors"
	"log"

	"gorm.io/gorm"

	errs "standsreg/internal/errors"
	"standsreg/internal/models"
	"standsreg/internal/repositories/cache"
)

type userRepository struct {
	db    *gorm.DB
	cache *cache.CacheService
}

// NewUserRepository creates a UserRepository backed by gorm with a Redis
// read-through cache. The cache may be nil (tests, degraded mode).
func NewUserRepository(db *gorm.DB, cacheSvc *cache.CacheService) UserRepository {
	return &userRepository{db: db, cache: cacheSvc}
}

func (r *userRepository) Create(user *models.User) error {
	if err := r.db.Create(user).Error; err != nil {
		if isUniqueViolation(err) {
			return errs.ErrEmailTaken
		}
		return err
	}
	return nil
}

func (r *userRepository) GetByID(id uint) (*models.User, error) {
	if r.cache != nil {
		if user, err := r.cache.GetUserByID(context.Background(), id); err == nil {
			return user, nil
		}
	}

	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrUserNotFound
		}
		return nil, err
	}

	r.cacheUser(&user)
	return &user, nil
}

func (r *userRepository) GetByEmail(email string) (*models.User, error) {
	if r.cache != nil {
		if user, err := r.cache.GetUserByEmail(context.Background(), email); err == nil {
			return user, nil
		}
	}

	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrUserNotFound
		}
		return nil, err
	}

	r.cacheUser(&user)
	return &user, nil
}

func (r *userRepository) Update(user *models.User) error {
	if err := r.db.Save(user).Error; err != nil {
		if isUniqueViolation(err) {
			return errs.ErrEmailTaken
		}
		return err
	}
	r.invalidateUser(user)
	return nil
}

func (r *userRepository) Delete(id uint) error {
	user, err := r.GetByID(id)
	if err != nil {
		return err
	}

	// FK constraints cascade the applications and their dependents, and
	// null out audit actors. A single DELETE keeps that atomic.
	if err := r.db.Delete(&models.User{}, id).Error; err != nil {
		return err
	}
	r.invalidateUser(user)
	return nil
}

func (r *userRepository) List(offset, limit int, companyID *uint) ([]models.User, int64, error) {
	query := r.db.Model(&models.User{})
	if companyID != nil {
		query = query.Where("company_id = ?", *companyID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []models.User
	if err := query.Order("id").Offset(offset).Limit(limit).Find(&users).Error; err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (r *userRepository) cacheUser(user *models.User) {
	if r.cache == nil {
		return
	}
	if err := r.cache.CacheUser(context.Background(), user); err != nil {
		log.Printf("failed to cache user %d: %v", user.ID, err)
	}
}

func (r *userRepository) invalidateUser(user *models.User) {
	if r.cache == nil {
		return
	}
	if err := r.cache.InvalidateUser(context.Background(), user); err != nil {
		log.Printf("failed to invalidate cache for user %d: %v", user.ID, err)
	}
}
