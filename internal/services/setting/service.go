// Package setting exposes the admin-editable key/value configuration.
package setting

import (
	"standsreg/internal/repositories"
	"standsreg/internal/validation"
)

type Service interface {
	// All returns every setting.
	All() (map[string]string, error)

	// Set creates or overwrites a key.
	Set(key, value string) error
}

type service struct {
	settings repositories.SettingRepository
}

func NewService(settings repositories.SettingRepository) Service {
	return &service{settings: settings}
}

func (s *service) All() (map[string]string, error) {
	return s.settings.All()
}

func (s *service) Set(key, value string) error {
	v := validation.New()
	v.Required("key", key)
	if err := v.Err(); err != nil {
		return err
	}
	return s.settings.Upsert(key, value)
}
