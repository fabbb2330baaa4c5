// Command admin_seed creates or repairs the administrator account from
// ADMIN_EMAIL and ADMIN_PASSWORD. Safe to run repeatedly.
package main

import (
	"errors"
	"log"

	"standsreg/internal/config"
	errs "standsreg/internal/errors"
	"standsreg/internal/models"
	"standsreg/internal/repositories"
	"standsreg/internal/services/auth"
)

func main() {
	config.LoadEnv()
	cfg := config.Load()

	email := config.GetEnv("ADMIN_EMAIL", "admin@example.com")
	password := config.GetEnv("ADMIN_PASSWORD", "")
	if password == "" {
		log.Fatal("ADMIN_PASSWORD must be set")
	}

	db, err := repositories.InitDB(cfg)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}

	userRepo := repositories.NewUserRepository(db, nil)

	hashed, err := auth.HashPassword(password)
	if err != nil {
		log.Fatalf("hashing password failed: %v", err)
	}

	existing, err := userRepo.GetByEmail(email)
	switch {
	case err == nil:
		existing.Role = models.RoleAdmin
		existing.PasswordHash = hashed
		if err := userRepo.Update(existing); err != nil {
			log.Fatalf("updating admin failed: %v", err)
		}
		log.Printf("admin %s updated (id %d)", email, existing.ID)
	case errors.Is(err, errs.ErrUserNotFound):
		admin := &models.User{
			Email:        email,
			FirstName:    "System",
			LastName:     "Administrator",
			PasswordHash: hashed,
			Role:         models.RoleAdmin,
		}
		if err := userRepo.Create(admin); err != nil {
			log.Fatalf("creating admin failed: %v", err)
		}
		log.Printf("admin %s created (id %d)", email, admin.ID)
	default:
		log.Fatalf("looking up admin failed: %v", err)
	}
}
