// Package auth owns credentials and tokens: bcrypt password hashing, JWT
// issuance with a configurable algorithm and lifetime, and resolution of a
// bearer token back to the acting user.
package auth

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	errs "standsreg/internal/errors"
	"standsreg/internal/models"
	"standsreg/internal/repositories"
	"standsreg/internal/validation"
)

type Service interface {
	// Register creates an APPLICANT account. Duplicate email fails with
	// errs.ErrEmailTaken.
	Register(input *models.RegisterUserInput) (*models.User, error)

	// Login verifies credentials and returns the user plus a bearer token.
	Login(email, password string) (*models.User, string, error)

	// GenerateToken issues a signed token for the user.
	GenerateToken(user *models.User) (string, error)

	// Authenticate resolves a token to the acting user. Every failure mode
	// (bad signature, expiry, malformed subject, unknown user) is
	// errs.ErrInvalidToken.
	Authenticate(tokenString string) (*models.User, error)
}

// Config carries the token parameters. Built from the top-level config once
// at startup.
type Config struct {
	Secret     string
	Algorithm  string
	ExpiresMin int
}

type service struct {
	users  repositories.UserRepository
	cfg    Config
	method jwt.SigningMethod
}

// NewService wires the credential service. The algorithm name must be one
// golang-jwt knows (HS256, HS384, ...).
func NewService(users repositories.UserRepository, cfg Config) (Service, error) {
	method := jwt.GetSigningMethod(cfg.Algorithm)
	if method == nil {
		return nil, fmt.Errorf("unknown signing algorithm %q", cfg.Algorithm)
	}
	return &service{users: users, cfg: cfg, method: method}, nil
}

// HashPassword hashes a plaintext password with bcrypt.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword reports whether password matches the stored hash.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func (s *service) Register(input *models.RegisterUserInput) (*models.User, error) {
	v := validation.New()
	v.UserRegistration(input)
	if err := v.Err(); err != nil {
		return nil, err
	}

	if _, err := s.users.GetByEmail(input.Email); err == nil {
		return nil, errs.ErrEmailTaken
	}

	hashed, err := HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:        input.Email,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		PasswordHash: hashed,
		Role:         models.RoleApplicant,
		CompanyID:    input.CompanyID,
	}
	if err := s.users.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *service) Login(email, password string) (*models.User, string, error) {
	user, err := s.users.GetByEmail(email)
	if err != nil {
		log.Printf("login failed: no user for %s", email)
		return nil, "", errs.ErrInvalidCredentials
	}

	if !CheckPassword(password, user.PasswordHash) {
		log.Printf("login failed: bad password for user %d", user.ID)
		return nil, "", errs.ErrInvalidCredentials
	}

	token, err := s.GenerateToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *service) GenerateToken(user *models.User) (string, error) {
	now := time.Now()
	claims := models.UserClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(user.ID), 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(s.cfg.ExpiresMin) * time.Minute)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "standsreg-api",
		},
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	}
	return jwt.NewWithClaims(s.method, claims).SignedString([]byte(s.cfg.Secret))
}

func (s *service) Authenticate(tokenString string) (*models.User, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.UserClaims{}, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != s.method.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.cfg.Secret), nil
	})
	if err != nil || !token.Valid {
		return nil, errs.ErrInvalidToken
	}

	claims, ok := token.Claims.(*models.UserClaims)
	if !ok {
		return nil, errs.ErrInvalidToken
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return nil, errs.ErrInvalidToken
	}
	id, err := strconv.ParseUint(sub, 10, 32)
	if err != nil {
		return nil, errs.ErrInvalidToken
	}

	user, err := s.users.GetByID(uint(id))
	if err != nil {
		return nil, errs.ErrInvalidToken
	}
	return user, nil
}
