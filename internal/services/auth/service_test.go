package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	errs "standsreg/internal/errors"
	"standsreg/internal/models"
	"standsreg/internal/validation"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Update(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockUserRepository) List(offset, limit int, companyID *uint) ([]models.User, int64, error) {
	args := m.Called(offset, limit, companyID)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.User), args.Get(1).(int64), args.Error(2)
}

func testConfig() Config {
	return Config{Secret: "test-secret", Algorithm: "HS256", ExpiresMin: 60}
}

func newTestService(t *testing.T, repo *MockUserRepository, cfg Config) Service {
	t.Helper()
	svc, err := NewService(repo, cfg)
	require.NoError(t, err)
	return svc
}

func TestNewService(t *testing.T) {
	_, err := NewService(new(MockUserRepository), Config{Secret: "s", Algorithm: "nonsense"})
	assert.Error(t, err)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("correct horse battery")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery", hash)

	assert.True(t, CheckPassword("correct horse battery", hash))
	assert.False(t, CheckPassword("wrong", hash))
}

func TestRegister(t *testing.T) {
	input := func() *models.RegisterUserInput {
		return &models.RegisterUserInput{
			Email:     "new@example.com",
			FirstName: "Tariro",
			LastName:  "Moyo",
			Password:  "longenough1",
		}
	}

	t.Run("creates an applicant with a hashed password", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc := newTestService(t, repo, testConfig())
		repo.On("GetByEmail", "new@example.com").Return(nil, errs.ErrUserNotFound)
		repo.On("Create", mock.AnythingOfType("*models.User")).Return(nil)

		user, err := svc.Register(input())

		require.NoError(t, err)
		assert.Equal(t, models.RoleApplicant, user.Role)
		assert.NotEmpty(t, user.PasswordHash)
		assert.True(t, CheckPassword("longenough1", user.PasswordHash))
	})

	t.Run("rejects a taken email", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc := newTestService(t, repo, testConfig())
		repo.On("GetByEmail", "new@example.com").Return(&models.User{ID: 1}, nil)

		_, err := svc.Register(input())

		assert.ErrorIs(t, err, errs.ErrEmailTaken)
		repo.AssertNotCalled(t, "Create", mock.Anything)
	})

	t.Run("rejects a short password", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc := newTestService(t, repo, testConfig())

		in := input()
		in.Password = "short"
		_, err := svc.Register(in)

		var verrs validation.Errors
		assert.ErrorAs(t, err, &verrs)
	})
}

func TestLogin(t *testing.T) {
	hash, err := HashPassword("longenough1")
	require.NoError(t, err)
	stored := &models.User{ID: 7, Email: "user@example.com", PasswordHash: hash, Role: models.RoleApplicant}

	t.Run("returns a usable token", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc := newTestService(t, repo, testConfig())
		repo.On("GetByEmail", "user@example.com").Return(stored, nil)
		repo.On("GetByID", uint(7)).Return(stored, nil)

		user, token, err := svc.Login("user@example.com", "longenough1")

		require.NoError(t, err)
		assert.Equal(t, uint(7), user.ID)

		resolved, err := svc.Authenticate(token)
		require.NoError(t, err)
		assert.Equal(t, uint(7), resolved.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc := newTestService(t, repo, testConfig())
		repo.On("GetByEmail", "user@example.com").Return(stored, nil)

		_, _, err := svc.Login("user@example.com", "nope")
		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc := newTestService(t, repo, testConfig())
		repo.On("GetByEmail", "ghost@example.com").Return(nil, errs.ErrUserNotFound)

		_, _, err := svc.Login("ghost@example.com", "whatever")
		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
	})
}

func TestAuthenticate(t *testing.T) {
	stored := &models.User{ID: 7, Email: "user@example.com", Role: models.RoleApplicant}

	t.Run("garbage token", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc := newTestService(t, repo, testConfig())

		_, err := svc.Authenticate("not.a.token")
		assert.ErrorIs(t, err, errs.ErrInvalidToken)
	})

	t.Run("expired token", func(t *testing.T) {
		repo := new(MockUserRepository)
		expired := newTestService(t, repo, Config{Secret: "test-secret", Algorithm: "HS256", ExpiresMin: -1})
		token, err := expired.GenerateToken(stored)
		require.NoError(t, err)

		svc := newTestService(t, repo, testConfig())
		_, err = svc.Authenticate(token)
		assert.ErrorIs(t, err, errs.ErrInvalidToken)
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		repo := new(MockUserRepository)
		other := newTestService(t, repo, Config{Secret: "other-secret", Algorithm: "HS256", ExpiresMin: 60})
		token, err := other.GenerateToken(stored)
		require.NoError(t, err)

		svc := newTestService(t, repo, testConfig())
		_, err = svc.Authenticate(token)
		assert.ErrorIs(t, err, errs.ErrInvalidToken)
	})

	t.Run("valid token for a deleted user", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc := newTestService(t, repo, testConfig())
		token, err := svc.GenerateToken(stored)
		require.NoError(t, err)

		repo.On("GetByID", uint(7)).Return(nil, errs.ErrUserNotFound)

		_, err = svc.Authenticate(token)
		assert.ErrorIs(t, err, errs.ErrInvalidToken)
	})
}
