package application

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	errs "standsreg/internal/errors"
	"standsreg/internal/models"
	"standsreg/internal/validation"
)

type MockApplicationRepository struct {
	mock.Mock
}

func (m *MockApplicationRepository) Create(app *models.Application, entry *models.AuditLog) error {
	args := m.Called(app, entry)
	return args.Error(0)
}

func (m *MockApplicationRepository) GetByID(id uint) (*models.Application, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Application), args.Error(1)
}

func (m *MockApplicationRepository) ListByUser(userID uint) ([]models.Application, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Application), args.Error(1)
}

func (m *MockApplicationRepository) ListAll(offset, limit int) ([]models.Application, int64, error) {
	args := m.Called(offset, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.Application), args.Get(1).(int64), args.Error(2)
}

func (m *MockApplicationRepository) Update(app *models.Application, entry *models.AuditLog) error {
	args := m.Called(app, entry)
	return args.Error(0)
}

func (m *MockApplicationRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockApplicationRepository) AddNextOfKin(kin *models.NextOfKin, entry *models.AuditLog) error {
	args := m.Called(kin, entry)
	return args.Error(0)
}

func (m *MockApplicationRepository) AddSpouse(spouse *models.Spouse, entry *models.AuditLog) error {
	args := m.Called(spouse, entry)
	return args.Error(0)
}

func (m *MockApplicationRepository) AddBeneficiary(ben *models.Beneficiary, entry *models.AuditLog) error {
	args := m.Called(ben, entry)
	return args.Error(0)
}

func (m *MockApplicationRepository) AddPayment(payment *models.Payment, entry *models.AuditLog) error {
	args := m.Called(payment, entry)
	return args.Error(0)
}

func (m *MockApplicationRepository) AddDocument(doc *models.Document, entry *models.AuditLog) error {
	args := m.Called(doc, entry)
	return args.Error(0)
}

func (m *MockApplicationRepository) ListDocuments(applicationID uint) ([]models.Document, error) {
	args := m.Called(applicationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Document), args.Error(1)
}

func (m *MockApplicationRepository) CountByStatus() (map[models.ApplicationStatus]int64, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[models.ApplicationStatus]int64), args.Error(1)
}

func (m *MockApplicationRepository) PaymentSummary() (float64, int64, error) {
	args := m.Called()
	return args.Get(0).(float64), args.Get(1).(int64), args.Error(2)
}

func applicant(id uint) *models.User {
	return &models.User{ID: id, Email: "applicant@example.com", Role: models.RoleApplicant}
}

func admin(id uint) *models.User {
	return &models.User{ID: id, Email: "admin@example.com", Role: models.RoleAdmin}
}

func validInput() *models.CreateApplicationInput {
	return &models.CreateApplicationInput{
		Name:               "Tariro",
		Surname:            "Moyo",
		IDNumber:           "63-123456A18",
		DOB:                models.Date{Time: time.Date(1990, 4, 12, 0, 0, 0, 0, time.UTC)},
		ResidentialAddress: "12 Samora Machel Ave, Harare",
		ContactNumbers:     "+263771234567",
	}
}

func TestCreate(t *testing.T) {
	t.Run("files a pending application with an audit entry", func(t *testing.T) {
		repo := new(MockApplicationRepository)
		svc := NewService(repo)

		repo.On("Create", mock.AnythingOfType("*models.Application"), mock.AnythingOfType("*models.AuditLog")).
			Run(func(args mock.Arguments) {
				app := args.Get(0).(*models.Application)
				app.ID = 42
			}).Return(nil)

		app, err := svc.Create(applicant(7), validInput())

		require.NoError(t, err)
		assert.Equal(t, models.StatusPending, app.Status)
		assert.Equal(t, uint(7), app.UserID)

		entry := repo.Calls[0].Arguments.Get(1).(*models.AuditLog)
		assert.Equal(t, models.ActionApplicationCreated, entry.Action)
		require.NotNil(t, entry.ActorUserID)
		assert.Equal(t, uint(7), *entry.ActorUserID)
		repo.AssertExpectations(t)
	})

	t.Run("rejects an incomplete payload", func(t *testing.T) {
		repo := new(MockApplicationRepository)
		svc := NewService(repo)

		input := validInput()
		input.Name = ""
		input.ContactNumbers = ""

		_, err := svc.Create(applicant(7), input)

		var verrs validation.Errors
		require.ErrorAs(t, err, &verrs)
		assert.Len(t, verrs, 2)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestGetVisible(t *testing.T) {
	owned := &models.Application{ID: 5, UserID: 7, Status: models.StatusPending}

	tests := []struct {
		name    string
		actor   *models.User
		wantErr error
	}{
		{"owner sees own application", applicant(7), nil},
		{"admin sees any application", admin(99), nil},
		{"stranger is refused", applicant(8), errs.ErrNotAuthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockApplicationRepository)
			svc := NewService(repo)
			repo.On("GetByID", uint(5)).Return(owned, nil)

			app, err := svc.GetVisible(tt.actor, 5)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, app)
			} else {
				require.NoError(t, err)
				assert.Equal(t, uint(5), app.ID)
			}
		})
	}

	t.Run("missing application", func(t *testing.T) {
		repo := new(MockApplicationRepository)
		svc := NewService(repo)
		repo.On("GetByID", uint(404)).Return(nil, errs.ErrApplicationNotFound)

		_, err := svc.GetVisible(applicant(7), 404)
		assert.ErrorIs(t, err, errs.ErrApplicationNotFound)
	})
}

func TestUpdateStatus(t *testing.T) {
	t.Run("admin approves a pending application", func(t *testing.T) {
		repo := new(MockApplicationRepository)
		svc := NewService(repo)
		repo.On("GetByID", uint(5)).Return(&models.Application{ID: 5, UserID: 7, Status: models.StatusPending}, nil)
		repo.On("Update", mock.AnythingOfType("*models.Application"), mock.AnythingOfType("*models.AuditLog")).Return(nil)

		app, err := svc.UpdateStatus(admin(1), 5, models.StatusApproved)

		require.NoError(t, err)
		assert.Equal(t, models.StatusApproved, app.Status)

		entry := repo.Calls[1].Arguments.Get(1).(*models.AuditLog)
		assert.Equal(t, models.ActionApplicationStatusChanged, entry.Action)
		assert.Equal(t, "APPROVED", entry.Meta["new_status"])
	})

	t.Run("non-admin is refused before the row is even read", func(t *testing.T) {
		repo := new(MockApplicationRepository)
		svc := NewService(repo)

		_, err := svc.UpdateStatus(applicant(7), 5, models.StatusApproved)

		assert.ErrorIs(t, err, errs.ErrNotAuthorized)
		repo.AssertNotCalled(t, "GetByID", mock.Anything)
	})

	t.Run("terminal applications never move again", func(t *testing.T) {
		for _, status := range []models.ApplicationStatus{models.StatusApproved, models.StatusRejected} {
			repo := new(MockApplicationRepository)
			svc := NewService(repo)
			repo.On("GetByID", uint(5)).Return(&models.Application{ID: 5, Status: status}, nil)

			_, err := svc.UpdateStatus(admin(1), 5, models.StatusRejected)

			assert.ErrorIs(t, err, errs.ErrInvalidTransition)
			repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		}
	})

	t.Run("PENDING is not a transition target", func(t *testing.T) {
		repo := new(MockApplicationRepository)
		svc := NewService(repo)
		repo.On("GetByID", uint(5)).Return(&models.Application{ID: 5, Status: models.StatusPending}, nil)

		_, err := svc.UpdateStatus(admin(1), 5, models.StatusPending)

		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	})
}

func TestRecordPayment(t *testing.T) {
	owned := func() *models.Application {
		return &models.Application{ID: 5, UserID: 7, Status: models.StatusPending}
	}

	t.Run("defaults the currency and audits the amount", func(t *testing.T) {
		repo := new(MockApplicationRepository)
		svc := NewService(repo)
		repo.On("GetByID", uint(5)).Return(owned(), nil)
		repo.On("AddPayment", mock.AnythingOfType("*models.Payment"), mock.AnythingOfType("*models.AuditLog")).Return(nil)

		payment, err := svc.RecordPayment(applicant(7), 5, &models.RecordPaymentInput{
			Amount:        150,
			ReceiptNumber: "RCP-0001",
		})

		require.NoError(t, err)
		assert.Equal(t, "USD", payment.Currency)
		assert.Equal(t, uint(5), payment.ApplicationID)

		entry := repo.Calls[1].Arguments.Get(1).(*models.AuditLog)
		assert.Equal(t, models.ActionPaymentRecorded, entry.Action)
		assert.Equal(t, float64(150), entry.Meta["amount"])
	})

	t.Run("only the owner may pay, admins included", func(t *testing.T) {
		repo := new(MockApplicationRepository)
		svc := NewService(repo)
		repo.On("GetByID", uint(5)).Return(owned(), nil)

		_, err := svc.RecordPayment(admin(1), 5, &models.RecordPaymentInput{Amount: 10, ReceiptNumber: "RCP-0002"})

		assert.ErrorIs(t, err, errs.ErrNotAuthorized)
	})

	t.Run("duplicate receipt numbers surface as a conflict", func(t *testing.T) {
		repo := new(MockApplicationRepository)
		svc := NewService(repo)
		repo.On("GetByID", uint(5)).Return(owned(), nil)
		repo.On("AddPayment", mock.Anything, mock.Anything).Return(errs.ErrDuplicateReceipt)

		_, err := svc.RecordPayment(applicant(7), 5, &models.RecordPaymentInput{Amount: 10, ReceiptNumber: "RCP-0001"})

		assert.ErrorIs(t, err, errs.ErrDuplicateReceipt)
	})

	t.Run("negative amounts are invalid", func(t *testing.T) {
		repo := new(MockApplicationRepository)
		svc := NewService(repo)
		repo.On("GetByID", uint(5)).Return(owned(), nil)

		_, err := svc.RecordPayment(applicant(7), 5, &models.RecordPaymentInput{Amount: -1, ReceiptNumber: "RCP-0003"})

		var verrs validation.Errors
		assert.ErrorAs(t, err, &verrs)
		repo.AssertNotCalled(t, "AddPayment", mock.Anything, mock.Anything)
	})
}

func TestAddDependents(t *testing.T) {
	owned := func() *models.Application {
		return &models.Application{ID: 5, UserID: 7, Status: models.StatusPending}
	}

	t.Run("owner attaches next of kin", func(t *testing.T) {
		repo := new(MockApplicationRepository)
		svc := NewService(repo)
		repo.On("GetByID", uint(5)).Return(owned(), nil)
		repo.On("AddNextOfKin", mock.AnythingOfType("*models.NextOfKin"), mock.AnythingOfType("*models.AuditLog")).Return(nil)

		kin, err := svc.AddNextOfKin(applicant(7), 5, &models.NextOfKin{Name: "Rudo", Relation: "sister"})

		require.NoError(t, err)
		assert.Equal(t, uint(5), kin.ApplicationID)

		entry := repo.Calls[1].Arguments.Get(1).(*models.AuditLog)
		assert.Equal(t, models.ActionNextOfKinAdded, entry.Action)
	})

	t.Run("stranger cannot attach a beneficiary", func(t *testing.T) {
		repo := new(MockApplicationRepository)
		svc := NewService(repo)
		repo.On("GetByID", uint(5)).Return(owned(), nil)

		_, err := svc.AddBeneficiary(applicant(8), 5, &models.Beneficiary{Name: "Chipo"})

		assert.ErrorIs(t, err, errs.ErrNotAuthorized)
		repo.AssertNotCalled(t, "AddBeneficiary", mock.Anything, mock.Anything)
	})

	t.Run("spouse write failure propagates", func(t *testing.T) {
		repo := new(MockApplicationRepository)
		svc := NewService(repo)
		repo.On("GetByID", uint(5)).Return(owned(), nil)
		repo.On("AddSpouse", mock.Anything, mock.Anything).Return(errors.New("db down"))

		_, err := svc.AddSpouse(applicant(7), 5, &models.Spouse{Name: "Tendai"})

		assert.EqualError(t, err, "db down")
	})
}

func TestUpdate(t *testing.T) {
	strPtr := func(s string) *string { return &s }

	t.Run("records which fields changed", func(t *testing.T) {
		repo := new(MockApplicationRepository)
		svc := NewService(repo)
		repo.On("GetByID", uint(5)).Return(&models.Application{ID: 5, UserID: 7, Name: "Tariro", Department: "Roads"}, nil)
		repo.On("Update", mock.AnythingOfType("*models.Application"), mock.AnythingOfType("*models.AuditLog")).Return(nil)

		app, err := svc.Update(applicant(7), 5, &models.ApplicationPatch{
			Department:     strPtr("Water"),
			ContactNumbers: strPtr("+263719999999"),
		})

		require.NoError(t, err)
		assert.Equal(t, "Water", app.Department)

		entry := repo.Calls[1].Arguments.Get(1).(*models.AuditLog)
		assert.Equal(t, models.ActionApplicationUpdated, entry.Action)
		assert.ElementsMatch(t, []interface{}{"contact_numbers", "department"}, entry.Meta["fields"])
	})

	t.Run("a no-op patch writes nothing", func(t *testing.T) {
		repo := new(MockApplicationRepository)
		svc := NewService(repo)
		repo.On("GetByID", uint(5)).Return(&models.Application{ID: 5, UserID: 7, Name: "Tariro"}, nil)

		_, err := svc.Update(applicant(7), 5, &models.ApplicationPatch{Name: strPtr("Tariro")})

		require.NoError(t, err)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestDelete(t *testing.T) {
	t.Run("admin deletes any application", func(t *testing.T) {
		repo := new(MockApplicationRepository)
		svc := NewService(repo)
		repo.On("GetByID", uint(5)).Return(&models.Application{ID: 5, UserID: 7}, nil)
		repo.On("Delete", uint(5)).Return(nil)

		assert.NoError(t, svc.Delete(admin(1), 5))
		repo.AssertExpectations(t)
	})

	t.Run("stranger cannot delete", func(t *testing.T) {
		repo := new(MockApplicationRepository)
		svc := NewService(repo)
		repo.On("GetByID", uint(5)).Return(&models.Application{ID: 5, UserID: 7}, nil)

		err := svc.Delete(applicant(8), 5)

		assert.ErrorIs(t, err, errs.ErrNotAuthorized)
		repo.AssertNotCalled(t, "Delete", mock.Anything)
	})
}
