// Package application is the lifecycle manager for housing-stand
// applications: creation, ownership-scoped mutation, the status state
// machine, and the audit trail every state change leaves behind.
package application

import (
	errs "standsreg/internal/errors"
	"standsreg/internal/models"
	"standsreg/internal/repositories"
	"standsreg/internal/validation"
)

type Service interface {
	// Create files a new PENDING application owned by the actor.
	Create(actor *models.User, input *models.CreateApplicationInput) (*models.Application, error)

	// GetVisible returns the application if the actor may see it: owner or
	// admin. Others get errs.ErrNotAuthorized even though the row exists.
	GetVisible(actor *models.User, id uint) (*models.Application, error)

	// ListMine returns the actor's own applications.
	ListMine(actor *models.User) ([]models.Application, error)

	// ListAll returns every application, paginated. Admin-gated at the
	// route.
	ListAll(offset, limit int) ([]models.Application, int64, error)

	// AddNextOfKin / AddSpouse / AddBeneficiary attach dependents. Owner
	// only.
	AddNextOfKin(actor *models.User, applicationID uint, kin *models.NextOfKin) (*models.NextOfKin, error)
	AddSpouse(actor *models.User, applicationID uint, spouse *models.Spouse) (*models.Spouse, error)
	AddBeneficiary(actor *models.User, applicationID uint, ben *models.Beneficiary) (*models.Beneficiary, error)

	// RecordPayment books a payment against the application. Owner only.
	// A duplicate receipt number fails with errs.ErrDuplicateReceipt.
	RecordPayment(actor *models.User, applicationID uint, input *models.RecordPaymentInput) (*models.Payment, error)

	// UpdateStatus moves a PENDING application to APPROVED or REJECTED.
	// Admin only; the sole path that mutates status.
	UpdateStatus(actor *models.User, applicationID uint, status models.ApplicationStatus) (*models.Application, error)

	// Update applies a partial patch. Owner or admin.
	Update(actor *models.User, applicationID uint, patch *models.ApplicationPatch) (*models.Application, error)

	// Delete removes the application and everything scoped to it. Owner or
	// admin.
	Delete(actor *models.User, applicationID uint) error
}

type service struct {
	apps repositories.ApplicationRepository
}

// NewService wires the lifecycle manager.
func NewService(apps repositories.ApplicationRepository) Service {
	return &service{apps: apps}
}

func (s *service) Create(actor *models.User, input *models.CreateApplicationInput) (*models.Application, error) {
	v := validation.New()
	v.ApplicationCreate(input)
	if err := v.Err(); err != nil {
		return nil, err
	}

	app := &models.Application{
		UserID:                   actor.ID,
		CouncilWaitingListNumber: input.CouncilWaitingListNumber,
		Name:                     input.Name,
		Surname:                  input.Surname,
		IDNumber:                 input.IDNumber,
		DOB:                      input.DOB,
		ResidentialAddress:       input.ResidentialAddress,
		ContactNumbers:           input.ContactNumbers,
		Employer:                 input.Employer,
		Department:               input.Department,
		EmploymentNumber:         input.EmploymentNumber,
		EmployerContact:          input.EmployerContact,
		Status:                   models.StatusPending,
	}

	entry := models.NewAuditLog(actor.ID, models.ActionApplicationCreated, 0, models.JSON{
		"name":    app.Name,
		"surname": app.Surname,
	})
	if err := s.apps.Create(app, entry); err != nil {
		return nil, err
	}
	return app, nil
}

func (s *service) GetVisible(actor *models.User, id uint) (*models.Application, error) {
	return s.loadVisible(actor, id)
}

func (s *service) ListMine(actor *models.User) ([]models.Application, error) {
	return s.apps.ListByUser(actor.ID)
}

func (s *service) ListAll(offset, limit int) ([]models.Application, int64, error) {
	return s.apps.ListAll(offset, limit)
}

func (s *service) AddNextOfKin(actor *models.User, applicationID uint, kin *models.NextOfKin) (*models.NextOfKin, error) {
	app, err := s.loadOwned(actor, applicationID)
	if err != nil {
		return nil, err
	}

	kin.ApplicationID = app.ID
	entry := models.NewAuditLog(actor.ID, models.ActionNextOfKinAdded, app.ID, models.JSON{})
	if err := s.apps.AddNextOfKin(kin, entry); err != nil {
		return nil, err
	}
	return kin, nil
}

func (s *service) AddSpouse(actor *models.User, applicationID uint, spouse *models.Spouse) (*models.Spouse, error) {
	app, err := s.loadOwned(actor, applicationID)
	if err != nil {
		return nil, err
	}

	spouse.ApplicationID = app.ID
	entry := models.NewAuditLog(actor.ID, models.ActionSpouseAdded, app.ID, models.JSON{})
	if err := s.apps.AddSpouse(spouse, entry); err != nil {
		return nil, err
	}
	return spouse, nil
}

func (s *service) AddBeneficiary(actor *models.User, applicationID uint, ben *models.Beneficiary) (*models.Beneficiary, error) {
	app, err := s.loadOwned(actor, applicationID)
	if err != nil {
		return nil, err
	}

	ben.ApplicationID = app.ID
	entry := models.NewAuditLog(actor.ID, models.ActionBeneficiaryAdded, app.ID, models.JSON{})
	if err := s.apps.AddBeneficiary(ben, entry); err != nil {
		return nil, err
	}
	return ben, nil
}

func (s *service) RecordPayment(actor *models.User, applicationID uint, input *models.RecordPaymentInput) (*models.Payment, error) {
	app, err := s.loadOwned(actor, applicationID)
	if err != nil {
		return nil, err
	}

	v := validation.New()
	v.Payment(input)
	if err := v.Err(); err != nil {
		return nil, err
	}

	payment := &models.Payment{
		ApplicationID: app.ID,
		Amount:        input.Amount,
		Currency:      input.Currency,
		Description:   input.Description,
		ReceiptNumber: input.ReceiptNumber,
	}
	if payment.Currency == "" {
		payment.Currency = "USD"
	}

	entry := models.NewAuditLog(actor.ID, models.ActionPaymentRecorded, app.ID, models.JSON{
		"amount":   payment.Amount,
		"currency": payment.Currency,
	})
	if err := s.apps.AddPayment(payment, entry); err != nil {
		return nil, err
	}
	return payment, nil
}

func (s *service) UpdateStatus(actor *models.User, applicationID uint, status models.ApplicationStatus) (*models.Application, error) {
	if actor.Role != models.RoleAdmin {
		return nil, errs.ErrNotAuthorized
	}

	app, err := s.apps.GetByID(applicationID)
	if err != nil {
		return nil, err
	}

	// PENDING is the only state with outgoing edges, and APPROVED/REJECTED
	// the only targets.
	if app.Status != models.StatusPending || !status.Terminal() {
		return nil, errs.ErrInvalidTransition
	}

	app.Status = status
	entry := models.NewAuditLog(actor.ID, models.ActionApplicationStatusChanged, app.ID, models.JSON{
		"new_status": string(status),
	})
	if err := s.apps.Update(app, entry); err != nil {
		return nil, err
	}
	return app, nil
}

func (s *service) Update(actor *models.User, applicationID uint, patch *models.ApplicationPatch) (*models.Application, error) {
	app, err := s.loadVisible(actor, applicationID)
	if err != nil {
		return nil, err
	}

	changed := patch.Apply(app)
	if len(changed) == 0 {
		return app, nil
	}

	fields := make([]interface{}, len(changed))
	for i, f := range changed {
		fields[i] = f
	}
	entry := models.NewAuditLog(actor.ID, models.ActionApplicationUpdated, app.ID, models.JSON{
		"fields": fields,
	})
	if err := s.apps.Update(app, entry); err != nil {
		return nil, err
	}
	return app, nil
}

func (s *service) Delete(actor *models.User, applicationID uint) error {
	app, err := s.loadVisible(actor, applicationID)
	if err != nil {
		return err
	}
	return s.apps.Delete(app.ID)
}

// loadOwned fetches the application and requires the actor to be its owner.
// Admins do not bypass this: dependents and payments are filed by the
// applicant.
func (s *service) loadOwned(actor *models.User, id uint) (*models.Application, error) {
	app, err := s.apps.GetByID(id)
	if err != nil {
		return nil, err
	}
	if app.UserID != actor.ID {
		return nil, errs.ErrNotAuthorized
	}
	return app, nil
}

// loadVisible fetches the application and requires the actor to be its owner
// or an admin.
func (s *service) loadVisible(actor *models.User, id uint) (*models.Application, error) {
	app, err := s.apps.GetByID(id)
	if err != nil {
		return nil, err
	}
	if app.UserID != actor.ID && actor.Role != models.RoleAdmin {
		return nil, errs.ErrNotAuthorized
	}
	return app, nil
}
