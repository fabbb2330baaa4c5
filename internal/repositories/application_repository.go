package repositories

import "standsreg/internal/models"

// ApplicationRepository persists applications and everything scoped to them.
// Methods that change state take the audit entry to record alongside; the
// entity write and its audit row commit in one transaction or not at all.
type ApplicationRepository interface {
	// Create inserts a new application and its audit entry. The entry's
	// target id is filled in from the generated application id.
	Create(app *models.Application, entry *models.AuditLog) error

	// GetByID retrieves an application. errs.ErrApplicationNotFound when
	// absent.
	GetByID(id uint) (*models.Application, error)

	// ListByUser returns all applications owned by a user.
	ListByUser(userID uint) ([]models.Application, error)

	// ListAll returns applications paginated, oldest first, with the total.
	ListAll(offset, limit int) ([]models.Application, int64, error)

	// Update saves the full application row plus its audit entry.
	Update(app *models.Application, entry *models.AuditLog) error

	// Delete removes an application; dependents, documents and payments
	// cascade with it.
	Delete(id uint) error

	// AddNextOfKin / AddSpouse / AddBeneficiary attach a dependent record
	// together with its audit entry. The created record's id is added to
	// the entry metadata.
	AddNextOfKin(kin *models.NextOfKin, entry *models.AuditLog) error
	AddSpouse(spouse *models.Spouse, entry *models.AuditLog) error
	AddBeneficiary(ben *models.Beneficiary, entry *models.AuditLog) error

	// AddPayment records a payment. A duplicate receipt number returns
	// errs.ErrDuplicateReceipt and nothing is written.
	AddPayment(payment *models.Payment, entry *models.AuditLog) error

	// AddDocument records an already-uploaded document's metadata.
	AddDocument(doc *models.Document, entry *models.AuditLog) error

	// ListDocuments returns the documents of one application.
	ListDocuments(applicationID uint) ([]models.Document, error)

	// CountByStatus aggregates applications per status.
	CountByStatus() (map[models.ApplicationStatus]int64, error)

	// PaymentSummary returns total amount and count across all payments.
	// Total is zero when there are none.
	PaymentSummary() (total float64, count int64, err error)
}
