package models

import "time"

// ApplicationStatus is the application state machine. An application starts
// PENDING; an admin moves it to APPROVED or REJECTED, both terminal.
type ApplicationStatus string

const (
	StatusPending  ApplicationStatus = "PENDING"
	StatusApproved ApplicationStatus = "APPROVED"
	StatusRejected ApplicationStatus = "REJECTED"
)

// Valid reports whether s is a known status.
func (s ApplicationStatus) Valid() bool {
	return s == StatusPending || s == StatusApproved || s == StatusRejected
}

// Terminal reports whether no further transition is allowed out of s.
func (s ApplicationStatus) Terminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// Application is a housing-stand application. It belongs to exactly one user
// for its entire lifetime; dependents, documents and payments are scoped to
// it and removed with it.
type Application struct {
	ID                       uint              `gorm:"primaryKey" json:"id"`
	UserID                   uint              `gorm:"not null;index" json:"user_id"`
	CouncilWaitingListNumber string            `gorm:"size:100" json:"council_waiting_list_number"`
	Name                     string            `gorm:"size:100" json:"name"`
	Surname                  string            `gorm:"size:100" json:"surname"`
	IDNumber                 string            `gorm:"size:100" json:"id_number"`
	DOB                      Date              `json:"dob"`
	ResidentialAddress       string            `gorm:"type:text" json:"residential_address"`
	ContactNumbers           string            `gorm:"size:200" json:"contact_numbers"`
	Employer                 string            `gorm:"size:200;default:'City of Harare'" json:"employer"`
	Department               string            `gorm:"size:200" json:"department"`
	EmploymentNumber         string            `gorm:"size:100" json:"employment_number"`
	EmployerContact          string            `gorm:"size:200" json:"employer_contact"`
	Status                   ApplicationStatus `gorm:"size:50;not null;default:'PENDING'" json:"status"`
	CreatedAt                time.Time         `json:"created_at"`

	NextOfKin     *NextOfKin    `gorm:"constraint:OnDelete:CASCADE" json:"next_of_kin,omitempty"`
	Spouse        *Spouse       `gorm:"constraint:OnDelete:CASCADE" json:"spouse,omitempty"`
	Beneficiaries []Beneficiary `gorm:"constraint:OnDelete:CASCADE" json:"beneficiaries,omitempty"`
	Documents     []Document    `gorm:"constraint:OnDelete:CASCADE" json:"documents,omitempty"`
	Payments      []Payment     `gorm:"constraint:OnDelete:CASCADE" json:"payments,omitempty"`
}

// CreateApplicationInput is the payload accepted by POST /applications.
type CreateApplicationInput struct {
	CouncilWaitingListNumber string `json:"council_waiting_list_number"`
	Name                     string `json:"name"`
	Surname                  string `json:"surname"`
	IDNumber                 string `json:"id_number"`
	DOB                      Date   `json:"dob"`
	ResidentialAddress       string `json:"residential_address"`
	ContactNumbers           string `json:"contact_numbers"`
	Employer                 string `json:"employer"`
	Department               string `json:"department"`
	EmploymentNumber         string `json:"employment_number"`
	EmployerContact          string `json:"employer_contact"`
}

// ApplicationPatch enumerates the mutable application fields for partial
// updates. Status is deliberately absent: it only changes through the admin
// status endpoint.
type ApplicationPatch struct {
	CouncilWaitingListNumber *string `json:"council_waiting_list_number"`
	Name                     *string `json:"name"`
	Surname                  *string `json:"surname"`
	IDNumber                 *string `json:"id_number"`
	DOB                      *Date   `json:"dob"`
	ResidentialAddress       *string `json:"residential_address"`
	ContactNumbers           *string `json:"contact_numbers"`
	Employer                 *string `json:"employer"`
	Department               *string `json:"department"`
	EmploymentNumber         *string `json:"employment_number"`
	EmployerContact          *string `json:"employer_contact"`
}

// Apply copies the non-nil patch fields onto app and returns the names of the
// fields that changed.
func (p *ApplicationPatch) Apply(app *Application) []string {
	var changed []string
	set := func(dst *string, src *string, name string) {
		if src != nil && *src != *dst {
			*dst = *src
			changed = append(changed, name)
		}
	}
	set(&app.CouncilWaitingListNumber, p.CouncilWaitingListNumber, "council_waiting_list_number")
	set(&app.Name, p.Name, "name")
	set(&app.Surname, p.Surname, "surname")
	set(&app.IDNumber, p.IDNumber, "id_number")
	set(&app.ResidentialAddress, p.ResidentialAddress, "residential_address")
	set(&app.ContactNumbers, p.ContactNumbers, "contact_numbers")
	set(&app.Employer, p.Employer, "employer")
	set(&app.Department, p.Department, "department")
	set(&app.EmploymentNumber, p.EmploymentNumber, "employment_number")
	set(&app.EmployerContact, p.EmployerContact, "employer_contact")
	if p.DOB != nil && !p.DOB.Equal(app.DOB.Time) {
		app.DOB = *p.DOB
		changed = append(changed, "dob")
	}
	return changed
}
