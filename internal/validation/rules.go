package validation

import "standsreg/internal/models"

// UserRegistration checks the register payload.
func (v *Validator) UserRegistration(input *models.RegisterUserInput) {
	v.Required("email", input.Email)
	if input.Email != "" {
		v.Email("email", input.Email)
	}
	v.Required("first_name", input.FirstName)
	v.Required("last_name", input.LastName)
	v.Required("password", input.Password)
	if input.Password != "" {
		v.MinLength("password", input.Password, 8)
	}
}

// ApplicationCreate checks the identity fields an application cannot be filed
// without.
func (v *Validator) ApplicationCreate(input *models.CreateApplicationInput) {
	v.Required("name", input.Name)
	v.Required("surname", input.Surname)
	v.Required("id_number", input.IDNumber)
	v.Check(!input.DOB.IsZero(), "dob", "is required")
	v.Required("residential_address", input.ResidentialAddress)
	v.Required("contact_numbers", input.ContactNumbers)
}

// Payment checks a payment record before it is written.
func (v *Validator) Payment(input *models.RecordPaymentInput) {
	v.Check(input.Amount >= 0, "amount", "must not be negative")
	v.Required("receipt_number", input.ReceiptNumber)
}
