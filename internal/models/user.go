package models

import "time"

// Role is the closed set of user roles. Anything else is rejected at the
// boundary so an invalid role never reaches the database.
type Role string

const (
	RoleApplicant Role = "APPLICANT"
	RoleAdmin     Role = "ADMIN"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleApplicant || r == RoleAdmin
}

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	FirstName    string    `gorm:"size:255" json:"first_name"`
	LastName     string    `gorm:"size:200" json:"last_name"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	Role         Role      `gorm:"size:50;not null;default:'APPLICANT'" json:"role"`
	CompanyID    *uint     `gorm:"index" json:"company_id"`
	CreatedAt    time.Time `json:"created_at"`

	// Owned applications. Deleting a user deletes these and everything
	// scoped under them.
	Applications []Application `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// RegisterUserInput is the payload accepted by POST /register.
type RegisterUserInput struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Password  string `json:"password"`
	CompanyID *uint  `json:"company_id"`
}

// UserPatch enumerates the user fields an admin may change. Nil fields are
// left untouched.
type UserPatch struct {
	Email     *string `json:"email"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Role      *Role   `json:"role"`
	CompanyID *uint   `json:"company_id"`
}

// Apply copies the non-nil patch fields onto u and returns the names of the
// fields that changed.
func (p *UserPatch) Apply(u *User) []string {
	var changed []string
	if p.Email != nil && *p.Email != u.Email {
		u.Email = *p.Email
		changed = append(changed, "email")
	}
	if p.FirstName != nil && *p.FirstName != u.FirstName {
		u.FirstName = *p.FirstName
		changed = append(changed, "first_name")
	}
	if p.LastName != nil && *p.LastName != u.LastName {
		u.LastName = *p.LastName
		changed = append(changed, "last_name")
	}
	if p.Role != nil && *p.Role != u.Role {
		u.Role = *p.Role
		changed = append(changed, "role")
	}
	if p.CompanyID != nil {
		u.CompanyID = p.CompanyID
		changed = append(changed, "company_id")
	}
	return changed
}
