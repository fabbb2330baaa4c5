package models

import "time"

// Company is an employer applicants pick at registration time. Listed
// publicly; managed by admins.
type Company struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"size:255;uniqueIndex;not null" json:"name"`
	Description  string    `gorm:"type:text" json:"description"`
	ContactEmail string    `gorm:"size:255" json:"contact_email"`
	ContactPhone string    `gorm:"size:50" json:"contact_phone"`
	Address      string    `gorm:"type:text" json:"address"`
	IsActive     bool      `gorm:"default:true" json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

// CompanyPatch enumerates the mutable company fields.
type CompanyPatch struct {
	Name         *string `json:"name"`
	Description  *string `json:"description"`
	ContactEmail *string `json:"contact_email"`
	ContactPhone *string `json:"contact_phone"`
	Address      *string `json:"address"`
	IsActive     *bool   `json:"is_active"`
}

// Apply copies the non-nil patch fields onto c.
func (p *CompanyPatch) Apply(c *Company) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Description != nil {
		c.Description = *p.Description
	}
	if p.ContactEmail != nil {
		c.ContactEmail = *p.ContactEmail
	}
	if p.ContactPhone != nil {
		c.ContactPhone = *p.ContactPhone
	}
	if p.Address != nil {
		c.Address = *p.Address
	}
	if p.IsActive != nil {
		c.IsActive = *p.IsActive
	}
}
