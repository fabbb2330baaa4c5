package models

// Dependent records are scoped to a single application and have no lifecycle
// of their own: they are created through the application they belong to and
// removed when it is deleted.

type NextOfKin struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	ApplicationID uint   `gorm:"not null;uniqueIndex" json:"application_id"`
	Name          string `gorm:"size:100" json:"name"`
	Surname       string `gorm:"size:100" json:"surname"`
	IDNumber      string `gorm:"size:100" json:"id_number"`
	DOB           Date   `json:"dob"`
	Relation      string `gorm:"size:50" json:"relation"`
	Profession    string `gorm:"size:100" json:"profession"`
	Address       string `gorm:"type:text" json:"address"`
	Cell          string `gorm:"size:50" json:"cell"`
}

type Spouse struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	ApplicationID uint   `gorm:"not null;uniqueIndex" json:"application_id"`
	Name          string `gorm:"size:100" json:"name"`
	Surname       string `gorm:"size:100" json:"surname"`
	IDNumber      string `gorm:"size:100" json:"id_number"`
	DOB           Date   `json:"dob"`
}

type Beneficiary struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	ApplicationID uint   `gorm:"not null;index" json:"application_id"`
	Name          string `gorm:"size:100" json:"name"`
	DOB           Date   `json:"dob"`
	IDNumber      string `gorm:"size:100" json:"id_number"`
}
