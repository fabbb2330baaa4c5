package models

// Setting is a global key/value configuration row, admin-editable at runtime.
type Setting struct {
	ID    uint   `gorm:"primaryKey" json:"-"`
	Key   string `gorm:"size:100;uniqueIndex;not null" json:"key"`
	Value string `gorm:"type:text" json:"value"`
}
