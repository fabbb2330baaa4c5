package models

import "time"

// Payment is a record of money received against an application. Receipts are
// issued elsewhere; this table only keeps the books, so the receipt number is
// the global uniqueness anchor.
type Payment struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	ApplicationID uint      `gorm:"not null;index" json:"application_id"`
	Amount        float64   `json:"amount"`
	Currency      string    `gorm:"size:10;default:'USD'" json:"currency"`
	Description   string    `gorm:"size:255" json:"description"`
	ReceiptNumber string    `gorm:"size:100;uniqueIndex" json:"receipt_number"`
	CreatedAt     time.Time `json:"created_at"`
}

// RecordPaymentInput is the payload accepted by POST /applications/:id/payments.
type RecordPaymentInput struct {
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
	Description   string  `json:"description"`
	ReceiptNumber string  `json:"receipt_number"`
}
