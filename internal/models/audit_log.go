package models

import "time"

// Audit actions. One row is written for every state-changing operation on an
// application, inside the same transaction as the write it records.
const (
	ActionApplicationCreated       = "APPLICATION_CREATED"
	ActionApplicationUpdated       = "APPLICATION_UPDATED"
	ActionApplicationStatusChanged = "APPLICATION_STATUS_CHANGED"
	ActionNextOfKinAdded           = "NEXT_OF_KIN_ADDED"
	ActionSpouseAdded              = "SPOUSE_ADDED"
	ActionBeneficiaryAdded         = "BENEFICIARY_ADDED"
	ActionPaymentRecorded          = "PAYMENT_RECORDED"
	ActionDocumentUploaded         = "DOCUMENT_UPLOADED"
)

// AuditLog is append-only. Rows are never updated or deleted; when the acting
// user is deleted the actor reference is nulled, not the row.
type AuditLog struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	ActorUserID *uint     `gorm:"index" json:"actor_user_id"`
	Actor       *User     `gorm:"foreignKey:ActorUserID;constraint:OnDelete:SET NULL" json:"-"`
	Action      string    `gorm:"size:100;not null" json:"action"`
	TargetID    *uint     `gorm:"index" json:"target_id"`
	Meta        JSON      `gorm:"type:jsonb" json:"meta"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewAuditLog builds an entry for action performed by actorID against
// targetID. TargetID may be filled in later for freshly created targets.
func NewAuditLog(actorID uint, action string, targetID uint, meta JSON) *AuditLog {
	entry := &AuditLog{
		ActorUserID: &actorID,
		Action:      action,
		Meta:        meta,
	}
	if targetID != 0 {
		entry.TargetID = &targetID
	}
	return entry
}
