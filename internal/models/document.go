package models

// Known document kinds. The column is an open string so new kinds can be
// introduced without a migration; these are the ones the frontend sends.
const (
	DocumentKindIDScan           = "ID_SCAN"
	DocumentKindProofOfResidence = "PROOF_OF_RESIDENCE"
	DocumentKindPayslip          = "PAYSLIP"
	DocumentKindSignature        = "SIGNATURE"
)

// Document is the metadata row for a file held in external blob storage.
type Document struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	ApplicationID uint   `gorm:"not null;index" json:"application_id"`
	Kind          string `gorm:"size:50" json:"kind"`
	URL           string `gorm:"size:500" json:"url"`
}
