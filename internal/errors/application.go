package errors

var (
	ErrApplicationNotFound = &DomainError{
		Code:    "APPLICATION_NOT_FOUND",
		Message: "application not found",
	}
	ErrNotAuthorized = &DomainError{
		Code:    "NOT_AUTHORIZED",
		Message: "not authorized",
	}
	ErrInvalidTransition = &DomainError{
		Code:    "INVALID_STATUS_TRANSITION",
		Message: "application status can no longer change",
	}
	ErrDuplicateReceipt = &DomainError{
		Code:    "DUPLICATE_RECEIPT",
		Message: "receipt number already recorded",
	}
	ErrUploadFailed = &DomainError{
		Code:    "UPLOAD_FAILED",
		Message: "document upload to blob storage failed",
	}
)
