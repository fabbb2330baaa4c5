package errors

var (
	ErrInvalidToken = &DomainError{
		Code:    "INVALID_TOKEN",
		Message: "invalid or expired token",
	}
	ErrInvalidCredentials = &DomainError{
		Code:    "INVALID_CREDENTIALS",
		Message: "invalid credentials",
	}
	ErrEmailTaken = &DomainError{
		Code:    "EMAIL_TAKEN",
		Message: "email already registered",
	}
	ErrUserNotFound = &DomainError{
		Code:    "USER_NOT_FOUND",
		Message: "user not found",
	}
	ErrCompanyNotFound = &DomainError{
		Code:    "COMPANY_NOT_FOUND",
		Message: "company not found",
	}
	ErrCompanyNameTaken = &DomainError{
		Code:    "COMPANY_NAME_TAKEN",
		Message: "company with this name already exists",
	}
)
