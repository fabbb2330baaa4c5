// Package errors defines the domain error taxonomy. Handlers translate these
// into HTTP statuses; services return them without knowing about HTTP.
package errors

// DomainError is a stable, code-carrying error. Instances are compared by
// identity, so the sentinels below work with errors.Is.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}
