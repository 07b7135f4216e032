package services

import "fmt"

// ValidationError reports a submission with unresolved mandatory fields.
// Count carries the number of offending records so the caller can show it.
type ValidationError struct {
	Message string
	Count   int
}

func (e *ValidationError) Error() string {
	return e.Message
}

// AuthorizationError reports an actor attempting an action their role or the
// session's lock state forbids. No state is mutated.
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// NotFoundError reports an operation against a record that does not exist.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.ID)
}

// AuthenticationError is deliberately generic: it never reveals which factor
// was wrong.
type AuthenticationError struct{}

func (e *AuthenticationError) Error() string {
	return "invalid credentials"
}
