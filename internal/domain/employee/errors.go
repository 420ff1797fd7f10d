package employee

import "errors"

var (
	ErrMissingField    = errors.New("required field is missing")
	ErrInvalidSalary   = errors.New("sueldo must be a positive number")
	ErrInvalidCedula   = errors.New("cedula must be exactly 10 digits")
	ErrInvalidText     = errors.New("field may only contain letters and spaces")
	ErrDuplicateCedula = errors.New("an employee with that cedula already exists")
	ErrNotFound        = errors.New("employee not found")
)

// ValidationError reports which field failed and why. It unwraps to one of
// the sentinel errors above so callers can branch with errors.Is.
type ValidationError struct {
	Field string
	Kind  error
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Kind.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Kind
}

func invalid(field string, kind error) error {
	return &ValidationError{Field: field, Kind: kind}
}
