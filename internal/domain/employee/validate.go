package employee

import "regexp"

var (
	cedulaPattern = regexp.MustCompile(`^[0-9]{10}$`)
	textPattern   = regexp.MustCompile(`^[a-zA-Z\s]+$`)
)

// Validate checks a creation candidate against every field rule. The first
// failing field wins; callers get a *ValidationError naming it.
func Validate(c Candidate) error {
	for _, f := range []struct {
		name  string
		value any
	}{
		{"cedula", c.Cedula},
		{"nombre", c.Nombre},
		{"sueldo", c.Sueldo},
		{"departamento", c.Departamento},
		{"cargo", c.Cargo},
	} {
		switch v := f.value.(type) {
		case *string:
			if v == nil {
				return invalid(f.name, ErrMissingField)
			}
		case *float64:
			if v == nil {
				return invalid(f.name, ErrMissingField)
			}
		}
	}
	if err := validateSueldo(*c.Sueldo); err != nil {
		return err
	}
	if err := validateCedula(*c.Cedula); err != nil {
		return err
	}
	for _, f := range []struct {
		name  string
		value string
	}{
		{"nombre", *c.Nombre},
		{"departamento", *c.Departamento},
		{"cargo", *c.Cargo},
	} {
		if err := validateText(f.name, f.value); err != nil {
			return err
		}
	}
	return nil
}

func validateSueldo(sueldo float64) error {
	if sueldo <= 0 {
		return invalid("sueldo", ErrInvalidSalary)
	}
	return nil
}

func validateCedula(cedula string) error {
	if !cedulaPattern.MatchString(cedula) {
		return invalid("cedula", ErrInvalidCedula)
	}
	return nil
}

func validateText(field, value string) error {
	if !textPattern.MatchString(value) {
		return invalid(field, ErrInvalidText)
	}
	return nil
}
