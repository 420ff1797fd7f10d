package employee

// fieldSetter validates and applies one mutable field of an update. Omitted
// fields (nil in Changes) are skipped entirely: not validated, not written.
type fieldSetter struct {
	name  string
	apply func(*Employee, Changes) error
}

var fieldSetters = []fieldSetter{
	{"nombre", func(e *Employee, ch Changes) error {
		if ch.Nombre == nil {
			return nil
		}
		if err := validateText("nombre", *ch.Nombre); err != nil {
			return err
		}
		e.Nombre = *ch.Nombre
		return nil
	}},
	{"sueldo", func(e *Employee, ch Changes) error {
		if ch.Sueldo == nil {
			return nil
		}
		if err := validateSueldo(*ch.Sueldo); err != nil {
			return err
		}
		e.Sueldo = *ch.Sueldo
		return nil
	}},
	{"departamento", func(e *Employee, ch Changes) error {
		if ch.Departamento == nil {
			return nil
		}
		if err := validateText("departamento", *ch.Departamento); err != nil {
			return err
		}
		e.Departamento = *ch.Departamento
		return nil
	}},
	{"cargo", func(e *Employee, ch Changes) error {
		if ch.Cargo == nil {
			return nil
		}
		if err := validateText("cargo", *ch.Cargo); err != nil {
			return err
		}
		e.Cargo = *ch.Cargo
		return nil
	}},
}

// applyChanges validates and applies every supplied field in a fixed order.
// It mutates e only on success of each individual setter; the caller works on
// a copy, so a mid-way failure never leaks into the roster.
func applyChanges(e *Employee, ch Changes) error {
	for _, setter := range fieldSetters {
		if err := setter.apply(e, ch); err != nil {
			return err
		}
	}
	return nil
}
