package employee

// Employee is one roster record. The JSON keys match the on-disk roster
// document, so the struct round-trips through the store unchanged.
type Employee struct {
	Cedula       string  `json:"cedula"`
	Nombre       string  `json:"nombre"`
	Sueldo       float64 `json:"sueldo"`
	Departamento string  `json:"departamento"`
	Cargo        string  `json:"cargo"`
}

// Candidate is an unvalidated employee submitted for creation. Nil fields are
// missing, which is a validation failure on create.
type Candidate struct {
	Cedula       *string  `json:"cedula"`
	Nombre       *string  `json:"nombre"`
	Sueldo       *float64 `json:"sueldo"`
	Departamento *string  `json:"departamento"`
	Cargo        *string  `json:"cargo"`
}

// Changes carries the mutable fields of an update request. Nil fields are
// omitted: they are neither validated nor touched. Cedula is immutable and
// deliberately absent.
type Changes struct {
	Nombre       *string  `json:"nombre"`
	Sueldo       *float64 `json:"sueldo"`
	Departamento *string  `json:"departamento"`
	Cargo        *string  `json:"cargo"`
}

func (c Changes) Empty() bool {
	return c.Nombre == nil && c.Sueldo == nil && c.Departamento == nil && c.Cargo == nil
}
