package employee

import "fmt"

// Roster owns the live set of employees. Every mutation validates first,
// then persists the full roster snapshot through the store before the
// in-memory state is replaced, so memory and disk never diverge.
type Roster struct {
	store     Store
	employees []Employee
}

// NewRoster loads the persisted roster. The store treats a missing or
// malformed document as an empty roster; a genuine I/O failure surfaces.
func NewRoster(store Store) (*Roster, error) {
	records, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("load roster: %w", err)
	}
	return &Roster{store: store, employees: records}, nil
}

// Create validates the candidate, rejects duplicate cedulas and appends the
// new employee. The roster is unchanged on any failure.
func (r *Roster) Create(c Candidate) error {
	if err := Validate(c); err != nil {
		return err
	}
	if _, ok := r.indexOf(*c.Cedula); ok {
		return ErrDuplicateCedula
	}
	next := append(r.snapshot(), Employee{
		Cedula:       *c.Cedula,
		Nombre:       *c.Nombre,
		Sueldo:       *c.Sueldo,
		Departamento: *c.Departamento,
		Cargo:        *c.Cargo,
	})
	return r.commit(next)
}

// List returns the employees in insertion order. The slice is a copy;
// mutating it does not touch the roster.
func (r *Roster) List() []Employee {
	return r.snapshot()
}

// Get returns the employee with the given cedula.
func (r *Roster) Get(cedula string) (Employee, error) {
	i, ok := r.indexOf(cedula)
	if !ok {
		return Employee{}, ErrNotFound
	}
	return r.employees[i], nil
}

// Update applies the supplied fields to the employee with the given cedula.
// Each supplied field is re-validated; omitted fields are left untouched.
func (r *Roster) Update(cedula string, ch Changes) error {
	i, ok := r.indexOf(cedula)
	if !ok {
		return ErrNotFound
	}
	next := r.snapshot()
	if err := applyChanges(&next[i], ch); err != nil {
		return err
	}
	return r.commit(next)
}

// Delete removes the employee with the given cedula.
func (r *Roster) Delete(cedula string) error {
	i, ok := r.indexOf(cedula)
	if !ok {
		return ErrNotFound
	}
	next := append(r.snapshot()[:i], r.employees[i+1:]...)
	return r.commit(next)
}

func (r *Roster) indexOf(cedula string) (int, bool) {
	for i, e := range r.employees {
		if e.Cedula == cedula {
			return i, true
		}
	}
	return 0, false
}

func (r *Roster) snapshot() []Employee {
	out := make([]Employee, len(r.employees))
	copy(out, r.employees)
	return out
}

func (r *Roster) commit(next []Employee) error {
	if err := r.store.Save(next); err != nil {
		return fmt.Errorf("save roster: %w", err)
	}
	r.employees = next
	return nil
}
