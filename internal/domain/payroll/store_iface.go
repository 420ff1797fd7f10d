package payroll

// Store persists payroll runs. Run IDs come from a monotonic counter owned by
// the store so that regenerating a period appends a new run instead of
// silently overwriting the previous one. Load returns the latest run for the
// period, or ErrNotFound.
type Store interface {
	NextRunID() (int, error)
	Save(p *Payroll) error
	Load(period string) (*Payroll, error)
}
