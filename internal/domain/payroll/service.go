package payroll

import (
	"fmt"

	"nomina/internal/domain/employee"
)

// Service runs payroll generation and statistics against a payroll store.
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// Generate computes a payroll for the roster snapshot and persists it as a
// new run. No document is written when the roster is empty.
func (s *Service) Generate(employees []employee.Employee, period string) (*Payroll, error) {
	if !ValidPeriod(period) {
		return nil, ErrInvalidPeriod
	}
	if len(employees) == 0 {
		return nil, ErrEmptyRoster
	}
	runID, err := s.store.NextRunID()
	if err != nil {
		return nil, fmt.Errorf("assign run id: %w", err)
	}
	p, err := Build(runID, period, employees)
	if err != nil {
		return nil, err
	}
	if err := s.store.Save(p); err != nil {
		return nil, fmt.Errorf("save payroll: %w", err)
	}
	return p, nil
}

// Report loads the latest stored run for the period and summarizes it. The
// stored document is read back rather than any in-memory payroll, so reports
// work across restarts. Nothing is mutated or persisted.
func (s *Service) Report(period string) (Stats, error) {
	p, err := s.Load(period)
	if err != nil {
		return Stats{}, err
	}
	return Summarize(p), nil
}

// Load returns the latest stored run for the period.
func (s *Service) Load(period string) (*Payroll, error) {
	if !ValidPeriod(period) {
		return nil, ErrInvalidPeriod
	}
	return s.store.Load(period)
}
