// Package memory provides in-memory store implementations used by tests and
// ephemeral wiring.
package memory

import (
	"sync"

	"nomina/internal/domain/employee"
	"nomina/internal/domain/payroll"
)

type EmployeeStore struct {
	mu      sync.RWMutex
	records []employee.Employee
	saves   int
}

func NewEmployeeStore() *EmployeeStore {
	return &EmployeeStore{}
}

func (s *EmployeeStore) Load() ([]employee.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]employee.Employee, len(s.records))
	copy(out, s.records)
	return out, nil
}

func (s *EmployeeStore) Save(records []employee.Employee) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = make([]employee.Employee, len(records))
	copy(s.records, records)
	s.saves++
	return nil
}

// Saves reports how many full-document rewrites have happened.
func (s *EmployeeStore) Saves() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.saves
}

type PayrollStore struct {
	mu   sync.RWMutex
	runs map[string][]*payroll.Payroll
	seq  int
}

func NewPayrollStore() *PayrollStore {
	return &PayrollStore{runs: make(map[string][]*payroll.Payroll)}
}

func (s *PayrollStore) NextRunID() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	return s.seq, nil
}

func (s *PayrollStore) Save(p *payroll.Payroll) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := *p
	stored.Details = make([]payroll.Detail, len(p.Details))
	copy(stored.Details, p.Details)
	s.runs[p.Period] = append(s.runs[p.Period], &stored)
	return nil
}

// Load returns the latest run saved for the period.
func (s *PayrollStore) Load(period string) (*payroll.Payroll, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	runs := s.runs[period]
	if len(runs) == 0 {
		return nil, payroll.ErrNotFound
	}
	latest := runs[len(runs)-1]
	out := *latest
	out.Details = make([]payroll.Detail, len(latest.Details))
	copy(out.Details, latest.Details)
	return &out, nil
}

// RunCount reports how many runs are stored for the period.
func (s *PayrollStore) RunCount(period string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.runs[period])
}
