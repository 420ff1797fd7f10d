package payroll

import (
	"math"
	"regexp"

	"nomina/internal/domain/employee"
)

var periodPattern = regexp.MustCompile(`^\d{4}(0[1-9]|1[0-2])$`)

// ValidPeriod reports whether the token is a YYYYMM period.
func ValidPeriod(period string) bool {
	return periodPattern.MatchString(period)
}

// NewDetail computes one payroll line from an employee snapshot. Deductions
// are always derived here, never supplied by the caller, so the
// net = gross - deductions invariant holds by construction.
func NewDetail(id int, emp employee.Employee) Detail {
	gross := emp.Sueldo + Bonus
	iess := round2(emp.Sueldo * SocialSecurityRate)
	deductions := iess + LoanDeduction
	return Detail{
		ID:             id,
		EmployeeName:   emp.Nombre,
		BaseSalary:     emp.Sueldo,
		Bonus:          Bonus,
		Gross:          gross,
		SocialSecurity: iess,
		Loan:           LoanDeduction,
		Deductions:     deductions,
		Net:            gross - deductions,
	}
}

// Append adds a detail and updates the three running totals.
func (p *Payroll) Append(d Detail) {
	p.Details = append(p.Details, d)
	p.TotalGross += d.Gross
	p.TotalDeductions += d.Deductions
	p.TotalNet += d.Net
}

// Build assembles a payroll for the given run ID and period, one detail per
// employee in input order with sequence IDs starting at 1.
func Build(runID int, period string, employees []employee.Employee) (*Payroll, error) {
	if len(employees) == 0 {
		return nil, ErrEmptyRoster
	}
	p := &Payroll{ID: runID, Period: period}
	for i, emp := range employees {
		p.Append(NewDetail(i+1, emp))
	}
	return p, nil
}

// round2 rounds to cents, halves away from zero. Note this differs from
// banker's rounding (half to even); an exact half cent from a
// salary * 0.0945 product rounds up here.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
