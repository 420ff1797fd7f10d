package payroll

// Amounts are in currency units. The bonus and the loan deduction are flat
// per-employee values applied to every detail of a run; the social security
// deduction is a percentage of base salary rounded to cents.
const (
	Bonus              = 50.0
	LoanDeduction      = 20.0
	SocialSecurityRate = 0.0945

	// HighEarnerThreshold is the base salary above which an employee is
	// listed as a high earner in statistics reports.
	HighEarnerThreshold = 1000.0
)
