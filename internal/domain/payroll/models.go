package payroll

// Detail is one employee's line in a payroll run. It keeps only a name
// snapshot of the employee plus the computed amounts, so a stored payroll
// stays valid after the roster changes. The JSON keys match the on-disk
// payroll document.
type Detail struct {
	ID             int     `json:"id"`
	EmployeeName   string  `json:"empleado"`
	BaseSalary     float64 `json:"sueldo"`
	Bonus          float64 `json:"bono"`
	Gross          float64 `json:"tot_ing"`
	SocialSecurity float64 `json:"iess"`
	Loan           float64 `json:"prestamo"`
	Deductions     float64 `json:"tot_des"`
	Net            float64 `json:"neto"`
}

// Payroll is one run for one period. Totals are maintained incrementally as
// details are appended, never recomputed from the details afterwards.
type Payroll struct {
	ID              int      `json:"id"`
	Period          string   `json:"aniomes"`
	TotalGross      float64  `json:"tot_ing"`
	TotalDeductions float64  `json:"tot_des"`
	TotalNet        float64  `json:"neto"`
	Details         []Detail `json:"detalles"`
}
