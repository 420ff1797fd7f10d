package payroll

// Stats are the derived metrics over one stored payroll run. MaxNet and
// MinNet are nil when the payroll has no details.
type Stats struct {
	Period         string   `json:"period"`
	TotalEmployees int      `json:"totalEmployees"`
	TotalNet       float64  `json:"totalNet"`
	AverageSalary  float64  `json:"averageSalary"`
	HighEarners    []string `json:"highEarners"`
	MaxNet         *Detail  `json:"maxNet,omitempty"`
	MinNet         *Detail  `json:"minNet,omitempty"`
}

// Summarize computes statistics over a payroll without mutating it. Ties on
// net pay resolve to the first detail in order, for both extremes.
func Summarize(p *Payroll) Stats {
	stats := Stats{
		Period:         p.Period,
		TotalEmployees: len(p.Details),
		HighEarners:    []string{},
	}
	for i := range p.Details {
		d := p.Details[i]
		stats.TotalNet += d.Net
		stats.AverageSalary += d.BaseSalary
		if d.BaseSalary > HighEarnerThreshold {
			stats.HighEarners = append(stats.HighEarners, d.EmployeeName)
		}
		if stats.MaxNet == nil || d.Net > stats.MaxNet.Net {
			stats.MaxNet = &p.Details[i]
		}
		if stats.MinNet == nil || d.Net < stats.MinNet.Net {
			stats.MinNet = &p.Details[i]
		}
	}
	if stats.TotalEmployees > 0 {
		stats.AverageSalary /= float64(stats.TotalEmployees)
	}
	return stats
}
