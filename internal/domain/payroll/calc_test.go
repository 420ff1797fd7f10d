package payroll

import (
	"errors"
	"testing"

	"nomina/internal/domain/employee"
)

func TestNewDetailArithmetic(t *testing.T) {
	emp := employee.Employee{Cedula: "0912345678", Nombre: "Maria Lopez", Sueldo: 1000}

	d := NewDetail(1, emp)

	if d.Gross != 1050 {
		t.Fatalf("expected gross 1050, got %v", d.Gross)
	}
	if d.SocialSecurity != 94.5 {
		t.Fatalf("expected iess 94.5, got %v", d.SocialSecurity)
	}
	if d.Deductions != 114.5 {
		t.Fatalf("expected deductions 114.5, got %v", d.Deductions)
	}
	if d.Net != 935.5 {
		t.Fatalf("expected net 935.5, got %v", d.Net)
	}
	if d.Net != d.Gross-d.Deductions {
		t.Fatalf("net invariant broken: %v != %v - %v", d.Net, d.Gross, d.Deductions)
	}
	if d.EmployeeName != "Maria Lopez" {
		t.Fatalf("expected name snapshot, got %q", d.EmployeeName)
	}
}

func TestSocialSecurityRoundsToCents(t *testing.T) {
	d := NewDetail(1, employee.Employee{Nombre: "X", Sueldo: 1234.56})
	// 1234.56 * 0.0945 = 116.66592, rounds to 116.67
	if d.SocialSecurity != 116.67 {
		t.Fatalf("expected iess 116.67, got %v", d.SocialSecurity)
	}
}

func TestBuildTotals(t *testing.T) {
	employees := []employee.Employee{
		{Cedula: "0912345678", Nombre: "Maria Lopez", Sueldo: 1000},
		{Cedula: "0998765432", Nombre: "Pedro Andrade", Sueldo: 855.23},
	}

	p, err := Build(7, "202609", employees)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ID != 7 || p.Period != "202609" {
		t.Fatalf("unexpected run header: %+v", p)
	}
	if len(p.Details) != 2 {
		t.Fatalf("expected 2 details, got %d", len(p.Details))
	}
	if p.Details[0].ID != 1 || p.Details[1].ID != 2 {
		t.Fatalf("detail ids must start at 1 in input order, got %d and %d", p.Details[0].ID, p.Details[1].ID)
	}

	wantGross := p.Details[0].Gross + p.Details[1].Gross
	wantDeductions := p.Details[0].Deductions + p.Details[1].Deductions
	wantNet := p.Details[0].Net + p.Details[1].Net
	if p.TotalGross != wantGross {
		t.Fatalf("expected total gross %v, got %v", wantGross, p.TotalGross)
	}
	if p.TotalDeductions != wantDeductions {
		t.Fatalf("expected total deductions %v, got %v", wantDeductions, p.TotalDeductions)
	}
	if p.TotalNet != wantNet {
		t.Fatalf("expected total net %v, got %v", wantNet, p.TotalNet)
	}
}

func TestTotalNetSum(t *testing.T) {
	p := &Payroll{}
	p.Append(Detail{Net: 935.5, Gross: 1050, Deductions: 114.5})
	p.Append(Detail{Net: 800.0, Gross: 900, Deductions: 100})
	if p.TotalNet != 1735.5 {
		t.Fatalf("expected total net 1735.5, got %v", p.TotalNet)
	}
}

func TestBuildEmptyRoster(t *testing.T) {
	_, err := Build(1, "202609", nil)
	if !errors.Is(err, ErrEmptyRoster) {
		t.Fatalf("expected ErrEmptyRoster, got %v", err)
	}
}

func TestValidPeriod(t *testing.T) {
	for _, valid := range []string{"202601", "202612", "199909"} {
		if !ValidPeriod(valid) {
			t.Fatalf("expected %q to be valid", valid)
		}
	}
	for _, invalid := range []string{"", "2026", "202613", "202600", "2026-01", "abc123"} {
		if ValidPeriod(invalid) {
			t.Fatalf("expected %q to be invalid", invalid)
		}
	}
}
