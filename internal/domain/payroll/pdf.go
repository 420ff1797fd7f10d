package payroll

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"
)

// ExportPDF writes a payroll register for this run into dir and returns the
// file path.
func (p *Payroll) ExportPDF(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	filePath := filepath.Join(dir, fmt.Sprintf("nomina_%s_%d.pdf", p.Period, p.ID))

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(60, 10, "Payroll Register")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Period: %s    Run: %d", p.Period, p.ID))
	pdf.Ln(10)

	headers := []string{"#", "Employee", "Salary", "Bonus", "Gross", "IESS", "Loan", "Deductions", "Net"}
	widths := []float64{10, 70, 25, 20, 25, 20, 20, 27, 25}
	pdf.SetFont("Helvetica", "B", 10)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, d := range p.Details {
		cells := []string{
			fmt.Sprintf("%d", d.ID),
			d.EmployeeName,
			fmt.Sprintf("%.2f", d.BaseSalary),
			fmt.Sprintf("%.2f", d.Bonus),
			fmt.Sprintf("%.2f", d.Gross),
			fmt.Sprintf("%.2f", d.SocialSecurity),
			fmt.Sprintf("%.2f", d.Loan),
			fmt.Sprintf("%.2f", d.Deductions),
			fmt.Sprintf("%.2f", d.Net),
		}
		for i, c := range cells {
			align := "R"
			if i == 1 {
				align = "L"
			}
			pdf.CellFormat(widths[i], 7, c, "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(widths[0]+widths[1]+widths[2]+widths[3], 7, "Totals", "1", 0, "R", false, 0, "")
	pdf.CellFormat(widths[4], 7, fmt.Sprintf("%.2f", p.TotalGross), "1", 0, "R", false, 0, "")
	pdf.CellFormat(widths[5]+widths[6], 7, "", "1", 0, "R", false, 0, "")
	pdf.CellFormat(widths[7], 7, fmt.Sprintf("%.2f", p.TotalDeductions), "1", 0, "R", false, 0, "")
	pdf.CellFormat(widths[8], 7, fmt.Sprintf("%.2f", p.TotalNet), "1", 0, "R", false, 0, "")

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", err
	}
	return filePath, nil
}
