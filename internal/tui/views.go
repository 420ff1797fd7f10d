package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"nomina/internal/domain/payroll"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#5B8DEF")).
			MarginBottom(1)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444444")).
			Padding(1, 2)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#2ECC71"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#AAAAAA"))
)

func (a *App) View() string {
	switch a.state {
	case stateForm:
		return a.formView()
	case stateRoster:
		return a.rosterView()
	case stateStats:
		return a.statsView()
	default:
		return a.menuView()
	}
}

func (a *App) menuView() string {
	view := a.menu.View()
	if a.statusMsg != "" {
		view += "\n" + statusStyle.Render(a.statusMsg)
	}
	if a.errMsg != "" {
		view += "\n" + errorStyle.Render(a.errMsg)
	}
	return view
}

func (a *App) formView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(a.form.title))
	b.WriteString("\n")
	for i, input := range a.form.inputs {
		b.WriteString(fmt.Sprintf("%-14s %s\n", a.form.labels[i]+":", input.View()))
	}
	if a.form.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render(a.form.errMsg))
	}
	b.WriteString("\n" + hintStyle.Render("enter: next/submit - tab: move - esc: back"))
	return boxStyle.Render(b.String())
}

func (a *App) rosterView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Roster"))
	b.WriteString("\n")

	employees := a.roster.List()
	if len(employees) == 0 {
		b.WriteString(hintStyle.Render("No employees registered."))
	} else {
		b.WriteString(fmt.Sprintf("%-12s %-24s %10s  %-16s %-16s\n",
			"CEDULA", "NOMBRE", "SUELDO", "DEPARTAMENTO", "CARGO"))
		for _, e := range employees {
			b.WriteString(fmt.Sprintf("%-12s %-24s %10.2f  %-16s %-16s\n",
				e.Cedula, e.Nombre, e.Sueldo, e.Departamento, e.Cargo))
		}
	}
	b.WriteString("\n" + hintStyle.Render("esc: back"))
	return boxStyle.Render(b.String())
}

func (a *App) statsView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Payroll statistics - " + a.stats.Period))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Employees on payroll:  %d\n", a.stats.TotalEmployees))
	b.WriteString(fmt.Sprintf("Total net paid:        %.2f\n", a.stats.TotalNet))
	b.WriteString(fmt.Sprintf("Average base salary:   %.2f\n", a.stats.AverageSalary))

	earners := "none"
	if len(a.stats.HighEarners) > 0 {
		earners = strings.Join(a.stats.HighEarners, ", ")
	}
	b.WriteString(fmt.Sprintf("High earners (>%.0f):  %s\n", float64(payroll.HighEarnerThreshold), earners))

	if a.stats.MaxNet != nil {
		b.WriteString(fmt.Sprintf("Highest net pay:       %s (%.2f)\n",
			a.stats.MaxNet.EmployeeName, a.stats.MaxNet.Net))
	}
	if a.stats.MinNet != nil {
		b.WriteString(fmt.Sprintf("Lowest net pay:        %s (%.2f)\n",
			a.stats.MinNet.EmployeeName, a.stats.MinNet.Net))
	}
	b.WriteString("\n" + hintStyle.Render("esc: back"))
	return boxStyle.Render(b.String())
}
