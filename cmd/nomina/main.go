package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"nomina/internal/domain/employee"
	"nomina/internal/domain/payroll"
	"nomina/internal/platform/config"
	"nomina/internal/store/jsonfile"
	"nomina/internal/tui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	employeeStore, err := jsonfile.NewEmployeeStore(cfg.DataDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open employee store: %v\n", err)
		os.Exit(1)
	}
	payrollStore, err := jsonfile.NewPayrollStore(cfg.DataDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open payroll store: %v\n", err)
		os.Exit(1)
	}

	roster, err := employee.NewRoster(employeeStore)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load roster: %v\n", err)
		os.Exit(1)
	}

	app := tui.New(roster, payroll.NewService(payrollStore), cfg.ExportDir)
	program := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error running program: %v\n", err)
		os.Exit(1)
	}
}
