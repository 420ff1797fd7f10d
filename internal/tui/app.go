// Package tui is the interactive front end. It owns all prompting, input
// parsing and retry behavior; the roster and payroll services only ever see
// well-typed values and report typed failures back.
//
// The app follows the usual bubbletea shape: one model, a state enum for the
// active screen, Update routes messages, View renders the active screen.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"nomina/internal/domain/employee"
	"nomina/internal/domain/payroll"
)

type appState int

const (
	stateMenu appState = iota
	stateForm
	stateRoster
	stateStats
)

type menuAction int

const (
	actionCreate menuAction = iota
	actionList
	actionUpdate
	actionDelete
	actionGenerate
	actionStats
	actionExport
	actionQuit
)

type menuItem struct {
	title  string
	desc   string
	action menuAction
}

func (i menuItem) Title() string       { return i.title }
func (i menuItem) Description() string { return i.desc }
func (i menuItem) FilterValue() string { return i.title }

// App is the whole application state.
type App struct {
	state     appState
	menu      list.Model
	form      *form
	roster    *employee.Roster
	payroll   *payroll.Service
	exportDir string

	stats     payroll.Stats
	statusMsg string
	errMsg    string
	width     int
	height    int
}

func New(roster *employee.Roster, payrollService *payroll.Service, exportDir string) *App {
	items := []list.Item{
		menuItem{"Register employee", "Add a new employee to the roster", actionCreate},
		menuItem{"View roster", "List all employees", actionList},
		menuItem{"Edit employee", "Change an employee's data by cedula", actionUpdate},
		menuItem{"Remove employee", "Delete an employee by cedula", actionDelete},
		menuItem{"Generate payroll", "Run the monthly payroll for the roster", actionGenerate},
		menuItem{"Payroll statistics", "Report over a generated payroll", actionStats},
		menuItem{"Export payroll PDF", "Write the payroll register as a PDF", actionExport},
		menuItem{"Quit", "Exit the program", actionQuit},
	}

	menu := list.New(items, list.NewDefaultDelegate(), 0, 0)
	menu.Title = "Nomina - Payroll Manager"
	menu.SetShowStatusBar(false)
	menu.SetFilteringEnabled(false)

	return &App{
		state:     stateMenu,
		menu:      menu,
		roster:    roster,
		payroll:   payrollService,
		exportDir: exportDir,
	}
}

func (a *App) Init() tea.Cmd {
	return nil
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.menu.SetSize(msg.Width-4, msg.Height-4)
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
	}

	switch a.state {
	case stateMenu:
		return a.updateMenu(msg)
	case stateForm:
		return a.updateForm(msg)
	case stateRoster, stateStats:
		if key, ok := msg.(tea.KeyMsg); ok {
			switch key.String() {
			case "esc", "enter", "q":
				a.state = stateMenu
			}
		}
		return a, nil
	}
	return a, nil
}

func (a *App) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "enter" {
		item, ok := a.menu.SelectedItem().(menuItem)
		if !ok {
			return a, nil
		}
		return a.runAction(item.action)
	}

	var cmd tea.Cmd
	a.menu, cmd = a.menu.Update(msg)
	return a, cmd
}

func (a *App) runAction(action menuAction) (tea.Model, tea.Cmd) {
	a.statusMsg = ""
	a.errMsg = ""

	switch action {
	case actionCreate:
		a.form = newCreateForm(a.submitCreate)
		a.state = stateForm
	case actionList:
		a.state = stateRoster
	case actionUpdate:
		a.form = newUpdateForm(a.submitUpdate)
		a.state = stateForm
	case actionDelete:
		a.form = newDeleteForm(a.submitDelete)
		a.state = stateForm
	case actionGenerate:
		a.form = newPeriodForm("Generate payroll", a.submitGenerate)
		a.state = stateForm
	case actionStats:
		a.form = newPeriodForm("Payroll statistics", a.submitStats)
		a.state = stateForm
	case actionExport:
		a.form = newPeriodForm("Export payroll PDF", a.submitExport)
		a.state = stateForm
	case actionQuit:
		return a, tea.Quit
	}
	return a, nil
}

func (a *App) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
		a.form = nil
		a.state = stateMenu
		return a, nil
	}

	done, cmd := a.form.Update(msg)
	if done {
		status, err := a.form.submit(a.form.values())
		if err != nil {
			// Stay on the form so the user can correct and retry.
			a.form.errMsg = err.Error()
			return a, nil
		}
		a.statusMsg = status
		a.form = nil
		// A submit handler may have moved to another screen (statistics).
		if a.state == stateForm {
			a.state = stateMenu
		}
	}
	return a, cmd
}

func (a *App) submitCreate(values []string) (string, error) {
	candidate, err := parseCandidate(values)
	if err != nil {
		return "", err
	}
	if err := a.roster.Create(candidate); err != nil {
		return "", err
	}
	return fmt.Sprintf("Employee %s registered.", *candidate.Cedula), nil
}

func (a *App) submitUpdate(values []string) (string, error) {
	cedula := values[0]
	changes, err := parseChanges(values[1:])
	if err != nil {
		return "", err
	}
	if changes.Empty() {
		return "", fmt.Errorf("no fields supplied, nothing to change")
	}
	if err := a.roster.Update(cedula, changes); err != nil {
		return "", err
	}
	return fmt.Sprintf("Employee %s updated.", cedula), nil
}

func (a *App) submitDelete(values []string) (string, error) {
	cedula := values[0]
	if err := a.roster.Delete(cedula); err != nil {
		return "", err
	}
	return fmt.Sprintf("Employee %s removed.", cedula), nil
}

func (a *App) submitGenerate(values []string) (string, error) {
	period := defaultPeriod(values[0])
	run, err := a.payroll.Generate(a.roster.List(), period)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Payroll run %d generated for %s (%d employees, net %.2f).",
		run.ID, run.Period, len(run.Details), run.TotalNet), nil
}

func (a *App) submitStats(values []string) (string, error) {
	period := defaultPeriod(values[0])
	stats, err := a.payroll.Report(period)
	if err != nil {
		return "", err
	}
	a.stats = stats
	a.state = stateStats
	return "", nil
}

func (a *App) submitExport(values []string) (string, error) {
	period := defaultPeriod(values[0])
	run, err := a.payroll.Load(period)
	if err != nil {
		return "", err
	}
	path, err := run.ExportPDF(a.exportDir)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Register written to %s.", path), nil
}

// defaultPeriod falls back to the current month when the input is blank.
func defaultPeriod(raw string) string {
	if raw == "" {
		return time.Now().Format("200601")
	}
	return raw
}
