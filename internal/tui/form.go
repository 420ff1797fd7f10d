package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"nomina/internal/domain/employee"
)

// form is a vertical stack of labeled text inputs. Enter on the last input
// submits; tab/enter advance, shift+tab goes back, esc is handled by the app.
type form struct {
	title  string
	labels []string
	inputs []textinput.Model
	focus  int
	errMsg string
	submit func(values []string) (string, error)
}

func newForm(title string, fields []string, placeholders []string, submit func([]string) (string, error)) *form {
	inputs := make([]textinput.Model, len(fields))
	for i := range fields {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.CharLimit = 64
		if i == 0 {
			ti.Focus()
		}
		inputs[i] = ti
	}
	return &form{title: title, labels: fields, inputs: inputs, submit: submit}
}

func newCreateForm(submit func([]string) (string, error)) *form {
	return newForm(
		"Register employee",
		[]string{"Cedula", "Nombre", "Sueldo", "Departamento", "Cargo"},
		[]string{"10 digits", "letters and spaces", "e.g. 1200.50", "letters and spaces", "letters and spaces"},
		submit,
	)
}

func newUpdateForm(submit func([]string) (string, error)) *form {
	return newForm(
		"Edit employee",
		[]string{"Cedula", "Nombre", "Sueldo", "Departamento", "Cargo"},
		[]string{"10 digits", "blank to keep", "blank to keep", "blank to keep", "blank to keep"},
		submit,
	)
}

func newDeleteForm(submit func([]string) (string, error)) *form {
	return newForm(
		"Remove employee",
		[]string{"Cedula"},
		[]string{"10 digits"},
		submit,
	)
}

func newPeriodForm(title string, submit func([]string) (string, error)) *form {
	return newForm(
		title,
		[]string{"Period"},
		[]string{"YYYYMM, blank for current month"},
		submit,
	)
}

// Update advances the form. It reports done=true when the user submits from
// the last input.
func (f *form) Update(msg tea.Msg) (done bool, cmd tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter":
			if f.focus == len(f.inputs)-1 {
				return true, nil
			}
			f.setFocus(f.focus + 1)
			return false, nil
		case "tab", "down":
			f.setFocus((f.focus + 1) % len(f.inputs))
			return false, nil
		case "shift+tab", "up":
			f.setFocus((f.focus - 1 + len(f.inputs)) % len(f.inputs))
			return false, nil
		}
	}

	var cmds []tea.Cmd
	for i := range f.inputs {
		var c tea.Cmd
		f.inputs[i], c = f.inputs[i].Update(msg)
		cmds = append(cmds, c)
	}
	return false, tea.Batch(cmds...)
}

func (f *form) setFocus(i int) {
	f.inputs[f.focus].Blur()
	f.focus = i
	f.inputs[f.focus].Focus()
}

func (f *form) values() []string {
	out := make([]string, len(f.inputs))
	for i := range f.inputs {
		out[i] = strings.TrimSpace(f.inputs[i].Value())
	}
	return out
}

// parseCandidate turns raw form values into a creation candidate. The only
// parsing done here is the numeric sueldo; field rules stay with the domain.
func parseCandidate(values []string) (employee.Candidate, error) {
	if len(values) != 5 {
		return employee.Candidate{}, fmt.Errorf("expected 5 fields, got %d", len(values))
	}
	var candidate employee.Candidate
	if values[0] != "" {
		candidate.Cedula = &values[0]
	}
	if values[1] != "" {
		candidate.Nombre = &values[1]
	}
	if values[2] != "" {
		sueldo, err := strconv.ParseFloat(values[2], 64)
		if err != nil {
			return employee.Candidate{}, fmt.Errorf("sueldo must be a number")
		}
		candidate.Sueldo = &sueldo
	}
	if values[3] != "" {
		candidate.Departamento = &values[3]
	}
	if values[4] != "" {
		candidate.Cargo = &values[4]
	}
	return candidate, nil
}

// parseChanges turns raw form values into an update; blanks mean "keep".
func parseChanges(values []string) (employee.Changes, error) {
	if len(values) != 4 {
		return employee.Changes{}, fmt.Errorf("expected 4 fields, got %d", len(values))
	}
	var changes employee.Changes
	if values[0] != "" {
		changes.Nombre = &values[0]
	}
	if values[1] != "" {
		sueldo, err := strconv.ParseFloat(values[1], 64)
		if err != nil {
			return employee.Changes{}, fmt.Errorf("sueldo must be a number")
		}
		changes.Sueldo = &sueldo
	}
	if values[2] != "" {
		changes.Departamento = &values[2]
	}
	if values[3] != "" {
		changes.Cargo = &values[3]
	}
	return changes, nil
}
