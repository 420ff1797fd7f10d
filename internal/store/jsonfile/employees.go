package jsonfile

import (
	"encoding/json"
	"os"
	"path/filepath"

	"nomina/internal/domain/employee"
)

const rosterFile = "empleados.json"

// EmployeeStore keeps the roster in a single JSON document.
type EmployeeStore struct {
	path string
}

func NewEmployeeStore(dir string) (*EmployeeStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &EmployeeStore{path: filepath.Join(dir, rosterFile)}, nil
}

// Load reads the roster document. A missing or undecodable document counts
// as an empty roster, not an error.
func (s *EmployeeStore) Load() ([]employee.Employee, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var records []employee.Employee
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, nil
	}
	return records, nil
}

// Save rewrites the full roster document.
func (s *EmployeeStore) Save(records []employee.Employee) error {
	if records == nil {
		records = []employee.Employee{}
	}
	return writeDocument(s.path, records)
}
