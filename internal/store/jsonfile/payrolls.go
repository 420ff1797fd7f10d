package jsonfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"nomina/internal/domain/payroll"
)

const seqFile = "nomina_seq.json"

// PayrollStore keeps one JSON document per payroll run, named
// nomina_<period>_<run>.json, plus a counter document that makes run IDs
// monotonic across restarts. Regenerating a period therefore adds a new run
// file; earlier runs are never overwritten.
type PayrollStore struct {
	dir string
}

func NewPayrollStore(dir string) (*PayrollStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &PayrollStore{dir: dir}, nil
}

type runCounter struct {
	LastRunID int `json:"last_run_id"`
}

// NextRunID advances and persists the run counter.
func (s *PayrollStore) NextRunID() (int, error) {
	var counter runCounter
	path := filepath.Join(s.dir, seqFile)
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := json.Unmarshal(data, &counter); err != nil {
			return 0, fmt.Errorf("decode %s: %w", seqFile, err)
		}
	case os.IsNotExist(err):
		// first run
	default:
		return 0, err
	}
	counter.LastRunID++
	if err := writeDocument(path, counter); err != nil {
		return 0, err
	}
	return counter.LastRunID, nil
}

func (s *PayrollStore) Save(p *payroll.Payroll) error {
	name := fmt.Sprintf("nomina_%s_%d.json", p.Period, p.ID)
	return writeDocument(filepath.Join(s.dir, name), p)
}

// Load returns the run with the highest run ID for the period, or
// payroll.ErrNotFound when no run exists.
func (s *PayrollStore) Load(period string) (*payroll.Payroll, error) {
	matches, err := filepath.Glob(filepath.Join(s.dir, "nomina_"+period+"_*.json"))
	if err != nil {
		return nil, err
	}
	best := ""
	bestRun := -1
	for _, match := range matches {
		base := strings.TrimSuffix(filepath.Base(match), ".json")
		idx := strings.LastIndex(base, "_")
		if idx < 0 {
			continue
		}
		run, err := strconv.Atoi(base[idx+1:])
		if err != nil {
			continue
		}
		if run > bestRun {
			bestRun = run
			best = match
		}
	}
	if best == "" {
		return nil, payroll.ErrNotFound
	}
	data, err := os.ReadFile(best)
	if err != nil {
		return nil, err
	}
	var p payroll.Payroll
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(best), err)
	}
	return &p, nil
}
