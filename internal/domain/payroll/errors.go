package payroll

import "errors"

var (
	ErrEmptyRoster   = errors.New("no employees to run payroll for")
	ErrNotFound      = errors.New("no payroll found for period")
	ErrInvalidPeriod = errors.New("period must be a YYYYMM token")
)
