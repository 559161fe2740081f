package payroll

import "errors"

var (
	ErrStaffNotFound       = errors.New("staff member not found")
	ErrInvalidExportFormat = errors.New("invalid payroll export format")
	ErrStorageUnavailable  = errors.New("export storage is not configured")
)
