package payroll

import (
	"errors"
	"testing"

	"github.com/cmlabs-hris/siteledger-backend-go/internal/domain/payperiod"
	"github.com/cmlabs-hris/siteledger-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaffPayrollRequest_ValidateMergesPeriodErrors(t *testing.T) {
	req := StaffPayrollRequest{
		ResolvePeriodRequest: payperiod.ResolvePeriodRequest{StartDate: "2024-13-01", EndDate: "2024-01-28"},
	}

	err := req.Validate()

	var errs validator.ValidationErrors
	require.True(t, errors.As(err, &errs))
	fields := errs.ToMap()
	assert.Contains(t, fields, "staff_id")
	assert.Contains(t, fields, "start_date")
}

func TestExportPayrollRequest_ValidateMergesPeriodErrors(t *testing.T) {
	req := ExportPayrollRequest{
		Format:               ExportFormat("xlsx"),
		ResolvePeriodRequest: payperiod.ResolvePeriodRequest{Label: "last week"},
	}

	err := req.Validate()

	var errs validator.ValidationErrors
	require.True(t, errors.As(err, &errs))
	fields := errs.ToMap()
	assert.Contains(t, fields, "format")
	assert.Contains(t, fields, "period")
}

func TestExportPayrollRequest_ValidateAcceptsDefaults(t *testing.T) {
	req := ExportPayrollRequest{Format: ExportFormatCSV}

	assert.NoError(t, req.Validate())
}
