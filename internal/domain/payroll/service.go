package payroll

import "context"

type PayrollService interface {
	// GetStaffPayroll runs the wage and reimbursement aggregation for one staff member.
	GetStaffPayroll(ctx context.Context, req StaffPayrollRequest) (StaffPayrollResponse, error)

	// GetPayrollSummary builds the sparse per-staff report for a period.
	GetPayrollSummary(ctx context.Context, req PayrollSummaryRequest) (PayrollSummaryResponse, error)

	// ExportPayroll renders the report as CSV or PDF for download.
	ExportPayroll(ctx context.Context, req ExportPayrollRequest) (ExportFile, error)

	// ArchiveExport stores a rendered export in file storage and returns its location.
	ArchiveExport(ctx context.Context, req ExportPayrollRequest) (ArchivedExportResponse, error)
}
