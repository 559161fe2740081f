package payroll

import (
	"errors"

	"github.com/cmlabs-hris/siteledger-backend-go/internal/domain/payperiod"
	"github.com/cmlabs-hris/siteledger-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========== REQUEST DTOs ==========

type StaffPayrollRequest struct {
	StaffID string `json:"-"`
	payperiod.ResolvePeriodRequest
}

func (r *StaffPayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StaffID) {
		errs = append(errs, validator.ValidationError{Field: "staff_id", Message: "is required"})
	}
	if err := r.ResolvePeriodRequest.Validate(); err != nil {
		var periodErrs validator.ValidationErrors
		if !errors.As(err, &periodErrs) {
			return err
		}
		errs = append(errs, periodErrs...)
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PayrollSummaryRequest struct {
	payperiod.ResolvePeriodRequest
}

type ExportFormat string

const (
	ExportFormatCSV ExportFormat = "csv"
	ExportFormatPDF ExportFormat = "pdf"
)

type ExportPayrollRequest struct {
	Format ExportFormat `json:"format"`
	payperiod.ResolvePeriodRequest
}

func (r *ExportPayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Format != ExportFormatCSV && r.Format != ExportFormatPDF {
		errs = append(errs, validator.ValidationError{Field: "format", Message: "must be 'csv' or 'pdf'"})
	}
	if err := r.ResolvePeriodRequest.Validate(); err != nil {
		var periodErrs validator.ValidationErrors
		if !errors.As(err, &periodErrs) {
			return err
		}
		errs = append(errs, periodErrs...)
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ========== RESPONSE DTOs ==========

type AssignmentResponse struct {
	ID              string          `json:"id"`
	ProjectID       string          `json:"project_id"`
	ProjectName     string          `json:"project_name"`
	Date            string          `json:"date"`
	TaskDescription string          `json:"task_description"`
	DailyRate       decimal.Decimal `json:"daily_rate"`
}

type ReimbursementResponse struct {
	ID              string          `json:"id"`
	ProjectID       *string         `json:"project_id,omitempty"`
	Date            string          `json:"date"`
	ItemDescription string          `json:"item_description"`
	Amount          decimal.Decimal `json:"amount"`
}

type StaffPayrollResponse struct {
	StaffID             string                  `json:"staff_id"`
	StaffName           string                  `json:"staff_name"`
	DaysWorked          int                     `json:"days_worked"`
	TotalWages          decimal.Decimal         `json:"total_wages"`
	TotalReimbursements decimal.Decimal         `json:"total_reimbursements"`
	TotalPayout         decimal.Decimal         `json:"total_payout"`
	Assignments         []AssignmentResponse    `json:"assignments"`
	Reimbursements      []ReimbursementResponse `json:"reimbursements"`
}

type PayrollSummaryResponse struct {
	Period              payperiod.PeriodResponse `json:"period"`
	TotalStaff          int                      `json:"total_staff"`
	TotalWages          decimal.Decimal          `json:"total_wages"`
	TotalReimbursements decimal.Decimal          `json:"total_reimbursements"`
	TotalPayout         decimal.Decimal          `json:"total_payout"`
	Staff               []StaffPayrollResponse   `json:"staff"`
}

// ExportFile is a rendered export ready to be handed to a download.
type ExportFile struct {
	FileName    string
	ContentType string
	Content     []byte
}

type ArchivedExportResponse struct {
	FileName string `json:"file_name"`
	Path     string `json:"path"`
	URL      string `json:"url"`
}

// NewStaffPayrollResponse maps the domain result to its JSON shape.
func NewStaffPayrollResponse(p StaffPayroll) StaffPayrollResponse {
	assignments := make([]AssignmentResponse, 0, len(p.Assignments))
	for _, a := range p.Assignments {
		assignments = append(assignments, AssignmentResponse{
			ID:              a.ID,
			ProjectID:       a.ProjectID,
			ProjectName:     a.ProjectName,
			Date:            a.Date.Format(payperiod.DateLayout),
			TaskDescription: a.TaskDescription,
			DailyRate:       a.DailyRate,
		})
	}

	reimbursements := make([]ReimbursementResponse, 0, len(p.Reimbursements))
	for _, r := range p.Reimbursements {
		reimbursements = append(reimbursements, ReimbursementResponse{
			ID:              r.ID,
			ProjectID:       r.ProjectID,
			Date:            r.Date.Format(payperiod.DateLayout),
			ItemDescription: r.ItemDescription,
			Amount:          r.Amount,
		})
	}

	return StaffPayrollResponse{
		StaffID:             p.Staff.ID,
		StaffName:           p.Staff.Name,
		DaysWorked:          p.DaysWorked,
		TotalWages:          p.TotalWages,
		TotalReimbursements: p.TotalReimbursements,
		TotalPayout:         p.TotalPayout,
		Assignments:         assignments,
		Reimbursements:      reimbursements,
	}
}
