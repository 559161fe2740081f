package payroll

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/cmlabs-hris/siteledger-backend-go/internal/domain/payperiod"
	"github.com/cmlabs-hris/siteledger-backend-go/internal/domain/payroll"
	"github.com/cmlabs-hris/siteledger-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/siteledger-backend-go/internal/pkg/money"
	"github.com/cmlabs-hris/siteledger-backend-go/internal/pkg/pdf"
	"github.com/cmlabs-hris/siteledger-backend-go/internal/pkg/storage"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency bounds the per-staff fan-out when no limit is configured.
const DefaultConcurrency = 8

type PayrollServiceImpl struct {
	assignmentRepo    payroll.AssignmentRepository
	reimbursementRepo payroll.ReimbursementRepository
	staffRepo         payroll.StaffRepository
	periodService     payperiod.Service
	fileStorage       storage.FileStorage
	concurrency       int
}

// NewPayrollService wires the payroll engine. fileStorage may be nil, in which
// case ArchiveExport returns payroll.ErrStorageUnavailable.
func NewPayrollService(
	assignmentRepo payroll.AssignmentRepository,
	reimbursementRepo payroll.ReimbursementRepository,
	staffRepo payroll.StaffRepository,
	periodService payperiod.Service,
	fileStorage storage.FileStorage,
	concurrency int,
) payroll.PayrollService {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	return &PayrollServiceImpl{
		assignmentRepo:    assignmentRepo,
		reimbursementRepo: reimbursementRepo,
		staffRepo:         staffRepo,
		periodService:     periodService,
		fileStorage:       fileStorage,
		concurrency:       concurrency,
	}
}

// ========== STAFF PAYROLL ==========

func (s *PayrollServiceImpl) GetStaffPayroll(ctx context.Context, req payroll.StaffPayrollRequest) (payroll.StaffPayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.StaffPayrollResponse{}, err
	}

	companyID, err := jwt.CompanyIDFromContext(ctx)
	if err != nil {
		return payroll.StaffPayrollResponse{}, err
	}

	period, err := s.periodService.ResolvePeriod(ctx, req.ResolvePeriodRequest)
	if err != nil {
		return payroll.StaffPayrollResponse{}, err
	}

	staff, err := s.staffRepo.GetByID(ctx, req.StaffID, companyID)
	if err != nil {
		if errors.Is(err, payroll.ErrStaffNotFound) {
			return payroll.StaffPayrollResponse{}, err
		}
		slog.Warn("Staff lookup failed, continuing without profile", "company_id", companyID, "staff_id", req.StaffID, "error", err)
		staff = payroll.StaffMember{ID: req.StaffID, CompanyID: companyID}
	}

	return payroll.NewStaffPayrollResponse(s.computeStaffPayroll(ctx, companyID, staff, period)), nil
}

// computeStaffPayroll never fails: each source that cannot be read counts as empty.
func (s *PayrollServiceImpl) computeStaffPayroll(ctx context.Context, companyID string, staff payroll.StaffMember, period payperiod.Period) payroll.StaffPayroll {
	staffID := staff.ID

	assignments, err := s.assignmentRepo.List(ctx, companyID, payroll.AssignmentFilter{
		StaffID: &staffID,
		Period:  &period,
	})
	if err != nil {
		slog.Warn("Failed to load task assignments, treating as none", "company_id", companyID, "staff_id", staffID, "period", period.Label(), "error", err)
		assignments = nil
	}

	// The store filters on staff and status; the date window is applied here.
	rows, err := s.reimbursementRepo.List(ctx, companyID, payroll.ReimbursementFilter{
		StaffID: &staffID,
		Status:  payroll.ApprovedStatus(),
	})
	if err != nil {
		slog.Warn("Failed to load reimbursements, treating as none", "company_id", companyID, "staff_id", staffID, "period", period.Label(), "error", err)
		rows = nil
	}
	approved := payroll.FilterReimbursements(rows, payroll.IsApproved, payroll.InPeriod(period))

	return payroll.BuildStaffPayroll(staff, payroll.AggregateWages(assignments), payroll.AggregateReimbursements(approved))
}

// ========== REPORT ==========

func (s *PayrollServiceImpl) GetPayrollSummary(ctx context.Context, req payroll.PayrollSummaryRequest) (payroll.PayrollSummaryResponse, error) {
	companyID, err := jwt.CompanyIDFromContext(ctx)
	if err != nil {
		return payroll.PayrollSummaryResponse{}, err
	}

	period, err := s.periodService.ResolvePeriod(ctx, req.ResolvePeriodRequest)
	if err != nil {
		return payroll.PayrollSummaryResponse{}, err
	}

	rows, err := s.buildReport(ctx, companyID, period)
	if err != nil {
		return payroll.PayrollSummaryResponse{}, err
	}

	totals := summarise(rows)
	staff := make([]payroll.StaffPayrollResponse, 0, len(rows))
	for _, r := range rows {
		staff = append(staff, payroll.NewStaffPayrollResponse(r))
	}

	return payroll.PayrollSummaryResponse{
		Period:              payperiod.NewPeriodResponse(period),
		TotalStaff:          len(rows),
		TotalWages:          totals.wages,
		TotalReimbursements: totals.reimbursements,
		TotalPayout:         totals.payout,
		Staff:               staff,
	}, nil
}

// buildReport runs the per-staff aggregation for the whole roster, one task
// per staff member, and drops staff with nothing in the period. Roster order
// is kept.
func (s *PayrollServiceImpl) buildReport(ctx context.Context, companyID string, period payperiod.Period) ([]payroll.StaffPayroll, error) {
	roster, err := s.staffRepo.ListRoster(ctx, companyID)
	if err != nil {
		slog.Warn("Failed to load staff roster, report will be empty", "company_id", companyID, "error", err)
		roster = nil
	}

	results := make([]payroll.StaffPayroll, len(roster))
	g := new(errgroup.Group)
	g.SetLimit(s.concurrency)
	for i, member := range roster {
		g.Go(func() error {
			results[i] = s.computeStaffPayroll(ctx, companyID, member, period)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Repository calls degrade to empty on a cancelled context; don't hand
	// that back as a real report.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	slog.Info("Payroll report built", "company_id", companyID, "period", period.Label(), "roster_size", len(roster))
	return payroll.Sparse(results), nil
}

type reportTotals struct {
	wages          decimal.Decimal
	reimbursements decimal.Decimal
	payout         decimal.Decimal
	days           int
}

func summarise(rows []payroll.StaffPayroll) reportTotals {
	wages := make([]decimal.Decimal, 0, len(rows))
	reimbursements := make([]decimal.Decimal, 0, len(rows))
	payouts := make([]decimal.Decimal, 0, len(rows))
	days := 0
	for _, r := range rows {
		wages = append(wages, r.TotalWages)
		reimbursements = append(reimbursements, r.TotalReimbursements)
		payouts = append(payouts, r.TotalPayout)
		days += r.DaysWorked
	}
	return reportTotals{
		wages:          money.Sum(wages...),
		reimbursements: money.Sum(reimbursements...),
		payout:         money.Sum(payouts...),
		days:           days,
	}
}

// ========== EXPORT ==========

func (s *PayrollServiceImpl) ExportPayroll(ctx context.Context, req payroll.ExportPayrollRequest) (payroll.ExportFile, error) {
	file, _, err := s.renderExport(ctx, req)
	return file, err
}

func (s *PayrollServiceImpl) ArchiveExport(ctx context.Context, req payroll.ExportPayrollRequest) (payroll.ArchivedExportResponse, error) {
	if s.fileStorage == nil {
		return payroll.ArchivedExportResponse{}, payroll.ErrStorageUnavailable
	}

	file, period, err := s.renderExport(ctx, req)
	if err != nil {
		return payroll.ArchivedExportResponse{}, err
	}

	companyID, err := jwt.CompanyIDFromContext(ctx)
	if err != nil {
		return payroll.ArchivedExportResponse{}, err
	}

	key := fmt.Sprintf("payroll/%s/%s/%s_%s", companyID, period.StartDate(), uuid.NewString(), file.FileName)
	storedKey, err := s.fileStorage.Put(ctx, key, bytes.NewReader(file.Content))
	if err != nil {
		return payroll.ArchivedExportResponse{}, fmt.Errorf("failed to archive payroll export: %w", err)
	}

	slog.Info("Payroll export archived", "company_id", companyID, "period", period.Label(), "key", storedKey, "bytes", len(file.Content))
	return payroll.ArchivedExportResponse{
		FileName: file.FileName,
		Path:     storedKey,
		URL:      s.fileStorage.URL(storedKey),
	}, nil
}

func (s *PayrollServiceImpl) renderExport(ctx context.Context, req payroll.ExportPayrollRequest) (payroll.ExportFile, payperiod.Period, error) {
	if err := req.Validate(); err != nil {
		return payroll.ExportFile{}, payperiod.Period{}, err
	}

	companyID, err := jwt.CompanyIDFromContext(ctx)
	if err != nil {
		return payroll.ExportFile{}, payperiod.Period{}, err
	}

	period, err := s.periodService.ResolvePeriod(ctx, req.ResolvePeriodRequest)
	if err != nil {
		return payroll.ExportFile{}, payperiod.Period{}, err
	}

	rows, err := s.buildReport(ctx, companyID, period)
	if err != nil {
		return payroll.ExportFile{}, payperiod.Period{}, err
	}

	baseName := fmt.Sprintf("payroll_%s_%s", period.StartDate(), period.EndDate())
	switch req.Format {
	case payroll.ExportFormatCSV:
		return payroll.ExportFile{
			FileName:    baseName + ".csv",
			ContentType: "text/csv; charset=utf-8",
			Content:     []byte(payroll.RenderCSV(rows)),
		}, period, nil
	case payroll.ExportFormatPDF:
		content, err := pdf.Render(reportTable(period, rows))
		if err != nil {
			return payroll.ExportFile{}, payperiod.Period{}, err
		}
		return payroll.ExportFile{
			FileName:    baseName + ".pdf",
			ContentType: "application/pdf",
			Content:     content,
		}, period, nil
	}
	return payroll.ExportFile{}, payperiod.Period{}, payroll.ErrInvalidExportFormat
}

// reportTable lays the payroll report out for PDF. Detail lists are reduced
// to counts; the CSV export carries the full text.
func reportTable(period payperiod.Period, rows []payroll.StaffPayroll) pdf.Table {
	data := make([][]string, 0, len(rows))
	for _, r := range rows {
		data = append(data, []string{
			r.Staff.Name,
			strconv.Itoa(r.DaysWorked),
			money.Format(r.TotalWages),
			money.Format(r.TotalReimbursements),
			money.Format(r.TotalPayout),
			strconv.Itoa(len(r.Assignments)),
			strconv.Itoa(len(r.Reimbursements)),
		})
	}

	totals := summarise(rows)
	return pdf.Table{
		Title:    "Payroll Report",
		Subtitle: "Period: " + period.Label(),
		Header:   []string{"Staff Name", "Days Worked", "Total Wages", "Reimbursements", "Total Payout", "Assignments", "Reimbursement Items"},
		Widths:   []float64{67, 28, 38, 38, 38, 32, 36},
		Rows:     data,
		Footer: []string{
			"Total (" + strconv.Itoa(len(rows)) + " staff)",
			strconv.Itoa(totals.days),
			money.Format(totals.wages),
			money.Format(totals.reimbursements),
			money.Format(totals.payout),
			"",
			"",
		},
	}
}
