package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/cmlabs-hris/siteledger-backend-go/internal/domain/payroll"
	"github.com/cmlabs-hris/siteledger-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type PayrollHandler interface {
	GetSummary(w http.ResponseWriter, r *http.Request)
	GetStaffPayroll(w http.ResponseWriter, r *http.Request)
	ExportCSV(w http.ResponseWriter, r *http.Request)
	ExportPDF(w http.ResponseWriter, r *http.Request)
	ArchiveExport(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{payrollService: payrollService}
}

func (h *payrollHandlerImpl) GetSummary(w http.ResponseWriter, r *http.Request) {
	req := payroll.PayrollSummaryRequest{ResolvePeriodRequest: periodFromQuery(r)}

	result, err := h.payrollService.GetPayrollSummary(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) GetStaffPayroll(w http.ResponseWriter, r *http.Request) {
	staffID := chi.URLParam(r, "staffId")
	if staffID == "" {
		response.BadRequest(w, "Staff ID is required", nil)
		return
	}

	req := payroll.StaffPayrollRequest{StaffID: staffID, ResolvePeriodRequest: periodFromQuery(r)}
	result, err := h.payrollService.GetStaffPayroll(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) ExportCSV(w http.ResponseWriter, r *http.Request) {
	h.export(w, r, payroll.ExportFormatCSV)
}

func (h *payrollHandlerImpl) ExportPDF(w http.ResponseWriter, r *http.Request) {
	h.export(w, r, payroll.ExportFormatPDF)
}

func (h *payrollHandlerImpl) export(w http.ResponseWriter, r *http.Request, format payroll.ExportFormat) {
	req := payroll.ExportPayrollRequest{Format: format, ResolvePeriodRequest: periodFromQuery(r)}

	file, err := h.payrollService.ExportPayroll(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Attachment(w, file.FileName, file.ContentType, file.Content)
}

// ArchiveExport takes {"format": "csv"|"pdf", "start_date", "end_date"} or
// {"format", "period"}; an empty body archives the current period as CSV.
func (h *payrollHandlerImpl) ArchiveExport(w http.ResponseWriter, r *http.Request) {
	req := payroll.ExportPayrollRequest{Format: payroll.ExportFormatCSV}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.payrollService.ArchiveExport(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payroll export archived", result)
}
