package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/siteledger-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/siteledger-backend-go/internal/domain/payperiod"
	"github.com/cmlabs-hris/siteledger-backend-go/internal/domain/payroll"
	"github.com/cmlabs-hris/siteledger-backend-go/internal/domain/project"
	"github.com/cmlabs-hris/siteledger-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrCompanyIDRequired):
		Forbidden(w, "Token is not scoped to a company")
	case errors.Is(err, auth.ErrInsufficientAccess):
		Forbidden(w, "Insufficient permissions")

	// Pay period
	case errors.Is(err, payperiod.ErrInvalidPeriodType),
		errors.Is(err, payperiod.ErrInvalidStartDate),
		errors.Is(err, payperiod.ErrInvalidPeriodLabel),
		errors.Is(err, payperiod.ErrInvalidDateRange):
		BadRequest(w, err.Error(), nil)

	// Payroll
	case errors.Is(err, payroll.ErrStaffNotFound):
		NotFound(w, "Staff member not found")
	case errors.Is(err, payroll.ErrInvalidExportFormat):
		BadRequest(w, "Export format must be csv or pdf", nil)
	case errors.Is(err, payroll.ErrStorageUnavailable):
		ServiceUnavailable(w, "Export archive is not configured")

	// Project
	case errors.Is(err, project.ErrProjectNotFound):
		NotFound(w, "Project not found")

	default:
		slog.Error("Unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
