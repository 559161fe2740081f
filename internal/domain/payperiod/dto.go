package payperiod

import (
	"strconv"

	"github.com/cmlabs-hris/siteledger-backend-go/internal/pkg/validator"
)

type ConfigResponse struct {
	ID           string `json:"id,omitempty"`
	CompanyID    string `json:"company_id"`
	Type         string `json:"type"`
	StartDate    string `json:"start_date"`
	PeriodLength int    `json:"period_length_days"`
}

type UpdateConfigRequest struct {
	Type      string `json:"type"`
	StartDate string `json:"start_date"`
}

func (r *UpdateConfigRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, err := ParseType(r.Type); err != nil {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "must be 'weekly', 'biweekly' or 'monthly'"})
	}
	if validator.IsEmpty(r.StartDate) {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "is required"})
	} else if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be in YYYY-MM-DD format"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CurrentPeriodRequest struct {
	AsOf string `json:"as_of,omitempty"` // empty = today
}

func (r *CurrentPeriodRequest) Validate() error {
	if r.AsOf == "" {
		return nil
	}
	if _, ok := validator.IsValidDate(r.AsOf); !ok {
		return validator.ValidationErrors{{Field: "as_of", Message: "must be in YYYY-MM-DD format"}}
	}
	return nil
}

// MaxRecentPeriods caps how far back the period picker may look.
const MaxRecentPeriods = 52

type RecentPeriodsRequest struct {
	Count int `json:"count"`
}

func (r *RecentPeriodsRequest) Validate() error {
	if r.Count < 1 || r.Count > MaxRecentPeriods {
		return validator.ValidationErrors{{Field: "count", Message: "must be between 1 and " + strconv.Itoa(MaxRecentPeriods)}}
	}
	return nil
}

type ResolvePeriodRequest struct {
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
	Label     string `json:"period,omitempty"`
}

func (r *ResolvePeriodRequest) Validate() error {
	var errs validator.ValidationErrors

	if (r.StartDate == "") != (r.EndDate == "") {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start_date and end_date must be given together"})
	}
	if r.StartDate != "" {
		if _, ok := validator.IsValidDate(r.StartDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be in YYYY-MM-DD format"})
		}
	}
	if r.EndDate != "" {
		if _, ok := validator.IsValidDate(r.EndDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be in YYYY-MM-DD format"})
		}
	}
	if r.Label != "" {
		if _, err := ParseLabel(r.Label); err != nil {
			errs = append(errs, validator.ValidationError{Field: "period", Message: "must look like 'YYYY-MM-DD to YYYY-MM-DD'"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PeriodResponse struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Label     string `json:"label"`
}

func NewPeriodResponse(p Period) PeriodResponse {
	return PeriodResponse{
		StartDate: p.StartDate(),
		EndDate:   p.EndDate(),
		Label:     p.Label(),
	}
}
