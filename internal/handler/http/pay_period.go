package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/cmlabs-hris/siteledger-backend-go/internal/domain/payperiod"
	"github.com/cmlabs-hris/siteledger-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/siteledger-backend-go/internal/pkg/validator"
)

const defaultRecentPeriods = 6

type PayPeriodHandler interface {
	GetConfig(w http.ResponseWriter, r *http.Request)
	UpdateConfig(w http.ResponseWriter, r *http.Request)
	GetCurrent(w http.ResponseWriter, r *http.Request)
	ListRecent(w http.ResponseWriter, r *http.Request)
}

type payPeriodHandlerImpl struct {
	payPeriodService payperiod.Service
}

func NewPayPeriodHandler(payPeriodService payperiod.Service) PayPeriodHandler {
	return &payPeriodHandlerImpl{payPeriodService: payPeriodService}
}

func (h *payPeriodHandlerImpl) GetConfig(w http.ResponseWriter, r *http.Request) {
	result, err := h.payPeriodService.GetConfig(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payPeriodHandlerImpl) UpdateConfig(w http.ResponseWriter, r *http.Request) {
	var req payperiod.UpdateConfigRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.payPeriodService.UpdateConfig(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Pay period config updated", result)
}

func (h *payPeriodHandlerImpl) GetCurrent(w http.ResponseWriter, r *http.Request) {
	req := payperiod.CurrentPeriodRequest{AsOf: r.URL.Query().Get("as_of")}

	result, err := h.payPeriodService.CurrentPeriod(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payPeriodHandlerImpl) ListRecent(w http.ResponseWriter, r *http.Request) {
	req := payperiod.RecentPeriodsRequest{Count: defaultRecentPeriods}
	if raw := r.URL.Query().Get("count"); raw != "" {
		count, err := strconv.Atoi(raw)
		if err != nil {
			response.HandleError(w, validator.ValidationErrors{{Field: "count", Message: "must be a number"}})
			return
		}
		req.Count = count
	}

	result, err := h.payPeriodService.RecentPeriods(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// periodFromQuery reads ?start=&end= or ?period= into a period request.
func periodFromQuery(r *http.Request) payperiod.ResolvePeriodRequest {
	q := r.URL.Query()
	return payperiod.ResolvePeriodRequest{
		StartDate: q.Get("start"),
		EndDate:   q.Get("end"),
		Label:     q.Get("period"),
	}
}
