package http

import (
	"net/http"

	"github.com/cmlabs-hris/siteledger-backend-go/internal/domain/project"
	"github.com/cmlabs-hris/siteledger-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ProjectHandler interface {
	Reconcile(w http.ResponseWriter, r *http.Request)
	GetCost(w http.ResponseWriter, r *http.Request)
	GetRevenue(w http.ResponseWriter, r *http.Request)
}

type projectHandlerImpl struct {
	reconciliationService project.ReconciliationService
}

func NewProjectHandler(reconciliationService project.ReconciliationService) ProjectHandler {
	return &projectHandlerImpl{reconciliationService: reconciliationService}
}

func (h *projectHandlerImpl) Reconcile(w http.ResponseWriter, r *http.Request) {
	result, err := h.reconciliationService.ReconcileProject(r.Context(), chi.URLParam(r, "projectId"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Project reconciled", result)
}

func (h *projectHandlerImpl) GetCost(w http.ResponseWriter, r *http.Request) {
	result, err := h.reconciliationService.GetCostBreakdown(r.Context(), chi.URLParam(r, "projectId"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *projectHandlerImpl) GetRevenue(w http.ResponseWriter, r *http.Request) {
	result, err := h.reconciliationService.GetRevenueBreakdown(r.Context(), chi.URLParam(r, "projectId"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
