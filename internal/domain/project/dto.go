package project

import "github.com/shopspring/decimal"

type CostBreakdownResponse struct {
	ProjectID         string          `json:"project_id"`
	LaborCost         decimal.Decimal `json:"labor_cost"`
	ReimbursementCost decimal.Decimal `json:"reimbursement_cost"`
	ExpenseCost       decimal.Decimal `json:"expense_cost"`
	ActualCost        decimal.Decimal `json:"actual_cost"`
	Budget            decimal.Decimal `json:"budget"`
	Remaining         decimal.Decimal `json:"remaining"`
	PercentUsed       decimal.Decimal `json:"percent_used"`
}

type RevenueBreakdownResponse struct {
	ProjectID string          `json:"project_id"`
	Received  decimal.Decimal `json:"received"`
	Pending   decimal.Decimal `json:"pending"`
	Cancelled decimal.Decimal `json:"cancelled"`
	Total     decimal.Decimal `json:"total"`
}

type ReconcileProjectResponse struct {
	Cost    CostBreakdownResponse    `json:"cost"`
	Revenue RevenueBreakdownResponse `json:"revenue"`
}

func NewCostBreakdownResponse(b CostBreakdown) CostBreakdownResponse {
	return CostBreakdownResponse{
		ProjectID:         b.ProjectID,
		LaborCost:         b.LaborCost,
		ReimbursementCost: b.ReimbursementCost,
		ExpenseCost:       b.ExpenseCost,
		ActualCost:        b.ActualCost,
		Budget:            b.Budget,
		Remaining:         b.Remaining,
		PercentUsed:       b.PercentUsed,
	}
}

func NewRevenueBreakdownResponse(b RevenueBreakdown) RevenueBreakdownResponse {
	return RevenueBreakdownResponse{
		ProjectID: b.ProjectID,
		Received:  b.Received,
		Pending:   b.Pending,
		Cancelled: b.Cancelled,
		Total:     b.Total,
	}
}
