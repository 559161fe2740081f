package project

import "context"

type ReconciliationService interface {
	// ReconcileCost recomputes and persists actual, labour and reimbursement cost.
	ReconcileCost(ctx context.Context, projectID string) (CostBreakdownResponse, error)
	// GetCostBreakdown computes the cost figures and budget variance without writing.
	GetCostBreakdown(ctx context.Context, projectID string) (CostBreakdownResponse, error)

	// ReconcileRevenue recomputes and persists the received revenue.
	ReconcileRevenue(ctx context.Context, projectID string) (RevenueBreakdownResponse, error)
	// GetRevenueBreakdown returns all status buckets without writing.
	GetRevenueBreakdown(ctx context.Context, projectID string) (RevenueBreakdownResponse, error)

	// ReconcileProject runs both reconciliations.
	ReconcileProject(ctx context.Context, projectID string) (ReconcileProjectResponse, error)
	// ReconcileCompany reconciles every project of the company and reports how many were written.
	ReconcileCompany(ctx context.Context, companyID string) (int, error)
}
