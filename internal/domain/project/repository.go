package project

import "context"

// ProjectRepository defines data access methods for projects.
// All methods include companyID parameter to prevent cross-company data access.
type ProjectRepository interface {
	GetByID(ctx context.Context, id string, companyID string) (Project, error)
	ListIDs(ctx context.Context, companyID string) ([]string, error)
	// ListCompanyIDs returns every company that owns at least one project.
	ListCompanyIDs(ctx context.Context) ([]string, error)
	UpdateCostFigures(ctx context.Context, id string, companyID string, figures CostFigures) error
	UpdateRevenueFigures(ctx context.Context, id string, companyID string, figures RevenueFigures) error
}

type ExpenseRepository interface {
	ListByProject(ctx context.Context, companyID string, projectID string) ([]Expense, error)
}

type IncomeRepository interface {
	ListByProject(ctx context.Context, companyID string, projectID string) ([]Income, error)
}
