package project

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/siteledger-backend-go/internal/domain/payroll"
	"github.com/cmlabs-hris/siteledger-backend-go/internal/domain/project"
	"github.com/cmlabs-hris/siteledger-backend-go/internal/pkg/jwt"
	"github.com/shopspring/decimal"
)

type ReconciliationServiceImpl struct {
	projectRepo       project.ProjectRepository
	expenseRepo       project.ExpenseRepository
	incomeRepo        project.IncomeRepository
	assignmentRepo    payroll.AssignmentRepository
	reimbursementRepo payroll.ReimbursementRepository
}

func NewReconciliationService(
	projectRepo project.ProjectRepository,
	expenseRepo project.ExpenseRepository,
	incomeRepo project.IncomeRepository,
	assignmentRepo payroll.AssignmentRepository,
	reimbursementRepo payroll.ReimbursementRepository,
) project.ReconciliationService {
	return &ReconciliationServiceImpl{
		projectRepo:       projectRepo,
		expenseRepo:       expenseRepo,
		incomeRepo:        incomeRepo,
		assignmentRepo:    assignmentRepo,
		reimbursementRepo: reimbursementRepo,
	}
}

// ========== COST ==========

func (s *ReconciliationServiceImpl) ReconcileCost(ctx context.Context, projectID string) (project.CostBreakdownResponse, error) {
	if projectID == "" {
		return emptyCost(), nil
	}

	companyID, err := jwt.CompanyIDFromContext(ctx)
	if err != nil {
		return project.CostBreakdownResponse{}, err
	}

	breakdown, err := s.computeCost(ctx, companyID, projectID)
	if err != nil {
		return project.CostBreakdownResponse{}, err
	}

	if err := s.projectRepo.UpdateCostFigures(ctx, projectID, companyID, breakdown.Figures()); err != nil {
		return project.CostBreakdownResponse{}, fmt.Errorf("failed to persist project cost: %w", err)
	}

	slog.Info("Project cost reconciled", "company_id", companyID, "project_id", projectID, "actual_cost", breakdown.ActualCost.String())
	return project.NewCostBreakdownResponse(breakdown), nil
}

func (s *ReconciliationServiceImpl) GetCostBreakdown(ctx context.Context, projectID string) (project.CostBreakdownResponse, error) {
	if projectID == "" {
		return emptyCost(), nil
	}

	companyID, err := jwt.CompanyIDFromContext(ctx)
	if err != nil {
		return project.CostBreakdownResponse{}, err
	}

	breakdown, err := s.computeCost(ctx, companyID, projectID)
	if err != nil {
		return project.CostBreakdownResponse{}, err
	}
	return project.NewCostBreakdownResponse(breakdown), nil
}

// computeCost reads every cost source. Only a missing project is an error;
// any other failed read counts as zero for that source.
func (s *ReconciliationServiceImpl) computeCost(ctx context.Context, companyID, projectID string) (project.CostBreakdown, error) {
	budget := decimal.Zero
	p, err := s.projectRepo.GetByID(ctx, projectID, companyID)
	switch {
	case errors.Is(err, project.ErrProjectNotFound):
		return project.CostBreakdown{}, err
	case err != nil:
		slog.Warn("Failed to load project budget, treating as zero", "company_id", companyID, "project_id", projectID, "error", err)
	default:
		budget = p.Budget
	}

	return project.ComputeCost(
		projectID,
		s.laborCost(ctx, companyID, projectID),
		s.reimbursementCost(ctx, companyID, projectID),
		s.expenseCost(ctx, companyID, projectID),
		budget,
	), nil
}

// laborCost sums the captured daily rate of every assignment on the project.
// Unlike payroll, several tasks by one person on one day each count.
func (s *ReconciliationServiceImpl) laborCost(ctx context.Context, companyID, projectID string) decimal.Decimal {
	assignments, err := s.assignmentRepo.List(ctx, companyID, payroll.AssignmentFilter{ProjectID: &projectID})
	if err != nil {
		slog.Warn("Failed to load task assignments, labour cost treated as zero", "company_id", companyID, "project_id", projectID, "error", err)
		return decimal.Zero
	}
	return payroll.SumDailyRates(assignments)
}

func (s *ReconciliationServiceImpl) reimbursementCost(ctx context.Context, companyID, projectID string) decimal.Decimal {
	rows, err := s.reimbursementRepo.List(ctx, companyID, payroll.ReimbursementFilter{
		ProjectID: &projectID,
		Status:    payroll.ApprovedStatus(),
	})
	if err != nil {
		slog.Warn("Failed to load reimbursements, reimbursement cost treated as zero", "company_id", companyID, "project_id", projectID, "error", err)
		return decimal.Zero
	}
	return payroll.AggregateReimbursements(payroll.FilterReimbursements(rows, payroll.IsApproved)).TotalReimbursements
}

func (s *ReconciliationServiceImpl) expenseCost(ctx context.Context, companyID, projectID string) decimal.Decimal {
	expenses, err := s.expenseRepo.ListByProject(ctx, companyID, projectID)
	if err != nil {
		slog.Warn("Failed to load expenses, expense cost treated as zero", "company_id", companyID, "project_id", projectID, "error", err)
		return decimal.Zero
	}
	return project.SumExpenses(expenses)
}

// ========== REVENUE ==========

func (s *ReconciliationServiceImpl) ReconcileRevenue(ctx context.Context, projectID string) (project.RevenueBreakdownResponse, error) {
	if projectID == "" {
		return emptyRevenue(), nil
	}

	companyID, err := jwt.CompanyIDFromContext(ctx)
	if err != nil {
		return project.RevenueBreakdownResponse{}, err
	}

	breakdown := s.computeRevenue(ctx, companyID, projectID)
	if err := s.projectRepo.UpdateRevenueFigures(ctx, projectID, companyID, breakdown.Figures()); err != nil {
		return project.RevenueBreakdownResponse{}, fmt.Errorf("failed to persist project revenue: %w", err)
	}

	slog.Info("Project revenue reconciled", "company_id", companyID, "project_id", projectID, "actual_revenue", breakdown.Received.String())
	return project.NewRevenueBreakdownResponse(breakdown), nil
}

func (s *ReconciliationServiceImpl) GetRevenueBreakdown(ctx context.Context, projectID string) (project.RevenueBreakdownResponse, error) {
	if projectID == "" {
		return emptyRevenue(), nil
	}

	companyID, err := jwt.CompanyIDFromContext(ctx)
	if err != nil {
		return project.RevenueBreakdownResponse{}, err
	}
	return project.NewRevenueBreakdownResponse(s.computeRevenue(ctx, companyID, projectID)), nil
}

func (s *ReconciliationServiceImpl) computeRevenue(ctx context.Context, companyID, projectID string) project.RevenueBreakdown {
	incomes, err := s.incomeRepo.ListByProject(ctx, companyID, projectID)
	if err != nil {
		slog.Warn("Failed to load income, revenue treated as zero", "company_id", companyID, "project_id", projectID, "error", err)
		incomes = nil
	}
	return project.ComputeRevenue(projectID, incomes)
}

// ========== BOTH ==========

func (s *ReconciliationServiceImpl) ReconcileProject(ctx context.Context, projectID string) (project.ReconcileProjectResponse, error) {
	cost, err := s.ReconcileCost(ctx, projectID)
	if err != nil {
		return project.ReconcileProjectResponse{}, err
	}
	revenue, err := s.ReconcileRevenue(ctx, projectID)
	if err != nil {
		return project.ReconcileProjectResponse{}, err
	}
	return project.ReconcileProjectResponse{Cost: cost, Revenue: revenue}, nil
}

// ReconcileCompany reconciles every project of companyID. A failing project
// does not stop the others; all failures are returned joined.
func (s *ReconciliationServiceImpl) ReconcileCompany(ctx context.Context, companyID string) (int, error) {
	ctx = jwt.WithCompanyID(ctx, companyID)

	projectIDs, err := s.projectRepo.ListIDs(ctx, companyID)
	if err != nil {
		return 0, fmt.Errorf("failed to list projects: %w", err)
	}

	reconciled := 0
	var errs []error
	for _, projectID := range projectIDs {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		if _, err := s.ReconcileProject(ctx, projectID); err != nil {
			errs = append(errs, fmt.Errorf("project %s: %w", projectID, err))
			continue
		}
		reconciled++
	}

	slog.Info("Company projects reconciled", "company_id", companyID, "projects", len(projectIDs), "reconciled", reconciled, "failed", len(errs))
	return reconciled, errors.Join(errs...)
}

func emptyCost() project.CostBreakdownResponse {
	return project.NewCostBreakdownResponse(project.ComputeCost("", decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero))
}

func emptyRevenue() project.RevenueBreakdownResponse {
	return project.NewRevenueBreakdownResponse(project.ComputeRevenue("", nil))
}
