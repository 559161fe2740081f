package cron

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// CompanyLister lists the organisations that own projects.
type CompanyLister interface {
	ListCompanyIDs(ctx context.Context) ([]string, error)
}

// CompanyReconciler reconciles every project of one organisation.
type CompanyReconciler interface {
	ReconcileCompany(ctx context.Context, companyID string) (int, error)
}

// ReconciliationJobs keeps persisted project cost and revenue in step with
// their source rows between on-demand reconciliations.
type ReconciliationJobs struct {
	companies  CompanyLister
	reconciler CompanyReconciler
}

func NewReconciliationJobs(companies CompanyLister, reconciler CompanyReconciler) *ReconciliationJobs {
	return &ReconciliationJobs{
		companies:  companies,
		reconciler: reconciler,
	}
}

func (j *ReconciliationJobs) RegisterJobs(scheduler *Scheduler, interval time.Duration) {
	scheduler.AddJob("reconcile_all_projects", interval, j.ReconcileAllProjects)
}

// ReconcileAllProjects walks every company. One company failing does not
// stop the rest.
func (j *ReconciliationJobs) ReconcileAllProjects(ctx context.Context) error {
	slog.Info("Cron: Starting project reconciliation job")

	companyIDs, err := j.companies.ListCompanyIDs(ctx)
	if err != nil {
		return fmt.Errorf("failed to list companies: %w", err)
	}

	total := 0
	var errs []error
	for _, companyID := range companyIDs {
		if err := ctx.Err(); err != nil {
			return err
		}

		n, err := j.reconciler.ReconcileCompany(ctx, companyID)
		total += n
		if err != nil {
			slog.Warn("Cron: Company reconciliation incomplete", "company_id", companyID, "reconciled", n, "error", err)
			errs = append(errs, fmt.Errorf("company %s: %w", companyID, err))
		}
	}

	slog.Info("Cron: Project reconciliation job completed", "companies", len(companyIDs), "projects_reconciled", total, "failed_companies", len(errs))
	return errors.Join(errs...)
}
