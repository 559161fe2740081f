package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/siteledger-backend-go/internal/domain/project"
	"github.com/cmlabs-hris/siteledger-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/siteledger-backend-go/internal/pkg/validator"
	"github.com/jackc/pgx/v5"
)

type projectRepository struct {
	db *database.DB
}

func NewProjectRepository(db *database.DB) project.ProjectRepository {
	return &projectRepository{db: db}
}

func (r *projectRepository) GetByID(ctx context.Context, id string, companyID string) (project.Project, error) {
	if !validator.IsValidUUID(id) {
		return project.Project{}, project.ErrProjectNotFound
	}

	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, name, budget, actual_cost, labor_cost, reimbursement_cost,
			   actual_revenue, created_at, updated_at
		FROM projects
		WHERE id = $1 AND company_id = $2
	`

	var p project.Project
	err := q.QueryRow(ctx, query, id, companyID).Scan(
		&p.ID, &p.CompanyID, &p.Name, &p.Budget, &p.ActualCost, &p.LaborCost, &p.ReimbursementCost,
		&p.ActualRevenue, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return project.Project{}, project.ErrProjectNotFound
		}
		return project.Project{}, fmt.Errorf("failed to get project: %w", err)
	}

	return p, nil
}

func (r *projectRepository) ListIDs(ctx context.Context, companyID string) ([]string, error) {
	return r.listStrings(ctx, `SELECT id FROM projects WHERE company_id = $1 ORDER BY created_at ASC, id ASC`, companyID)
}

func (r *projectRepository) ListCompanyIDs(ctx context.Context) ([]string, error) {
	return r.listStrings(ctx, `SELECT DISTINCT company_id FROM projects ORDER BY company_id`)
}

// UpdateCostFigures writes the reconciled cost and records it in the
// reconciliation history in one transaction.
func (r *projectRepository) UpdateCostFigures(ctx context.Context, id string, companyID string, figures project.CostFigures) error {
	return WithTransaction(ctx, r.db, func(txCtx context.Context) error {
		q := GetQuerier(txCtx, r.db)

		tag, err := q.Exec(txCtx, `
			UPDATE projects
			SET actual_cost = $3, labor_cost = $4, reimbursement_cost = $5, updated_at = NOW()
			WHERE id = $1 AND company_id = $2
		`, id, companyID, figures.ActualCost, figures.LaborCost, figures.ReimbursementCost)
		if err != nil {
			return fmt.Errorf("failed to update project cost: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return project.ErrProjectNotFound
		}

		_, err = q.Exec(txCtx, `
			INSERT INTO project_reconciliations (project_id, company_id, kind, actual_cost, labor_cost, reimbursement_cost)
			VALUES ($1, $2, 'cost', $3, $4, $5)
		`, id, companyID, figures.ActualCost, figures.LaborCost, figures.ReimbursementCost)
		if err != nil {
			return fmt.Errorf("failed to record cost reconciliation: %w", err)
		}
		return nil
	})
}

func (r *projectRepository) UpdateRevenueFigures(ctx context.Context, id string, companyID string, figures project.RevenueFigures) error {
	return WithTransaction(ctx, r.db, func(txCtx context.Context) error {
		q := GetQuerier(txCtx, r.db)

		tag, err := q.Exec(txCtx, `
			UPDATE projects
			SET actual_revenue = $3, updated_at = NOW()
			WHERE id = $1 AND company_id = $2
		`, id, companyID, figures.ActualRevenue)
		if err != nil {
			return fmt.Errorf("failed to update project revenue: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return project.ErrProjectNotFound
		}

		_, err = q.Exec(txCtx, `
			INSERT INTO project_reconciliations (project_id, company_id, kind, actual_revenue)
			VALUES ($1, $2, 'revenue', $3)
		`, id, companyID, figures.ActualRevenue)
		if err != nil {
			return fmt.Errorf("failed to record revenue reconciliation: %w", err)
		}
		return nil
	})
}

func (r *projectRepository) listStrings(ctx context.Context, query string, args ...interface{}) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	result := []string{}
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, fmt.Errorf("failed to scan project row: %w", err)
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate projects: %w", err)
	}
	return result, nil
}
