package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/siteledger-backend-go/internal/domain/project"
	"github.com/cmlabs-hris/siteledger-backend-go/internal/pkg/database"
)

type incomeRepository struct {
	db *database.DB
}

func NewIncomeRepository(db *database.DB) project.IncomeRepository {
	return &incomeRepository{db: db}
}

func (r *incomeRepository) ListByProject(ctx context.Context, companyID string, projectID string) ([]project.Income, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, project_id, amount, status
		FROM incomes
		WHERE company_id = $1 AND project_id = $2
	`

	rows, err := q.Query(ctx, query, companyID, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list incomes: %w", err)
	}
	defer rows.Close()

	incomes := []project.Income{}
	for rows.Next() {
		var in project.Income
		if err := rows.Scan(&in.ID, &in.CompanyID, &in.ProjectID, &in.Amount, &in.Status); err != nil {
			return nil, fmt.Errorf("failed to scan income: %w", err)
		}
		incomes = append(incomes, in)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate incomes: %w", err)
	}

	return incomes, nil
}
