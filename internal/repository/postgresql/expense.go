package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/siteledger-backend-go/internal/domain/payperiod"
	"github.com/cmlabs-hris/siteledger-backend-go/internal/domain/project"
	"github.com/cmlabs-hris/siteledger-backend-go/internal/pkg/database"
)

type expenseRepository struct {
	db *database.DB
}

func NewExpenseRepository(db *database.DB) project.ExpenseRepository {
	return &expenseRepository{db: db}
}

func (r *expenseRepository) ListByProject(ctx context.Context, companyID string, projectID string) ([]project.Expense, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, project_id, amount, date, category
		FROM expenses
		WHERE company_id = $1 AND project_id = $2
		ORDER BY date ASC, id ASC
	`

	rows, err := q.Query(ctx, query, companyID, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	expenses := []project.Expense{}
	for rows.Next() {
		var e project.Expense
		if err := rows.Scan(&e.ID, &e.CompanyID, &e.ProjectID, &e.Amount, &e.Date, &e.Category); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		e.Date = payperiod.DateOf(e.Date)
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expenses: %w", err)
	}

	return expenses, nil
}
