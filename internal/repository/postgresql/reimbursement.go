package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/siteledger-backend-go/internal/domain/payperiod"
	"github.com/cmlabs-hris/siteledger-backend-go/internal/domain/payroll"
	"github.com/cmlabs-hris/siteledger-backend-go/internal/pkg/database"
)

type reimbursementRepository struct {
	db *database.DB
}

func NewReimbursementRepository(db *database.DB) payroll.ReimbursementRepository {
	return &reimbursementRepository{db: db}
}

// List applies equality filters only; callers narrow by date afterwards.
func (r *reimbursementRepository) List(ctx context.Context, companyID string, filter payroll.ReimbursementFilter) ([]payroll.Reimbursement, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, staff_id, project_id, date, item_description, amount, status, created_at
		FROM reimbursements
		WHERE company_id = $1
	`
	args := []interface{}{companyID}
	argIdx := 2

	if filter.StaffID != nil {
		query += fmt.Sprintf(" AND staff_id = $%d", argIdx)
		args = append(args, *filter.StaffID)
		argIdx++
	}
	if filter.ProjectID != nil {
		query += fmt.Sprintf(" AND project_id = $%d", argIdx)
		args = append(args, *filter.ProjectID)
		argIdx++
	}
	if filter.Status != nil {
		query += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}
	query += " ORDER BY date ASC, created_at ASC, id ASC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list reimbursements: %w", err)
	}
	defer rows.Close()

	result := []payroll.Reimbursement{}
	for rows.Next() {
		var rb payroll.Reimbursement
		if err := rows.Scan(
			&rb.ID, &rb.CompanyID, &rb.StaffID, &rb.ProjectID, &rb.Date,
			&rb.ItemDescription, &rb.Amount, &rb.Status, &rb.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan reimbursement: %w", err)
		}
		rb.Date = payperiod.DateOf(rb.Date)
		result = append(result, rb)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate reimbursements: %w", err)
	}

	return result, nil
}
