package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/siteledger-backend-go/internal/domain/payperiod"
	"github.com/cmlabs-hris/siteledger-backend-go/internal/domain/payroll"
	"github.com/cmlabs-hris/siteledger-backend-go/internal/pkg/database"
)

type taskAssignmentRepository struct {
	db *database.DB
}

func NewTaskAssignmentRepository(db *database.DB) payroll.AssignmentRepository {
	return &taskAssignmentRepository{db: db}
}

// List orders rows by date and then creation time, which decides the
// "first seen" assignment when one person has several tasks on a day.
func (r *taskAssignmentRepository) List(ctx context.Context, companyID string, filter payroll.AssignmentFilter) ([]payroll.TaskAssignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ta.id, ta.company_id, ta.staff_id, ta.project_id, p.name,
			   ta.date, ta.task_description, ta.daily_rate, ta.created_at
		FROM task_assignments ta
		JOIN projects p ON p.id = ta.project_id
		WHERE ta.company_id = $1
	`
	args := []interface{}{companyID}
	argIdx := 2

	if filter.StaffID != nil {
		query += fmt.Sprintf(" AND ta.staff_id = $%d", argIdx)
		args = append(args, *filter.StaffID)
		argIdx++
	}
	if filter.ProjectID != nil {
		query += fmt.Sprintf(" AND ta.project_id = $%d", argIdx)
		args = append(args, *filter.ProjectID)
		argIdx++
	}
	if filter.Period != nil {
		query += fmt.Sprintf(" AND ta.date BETWEEN $%d AND $%d", argIdx, argIdx+1)
		args = append(args, filter.Period.Start, filter.Period.End)
		argIdx += 2
	}
	query += " ORDER BY ta.date ASC, ta.created_at ASC, ta.id ASC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list task assignments: %w", err)
	}
	defer rows.Close()

	assignments := []payroll.TaskAssignment{}
	for rows.Next() {
		var a payroll.TaskAssignment
		if err := rows.Scan(
			&a.ID, &a.CompanyID, &a.StaffID, &a.ProjectID, &a.ProjectName,
			&a.Date, &a.TaskDescription, &a.DailyRate, &a.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan task assignment: %w", err)
		}
		a.Date = payperiod.DateOf(a.Date)
		assignments = append(assignments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate task assignments: %w", err)
	}

	return assignments, nil
}
