package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/siteledger-backend-go/internal/domain/payroll"
	"github.com/cmlabs-hris/siteledger-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/siteledger-backend-go/internal/pkg/validator"
	"github.com/jackc/pgx/v5"
)

type staffRepository struct {
	db *database.DB
}

func NewStaffRepository(db *database.DB) payroll.StaffRepository {
	return &staffRepository{db: db}
}

// ListRoster returns active staff ordered by name; report rows follow this order.
func (r *staffRepository) ListRoster(ctx context.Context, companyID string) ([]payroll.StaffMember, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, name, daily_rate
		FROM staff
		WHERE company_id = $1 AND is_active = TRUE
		ORDER BY name ASC, id ASC
	`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff roster: %w", err)
	}
	defer rows.Close()

	roster := []payroll.StaffMember{}
	for rows.Next() {
		var m payroll.StaffMember
		if err := rows.Scan(&m.ID, &m.CompanyID, &m.Name, &m.DailyRate); err != nil {
			return nil, fmt.Errorf("failed to scan staff member: %w", err)
		}
		roster = append(roster, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate staff roster: %w", err)
	}

	return roster, nil
}

func (r *staffRepository) GetByID(ctx context.Context, id string, companyID string) (payroll.StaffMember, error) {
	if !validator.IsValidUUID(id) {
		return payroll.StaffMember{}, payroll.ErrStaffNotFound
	}

	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, name, daily_rate
		FROM staff
		WHERE id = $1 AND company_id = $2
	`

	var m payroll.StaffMember
	err := q.QueryRow(ctx, query, id, companyID).Scan(&m.ID, &m.CompanyID, &m.Name, &m.DailyRate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.StaffMember{}, payroll.ErrStaffNotFound
		}
		return payroll.StaffMember{}, fmt.Errorf("failed to get staff member: %w", err)
	}

	return m, nil
}
