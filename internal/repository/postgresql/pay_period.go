package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/siteledger-backend-go/internal/domain/payperiod"
	"github.com/cmlabs-hris/siteledger-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type payPeriodRepository struct {
	db *database.DB
}

func NewPayPeriodRepository(db *database.DB) payperiod.Repository {
	return &payPeriodRepository{db: db}
}

func (r *payPeriodRepository) Get(ctx context.Context, companyID string) (payperiod.Config, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, period_type, start_date, created_at, updated_at
		FROM pay_period_configs
		WHERE company_id = $1
	`

	var c payperiod.Config
	err := q.QueryRow(ctx, query, companyID).Scan(
		&c.ID, &c.CompanyID, &c.Type, &c.StartDate, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payperiod.Config{}, payperiod.ErrConfigNotFound
		}
		return payperiod.Config{}, fmt.Errorf("failed to get pay period config: %w", err)
	}

	c.StartDate = payperiod.DateOf(c.StartDate)
	return c, nil
}

// Upsert keeps one config per company.
func (r *payPeriodRepository) Upsert(ctx context.Context, cfg payperiod.Config) (payperiod.Config, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO pay_period_configs (company_id, period_type, start_date)
		VALUES ($1, $2, $3)
		ON CONFLICT (company_id) DO UPDATE SET
			period_type = EXCLUDED.period_type,
			start_date = EXCLUDED.start_date,
			updated_at = NOW()
		RETURNING id, company_id, period_type, start_date, created_at, updated_at
	`

	var c payperiod.Config
	err := q.QueryRow(ctx, query, cfg.CompanyID, cfg.Type, cfg.StartDate).Scan(
		&c.ID, &c.CompanyID, &c.Type, &c.StartDate, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return payperiod.Config{}, fmt.Errorf("failed to upsert pay period config: %w", err)
	}

	c.StartDate = payperiod.DateOf(c.StartDate)
	return c, nil
}
