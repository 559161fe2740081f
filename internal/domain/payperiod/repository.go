package payperiod

import "context"

// Repository persists the per-company pay period configuration.
type Repository interface {
	// Get returns ErrConfigNotFound when the company has no configuration yet.
	Get(ctx context.Context, companyID string) (Config, error)
	Upsert(ctx context.Context, cfg Config) (Config, error)
}
