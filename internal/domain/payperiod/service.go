package payperiod

import "context"

type Service interface {
	GetConfig(ctx context.Context) (ConfigResponse, error)
	UpdateConfig(ctx context.Context, req UpdateConfigRequest) (ConfigResponse, error)
	CurrentPeriod(ctx context.Context, req CurrentPeriodRequest) (PeriodResponse, error)
	RecentPeriods(ctx context.Context, req RecentPeriodsRequest) ([]PeriodResponse, error)

	// ResolvePeriod turns explicit dates, a period label, or nothing (current
	// period) into a concrete window.
	ResolvePeriod(ctx context.Context, req ResolvePeriodRequest) (Period, error)
}
