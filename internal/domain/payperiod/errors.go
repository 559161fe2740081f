package payperiod

import "errors"

var (
	ErrConfigNotFound     = errors.New("pay period config not found")
	ErrInvalidPeriodType  = errors.New("invalid pay period type")
	ErrInvalidStartDate   = errors.New("invalid pay period start date")
	ErrInvalidPeriodLabel = errors.New("invalid pay period label")
	ErrInvalidDateRange   = errors.New("period end date is before start date")
)
