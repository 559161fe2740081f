package payperiod

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/siteledger-backend-go/internal/domain/payperiod"
	"github.com/cmlabs-hris/siteledger-backend-go/internal/pkg/jwt"
)

type PayPeriodServiceImpl struct {
	repo payperiod.Repository
	now  func() time.Time
}

func NewPayPeriodService(repo payperiod.Repository) payperiod.Service {
	return &PayPeriodServiceImpl{repo: repo, now: time.Now}
}

// NewPayPeriodServiceWithClock is used by tests to pin "today".
func NewPayPeriodServiceWithClock(repo payperiod.Repository, now func() time.Time) payperiod.Service {
	return &PayPeriodServiceImpl{repo: repo, now: now}
}

// ========== CONFIG ==========

func (s *PayPeriodServiceImpl) GetConfig(ctx context.Context) (payperiod.ConfigResponse, error) {
	cfg, err := s.loadConfig(ctx)
	if err != nil {
		return payperiod.ConfigResponse{}, err
	}
	return mapToConfigResponse(cfg), nil
}

func (s *PayPeriodServiceImpl) UpdateConfig(ctx context.Context, req payperiod.UpdateConfigRequest) (payperiod.ConfigResponse, error) {
	if err := req.Validate(); err != nil {
		return payperiod.ConfigResponse{}, err
	}

	companyID, err := jwt.CompanyIDFromContext(ctx)
	if err != nil {
		return payperiod.ConfigResponse{}, err
	}

	periodType, err := payperiod.ParseType(req.Type)
	if err != nil {
		return payperiod.ConfigResponse{}, err
	}
	startDate, err := payperiod.ParseDate(req.StartDate)
	if err != nil {
		return payperiod.ConfigResponse{}, fmt.Errorf("%w: %v", payperiod.ErrInvalidStartDate, err)
	}

	updated, err := s.repo.Upsert(ctx, payperiod.Config{
		CompanyID: companyID,
		Type:      periodType,
		StartDate: startDate,
	})
	if err != nil {
		return payperiod.ConfigResponse{}, fmt.Errorf("failed to save pay period config: %w", err)
	}

	slog.Info("Pay period config updated", "company_id", companyID, "type", updated.Type, "start_date", updated.StartDate.Format(payperiod.DateLayout))
	return mapToConfigResponse(updated), nil
}

// ========== PERIODS ==========

func (s *PayPeriodServiceImpl) CurrentPeriod(ctx context.Context, req payperiod.CurrentPeriodRequest) (payperiod.PeriodResponse, error) {
	if err := req.Validate(); err != nil {
		return payperiod.PeriodResponse{}, err
	}

	cfg, err := s.loadConfig(ctx)
	if err != nil {
		return payperiod.PeriodResponse{}, err
	}

	asOf := s.now()
	if req.AsOf != "" {
		asOf, err = payperiod.ParseDate(req.AsOf)
		if err != nil {
			return payperiod.PeriodResponse{}, err
		}
	}

	return payperiod.NewPeriodResponse(payperiod.CurrentPeriod(cfg, asOf)), nil
}

func (s *PayPeriodServiceImpl) RecentPeriods(ctx context.Context, req payperiod.RecentPeriodsRequest) ([]payperiod.PeriodResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	cfg, err := s.loadConfig(ctx)
	if err != nil {
		return nil, err
	}

	periods := payperiod.RecentPeriods(cfg, req.Count, s.now())
	result := make([]payperiod.PeriodResponse, 0, len(periods))
	for _, p := range periods {
		result = append(result, payperiod.NewPeriodResponse(p))
	}
	return result, nil
}

func (s *PayPeriodServiceImpl) ResolvePeriod(ctx context.Context, req payperiod.ResolvePeriodRequest) (payperiod.Period, error) {
	if err := req.Validate(); err != nil {
		return payperiod.Period{}, err
	}

	switch {
	case req.StartDate != "":
		start, err := payperiod.ParseDate(req.StartDate)
		if err != nil {
			return payperiod.Period{}, err
		}
		end, err := payperiod.ParseDate(req.EndDate)
		if err != nil {
			return payperiod.Period{}, err
		}
		return payperiod.NewPeriod(start, end)
	case req.Label != "":
		return payperiod.ParseLabel(req.Label)
	}

	cfg, err := s.loadConfig(ctx)
	if err != nil {
		return payperiod.Period{}, err
	}
	return payperiod.CurrentPeriod(cfg, s.now()), nil
}

// ========== HELPERS ==========

// loadConfig returns the stored config, creating the default one the first
// time. A failed read falls back to the default without persisting it; a
// failed lazy write is returned.
func (s *PayPeriodServiceImpl) loadConfig(ctx context.Context) (payperiod.Config, error) {
	companyID, err := jwt.CompanyIDFromContext(ctx)
	if err != nil {
		return payperiod.Config{}, err
	}

	cfg, err := s.repo.Get(ctx, companyID)
	if err == nil {
		return cfg, nil
	}

	defaults := payperiod.DefaultConfig(companyID, s.now())
	if !errors.Is(err, payperiod.ErrConfigNotFound) {
		slog.Warn("Pay period config unavailable, using defaults", "company_id", companyID, "error", err)
		return defaults, nil
	}

	created, err := s.repo.Upsert(ctx, defaults)
	if err != nil {
		return payperiod.Config{}, fmt.Errorf("failed to create default pay period config: %w", err)
	}
	slog.Info("Default pay period config created", "company_id", companyID, "start_date", created.StartDate.Format(payperiod.DateLayout))
	return created, nil
}

func mapToConfigResponse(cfg payperiod.Config) payperiod.ConfigResponse {
	return payperiod.ConfigResponse{
		ID:           cfg.ID,
		CompanyID:    cfg.CompanyID,
		Type:         string(cfg.Type),
		StartDate:    cfg.StartDate.Format(payperiod.DateLayout),
		PeriodLength: payperiod.PeriodLength(cfg.Type),
	}
}
