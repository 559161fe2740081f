package payperiod

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/cmlabs-hris/siteledger-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/siteledger-backend-go/internal/domain/payperiod"
	"github.com/cmlabs-hris/siteledger-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/siteledger-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const companyID = "6f1c2e64-0c1e-4a39-9a59-3f7f0f1d2b10"

type fakeRepo struct {
	mu        sync.Mutex
	configs   map[string]payperiod.Config
	getErr    error
	upsertErr error
	upserts   int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{configs: map[string]payperiod.Config{}}
}

func (r *fakeRepo) Get(ctx context.Context, companyID string) (payperiod.Config, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.getErr != nil {
		return payperiod.Config{}, r.getErr
	}
	cfg, ok := r.configs[companyID]
	if !ok {
		return payperiod.Config{}, payperiod.ErrConfigNotFound
	}
	return cfg, nil
}

func (r *fakeRepo) Upsert(ctx context.Context, cfg payperiod.Config) (payperiod.Config, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.upserts++
	if r.upsertErr != nil {
		return payperiod.Config{}, r.upsertErr
	}
	if cfg.ID == "" {
		cfg.ID = "cfg-" + cfg.CompanyID
	}
	r.configs[cfg.CompanyID] = cfg
	return cfg, nil
}

func fixedClock(s string) func() time.Time {
	t, err := time.Parse(payperiod.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return func() time.Time { return t.Add(15 * time.Hour) }
}

func scoped() context.Context {
	return jwt.WithCompanyID(context.Background(), companyID)
}

func seed(repo *fakeRepo, periodType payperiod.Type, start string) {
	d, _ := payperiod.ParseDate(start)
	repo.configs[companyID] = payperiod.Config{ID: "cfg-1", CompanyID: companyID, Type: periodType, StartDate: d}
}

func TestGetConfig_CreatesDefaultOnFirstAccess(t *testing.T) {
	repo := newFakeRepo()
	svc := NewPayPeriodServiceWithClock(repo, fixedClock("2024-01-18")) // Thursday

	got, err := svc.GetConfig(scoped())
	require.NoError(t, err)

	assert.Equal(t, "biweekly", got.Type)
	assert.Equal(t, "2024-01-15", got.StartDate)
	assert.Equal(t, 14, got.PeriodLength)
	assert.Equal(t, 1, repo.upserts)

	_, err = svc.GetConfig(scoped())
	require.NoError(t, err)
	assert.Equal(t, 1, repo.upserts, "default config is only written once")
}

func TestGetConfig_DefaultWriteFailureIsReturned(t *testing.T) {
	repo := newFakeRepo()
	repo.upsertErr = errors.New("db down")
	svc := NewPayPeriodServiceWithClock(repo, fixedClock("2024-01-18"))

	_, err := svc.GetConfig(scoped())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db down")
}

func TestCurrentPeriod_ReadFailureFallsBackToDefault(t *testing.T) {
	repo := newFakeRepo()
	repo.getErr = errors.New("timeout")
	svc := NewPayPeriodServiceWithClock(repo, fixedClock("2024-01-18"))

	got, err := svc.CurrentPeriod(scoped(), payperiod.CurrentPeriodRequest{})
	require.NoError(t, err)
	assert.Equal(t, "2024-01-15 to 2024-01-28", got.Label)
	assert.Equal(t, 0, repo.upserts, "fallback default is not persisted")
}

func TestCurrentPeriod_AsOf(t *testing.T) {
	repo := newFakeRepo()
	seed(repo, payperiod.TypeBiweekly, "2024-01-01")
	svc := NewPayPeriodServiceWithClock(repo, fixedClock("2024-06-01"))

	got, err := svc.CurrentPeriod(scoped(), payperiod.CurrentPeriodRequest{AsOf: "2024-01-20"})
	require.NoError(t, err)
	assert.Equal(t, payperiod.PeriodResponse{StartDate: "2024-01-15", EndDate: "2024-01-28", Label: "2024-01-15 to 2024-01-28"}, got)
}

func TestCurrentPeriod_InvalidAsOf(t *testing.T) {
	svc := NewPayPeriodServiceWithClock(newFakeRepo(), fixedClock("2024-01-18"))

	_, err := svc.CurrentPeriod(scoped(), payperiod.CurrentPeriodRequest{AsOf: "20-01-2024"})
	var verrs validator.ValidationErrors
	assert.True(t, errors.As(err, &verrs))
}

func TestRecentPeriods(t *testing.T) {
	repo := newFakeRepo()
	seed(repo, payperiod.TypeWeekly, "2024-01-01")
	svc := NewPayPeriodServiceWithClock(repo, fixedClock("2024-01-17"))

	got, err := svc.RecentPeriods(scoped(), payperiod.RecentPeriodsRequest{Count: 3})
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "2024-01-15 to 2024-01-21", got[0].Label)
	assert.Equal(t, "2024-01-08 to 2024-01-14", got[1].Label)
	assert.Equal(t, "2024-01-01 to 2024-01-07", got[2].Label)
}

func TestRecentPeriods_CountOutOfRange(t *testing.T) {
	svc := NewPayPeriodServiceWithClock(newFakeRepo(), fixedClock("2024-01-17"))

	for _, count := range []int{0, -1, payperiod.MaxRecentPeriods + 1} {
		_, err := svc.RecentPeriods(scoped(), payperiod.RecentPeriodsRequest{Count: count})
		assert.Error(t, err, "count %d", count)
	}
}

func TestUpdateConfig(t *testing.T) {
	repo := newFakeRepo()
	svc := NewPayPeriodServiceWithClock(repo, fixedClock("2024-01-17"))

	got, err := svc.UpdateConfig(scoped(), payperiod.UpdateConfigRequest{Type: "monthly", StartDate: "2024-02-01"})
	require.NoError(t, err)
	assert.Equal(t, "monthly", got.Type)
	assert.Equal(t, 30, got.PeriodLength)
	assert.Equal(t, payperiod.TypeMonthly, repo.configs[companyID].Type)
}

func TestUpdateConfig_Invalid(t *testing.T) {
	repo := newFakeRepo()
	svc := NewPayPeriodServiceWithClock(repo, fixedClock("2024-01-17"))

	_, err := svc.UpdateConfig(scoped(), payperiod.UpdateConfigRequest{Type: "daily", StartDate: "yesterday"})
	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Len(t, verrs, 2)
	assert.Equal(t, 0, repo.upserts)
}

func TestUpdateConfig_PersistFailure(t *testing.T) {
	repo := newFakeRepo()
	repo.upsertErr = errors.New("constraint violation")
	svc := NewPayPeriodServiceWithClock(repo, fixedClock("2024-01-17"))

	_, err := svc.UpdateConfig(scoped(), payperiod.UpdateConfigRequest{Type: "weekly", StartDate: "2024-01-01"})
	assert.ErrorContains(t, err, "constraint violation")
}

func TestResolvePeriod(t *testing.T) {
	repo := newFakeRepo()
	seed(repo, payperiod.TypeBiweekly, "2024-01-01")
	svc := NewPayPeriodServiceWithClock(repo, fixedClock("2024-01-20"))

	explicit, err := svc.ResolvePeriod(scoped(), payperiod.ResolvePeriodRequest{StartDate: "2024-03-01", EndDate: "2024-03-31"})
	require.NoError(t, err)
	assert.Equal(t, "2024-03-01 to 2024-03-31", explicit.Label())

	labelled, err := svc.ResolvePeriod(scoped(), payperiod.ResolvePeriodRequest{Label: "2024-01-01 to 2024-01-14"})
	require.NoError(t, err)
	assert.Equal(t, 14, labelled.Days())

	current, err := svc.ResolvePeriod(scoped(), payperiod.ResolvePeriodRequest{})
	require.NoError(t, err)
	assert.Equal(t, "2024-01-15 to 2024-01-28", current.Label())
}

func TestResolvePeriod_EndBeforeStart(t *testing.T) {
	svc := NewPayPeriodServiceWithClock(newFakeRepo(), fixedClock("2024-01-20"))

	_, err := svc.ResolvePeriod(scoped(), payperiod.ResolvePeriodRequest{StartDate: "2024-03-31", EndDate: "2024-03-01"})
	assert.ErrorIs(t, err, payperiod.ErrInvalidDateRange)
}

func TestMissingCompanyScope(t *testing.T) {
	svc := NewPayPeriodServiceWithClock(newFakeRepo(), fixedClock("2024-01-20"))

	_, err := svc.GetConfig(context.Background())
	assert.ErrorIs(t, err, auth.ErrCompanyIDRequired)
}
