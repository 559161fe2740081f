package payroll

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assignment(staffID, day, rate string) TaskAssignment {
	return TaskAssignment{StaffID: staffID, Date: date(day), DailyRate: dec(rate), TaskDescription: "task"}
}

func TestAggregateWages_OncePerDayFirstSeenWins(t *testing.T) {
	assignments := []TaskAssignment{
		assignment("A", "2024-02-01", "100"),
		assignment("A", "2024-02-01", "150"),
		assignment("A", "2024-02-02", "100"),
	}

	got := AggregateWages(assignments)

	assert.Equal(t, 2, got.DaysWorked)
	assert.Equal(t, "200.00", got.TotalWages.StringFixed(2))
	assert.Len(t, got.Assignments, 3, "every assignment stays in the detail list")
}

func TestAggregateWages_OrderDependentOnConflictingRates(t *testing.T) {
	first := AggregateWages([]TaskAssignment{
		assignment("A", "2024-02-01", "150"),
		assignment("A", "2024-02-01", "100"),
	})
	assert.Equal(t, "150.00", first.TotalWages.StringFixed(2))
	assert.Equal(t, 1, first.DaysWorked)
}

func TestAggregateWages_DistinctDates(t *testing.T) {
	rates := []string{"120.50", "99.99", "100", "80.01", "0"}
	var assignments []TaskAssignment
	for i, r := range rates {
		assignments = append(assignments, assignment("A", date("2024-03-01").AddDate(0, 0, i).Format("2006-01-02"), r))
	}

	got := AggregateWages(assignments)

	assert.Equal(t, len(rates), got.DaysWorked)
	assert.Equal(t, "400.50", got.TotalWages.StringFixed(2))
}

func TestAggregateWages_KeysByStaffAndDate(t *testing.T) {
	got := AggregateWages([]TaskAssignment{
		assignment("A", "2024-02-01", "100"),
		assignment("B", "2024-02-01", "90"),
	})

	assert.Equal(t, 2, got.DaysWorked)
	assert.Equal(t, "190.00", got.TotalWages.StringFixed(2))
}

func TestAggregateWages_TimeOfDayDoesNotSplitADay(t *testing.T) {
	morning := assignment("A", "2024-02-01", "100")
	evening := assignment("A", "2024-02-01", "100")
	evening.Date = evening.Date.Add(18 * time.Hour)

	got := AggregateWages([]TaskAssignment{morning, evening})

	assert.Equal(t, 1, got.DaysWorked)
}

func TestAggregateWages_RoundsTotal(t *testing.T) {
	got := AggregateWages([]TaskAssignment{
		assignment("A", "2024-02-01", "0.1"),
		assignment("A", "2024-02-02", "0.2"),
		assignment("A", "2024-02-03", "0.005"),
	})

	assert.True(t, got.TotalWages.Equal(dec("0.31")), "got %s", got.TotalWages)
}

func TestAggregateWages_Empty(t *testing.T) {
	got := AggregateWages(nil)

	assert.Equal(t, 0, got.DaysWorked)
	assert.True(t, got.TotalWages.IsZero())
	assert.NotNil(t, got.Assignments)
}

func TestSumDailyRates_NoDedup(t *testing.T) {
	got := SumDailyRates([]TaskAssignment{
		assignment("A", "2024-02-01", "100"),
		assignment("A", "2024-02-01", "150"),
		assignment("A", "2024-02-02", "100"),
	})

	assert.Equal(t, "350.00", got.StringFixed(2))
}
