package project

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestComputeCost_RoundsEachSourceBeforeSumming(t *testing.T) {
	got := ComputeCost("p1", dec("123.456"), dec("50.001"), decimal.Zero, decimal.Zero)

	assert.Equal(t, "123.46", got.LaborCost.StringFixed(2))
	assert.Equal(t, "50.00", got.ReimbursementCost.StringFixed(2))
	assert.Equal(t, "0.00", got.ExpenseCost.StringFixed(2))
	assert.True(t, got.ActualCost.Equal(dec("173.46")), "got %s", got.ActualCost)
}

func TestComputeCost_SourceCombinations(t *testing.T) {
	values := []string{"0", "0.004", "19.995", "1000.5"}
	for _, w := range values {
		for _, r := range values {
			for _, e := range values {
				got := ComputeCost("p1", dec(w), dec(r), dec(e), decimal.Zero)
				want := dec(w).Round(2).Add(dec(r).Round(2)).Add(dec(e).Round(2))
				assert.True(t, got.ActualCost.Equal(want), "w=%s r=%s e=%s: got %s want %s", w, r, e, got.ActualCost, want)
			}
		}
	}
}

func TestComputeCost_BudgetVariance(t *testing.T) {
	got := ComputeCost("p1", dec("600"), dec("150"), dec("50"), dec("1000"))

	assert.Equal(t, "800.00", got.ActualCost.StringFixed(2))
	assert.True(t, got.Remaining.Equal(dec("200")))
	assert.True(t, got.PercentUsed.Equal(dec("80")), "got %s", got.PercentUsed)
}

func TestComputeCost_OverBudgetIsNegativeRemaining(t *testing.T) {
	got := ComputeCost("p1", dec("1200.10"), decimal.Zero, decimal.Zero, dec("1000"))

	assert.True(t, got.Remaining.Equal(dec("-200.10")), "got %s", got.Remaining)
	assert.True(t, got.PercentUsed.Equal(dec("120.01")), "got %s", got.PercentUsed)
}

func TestComputeCost_ZeroBudget(t *testing.T) {
	got := ComputeCost("p1", dec("10"), dec("5"), dec("1"), decimal.Zero)

	assert.True(t, got.PercentUsed.IsZero())
	assert.True(t, got.Remaining.Equal(dec("-16")))
	assert.True(t, got.Remaining.Equal(got.Budget.Sub(got.ActualCost)))
}

func TestCostBreakdown_Figures(t *testing.T) {
	b := ComputeCost("p1", dec("10"), dec("5"), dec("1"), dec("100"))
	f := b.Figures()

	assert.True(t, f.ActualCost.Equal(dec("16")))
	assert.True(t, f.LaborCost.Equal(dec("10")))
	assert.True(t, f.ReimbursementCost.Equal(dec("5")))
}

func TestSumExpenses(t *testing.T) {
	got := SumExpenses([]Expense{{Amount: dec("0.1")}, {Amount: dec("0.2")}})
	assert.Equal(t, "0.30", got.StringFixed(2))
	assert.True(t, SumExpenses(nil).IsZero())
}
