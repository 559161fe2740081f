package project

import (
	"github.com/cmlabs-hris/siteledger-backend-go/internal/pkg/money"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// SumExpenses totals expense amounts, rounded to cents.
func SumExpenses(expenses []Expense) decimal.Decimal {
	amounts := make([]decimal.Decimal, 0, len(expenses))
	for _, e := range expenses {
		amounts = append(amounts, e.Amount)
	}
	return money.Sum(amounts...)
}

// ComputeCost rounds each source before adding them up, then derives the
// budget variance. PercentUsed is zero when there is no positive budget.
func ComputeCost(projectID string, wages, reimbursements, expenses, budget decimal.Decimal) CostBreakdown {
	labor := money.RoundToCents(wages)
	claimed := money.RoundToCents(reimbursements)
	manual := money.RoundToCents(expenses)
	actual := labor.Add(claimed).Add(manual)

	percentUsed := decimal.Zero
	if budget.IsPositive() {
		percentUsed = actual.Mul(hundred).Div(budget)
	}

	return CostBreakdown{
		ProjectID:         projectID,
		LaborCost:         labor,
		ReimbursementCost: claimed,
		ExpenseCost:       manual,
		ActualCost:        actual,
		Budget:            budget,
		Remaining:         money.RoundToCents(budget.Sub(actual)),
		PercentUsed:       percentUsed,
	}
}
