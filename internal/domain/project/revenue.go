package project

import (
	"github.com/cmlabs-hris/siteledger-backend-go/internal/pkg/money"
	"github.com/shopspring/decimal"
)

// ComputeRevenue sums each status bucket independently and rounds each one.
// Rows with an unrecognised status are left out of every bucket.
func ComputeRevenue(projectID string, incomes []Income) RevenueBreakdown {
	buckets := map[IncomeStatus][]decimal.Decimal{}
	for _, in := range incomes {
		switch in.Status {
		case IncomeStatusReceived, IncomeStatusPending, IncomeStatusCancelled:
			buckets[in.Status] = append(buckets[in.Status], in.Amount)
		}
	}

	received := money.Sum(buckets[IncomeStatusReceived]...)
	pending := money.Sum(buckets[IncomeStatusPending]...)
	cancelled := money.Sum(buckets[IncomeStatusCancelled]...)

	return RevenueBreakdown{
		ProjectID: projectID,
		Received:  received,
		Pending:   pending,
		Cancelled: cancelled,
		Total:     received.Add(pending).Add(cancelled),
	}
}

// Figures returns the only revenue value that is persisted.
func (b RevenueBreakdown) Figures() RevenueFigures {
	return RevenueFigures{ActualRevenue: b.Received}
}
