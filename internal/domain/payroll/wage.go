package payroll

import (
	"github.com/cmlabs-hris/siteledger-backend-go/internal/domain/payperiod"
	"github.com/cmlabs-hris/siteledger-backend-go/internal/pkg/money"
	"github.com/shopspring/decimal"
)

type staffDay struct {
	staffID string
	date    string
}

// AggregateWages pays each staff member once per calendar day. When several
// assignments share a staff member and date, the first one seen supplies the
// rate; later ones on that day are ignored, whatever their rate. The result
// therefore depends on input order when rates conflict.
func AggregateWages(assignments []TaskAssignment) WageSummary {
	daily := make(map[staffDay]decimal.Decimal, len(assignments))
	order := make([]staffDay, 0, len(assignments))

	for _, a := range assignments {
		key := staffDay{staffID: a.StaffID, date: a.Date.Format(payperiod.DateLayout)}
		if _, seen := daily[key]; seen {
			continue
		}
		daily[key] = a.DailyRate
		order = append(order, key)
	}

	rates := make([]decimal.Decimal, 0, len(order))
	for _, key := range order {
		rates = append(rates, daily[key])
	}

	kept := assignments
	if kept == nil {
		kept = []TaskAssignment{}
	}
	return WageSummary{
		TotalWages:  money.Sum(rates...),
		DaysWorked:  len(daily),
		Assignments: kept,
	}
}

// SumDailyRates totals every assignment's rate with no per-day dedup. Project
// cost accounting uses this: it tracks labour spend, not payroll owed.
func SumDailyRates(assignments []TaskAssignment) decimal.Decimal {
	rates := make([]decimal.Decimal, 0, len(assignments))
	for _, a := range assignments {
		rates = append(rates, a.DailyRate)
	}
	return money.Sum(rates...)
}
