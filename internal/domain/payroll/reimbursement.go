package payroll

import (
	"github.com/cmlabs-hris/siteledger-backend-go/internal/domain/payperiod"
	"github.com/cmlabs-hris/siteledger-backend-go/internal/pkg/money"
	"github.com/shopspring/decimal"
)

// ReimbursementPredicate is applied after the store query.
type ReimbursementPredicate func(Reimbursement) bool

// InPeriod keeps reimbursements dated inside p, both ends inclusive.
func InPeriod(p payperiod.Period) ReimbursementPredicate {
	return func(r Reimbursement) bool {
		return p.Contains(r.Date)
	}
}

// IsApproved keeps approved reimbursements only.
func IsApproved(r Reimbursement) bool {
	return r.Status == ReimbursementStatusApproved
}

// FilterReimbursements returns the rows matching every predicate.
func FilterReimbursements(rows []Reimbursement, preds ...ReimbursementPredicate) []Reimbursement {
	result := make([]Reimbursement, 0, len(rows))
next:
	for _, r := range rows {
		for _, pred := range preds {
			if !pred(r) {
				continue next
			}
		}
		result = append(result, r)
	}
	return result
}

// AggregateReimbursements sums the amounts of already-filtered reimbursements.
func AggregateReimbursements(rows []Reimbursement) ReimbursementSummary {
	amounts := make([]decimal.Decimal, 0, len(rows))
	for _, r := range rows {
		amounts = append(amounts, r.Amount)
	}

	items := rows
	if items == nil {
		items = []Reimbursement{}
	}
	return ReimbursementSummary{
		TotalReimbursements: money.Sum(amounts...),
		Items:               items,
	}
}

// ApprovedStatus returns a pointer for use in ReimbursementFilter.
func ApprovedStatus() *ReimbursementStatus {
	s := ReimbursementStatusApproved
	return &s
}
