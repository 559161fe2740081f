package payroll

import (
	"testing"

	"github.com/cmlabs-hris/siteledger-backend-go/internal/domain/payperiod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reimbursement(id, day, amount string, status ReimbursementStatus) Reimbursement {
	return Reimbursement{ID: id, StaffID: "A", Date: date(day), ItemDescription: "item " + id, Amount: dec(amount), Status: status}
}

func TestFilterReimbursements_InPeriodInclusive(t *testing.T) {
	period, err := payperiod.NewPeriod(date("2024-01-15"), date("2024-01-28"))
	require.NoError(t, err)

	rows := []Reimbursement{
		reimbursement("before", "2024-01-14", "10", ReimbursementStatusApproved),
		reimbursement("start", "2024-01-15", "20", ReimbursementStatusApproved),
		reimbursement("end", "2024-01-28", "30", ReimbursementStatusApproved),
		reimbursement("after", "2024-01-29", "40", ReimbursementStatusApproved),
	}

	got := FilterReimbursements(rows, InPeriod(period))

	require.Len(t, got, 2)
	assert.Equal(t, "start", got[0].ID)
	assert.Equal(t, "end", got[1].ID)
}

func TestFilterReimbursements_AllPredicatesMustMatch(t *testing.T) {
	period, err := payperiod.NewPeriod(date("2024-01-01"), date("2024-01-31"))
	require.NoError(t, err)

	rows := []Reimbursement{
		reimbursement("1", "2024-01-10", "10", ReimbursementStatusApproved),
		reimbursement("2", "2024-01-10", "10", ReimbursementStatusPending),
		reimbursement("3", "2024-01-10", "10", ReimbursementStatusRejected),
		reimbursement("4", "2024-02-10", "10", ReimbursementStatusApproved),
	}

	got := FilterReimbursements(rows, IsApproved, InPeriod(period))

	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)
}

func TestFilterReimbursements_NoPredicatesKeepsAll(t *testing.T) {
	rows := []Reimbursement{reimbursement("1", "2024-01-10", "10", ReimbursementStatusApproved)}
	assert.Len(t, FilterReimbursements(rows), 1)
	assert.Empty(t, FilterReimbursements(nil))
}

func TestAggregateReimbursements(t *testing.T) {
	got := AggregateReimbursements([]Reimbursement{
		reimbursement("1", "2024-01-10", "0.1", ReimbursementStatusApproved),
		reimbursement("2", "2024-01-11", "0.2", ReimbursementStatusApproved),
		reimbursement("3", "2024-01-12", "49.701", ReimbursementStatusApproved),
	})

	assert.Equal(t, "50.00", got.TotalReimbursements.StringFixed(2))
	assert.Len(t, got.Items, 3)

	empty := AggregateReimbursements(nil)
	assert.True(t, empty.TotalReimbursements.IsZero())
	assert.NotNil(t, empty.Items)
}
