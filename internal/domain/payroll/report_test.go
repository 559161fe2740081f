package payroll

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildStaffPayroll(t *testing.T) {
	staff := StaffMember{ID: "A", Name: "Ana"}
	wages := AggregateWages([]TaskAssignment{
		assignment("A", "2024-02-01", "100"),
		assignment("A", "2024-02-01", "150"),
		assignment("A", "2024-02-02", "100"),
	})
	reimbursements := AggregateReimbursements([]Reimbursement{
		reimbursement("1", "2024-02-01", "25.505", ReimbursementStatusApproved),
	})

	got := BuildStaffPayroll(staff, wages, reimbursements)

	assert.Equal(t, 2, got.DaysWorked)
	assert.Equal(t, "200.00", got.TotalWages.StringFixed(2))
	assert.Equal(t, "25.51", got.TotalReimbursements.StringFixed(2))
	assert.Equal(t, "225.51", got.TotalPayout.StringFixed(2))
}

func TestSparse_DropsStaffWithNothingInPeriod(t *testing.T) {
	withWork := BuildStaffPayroll(StaffMember{ID: "A"}, AggregateWages([]TaskAssignment{assignment("A", "2024-02-01", "100")}), AggregateReimbursements(nil))
	withClaim := BuildStaffPayroll(StaffMember{ID: "B"}, AggregateWages(nil), AggregateReimbursements([]Reimbursement{reimbursement("1", "2024-02-01", "5", ReimbursementStatusApproved)}))
	idle := BuildStaffPayroll(StaffMember{ID: "C"}, AggregateWages(nil), AggregateReimbursements(nil))
	zeroRate := BuildStaffPayroll(StaffMember{ID: "D"}, AggregateWages([]TaskAssignment{assignment("D", "2024-02-01", "0")}), AggregateReimbursements(nil))

	got := Sparse([]StaffPayroll{withWork, idle, withClaim, zeroRate})

	require.Len(t, got, 3)
	assert.Equal(t, "A", got[0].Staff.ID)
	assert.Equal(t, "B", got[1].Staff.ID)
	assert.Equal(t, "D", got[2].Staff.ID, "a zero-rate assignment is still an assignment")
}

func TestRenderCSV(t *testing.T) {
	a1 := assignment("A", "2024-02-01", "100")
	a1.TaskDescription = "Pour slab"
	a2 := assignment("A", "2024-02-01", "150")
	a2.TaskDescription = "Formwork"
	row := BuildStaffPayroll(
		StaffMember{ID: "A", Name: "Ana"},
		AggregateWages([]TaskAssignment{a1, a2}),
		AggregateReimbursements([]Reimbursement{
			{Date: date("2024-02-01"), ItemDescription: "Gloves", Amount: dec("12.5"), Status: ReimbursementStatusApproved},
		}),
	)

	got := RenderCSV([]StaffPayroll{row})

	want := strings.Join([]string{
		`"Staff Name","Days Worked","Total Wages","Reimbursements","Total Payout","Assignments","Reimbursement Details"`,
		`"Ana","1","100.00","12.50","112.50","2024-02-01: Pour slab - 100.00; 2024-02-01: Formwork - 150.00","2024-02-01: Gloves - 12.50"`,
	}, "\n")
	assert.Equal(t, want, got)
}

func TestRenderCSV_HeaderOnlyAndQuoteEscaping(t *testing.T) {
	assert.Equal(t,
		`"Staff Name","Days Worked","Total Wages","Reimbursements","Total Payout","Assignments","Reimbursement Details"`,
		RenderCSV(nil),
	)

	row := BuildStaffPayroll(StaffMember{Name: `Jo "Rebar" Smith`}, AggregateWages(nil), AggregateReimbursements(nil))
	lines := strings.Split(RenderCSV([]StaffPayroll{row}), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[1], `"Jo ""Rebar"" Smith","0","0.00","0.00","0.00","",""`), lines[1])
}
