package payroll

import (
	"strconv"
	"strings"

	"github.com/cmlabs-hris/siteledger-backend-go/internal/domain/payperiod"
	"github.com/cmlabs-hris/siteledger-backend-go/internal/pkg/money"
)

// CSVHeader is the fixed column order of the payroll export.
var CSVHeader = []string{
	"Staff Name",
	"Days Worked",
	"Total Wages",
	"Reimbursements",
	"Total Payout",
	"Assignments",
	"Reimbursement Details",
}

const (
	csvDetailSeparator = "; "
	csvRowSeparator    = "\n"
)

// BuildStaffPayroll combines one staff member's wage and reimbursement
// summaries for a period.
func BuildStaffPayroll(staff StaffMember, wages WageSummary, reimbursements ReimbursementSummary) StaffPayroll {
	return StaffPayroll{
		Staff:               staff,
		DaysWorked:          wages.DaysWorked,
		TotalWages:          wages.TotalWages,
		TotalReimbursements: reimbursements.TotalReimbursements,
		TotalPayout:         money.Sum(wages.TotalWages, reimbursements.TotalReimbursements),
		Assignments:         wages.Assignments,
		Reimbursements:      reimbursements.Items,
	}
}

// Sparse drops staff members with no assignments and no reimbursements,
// keeping the order of the rest.
func Sparse(rows []StaffPayroll) []StaffPayroll {
	result := make([]StaffPayroll, 0, len(rows))
	for _, r := range rows {
		if r.IsEmpty() {
			continue
		}
		result = append(result, r)
	}
	return result
}

// RenderCSV serialises the report. Every cell is double-quoted and rows are
// joined with a newline, header first, without a trailing newline.
func RenderCSV(rows []StaffPayroll) string {
	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, csvLine(CSVHeader))

	for _, r := range rows {
		lines = append(lines, csvLine([]string{
			r.Staff.Name,
			strconv.Itoa(r.DaysWorked),
			money.Format(r.TotalWages),
			money.Format(r.TotalReimbursements),
			money.Format(r.TotalPayout),
			AssignmentDetails(r.Assignments),
			ReimbursementDetails(r.Reimbursements),
		}))
	}

	return strings.Join(lines, csvRowSeparator)
}

// AssignmentDetails renders "{date}: {task} - {rate}" entries joined by "; ".
func AssignmentDetails(assignments []TaskAssignment) string {
	entries := make([]string, 0, len(assignments))
	for _, a := range assignments {
		entries = append(entries, detailEntry(a.Date.Format(payperiod.DateLayout), a.TaskDescription, money.Format(a.DailyRate)))
	}
	return strings.Join(entries, csvDetailSeparator)
}

// ReimbursementDetails renders "{date}: {item} - {amount}" entries joined by "; ".
func ReimbursementDetails(items []Reimbursement) string {
	entries := make([]string, 0, len(items))
	for _, r := range items {
		entries = append(entries, detailEntry(r.Date.Format(payperiod.DateLayout), r.ItemDescription, money.Format(r.Amount)))
	}
	return strings.Join(entries, csvDetailSeparator)
}

func detailEntry(date, description, amount string) string {
	return date + ": " + description + " - " + amount
}

func csvLine(cells []string) string {
	quoted := make([]string, 0, len(cells))
	for _, c := range cells {
		quoted = append(quoted, `"`+strings.ReplaceAll(c, `"`, `""`)+`"`)
	}
	return strings.Join(quoted, ",")
}
