package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// StaffMember - Roster entry. DailyRate is a display default only; wages are
// always computed from the rate captured on each TaskAssignment.
type StaffMember struct {
	ID        string
	CompanyID string
	Name      string
	DailyRate decimal.Decimal
}

// TaskAssignment - One task performed by a staff member on a project on a day.
// Several assignments may share the same staff member and date.
type TaskAssignment struct {
	ID              string
	CompanyID       string
	StaffID         string
	ProjectID       string
	ProjectName     string
	Date            time.Time
	TaskDescription string
	DailyRate       decimal.Decimal // rate at creation time
	CreatedAt       time.Time
}

// ReimbursementStatus enum
type ReimbursementStatus string

const (
	ReimbursementStatusPending  ReimbursementStatus = "pending"
	ReimbursementStatusApproved ReimbursementStatus = "approved"
	ReimbursementStatusRejected ReimbursementStatus = "rejected"
)

// Reimbursement - Expense claim raised by a staff member. Status transitions
// happen in the approval workflow; only approved rows are paid.
type Reimbursement struct {
	ID              string
	CompanyID       string
	StaffID         string
	ProjectID       *string
	Date            time.Time
	ItemDescription string
	Amount          decimal.Decimal
	Status          ReimbursementStatus
	CreatedAt       time.Time
}

// WageSummary - Output of AggregateWages.
type WageSummary struct {
	TotalWages  decimal.Decimal
	DaysWorked  int
	Assignments []TaskAssignment
}

// ReimbursementSummary - Output of AggregateReimbursements.
type ReimbursementSummary struct {
	TotalReimbursements decimal.Decimal
	Items               []Reimbursement
}

// StaffPayroll - One staff member's payroll for a period.
type StaffPayroll struct {
	Staff               StaffMember
	DaysWorked          int
	TotalWages          decimal.Decimal
	TotalReimbursements decimal.Decimal
	TotalPayout         decimal.Decimal
	Assignments         []TaskAssignment
	Reimbursements      []Reimbursement
}

// IsEmpty reports whether the staff member had neither assignments nor
// reimbursements in the period.
func (p StaffPayroll) IsEmpty() bool {
	return len(p.Assignments) == 0 && len(p.Reimbursements) == 0
}
