package project

import (
	"time"

	"github.com/shopspring/decimal"
)

// Project - Construction project. ActualCost, LaborCost, ReimbursementCost and
// ActualRevenue are written by reconciliation and never read back into it.
type Project struct {
	ID                string
	CompanyID         string
	Name              string
	Budget            decimal.Decimal
	ActualCost        decimal.Decimal
	LaborCost         decimal.Decimal
	ReimbursementCost decimal.Decimal
	ActualRevenue     decimal.Decimal
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Expense - Manual cost entry against a project.
type Expense struct {
	ID        string
	CompanyID string
	ProjectID string
	Amount    decimal.Decimal
	Date      time.Time
	Category  string
}

// IncomeStatus enum
type IncomeStatus string

const (
	IncomeStatusReceived  IncomeStatus = "received"
	IncomeStatusPending   IncomeStatus = "pending"
	IncomeStatusCancelled IncomeStatus = "cancelled"
)

// Income - Revenue record for a project.
type Income struct {
	ID        string
	CompanyID string
	ProjectID string
	Amount    decimal.Decimal
	Status    IncomeStatus
}

// CostFigures - Values persisted by cost reconciliation.
type CostFigures struct {
	ActualCost        decimal.Decimal
	LaborCost         decimal.Decimal
	ReimbursementCost decimal.Decimal
}

// RevenueFigures - Values persisted by revenue reconciliation.
type RevenueFigures struct {
	ActualRevenue decimal.Decimal
}

// CostBreakdown - Rounded cost sources and budget variance for a project.
type CostBreakdown struct {
	ProjectID         string
	LaborCost         decimal.Decimal
	ReimbursementCost decimal.Decimal
	ExpenseCost       decimal.Decimal
	ActualCost        decimal.Decimal
	Budget            decimal.Decimal
	Remaining         decimal.Decimal
	PercentUsed       decimal.Decimal
}

// Figures returns the subset of the breakdown that is persisted.
func (b CostBreakdown) Figures() CostFigures {
	return CostFigures{
		ActualCost:        b.ActualCost,
		LaborCost:         b.LaborCost,
		ReimbursementCost: b.ReimbursementCost,
	}
}

// RevenueBreakdown - Income bucketed by status.
type RevenueBreakdown struct {
	ProjectID string
	Received  decimal.Decimal
	Pending   decimal.Decimal
	Cancelled decimal.Decimal
	Total     decimal.Decimal
}
