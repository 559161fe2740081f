package payroll

import (
	"context"

	"github.com/cmlabs-hris/siteledger-backend-go/internal/domain/payperiod"
)

// AssignmentFilter narrows an assignment query. Nil fields are not applied;
// Period is inclusive on both ends.
type AssignmentFilter struct {
	StaffID   *string
	ProjectID *string
	Period    *payperiod.Period
}

// ReimbursementFilter only carries equality filters. Date windows are applied
// by the caller with FilterReimbursements because the backing store cannot
// combine a status equality with a date range in one query.
type ReimbursementFilter struct {
	StaffID   *string
	ProjectID *string
	Status    *ReimbursementStatus
}

// All methods include companyID to keep organisations isolated.
type AssignmentRepository interface {
	List(ctx context.Context, companyID string, filter AssignmentFilter) ([]TaskAssignment, error)
}

type ReimbursementRepository interface {
	List(ctx context.Context, companyID string, filter ReimbursementFilter) ([]Reimbursement, error)
}

type StaffRepository interface {
	ListRoster(ctx context.Context, companyID string) ([]StaffMember, error)
	GetByID(ctx context.Context, id string, companyID string) (StaffMember, error)
}
