package booking

import "github.com/shopspring/decimal"

type Money = decimal.Decimal

type Status string

const (
	StatusPending           Status = "pending"
	StatusPaid              Status = "paid"
	StatusAssigned          Status = "Assigned"
	StatusPlanningPhase     Status = "Planning Phase"
	StatusMaterialsPrepared Status = "Materials Prepared"
	StatusOnTheWay          Status = "On the Way to Venue"
	StatusSetupInProgress   Status = "Setup in Progress"
	StatusCompleted         Status = "Completed"
	StatusCanceled          Status = "canceled"
)

var workStatuses = []Status{
	StatusPlanningPhase,
	StatusMaterialsPrepared,
	StatusOnTheWay,
	StatusSetupInProgress,
	StatusCompleted,
}

func (s Status) String() string {
	return string(s)
}

// IsWorkStatus reports whether a decorator may set s.
func (s Status) IsWorkStatus() bool {
	for _, w := range workStatuses {
		if s == w {
			return true
		}
	}
	return false
}

func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCanceled
}

func WorkStatuses() []Status {
	out := make([]Status, len(workStatuses))
	copy(out, workStatuses)
	return out
}

func NewWorkStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsWorkStatus() {
		return "", ErrInvalidWorkStatus
	}
	return st, nil
}

// RevenueStatuses are the statuses whose price counts towards revenue.
func RevenueStatuses() []Status {
	return []Status{StatusPaid, StatusAssigned, StatusCompleted}
}
