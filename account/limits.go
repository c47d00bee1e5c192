package account

import (
	"github.com/shopspring/decimal"
)

// Limits is the ceiling policy of a limited account.
//
// Withdrawals counts every withdrawal in the account history, not only the
// ones made today; the counter never resets.
type Limits struct {
	PerOperation decimal.Decimal
	Withdrawals  int
}

// DefaultLimits returns the limits a simple account is opened with.
func DefaultLimits() Limits {
	return Limits{
		PerOperation: decimal.NewFromInt(500),
		Withdrawals:  3,
	}
}

// check runs the ceiling checks in order: amount first, then count.
func (l Limits) check(amount decimal.Decimal, withdrawalsSoFar int) error {
	if amount.GreaterThan(l.PerOperation) {
		return ErrLimitExceeded
	}
	if withdrawalsSoFar >= l.Withdrawals {
		return ErrWithdrawalCountExceeded
	}
	return nil
}
