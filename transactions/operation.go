package transactions

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Operation is a requested deposit or withdrawal that has not been applied yet.
type Operation struct {
	Kind   Kind
	Amount decimal.Decimal
}

// NewDeposit returns an operation that credits amount.
func NewDeposit(amount decimal.Decimal) Operation {
	return Operation{Kind: Deposit, Amount: amount}
}

// NewWithdrawal returns an operation that debits amount.
func NewWithdrawal(amount decimal.Decimal) Operation {
	return Operation{Kind: Withdrawal, Amount: amount}
}

func (o Operation) String() string {
	return fmt.Sprintf("%s of %s", o.Kind, o.Amount.StringFixed(2))
}
