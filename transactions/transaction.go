package transactions

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// --- Models ---

// Kind identifies what a transaction did to an account.
type Kind int

const (
	Deposit Kind = iota + 1
	Withdrawal
)

func (k Kind) String() string {
	switch k {
	case Deposit:
		return "Deposit"
	case Withdrawal:
		return "Withdrawal"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// DateLayout is the dd-mm-yyyy HH:MM:SS layout used on statements.
const DateLayout = "02-01-2006 15:04:05"

// Transaction is an accepted operation. It is never mutated once recorded.
type Transaction struct {
	ID        string          `json:"id"`
	Kind      Kind            `json:"kind"`
	Amount    decimal.Decimal `json:"amount"`
	Timestamp time.Time       `json:"timestamp"`
}

func (t Transaction) String() string {
	return fmt.Sprintf("Type: %s | Amount: %s | Date: %s",
		t.Kind, t.Amount.StringFixed(2), t.Timestamp.Format(DateLayout))
}
