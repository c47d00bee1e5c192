package account

import (
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"banking-ledger/transactions"
)

// DefaultBranch is the branch code every account belongs to unless
// WithBranch says otherwise.
const DefaultBranch = "0001"

// --- Models ---

// Owner is the client an account is bound to.
type Owner interface {
	DisplayName() string
}

// Account holds a balance and the history of the operations applied to it.
// An account opened WithLimits behaves as a limited account: withdrawals are
// also checked against its Limits.
type Account struct {
	mu      sync.Mutex
	number  int
	branch  string
	owner   Owner
	balance decimal.Decimal
	history *transactions.History
	limits  *Limits
	now     func() time.Time
}

type Option func(*Account)

func WithBranch(code string) Option {
	return func(a *Account) {
		a.branch = code
	}
}

func WithLimits(l Limits) Option {
	return func(a *Account) {
		a.limits = &l
	}
}

// WithClock overrides the time source used to stamp transactions.
func WithClock(now func() time.Time) Option {
	return func(a *Account) {
		a.now = now
	}
}

// New opens an empty account with the given number for owner.
func New(owner Owner, number int, opts ...Option) *Account {
	a := &Account{
		number:  number,
		branch:  DefaultBranch,
		owner:   owner,
		balance: decimal.Zero,
		history: transactions.NewHistory(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *Account) Number() int    { return a.number }
func (a *Account) Branch() string { return a.branch }
func (a *Account) Owner() Owner   { return a.owner }

func (a *Account) Balance() decimal.Decimal {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.balance
}

// Limits reports the ceiling policy, if the account has one.
func (a *Account) Limits() (Limits, bool) {
	if a.limits == nil {
		return Limits{}, false
	}
	return *a.limits, true
}

// HistoryEntries returns the accepted transactions, oldest first.
func (a *Account) HistoryEntries() []transactions.Transaction {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.history.Transactions()
}

// Snapshot returns the balance and history as of the same instant.
func (a *Account) Snapshot() (decimal.Decimal, []transactions.Transaction) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.balance, a.history.Transactions()
}

// --- Operations ---

// Apply runs op against the account. On success the balance changes and the
// transaction is recorded in the same critical section; on failure neither
// happens.
func (a *Account) Apply(op transactions.Operation) (transactions.Transaction, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	var (
		next decimal.Decimal
		err  error
	)
	switch op.Kind {
	case transactions.Deposit:
		next, err = a.credit(op.Amount)
	case transactions.Withdrawal:
		next, err = a.debit(op.Amount)
	default:
		err = fmt.Errorf("%w: %s", ErrUnknownOperation, op.Kind)
	}
	if err != nil {
		return transactions.Transaction{}, err
	}

	tx, err := a.history.Record(op.Kind, op.Amount, a.now())
	if err != nil {
		return transactions.Transaction{}, err
	}
	a.balance = next
	return tx, nil
}

func (a *Account) Deposit(amount decimal.Decimal) (transactions.Transaction, error) {
	return a.Apply(transactions.NewDeposit(amount))
}

func (a *Account) Withdraw(amount decimal.Decimal) (transactions.Transaction, error) {
	return a.Apply(transactions.NewWithdrawal(amount))
}

// credit and debit are the balance primitives. They return the balance the
// operation would leave without committing it, and expect a.mu to be held.

func (a *Account) credit(amount decimal.Decimal) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return a.balance, ErrInvalidAmount
	}
	return a.balance.Add(amount), nil
}

func (a *Account) debit(amount decimal.Decimal) (decimal.Decimal, error) {
	if a.limits != nil {
		if err := a.limits.check(amount, a.history.Count(transactions.Withdrawal)); err != nil {
			return a.balance, err
		}
	}
	if amount.GreaterThan(a.balance) {
		return a.balance, ErrInsufficientFunds
	}
	if !amount.IsPositive() {
		return a.balance, ErrInvalidAmount
	}
	return a.balance.Sub(amount), nil
}

// String renders the account card shown in listings.
func (a *Account) String() string {
	holder := ""
	if a.owner != nil {
		holder = a.owner.DisplayName()
	}
	return fmt.Sprintf("Branch:\t%s\nAccount:\t%d\nHolder:\t%s", a.branch, a.number, holder)
}
