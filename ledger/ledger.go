// Package ledger is the in-memory registry of clients and accounts. It is
// created once per process and handed to whatever drives it.
package ledger

import (
	"fmt"
	"sync"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"banking-ledger/account"
	"banking-ledger/client"
	"banking-ledger/taxid"
	"banking-ledger/transactions"
)

// Settings controls how new clients are validated and accounts opened.
type Settings struct {
	Branch string
	// Limits is applied to every new account. Nil opens accounts without
	// ceilings.
	Limits *account.Limits
	// TaxIDs validates tax ids of new clients. Nil checks the shape only.
	TaxIDs *taxid.Validator
}

type Ledger struct {
	mu         sync.RWMutex
	settings   Settings
	clients    []*client.Person
	byTaxID    map[taxid.TaxID]*client.Person
	accounts   []*account.Account
	holders    []*client.Person
	nextNumber int
	logger     *zap.Logger
}

// Statement is the balance and transaction list of one account.
type Statement struct {
	Account *account.Account
	Entries []transactions.Transaction
	Balance decimal.Decimal
}

func New(settings Settings, logger *zap.Logger) *Ledger {
	if settings.Branch == "" {
		settings.Branch = account.DefaultBranch
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Ledger{
		settings:   settings,
		byTaxID:    make(map[taxid.TaxID]*client.Person),
		nextNumber: 1,
		logger:     logger,
	}
}

// --- Clients ---

// CreateClient registers a new person. The tax id must not belong to any
// registered client; that is checked before the rest of p is validated.
func (l *Ledger) CreateClient(p client.PersonParams) (*client.Person, error) {
	id := taxid.TaxID(p.TaxID).Normalize()
	if l.taxIDTaken(id) {
		l.logger.Warn("duplicate tax id", zap.String("tax_id", id.Mask()))
		return nil, ErrDuplicateTaxID
	}

	person, err := client.NewPerson(p, l.settings.TaxIDs)
	if err != nil {
		return nil, fmt.Errorf("could not create client: %w", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	// Another caller may have registered the id since the check above.
	if _, exists := l.byTaxID[person.TaxID]; exists {
		l.logger.Warn("duplicate tax id", zap.String("tax_id", person.TaxID.Mask()))
		return nil, ErrDuplicateTaxID
	}
	l.clients = append(l.clients, person)
	l.byTaxID[person.TaxID] = person

	l.logger.Info("client created",
		zap.String("tax_id", person.TaxID.Mask()),
		zap.Int("clients", len(l.clients)))
	return person, nil
}

// Client returns the client at the zero-based index i.
func (l *Ledger) Client(i int) (*client.Person, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if i < 0 || i >= len(l.clients) {
		return nil, fmt.Errorf("client %d: %w", i, ErrNotFound)
	}
	return l.clients[i], nil
}

func (l *Ledger) taxIDTaken(id taxid.TaxID) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	_, ok := l.byTaxID[id]
	return ok
}

// ClientByTaxID finds a client by tax id, in any of its typed forms.
func (l *Ledger) ClientByTaxID(id string) (*client.Person, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	p, ok := l.byTaxID[taxid.TaxID(id).Normalize()]
	if !ok {
		return nil, fmt.Errorf("client with tax id %s: %w", taxid.TaxID(id).Mask(), ErrNotFound)
	}
	return p, nil
}

func (l *Ledger) Clients() []*client.Person {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]*client.Person, len(l.clients))
	copy(out, l.clients)
	return out
}

// --- Accounts ---

// CreateAccount opens an account with the next sequential number for the
// client at index clientIndex and links it to that client.
func (l *Ledger) CreateAccount(clientIndex int) (*account.Account, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if clientIndex < 0 || clientIndex >= len(l.clients) {
		return nil, fmt.Errorf("client %d: %w", clientIndex, ErrNotFound)
	}
	return l.openAccount(l.clients[clientIndex]), nil
}

// CreateAccountFor opens an account for the client with the given tax id.
func (l *Ledger) CreateAccountFor(id string) (*account.Account, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	holder, ok := l.byTaxID[taxid.TaxID(id).Normalize()]
	if !ok {
		return nil, fmt.Errorf("client with tax id %s: %w", taxid.TaxID(id).Mask(), ErrNotFound)
	}
	return l.openAccount(holder), nil
}

// openAccount expects l.mu to be held for writing.
func (l *Ledger) openAccount(holder *client.Person) *account.Account {
	opts := []account.Option{account.WithBranch(l.settings.Branch)}
	if l.settings.Limits != nil {
		opts = append(opts, account.WithLimits(*l.settings.Limits))
	}
	acc := account.New(holder, l.nextNumber, opts...)
	l.nextNumber++

	holder.LinkAccount(acc)
	l.accounts = append(l.accounts, acc)
	l.holders = append(l.holders, holder)

	l.logger.Info("account created",
		zap.Int("account_number", acc.Number()),
		zap.String("branch", acc.Branch()),
		zap.String("tax_id", holder.TaxID.Mask()))
	return acc
}

// Account returns the account at the zero-based index i.
func (l *Ledger) Account(i int) (*account.Account, error) {
	acc, _, err := l.accountAt(i)
	return acc, err
}

func (l *Ledger) Accounts() []*account.Account {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]*account.Account, len(l.accounts))
	copy(out, l.accounts)
	return out
}

func (l *Ledger) accountAt(i int) (*account.Account, *client.Person, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if i < 0 || i >= len(l.accounts) {
		return nil, nil, fmt.Errorf("account %d: %w", i, ErrNotFound)
	}
	return l.accounts[i], l.holders[i], nil
}

// --- Transactions ---

func (l *Ledger) Deposit(i int, amount decimal.Decimal) (transactions.Transaction, error) {
	return l.request(i, transactions.NewDeposit(amount))
}

func (l *Ledger) Withdraw(i int, amount decimal.Decimal) (transactions.Transaction, error) {
	return l.request(i, transactions.NewWithdrawal(amount))
}

// request hands op to the holder of account i, the only party allowed to
// apply it.
func (l *Ledger) request(i int, op transactions.Operation) (transactions.Transaction, error) {
	acc, holder, err := l.accountAt(i)
	if err != nil {
		return transactions.Transaction{}, err
	}

	tx, err := holder.RequestTransaction(acc, op)
	if err != nil {
		l.logger.Warn("transaction rejected",
			zap.Int("account_number", acc.Number()),
			zap.Stringer("kind", op.Kind),
			zap.String("amount", op.Amount.String()),
			zap.Error(err))
		return transactions.Transaction{}, err
	}

	l.logger.Info("transaction applied",
		zap.Int("account_number", acc.Number()),
		zap.String("transaction_id", tx.ID),
		zap.Stringer("kind", tx.Kind),
		zap.String("amount", tx.Amount.String()))
	return tx, nil
}

func (l *Ledger) Statement(i int) (Statement, error) {
	acc, _, err := l.accountAt(i)
	if err != nil {
		return Statement{}, err
	}
	balance, entries := acc.Snapshot()
	return Statement{Account: acc, Entries: entries, Balance: balance}, nil
}
