package client

import (
	"sync"
	"time"

	"banking-ledger/account"
	"banking-ledger/taxid"
	"banking-ledger/transactions"
)

// --- Models ---

// Client owns accounts and is the only way transactions reach them.
type Client struct {
	mu       sync.Mutex
	address  string
	accounts []*account.Account
}

// Person is a client identified by a tax id that is unique in the ledger.
type Person struct {
	*Client
	FullName  string
	BirthDate time.Time
	TaxID     taxid.TaxID
}

// PersonParams carries the signup form of a new person.
type PersonParams struct {
	FullName  string `json:"full_name"`
	BirthDate string `json:"birth_date"`
	TaxID     string `json:"tax_id"`
	Address   string `json:"address"`
}

func New(address string) *Client {
	return &Client{address: address}
}

// NewPerson validates p and builds the person. validator may be nil, in
// which case the tax id shape is checked without country rules.
func NewPerson(p PersonParams, validator *taxid.Validator) (*Person, error) {
	if validator == nil {
		validator, _ = taxid.NewValidator("")
	}
	v, err := validatePersonParams(p, validator, time.Now())
	if err != nil {
		return nil, err
	}
	return &Person{
		Client:    New(v.address),
		FullName:  v.fullName,
		BirthDate: v.birthDate,
		TaxID:     v.taxID,
	}, nil
}

func (c *Client) Address() string {
	return c.address
}

func (c *Client) DisplayName() string {
	return c.address
}

func (p *Person) DisplayName() string {
	return p.FullName
}

// LinkAccount adds a to the client's accounts. Linking the same account twice
// is not checked.
func (c *Client) LinkAccount(a *account.Account) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.accounts = append(c.accounts, a)
}

// Accounts returns the linked accounts in linking order.
func (c *Client) Accounts() []*account.Account {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]*account.Account, len(c.accounts))
	copy(out, c.accounts)
	return out
}

func (c *Client) Owns(a *account.Account) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, linked := range c.accounts {
		if linked == a {
			return true
		}
	}
	return false
}

// --- Operations ---

// RequestTransaction applies op to a, which must be one of the client's
// linked accounts.
func (c *Client) RequestTransaction(a *account.Account, op transactions.Operation) (transactions.Transaction, error) {
	if a == nil || !c.Owns(a) {
		return transactions.Transaction{}, ErrAccountNotLinked
	}
	return a.Apply(op)
}
