package menu

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"banking-ledger/account"
	"banking-ledger/client"
	"banking-ledger/currency"
	"banking-ledger/ledger"
	"banking-ledger/taxid"
	"banking-ledger/transactions"
)

// --- Handlers ---

func (m *Menu) createClient() error {
	var p client.PersonParams
	var err error
	if p.TaxID, err = m.prompt("Client tax id: "); err != nil {
		return err
	}
	if _, err := m.ledger.ClientByTaxID(p.TaxID); err == nil {
		m.failure(describe(ledger.ErrDuplicateTaxID))
		return nil
	}
	if p.FullName, err = m.prompt("Client full name: "); err != nil {
		return err
	}
	if p.BirthDate, err = m.prompt("Client birth date (dd-mm-yyyy): "); err != nil {
		return err
	}
	if p.Address, err = m.prompt("Client address (street, nr - district - city/state): "); err != nil {
		return err
	}

	if _, err := m.ledger.CreateClient(p); err != nil {
		m.failure(describe(err))
		return nil
	}
	m.success("Client created successfully!")
	return nil
}

func (m *Menu) createAccount() error {
	if len(m.ledger.Clients()) == 0 {
		m.failure("No clients available. Create a client first.")
		return nil
	}

	id, err := m.prompt("Holder tax id: ")
	if err != nil {
		return err
	}
	acc, err := m.ledger.CreateAccountFor(id)
	if errors.Is(err, ledger.ErrNotFound) {
		m.failure("Client not found! Check the tax id and try again.")
		return nil
	}
	if err != nil {
		m.failure(describe(err))
		return nil
	}
	m.success(fmt.Sprintf("Account %d created successfully!", acc.Number()))
	return nil
}

func (m *Menu) deposit() error {
	return m.transact("Deposit amount: ", m.ledger.Deposit, "Deposit completed successfully!")
}

func (m *Menu) withdraw() error {
	return m.transact("Withdrawal amount: ", m.ledger.Withdraw, "Withdrawal completed successfully!")
}

type applyFunc func(int, decimal.Decimal) (transactions.Transaction, error)

func (m *Menu) transact(label string, apply applyFunc, done string) error {
	idx, ok, err := m.chooseAccount()
	if err != nil || !ok {
		return err
	}

	raw, err := m.prompt(label)
	if err != nil {
		return err
	}
	amount, err := currency.Parse(raw)
	if err != nil {
		m.failure(describe(err))
		return nil
	}

	tx, err := apply(idx, amount)
	if err != nil {
		m.failure(describe(err))
		return nil
	}
	m.logger.Debug("menu transaction", zap.String("transaction_id", tx.ID))
	m.success(done)
	return nil
}

func (m *Menu) statement() error {
	idx, ok, err := m.chooseAccount()
	if err != nil || !ok {
		return err
	}

	st, err := m.ledger.Statement(idx)
	if err != nil {
		m.failure(describe(err))
		return nil
	}

	m.println("\n================ STATEMENT ================")
	if len(st.Entries) == 0 {
		m.println("No transactions recorded.")
	}
	for _, tx := range st.Entries {
		m.println(tx.String())
	}
	m.println(fmt.Sprintf("\nBalance:\t%s", currency.Format(st.Balance)))
	m.println("===========================================")
	return nil
}

func (m *Menu) listAccounts() {
	accounts := m.ledger.Accounts()
	if len(accounts) == 0 {
		m.failure("No accounts available. Create an account first.")
		return
	}
	for _, acc := range accounts {
		m.println("==================================================")
		m.println(acc.String())
	}
}

// chooseAccount lists the accounts and reads a 1-based choice. ok is false
// when there was nothing to choose or the choice was rejected.
func (m *Menu) chooseAccount() (idx int, ok bool, err error) {
	accounts := m.ledger.Accounts()
	if len(accounts) == 0 {
		m.failure("No accounts available. Create an account first.")
		return 0, false, nil
	}

	m.println("\nAvailable accounts:")
	for i, acc := range accounts {
		m.println(fmt.Sprintf("%d. Branch %s | Account %d | Holder %s",
			i+1, acc.Branch(), acc.Number(), acc.Owner().DisplayName()))
	}
	return m.chooseIndex("Choose the account by number: ")
}

func (m *Menu) chooseIndex(label string) (int, bool, error) {
	raw, err := m.prompt(label)
	if err != nil {
		return 0, false, err
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		m.failure("Invalid option! Please try again.")
		return 0, false, nil
	}
	return n - 1, true, nil
}

// describe turns a ledger error into the line shown to the user.
func describe(err error) string {
	switch {
	case errors.Is(err, account.ErrInsufficientFunds):
		return "Operation cancelled! Insufficient funds."
	case errors.Is(err, account.ErrLimitExceeded):
		return "Operation cancelled! Amount above the allowed limit."
	case errors.Is(err, account.ErrWithdrawalCountExceeded):
		return "Operation cancelled! Number of withdrawals exceeded."
	case errors.Is(err, account.ErrInvalidAmount), errors.Is(err, currency.ErrInvalidAmount):
		return "Operation cancelled! Invalid amount."
	case errors.Is(err, ledger.ErrDuplicateTaxID):
		return "A client with this tax id already exists!"
	case errors.Is(err, ledger.ErrNotFound):
		return "Option not found! Please try again."
	case errors.Is(err, taxid.ErrEmpty), errors.Is(err, taxid.ErrInvalid):
		return "Invalid tax id!"
	}
	for _, target := range []error{client.ErrInvalidFullName, client.ErrInvalidBirthDate, client.ErrInvalidAddress} {
		if errors.Is(err, target) {
			return "Invalid client data! " + target.Error()
		}
	}
	return err.Error()
}
