package menu

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"banking-ledger/account"
	"banking-ledger/ledger"
)

func script(lines ...string) *strings.Reader {
	return strings.NewReader(strings.Join(lines, "\n") + "\n")
}

func newLedger() *ledger.Ledger {
	limits := account.DefaultLimits()
	return ledger.New(ledger.Settings{Limits: &limits}, nil)
}

func run(t *testing.T, l *ledger.Ledger, lines ...string) string {
	t.Helper()
	var out bytes.Buffer
	m := New(l, script(lines...), &out, WithoutColor())
	require.NoError(t, m.Run(context.Background()))
	return out.String()
}

func TestRunFullSession(t *testing.T) {
	l := newLedger()
	out := run(t, l,
		"1", "123", "Maria Silva", "15-03-1990", "Rua A, 10",
		"1", "1.2.3",
		"2", "123",
		"3", "1", "1000",
		"4", "1", "600",
		"4", "1", "100,50",
		"5", "1",
		"6",
		"9",
		"0",
	)

	assert.Contains(t, out, "=== Client created successfully! ===")
	assert.Contains(t, out, "@@@ A client with this tax id already exists! @@@")
	assert.Contains(t, out, "=== Account 1 created successfully! ===")
	assert.Contains(t, out, "=== Deposit completed successfully! ===")
	assert.Contains(t, out, "@@@ Operation cancelled! Amount above the allowed limit. @@@")
	assert.Contains(t, out, "=== Withdrawal completed successfully! ===")
	assert.Contains(t, out, "================ STATEMENT ================")
	assert.Contains(t, out, "Type: Deposit | Amount: 1000.00")
	assert.Contains(t, out, "Type: Withdrawal | Amount: 100.50")
	assert.Contains(t, out, "Balance:\tR$ 899.50")
	assert.Contains(t, out, "Holder:\tMaria Silva")
	assert.Contains(t, out, "@@@ Invalid option! Please try again. @@@")
	assert.Contains(t, out, "=== Leaving the banking system. See you soon! ===")

	assert.Len(t, l.Clients(), 1)
	acc, err := l.Account(0)
	require.NoError(t, err)
	assert.True(t, acc.Balance().Equal(decimal.RequireFromString("899.50")))
}

func TestRunDuplicateTaxIDStopsClientForm(t *testing.T) {
	l := newLedger()
	out := run(t, l,
		"1", "123", "Maria Silva", "15-03-1990", "Rua A, 10",
		"1", "123",
		"0",
	)

	assert.Contains(t, out, "@@@ A client with this tax id already exists! @@@")
	assert.Equal(t, 1, strings.Count(out, "Client full name: "))
	assert.Contains(t, out, "=== Leaving the banking system. See you soon! ===")
	assert.Len(t, l.Clients(), 1)
}

func TestRunWithoutAccounts(t *testing.T) {
	out := run(t, newLedger(), "2", "3", "5", "6", "0")

	assert.Contains(t, out, "@@@ No clients available. Create a client first. @@@")
	assert.Equal(t, 3, strings.Count(out, "@@@ No accounts available. Create an account first. @@@"))
}

func TestRunRejectsBadInput(t *testing.T) {
	l := newLedger()
	out := run(t, l,
		"1", "123", "Jo", "15-03-1990", "Rua A, 10",
		"1", "123", "Maria Silva", "15-03-1990", "Rua A, 10",
		"2", "999",
		"2", "123",
		"3", "x",
		"3", "1", "abc",
		"3", "1", "-5",
		"3", "1", "1e300000000",
		"5", "4",
		"0",
	)

	assert.Contains(t, out, "@@@ Invalid client data! full name must be at least 3 characters long @@@")
	assert.Contains(t, out, "@@@ Client not found! Check the tax id and try again. @@@")
	assert.Contains(t, out, "@@@ Option not found! Please try again. @@@")
	assert.Contains(t, out, "@@@ Invalid option! Please try again. @@@")
	assert.Equal(t, 3, strings.Count(out, "@@@ Operation cancelled! Invalid amount. @@@"))
	assert.Len(t, l.Accounts(), 1)
}

func TestRunStatementOfNewAccount(t *testing.T) {
	out := run(t, newLedger(),
		"1", "123", "Maria Silva", "15-03-1990", "Rua A, 10",
		"2", "123",
		"5", "1",
		"0",
	)

	assert.Contains(t, out, "No transactions recorded.")
	assert.Contains(t, out, "Balance:\tR$ 0.00")
}

func TestRunEndsOnEOF(t *testing.T) {
	out := run(t, newLedger(), "1", "123", "Maria Silva")
	assert.NotContains(t, out, "Client created")
}

func TestRunStopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err := New(newLedger(), script("0"), &out, WithoutColor()).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
