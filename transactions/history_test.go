package transactions

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryRecordKeepsOrder(t *testing.T) {
	h := NewHistory()
	now := time.Date(2026, 10, 16, 9, 30, 0, 0, time.UTC)

	first, err := h.Record(Deposit, decimal.NewFromInt(100), now)
	require.NoError(t, err)
	second, err := h.Record(Withdrawal, decimal.NewFromInt(40), now)
	require.NoError(t, err)
	third, err := h.Record(Deposit, decimal.NewFromInt(5), now.Add(time.Second))
	require.NoError(t, err)

	got := h.Transactions()
	require.Len(t, got, 3)
	assert.Equal(t, []Transaction{first, second, third}, got)
	assert.Less(t, first.ID, second.ID)
	assert.Less(t, second.ID, third.ID)
}

func TestHistoryTransactionsIsACopy(t *testing.T) {
	h := NewHistory()
	_, err := h.Record(Deposit, decimal.NewFromInt(10), time.Now())
	require.NoError(t, err)

	got := h.Transactions()
	got[0].Amount = decimal.NewFromInt(999)

	assert.True(t, h.Transactions()[0].Amount.Equal(decimal.NewFromInt(10)))
}

func TestHistoryCount(t *testing.T) {
	h := NewHistory()
	now := time.Now()
	for _, op := range []Operation{
		NewDeposit(decimal.NewFromInt(10)),
		NewWithdrawal(decimal.NewFromInt(1)),
		NewWithdrawal(decimal.NewFromInt(2)),
	} {
		_, err := h.Record(op.Kind, op.Amount, now)
		require.NoError(t, err)
	}

	assert.Equal(t, 3, h.Len())
	assert.Equal(t, 1, h.Count(Deposit))
	assert.Equal(t, 2, h.Count(Withdrawal))
}

func TestHistoryRecordRejectsUnencodableTime(t *testing.T) {
	h := NewHistory()

	_, err := h.Record(Deposit, decimal.NewFromInt(10), time.Date(1969, 12, 31, 23, 0, 0, 0, time.UTC))
	require.Error(t, err)
	assert.Equal(t, 0, h.Len())

	_, err = h.Record(Deposit, decimal.NewFromInt(10), time.Date(10890, 1, 1, 0, 0, 0, 0, time.UTC))
	require.Error(t, err)
	assert.Equal(t, 0, h.Len())
}

func TestTransactionString(t *testing.T) {
	tx := Transaction{
		Kind:      Withdrawal,
		Amount:    decimal.RequireFromString("12.5"),
		Timestamp: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	assert.Equal(t, "Type: Withdrawal | Amount: 12.50 | Date: 02-01-2026 03:04:05", tx.String())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "Deposit", Deposit.String())
	assert.Equal(t, "Withdrawal", Withdrawal.String())
	assert.Equal(t, "Kind(0)", Kind(0).String())
}

func TestOperationConstructors(t *testing.T) {
	d := NewDeposit(decimal.NewFromInt(3))
	w := NewWithdrawal(decimal.NewFromInt(4))

	assert.Equal(t, Deposit, d.Kind)
	assert.Equal(t, Withdrawal, w.Kind)
	assert.Equal(t, "Withdrawal of 4.00", w.String())
}
