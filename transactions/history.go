package transactions

import (
	"crypto/rand"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
)

// History is the append-only log of transactions accepted by one account.
// It is not safe for concurrent use; the owning account serializes access.
type History struct {
	entries []Transaction
	entropy *ulid.MonotonicEntropy
}

func NewHistory() *History {
	return &History{entropy: ulid.Monotonic(rand.Reader, 0)}
}

// Record appends a transaction for an accepted operation and returns it.
// IDs are monotonic, so they sort in acceptance order. Nothing is appended
// when at cannot be encoded in an ID (before 1970 or after year 10889).
func (h *History) Record(kind Kind, amount decimal.Decimal, at time.Time) (Transaction, error) {
	id, err := ulid.New(ulid.Timestamp(at), h.entropy)
	if err != nil {
		return Transaction{}, fmt.Errorf("could not stamp transaction at %s: %w", at.Format(DateLayout), err)
	}
	tx := Transaction{
		ID:        id.String(),
		Kind:      kind,
		Amount:    amount,
		Timestamp: at,
	}
	h.entries = append(h.entries, tx)
	return tx, nil
}

// Transactions returns a copy of the log, oldest first.
func (h *History) Transactions() []Transaction {
	out := make([]Transaction, len(h.entries))
	copy(out, h.entries)
	return out
}

func (h *History) Len() int {
	return len(h.entries)
}

// Count returns how many recorded transactions are of the given kind.
func (h *History) Count(kind Kind) int {
	n := 0
	for _, tx := range h.entries {
		if tx.Kind == kind {
			n++
		}
	}
	return n
}
