package ledger

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// ErrNotFound is returned when an entry does not exist, was soft-deleted, or is
// owned by another user.
var ErrNotFound = errors.New("entry not found")

// ErrEmptyPatch is returned by Update when the patch sets no fields.
var ErrEmptyPatch = errors.New("no fields to update")

// TxType is the direction of an entry. The wire values match the slash-command
// choices (0 = expense, 1 = income).
type TxType int

const (
	TypeExpense TxType = 0
	TypeIncome  TxType = 1
)

func (t TxType) String() string {
	if t == TypeIncome {
		return "income"
	}

	return "expense"
}

// Entry is a single expense or cashflow record. Expenses and cashflows share
// this shape; they live in separate tables and differ only in display policy.
type Entry struct {
	ID         int64
	UserID     string
	Name       string
	Amount     decimal.Decimal
	Account    string
	Type       TxType
	OccurredAt time.Time // user-supplied transaction timestamp, not insert time
	CreatedAt  time.Time
	UpdatedAt  *time.Time
	DeletedAt  *time.Time
}
