package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType is the money-flow direction of a transaction.
type TransactionType string

const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
	TypeSavings TransactionType = "savings"
)

// Valid reports whether t is one of the known transaction types.
func (t TransactionType) Valid() bool {
	switch t {
	case TypeIncome, TypeExpense, TypeSavings:
		return true
	}
	return false
}

// Transaction is a committed transaction record. Records are only ever
// written after the user has reviewed (and possibly edited) a detection
// suggestion; the classifier itself never writes storage.
type Transaction struct {
	ID          uuid.UUID       `db:"id"`
	UserID      uuid.UUID       `db:"user_id"`
	Amount      float64         `db:"amount"`
	Title       string          `db:"title"`
	Description string          `db:"description"`
	Type        TransactionType `db:"type"`
	Date        time.Time       `db:"date"`
	EntryDate   time.Time       `db:"entry_date"`
}

// DetectedTransaction is a classification suggestion produced by the
// detection façade. One is only constructed when the amount is positive
// and the confidence cleared the acceptance threshold; there is no
// partially valid result.
type DetectedTransaction struct {
	Amount      decimal.Decimal
	Type        TransactionType
	Title       string
	Description string
	Confidence  float64
}
