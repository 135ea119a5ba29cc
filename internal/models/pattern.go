package models

import (
	"time"

	"github.com/google/uuid"
)

// Pattern is one entry of the transaction-pattern knowledge base used by
// the similarity classification strategy: a bag of keywords and verbs
// describing a kind of money event, together with the type and title the
// strategy suggests when the entry wins.
type Pattern struct {
	ID       uuid.UUID       `db:"id"`
	Keywords []string        `db:"keywords"`
	Verbs    []string        `db:"verbs"`
	Type     TransactionType `db:"type"`
	Title    string          `db:"title"`
	Category string          `db:"category"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
