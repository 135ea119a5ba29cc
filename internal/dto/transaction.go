package dto

// CreateTransactionRequest commits a (possibly user-edited) detection
// suggestion as a transaction record.
type CreateTransactionRequest struct {
	Amount      float64 `json:"amount"`
	Type        string  `json:"type"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Date        string  `json:"date"` // YYYY-MM-DD, defaults to today
}

type TransactionResponse struct {
	ID          string  `json:"id"`
	Amount      float64 `json:"amount"`
	Type        string  `json:"type"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
	EntryDate   string  `json:"entry_date"`
}
