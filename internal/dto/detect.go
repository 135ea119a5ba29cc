package dto

// DetectRequest carries the raw user sentence to classify.
type DetectRequest struct {
	Text string `json:"text"`
}

// DetectResponse is a classification suggestion. The caller is expected
// to let the user review and edit it before committing a transaction.
type DetectResponse struct {
	Amount      float64 `json:"amount"`
	Type        string  `json:"type"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Confidence  float64 `json:"confidence"`
}

// DetectErrorResponse explains a failed detection with a user-facing
// hint on how to rephrase.
type DetectErrorResponse struct {
	Error string `json:"error"`
	Hint  string `json:"hint"`
}
