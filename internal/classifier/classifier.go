// Package classifier infers a monetary amount, a transaction type and a
// short title from a free-text money sentence ("Got 500 from my brother",
// "Paid rent 1200"). Every component is a pure function of its input:
// there is no shared mutable state across calls, so classification is
// safe to run concurrently.
//
// Two interchangeable strategies exist behind the same interfaces: the
// heuristic scoring pipeline (HeuristicTypeAnalyzer + KeywordTitleGenerator)
// and a TF-IDF similarity matcher over a pattern knowledge base
// (SimilarityClassifier). They must not be mixed within one detection.
package classifier

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/aminafi/smartfinance/internal/models"
)

// AmountExtractor pulls a monetary value out of free text. A zero result
// means "no amount found"; extraction itself never fails.
type AmountExtractor interface {
	Extract(text string) decimal.Decimal
}

// TypeAnalyzer decides the money-flow direction of a sentence. It is a
// total function: some type is always returned and ties are broken
// deterministically.
type TypeAnalyzer interface {
	Analyze(text string, trace *Trace) TypeResult
}

// TitleGenerator derives a short human-readable title for a sentence
// already classified as type t.
type TitleGenerator interface {
	Generate(text string, t models.TransactionType) string
}

// TypeResult is the outcome of one type analysis. Income, Expense and
// Savings carry the raw heuristic scores when the heuristic strategy
// produced the result; the similarity strategy leaves them zero.
type TypeResult struct {
	Type       models.TransactionType
	Confidence float64
	Income     int
	Expense    int
	Savings    int
}

// tokenize lowercases text and splits it on whitespace. The resulting
// token stream is consumed read-only by every analysis pass.
func tokenize(text string) []string {
	return strings.Fields(strings.ToLower(text))
}

func hasToken(tokens []string, word string) bool {
	for _, t := range tokens {
		if t == word {
			return true
		}
	}
	return false
}

func hasAnyToken(tokens []string, words ...string) bool {
	for _, w := range words {
		if hasToken(tokens, w) {
			return true
		}
	}
	return false
}

func oneOf(word string, candidates ...string) bool {
	for _, c := range candidates {
		if word == c {
			return true
		}
	}
	return false
}
