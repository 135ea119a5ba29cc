package classifier

import (
	"testing"

	"github.com/aminafi/smartfinance/internal/models"
)

func TestSimilarityAnalyze(t *testing.T) {
	cases := []struct {
		name string
		text string
		want models.TransactionType
	}{
		{"salary", "got my salary today 5000", models.TypeIncome},
		{"freelance", "client paid the invoice 700", models.TypeIncome},
		{"food", "bought lunch at a restaurant 15", models.TypeExpense},
		{"transport", "paid for the uber taxi 12", models.TypeExpense},
		{"bills", "paid the electricity bill 90", models.TypeExpense},
		{"savings", "deposited 300 into my savings account", models.TypeSavings},
		{"investment", "invested 500 in mutual fund", models.TypeSavings},
	}

	c := NewSimilarityClassifier(nil)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := c.Analyze(tc.text, nil)
			if got.Type != tc.want {
				t.Fatalf("Analyze(%q) = %s (confidence %.3f), want %s",
					tc.text, got.Type, got.Confidence, tc.want)
			}
			if got.Confidence <= 0 || got.Confidence > 1 {
				t.Fatalf("confidence %v out of range", got.Confidence)
			}
		})
	}
}

func TestSimilarityGenerateTitle(t *testing.T) {
	c := NewSimilarityClassifier(nil)

	if got := c.Generate("got my salary today 5000", models.TypeIncome); got != "Salary" {
		t.Fatalf("title = %q, want Salary", got)
	}
	// type mismatch between caller and best entry falls back to a
	// generic title rather than mixing strategies' opinions
	if got := c.Generate("got my salary today 5000", models.TypeSavings); got != "Savings Transaction" {
		t.Fatalf("title = %q, want Savings Transaction", got)
	}
	if got := c.Generate("zxqv blorp", models.TypeExpense); got != "Expense Transaction" {
		t.Fatalf("title = %q, want Expense Transaction", got)
	}
}

func TestSimilarityEmptyInput(t *testing.T) {
	c := NewSimilarityClassifier(nil)
	got := c.Analyze("", nil)
	if got.Type != models.TypeExpense || got.Confidence != 0 {
		t.Fatalf("empty input = %s/%v, want expense/0", got.Type, got.Confidence)
	}
}

func TestSimilarityCustomPatterns(t *testing.T) {
	patterns := []models.Pattern{
		{
			Category: "petcare",
			Title:    "Pet Care",
			Type:     models.TypeExpense,
			Keywords: []string{"vet", "dog", "cat", "petfood"},
			Verbs:    []string{"paid", "bought"},
		},
	}
	c := NewSimilarityClassifier(patterns)
	res := c.Analyze("paid the vet for the dog 120", nil)
	if res.Type != models.TypeExpense {
		t.Fatalf("type = %s, want expense", res.Type)
	}
	if got := c.Generate("paid the vet for the dog 120", models.TypeExpense); got != "Pet Care" {
		t.Fatalf("title = %q, want Pet Care", got)
	}
}
