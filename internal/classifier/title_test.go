package classifier

import (
	"testing"

	"github.com/aminafi/smartfinance/internal/models"
)

func TestGenerateTitle(t *testing.T) {
	cases := []struct {
		name string
		text string
		typ  models.TransactionType
		want string
	}{
		{"food", "bought groceries for 50", models.TypeExpense, "Food & Dining"},
		{"transport", "uber ride 12", models.TypeExpense, "Transportation"},
		{"entertainment", "netflix renewal 15", models.TypeExpense, "Entertainment"},
		{"shopping", "new shoes 80", models.TypeExpense, "Shopping"},
		{"bills", "paid the electricity 90", models.TypeExpense, "Bills & Utilities"},
		{"salary", "salary credited 5000", models.TypeIncome, "Salary"},
		{"freelance", "client payment 700", models.TypeIncome, "Freelance Income"},
		{"income fallback", "got 500 from my brother", models.TypeIncome, "Income Transaction"},
		{"expense fallback", "gave 20 to him", models.TypeExpense, "Expense Transaction"},
		{"savings fallback", "set aside 300", models.TypeSavings, "Savings Transaction"},
	}

	g := NewKeywordTitleGenerator()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := g.Generate(tc.text, tc.typ); got != tc.want {
				t.Fatalf("Generate(%q, %s) = %q, want %q", tc.text, tc.typ, got, tc.want)
			}
		})
	}
}

func TestGenerateTitlePriorityOrder(t *testing.T) {
	// first matching category in declared order wins: food outranks
	// shopping even when both match
	g := NewKeywordTitleGenerator()
	if got := g.Generate("shopping for dinner ingredients 40", models.TypeExpense); got != "Food & Dining" {
		t.Fatalf("got %q, want Food & Dining", got)
	}
}
