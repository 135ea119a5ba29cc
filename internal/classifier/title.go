package classifier

import (
	"strings"

	"github.com/aminafi/smartfinance/internal/models"
)

// titleCategories are scanned in declared order; the first category with
// a matching keyword wins. No scoring.
var titleCategories = []struct {
	label    string
	keywords []string
}{
	{"Food & Dining", []string{
		"food", "lunch", "dinner", "breakfast", "restaurant", "coffee",
		"pizza", "burger", "groceries", "grocery", "snack", "meal",
	}},
	{"Transportation", []string{
		"taxi", "uber", "bus", "train", "fuel", "petrol", "gas",
		"parking", "metro", "cab", "flight",
	}},
	{"Entertainment", []string{
		"movie", "cinema", "game", "concert", "netflix", "spotify",
		"subscription", "party",
	}},
	{"Shopping", []string{
		"shopping", "clothes", "shoes", "dress", "shirt", "amazon",
		"mall", "electronics", "laptop",
	}},
	{"Bills & Utilities", []string{
		"bill", "electricity", "water", "internet", "rent", "recharge",
		"wifi", "utility", "insurance", "emi",
	}},
	{"Salary", []string{
		"salary", "payroll", "wage", "wages", "paycheck",
	}},
	{"Freelance Income", []string{
		"freelance", "client", "project", "gig", "contract",
	}},
}

// KeywordTitleGenerator derives a category label from keyword lookup,
// falling back to a generic title keyed by transaction type.
type KeywordTitleGenerator struct{}

func NewKeywordTitleGenerator() *KeywordTitleGenerator {
	return &KeywordTitleGenerator{}
}

func (g *KeywordTitleGenerator) Generate(text string, t models.TransactionType) string {
	lower := strings.ToLower(text)
	for _, cat := range titleCategories {
		for _, kw := range cat.keywords {
			if strings.Contains(lower, kw) {
				return cat.label
			}
		}
	}
	return fallbackTitle(t)
}

func fallbackTitle(t models.TransactionType) string {
	switch t {
	case models.TypeIncome:
		return "Income Transaction"
	case models.TypeSavings:
		return "Savings Transaction"
	default:
		return "Expense Transaction"
	}
}
