package classifier

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestExtractAmount(t *testing.T) {
	cases := []struct {
		name string
		text string
		want string
	}{
		{"symbol prefixed", "spent $42.50 on lunch", "42.50"},
		{"rupee symbol", "got ₹100 from dad", "100"},
		{"euro symbol", "dinner was €18.20", "18.20"},
		{"pound symbol", "£7 bus fare", "7"},
		{"word suffix", "received 50 dollars", "50"},
		{"bucks", "lent him 20 bucks", "20"},
		{"inr suffix", "paid 250 inr for the cab", "250"},
		{"comma grouped symbol", "bonus of $1,200.50 today", "1200.50"},
		{"comma grouped word", "1,500 rupees for rent", "1500"},
		{"bare number", "income 340", "340"},
		{"bare decimal", "coffee 3.75", "3.75"},
		{"first match wins", "I spent $10 and $20", "10"},
		{"symbol beats earlier bare number", "order 2 pizzas for $30", "30"},
		{"no digits", "paid for groceries", "0"},
		{"empty", "", "0"},
		{"whitespace", "   ", "0"},
	}

	e := NewRegexAmountExtractor()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := e.Extract(tc.text)
			want := decimal.RequireFromString(tc.want)
			if !got.Equal(want) {
				t.Fatalf("Extract(%q) = %s, want %s", tc.text, got, want)
			}
		})
	}
}

func TestExtractAmountIsFirstMatchNotBest(t *testing.T) {
	// several amounts present: the first regex to match anywhere in the
	// text governs, never the largest and never a sum
	e := NewRegexAmountExtractor()
	got := e.Extract("I spent $10 and $20")
	if !got.Equal(decimal.NewFromInt(10)) {
		t.Fatalf("got %s, want 10", got)
	}
}
