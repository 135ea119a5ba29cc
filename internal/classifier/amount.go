package classifier

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// amountPatterns is ordered most to least specific. The first pattern
// with a match anywhere in the text wins, and within that pattern the
// first occurrence governs: "I spent $10 and $20" yields 10, never 20 or
// 30. First-match-wins is deliberate and load-bearing for callers.
var amountPatterns = []*regexp.Regexp{
	// currency symbol with comma-grouped thousands: $1,200.50
	regexp.MustCompile(`[$₹€£]\s*(\d{1,3}(?:,\d{3})+(?:\.\d{1,2})?)`),
	// currency symbol: $42.50, ₹100
	regexp.MustCompile(`[$₹€£]\s*(\d+(?:\.\d{1,2})?)`),
	// currency word with comma-grouped thousands: 1,200 rupees
	regexp.MustCompile(`(\d{1,3}(?:,\d{3})+(?:\.\d{1,2})?)\s*(?:dollars?|rupees?|euros?|pounds?|bucks?|usd|inr)\b`),
	// currency word: 50 dollars, 20 bucks
	regexp.MustCompile(`(\d+(?:\.\d{1,2})?)\s*(?:dollars?|rupees?|euros?|pounds?|bucks?|usd|inr)\b`),
	// bare comma-grouped number: 1,200
	regexp.MustCompile(`(\d{1,3}(?:,\d{3})+(?:\.\d{1,2})?)`),
	// any bare number, last resort: rent 1200
	regexp.MustCompile(`(\d+(?:\.\d{1,2})?)`),
}

// RegexAmountExtractor extracts a monetary value with currency-aware
// pattern matching.
type RegexAmountExtractor struct{}

func NewRegexAmountExtractor() *RegexAmountExtractor {
	return &RegexAmountExtractor{}
}

// Extract returns the first matched amount with thousands separators
// stripped, or zero when the text carries no number. Zero is "absent",
// not an error; the acceptance decision belongs to the caller.
func (e *RegexAmountExtractor) Extract(text string) decimal.Decimal {
	lower := strings.ToLower(text)
	for _, re := range amountPatterns {
		m := re.FindStringSubmatch(lower)
		if m == nil {
			continue
		}
		raw := strings.ReplaceAll(m[1], ",", "")
		d, err := decimal.NewFromString(raw)
		if err != nil {
			continue
		}
		return d
	}
	return decimal.Zero
}
