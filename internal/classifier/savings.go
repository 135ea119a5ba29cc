package classifier

import (
	"strings"

	"github.com/aminafi/smartfinance/internal/models"
)

// pass 10: savings-pattern detection. Savings sentences look like
// expenses ("deposited 300", "put 500 into the bank"), so this pass has
// its own keyword table, bank-flow phrases, a context booster and an
// exclusion list that pushes plain payments back out of savings.

// weightedTerm is a savings keyword with its score weight. Single words
// match whole tokens; phrases match as substrings.
type weightedTerm struct {
	term   string
	weight int
}

var savingsKeywords = []weightedTerm{
	{"savings", 4},
	{"saving", 2},
	{"saved", 2},
	{"save", 2},
	{"deposit", 3},
	{"deposited", 3},
	{"emergency fund", 3},
	{"invest", 2},
	{"invested", 2},
	{"investment", 2},
	{"fixed deposit", 4},
	{"piggy bank", 3},
	{"set aside", 3},
	{"put away", 2},
	{"nest egg", 3},
	{"mutual fund", 2},
	{"recurring deposit", 3},
	{"sip", 2},
	{"reserve", 2},
	{"stash", 2},
}

var bankFlowPhrases = []weightedTerm{
	{"to savings", 5},
	{"into savings", 5},
	{"to my savings", 5},
	{"savings account", 4},
	{"into bank", 3},
	{"to bank", 3},
	{"in the bank", 3},
	{"bank account", 3},
	{"into account", 3},
	{"to account", 3},
}

var (
	futurePhrases = []string{
		"for future", "for later", "for retirement", "long term", "rainy day",
	}
	purposePhrases = []string{
		"for vacation", "for education", "for college", "for house",
		"for wedding", "for emergency", "for a trip",
	}
)

// savingsExclusions subtracts points when plain payment or shopping
// language appears. The subtraction is overridden into a +1 bonus when a
// savings keyword occurs later in the text than the trigger: "paid bill
// and moved the rest to savings" is still a savings sentence.
var savingsExclusions = []weightedTerm{
	{"paid bill", -5},
	{"pay bill", -4},
	{"bill payment", -4},
	{"paid for", -4},
	{"rent", -4},
	{"shopping", -3},
	{"bought", -3},
	{"purchase", -3},
	{"spent on", -3},
	{"groceries", -3},
}

var strongSavingsPhrases = []string{
	"savings account", "emergency fund", "fixed deposit",
	"to savings", "into savings", "set aside", "piggy bank",
}

func hasStrongSavingsContext(text string) bool {
	for _, p := range strongSavingsPhrases {
		if strings.Contains(text, p) {
			return true
		}
	}
	return false
}

func matchesTerm(tokens []string, text string, term string) bool {
	if strings.Contains(term, " ") {
		return strings.Contains(text, term)
	}
	return hasToken(tokens, term)
}

func savingsSignals(tokens []string, text string, tr *Trace) scoreDelta {
	var d scoreDelta

	for _, t := range savingsKeywords {
		if matchesTerm(tokens, text, t.term) {
			d.savings += t.weight
			tr.add("savings:"+t.term, models.TypeSavings, t.weight)
		}
	}
	for _, t := range bankFlowPhrases {
		if strings.Contains(text, t.term) {
			d.savings += t.weight
			tr.add("savings.flow:"+t.term, models.TypeSavings, t.weight)
		}
	}

	for _, p := range futurePhrases {
		if strings.Contains(text, p) {
			d.savings += 2
			tr.add("savings.future:"+p, models.TypeSavings, 2)
		}
	}
	for _, p := range purposePhrases {
		if strings.Contains(text, p) {
			d.savings += 2
			tr.add("savings.purpose:"+p, models.TypeSavings, 2)
		}
	}
	// large set-asides skew toward savings
	if avg, ok := averageAmount(text); ok && avg > 100 {
		d.savings += 2
		tr.add("savings.large_amount", models.TypeSavings, 2)
	}

	last := lastSavingsIndex(text)
	for _, t := range savingsExclusions {
		idx := strings.Index(text, t.term)
		if idx < 0 {
			continue
		}
		if last > idx {
			d.savings += 1
			tr.add("savings.override:"+t.term, models.TypeSavings, 1)
		} else {
			d.savings += t.weight
			tr.add("savings.exclude:"+t.term, models.TypeSavings, t.weight)
		}
	}
	return d
}

// lastSavingsIndex returns the rightmost position of any savings keyword
// or bank-flow phrase in text, or -1.
func lastSavingsIndex(text string) int {
	last := -1
	for _, t := range savingsKeywords {
		if idx := strings.LastIndex(text, t.term); idx > last {
			last = idx
		}
	}
	for _, t := range bankFlowPhrases {
		if idx := strings.LastIndex(text, t.term); idx > last {
			last = idx
		}
	}
	return last
}
