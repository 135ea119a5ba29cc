package classifier

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/aminafi/smartfinance/internal/models"
)

// HeuristicTypeAnalyzer scores a sentence across income, expense and
// savings by summing weighted contributions from independent linguistic
// passes over the same token stream, then picks the category with the
// strictly highest score. Single keyword lookups are unreliable for
// money-flow sentences ("gave me $50" vs "gave $50 to him" share a verb
// with opposite flow direction), which is why the passes look at
// preposition attachment, verb context and possessive pronouns rather
// than words in isolation.
type HeuristicTypeAnalyzer struct{}

func NewHeuristicTypeAnalyzer() *HeuristicTypeAnalyzer {
	return &HeuristicTypeAnalyzer{}
}

// scoreDelta is the partial contribution of one pass.
type scoreDelta struct {
	income  int
	expense int
	savings int
}

func (d *scoreDelta) merge(o scoreDelta) {
	d.income += o.income
	d.expense += o.expense
	d.savings += o.savings
}

// scorePass is one self-contained heuristic applied to the tokenized,
// lowercased text. Passes are pure: all state lives in the returned
// delta, never in the analyzer.
type scorePass func(tokens []string, text string, tr *Trace) scoreDelta

var heuristicPasses = []scorePass{
	directKeywords,
	prepositionAttachment,
	svoWindows,
	giftLexicon,
	familyBonus,
	moneyFlowPhrases,
	phraseLexicons,
	pronounContext,
	semanticVerbs,
	savingsSignals,
}

// Analyze runs every pass unconditionally (no short-circuiting), sums
// the deltas and resolves the winner. It never fails; total ambiguity
// falls back to expense.
func (a *HeuristicTypeAnalyzer) Analyze(text string, trace *Trace) TypeResult {
	lower := strings.ToLower(strings.TrimSpace(text))
	tokens := strings.Fields(lower)

	var total scoreDelta
	for _, pass := range heuristicPasses {
		total.merge(pass(tokens, lower, trace))
	}
	// savings exclusions may have driven the accumulator below zero
	if total.savings < 0 {
		total.savings = 0
	}

	return decide(total, tokens, lower)
}

// savingsWinScore is the minimum savings score that lets savings win
// outright without a strong context phrase.
const savingsWinScore = 8

func decide(s scoreDelta, tokens []string, text string) TypeResult {
	sum := s.income + s.expense + s.savings
	top := s.income
	if s.expense > top {
		top = s.expense
	}
	if s.savings > top {
		top = s.savings
	}
	confidence := 0.0
	if sum > 0 {
		confidence = float64(top) / float64(sum)
	}

	var winner models.TransactionType
	switch {
	case s.savings > s.income && s.savings > s.expense &&
		(s.savings >= savingsWinScore || hasStrongSavingsContext(text)):
		winner = models.TypeSavings
	case s.income > s.expense && s.income > s.savings:
		winner = models.TypeIncome
	case s.expense > s.income && s.expense > s.savings:
		winner = models.TypeExpense
	default:
		winner = resolveAmbiguity(s, tokens, text)
	}

	return TypeResult{
		Type:       winner,
		Confidence: confidence,
		Income:     s.income,
		Expense:    s.expense,
		Savings:    s.savings,
	}
}

// resolveAmbiguity handles ties and savings scores that failed the win
// gate. Uncertain or negated sentences resolve to expense, then amount
// magnitude biases the call, and a flat tie defaults to expense. The
// expense default is deliberate: a wrongly suggested expense is the
// cheapest mistake for the user to correct.
func resolveAmbiguity(s scoreDelta, tokens []string, text string) models.TransactionType {
	if strings.Contains(text, "?") || hasAnyToken(tokens, "maybe", "perhaps") {
		return models.TypeExpense
	}
	if strings.Contains(text, "n't") || hasAnyToken(tokens, "not", "never") {
		return models.TypeExpense
	}

	if avg, ok := averageAmount(text); ok {
		if avg > 500 && s.savings > 0 {
			return models.TypeSavings
		}
		if avg < 50 && s.expense > 0 {
			return models.TypeExpense
		}
	}

	// highest score wins, expense on any tie
	if s.expense >= s.income && s.expense >= s.savings {
		return models.TypeExpense
	}
	if s.income >= s.savings {
		return models.TypeIncome
	}
	return models.TypeSavings
}

var bareNumberPattern = regexp.MustCompile(`\d+(?:\.\d{1,2})?`)

// averageAmount averages every bare number in the text. The analyzer
// extracts numbers on its own rather than calling the amount extractor:
// the two components stay independent by contract.
func averageAmount(text string) (float64, bool) {
	cleaned := strings.ReplaceAll(text, ",", "")
	matches := bareNumberPattern.FindAllString(cleaned, -1)
	if len(matches) == 0 {
		return 0, false
	}
	var sum float64
	for _, m := range matches {
		v, err := strconv.ParseFloat(m, 64)
		if err != nil {
			return 0, false
		}
		sum += v
	}
	return sum / float64(len(matches)), true
}

// --- pass 1: direct category words ---

var (
	directIncomeWords  = []string{"income", "salary", "bonus"}
	directExpenseWords = []string{"expense", "cost", "bill", "fee"}
	shoppingVerbWords  = []string{"bought", "shopping", "purchase", "purchased"}
	lossWords          = []string{"lost", "stolen", "missing"}
)

func directKeywords(tokens []string, _ string, tr *Trace) scoreDelta {
	var d scoreDelta
	for _, w := range directIncomeWords {
		if hasToken(tokens, w) {
			d.income += 5
			tr.add("direct:"+w, models.TypeIncome, 5)
		}
	}
	for _, w := range directExpenseWords {
		if hasToken(tokens, w) {
			d.expense += 5
			tr.add("direct:"+w, models.TypeExpense, 5)
		}
	}
	for _, w := range shoppingVerbWords {
		if hasToken(tokens, w) {
			d.expense += 4
			tr.add("shopping_verb:"+w, models.TypeExpense, 4)
		}
	}
	for _, w := range lossWords {
		if hasToken(tokens, w) {
			d.expense += 4
			tr.add("loss:"+w, models.TypeExpense, 4)
		}
	}
	return d
}

// --- pass 2: preposition attachment ---

// prepositionAttachment inspects the word immediately before and after
// every occurrence of to/from/by/with/for. The attached verb decides the
// flow direction the preposition implies.
func prepositionAttachment(tokens []string, _ string, tr *Trace) scoreDelta {
	var d scoreDelta
	for i, tok := range tokens {
		var prev, next string
		if i > 0 {
			prev = tokens[i-1]
		}
		if i+1 < len(tokens) {
			next = tokens[i+1]
		}
		switch tok {
		case "from":
			if oneOf(prev, "got", "received", "money", "gift", "payment") {
				d.income += 3
				tr.add("prep.from_receive", models.TypeIncome, 3)
			} else if oneOf(prev, "bought", "paid", "spent") {
				d.expense += 2
				tr.add("prep.from_spend", models.TypeExpense, 2)
			}
		case "to":
			if next == "me" {
				d.income += 3
				tr.add("prep.to_me", models.TypeIncome, 3)
			} else if oneOf(prev, "transfer", "transferred", "deposit", "deposited") {
				d.income += 3
				tr.add("prep.to_transfer", models.TypeIncome, 3)
			} else if oneOf(prev, "gave", "paid", "sent", "lent") {
				d.expense += 3
				tr.add("prep.to_give", models.TypeExpense, 3)
			}
		case "for":
			if oneOf(prev, "paid", "spent", "bought") {
				d.expense += 2
				tr.add("prep.for_spend", models.TypeExpense, 2)
			}
		case "by":
			if oneOf(prev, "paid", "sent") {
				d.income += 2
				tr.add("prep.by_paid", models.TypeIncome, 2)
			}
		case "with":
			if oneOf(prev, "bought", "paid") {
				d.expense += 1
				tr.add("prep.with_spend", models.TypeExpense, 1)
			}
		}
	}
	return d
}

// --- pass 3: subject-verb-object windows ---

// svoWindows classifies each action verb by its local context: the
// single word before it as subject and up to three words after it as
// object.
func svoWindows(tokens []string, _ string, tr *Trace) scoreDelta {
	var d scoreDelta
	for i, tok := range tokens {
		subject := ""
		if i > 0 {
			subject = tokens[i-1]
		}
		end := i + 4
		if end > len(tokens) {
			end = len(tokens)
		}
		object := tokens[i+1 : end]

		switch tok {
		case "got":
			if hasAnyToken(object, "gift", "money", "salary", "bonus", "cash") {
				d.income += 3
				tr.add("svo.got_income", models.TypeIncome, 3)
			} else if hasAnyToken(object, "coffee", "lunch", "dinner", "groceries", "food", "clothes") {
				d.expense += 3
				tr.add("svo.got_purchase", models.TypeExpense, 3)
			}
		case "gave":
			if subject == "i" && hasAnyToken(object, "money", "to") {
				d.expense += 3
				tr.add("svo.i_gave", models.TypeExpense, 3)
			}
		case "earned":
			d.income += 3
			tr.add("svo.earned", models.TypeIncome, 3)
		case "received":
			d.income += 2
			tr.add("svo.received", models.TypeIncome, 2)
		case "spent", "bought":
			d.expense += 2
			tr.add("svo."+tok, models.TypeExpense, 2)
		case "paid":
			if hasAnyToken(object, "for", "bill", "rent") {
				d.expense += 2
				tr.add("svo.paid_out", models.TypeExpense, 2)
			} else if hasAnyToken(object, "me", "back") {
				d.income += 2
				tr.add("svo.paid_back", models.TypeIncome, 2)
			}
		case "sent":
			if hasAnyToken(object, "me") {
				d.income += 2
				tr.add("svo.sent_me", models.TypeIncome, 2)
			} else if subject == "i" {
				d.expense += 2
				tr.add("svo.i_sent", models.TypeExpense, 2)
			}
		}
	}
	return d
}

// --- pass 4: gift/reward lexicon ---

var giftWords = []string{"gift", "present", "donation", "prize", "award", "bonus", "reward"}

func giftLexicon(tokens []string, _ string, tr *Trace) scoreDelta {
	var d scoreDelta
	for _, w := range giftWords {
		if hasToken(tokens, w) {
			d.income += 4
			tr.add("gift:"+w, models.TypeIncome, 4)
		}
	}
	return d
}

// --- pass 5: family-relation bonus ---

var kinshipWords = []string{
	"father", "mother", "dad", "mom", "brother", "sister",
	"uncle", "aunt", "grandfather", "grandmother", "grandpa", "grandma",
	"cousin", "nephew", "niece", "parents", "family",
}

// familyBonus rewards kinship words co-occurring with receiving verbs:
// money moving inside a family is overwhelmingly a gift to the user.
func familyBonus(tokens []string, _ string, tr *Trace) scoreDelta {
	var d scoreDelta
	if !hasAnyToken(tokens, "got", "received", "money") {
		return d
	}
	for _, w := range kinshipWords {
		if hasToken(tokens, w) {
			d.income += 3
			tr.add("family:"+w, models.TypeIncome, 3)
			break
		}
	}
	return d
}

// --- pass 6: direct money-flow phrases ---

var (
	incomeFlowPhrases  = []string{"gave me", "gave to me", "lent me", "paid me", "sent me"}
	expenseFlowPhrases = []string{"gave away", "lent to", "paid to", "sent to"}
)

func moneyFlowPhrases(_ []string, text string, tr *Trace) scoreDelta {
	var d scoreDelta
	for _, p := range incomeFlowPhrases {
		if strings.Contains(text, p) {
			d.income += 3
			tr.add("flow:"+p, models.TypeIncome, 3)
		}
	}
	// "gave to" flips direction unless it is "gave to me"
	if strings.Contains(text, "gave to") && !strings.Contains(text, "gave to me") {
		d.expense += 3
		tr.add("flow:gave to", models.TypeExpense, 3)
	}
	for _, p := range expenseFlowPhrases {
		if strings.Contains(text, p) {
			d.expense += 3
			tr.add("flow:"+p, models.TypeExpense, 3)
		}
	}
	return d
}

// --- pass 7: receiving/giving phrase lexicons ---

var (
	receivingPhrases = []string{
		"got from", "received from", "money from", "came from",
		"transferred from", "cash from", "payment from", "deposit from",
	}
	givingPhrases = []string{
		"gave away", "paid out", "spent on", "withdrawal", "withdrew",
		"paid for", "purchased", "cost me",
	}
)

// phraseLexicons is cumulative: every matching phrase contributes on its
// own, never capped at one match.
func phraseLexicons(_ []string, text string, tr *Trace) scoreDelta {
	var d scoreDelta
	for _, p := range receivingPhrases {
		if strings.Contains(text, p) {
			d.income += 2
			tr.add("receive:"+p, models.TypeIncome, 2)
		}
	}
	for _, p := range givingPhrases {
		if strings.Contains(text, p) {
			d.expense += 2
			tr.add("give:"+p, models.TypeExpense, 2)
		}
	}
	return d
}

// --- pass 8: possessive/pronoun context ---

var shoppingContextPhrases = []string{"went to market", "shopping", "bought", "purchase"}

func pronounContext(tokens []string, text string, tr *Trace) scoreDelta {
	var d scoreDelta
	if !hasAnyToken(tokens, "me", "my", "i") {
		return d
	}
	for i, tok := range tokens {
		if tok != "me" || i == 0 {
			continue
		}
		switch prev := tokens[i-1]; {
		case oneOf(prev, "gave", "paid", "lent"):
			d.income += 2
			tr.add("pronoun.verb_me", models.TypeIncome, 2)
		case prev == "to":
			d.income += 1
			tr.add("pronoun.to_me", models.TypeIncome, 1)
		}
	}
	if strings.Contains(text, "for myself") || strings.Contains(text, "for me") {
		d.expense += 3
		tr.add("pronoun.for_self", models.TypeExpense, 3)
	}
	for _, p := range shoppingContextPhrases {
		if strings.Contains(text, p) {
			d.expense += 2
			tr.add("pronoun.shopping:"+p, models.TypeExpense, 2)
		}
	}
	return d
}

// --- pass 9: semantic verb disambiguation ---

var (
	gotShoppingIndicators = []string{
		"myself", "coffee", "lunch", "dinner", "groceries", "clothes",
		"shoes", "food", "store", "market", "shopping",
	}
	gotMoneyIndicators = []string{
		"from", "salary", "payment", "money", "cash", "gift", "bonus",
		"client", "boss",
	}
)

// semanticVerbs handles "got", the most ambiguous verb in the corpus,
// with a three-word window on each side, and gives the remaining base
// verbs a small per-occurrence default. It runs in addition to the
// earlier passes; contributions accumulate without deduplication.
func semanticVerbs(tokens []string, _ string, tr *Trace) scoreDelta {
	var d scoreDelta
	for i, tok := range tokens {
		switch tok {
		case "got":
			lo := i - 3
			if lo < 0 {
				lo = 0
			}
			hi := i + 4
			if hi > len(tokens) {
				hi = len(tokens)
			}
			window := append(append([]string{}, tokens[lo:i]...), tokens[i+1:hi]...)

			fired := false
			if hasAnyToken(window, gotShoppingIndicators...) {
				d.expense += 2
				tr.add("verb.got_shopping", models.TypeExpense, 2)
				fired = true
			}
			if hasAnyToken(window, gotMoneyIndicators...) {
				d.income += 2
				tr.add("verb.got_money", models.TypeIncome, 2)
				fired = true
			}
			if !fired {
				d.income += 1
				tr.add("verb.got", models.TypeIncome, 1)
			}
		case "received", "earned":
			d.income += 1
			tr.add("verb."+tok, models.TypeIncome, 1)
		case "paid", "spent", "bought":
			d.expense += 1
			tr.add("verb."+tok, models.TypeExpense, 1)
		}
	}
	return d
}
