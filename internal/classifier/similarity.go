package classifier

import (
	"math"
	"strings"

	"github.com/aminafi/smartfinance/internal/models"
)

// SimilarityClassifier is the alternative classification strategy: it
// matches the input against a knowledge base of transaction patterns
// using TF-IDF cosine similarity blended with keyword/verb overlap, and
// takes the best entry's type and title. It implements both TypeAnalyzer
// and TitleGenerator so the façade can swap the whole pair in; its
// scoring never mixes with the heuristic strategy's.
type SimilarityClassifier struct {
	patterns []models.Pattern
}

// Blend weights for one pattern score. Cosine carries most of the
// signal; keyword and verb overlap reward exact vocabulary hits that
// TF-IDF dilutes on short inputs.
const (
	simCosineWeight  = 0.50
	simKeywordWeight = 0.30
	simVerbWeight    = 0.15
	simContextWeight = 0.05

	// minimum blended score before a pattern's title is trusted
	simTitleFloor = 0.15
)

// NewSimilarityClassifier builds a classifier over the given knowledge
// base, falling back to the built-in pattern set when patterns is empty.
func NewSimilarityClassifier(patterns []models.Pattern) *SimilarityClassifier {
	if len(patterns) == 0 {
		patterns = DefaultPatterns()
	}
	return &SimilarityClassifier{patterns: patterns}
}

func (c *SimilarityClassifier) Analyze(text string, trace *Trace) TypeResult {
	tokens := tokenize(text)
	best, score := c.bestMatch(tokens)
	if best == nil {
		return TypeResult{Type: models.TypeExpense, Confidence: 0}
	}
	trace.add("similarity:"+best.Category, best.Type, int(score*100))
	if score > 1 {
		score = 1
	}
	return TypeResult{Type: best.Type, Confidence: score}
}

func (c *SimilarityClassifier) Generate(text string, t models.TransactionType) string {
	tokens := tokenize(text)
	best, score := c.bestMatch(tokens)
	if best != nil && score >= simTitleFloor && best.Type == t {
		return best.Title
	}
	return fallbackTitle(t)
}

// bestMatch scores every knowledge-base entry against the input and
// returns the winner. The TF-IDF vocabulary is rebuilt per call from the
// input plus all pattern documents; the knowledge base is small and the
// rebuild keeps the classifier stateless.
func (c *SimilarityClassifier) bestMatch(inputTokens []string) (*models.Pattern, float64) {
	if len(inputTokens) == 0 || len(c.patterns) == 0 {
		return nil, 0
	}

	docs := make([][]string, 0, len(c.patterns)+1)
	docs = append(docs, inputTokens)
	for _, p := range c.patterns {
		doc := make([]string, 0, len(p.Keywords)+len(p.Verbs))
		doc = append(doc, p.Keywords...)
		doc = append(doc, p.Verbs...)
		docs = append(docs, doc)
	}

	vocab := buildVocabulary(docs)
	idf := inverseDocumentFrequency(docs, vocab)
	inputVec := tfidfVector(inputTokens, vocab, idf)

	var best *models.Pattern
	var bestScore float64
	for i := range c.patterns {
		p := &c.patterns[i]
		cos := cosineSimilarity(inputVec, tfidfVector(docs[i+1], vocab, idf))
		kw := lexiconScore(inputTokens, p.Keywords)
		vb := lexiconScore(inputTokens, p.Verbs)
		ctx := contextAffinity(inputTokens, p.Type)

		score := simCosineWeight*cos + simKeywordWeight*kw + simVerbWeight*vb + simContextWeight*ctx
		if score > bestScore {
			bestScore = score
			best = p
		}
	}
	return best, bestScore
}

func buildVocabulary(docs [][]string) map[string]int {
	vocab := make(map[string]int)
	for _, doc := range docs {
		for _, w := range doc {
			if _, ok := vocab[w]; !ok {
				vocab[w] = len(vocab)
			}
		}
	}
	return vocab
}

func inverseDocumentFrequency(docs [][]string, vocab map[string]int) []float64 {
	df := make([]int, len(vocab))
	for _, doc := range docs {
		seen := make(map[int]bool, len(doc))
		for _, w := range doc {
			idx := vocab[w]
			if !seen[idx] {
				seen[idx] = true
				df[idx]++
			}
		}
	}
	idf := make([]float64, len(vocab))
	n := float64(len(docs))
	for i, d := range df {
		idf[i] = math.Log(n/float64(1+d)) + 1
	}
	return idf
}

func tfidfVector(doc []string, vocab map[string]int, idf []float64) []float64 {
	vec := make([]float64, len(vocab))
	if len(doc) == 0 {
		return vec
	}
	for _, w := range doc {
		vec[vocab[w]]++
	}
	for i := range vec {
		vec[i] = vec[i] / float64(len(doc)) * idf[i]
	}
	return vec
}

func cosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// lexiconScore rewards any hit against a candidate list with a presence
// floor of 0.5, then scales with coverage. A raw hit ratio would dilute
// a single exact keyword hit on a short input to near zero.
func lexiconScore(tokens, candidates []string) float64 {
	if len(candidates) == 0 {
		return 0
	}
	hits := 0
	for _, c := range candidates {
		if hasToken(tokens, c) {
			hits++
		}
	}
	if hits == 0 {
		return 0
	}
	return 0.5 + 0.5*float64(hits)/float64(len(candidates))
}

// contextAffinity gives a small nudge when the sentence's function words
// agree with the pattern's flow direction.
func contextAffinity(tokens []string, t models.TransactionType) float64 {
	switch t {
	case models.TypeIncome:
		if hasAnyToken(tokens, "from", "credited", "me") {
			return 1
		}
	case models.TypeExpense:
		if hasAnyToken(tokens, "for", "on", "at") {
			return 1
		}
	case models.TypeSavings:
		if hasAnyToken(tokens, "into", "bank", "account") {
			return 1
		}
	}
	return 0
}

// DefaultPatterns is the built-in transaction-pattern knowledge base,
// used when no seeded pattern store is available.
func DefaultPatterns() []models.Pattern {
	mk := func(category, title string, t models.TransactionType, keywords, verbs string) models.Pattern {
		return models.Pattern{
			Category: category,
			Title:    title,
			Type:     t,
			Keywords: strings.Fields(keywords),
			Verbs:    strings.Fields(verbs),
		}
	}
	return []models.Pattern{
		mk("salary", "Salary", models.TypeIncome,
			"salary paycheck wages payroll monthly pay", "received got earned credited"),
		mk("freelance", "Freelance Income", models.TypeIncome,
			"freelance client project gig invoice contract", "earned received completed delivered"),
		mk("gift", "Gift Money", models.TypeIncome,
			"gift present birthday surprise reward prize", "got received gave won"),
		mk("family", "Family Support", models.TypeIncome,
			"brother sister father mother family money", "got received sent gave"),
		mk("refund", "Refund", models.TypeIncome,
			"refund cashback return reimbursement", "received got credited"),
		mk("food", "Food & Dining", models.TypeExpense,
			"food lunch dinner coffee restaurant groceries pizza meal", "bought ate paid ordered"),
		mk("transport", "Transportation", models.TypeExpense,
			"taxi uber bus train fuel petrol ticket cab", "paid took booked"),
		mk("shopping", "Shopping", models.TypeExpense,
			"clothes shoes shopping mall amazon dress electronics", "bought purchased got"),
		mk("bills", "Bills & Utilities", models.TypeExpense,
			"bill electricity internet rent phone water recharge", "paid cleared settled"),
		mk("entertainment", "Entertainment", models.TypeExpense,
			"movie concert game netflix subscription tickets", "watched paid bought"),
		mk("healthcare", "Healthcare", models.TypeExpense,
			"medicine doctor pharmacy hospital checkup", "paid bought visited"),
		mk("savings", "Savings Deposit", models.TypeSavings,
			"savings deposit bank account fund balance", "deposited saved transferred moved"),
		mk("investment", "Investment", models.TypeSavings,
			"invest investment stocks mutual fund sip shares", "invested bought put"),
		mk("emergency", "Emergency Fund", models.TypeSavings,
			"emergency fund rainy day future safety", "set saved kept put"),
	}
}
