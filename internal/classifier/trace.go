package classifier

import "github.com/aminafi/smartfinance/internal/models"

// RuleFiring records a single heuristic contribution: which rule fired,
// which category it moved and by how much. Negative deltas come from the
// savings exclusion rules.
type RuleFiring struct {
	Rule     string
	Category models.TransactionType
	Delta    int
}

// Trace accumulates rule firings during one analysis so callers and
// tests can see why a category won. A nil *Trace is a valid no-op sink;
// tracing costs nothing unless a caller opts in.
type Trace struct {
	firings []RuleFiring
}

func (t *Trace) add(rule string, cat models.TransactionType, delta int) {
	if t == nil || delta == 0 {
		return
	}
	t.firings = append(t.firings, RuleFiring{Rule: rule, Category: cat, Delta: delta})
}

// Firings returns the recorded contributions in firing order.
func (t *Trace) Firings() []RuleFiring {
	if t == nil {
		return nil
	}
	return t.firings
}

// Fired reports whether rule contributed at least once.
func (t *Trace) Fired(rule string) bool {
	if t == nil {
		return false
	}
	for _, f := range t.firings {
		if f.Rule == rule {
			return true
		}
	}
	return false
}
