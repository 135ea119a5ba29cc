package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/aminafi/smartfinance/internal/classifier"
	"github.com/aminafi/smartfinance/internal/models"
)

func newHeuristicDetectService() *DetectService {
	return NewDetectService(
		classifier.NewRegexAmountExtractor(),
		classifier.NewHeuristicTypeAnalyzer(),
		classifier.NewKeywordTitleGenerator(),
		true,
		0,
		zap.NewNop(),
	)
}

func TestDetectEndToEnd(t *testing.T) {
	svc := newHeuristicDetectService()

	tests := []struct {
		text       string
		wantAmount string
		wantType   models.TransactionType
	}{
		{"income 340", "340", models.TypeIncome},
		{"expense 100", "100", models.TypeExpense},
		{"Got $500 from my brother", "500", models.TypeIncome},
		{"Paid rent 1200", "1200", models.TypeExpense},
		{"Deposited 300 into savings", "300", models.TypeSavings},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := svc.Detect(context.Background(), tt.text)
			if err != nil {
				t.Fatalf("Detect(%q): %v", tt.text, err)
			}
			if got.Amount.String() != tt.wantAmount {
				t.Errorf("amount = %s, want %s", got.Amount, tt.wantAmount)
			}
			if got.Type != tt.wantType {
				t.Errorf("type = %s, want %s", got.Type, tt.wantType)
			}
			if got.Confidence <= 0.8 {
				t.Errorf("confidence = %v, want > 0.8", got.Confidence)
			}
			if got.Title == "" {
				t.Error("title is empty")
			}
		})
	}
}

func TestDetectKeepsOriginalDescription(t *testing.T) {
	svc := newHeuristicDetectService()

	const text = "Got $500 from my Brother"
	got, err := svc.Detect(context.Background(), "  "+text+"  ")
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	if got.Description != text {
		t.Errorf("description = %q, want the trimmed original %q", got.Description, text)
	}
}

func TestDetectIsDeterministic(t *testing.T) {
	svc := newHeuristicDetectService()

	first, err := svc.Detect(context.Background(), "spent 45 on groceries")
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	second, err := svc.Detect(context.Background(), "spent 45 on groceries")
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	if !first.Amount.Equal(second.Amount) || first.Type != second.Type ||
		first.Title != second.Title || first.Confidence != second.Confidence {
		t.Errorf("repeated detection differs: %+v vs %+v", first, second)
	}
}

func TestDetectMissingAmount(t *testing.T) {
	svc := newHeuristicDetectService()

	for _, text := range []string{"", "   ", "bought some groceries"} {
		if _, err := svc.Detect(context.Background(), text); !errors.Is(err, ErrMissingAmount) {
			t.Errorf("Detect(%q) error = %v, want ErrMissingAmount", text, err)
		}
	}
}

type fixedAnalyzer struct {
	result classifier.TypeResult
}

func (a fixedAnalyzer) Analyze(string, *classifier.Trace) classifier.TypeResult {
	return a.result
}

func TestDetectLowConfidence(t *testing.T) {
	svc := NewDetectService(
		classifier.NewRegexAmountExtractor(),
		fixedAnalyzer{classifier.TypeResult{Type: models.TypeExpense, Confidence: 0.2}},
		classifier.NewKeywordTitleGenerator(),
		false,
		0,
		zap.NewNop(),
	)

	if _, err := svc.Detect(context.Background(), "something vague 50"); !errors.Is(err, ErrLowConfidence) {
		t.Errorf("error = %v, want ErrLowConfidence", err)
	}
}

func TestDetectNoSignal(t *testing.T) {
	svc := NewDetectService(
		classifier.NewRegexAmountExtractor(),
		fixedAnalyzer{classifier.TypeResult{Type: models.TypeExpense, Confidence: 0}},
		classifier.NewKeywordTitleGenerator(),
		true,
		0,
		zap.NewNop(),
	)

	if _, err := svc.Detect(context.Background(), "mystery 50"); !errors.Is(err, ErrUnclassified) {
		t.Errorf("error = %v, want ErrUnclassified", err)
	}
}

func TestDetectCancelledContext(t *testing.T) {
	svc := NewDetectService(
		classifier.NewRegexAmountExtractor(),
		classifier.NewHeuristicTypeAnalyzer(),
		classifier.NewKeywordTitleGenerator(),
		true,
		time.Second,
		zap.NewNop(),
	)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := svc.Detect(ctx, "salary 5000"); !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

func TestDetectAmountPrecision(t *testing.T) {
	svc := newHeuristicDetectService()

	got, err := svc.Detect(context.Background(), "got salary of 1,234.56 dollars")
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	if !got.Amount.Equal(decimal.RequireFromString("1234.56")) {
		t.Errorf("amount = %s, want 1234.56", got.Amount)
	}
}
