package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/aminafi/smartfinance/internal/classifier"
	"github.com/aminafi/smartfinance/internal/models"
)

var (
	ErrMissingAmount = errors.New("no monetary amount found in text")
	ErrLowConfidence = errors.New("classification confidence too low")
	ErrUnclassified  = errors.New("text carries no classification signal")
)

// Hints returned alongside detection errors so clients can tell the
// user how to rephrase.
const (
	HintMissingAmount = `include an amount like "$50", "50 dollars" or "₹100"`
	HintLowConfidence = "describe the transaction with more detail, e.g. what the money was for"
)

const (
	// Minimum confidence a detection must clear before it is returned.
	acceptanceThreshold = 0.3

	// The rule-based analyzer does not produce a calibrated probability,
	// so accepted detections report a fixed confidence.
	heuristicConfidence = 0.85
)

// DetectService turns a free-form sentence into a structured transaction
// draft. It extracts the amount, classifies the type and generates a
// short title, rejecting inputs it cannot read with enough confidence.
type DetectService struct {
	amounts    classifier.AmountExtractor
	types      classifier.TypeAnalyzer
	titles     classifier.TitleGenerator
	pinnedConf float64
	thinkDelay time.Duration
	logger     *zap.Logger
}

// NewDetectService wires a detection pipeline. pinConfidence selects
// whether accepted results report a fixed confidence (rule-based
// strategy) or the analyzer's own score (similarity strategy).
func NewDetectService(
	amounts classifier.AmountExtractor,
	types classifier.TypeAnalyzer,
	titles classifier.TitleGenerator,
	pinConfidence bool,
	thinkDelay time.Duration,
	logger *zap.Logger,
) *DetectService {
	s := &DetectService{
		amounts:    amounts,
		types:      types,
		titles:     titles,
		thinkDelay: thinkDelay,
		logger:     logger,
	}
	if pinConfidence {
		s.pinnedConf = heuristicConfidence
	}
	return s
}

func (s *DetectService) Detect(ctx context.Context, text string) (*models.DetectedTransaction, error) {
	if s.thinkDelay > 0 {
		select {
		case <-time.After(s.thinkDelay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	original := strings.TrimSpace(text)
	if original == "" {
		return nil, ErrMissingAmount
	}
	normalized := strings.ToLower(original)

	amount := s.amounts.Extract(normalized)
	if !amount.IsPositive() {
		return nil, ErrMissingAmount
	}

	trace := &classifier.Trace{}
	result := s.types.Analyze(normalized, trace)
	if result.Confidence == 0 {
		return nil, ErrUnclassified
	}

	confidence := result.Confidence
	if s.pinnedConf > 0 {
		confidence = s.pinnedConf
	}
	if confidence <= acceptanceThreshold {
		s.logger.Debug("detection rejected",
			zap.String("type", string(result.Type)),
			zap.Float64("confidence", confidence),
			zap.Int("rules_fired", len(trace.Firings())),
		)
		return nil, ErrLowConfidence
	}

	detected := &models.DetectedTransaction{
		Amount:      amount,
		Type:        result.Type,
		Title:       s.titles.Generate(normalized, result.Type),
		Description: original,
		Confidence:  confidence,
	}

	s.logger.Debug("transaction detected",
		zap.String("type", string(detected.Type)),
		zap.String("amount", amount.String()),
		zap.Float64("confidence", confidence),
		zap.Int("rules_fired", len(trace.Firings())),
	)
	return detected, nil
}
