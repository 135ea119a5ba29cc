package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/aminafi/smartfinance/internal/dto"
	"github.com/aminafi/smartfinance/internal/models"
	"github.com/aminafi/smartfinance/internal/repository"
)

var (
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrInvalidType         = errors.New("unknown transaction type")
	ErrInvalidDate         = errors.New("date must be formatted as YYYY-MM-DD")
	ErrTransactionNotFound = errors.New("transaction not found")
)

const dateLayout = "2006-01-02"

// TransactionService persists confirmed transactions and serves the
// listing queries. Detection results only become rows here, after the
// user accepted them.
type TransactionService struct {
	txRepo *repository.TransactionRepository
	logger *zap.Logger
}

func NewTransactionService(txRepo *repository.TransactionRepository, logger *zap.Logger) *TransactionService {
	return &TransactionService{
		txRepo: txRepo,
		logger: logger,
	}
}

func (s *TransactionService) Create(ctx context.Context, userID uuid.UUID, req *dto.CreateTransactionRequest) (*dto.TransactionResponse, error) {
	if req.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	txType := models.TransactionType(req.Type)
	if !txType.Valid() {
		return nil, ErrInvalidType
	}

	date := time.Now()
	if req.Date != "" {
		parsed, err := time.Parse(dateLayout, req.Date)
		if err != nil {
			return nil, ErrInvalidDate
		}
		date = parsed
	}

	tx := &models.Transaction{
		ID:          uuid.New(),
		UserID:      userID,
		Amount:      req.Amount,
		Title:       req.Title,
		Description: req.Description,
		Type:        txType,
		Date:        date,
		EntryDate:   time.Now(),
	}

	if err := s.txRepo.Create(ctx, tx); err != nil {
		return nil, err
	}

	s.logger.Info("transaction created",
		zap.String("transaction_id", tx.ID.String()),
		zap.String("type", string(tx.Type)),
	)
	return toTransactionResponse(tx), nil
}

func (s *TransactionService) GetByID(ctx context.Context, userID, id uuid.UUID) (*dto.TransactionResponse, error) {
	tx, err := s.txRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, ErrTransactionNotFound
	}
	return toTransactionResponse(tx), nil
}

// List returns the user's transactions inside [from, to]. Empty bounds
// widen to all history up to now.
func (s *TransactionService) List(ctx context.Context, userID uuid.UUID, fromStr, toStr string) ([]*dto.TransactionResponse, error) {
	from := time.Time{}
	if fromStr != "" {
		parsed, err := time.Parse(dateLayout, fromStr)
		if err != nil {
			return nil, ErrInvalidDate
		}
		from = parsed
	}

	to := time.Now()
	if toStr != "" {
		parsed, err := time.Parse(dateLayout, toStr)
		if err != nil {
			return nil, ErrInvalidDate
		}
		// Inclusive upper bound covers the whole day.
		to = parsed.Add(24*time.Hour - time.Nanosecond)
	}

	transactions, err := s.txRepo.ListByDateRange(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.TransactionResponse, 0, len(transactions))
	for _, tx := range transactions {
		responses = append(responses, toTransactionResponse(tx))
	}
	return responses, nil
}

func (s *TransactionService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if _, err := s.txRepo.GetByID(ctx, userID, id); err != nil {
		return ErrTransactionNotFound
	}
	return s.txRepo.Delete(ctx, userID, id)
}

func toTransactionResponse(tx *models.Transaction) *dto.TransactionResponse {
	return &dto.TransactionResponse{
		ID:          tx.ID.String(),
		Amount:      tx.Amount,
		Title:       tx.Title,
		Description: tx.Description,
		Type:        string(tx.Type),
		Date:        tx.Date.Format(dateLayout),
		EntryDate:   tx.EntryDate.Format(time.RFC3339),
	}
}
