package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"vending-system/internal/model"
	"vending-system/internal/repository"
	"vending-system/pkg/change"
	apperrors "vending-system/pkg/errors"
	"vending-system/pkg/money"
)

// TransactionService handles business logic for a single vending session:
// inserting money, purchasing items, and returning change at the end.
type TransactionService struct {
	inventory   repository.InventoryRepository
	suggestions repository.SuggestionRepository
	balance     money.Pence
}

// NewTransactionService creates a session with a zero balance
func NewTransactionService(inventory repository.InventoryRepository, suggestions repository.SuggestionRepository) *TransactionService {
	return &TransactionService{
		inventory:   inventory,
		suggestions: suggestions,
	}
}

// Balance returns the funds currently held for the session
func (s *TransactionService) Balance() money.Pence {
	return s.balance
}

// AddFunds parses a textual amount and credits it to the balance. A value
// that parses but is not strictly positive is rejected as ErrInvalidAmount
// without touching the balance.
func (s *TransactionService) AddFunds(ctx context.Context, raw string) (model.AddFundsResult, error) {
	p, err := money.Parse(raw)
	if err != nil {
		return model.AddFundsResult{}, err
	}
	if p <= 0 {
		return model.AddFundsResult{}, apperrors.ErrInvalidAmount
	}

	s.balance += p
	return model.AddFundsResult{Added: p, Balance: s.balance}, nil
}

// Purchase attempts to buy the item identified by rawCode. Codes are folded
// to upper case at this boundary. Every failure leaves balance and stock
// untouched; the one guarded path (TakeOne failing after the stock check)
// rolls the balance back before reporting ErrStockConflict.
func (s *TransactionService) Purchase(ctx context.Context, rawCode string) (*model.PurchaseReceipt, error) {
	code := strings.ToUpper(strings.TrimSpace(rawCode))
	if code == "" {
		return nil, apperrors.ErrUnknownCode
	}

	item, err := s.inventory.Get(ctx, code)
	if err != nil {
		return nil, err
	}
	if item.Stock <= 0 {
		return nil, &apperrors.OutOfStockError{Code: item.Code, Name: item.Name}
	}
	if s.balance < item.Price {
		return nil, &apperrors.InsufficientFundsError{Shortfall: item.Price - s.balance}
	}

	s.balance -= item.Price
	if err := s.inventory.TakeOne(ctx, code); err != nil {
		// Unreachable while the session owns the inventory, but becomes a
		// live race the moment sessions share stock. Compensate and report.
		s.balance += item.Price
		zap.L().Error("stock check passed but decrement failed, balance rolled back",
			zap.String("code", code),
			zap.Error(err),
		)
		return nil, apperrors.ErrStockConflict
	}

	item.Stock--
	receipt := &model.PurchaseReceipt{Item: item, Balance: s.balance}
	if suggCode, ok := s.suggestions.Get(ctx, code); ok {
		if sugg, err := s.inventory.Get(ctx, suggCode); err == nil && sugg.Stock > 0 {
			receipt.Suggestion = &sugg
		}
	}
	return receipt, nil
}

// Finalize computes the change breakdown for the full balance. The balance
// is returned to the user conceptually; the session ends at the shell, so no
// further operations are expected afterwards.
func (s *TransactionService) Finalize(ctx context.Context) model.ChangeReceipt {
	return model.ChangeReceipt{
		Amount:    s.balance,
		Breakdown: change.Breakdown(s.balance),
	}
}
