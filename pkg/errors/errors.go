package errors

import (
	"errors"
	"fmt"

	"vending-system/pkg/money"
)

// Domain errors for the vending machine
var (
	ErrUnknownCode   = errors.New("unknown item code")
	ErrNoStock       = errors.New("no stock available")
	ErrInvalidAmount = errors.New("invalid amount")
	ErrStockConflict = errors.New("stock conflict detected")
)

// OutOfStockError reports a purchase attempt against an exhausted item,
// carrying enough identity to name the item to the user.
type OutOfStockError struct {
	Code string
	Name string
}

func (e *OutOfStockError) Error() string {
	return fmt.Sprintf("item %s (%s) is out of stock", e.Code, e.Name)
}

func (e *OutOfStockError) Unwrap() error { return ErrNoStock }

// InsufficientFundsError reports a purchase attempt with a balance below the
// item price. Shortfall is the exact amount still needed.
type InsufficientFundsError struct {
	Shortfall money.Pence
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds: %s more needed", money.Format(e.Shortfall))
}
