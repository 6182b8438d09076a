package model

import (
	"vending-system/pkg/change"
	"vending-system/pkg/money"
)

// Item represents a catalog entry in the machine
type Item struct {
	Code     string      `json:"code"`
	Name     string      `json:"name"`
	Category string      `json:"category"`
	Price    money.Pence `json:"price"` // in pennies
	Stock    int         `json:"stock"`
}

// CategoryGroup lists the item codes belonging to one category, ready for
// menu rendering (categories and codes both sorted lexicographically).
type CategoryGroup struct {
	Category string   `json:"category"`
	Codes    []string `json:"codes"`
}

// AddFundsResult reports a successful money insertion
type AddFundsResult struct {
	Added   money.Pence `json:"added"`
	Balance money.Pence `json:"balance"`
}

// PurchaseReceipt summarizes a successful purchase. Suggestion is nil unless
// a cross-sell mapping exists and the suggested item is currently in stock.
type PurchaseReceipt struct {
	Item       Item        `json:"item"`
	Balance    money.Pence `json:"balance"`
	Suggestion *Item       `json:"suggestion,omitempty"`
}

// ChangeReceipt summarizes the change returned at the end of a session
type ChangeReceipt struct {
	Amount    money.Pence   `json:"amount"`
	Breakdown []change.Unit `json:"breakdown"`
}
