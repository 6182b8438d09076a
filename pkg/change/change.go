// Package change computes coin and note breakdowns for returned balances.
package change

import (
	"fmt"

	"vending-system/pkg/money"
)

// Denominations lists the machine's coin and note face values in pennies,
// largest first. The set is canonical: greedy largest-first always produces
// the minimum number of coins.
var Denominations = []money.Pence{200, 100, 50, 20, 10, 5, 2, 1}

// Unit is one line of a change breakdown: a face value and how many of it.
type Unit struct {
	Denomination money.Pence
	Count        int
}

// Breakdown splits a non-negative amount across Denominations greedily.
// Only denominations actually used appear, in descending face-value order.
// A zero amount yields an empty breakdown.
func Breakdown(amount money.Pence) []Unit {
	var out []Unit
	for _, d := range Denominations {
		if cnt := amount / d; cnt > 0 {
			out = append(out, Unit{Denomination: d, Count: int(cnt)})
			amount %= d
		}
	}
	return out
}

// Label renders a face value the way it is printed on the coin or note:
// "£2" for a pound value, "5p" for pennies.
func Label(d money.Pence) string {
	if d >= 100 {
		return fmt.Sprintf("%s%d", money.Symbol, d/100)
	}
	return fmt.Sprintf("%dp", d)
}
