// Package money handles monetary amounts as exact integer pennies.
// No floating point is used anywhere so amounts never drift.
package money

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Pence is an amount in minor currency units (pennies).
type Pence int64

// Symbol is the currency symbol used for formatting.
const Symbol = "£"

// MaxAmount is the largest amount Parse accepts.
const MaxAmount Pence = math.MaxInt32

// ErrInvalidAmount is returned when a textual amount cannot be parsed.
var ErrInvalidAmount = errors.New("invalid amount")

// Parse converts free-form text like "1", "1.50" or "£2.00" into pennies.
//
// All whitespace is stripped, then a single leading currency symbol is
// tolerated. Signed amounts are rejected. A single fractional digit is read
// as tenths of a pound ("1.5" means £1.50, not £1.05) — this mirrors the
// machine's historical behaviour and must not be "fixed" to decimal
// semantics.
func Parse(s string) (Pence, error) {
	x := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
	if x == "" {
		return 0, ErrInvalidAmount
	}

	first, size := utf8.DecodeRuneInString(x)
	if !isDigit(first) && first != '.' && first != '+' && first != '-' {
		x = x[size:]
	}
	if x == "" {
		return 0, ErrInvalidAmount
	}
	if x[0] == '-' || x[0] == '+' {
		return 0, ErrInvalidAmount
	}
	if strings.Count(x, ".") > 1 {
		return 0, ErrInvalidAmount
	}

	var total int64
	if dot := strings.IndexByte(x, '.'); dot < 0 {
		if !allDigits(x) {
			return 0, ErrInvalidAmount
		}
		pounds, err := strconv.ParseInt(x, 10, 64)
		if err != nil {
			return 0, ErrInvalidAmount
		}
		if pounds > int64(MaxAmount) {
			return 0, ErrInvalidAmount
		}
		total = pounds * 100
	} else {
		whole, frac := x[:dot], x[dot+1:]
		if whole == "" {
			whole = "0"
		}
		if len(frac) == 0 || len(frac) > 2 {
			return 0, ErrInvalidAmount
		}
		if !allDigits(whole) || !allDigits(frac) {
			return 0, ErrInvalidAmount
		}
		pounds, err := strconv.ParseInt(whole, 10, 64)
		if err != nil {
			return 0, ErrInvalidAmount
		}
		pence, err := strconv.ParseInt(frac, 10, 64)
		if err != nil {
			return 0, ErrInvalidAmount
		}
		if len(frac) == 1 {
			pence *= 10
		}
		if pounds > int64(MaxAmount) {
			return 0, ErrInvalidAmount
		}
		total = pounds*100 + pence
	}

	if total < 0 || total > int64(MaxAmount) {
		return 0, ErrInvalidAmount
	}
	return Pence(total), nil
}

// MustParse is Parse for static tables; it panics on malformed input.
func MustParse(s string) Pence {
	p, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("money: cannot parse %q", s))
	}
	return p
}

// Format renders pennies as a currency string, e.g. 150 → "£1.50",
// -5 → "-£0.05".
func Format(p Pence) string {
	neg := p < 0
	if neg {
		p = -p
	}
	out := fmt.Sprintf("%s%d.%02d", Symbol, p/100, p%100)
	if neg {
		return "-" + out
	}
	return out
}

// String implements fmt.Stringer via Format.
func (p Pence) String() string { return Format(p) }

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
