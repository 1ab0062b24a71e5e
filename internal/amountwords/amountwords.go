// Package amountwords spells currency amounts using the South Asian place-value
// system (crore, lakh, thousand, hundred) as printed on sale receipts.
package amountwords

import (
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	hundred  = 100
	thousand = 1_000
	lakh     = 100_000
	crore    = 10_000_000
)

var (
	ones  = [...]string{"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine"}
	teens = [...]string{"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen", "Seventeen", "Eighteen", "Nineteen"}
	tens  = [...]string{"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety"}
)

// Convert returns the words for n, e.g. 150000 -> "One Lakh Fifty Thousand".
//
// The crore count is spelled recursively and is not capped, so amounts of a
// hundred crore and above keep their full magnitude.
func Convert(n int64) string {
	if n < 0 {
		// -(n+1)+1 keeps math.MinInt64 representable.
		return "Negative " + spell(uint64(-(n+1))+1)
	}
	return spell(uint64(n))
}

// ConvertDecimal is Convert for arbitrary decimal amounts. The fractional part
// is truncated before spelling; values beyond the uint64 range are supported.
func ConvertDecimal(d decimal.Decimal) string {
	t := d.Truncate(0)
	b := t.Abs().BigInt()

	var words string
	if b.IsUint64() {
		words = spell(b.Uint64())
	} else {
		words = strings.Join(bigWords(b), " ")
	}
	if t.Sign() < 0 {
		return "Negative " + words
	}
	return words
}

func spell(n uint64) string {
	parts := appendWords(nil, n)
	if len(parts) == 0 {
		return "Zero"
	}
	return strings.Join(parts, " ")
}

func bigWords(b *big.Int) []string {
	if b.IsUint64() {
		return appendWords(nil, b.Uint64())
	}
	q, r := new(big.Int).QuoRem(b, big.NewInt(crore), new(big.Int))
	parts := append(bigWords(q), "Crore")
	return appendBelowCrore(parts, r.Uint64())
}

func appendWords(parts []string, n uint64) []string {
	if c := n / crore; c > 0 {
		parts = append(parts, appendWords(nil, c)...)
		parts = append(parts, "Crore")
	}
	return appendBelowCrore(parts, n%crore)
}

// appendBelowCrore spells n < one crore. The "and" connective is emitted only
// when parts already holds words.
func appendBelowCrore(parts []string, n uint64) []string {
	if l := n / lakh % 100; l > 0 {
		parts = append(parts, belowHundred(l)...)
		parts = append(parts, "Lakh")
	}
	if t := n / thousand % 100; t > 0 {
		parts = append(parts, belowHundred(t)...)
		parts = append(parts, "Thousand")
	}
	if h := n / hundred % 10; h > 0 {
		parts = append(parts, ones[h], "Hundred")
	}
	if r := n % 100; r > 0 {
		if len(parts) > 0 {
			parts = append(parts, "and")
		}
		parts = append(parts, belowHundred(r)...)
	}
	return parts
}

func belowHundred(n uint64) []string {
	t, u := n/10, n%10
	switch {
	case t == 0 && u == 0:
		return nil
	case t == 0:
		return []string{ones[u]}
	case t == 1:
		return []string{teens[u]}
	case u == 0:
		return []string{tens[t]}
	default:
		return []string{tens[t], ones[u]}
	}
}
