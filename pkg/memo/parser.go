// Package memo evaluates free-text spending memos.
//
// A memo is text such as
//
//	スーパー 1200
//	-500
//	100×3
//	(家族分 3000)
//
// Every number outside of brackets counts towards the total, inline
// multiplications and divisions are evaluated. The memo above totals 1000.
package memo

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/width"
)

var (
	// Full-width digits ０ to ９
	fullWidthDigits = &unicode.RangeTable{
		R16: []unicode.Range16{{Lo: 0xFF10, Hi: 0xFF19, Stride: 1}},
	}

	bracketBalancedRe = regexp.MustCompile(`[（(][^）)]*[）)]`)
	bracketOpenRe     = regexp.MustCompile(`[（(][^）)]*`)
	bracketCloseRe    = regexp.MustCompile(`[^（(]*[）)]`)

	// Spaces around the operator include full-width and no-break spaces
	operationRe = regexp.MustCompile(`([0-9.\-]+)[\s\v\p{Z}\x{FEFF}]*([×xX*÷/])[\s\v\p{Z}\x{FEFF}]*([0-9.\-]+)`)
	numberRe    = regexp.MustCompile(`-?[0-9]+(?:\.[0-9]+)?`)

	half = decimal.New(5, -1)
)

// Parser sums up the amounts in a memo.
type Parser struct {
	// NormalizeFullWidth folds full-width digits to ASCII before parsing.
	NormalizeFullWidth bool

	// Round rounds the total to the nearest integer. Halves round up.
	Round bool
}

// NewParser returns a Parser with full-width normalization enabled and rounding disabled.
func NewParser() Parser {
	return Parser{NormalizeFullWidth: true}
}

// Total returns the sum of all amounts in the text. It never fails, text
// without numbers totals zero.
func (p Parser) Total(text string) decimal.Decimal {
	if p.NormalizeFullWidth {
		text = NormalizeDigits(text)
	}

	text = StripBrackets(text)
	text = strings.ReplaceAll(text, ",", "")
	text = strings.NewReplacer("¥", "", "円", "").Replace(text)

	total := decimal.Zero

	text = operationRe.ReplaceAllStringFunc(text, func(match string) string {
		total = total.Add(evaluate(operationRe.FindStringSubmatch(match)))
		return ""
	})

	for _, number := range numberRe.FindAllString(text, -1) {
		d, err := decimal.NewFromString(number)
		if err != nil {
			continue
		}
		total = total.Add(d)
	}

	if p.Round {
		return RoundHalfUp(total)
	}

	return total
}

// NormalizeDigits replaces full-width digits with their ASCII counterparts.
// All other characters are left as they are.
func NormalizeDigits(text string) string {
	t := runes.If(runes.In(fullWidthDigits), width.Narrow, nil)

	normalized, _, err := transform.String(t, text)
	if err != nil {
		return text
	}

	return normalized
}

// StripBrackets removes bracketed text. Balanced pairs go first, then an
// unclosed opener with everything after it, then everything up to an
// unmatched closer. Both ASCII and full-width brackets are recognized.
func StripBrackets(text string) string {
	text = bracketBalancedRe.ReplaceAllString(text, "")
	text = bracketOpenRe.ReplaceAllString(text, "")
	return bracketCloseRe.ReplaceAllString(text, "")
}

// RoundHalfUp rounds to the nearest integer, halves towards positive infinity.
func RoundHalfUp(d decimal.Decimal) decimal.Decimal {
	return d.Add(half).Floor()
}

// evaluate computes a single "a op b" match. Operands that are not valid
// numbers and division by zero evaluate to zero.
func evaluate(groups []string) decimal.Decimal {
	if len(groups) != 4 {
		return decimal.Zero
	}

	a, err := decimal.NewFromString(groups[1])
	if err != nil {
		return decimal.Zero
	}

	b, err := decimal.NewFromString(groups[3])
	if err != nil {
		return decimal.Zero
	}

	switch groups[2] {
	case "÷", "/":
		if b.IsZero() {
			return decimal.Zero
		}
		return a.Div(b)
	default:
		return a.Mul(b)
	}
}
