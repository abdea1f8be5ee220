package models

import (
	"github.com/kakeibo/backend/pkg/memo"
	"github.com/shopspring/decimal"
)

// Spending is the spending recorded for a category. It is either a
// MemoSpending or an ItemSpending.
type Spending interface {
	Total(memo.Parser) decimal.Decimal
	spending()
}

// MemoSpending is spending recorded as free text.
type MemoSpending struct {
	Text string
}

// ItemSpending is spending recorded as a list of line items.
type ItemSpending struct {
	Items []LineItem
}

func (MemoSpending) spending() {}
func (ItemSpending) spending() {}

// Total evaluates the memo.
func (s MemoSpending) Total(p memo.Parser) decimal.Decimal {
	return p.Total(s.Text)
}

// Total sums up the items. Items are never rounded.
func (s ItemSpending) Total(memo.Parser) decimal.Decimal {
	total := decimal.Zero
	for _, item := range s.Items {
		total = total.Add(item.Amount)
	}
	return total
}
