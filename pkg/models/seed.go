package models

import (
	"github.com/kakeibo/backend/internal/types"
	"github.com/shopspring/decimal"
)

// seedMonth returns the month a new book starts with.
func seedMonth(id types.Month) MonthRecord {
	return MonthRecord{
		MonthID:           id,
		Income:            decimal.NewFromInt(190000),
		ExtraIncome:       decimal.Zero,
		PreemptiveSavings: decimal.NewFromInt(30000),
		FixedExpenses: []FixedExpense{
			{ID: "fe1", Name: "住居費", Amount: decimal.NewFromInt(47000)},
			{ID: "fe2", Name: "水道・光熱費", Amount: decimal.NewFromInt(12500)},
			{ID: "fe3", Name: "通信費", Amount: decimal.NewFromInt(2483)},
			{ID: "fe4", Name: "その他", Amount: decimal.NewFromInt(9600)},
		},
		Categories: []Category{
			{ID: "cat1", Title: "定期", Budget: decimal.NewFromInt(20000), Items: []LineItem{
				{ID: "i1", Name: "ブルーベリーアイ", Amount: decimal.NewFromInt(1584)},
			}},
			{ID: "cat2", Title: "日用品", Budget: decimal.NewFromInt(45000), Items: []LineItem{
				{ID: "i2", Name: "Amazon", Amount: decimal.NewFromInt(20000)},
				{ID: "i3", Name: "ペイペイ", Amount: decimal.NewFromInt(15000)},
			}},
			{ID: "cat3", Title: "臨時出費", Budget: decimal.NewFromInt(8000), Items: []LineItem{
				{ID: "i4", Name: "ギフトカード", Amount: decimal.NewFromInt(3300)},
			}},
			{ID: "cat4", Title: "ローン返済", Budget: decimal.NewFromInt(20000), Items: []LineItem{
				{ID: "i5", Name: "Loop Cloude", Amount: decimal.NewFromInt(2700)},
				{ID: "i6", Name: "Amazon年会費", Amount: decimal.NewFromInt(1670)},
			}},
		},
		Memo: "月初に立てた目標：\n・週の食費を15,000円以内に抑える。\n・月末に5,000円余らせて貯金に回す。",
	}
}
