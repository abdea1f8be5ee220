// Package summary derives the monthly figures of a household budget.
package summary

import "github.com/shopspring/decimal"

// Input holds the values a month summary is calculated from.
type Input struct {
	Income                decimal.Decimal
	ExtraIncome           decimal.Decimal
	PreemptiveSavings     decimal.Decimal
	FixedExpenses         []decimal.Decimal
	TotalVariableExpenses decimal.Decimal
}

// Summary holds the derived figures of a month.
type Summary struct {
	TotalIncome            decimal.Decimal `json:"totalIncome" example:"190000"`                           // Income plus extra income
	TotalFixedExpenses     decimal.Decimal `json:"totalFixedExpenses" example:"71583"`                     // Sum of all fixed expenses
	DiscretionarySpending  decimal.Decimal `json:"discretionarySpending" example:"88417"`                  // Money left to spend after savings and fixed expenses. Negative when over-committed
	TotalVariableExpenses  decimal.Decimal `json:"totalVariableExpenses" example:"44254"`                  // Sum of all category spending
	TotalSpentThisMonth    decimal.Decimal `json:"totalSpentThisMonth" example:"115837"`                   // Fixed and variable expenses
	RemainingDiscretionary decimal.Decimal `json:"remainingDiscretionary" example:"44163"`                 // Discretionary spending minus variable expenses
	TotalSavingsThisMonth  decimal.Decimal `json:"totalSavingsThisMonth" example:"74163" minimum:"0.00"` // Preemptive savings plus any remaining discretionary money
}

// Calculate derives the Summary for the input. It has no side effects.
func Calculate(in Input) Summary {
	totalIncome := in.Income.Add(in.ExtraIncome)

	totalFixed := decimal.Zero
	for _, amount := range in.FixedExpenses {
		totalFixed = totalFixed.Add(amount)
	}

	discretionary := totalIncome.Sub(in.PreemptiveSavings).Sub(totalFixed)
	remaining := discretionary.Sub(in.TotalVariableExpenses)

	return Summary{
		TotalIncome:            totalIncome,
		TotalFixedExpenses:     totalFixed,
		DiscretionarySpending:  discretionary,
		TotalVariableExpenses:  in.TotalVariableExpenses,
		TotalSpentThisMonth:    totalFixed.Add(in.TotalVariableExpenses),
		RemainingDiscretionary: remaining,
		TotalSavingsThisMonth:  in.PreemptiveSavings.Add(decimal.Max(decimal.Zero, remaining)),
	}
}
