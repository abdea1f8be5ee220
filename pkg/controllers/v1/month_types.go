package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/kakeibo/backend/internal/types"
	"github.com/kakeibo/backend/pkg/memo"
	"github.com/kakeibo/backend/pkg/models"
	"github.com/kakeibo/backend/pkg/summary"
	"github.com/shopspring/decimal"
)

type MonthLinks struct {
	Self          string `json:"self" example:"https://example.com/api/v1/months/2025-10"`                         // The month itself
	Summary       string `json:"summary" example:"https://example.com/api/v1/months/2025-10/summary"`              // Summary of the month
	Report        string `json:"report" example:"https://example.com/api/v1/months/2025-10/report"`                // HTML report for the month
	Position      string `json:"position" example:"https://example.com/api/v1/months/2025-10/position"`            // Endpoint to move the month in the list of months
	FixedExpenses string `json:"fixedExpenses" example:"https://example.com/api/v1/months/2025-10/fixed-expenses"` // Fixed expenses of the month
	Categories    string `json:"categories" example:"https://example.com/api/v1/months/2025-10/categories"`        // Categories of the month
}

// Month is the API v1 representation of a month.
type Month struct {
	MonthID           types.Month           `json:"monthId" swaggertype:"string" example:"2025-10"` // The month
	Income            decimal.Decimal       `json:"income" example:"190000"`                        // Monthly income after taxes
	ExtraIncome       decimal.Decimal       `json:"extraIncome" example:"0"`                        // One-off income for this month
	PreemptiveSavings decimal.Decimal       `json:"preemptiveSavings" example:"30000"`              // Amount saved at the start of the month
	FixedExpenses     []models.FixedExpense `json:"fixedExpenses"`                                  // Expenses that occur every month
	Categories        []Category            `json:"categories"`                                     // Spending categories with their totals
	Memo              string                `json:"memo" example:"Car inspection next month"`       // Free text notes for the month
	Summary           summary.Summary       `json:"summary"`                                        // Derived figures for the month
	Links             MonthLinks            `json:"links"`
}

// Category is a category of a month together with how its spending is recorded.
type Category struct {
	models.Category
	Memo           *string         `json:"memo" example:"スーパー 1200\n100×3"` // Free text memo. If set, the total is calculated from it instead of the items
	TextareaHeight *int            `json:"textareaHeight" example:"160"`    // Height of the memo editor in pixels
	Total          decimal.Decimal `json:"total" example:"1500"`            // Spending in this category
}

func newMonth(c *gin.Context, book models.Book, m models.MonthRecord, p memo.Parser) Month {
	url := fmt.Sprintf("%s/v1/months/%s", c.GetString(string(models.DBContextURL)), m.MonthID)

	month := Month{
		MonthID:           m.MonthID,
		Income:            m.Income,
		ExtraIncome:       m.ExtraIncome,
		PreemptiveSavings: m.PreemptiveSavings,
		FixedExpenses:     m.FixedExpenses,
		Categories:        make([]Category, 0, len(m.Categories)),
		Memo:              m.Memo,
		Summary:           book.Summarize(m, p),
		Links: MonthLinks{
			Self:          url,
			Summary:       url + "/summary",
			Report:        url + "/report",
			Position:      url + "/position",
			FixedExpenses: url + "/fixed-expenses",
			Categories:    url + "/categories",
		},
	}

	for _, category := range m.Categories {
		spending := book.Spending(category)

		data := Category{
			Category: category,
			Total:    spending.Total(p),
		}

		if s, ok := spending.(models.MemoSpending); ok {
			text := s.Text
			data.Memo = &text
		}

		if height, ok := book.TextareaHeights[category.ID]; ok {
			data.TextareaHeight = &height
		}

		month.Categories = append(month.Categories, data)
	}

	return month
}

type MonthResponse struct {
	Data  *Month  `json:"data"`  // Data for the month
	Error *string `json:"error"` // The error, if any occurred
}

type MonthListResponse struct {
	Data  []Month `json:"data"`  // List of months
	Error *string `json:"error"` // The error, if any occurred
}

type MonthQueryFilter struct {
	Month string `form:"month" example:"2025-*"` // Glob pattern the month ID must match
}

type MonthPosition struct {
	Position int `json:"position" example:"0"` // Zero-based position in the list of months
}

type SummaryResponse struct {
	Data  *summary.Summary `json:"data"`  // Summary of the month
	Error *string          `json:"error"` // The error, if any occurred
}

type FixedExpenseEditable struct {
	Name   *string       `json:"name" example:"住居費"`                            // Name of the fixed expense
	Amount *types.Amount `json:"amount" swaggertype:"number" example:"47000"` // Monthly amount. Values that are not numbers are stored as 0
}

type CategoryCreate struct {
	Title  string       `json:"title" example:"日用品"`                          // Title of the category, must not be empty
	Budget types.Amount `json:"budget" swaggertype:"number" example:"45000"` // Budget for the category
}

type CategoryEditable struct {
	Title          *string       `json:"title" example:"日用品"`                          // Title of the category, must not be empty
	Budget         *types.Amount `json:"budget" swaggertype:"number" example:"45000"` // Budget for the category
	Memo           *string       `json:"memo" example:"スーパー 1200"`                    // Free text memo. An empty memo switches back to items
	TextareaHeight *int          `json:"textareaHeight" example:"160"`                // Height of the memo editor in pixels
}

type ItemEditable struct {
	Name   *string       `json:"name" example:"Amazon"`                       // Description of the expense
	Amount *types.Amount `json:"amount" swaggertype:"number" example:"20000"` // Amount of the expense. Values that are not numbers are stored as 0
}

// values returns the name and amount for a new record. Missing values are empty.
func values(name *string, amount *types.Amount) (string, decimal.Decimal) {
	n := ""
	if name != nil {
		n = *name
	}

	a := decimal.Zero
	if amount != nil {
		a = amount.Decimal
	}

	return n, a
}

// decimalPtr returns a pointer to the decimal of the amount, or nil.
func decimalPtr(amount *types.Amount) *decimal.Decimal {
	if amount == nil {
		return nil
	}

	d := amount.Decimal
	return &d
}
