package models

import (
	"github.com/google/uuid"
	"github.com/kakeibo/backend/internal/types"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// MonthRecord is the budget of one calendar month.
type MonthRecord struct {
	MonthID           types.Month     `json:"monthId" swaggertype:"string" example:"2025-10"`      // The month, unique among all months
	Income            decimal.Decimal `json:"income" example:"190000"`                             // Monthly income after taxes
	ExtraIncome       decimal.Decimal `json:"extraIncome" example:"0"`                             // One-off income for this month
	PreemptiveSavings decimal.Decimal `json:"preemptiveSavings" example:"30000"`                   // Amount saved at the start of the month
	FixedExpenses     []FixedExpense  `json:"fixedExpenses"`                                       // Expenses that occur every month
	Categories        []Category      `json:"categories"`                                          // Spending categories
	Memo              string          `json:"memo" example:"Keep groceries below 15,000 per week"` // Free text notes for the month
}

// FixedExpense is an expense that occurs every month, e.g. rent.
type FixedExpense struct {
	ID     string          `json:"id" example:"9b1e7e1c-7a55-4b1e-a2f1-3b4c8d4c1f00"`
	Name   string          `json:"name" example:"住居費"`
	Amount decimal.Decimal `json:"amount" example:"47000"`
}

// Category groups variable spending.
type Category struct {
	ID     string          `json:"id" example:"4ee1a3b6-3a49-4a23-9a40-1c6f5bb4e5e3"`
	Title  string          `json:"title" example:"日用品"`
	Budget decimal.Decimal `json:"budget" example:"45000"`
	Items  []LineItem      `json:"items"`
}

// LineItem is a single expense in a category.
type LineItem struct {
	ID     string          `json:"id" example:"51a1d6f0-8ac5-4a0e-bf7b-7b4cc7f1e1c2"`
	Name   string          `json:"name" example:"Amazon"`
	Amount decimal.Decimal `json:"amount" example:"20000"`
}

func newID() string {
	return uuid.New().String()
}

// next returns the record for the following month.
//
// Fixed expenses and categories are copied with new IDs, everything
// that was entered for this month is left out.
func (m MonthRecord) next() MonthRecord {
	n := MonthRecord{
		MonthID:           m.MonthID.Next(),
		Income:            m.Income,
		ExtraIncome:       decimal.Zero,
		PreemptiveSavings: m.PreemptiveSavings,
		FixedExpenses:     make([]FixedExpense, 0, len(m.FixedExpenses)),
		Categories:        make([]Category, 0, len(m.Categories)),
	}

	for _, f := range m.FixedExpenses {
		n.FixedExpenses = append(n.FixedExpenses, FixedExpense{ID: newID(), Name: f.Name, Amount: f.Amount})
	}

	for _, c := range m.Categories {
		n.Categories = append(n.Categories, Category{ID: newID(), Title: c.Title, Budget: c.Budget, Items: []LineItem{}})
	}

	return n
}

// FixedExpense returns the fixed expense with the ID.
func (m *MonthRecord) FixedExpense(id string) (*FixedExpense, error) {
	i := slices.IndexFunc(m.FixedExpenses, func(f FixedExpense) bool { return f.ID == id })
	if i < 0 {
		return nil, ErrFixedExpenseNotFound
	}

	return &m.FixedExpenses[i], nil
}

// AddFixedExpense appends a fixed expense.
func (m *MonthRecord) AddFixedExpense(name string, amount decimal.Decimal) FixedExpense {
	f := FixedExpense{ID: newID(), Name: name, Amount: amount}
	m.FixedExpenses = append(m.FixedExpenses, f)
	return f
}

// UpdateFixedExpense updates the fields that are not nil.
func (m *MonthRecord) UpdateFixedExpense(id string, name *string, amount *decimal.Decimal) (FixedExpense, error) {
	f, err := m.FixedExpense(id)
	if err != nil {
		return FixedExpense{}, err
	}

	if name != nil {
		f.Name = *name
	}

	if amount != nil {
		f.Amount = *amount
	}

	return *f, nil
}

// RemoveFixedExpense deletes a fixed expense.
func (m *MonthRecord) RemoveFixedExpense(id string) error {
	i := slices.IndexFunc(m.FixedExpenses, func(f FixedExpense) bool { return f.ID == id })
	if i < 0 {
		return ErrFixedExpenseNotFound
	}

	m.FixedExpenses = slices.Delete(m.FixedExpenses, i, i+1)
	return nil
}

// Category returns the category with the ID.
func (m *MonthRecord) Category(id string) (*Category, error) {
	i := slices.IndexFunc(m.Categories, func(c Category) bool { return c.ID == id })
	if i < 0 {
		return nil, ErrCategoryNotFound
	}

	return &m.Categories[i], nil
}

// SetBudget sets the budget of a category.
func (m *MonthRecord) SetBudget(categoryID string, budget decimal.Decimal) error {
	c, err := m.Category(categoryID)
	if err != nil {
		return err
	}

	c.Budget = budget
	return nil
}

// AddItem appends a line item to a category.
func (m *MonthRecord) AddItem(categoryID, name string, amount decimal.Decimal) (LineItem, error) {
	c, err := m.Category(categoryID)
	if err != nil {
		return LineItem{}, err
	}

	item := LineItem{ID: newID(), Name: name, Amount: amount}
	c.Items = append(c.Items, item)
	return item, nil
}

// UpdateItem updates the fields of a line item that are not nil.
func (m *MonthRecord) UpdateItem(categoryID, itemID string, name *string, amount *decimal.Decimal) (LineItem, error) {
	c, err := m.Category(categoryID)
	if err != nil {
		return LineItem{}, err
	}

	i := slices.IndexFunc(c.Items, func(item LineItem) bool { return item.ID == itemID })
	if i < 0 {
		return LineItem{}, ErrLineItemNotFound
	}

	if name != nil {
		c.Items[i].Name = *name
	}

	if amount != nil {
		c.Items[i].Amount = *amount
	}

	return c.Items[i], nil
}

// RemoveItem deletes a line item from a category.
func (m *MonthRecord) RemoveItem(categoryID, itemID string) error {
	c, err := m.Category(categoryID)
	if err != nil {
		return err
	}

	i := slices.IndexFunc(c.Items, func(item LineItem) bool { return item.ID == itemID })
	if i < 0 {
		return ErrLineItemNotFound
	}

	c.Items = slices.Delete(c.Items, i, i+1)
	return nil
}

// FixedAmounts returns the amounts of all fixed expenses.
func (m MonthRecord) FixedAmounts() []decimal.Decimal {
	amounts := make([]decimal.Decimal, 0, len(m.FixedExpenses))
	for _, f := range m.FixedExpenses {
		amounts = append(amounts, f.Amount)
	}
	return amounts
}

// normalize replaces nil collections so that they serialize as empty lists.
func (m *MonthRecord) normalize() {
	if m.FixedExpenses == nil {
		m.FixedExpenses = []FixedExpense{}
	}

	if m.Categories == nil {
		m.Categories = []Category{}
	}

	for i := range m.Categories {
		if m.Categories[i].Items == nil {
			m.Categories[i].Items = []LineItem{}
		}
	}
}
