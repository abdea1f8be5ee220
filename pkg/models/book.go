package models

import (
	"strings"
	"time"

	"github.com/kakeibo/backend/internal/types"
	"github.com/kakeibo/backend/pkg/memo"
	"github.com/kakeibo/backend/pkg/summary"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// Book is the complete state of the household budget.
//
// Category memos and textarea heights are keyed by category ID. Since IDs
// are never reused, an entry always belongs to exactly one month.
type Book struct {
	Months          []MonthRecord     `json:"monthsData"`
	CategoryMemos   map[string]string `json:"categoryFreeMemos"`
	History         CategoryHistory   `json:"categoryHistory"`
	TextareaHeights map[string]int    `json:"categoryTextareaHeights"`
}

// MonthEditable contains the fields of a month that are edited directly.
// Fields that are nil are not changed.
type MonthEditable struct {
	MonthID           *types.Month  `json:"monthId" swaggertype:"string" example:"2025-11"` // Renames the month
	Income            *types.Amount `json:"income" swaggertype:"number" example:"190000"`
	ExtraIncome       *types.Amount `json:"extraIncome" swaggertype:"number" example:"20000"`
	PreemptiveSavings *types.Amount `json:"preemptiveSavings" swaggertype:"number" example:"30000"`
	Memo              *string       `json:"memo" example:"Bonus month"`
}

// Stats counts the records of a book.
type Stats struct {
	Months        int `json:"months" example:"3"`        // Number of months
	Categories    int `json:"categories" example:"12"`   // Number of categories over all months
	FixedExpenses int `json:"fixedExpenses" example:"8"` // Number of fixed expenses over all months
	MemoEntries   int `json:"memoEntries" example:"5"`   // Number of category memos
}

// NewBook returns a book with a single seed month for the month of now.
func NewBook(now time.Time) Book {
	return Book{
		Months:          []MonthRecord{seedMonth(types.MonthOf(now))},
		CategoryMemos:   map[string]string{},
		History:         NewCategoryHistory(),
		TextareaHeights: map[string]int{},
	}
}

// normalize fills in defaults for everything that is missing.
func (b *Book) normalize(now time.Time) {
	if len(b.Months) == 0 {
		b.Months = []MonthRecord{seedMonth(types.MonthOf(now))}
	}

	for i := range b.Months {
		b.Months[i].normalize()
	}

	if b.CategoryMemos == nil {
		b.CategoryMemos = map[string]string{}
	}

	if b.TextareaHeights == nil {
		b.TextareaHeights = map[string]int{}
	}

	b.History.normalize()
}

func (b Book) index(id types.Month) int {
	return slices.IndexFunc(b.Months, func(m MonthRecord) bool { return m.MonthID.Equal(id) })
}

// Month returns the month with the ID.
func (b *Book) Month(id types.Month) (*MonthRecord, error) {
	i := b.index(id)
	if i < 0 {
		return nil, ErrMonthNotFound
	}

	return &b.Months[i], nil
}

// Latest returns the chronologically latest month.
func (b Book) Latest() MonthRecord {
	latest := b.Months[0]
	for _, m := range b.Months[1:] {
		if m.MonthID.After(latest.MonthID) {
			latest = m
		}
	}
	return latest
}

// AddMonth rolls the book forward to the month after the latest one.
//
// Structure is copied from the latest month and the category history is
// replayed on it. The new month is inserted so that months stay sorted.
func (b *Book) AddMonth() (MonthRecord, error) {
	n := b.Latest().next()
	if b.index(n.MonthID) >= 0 {
		return MonthRecord{}, ErrMonthIDNotUnique
	}

	n.Categories = b.History.apply(n.Categories)

	b.Months = append(b.Months, n)
	b.sort()

	return n, nil
}

func (b *Book) sort() {
	slices.SortStableFunc(b.Months, func(a, c MonthRecord) int {
		return strings.Compare(a.MonthID.String(), c.MonthID.String())
	})
}

// RenameMonth changes the ID of a month.
func (b *Book) RenameMonth(id, to types.Month) error {
	m, err := b.Month(id)
	if err != nil {
		return err
	}

	if id.Equal(to) {
		return nil
	}

	if b.index(to) >= 0 {
		return ErrMonthIDNotUnique
	}

	m.MonthID = to
	return nil
}

// UpdateMonth applies an edit to a month and returns the ID of the month
// after the edit.
func (b *Book) UpdateMonth(id types.Month, e MonthEditable) (types.Month, error) {
	if _, err := b.Month(id); err != nil {
		return id, err
	}

	if e.MonthID != nil {
		if err := b.RenameMonth(id, *e.MonthID); err != nil {
			return id, err
		}
		id = *e.MonthID
	}

	m, _ := b.Month(id)

	if e.Income != nil {
		m.Income = e.Income.Decimal
	}

	if e.ExtraIncome != nil {
		m.ExtraIncome = e.ExtraIncome.Decimal
	}

	if e.PreemptiveSavings != nil {
		m.PreemptiveSavings = e.PreemptiveSavings.Decimal
	}

	if e.Memo != nil {
		m.Memo = *e.Memo
	}

	return id, nil
}

// DeleteMonth deletes a month together with the memos and textarea
// heights of its categories.
func (b *Book) DeleteMonth(id types.Month) error {
	i := b.index(id)
	if i < 0 {
		return ErrMonthNotFound
	}

	if len(b.Months) == 1 {
		return ErrLastMonth
	}

	for _, c := range b.Months[i].Categories {
		delete(b.CategoryMemos, c.ID)
		delete(b.TextareaHeights, c.ID)
	}

	b.Months = slices.Delete(b.Months, i, i+1)
	return nil
}

// MoveMonth moves a month to a new position in the list of months.
func (b *Book) MoveMonth(id types.Month, position int) error {
	i := b.index(id)
	if i < 0 {
		return ErrMonthNotFound
	}

	if position < 0 || position >= len(b.Months) {
		return ErrMonthIndexOutOfRange
	}

	m := b.Months[i]
	b.Months = slices.Delete(b.Months, i, i+1)
	b.Months = slices.Insert(b.Months, position, m)
	return nil
}

// AddCategory adds a category to a month and records it in the history.
func (b *Book) AddCategory(id types.Month, title string, budget decimal.Decimal) (Category, error) {
	m, err := b.Month(id)
	if err != nil {
		return Category{}, err
	}

	title = strings.TrimSpace(title)
	if title == "" {
		return Category{}, ErrCategoryTitleEmpty
	}

	c := Category{ID: newID(), Title: title, Budget: budget, Items: []LineItem{}}
	m.Categories = append(m.Categories, c)

	b.History.Added = append(b.History.Added, AddedCategory{Title: title, Budget: budget})
	return c, nil
}

// RenameCategory changes the title of a category and records the rename.
func (b *Book) RenameCategory(id types.Month, categoryID, title string) error {
	m, err := b.Month(id)
	if err != nil {
		return err
	}

	c, err := m.Category(categoryID)
	if err != nil {
		return err
	}

	title = strings.TrimSpace(title)
	if title == "" {
		return ErrCategoryTitleEmpty
	}

	if c.Title == title {
		return nil
	}

	b.History.Renamed = append(b.History.Renamed, RenamedCategory{OldTitle: c.Title, NewTitle: title})
	c.Title = title
	return nil
}

// RemoveCategory deletes a category from a month and records the removal.
func (b *Book) RemoveCategory(id types.Month, categoryID string) error {
	m, err := b.Month(id)
	if err != nil {
		return err
	}

	i := slices.IndexFunc(m.Categories, func(c Category) bool { return c.ID == categoryID })
	if i < 0 {
		return ErrCategoryNotFound
	}

	b.History.Removed = append(b.History.Removed, RemovedCategory{Title: m.Categories[i].Title})
	delete(b.CategoryMemos, categoryID)
	delete(b.TextareaHeights, categoryID)

	m.Categories = slices.Delete(m.Categories, i, i+1)
	return nil
}

// SetCategoryMemo sets the free text memo of a category. An empty memo
// removes it, the category is then totalled from its items again.
func (b *Book) SetCategoryMemo(id types.Month, categoryID, text string) error {
	m, err := b.Month(id)
	if err != nil {
		return err
	}

	if _, err := m.Category(categoryID); err != nil {
		return err
	}

	if text == "" {
		delete(b.CategoryMemos, categoryID)
		return nil
	}

	b.CategoryMemos[categoryID] = text
	return nil
}

// SetTextareaHeight stores the editor height of a category memo in pixels.
func (b *Book) SetTextareaHeight(id types.Month, categoryID string, height int) error {
	m, err := b.Month(id)
	if err != nil {
		return err
	}

	if _, err := m.Category(categoryID); err != nil {
		return err
	}

	if height <= 0 {
		return ErrTextareaHeightInvalid
	}

	b.TextareaHeights[categoryID] = height
	return nil
}

// Spending returns how the spending of a category is recorded.
func (b Book) Spending(c Category) Spending {
	if text, ok := b.CategoryMemos[c.ID]; ok {
		return MemoSpending{Text: text}
	}

	return ItemSpending{Items: c.Items}
}

// VariableExpenses sums up the spending of all categories of a month.
func (b Book) VariableExpenses(m MonthRecord, p memo.Parser) decimal.Decimal {
	total := decimal.Zero
	for _, c := range m.Categories {
		total = total.Add(b.Spending(c).Total(p))
	}
	return total
}

// Summarize calculates the summary of a month.
func (b Book) Summarize(m MonthRecord, p memo.Parser) summary.Summary {
	return summary.Calculate(summary.Input{
		Income:                m.Income,
		ExtraIncome:           m.ExtraIncome,
		PreemptiveSavings:     m.PreemptiveSavings,
		FixedExpenses:         m.FixedAmounts(),
		TotalVariableExpenses: b.VariableExpenses(m, p),
	})
}

// Stats counts the records in the book.
func (b Book) Stats() Stats {
	s := Stats{
		Months:      len(b.Months),
		MemoEntries: len(b.CategoryMemos),
	}

	for _, m := range b.Months {
		s.Categories += len(m.Categories)
		s.FixedExpenses += len(m.FixedExpenses)
	}

	return s
}
