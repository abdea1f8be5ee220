package models

import (
	"github.com/shopspring/decimal"
)

// CategoryHistory records structural category changes.
//
// When a new month is rolled forward, the changes are replayed on the
// categories copied from the previous month.
type CategoryHistory struct {
	Added   []AddedCategory   `json:"added"`
	Removed []RemovedCategory `json:"removed"`
	Renamed []RenamedCategory `json:"renamed"`
}

// AddedCategory is a category that months created later start with.
type AddedCategory struct {
	Title  string          `json:"title" example:"趣味"`
	Budget decimal.Decimal `json:"budget" example:"10000"`
}

// RemovedCategory is a category title that months created later leave out.
type RemovedCategory struct {
	Title string `json:"title" example:"臨時出費"`
}

// RenamedCategory is a title change applied to months created later.
type RenamedCategory struct {
	OldTitle string `json:"oldTitle" example:"定期"`
	NewTitle string `json:"newTitle" example:"サブスク"`
}

// NewCategoryHistory returns an empty history.
func NewCategoryHistory() CategoryHistory {
	return CategoryHistory{
		Added:   []AddedCategory{},
		Removed: []RemovedCategory{},
		Renamed: []RenamedCategory{},
	}
}

// apply replays the history on a list of categories.
//
// Added categories are appended if no category with the same title exists,
// categories with a removed title are dropped, then renames are applied
// in the order they were recorded.
func (h CategoryHistory) apply(categories []Category) []Category {
	for _, added := range h.Added {
		if indexByTitle(categories, added.Title) < 0 {
			categories = append(categories, Category{
				ID:     newID(),
				Title:  added.Title,
				Budget: added.Budget,
				Items:  []LineItem{},
			})
		}
	}

	kept := make([]Category, 0, len(categories))
	for _, c := range categories {
		if !h.isRemoved(c.Title) {
			kept = append(kept, c)
		}
	}

	for _, renamed := range h.Renamed {
		if i := indexByTitle(kept, renamed.OldTitle); i >= 0 {
			kept[i].Title = renamed.NewTitle
		}
	}

	return kept
}

func (h CategoryHistory) isRemoved(title string) bool {
	for _, r := range h.Removed {
		if r.Title == title {
			return true
		}
	}
	return false
}

func (h *CategoryHistory) normalize() {
	if h.Added == nil {
		h.Added = []AddedCategory{}
	}

	if h.Removed == nil {
		h.Removed = []RemovedCategory{}
	}

	if h.Renamed == nil {
		h.Renamed = []RenamedCategory{}
	}
}

func indexByTitle(categories []Category, title string) int {
	for i, c := range categories {
		if c.Title == title {
			return i
		}
	}
	return -1
}
