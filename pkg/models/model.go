package models

import (
	"time"
)

// Keys of the stored entries.
const (
	KeyMonths          = "kakeibo-months-data"
	KeyCategoryMemos   = "kakeibo-category-free-memos"
	KeyCategoryHistory = "kakeibo-category-history"
	KeyTextareaHeights = "kakeibo-textarea-heights"
)

// Keys lists all keys a Book is stored under.
var Keys = []string{KeyMonths, KeyCategoryMemos, KeyCategoryHistory, KeyTextareaHeights}

// Entry is a JSON document stored under a key.
type Entry struct {
	Key   string `gorm:"primaryKey"`
	Value []byte
	Timestamps
}

// Timestamps only contains the timestamps that gorm sets automatically.
type Timestamps struct {
	CreatedAt time.Time
	UpdatedAt time.Time
}
