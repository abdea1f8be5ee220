package models

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// mu serializes read-modify-write cycles on the stored book.
var mu sync.Mutex

// LoadBook reads the book from the database.
//
// Keys that are missing are set to their defaults. Values that cannot be
// decoded are logged and replaced with defaults, the stored value is kept.
func LoadBook(ctx context.Context, now time.Time) (Book, error) {
	var entries []Entry
	err := DB.WithContext(ctx).Where("key IN ?", Keys).Find(&entries).Error
	if err != nil {
		return Book{}, err
	}

	var book Book
	for _, entry := range entries {
		var target any
		switch entry.Key {
		case KeyMonths:
			target = &book.Months
		case KeyCategoryMemos:
			target = &book.CategoryMemos
		case KeyCategoryHistory:
			target = &book.History
		case KeyTextareaHeights:
			target = &book.TextareaHeights
		}

		if err := json.Unmarshal(entry.Value, target); err != nil {
			log.Warn().Str("key", entry.Key).Err(err).Msg("stored value could not be decoded, using defaults")
			resetKey(&book, entry.Key)
		}
	}

	book.normalize(now)
	return book, nil
}

// resetKey sets the part of the book stored under key to its zero value.
func resetKey(book *Book, key string) {
	switch key {
	case KeyMonths:
		book.Months = nil
	case KeyCategoryMemos:
		book.CategoryMemos = nil
	case KeyCategoryHistory:
		book.History = CategoryHistory{}
	case KeyTextareaHeights:
		book.TextareaHeights = nil
	}
}

// SaveBook writes all parts of the book in a single transaction.
func SaveBook(ctx context.Context, book Book) error {
	values := map[string]any{
		KeyMonths:          book.Months,
		KeyCategoryMemos:   book.CategoryMemos,
		KeyCategoryHistory: book.History,
		KeyTextareaHeights: book.TextareaHeights,
	}

	entries := make([]Entry, 0, len(Keys))
	for _, key := range Keys {
		value, err := json.Marshal(values[key])
		if err != nil {
			return fmt.Errorf("could not encode %s: %w", key, err)
		}

		entries = append(entries, Entry{Key: key, Value: value})
	}

	return DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).Create(&entries).Error
	})
}

// UpdateBook loads the book, applies fn and saves the result.
//
// Calls are serialized. If fn returns an error, nothing is saved and the
// error is returned.
func UpdateBook(ctx context.Context, now time.Time, fn func(*Book) error) (Book, error) {
	mu.Lock()
	defer mu.Unlock()

	book, err := LoadBook(ctx, now)
	if err != nil {
		return Book{}, err
	}

	err = fn(&book)
	if err != nil {
		return Book{}, err
	}

	err = SaveBook(ctx, book)
	if err != nil {
		return Book{}, err
	}

	return book, nil
}

// ResetBook deletes all stored data.
func ResetBook(ctx context.Context) error {
	mu.Lock()
	defer mu.Unlock()

	return DB.WithContext(ctx).Where("key IN ?", Keys).Delete(&Entry{}).Error
}
