package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// BackupVersion is the version of the backup format written by Book.Backup.
const BackupVersion = "1.0"

func init() {
	// Amounts are JSON numbers in stored data and in backups
	decimal.MarshalJSONWithoutQuotes = true
}

// Backup is a snapshot of a complete Book.
type Backup struct {
	Book
	ExportDate time.Time `json:"exportDate" example:"2025-10-30T05:30:43.000Z"`
	Version    string    `json:"version" example:"1.0"`
}

// Backup returns a snapshot of the book.
func (b Book) Backup(now time.Time) Backup {
	return Backup{
		Book:       b,
		ExportDate: now.UTC(),
		Version:    BackupVersion,
	}
}

// FileName returns the file name for a download of the backup.
func (b Backup) FileName() string {
	return fmt.Sprintf("kakeibo-backup-%s.json", b.ExportDate.Format(time.DateOnly))
}

// RestoreBackup decodes a backup and returns the Book it contains.
//
// Collections missing in the backup are set to their defaults. Backups
// of other versions are rejected.
func RestoreBackup(data []byte, now time.Time) (Book, error) {
	var header struct {
		Version string `json:"version"`
	}

	if err := json.Unmarshal(data, &header); err != nil {
		return Book{}, fmt.Errorf("%w: %s", ErrBackupInvalid, err)
	}

	if header.Version != BackupVersion {
		return Book{}, fmt.Errorf("%w: '%s', only '%s' can be restored", ErrUnsupportedBackupVersion, header.Version, BackupVersion)
	}

	var backup Backup
	if err := json.Unmarshal(data, &backup); err != nil {
		return Book{}, fmt.Errorf("%w: %s", ErrBackupInvalid, err)
	}

	book := backup.Book
	seen := make(map[string]bool, len(book.Months))
	for _, m := range book.Months {
		if m.MonthID.IsZero() {
			return Book{}, fmt.Errorf("%w: a month has no monthId", ErrBackupInvalid)
		}

		if seen[m.MonthID.String()] {
			return Book{}, fmt.Errorf("%w: %s", ErrMonthIDNotUnique, m.MonthID)
		}
		seen[m.MonthID.String()] = true
	}

	book.normalize(now)
	return book, nil
}
