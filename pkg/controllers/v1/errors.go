package v1

import (
	"errors"
	"net/http"

	"github.com/kakeibo/backend/pkg/models"
)

type httpError struct {
	Error string `json:"error" example:"there is no month matching your query"`
}

// status returns the appropriate status for an error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

// Cleanup errors
var (
	errCleanupConfirmation = errors.New("the confirmation for the cleanup API call was incorrect")
)

// Backup errors
var (
	errBackupReadFailed = errors.New("the backup could not be read from the request body")
)
