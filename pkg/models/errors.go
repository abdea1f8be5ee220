package models

import (
	"errors"
	"fmt"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	ErrMonthNotFound         = fmt.Errorf("%w month matching your query", ErrResourceNotFound)
	ErrFixedExpenseNotFound  = fmt.Errorf("%w fixed expense matching your query", ErrResourceNotFound)
	ErrCategoryNotFound      = fmt.Errorf("%w category matching your query", ErrResourceNotFound)
	ErrLineItemNotFound      = fmt.Errorf("%w item matching your query", ErrResourceNotFound)
	ErrMonthIDNotUnique      = errors.New("a month with this ID already exists")
	ErrLastMonth             = errors.New("the last remaining month cannot be deleted")
	ErrMonthIndexOutOfRange  = errors.New("the position is outside of the list of months")
	ErrCategoryTitleEmpty    = errors.New("the category title must not be empty")
	ErrTextareaHeightInvalid = errors.New("the textarea height must be a positive number")

	ErrUnsupportedBackupVersion = errors.New("the backup version is not supported")
	ErrBackupInvalid            = errors.New("the backup is invalid")
)
