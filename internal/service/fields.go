package service

import (
	"fmt"
	"unicode/utf8"

	"notekeeper-be/internal/pkg/apperror"
)

// maxNameLength bounds the stored name and matches the varchar(50) column.
const maxNameLength = 50

// validateName is the single length check for names on create and update.
// It runs on the sanitized value: escaping expands characters like '&' into
// entities, so the stored form is what must fit the column.
func validateName(name string) error {
	if utf8.RuneCountInString(name) > maxNameLength {
		return apperror.NewValidationError(fmt.Sprintf("'name' must be at most %d characters", maxNameLength))
	}
	return nil
}
