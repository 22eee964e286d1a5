// Package usecase implements the business logic for the todos feature.
package usecase

import (
	"errors"
	"fmt"
)

var (
	// ErrCategoryNotFound is returned when a category does not exist for the
	// requesting user. A category owned by someone else reports the same error.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrCategoryNameTaken is returned when the user already has a category
	// with the requested name.
	ErrCategoryNameTaken = errors.New("category with this name already exists")

	// ErrTodoNotFound is returned when a todo does not exist for the
	// requesting user.
	ErrTodoNotFound = errors.New("todo not found")
)

// CategoryInUseError reports a delete attempt on a category that still has
// todos under it. There is no cascading delete; the todos must go first.
type CategoryInUseError struct {
	Todos int64
}

func (e *CategoryInUseError) Error() string {
	return fmt.Sprintf("category has %d associated todo(s)", e.Todos)
}
