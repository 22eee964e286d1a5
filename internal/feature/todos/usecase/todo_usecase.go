package usecase

import (
	"context"
	"fmt"
	"time"

	"productifai_backend/internal/feature/todos/domain/entity"
)

// TodoFilter narrows a todo listing. Empty fields apply no filter.
type TodoFilter struct {
	Status     string
	Priority   string
	CategoryID uint
}

// TodoRepository abstracts the persistence layer for todos.
type TodoRepository interface {
	// Create persists one todo and loads its category reference.
	Create(ctx context.Context, todo *entity.Todo) error

	// ListByUser lists a user's todos with category references, ordered by
	// status asc, priority desc, creation time desc.
	ListByUser(ctx context.Context, userID uint, filter TodoFilter) ([]entity.Todo, error)

	// FindOwned retrieves a todo filtered by both id and owner in one query.
	// It returns ErrTodoNotFound when no matching row exists.
	FindOwned(ctx context.Context, id, userID uint) (*entity.Todo, error)

	// Save writes back a modified todo.
	Save(ctx context.Context, todo *entity.Todo) error

	// Delete removes a todo filtered by both id and owner. It returns
	// ErrTodoNotFound when no matching row exists.
	Delete(ctx context.Context, id, userID uint) error
}

// TodoUpdate carries the optional fields of a partial todo update.
type TodoUpdate struct {
	Title       *string
	Description *string
	Priority    *string
	Status      *string
	CategoryID  *uint
	DueDate     *string
}

// todoUsecase implements the todo business logic.
type todoUsecase struct {
	todos      TodoRepository
	categories CategoryRepository
}

// NewTodoUsecase creates a new instance of todoUsecase.
func NewTodoUsecase(todos TodoRepository, categories CategoryRepository) *todoUsecase {
	return &todoUsecase{todos: todos, categories: categories}
}

// ListTodos returns the caller's todos, optionally filtered.
func (u *todoUsecase) ListTodos(ctx context.Context, userID uint, filter TodoFilter) ([]entity.Todo, error) {
	return u.todos.ListByUser(ctx, userID, filter)
}

// CreateTodo creates a todo after confirming the target category belongs to the caller.
func (u *todoUsecase) CreateTodo(ctx context.Context, userID uint, todo *entity.Todo) (*entity.Todo, error) {
	category, err := u.categories.FindOwned(ctx, todo.CategoryID, userID)
	if err != nil {
		return nil, err
	}

	todo.UserID = userID
	if todo.Status == "" {
		todo.Status = entity.DefaultStatus
	}
	if todo.Priority == "" {
		todo.Priority = entity.DefaultPriority
	}
	if err := u.todos.Create(ctx, todo); err != nil {
		return nil, err
	}
	todo.Category = *category
	return todo, nil
}

// UpdateTodo applies a partial update to a todo the caller owns. A category
// change is only accepted when the new category also belongs to the caller.
func (u *todoUsecase) UpdateTodo(ctx context.Context, userID, todoID uint, update TodoUpdate) (*entity.Todo, error) {
	todo, err := u.todos.FindOwned(ctx, todoID, userID)
	if err != nil {
		return nil, err
	}

	if update.CategoryID != nil {
		category, err := u.categories.FindOwned(ctx, *update.CategoryID, userID)
		if err != nil {
			return nil, err
		}
		todo.CategoryID = category.ID
		todo.Category = *category
	}
	if update.Title != nil {
		todo.Title = *update.Title
	}
	if update.Description != nil {
		todo.Description = update.Description
	}
	if update.Priority != nil {
		todo.Priority = *update.Priority
	}
	if update.Status != nil {
		todo.Status = *update.Status
	}
	if update.DueDate != nil {
		if *update.DueDate == "" {
			todo.DueDate = nil
		} else {
			t, err := parseDueDate(*update.DueDate)
			if err != nil {
				return nil, err
			}
			todo.DueDate = &t
		}
	}

	if err := u.todos.Save(ctx, todo); err != nil {
		return nil, err
	}
	return todo, nil
}

// DeleteTodo removes one todo the caller owns.
func (u *todoUsecase) DeleteTodo(ctx context.Context, userID, todoID uint) error {
	return u.todos.Delete(ctx, todoID, userID)
}

// parseDueDate accepts the date formats clients send for dueDate.
func parseDueDate(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized due date %q", s)
}
