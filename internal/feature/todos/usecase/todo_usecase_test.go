package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"productifai_backend/internal/feature/todos/domain/entity"
)

// mockTodoRepository is a mock implementation of the TodoRepository interface.
type mockTodoRepository struct {
	CreateFunc     func(ctx context.Context, todo *entity.Todo) error
	ListByUserFunc func(ctx context.Context, userID uint, filter TodoFilter) ([]entity.Todo, error)
	FindOwnedFunc  func(ctx context.Context, id, userID uint) (*entity.Todo, error)
	SaveFunc       func(ctx context.Context, todo *entity.Todo) error
	DeleteFunc     func(ctx context.Context, id, userID uint) error
}

func (m *mockTodoRepository) Create(ctx context.Context, todo *entity.Todo) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, todo)
	}
	return nil
}

func (m *mockTodoRepository) ListByUser(ctx context.Context, userID uint, filter TodoFilter) ([]entity.Todo, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID, filter)
	}
	return nil, nil
}

func (m *mockTodoRepository) FindOwned(ctx context.Context, id, userID uint) (*entity.Todo, error) {
	if m.FindOwnedFunc != nil {
		return m.FindOwnedFunc(ctx, id, userID)
	}
	return nil, ErrTodoNotFound
}

func (m *mockTodoRepository) Save(ctx context.Context, todo *entity.Todo) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, todo)
	}
	return nil
}

func (m *mockTodoRepository) Delete(ctx context.Context, id, userID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id, userID)
	}
	return nil
}

// categoriesOwning returns a category repository that recognizes one
// category/owner pair.
func categoriesOwning(categoryID, userID uint) *mockCategoryRepository {
	return &mockCategoryRepository{
		FindOwnedFunc: func(ctx context.Context, id, uid uint) (*entity.Category, error) {
			if id == categoryID && uid == userID {
				return &entity.Category{ID: categoryID, Name: "Work", UserID: userID}, nil
			}
			return nil, ErrCategoryNotFound
		},
	}
}

func TestTodoUsecase_CreateTodo(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a todo with defaults applied", func(t *testing.T) {
		var created *entity.Todo
		todos := &mockTodoRepository{
			CreateFunc: func(ctx context.Context, todo *entity.Todo) error {
				todo.ID = 5
				created = todo
				return nil
			},
		}

		uc := NewTodoUsecase(todos, categoriesOwning(2, 1))
		todo, err := uc.CreateTodo(ctx, 1, &entity.Todo{Title: "Write report", CategoryID: 2})

		require.NoError(t, err)
		assert.Equal(t, uint(5), todo.ID)
		assert.Equal(t, uint(1), created.UserID, "owner should be forced to the caller")
		assert.Equal(t, entity.DefaultStatus, created.Status)
		assert.Equal(t, entity.DefaultPriority, created.Priority)
		assert.Equal(t, "Work", todo.Category.Name, "category reference should be attached")
	})

	t.Run("explicit priority is preserved", func(t *testing.T) {
		uc := NewTodoUsecase(&mockTodoRepository{}, categoriesOwning(2, 1))
		todo, err := uc.CreateTodo(ctx, 1, &entity.Todo{Title: "Urgent", CategoryID: 2, Priority: "HIGH"})

		require.NoError(t, err)
		assert.Equal(t, "HIGH", todo.Priority)
	})

	t.Run("category owned by someone else", func(t *testing.T) {
		created := false
		todos := &mockTodoRepository{
			CreateFunc: func(ctx context.Context, todo *entity.Todo) error {
				created = true
				return nil
			},
		}

		uc := NewTodoUsecase(todos, categoriesOwning(2, 99))
		_, err := uc.CreateTodo(ctx, 1, &entity.Todo{Title: "Write report", CategoryID: 2})

		assert.ErrorIs(t, err, ErrCategoryNotFound)
		assert.False(t, created, "no todo should be created when the category check fails")
	})
}

func TestTodoUsecase_UpdateTodo(t *testing.T) {
	ctx := context.Background()

	strPtr := func(s string) *string { return &s }
	uintPtr := func(u uint) *uint { return &u }

	ownedTodo := func() *mockTodoRepository {
		return &mockTodoRepository{
			FindOwnedFunc: func(ctx context.Context, id, userID uint) (*entity.Todo, error) {
				if id == 5 && userID == 1 {
					return &entity.Todo{
						ID: 5, Title: "Write report", Status: "PENDING",
						Priority: "MEDIUM", UserID: 1, CategoryID: 2,
					}, nil
				}
				return nil, ErrTodoNotFound
			},
		}
	}

	t.Run("partial update touches only the given fields", func(t *testing.T) {
		todos := ownedTodo()

		uc := NewTodoUsecase(todos, categoriesOwning(2, 1))
		todo, err := uc.UpdateTodo(ctx, 1, 5, TodoUpdate{Status: strPtr("COMPLETED")})

		require.NoError(t, err)
		assert.Equal(t, "COMPLETED", todo.Status)
		assert.Equal(t, "Write report", todo.Title, "untouched field should be preserved")
		assert.Equal(t, "MEDIUM", todo.Priority)
	})

	t.Run("category change requires ownership of the new category", func(t *testing.T) {
		saved := false
		todos := ownedTodo()
		todos.SaveFunc = func(ctx context.Context, todo *entity.Todo) error {
			saved = true
			return nil
		}

		// Category 9 belongs to someone else.
		uc := NewTodoUsecase(todos, categoriesOwning(2, 1))
		_, err := uc.UpdateTodo(ctx, 1, 5, TodoUpdate{CategoryID: uintPtr(9)})

		assert.ErrorIs(t, err, ErrCategoryNotFound)
		assert.False(t, saved)
	})

	t.Run("moving to another owned category", func(t *testing.T) {
		todos := ownedTodo()
		categories := &mockCategoryRepository{
			FindOwnedFunc: func(ctx context.Context, id, userID uint) (*entity.Category, error) {
				if id == 7 && userID == 1 {
					return &entity.Category{ID: 7, Name: "Personal", UserID: 1}, nil
				}
				return nil, ErrCategoryNotFound
			},
		}

		uc := NewTodoUsecase(todos, categories)
		todo, err := uc.UpdateTodo(ctx, 1, 5, TodoUpdate{CategoryID: uintPtr(7)})

		require.NoError(t, err)
		assert.Equal(t, uint(7), todo.CategoryID)
		assert.Equal(t, "Personal", todo.Category.Name)
	})

	t.Run("due date is parsed", func(t *testing.T) {
		todos := ownedTodo()

		uc := NewTodoUsecase(todos, categoriesOwning(2, 1))
		todo, err := uc.UpdateTodo(ctx, 1, 5, TodoUpdate{DueDate: strPtr("2026-09-15")})

		require.NoError(t, err)
		require.NotNil(t, todo.DueDate)
		assert.Equal(t, 2026, todo.DueDate.Year())
	})

	t.Run("empty due date clears the stored value", func(t *testing.T) {
		now := parseMust(t, "2026-09-15")
		todos := &mockTodoRepository{
			FindOwnedFunc: func(ctx context.Context, id, userID uint) (*entity.Todo, error) {
				return &entity.Todo{ID: 5, Title: "Write report", UserID: 1, CategoryID: 2, DueDate: &now}, nil
			},
		}

		uc := NewTodoUsecase(todos, categoriesOwning(2, 1))
		todo, err := uc.UpdateTodo(ctx, 1, 5, TodoUpdate{DueDate: strPtr("")})

		require.NoError(t, err)
		assert.Nil(t, todo.DueDate)
	})

	t.Run("unparseable due date is rejected", func(t *testing.T) {
		todos := ownedTodo()

		uc := NewTodoUsecase(todos, categoriesOwning(2, 1))
		_, err := uc.UpdateTodo(ctx, 1, 5, TodoUpdate{DueDate: strPtr("next tuesday")})

		assert.Error(t, err)
	})

	t.Run("todo owned by someone else", func(t *testing.T) {
		uc := NewTodoUsecase(&mockTodoRepository{}, categoriesOwning(2, 1))
		_, err := uc.UpdateTodo(ctx, 1, 999, TodoUpdate{Status: strPtr("COMPLETED")})

		assert.ErrorIs(t, err, ErrTodoNotFound)
	})
}

func TestTodoUsecase_DeleteTodo(t *testing.T) {
	ctx := context.Background()

	t.Run("delete forwards id and owner", func(t *testing.T) {
		var gotID, gotUserID uint
		todos := &mockTodoRepository{
			DeleteFunc: func(ctx context.Context, id, userID uint) error {
				gotID, gotUserID = id, userID
				return nil
			},
		}

		uc := NewTodoUsecase(todos, &mockCategoryRepository{})
		err := uc.DeleteTodo(ctx, 1, 5)

		require.NoError(t, err)
		assert.Equal(t, uint(5), gotID)
		assert.Equal(t, uint(1), gotUserID)
	})

	t.Run("missing todo", func(t *testing.T) {
		todos := &mockTodoRepository{
			DeleteFunc: func(ctx context.Context, id, userID uint) error {
				return ErrTodoNotFound
			},
		}

		uc := NewTodoUsecase(todos, &mockCategoryRepository{})
		err := uc.DeleteTodo(ctx, 1, 999)

		assert.ErrorIs(t, err, ErrTodoNotFound)
	})
}

func TestTodoUsecase_ListTodos(t *testing.T) {
	ctx := context.Background()

	var gotFilter TodoFilter
	todos := &mockTodoRepository{
		ListByUserFunc: func(ctx context.Context, userID uint, filter TodoFilter) ([]entity.Todo, error) {
			gotFilter = filter
			return []entity.Todo{{ID: 1, Title: "Write report", UserID: userID}}, nil
		},
	}

	uc := NewTodoUsecase(todos, &mockCategoryRepository{})
	out, err := uc.ListTodos(ctx, 1, TodoFilter{Status: "PENDING", Priority: "HIGH", CategoryID: 2})

	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "PENDING", gotFilter.Status)
	assert.Equal(t, "HIGH", gotFilter.Priority)
	assert.Equal(t, uint(2), gotFilter.CategoryID)
}

func parseMust(t *testing.T, s string) time.Time {
	t.Helper()

	parsed, err := parseDueDate(s)
	require.NoError(t, err)
	return parsed
}
