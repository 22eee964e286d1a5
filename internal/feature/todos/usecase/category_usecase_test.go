package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"productifai_backend/internal/feature/todos/domain/entity"
)

// mockCategoryRepository is a mock implementation of the CategoryRepository interface.
type mockCategoryRepository struct {
	CreateFunc     func(ctx context.Context, category *entity.Category) error
	ListByUserFunc func(ctx context.Context, userID uint) ([]entity.CategoryWithCount, error)
	FindOwnedFunc  func(ctx context.Context, id, userID uint) (*entity.Category, error)
	NameTakenFunc  func(ctx context.Context, userID uint, name string, excludeID uint) (bool, error)
	SaveFunc       func(ctx context.Context, category *entity.Category) error
	DeleteFunc     func(ctx context.Context, id, userID uint) error
	CountTodosFunc func(ctx context.Context, categoryID uint) (int64, error)
}

func (m *mockCategoryRepository) Create(ctx context.Context, category *entity.Category) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, category)
	}
	return nil
}

func (m *mockCategoryRepository) ListByUser(ctx context.Context, userID uint) ([]entity.CategoryWithCount, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockCategoryRepository) FindOwned(ctx context.Context, id, userID uint) (*entity.Category, error) {
	if m.FindOwnedFunc != nil {
		return m.FindOwnedFunc(ctx, id, userID)
	}
	return nil, ErrCategoryNotFound
}

func (m *mockCategoryRepository) NameTaken(ctx context.Context, userID uint, name string, excludeID uint) (bool, error) {
	if m.NameTakenFunc != nil {
		return m.NameTakenFunc(ctx, userID, name, excludeID)
	}
	return false, nil
}

func (m *mockCategoryRepository) Save(ctx context.Context, category *entity.Category) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, category)
	}
	return nil
}

func (m *mockCategoryRepository) Delete(ctx context.Context, id, userID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id, userID)
	}
	return nil
}

func (m *mockCategoryRepository) CountTodos(ctx context.Context, categoryID uint) (int64, error) {
	if m.CountTodosFunc != nil {
		return m.CountTodosFunc(ctx, categoryID)
	}
	return 0, nil
}

func TestCategoryUsecase_CreateCategory(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a category for the caller", func(t *testing.T) {
		repo := &mockCategoryRepository{
			CreateFunc: func(ctx context.Context, category *entity.Category) error {
				category.ID = 3
				return nil
			},
		}

		uc := NewCategoryUsecase(repo)
		category, err := uc.CreateCategory(ctx, 1, &entity.Category{Name: "Work"})

		require.NoError(t, err)
		assert.Equal(t, uint(3), category.ID)
		assert.Equal(t, uint(1), category.UserID, "owner should be forced to the caller")
	})

	t.Run("duplicate name is rejected", func(t *testing.T) {
		created := false
		repo := &mockCategoryRepository{
			NameTakenFunc: func(ctx context.Context, userID uint, name string, excludeID uint) (bool, error) {
				return true, nil
			},
			CreateFunc: func(ctx context.Context, category *entity.Category) error {
				created = true
				return nil
			},
		}

		uc := NewCategoryUsecase(repo)
		_, err := uc.CreateCategory(ctx, 1, &entity.Category{Name: "Work"})

		assert.ErrorIs(t, err, ErrCategoryNameTaken)
		assert.False(t, created, "no category should be created for a duplicate name")
	})

	t.Run("same name for a different user is allowed", func(t *testing.T) {
		repo := &mockCategoryRepository{
			NameTakenFunc: func(ctx context.Context, userID uint, name string, excludeID uint) (bool, error) {
				// Uniqueness is scoped per user; user 2 is free to reuse the name.
				return userID == 1, nil
			},
		}

		uc := NewCategoryUsecase(repo)
		_, err := uc.CreateCategory(ctx, 2, &entity.Category{Name: "Work"})

		assert.NoError(t, err)
	})
}

func TestCategoryUsecase_UpdateCategory(t *testing.T) {
	ctx := context.Background()

	strPtr := func(s string) *string { return &s }

	ownedCategory := func(id, userID uint, name string) func(ctx context.Context, cid, uid uint) (*entity.Category, error) {
		return func(ctx context.Context, cid, uid uint) (*entity.Category, error) {
			if cid == id && uid == userID {
				return &entity.Category{ID: id, Name: name, UserID: userID}, nil
			}
			return nil, ErrCategoryNotFound
		}
	}

	t.Run("rename and recolor", func(t *testing.T) {
		var saved *entity.Category
		repo := &mockCategoryRepository{
			FindOwnedFunc: ownedCategory(3, 1, "Work"),
			SaveFunc: func(ctx context.Context, category *entity.Category) error {
				saved = category
				return nil
			},
		}

		uc := NewCategoryUsecase(repo)
		category, err := uc.UpdateCategory(ctx, 1, 3, CategoryUpdate{
			Name:  strPtr("Projects"),
			Color: strPtr("#ff0000"),
		})

		require.NoError(t, err)
		require.NotNil(t, saved)
		assert.Equal(t, "Projects", category.Name)
		require.NotNil(t, category.Color)
		assert.Equal(t, "#ff0000", *category.Color)
	})

	t.Run("rename collision is rejected", func(t *testing.T) {
		saved := false
		repo := &mockCategoryRepository{
			FindOwnedFunc: ownedCategory(3, 1, "Work"),
			NameTakenFunc: func(ctx context.Context, userID uint, name string, excludeID uint) (bool, error) {
				assert.Equal(t, uint(3), excludeID, "the category itself must be excluded from the collision check")
				return true, nil
			},
			SaveFunc: func(ctx context.Context, category *entity.Category) error {
				saved = true
				return nil
			},
		}

		uc := NewCategoryUsecase(repo)
		_, err := uc.UpdateCategory(ctx, 1, 3, CategoryUpdate{Name: strPtr("Personal")})

		assert.ErrorIs(t, err, ErrCategoryNameTaken)
		assert.False(t, saved)
	})

	t.Run("keeping the current name skips the collision check", func(t *testing.T) {
		checked := false
		repo := &mockCategoryRepository{
			FindOwnedFunc: ownedCategory(3, 1, "Work"),
			NameTakenFunc: func(ctx context.Context, userID uint, name string, excludeID uint) (bool, error) {
				checked = true
				return true, nil
			},
		}

		uc := NewCategoryUsecase(repo)
		_, err := uc.UpdateCategory(ctx, 1, 3, CategoryUpdate{Name: strPtr("Work")})

		assert.NoError(t, err)
		assert.False(t, checked, "an unchanged name needs no collision check")
	})

	t.Run("category owned by someone else", func(t *testing.T) {
		repo := &mockCategoryRepository{
			FindOwnedFunc: ownedCategory(3, 99, "Work"),
		}

		uc := NewCategoryUsecase(repo)
		_, err := uc.UpdateCategory(ctx, 1, 3, CategoryUpdate{Name: strPtr("Projects")})

		assert.ErrorIs(t, err, ErrCategoryNotFound)
	})
}

func TestCategoryUsecase_DeleteCategory(t *testing.T) {
	ctx := context.Background()

	ownedCategory := func(ctx context.Context, id, userID uint) (*entity.Category, error) {
		if id == 3 && userID == 1 {
			return &entity.Category{ID: 3, Name: "Work", UserID: 1}, nil
		}
		return nil, ErrCategoryNotFound
	}

	t.Run("deletes an empty category", func(t *testing.T) {
		deleted := false
		repo := &mockCategoryRepository{
			FindOwnedFunc: ownedCategory,
			DeleteFunc: func(ctx context.Context, id, userID uint) error {
				deleted = true
				return nil
			},
		}

		uc := NewCategoryUsecase(repo)
		err := uc.DeleteCategory(ctx, 1, 3)

		require.NoError(t, err)
		assert.True(t, deleted)
	})

	t.Run("deletion is blocked while todos exist", func(t *testing.T) {
		deleted := false
		repo := &mockCategoryRepository{
			FindOwnedFunc: ownedCategory,
			CountTodosFunc: func(ctx context.Context, categoryID uint) (int64, error) {
				return 4, nil
			},
			DeleteFunc: func(ctx context.Context, id, userID uint) error {
				deleted = true
				return nil
			},
		}

		uc := NewCategoryUsecase(repo)
		err := uc.DeleteCategory(ctx, 1, 3)

		var inUse *CategoryInUseError
		require.ErrorAs(t, err, &inUse)
		assert.Equal(t, int64(4), inUse.Todos, "the error must carry the todo count")
		assert.False(t, deleted, "the category must survive while todos reference it")
	})

	t.Run("category owned by someone else", func(t *testing.T) {
		uc := NewCategoryUsecase(&mockCategoryRepository{})
		err := uc.DeleteCategory(ctx, 1, 3)

		assert.ErrorIs(t, err, ErrCategoryNotFound)
	})

	t.Run("count failure is propagated", func(t *testing.T) {
		expectedErr := errors.New("count failed")
		repo := &mockCategoryRepository{
			FindOwnedFunc: ownedCategory,
			CountTodosFunc: func(ctx context.Context, categoryID uint) (int64, error) {
				return 0, expectedErr
			},
		}

		uc := NewCategoryUsecase(repo)
		err := uc.DeleteCategory(ctx, 1, 3)

		assert.ErrorIs(t, err, expectedErr)
	})
}

func TestCategoryUsecase_ListCategories(t *testing.T) {
	ctx := context.Background()

	repo := &mockCategoryRepository{
		ListByUserFunc: func(ctx context.Context, userID uint) ([]entity.CategoryWithCount, error) {
			return []entity.CategoryWithCount{
				{Category: entity.Category{ID: 1, Name: "Work", UserID: userID}, TodoCount: 2},
			}, nil
		},
	}

	uc := NewCategoryUsecase(repo)
	out, err := uc.ListCategories(ctx, 1)

	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, int64(2), out[0].TodoCount)
}
