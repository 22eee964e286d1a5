package usecase

import (
	"context"

	"productifai_backend/internal/feature/todos/domain/entity"
)

// CategoryRepository abstracts the persistence layer for categories.
// Following Go convention, the interface is defined by the consumer (usecase),
// not the provider (adapters).
type CategoryRepository interface {
	// Create persists a new category.
	Create(ctx context.Context, category *entity.Category) error

	// ListByUser lists a user's categories with todo counts, oldest first.
	ListByUser(ctx context.Context, userID uint) ([]entity.CategoryWithCount, error)

	// FindOwned retrieves a category filtered by both id and owner in one
	// query. It returns ErrCategoryNotFound when no matching row exists.
	FindOwned(ctx context.Context, id, userID uint) (*entity.Category, error)

	// NameTaken reports whether the user already has a category with the
	// given name, ignoring the category with excludeID (0 to exclude none).
	NameTaken(ctx context.Context, userID uint, name string, excludeID uint) (bool, error)

	// Save writes back a modified category.
	Save(ctx context.Context, category *entity.Category) error

	// Delete removes a category filtered by both id and owner.
	Delete(ctx context.Context, id, userID uint) error

	// CountTodos reports how many todos reference the category.
	CountTodos(ctx context.Context, categoryID uint) (int64, error)
}

// CategoryUpdate carries the optional fields of a partial category update.
type CategoryUpdate struct {
	Name  *string
	Color *string
}

// categoryUsecase implements the category business logic.
type categoryUsecase struct {
	categories CategoryRepository
}

// NewCategoryUsecase creates a new instance of categoryUsecase.
func NewCategoryUsecase(categories CategoryRepository) *categoryUsecase {
	return &categoryUsecase{categories: categories}
}

// ListCategories returns the caller's categories with todo counts, oldest first.
func (u *categoryUsecase) ListCategories(ctx context.Context, userID uint) ([]entity.CategoryWithCount, error) {
	return u.categories.ListByUser(ctx, userID)
}

// CreateCategory creates a category, rejecting duplicate names per user.
func (u *categoryUsecase) CreateCategory(ctx context.Context, userID uint, category *entity.Category) (*entity.Category, error) {
	taken, err := u.categories.NameTaken(ctx, userID, category.Name, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrCategoryNameTaken
	}

	category.UserID = userID
	if err := u.categories.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// UpdateCategory applies a partial update to a category the caller owns.
// A rename that collides with another of the caller's categories is rejected.
func (u *categoryUsecase) UpdateCategory(ctx context.Context, userID, categoryID uint, update CategoryUpdate) (*entity.Category, error) {
	category, err := u.categories.FindOwned(ctx, categoryID, userID)
	if err != nil {
		return nil, err
	}

	if update.Name != nil && *update.Name != category.Name {
		taken, err := u.categories.NameTaken(ctx, userID, *update.Name, categoryID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrCategoryNameTaken
		}
		category.Name = *update.Name
	}
	if update.Color != nil {
		category.Color = update.Color
	}

	if err := u.categories.Save(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// DeleteCategory removes a category the caller owns. Deletion is blocked with
// a CategoryInUseError while dependent todos exist.
func (u *categoryUsecase) DeleteCategory(ctx context.Context, userID, categoryID uint) error {
	category, err := u.categories.FindOwned(ctx, categoryID, userID)
	if err != nil {
		return err
	}

	todos, err := u.categories.CountTodos(ctx, category.ID)
	if err != nil {
		return err
	}
	if todos > 0 {
		return &CategoryInUseError{Todos: todos}
	}

	return u.categories.Delete(ctx, categoryID, userID)
}
