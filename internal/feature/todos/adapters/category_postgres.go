// Package adapters provides the repository implementations for the todos feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"productifai_backend/internal/feature/todos/domain/entity"
	"productifai_backend/internal/feature/todos/usecase"
)

// categoryPostgres is the GORM-backed implementation of the CategoryRepository interface.
type categoryPostgres struct {
	db *gorm.DB
}

// Compile-time check that categoryPostgres implements CategoryRepository.
var _ usecase.CategoryRepository = (*categoryPostgres)(nil)

// NewCategoryPostgres creates a new categoryPostgres instance with the given gorm.DB connection.
func NewCategoryPostgres(db *gorm.DB) *categoryPostgres {
	return &categoryPostgres{db: db}
}

// Create persists a new category.
func (r *categoryPostgres) Create(ctx context.Context, category *entity.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

// ListByUser lists a user's categories with todo counts, oldest first.
func (r *categoryPostgres) ListByUser(ctx context.Context, userID uint) ([]entity.CategoryWithCount, error) {
	var categories []entity.CategoryWithCount
	err := r.db.WithContext(ctx).
		Model(&entity.Category{}).
		Select("categories.*, COUNT(todos.id) AS todo_count").
		Joins("LEFT JOIN todos ON todos.category_id = categories.id").
		Where("categories.user_id = ?", userID).
		Group("categories.id").
		Order("categories.created_at ASC").
		Scan(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

// FindOwned retrieves a category by id and owner in a single filtered query.
func (r *categoryPostgres) FindOwned(ctx context.Context, id, userID uint) (*entity.Category, error) {
	var category entity.Category
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

// NameTaken reports whether the user already has a category with the given
// name, ignoring excludeID.
func (r *categoryPostgres) NameTaken(ctx context.Context, userID uint, name string, excludeID uint) (bool, error) {
	var count int64
	q := r.db.WithContext(ctx).
		Model(&entity.Category{}).
		Where("user_id = ? AND name = ?", userID, name)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save writes back a modified category.
func (r *categoryPostgres) Save(ctx context.Context, category *entity.Category) error {
	return r.db.WithContext(ctx).Save(category).Error
}

// Delete removes a category filtered by both id and owner.
func (r *categoryPostgres) Delete(ctx context.Context, id, userID uint) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&entity.Category{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrCategoryNotFound
	}
	return nil
}

// CountTodos reports how many todos reference the category.
func (r *categoryPostgres) CountTodos(ctx context.Context, categoryID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.Todo{}).
		Where("category_id = ?", categoryID).
		Count(&count).Error
	return count, err
}
