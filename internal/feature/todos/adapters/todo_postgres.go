package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"productifai_backend/internal/feature/todos/domain/entity"
	"productifai_backend/internal/feature/todos/usecase"
)

// todoPostgres is the GORM-backed implementation of the TodoRepository interface.
type todoPostgres struct {
	db *gorm.DB
}

// Compile-time check that todoPostgres implements TodoRepository.
var _ usecase.TodoRepository = (*todoPostgres)(nil)

// NewTodoPostgres creates a new todoPostgres instance with the given gorm.DB connection.
func NewTodoPostgres(db *gorm.DB) *todoPostgres {
	return &todoPostgres{db: db}
}

// Create persists one todo and reloads its category reference.
func (r *todoPostgres) Create(ctx context.Context, todo *entity.Todo) error {
	if err := r.db.WithContext(ctx).Create(todo).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).First(&todo.Category, todo.CategoryID).Error
}

// ListByUser lists a user's todos with category references, ordered by
// status asc, priority desc, creation time desc.
func (r *todoPostgres) ListByUser(ctx context.Context, userID uint, filter usecase.TodoFilter) ([]entity.Todo, error) {
	q := r.db.WithContext(ctx).
		Preload("Category").
		Where("user_id = ?", userID)
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Priority != "" {
		q = q.Where("priority = ?", filter.Priority)
	}
	if filter.CategoryID != 0 {
		q = q.Where("category_id = ?", filter.CategoryID)
	}

	var todos []entity.Todo
	err := q.Order("status ASC").
		Order("priority DESC").
		Order("created_at DESC").
		Find(&todos).Error
	if err != nil {
		return nil, err
	}
	return todos, nil
}

// FindOwned retrieves a todo by id and owner in a single filtered query.
func (r *todoPostgres) FindOwned(ctx context.Context, id, userID uint) (*entity.Todo, error) {
	var todo entity.Todo
	err := r.db.WithContext(ctx).
		Preload("Category").
		Where("id = ? AND user_id = ?", id, userID).
		First(&todo).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrTodoNotFound
		}
		return nil, err
	}
	return &todo, nil
}

// Save writes back a modified todo.
func (r *todoPostgres) Save(ctx context.Context, todo *entity.Todo) error {
	return r.db.WithContext(ctx).Save(todo).Error
}

// Delete removes a todo filtered by both id and owner.
func (r *todoPostgres) Delete(ctx context.Context, id, userID uint) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&entity.Todo{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrTodoNotFound
	}
	return nil
}
