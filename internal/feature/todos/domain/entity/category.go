// Package entity defines the domain entities for the todos feature.
package entity

import "time"

// Category is a named grouping owning zero or more todos.
// Names are unique per user; deletion is blocked while todos reference it.
type Category struct {
	ID    uint    `gorm:"primaryKey" json:"id"`
	Name  string  `gorm:"size:255;not null;index:idx_category_user_name" json:"name"`
	Color *string `gorm:"size:32" json:"color"`

	// UserID is the owning user. Every read and mutation is scoped to it.
	UserID uint `gorm:"not null;index:idx_category_user_name" json:"userId"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CategoryWithCount is a category joined with the number of todos under it.
// Produced by the list query; TodoCount is not a stored column.
type CategoryWithCount struct {
	Category
	TodoCount int64 `json:"todoCount"`
}
