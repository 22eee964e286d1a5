package entity

import "time"

// Defaults applied when a todo is created without these fields.
const (
	DefaultStatus   = "PENDING"
	DefaultPriority = "MEDIUM"
)

// Todo is a single task. Every todo belongs to exactly one user and one
// category, and both foreign keys are enforced on every access.
type Todo struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Title       string  `gorm:"size:255;not null" json:"title"`
	Description *string `gorm:"type:text" json:"description"`
	Status      string  `gorm:"size:32;not null;default:PENDING" json:"status"`
	Priority    string  `gorm:"size:32;not null;default:MEDIUM" json:"priority"`
	DueDate     *time.Time `json:"dueDate"`

	// UserID is the owning user. Every read and mutation is scoped to it.
	UserID uint `gorm:"index;not null" json:"userId"`

	// CategoryID is the grouping category. The category must belong to the
	// same user.
	CategoryID uint     `gorm:"index;not null" json:"categoryId"`
	Category   Category `gorm:"foreignKey:CategoryID" json:"category"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
