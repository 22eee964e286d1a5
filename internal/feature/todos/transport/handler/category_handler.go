// Package handler provides the HTTP handlers for the todos feature.
package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"productifai_backend/internal/api"
	"productifai_backend/internal/feature/todos/domain/entity"
	"productifai_backend/internal/feature/todos/usecase"
	jwtmw "productifai_backend/internal/platform/jwt"
)

// CategoryUsecase defines the category operations used by this handler.
// Following Go convention, the interface is defined by the consumer (handler),
// not the provider (usecase).
type CategoryUsecase interface {
	ListCategories(ctx context.Context, userID uint) ([]entity.CategoryWithCount, error)
	CreateCategory(ctx context.Context, userID uint, category *entity.Category) (*entity.Category, error)
	UpdateCategory(ctx context.Context, userID, categoryID uint, update usecase.CategoryUpdate) (*entity.Category, error)
	DeleteCategory(ctx context.Context, userID, categoryID uint) error
}

// CategoryHandler handles the HTTP requests for category operations.
type CategoryHandler struct {
	categories CategoryUsecase
}

// NewCategoryHandler creates a new instance of CategoryHandler.
func NewCategoryHandler(categories CategoryUsecase) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

// categoryResponse converts a category-with-count row to its public view.
func categoryResponse(c *entity.CategoryWithCount) api.CategoryResponse {
	return api.CategoryResponse{
		ID:        c.ID,
		Name:      c.Name,
		Color:     c.Color,
		UserID:    c.UserID,
		TodoCount: c.TodoCount,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// failCategory maps a category usecase error to its HTTP status and message.
func failCategory(c *gin.Context, err error) {
	var inUse *usecase.CategoryInUseError
	switch {
	case errors.Is(err, usecase.ErrCategoryNotFound):
		c.JSON(http.StatusNotFound, api.Fail("Category not found"))
	case errors.Is(err, usecase.ErrCategoryNameTaken):
		c.JSON(http.StatusConflict, api.Fail("Category with this name already exists"))
	case errors.As(err, &inUse):
		c.JSON(http.StatusBadRequest, api.Fail(fmt.Sprintf(
			"Cannot delete category. It has %d todo(s) associated with it.", inUse.Todos)))
	default:
		slog.Error("category operation failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.Fail("Internal server error"))
	}
}

// List handles GET /api/categories.
func (h *CategoryHandler) List(c *gin.Context) {
	identity, ok := jwtmw.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.Fail("Unauthorized"))
		return
	}

	categories, err := h.categories.ListCategories(c.Request.Context(), identity.UserID)
	if err != nil {
		failCategory(c, err)
		return
	}

	out := make([]api.CategoryResponse, 0, len(categories))
	for i := range categories {
		out = append(out, categoryResponse(&categories[i]))
	}
	c.JSON(http.StatusOK, api.OK("Categories retrieved successfully", out))
}

// Create handles POST /api/categories.
func (h *CategoryHandler) Create(c *gin.Context) {
	identity, ok := jwtmw.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.Fail("Unauthorized"))
		return
	}

	var req api.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("create category validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.Fail("Category name is required"))
		return
	}

	category := &entity.Category{Name: req.Name, Color: req.Color}
	created, err := h.categories.CreateCategory(c.Request.Context(), identity.UserID, category)
	if err != nil {
		failCategory(c, err)
		return
	}
	c.JSON(http.StatusCreated, api.OK("Category created successfully",
		categoryResponse(&entity.CategoryWithCount{Category: *created})))
}

// Update handles PUT /api/categories/:id.
func (h *CategoryHandler) Update(c *gin.Context) {
	identity, ok := jwtmw.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.Fail("Unauthorized"))
		return
	}

	categoryID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.Fail("Category ID is required"))
		return
	}

	var req api.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("update category validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.Fail("Invalid request body"))
		return
	}

	updated, err := h.categories.UpdateCategory(c.Request.Context(), identity.UserID, uint(categoryID), usecase.CategoryUpdate{
		Name:  req.Name,
		Color: req.Color,
	})
	if err != nil {
		failCategory(c, err)
		return
	}
	c.JSON(http.StatusOK, api.OK("Category updated successfully",
		categoryResponse(&entity.CategoryWithCount{Category: *updated})))
}

// Delete handles DELETE /api/categories/:id.
// Deletion is refused with 400 while the category still has todos.
func (h *CategoryHandler) Delete(c *gin.Context) {
	identity, ok := jwtmw.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.Fail("Unauthorized"))
		return
	}

	categoryID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.Fail("Category ID is required"))
		return
	}

	if err := h.categories.DeleteCategory(c.Request.Context(), identity.UserID, uint(categoryID)); err != nil {
		failCategory(c, err)
		return
	}
	c.JSON(http.StatusOK, api.OK("Category deleted successfully", nil))
}
