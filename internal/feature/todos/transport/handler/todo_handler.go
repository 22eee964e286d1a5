package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"productifai_backend/internal/api"
	"productifai_backend/internal/feature/todos/domain/entity"
	"productifai_backend/internal/feature/todos/usecase"
	jwtmw "productifai_backend/internal/platform/jwt"
)

// TodoUsecase defines the todo operations used by this handler.
type TodoUsecase interface {
	ListTodos(ctx context.Context, userID uint, filter usecase.TodoFilter) ([]entity.Todo, error)
	CreateTodo(ctx context.Context, userID uint, todo *entity.Todo) (*entity.Todo, error)
	UpdateTodo(ctx context.Context, userID, todoID uint, update usecase.TodoUpdate) (*entity.Todo, error)
	DeleteTodo(ctx context.Context, userID, todoID uint) error
}

// TodoHandler handles the HTTP requests for todo operations.
type TodoHandler struct {
	todos TodoUsecase
}

// NewTodoHandler creates a new instance of TodoHandler.
func NewTodoHandler(todos TodoUsecase) *TodoHandler {
	return &TodoHandler{todos: todos}
}

// todoResponse converts a todo entity to its public view.
func todoResponse(t *entity.Todo) api.TodoResponse {
	return api.TodoResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status,
		Priority:    t.Priority,
		DueDate:     t.DueDate,
		UserID:      t.UserID,
		CategoryID:  t.CategoryID,
		Category:    api.CategoryRef{ID: t.Category.ID, Name: t.Category.Name, Color: t.Category.Color},
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
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

// failTodo maps a todo usecase error to its HTTP status and message.
func failTodo(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrTodoNotFound):
		c.JSON(http.StatusNotFound, api.Fail("Todo not found"))
	case errors.Is(err, usecase.ErrCategoryNotFound):
		c.JSON(http.StatusNotFound, api.Fail("Category not found"))
	default:
		slog.Error("todo operation failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.Fail("Internal server error"))
	}
}

// List handles GET /api/todos with optional status/priority/categoryId filters.
func (h *TodoHandler) List(c *gin.Context) {
	identity, ok := jwtmw.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.Fail("Unauthorized"))
		return
	}

	filter := usecase.TodoFilter{
		Status:   c.Query("status"),
		Priority: c.Query("priority"),
	}
	if raw := c.Query("categoryId"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, api.Fail("Invalid category filter"))
			return
		}
		filter.CategoryID = uint(id)
	}

	todos, err := h.todos.ListTodos(c.Request.Context(), identity.UserID, filter)
	if err != nil {
		failTodo(c, err)
		return
	}

	out := make([]api.TodoResponse, 0, len(todos))
	for i := range todos {
		out = append(out, todoResponse(&todos[i]))
	}
	c.JSON(http.StatusOK, api.OK("Todos retrieved successfully", out))
}

// Create handles POST /api/todos.
func (h *TodoHandler) Create(c *gin.Context) {
	identity, ok := jwtmw.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.Fail("Unauthorized"))
		return
	}

	var req api.CreateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("create todo validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.Fail("Title and category are required"))
		return
	}

	todo := &entity.Todo{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		CategoryID:  req.CategoryID,
	}
	if req.DueDate != nil && *req.DueDate != "" {
		t, err := parseDueDate(*req.DueDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, api.Fail("Invalid due date"))
			return
		}
		todo.DueDate = &t
	}

	created, err := h.todos.CreateTodo(c.Request.Context(), identity.UserID, todo)
	if err != nil {
		failTodo(c, err)
		return
	}
	c.JSON(http.StatusCreated, api.OK("Todo created successfully", todoResponse(created)))
}

// Update handles PUT /api/todos. The todo id travels in the body.
func (h *TodoHandler) Update(c *gin.Context) {
	identity, ok := jwtmw.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.Fail("Unauthorized"))
		return
	}

	var req api.UpdateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("update todo validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.Fail("Todo ID is required"))
		return
	}

	updated, err := h.todos.UpdateTodo(c.Request.Context(), identity.UserID, req.ID, usecase.TodoUpdate{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Status:      req.Status,
		CategoryID:  req.CategoryID,
		DueDate:     req.DueDate,
	})
	if err != nil {
		failTodo(c, err)
		return
	}
	c.JSON(http.StatusOK, api.OK("Todo updated successfully", todoResponse(updated)))
}

// Delete handles DELETE /api/todos/:id.
func (h *TodoHandler) Delete(c *gin.Context) {
	identity, ok := jwtmw.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.Fail("Unauthorized"))
		return
	}

	todoID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.Fail("Todo ID is required"))
		return
	}

	if err := h.todos.DeleteTodo(c.Request.Context(), identity.UserID, uint(todoID)); err != nil {
		failTodo(c, err)
		return
	}
	c.JSON(http.StatusOK, api.OK("Todo deleted successfully", nil))
}
