package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/s5redllms/NoteBuddy/internal/service"
)

// TodoHandler handles the owner-scoped todo endpoints.
type TodoHandler struct {
	todoService service.TodoService
}

// NewTodoHandler creates a new todo handler.
func NewTodoHandler(todoService service.TodoService) *TodoHandler {
	return &TodoHandler{todoService: todoService}
}

// CreateTodoRequest represents a todo creation request.
type CreateTodoRequest struct {
	Title string `json:"title" validate:"required"`
}

// UpdateTodoRequest represents a todo completion toggle.
type UpdateTodoRequest struct {
	Completed bool `json:"completed"`
}

// List godoc
// @Summary List the caller's todos, newest first
// @Tags todos
// @Produce json
// @Success 200 {array} model.Todo
// @Failure 401 {object} errors.ErrorResponse
// @Router /todos [get]
func (h *TodoHandler) List(c echo.Context) error {
	session, err := sessionFrom(c)
	if err != nil {
		return err
	}
	todos, err := h.todoService.List(c.Request().Context(), session)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, todos)
}

// Create godoc
// @Summary Create a todo owned by the caller
// @Tags todos
// @Accept json
// @Produce json
// @Param request body CreateTodoRequest true "Todo data"
// @Success 201 {object} model.Todo
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /todos [post]
func (h *TodoHandler) Create(c echo.Context) error {
	session, err := sessionFrom(c)
	if err != nil {
		return err
	}

	var req CreateTodoRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "title is required")
	}

	todo, err := h.todoService.Create(c.Request().Context(), session, req.Title)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, todo)
}

// Update godoc
// @Summary Toggle completion on a todo the caller owns
// @Tags todos
// @Accept json
// @Produce json
// @Param id path int true "Todo ID"
// @Param request body UpdateTodoRequest true "Completion state"
// @Success 200 {object} successResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /todos/{id} [put]
func (h *TodoHandler) Update(c echo.Context) error {
	session, err := sessionFrom(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req UpdateTodoRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := h.todoService.SetCompleted(c.Request().Context(), session, id, req.Completed); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, success())
}

// Delete godoc
// @Summary Delete a todo the caller owns
// @Tags todos
// @Produce json
// @Param id path int true "Todo ID"
// @Success 200 {object} successResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /todos/{id} [delete]
func (h *TodoHandler) Delete(c echo.Context) error {
	session, err := sessionFrom(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.todoService.Delete(c.Request().Context(), session, id); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, success())
}
