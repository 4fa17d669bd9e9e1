package restapi

import (
	"net/http"
	"strconv"
	"todo-app/pkg/entity/model"
	"todo-app/pkg/infrastructure/router/handler"

	"github.com/labstack/echo/v4"
)

// ListTodos handles GET /todos.
func (h *Handler) ListTodos(c echo.Context) error {
	todos, err := h.controller.Todo.List(c.Request().Context())
	if err != nil {
		return handler.HandleError(c, err)
	}
	return c.JSON(http.StatusOK, todos)
}

// CreateTodo handles POST /todos. Any id in the body is ignored.
func (h *Handler) CreateTodo(c echo.Context) error {
	var input model.CreateTodoInput
	if err := c.Bind(&input); err != nil {
		return handler.HandleError(c, model.NewInvalidParamError(err, "body"))
	}

	todo, err := h.controller.Todo.Create(c.Request().Context(), input)
	if err != nil {
		return handler.HandleError(c, err)
	}
	return c.JSON(http.StatusOK, todo)
}

// DeleteTodo handles DELETE /todos/:id.
func (h *Handler) DeleteTodo(c echo.Context) error {
	// Ids are 32-bit in both stores.
	id, err := strconv.ParseInt(c.Param("id"), 10, 32)
	if err != nil {
		return handler.HandleError(c, model.NewInvalidParamError(err, "id"))
	}

	if err := h.controller.Todo.Delete(c.Request().Context(), int(id)); err != nil {
		return handler.HandleError(c, err)
	}
	return c.NoContent(http.StatusOK)
}

// UpdateTodo handles PATCH /todos. Only is_complete is written.
func (h *Handler) UpdateTodo(c echo.Context) error {
	var input model.UpdateTodoInput
	if err := c.Bind(&input); err != nil {
		return handler.HandleError(c, model.NewInvalidParamError(err, "body"))
	}

	if err := h.controller.Todo.UpdateCompletion(c.Request().Context(), input); err != nil {
		return handler.HandleError(c, err)
	}
	return c.NoContent(http.StatusOK)
}
