package router

import (
	"net/http"
	"todo-app/pkg/adapter/restapi"
	todomiddleware "todo-app/pkg/infrastructure/router/middleware"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

// Path of route
const (
	TodosPath       = "/todos"
	TodoPath        = TodosPath + "/:id"
	HealthCheckPath = "/health_check"
)

// Options of router
type Options struct {
	Logger *zap.SugaredLogger
	// StaticDir, when set, is served at the root.
	StaticDir string
}

// New creates route endpoint
func New(h *restapi.Handler, options Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(todomiddleware.RequestID())
	if options.Logger != nil {
		e.Use(todomiddleware.RequestLogger(options.Logger))
	}
	// Answers OPTIONS on any path, routed or not.
	e.Use(todomiddleware.CORS())

	e.GET(HealthCheckPath, func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET(TodosPath, h.ListTodos)
	e.POST(TodosPath, h.CreateTodo)
	e.PATCH(TodosPath, h.UpdateTodo)
	e.DELETE(TodoPath, h.DeleteTodo)

	if options.StaticDir != "" {
		e.Static("/", options.StaticDir)
	}

	return e
}
