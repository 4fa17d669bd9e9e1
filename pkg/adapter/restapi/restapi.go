package restapi

import (
	"todo-app/pkg/adapter/controller"
)

// Handler exposes the controllers over HTTP.
type Handler struct {
	controller controller.Controller
}

// New creates the HTTP handlers for ctrl.
func New(ctrl controller.Controller) *Handler {
	return &Handler{controller: ctrl}
}
