package handler

import (
	"net/http"
	"todo-app/pkg/entity/model"

	"github.com/labstack/echo/v4"
)

// ErrorKey is where HandleError leaves the error for the request logger.
const ErrorKey = "handler.error"

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// HandleError writes err as a JSON error body with the status its code maps to.
func HandleError(c echo.Context, err error) error {
	c.Set(ErrorKey, err)

	code := model.Code(err)
	status := StatusOf(code)

	message := http.StatusText(status)
	if status < http.StatusInternalServerError {
		message = err.Error()
	}

	return c.JSON(status, ErrorResponse{Code: code, Message: message})
}

// StatusOf maps an error code to an HTTP status.
func StatusOf(code string) int {
	switch code {
	case model.InvalidParamError:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
