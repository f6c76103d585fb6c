package controller

import (
	"errors"
	"net/http"

	"bdmep-api/internal/domain/model"

	"github.com/labstack/echo/v4"
)

// statusOf maps domain errors to HTTP status codes
func statusOf(err error) int {
	switch {
	case errors.Is(err, model.ErrValidation),
		errors.Is(err, model.ErrInvalidDateFormat),
		errors.Is(err, model.ErrInvalidSelectorFormat):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrUnresolvedSelector):
		return http.StatusUnprocessableEntity
	case errors.Is(err, model.ErrRemote):
		return http.StatusBadGateway
	case errors.Is(err, model.ErrQueueDisabled):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func errorResponse(c echo.Context, err error) error {
	return c.JSON(statusOf(err), model.ErrorResponse{Error: err.Error()})
}
