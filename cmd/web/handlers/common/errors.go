package common

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"thirdcoast.systems/filtergraph/internal/db"
	"thirdcoast.systems/filtergraph/pkg/filters"
)

// ErrBadRequest returns a 400 Bad Request error.
func ErrBadRequest(msg string) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusBadRequest, msg)
}

// ErrNotFound returns a 404 Not Found error.
func ErrNotFound(msg string) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusNotFound, msg)
}

// ErrConflict returns a 409 Conflict error.
func ErrConflict(msg string) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusConflict, msg)
}

// ErrUnprocessable returns a 422 error carrying the filter configuration problem.
func ErrUnprocessable(msg string) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusUnprocessableEntity, msg)
}

// ErrUnavailable returns a 503 Service Unavailable error.
func ErrUnavailable(msg string) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusServiceUnavailable, msg)
}

// ErrInternal returns a 500 Internal Server Error.
func ErrInternal(msg string) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusInternalServerError, msg)
}

// StoreError maps preset store errors to HTTP errors.
func StoreError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, db.ErrPresetNotFound):
		return ErrNotFound("preset not found")
	case errors.Is(err, db.ErrPresetExists):
		return ErrConflict("preset name already exists")
	case errors.Is(err, db.ErrSchemaMissing):
		return ErrUnavailable("preset store not migrated")
	default:
		return ErrInternal("preset store error")
	}
}

// CompileError maps recipe and filter configuration errors to HTTP errors.
func CompileError(err error) *echo.HTTPError {
	var cfgErr *filters.ConfigError
	var valErr validator.ValidationErrors
	switch {
	case errors.As(err, &cfgErr), errors.As(err, &valErr):
		return ErrUnprocessable(err.Error())
	default:
		return ErrBadRequest(err.Error())
	}
}
