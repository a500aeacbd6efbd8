package common

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

var validate = validator.New()

// RequireUUIDParam extracts a UUID route parameter or returns a 400 error.
func RequireUUIDParam(c echo.Context, param string) (uuid.UUID, error) {
	u, err := uuid.Parse(c.Param(param))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, "invalid "+param)
	}
	return u, nil
}

// BindAndValidate decodes the request body into v and runs its validate tags.
func BindAndValidate(c echo.Context, v any) error {
	if err := c.Bind(v); err != nil {
		return ErrBadRequest("invalid json")
	}
	if err := validate.Struct(v); err != nil {
		return ErrUnprocessable(err.Error())
	}
	return nil
}
