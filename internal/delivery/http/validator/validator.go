// Package validator wires go-playground validation into echo, including the
// tron_address tag for wallet fields.
package validator

import (
	"net/http"

	"noticetrack/internal/infra/chain/tron"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type echoValidator struct {
	validate *validator.Validate
}

// New creates the request validator registered on the echo server.
func New() echo.Validator {
	validate := validator.New()

	_ = validate.RegisterValidation("tron_address", func(fl validator.FieldLevel) bool {
		return tron.ValidateAddress(fl.Field().String()) == nil
	})

	return &echoValidator{validate: validate}
}

// Validate implements echo.Validator.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return nil
}
